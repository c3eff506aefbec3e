package main

import "github.com/spgraph/sharepoint-client/cmd"

func main() {
	cmd.Execute()
}
