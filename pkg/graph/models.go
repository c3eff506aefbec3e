package graph

// SiteList represents a collection of Sites.
type SiteList struct {
	Value []Site `json:"value"`
}

// Site represents a SharePoint site, projected to id and web URL.
type Site struct {
	ID     string `json:"id"`
	WebURL string `json:"webUrl"`
}

// ListCollection represents a collection of SharePoint lists.
type ListCollection struct {
	Value []List `json:"value"`
}

// List represents a named collection of items within a site.
type List struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	WebURL string `json:"webUrl"`
}

// DriveList represents a collection of Drives.
type DriveList struct {
	Value []Drive `json:"value"`
}

// Drive represents a file-storage container within a site.
type Drive struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	WebURL string `json:"webUrl"`
}

// DriveItemList represents a collection of DriveItems.
type DriveItemList struct {
	Value []DriveItem `json:"value"`
}

// DriveItem represents a file or folder stored in a drive. The File and
// Folder facets are mutually exclusive markers.
type DriveItem struct {
	ID     string       `json:"id,omitempty"`
	Name   string       `json:"name,omitempty"`
	WebURL string       `json:"webUrl,omitempty"`
	Size   int64        `json:"size,omitempty"`
	File   *FileFacet   `json:"file,omitempty"`
	Folder *FolderFacet `json:"folder,omitempty"`

	ConflictBehavior string `json:"@microsoft.graph.conflictBehavior,omitempty"`
}

// FileFacet marks a drive item as a file.
type FileFacet struct {
	MimeType string `json:"mimeType,omitempty"`
}

// FolderFacet marks a drive item as a folder.
type FolderFacet struct {
	ChildCount int `json:"childCount,omitempty"`
}

// UserList represents one page of directory users. NextLink is non-empty
// when the server reports that more results exist.
type UserList struct {
	Value    []User `json:"value"`
	NextLink string `json:"@odata.nextLink,omitempty"`
}

// HasMore reports whether the server has further pages beyond this one.
func (l UserList) HasMore() bool {
	return l.NextLink != ""
}

// User represents a directory user, projected to display name, id and mail.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
}

// ColumnDefinitionList represents a collection of column definitions.
type ColumnDefinitionList struct {
	Value []ColumnDefinition `json:"value"`
}

// ColumnDefinition represents a schema field on a list. Exactly one of the
// type-specific option blocks is set per column.
type ColumnDefinition struct {
	ID                  string `json:"id,omitempty"`
	Name                string `json:"name,omitempty"`
	DisplayName         string `json:"displayName,omitempty"`
	Description         string `json:"description,omitempty"`
	Hidden              bool   `json:"hidden,omitempty"`
	Indexed             bool   `json:"indexed,omitempty"`
	EnforceUniqueValues bool   `json:"enforceUniqueValues,omitempty"`

	Choice             *ChoiceColumn             `json:"choice,omitempty"`
	Number             *NumberColumn             `json:"number,omitempty"`
	Currency           *CurrencyColumn           `json:"currency,omitempty"`
	DateTime           *DateTimeColumn           `json:"dateTime,omitempty"`
	Lookup             *LookupColumn             `json:"lookup,omitempty"`
	Boolean            *BooleanColumn            `json:"boolean,omitempty"`
	PersonOrGroup      *PersonOrGroupColumn      `json:"personOrGroup,omitempty"`
	HyperlinkOrPicture *HyperlinkOrPictureColumn `json:"hyperlinkOrPicture,omitempty"`
}

// ChoiceColumn holds the options block for a choice column.
type ChoiceColumn struct {
	AllowTextEntry bool     `json:"allowTextEntry"`
	Choices        []string `json:"choices"`
	DisplayAs      string   `json:"displayAs,omitempty"`
}

// NumberColumn holds the options block for a number column.
type NumberColumn struct {
	DecimalPlaces string `json:"decimalPlaces,omitempty"`
}

// CurrencyColumn holds the options block for a currency column.
type CurrencyColumn struct {
	Locale string `json:"locale,omitempty"`
}

// DateTimeColumn holds the options block for a date/time column.
type DateTimeColumn struct {
	DisplayAs string `json:"displayAs,omitempty"`
	Format    string `json:"format,omitempty"`
}

// LookupColumn holds the options block for a lookup column.
type LookupColumn struct {
	ListID     string `json:"listId"`
	ColumnName string `json:"columnName"`
}

// BooleanColumn holds the (empty) options block for a yes/no column.
type BooleanColumn struct{}

// PersonOrGroupColumn holds the options block for a person-or-group column.
type PersonOrGroupColumn struct {
	AllowMultipleSelection bool   `json:"allowMultipleSelection"`
	ChooseFromType         string `json:"chooseFromType,omitempty"`
}

// HyperlinkOrPictureColumn holds the options block for a hyperlink column.
type HyperlinkOrPictureColumn struct {
	IsPicture bool `json:"isPicture"`
}

// ContentTypeList represents a collection of content types.
type ContentTypeList struct {
	Value []ContentType `json:"value"`
}

// ContentType represents a named schema template for list items.
type ContentType struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Group       string       `json:"group,omitempty"`
	Base        *ContentType `json:"base,omitempty"`
}

// ListItemList represents a collection of list items.
type ListItemList struct {
	Value []ListItem `json:"value"`
}

// ListItem represents a row in a list, tagged with a content type and
// carrying its expanded field map.
type ListItem struct {
	ID          string          `json:"id,omitempty"`
	WebURL      string          `json:"webUrl,omitempty"`
	ContentType ContentTypeInfo `json:"contentType,omitempty"`
	Fields      FieldValueSet   `json:"fields,omitempty"`
}

// ContentTypeInfo is the content-type reference attached to a list item.
type ContentTypeInfo struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// FieldValueSet is the name-to-value map of metadata on a list item.
type FieldValueSet map[string]any

// String returns the value for key when it is a string, or "" otherwise.
func (f FieldValueSet) String(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}
