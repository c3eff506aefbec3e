// Package config loads and persists application settings. Settings live in
// a YAML file under the user's home directory and every key can be
// overridden through SP_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".sharepoint-client"
	configFileName = "config.yaml"
	envPrefix      = "SP"
)

// Defaults for the document-library wiring. The site, drive and list
// identifiers have no sensible defaults and must come from the config file
// or environment.
const (
	DefaultSiteURLSuffix     = "/sites/sptraining"
	DefaultDocSetContentType = "0x0120D520"
	DefaultCustomField       = "DocumentSetDescription"
)

// Configuration holds all persisted application settings.
type Configuration struct {
	TenantID     string `mapstructure:"tenant_id" yaml:"tenant_id"`
	ClientID     string `mapstructure:"client_id" yaml:"client_id"`
	ClientSecret string `mapstructure:"client_secret" yaml:"client_secret"`

	// SiteURLSuffix selects the root site: the first site whose web URL
	// ends with this suffix.
	SiteURLSuffix string `mapstructure:"site_url_suffix" yaml:"site_url_suffix"`

	// Fixed resource identifiers for the document library.
	SiteID  string `mapstructure:"site_id" yaml:"site_id"`
	DriveID string `mapstructure:"drive_id" yaml:"drive_id"`
	ListID  string `mapstructure:"list_id" yaml:"list_id"`

	// DocSetContentTypeID is the content type forced onto newly created
	// document sets. CustomField is the extra metadata field written
	// alongside the title.
	DocSetContentTypeID string `mapstructure:"docset_content_type_id" yaml:"docset_content_type_id"`
	CustomField         string `mapstructure:"custom_field" yaml:"custom_field"`

	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// DefaultDir returns the directory the config file lives in.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// Load reads configuration from the default directory.
func Load() (*Configuration, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return LoadFromDir(dir)
}

// LoadFromDir reads configuration from a specific directory. A missing
// config file is not an error; defaults and environment variables still
// apply.
func LoadFromDir(dir string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(configFileName, filepath.Ext(configFileName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("site_url_suffix", DefaultSiteURLSuffix)
	v.SetDefault("docset_content_type_id", DefaultDocSetContentType)
	v.SetDefault("custom_field", DefaultCustomField)

	// Bind every key explicitly so environment overrides reach Unmarshal
	// even when no config file exists.
	for _, key := range []string{
		"tenant_id", "client_id", "client_secret", "site_url_suffix",
		"site_id", "drive_id", "list_id",
		"docset_content_type_id", "custom_field", "debug",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save persists the configuration to the default directory.
func (c *Configuration) Save() error {
	dir, err := DefaultDir()
	if err != nil {
		return err
	}
	return c.SaveToDir(dir)
}

// SaveToDir writes the configuration as YAML. The write is guarded by a
// file lock so concurrent invocations cannot interleave.
func (c *Configuration) SaveToDir(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(dir, configFileName)

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("could not acquire config lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("config file is locked, another instance may be running")
	}
	defer lock.Unlock()

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ValidateCredentials checks that the app-only credential triple is
// present. Missing values are a configuration defect, not a soft failure.
func (c *Configuration) ValidateCredentials() error {
	var missing []string
	if c.TenantID == "" {
		missing = append(missing, "tenant_id")
	}
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateLibrary checks that the fixed document-library identifiers are
// present for commands that need them.
func (c *Configuration) ValidateLibrary() error {
	var missing []string
	if c.SiteID == "" {
		missing = append(missing, "site_id")
	}
	if c.DriveID == "" {
		missing = append(missing, "drive_id")
	}
	if c.ListID == "" {
		missing = append(missing, "list_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
