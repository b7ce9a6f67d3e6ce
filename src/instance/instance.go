// Package instance resolves named odoo instances to their connection
// configuration. Each instance has one YAML file, <dir>/<name>.yaml, holding
// at least the server URL and an API key.
package instance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/joergsteffens/odoo-cli/src/odooapi"
)

// Instance is one configured odoo deployment.
type Instance struct {
	Name       string
	BaseURL    string
	APIKey     string
	Database   string
	ConfigFile string
}

// MissingConfigError marks an instance whose config file is absent or
// unreadable. The snapshot driver treats this as a per-instance failure.
type MissingConfigError struct {
	Name string
	Path string
	Err  error
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing config for instance %s: %s: %v", e.Name, e.Path, e.Err)
}

func (e *MissingConfigError) Unwrap() error { return e.Err }

// Load reads <dir>/<name>.yaml and returns the instance record.
func Load(dir, name string) (Instance, error) {
	path := filepath.Join(dir, name+".yaml")
	if _, err := os.Stat(path); err != nil {
		return Instance{}, &MissingConfigError{Name: name, Path: path, Err: err}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Instance{}, &MissingConfigError{Name: name, Path: path, Err: err}
	}

	inst := Instance{
		Name:       name,
		BaseURL:    v.GetString("url"),
		APIKey:     v.GetString("apikey"),
		Database:   v.GetString("database"),
		ConfigFile: path,
	}
	if inst.BaseURL == "" {
		return Instance{}, fmt.Errorf("instance %s: %s: url must be set", name, path)
	}
	if inst.APIKey == "" {
		return Instance{}, fmt.Errorf("instance %s: %s: apikey must be set", name, path)
	}
	return inst, nil
}

// Connection converts the instance into an odooapi connection.
func (i Instance) Connection() odooapi.Connection {
	return odooapi.Connection{BaseURL: i.BaseURL, APIKey: i.APIKey, Database: i.Database}
}
