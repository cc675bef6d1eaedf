// config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loaded is the outcome of looking up and building a configuration.
type Loaded struct {
	Config   *Configuration
	Warnings []Warning
	// Path is the file that was read, empty when the defaults were used.
	Path string
}

// Load reads an explicit config file when one is given, otherwise searches the project
// directory and then the home directory for FileName. A missing file is not an error:
// the defaults are used and a warning is returned.
func Load(projectDir, explicitPath string) (*Loaded, error) {
	v := viper.New()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		if filepath.Ext(explicitPath) == "" {
			v.SetConfigType("yaml")
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		if projectDir != "" {
			v.AddConfigPath(projectDir)
		}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath == "" && errors.As(err, &notFound) {
			return &Loaded{
				Config: Default(),
				Warnings: []Warning{{
					Kind: WarningNotFound,
					Message: fmt.Sprintf("Config file %s not found in the project path nor in the home directory. Default config will be used.",
						FileName),
				}},
			}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", v.ConfigFileUsed(), err)
	}
	cfg, warnings := Build(f)
	return &Loaded{Config: cfg, Warnings: warnings, Path: v.ConfigFileUsed()}, nil
}
