// Config loading for the noty CLI.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/noty/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys in config.yaml.
	cfgKeyNotesFile    = "notes_file"
	cfgKeyExportFormat = "export_format"
)

// configHeader is written above the generated config.yaml.
const configHeader = `# noty configuration
#
# notes_file:    path to the notes file (overridden by --file)
#                unset: $NOTY_NOTES_FILE, else ~/.noty_notes.json
# export_format: lines, report, or yaml (overridden by --format)
`

// configFile holds the structure written to config.yaml.
type configFile struct {
	NotesFile    string `yaml:"notes_file,omitempty"`
	ExportFormat string `yaml:"export_format"`
}

// loadConfig reads config.yaml from configDir using Viper.
// A missing config.yaml or config directory is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyExportFormat, types.DefaultExportFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// writeConfigIfMissing creates config.yaml with the given values if the file
// does not exist. Returns false without error when it already exists.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
