// Package ftsettings reads user settings from ~/.filetug/dirtug.yaml.
package ftsettings

import (
	"fmt"

	"github.com/filetug/dirtug/pkg/fsutils"
)

type Settings struct {
	ShowHidden       bool   `yaml:"show_hidden,omitempty"`
	FolderCountLimit int    `yaml:"folder_count_limit,omitempty"`
	OpenCommand      string `yaml:"open_command,omitempty"`
	LogFile          string `yaml:"log_file,omitempty"`
	LogLevel         string `yaml:"log_level,omitempty"`
}

func (s Settings) Validate() error {
	if s.FolderCountLimit < 0 {
		return fmt.Errorf("folder_count_limit must not be negative, got %d", s.FolderCountLimit)
	}
	return nil
}

var readYAML = fsutils.ReadYAMLFile

// Load reads settings from filePath. With an empty filePath the default
// location is used and a missing file yields zero settings.
// An explicitly given file must exist.
func Load(filePath string) (settings Settings, err error) {
	required := filePath != ""
	if !required {
		if filePath, err = DefaultSettingsPath(); err != nil {
			return settings, nil
		}
	}
	if err = readYAML(fsutils.ExpandHome(filePath), required, &settings); err != nil {
		return settings, fmt.Errorf("failed to read settings from %s: %w", filePath, err)
	}
	if err = settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings in %s: %w", filePath, err)
	}
	settings.LogFile = fsutils.ExpandHome(settings.LogFile)
	return settings, nil
}
