package ftsettings

import (
	"os"
	"path/filepath"
)

const UserDir = "~/.filetug"

const settingsFileName = "dirtug.yaml"

var osUserHomeDir = os.UserHomeDir

func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// DefaultSettingsPath is where Load looks when no path is given.
func DefaultSettingsPath() (string, error) {
	userDir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, settingsFileName), nil
}
