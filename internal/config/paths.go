package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDirName = "jobsearch"

// DataDir returns the per-user directory holding the database, log and config files.
func DataDir() string {
	return filepath.Join(xdg.DataHome, appDirName)
}
