package internal

import (
	"os"
	"path/filepath"
)

var (
	DefaultAppName          = "lootvault"
	DefaultAppCMDShortCut   = "lv"
	DefaultConfigFolderName = DefaultAppName
	DefaultConfigPath       = filepath.Join(os.Getenv("HOME"), ".config", DefaultConfigFolderName)
	DefaultStorePath        = filepath.Join(DefaultConfigPath, "lootvault.db")
	DefaultDotDir           = "." + DefaultConfigFolderName
	DefaultConfigFile       = filepath.Join(DefaultDotDir, "config.json")
	DefaultGlobalConfigFile = filepath.Join(DefaultConfigPath, "config.json")
)
