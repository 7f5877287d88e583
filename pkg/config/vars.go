package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "oiprep"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/oiprep by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cached dataset metadata and
// intermediate selection files.
// Returns ~/.cache/oiprep by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// MetadataDir returns the directory where fetched dataset metadata files
// are stored. Returns ~/.cache/oiprep/metadata by default.
func MetadataDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "metadata")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/oiprep/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/oiprep/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatasetsFilePath returns the full path to the datasets.yaml file that
// describes known dataset releases.
// Returns ~/.config/oiprep/datasets.yaml by default.
func DatasetsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "datasets.yaml")
}

// SelectionFilePath returns the path of the persisted image selection,
// the hand-off point between 'oiprep select' and 'oiprep upload'.
func SelectionFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "selection.json")
}

// ManifestFilePath returns the local path of the generated manifest before
// it is uploaded to the destination store.
func ManifestFilePath(homeDir, name string) string {
	return filepath.Join(CacheDir(homeDir), name)
}
