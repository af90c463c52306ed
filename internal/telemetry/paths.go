// Package telemetry is the ambient side channel the search driver reports
// per-call statistics through: peak arena size, generation counts, and
// best score, persisted across process runs via BadgerDB so that tuning
// runs of cmd/bluefin-bench can be compared call over call. Grounded on
// the teacher's internal/storage package.
package telemetry

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "bluefin"

// baseAppDataDir resolves the platform-specific root a per-OS application
// data directory lives under, the same three-way split the teacher's
// internal/storage.GetDataDir performs (Library/Application Support on
// darwin, %APPDATA% on windows, XDG_DATA_HOME elsewhere), generalized here
// to take the leaf subdirectory name as a parameter instead of hard-coding
// one app's layout: this package only ever needs a "telemetry" leaf, but
// keeping the OS switch itself parameterized (rather than duplicated per
// leaf, as the teacher does across GetNNUEDir/GetDatabaseDir) is the more
// idiomatic Go shape for a helper with exactly one present caller.
func baseAppDataDir(leaf string) (string, error) {
	var baseDir string
	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(baseDir, appName, leaf), nil
}

// dataDir returns the directory telemetry's badger store should open,
// honoring BLUEFIN_TELEMETRY_DIR as an override before falling back to
// baseAppDataDir's per-OS convention.
func dataDir() (string, error) {
	dir := os.Getenv("BLUEFIN_TELEMETRY_DIR")
	if dir == "" {
		var err error
		dir, err = baseAppDataDir("telemetry")
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
