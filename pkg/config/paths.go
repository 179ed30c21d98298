package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultFiles are the file names probed in each configuration
// directory, one per dialect.
var DefaultFiles = []string{"main.lisp", "main.star"}

// DefaultDirs returns the platform's configuration directories in
// probe order.
func DefaultDirs() []string {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return nil
		}
		return []string{filepath.Join(appData, "empl", "config")}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		return []string{filepath.Join(home, "Library", "Application Support", "empl")}
	default:
		var dirs []string
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			dirs = append(dirs, filepath.Join(xdg, "empl"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".config", "empl"))
		}
		return dirs
	}
}

// Locate finds the first existing configuration file, probing every
// default file name in every default directory.
func Locate() (string, error) {
	return locate(DefaultDirs(), DefaultFiles)
}

func locate(dirs, files []string) (string, error) {
	var tried []string
	for _, dir := range dirs {
		for _, name := range files {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				slog.Debug("found configuration", "path", path)
				return path, nil
			}
			slog.Debug("no configuration", "path", path)
			tried = append(tried, path)
		}
	}
	return "", &ErrNotFound{Tried: tried}
}
