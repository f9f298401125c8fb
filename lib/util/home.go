package util

import (
	"os"

	"github.com/rebelcraft/appenv/lib/util/logger"
)

var log = logger.GetLogger()

// UserHome returns the current user's home directory.
// Falls back to $HOME environment variable if os.UserHomeDir fails.
// As a last resort, uses the current working directory rather than panicking,
// which allows operation in containerized environments where $HOME may not be set.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback: try $HOME directly (works on most Unix systems)
		if home := os.Getenv("HOME"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
			return home
		}
		// Last resort on Windows
		if home := os.Getenv("USERPROFILE"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
			return home
		}
		// Final fallback: use the current working directory. Less correct than a
		// proper home directory but preferable to panicking during package
		// initialization.
		if wd, wdErr := os.Getwd(); wdErr == nil {
			log.WithError(err).Warn("os.UserHomeDir and $HOME unavailable; falling back to working directory")
			return wd
		}
		panic("appenv: unable to determine home directory; set $HOME environment variable")
	}

	return homeDir
}

// WorkingDir returns the process working directory, or "." if it cannot
// be determined (e.g. the directory was removed from under the process).
func WorkingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		log.WithError(err).Warn("os.Getwd failed, falling back to \".\"")
		return "."
	}
	return wd
}
