package appenv

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/rebelcraft/appenv/lib/util"
	"github.com/rebelcraft/appenv/lib/util/logger"
)

var log = logger.GetLogger()

// App is an immutable view of a CLI application's on-disk environment.
// All paths are absolute and fixed at construction time; use a Builder to
// obtain one.
type App struct {
	appName             string
	homeDir             string
	localDir            string
	homePropertiesFile  string
	localPropertiesFile string
}

// Name returns the app name the environment was built for.
func (a *App) Name() string { return a.appName }

// HomeDir returns the absolute path of the per-user home tier directory.
func (a *App) HomeDir() string { return a.homeDir }

// LocalDir returns the absolute path of the per-working-directory local
// tier directory.
func (a *App) LocalDir() string { return a.localDir }

// HomePropertiesFile returns the absolute path of the home tier's
// properties file.
func (a *App) HomePropertiesFile() string { return a.homePropertiesFile }

// LocalPropertiesFile returns the absolute path of the local tier's
// properties file.
func (a *App) LocalPropertiesFile() string { return a.localPropertiesFile }

// requireDir gates every property operation: a tier is only usable when
// its directory exists on disk. Directories are never created here; the
// Builder owns creation, so a missing directory means the app never opted
// in to that tier.
func (a *App) requireDir(tier, dir string) error {
	if !util.CheckFileExists(dir) {
		log.WithFields(logrus.Fields{
			"tier": tier,
			"dir":  dir,
		}).Debug("Tier directory does not exist")
		return oops.Code(CodeDirectoryMissing).Errorf("%s directory does not exist: %s", tier, dir)
	}
	return nil
}

// LoadHomeProperties reads the home tier's property set. A missing
// properties file yields an empty set; a missing home directory is an
// error.
func (a *App) LoadHomeProperties() (Properties, error) {
	if err := a.requireDir("home", a.homeDir); err != nil {
		return nil, err
	}
	return loadPropertiesFile(a.homePropertiesFile)
}

// LoadLocalProperties reads the local tier's property set. A missing
// properties file yields an empty set; a missing local directory is an
// error.
func (a *App) LoadLocalProperties() (Properties, error) {
	if err := a.requireDir("local", a.localDir); err != nil {
		return nil, err
	}
	return loadPropertiesFile(a.localPropertiesFile)
}

// SaveHomeProperties overwrites the home tier's properties file with
// props.
func (a *App) SaveHomeProperties(props Properties) error {
	if err := a.requireDir("home", a.homeDir); err != nil {
		return err
	}
	return savePropertiesFile(a.homePropertiesFile, a.appName, props)
}

// SaveLocalProperties overwrites the local tier's properties file with
// props.
func (a *App) SaveLocalProperties(props Properties) error {
	if err := a.requireDir("local", a.localDir); err != nil {
		return err
	}
	return savePropertiesFile(a.localPropertiesFile, a.appName, props)
}

// MergedProperties loads both tiers and returns a new set seeded with all
// home entries and then overwritten with all local entries, so a key
// present in both tiers takes the local value. Both tier directories must
// exist; the merged view is never persisted.
func (a *App) MergedProperties() (Properties, error) {
	homeProps, err := a.LoadHomeProperties()
	if err != nil {
		return nil, err
	}
	localProps, err := a.LoadLocalProperties()
	if err != nil {
		return nil, err
	}

	merged := homeProps.Clone()
	for k, v := range localProps {
		merged[k] = v
	}

	log.WithFields(logrus.Fields{
		"home":   len(homeProps),
		"local":  len(localProps),
		"merged": len(merged),
	}).Debug("Computed merged properties")
	return merged, nil
}

// DeleteApp recursively deletes the home and local directories, each
// independently and each only if it exists. Entries removed before a
// failure stay removed; there is no rollback.
func (a *App) DeleteApp() error {
	log.WithFields(logrus.Fields{
		"home":  a.homeDir,
		"local": a.localDir,
	}).Debug("Deleting app directories")
	if err := deleteTree(a.homeDir); err != nil {
		return err
	}
	return deleteTree(a.localDir)
}

// deleteTree removes dir and everything beneath it, children before
// parents. A missing dir is a no-op. The walk collects every path first,
// then removes in reverse walk order so each directory is empty by the
// time it is removed.
func deleteTree(dir string) error {
	if !util.CheckFileExists(dir) {
		log.WithField("dir", dir).Debug("Directory does not exist, nothing to delete")
		return nil
	}

	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to walk directory for deletion")
		return oops.Code(CodeDeleteFailed).Wrapf(err, "failed to delete directory %s", dir)
	}

	for i := len(paths) - 1; i >= 0; i-- {
		log.WithField("path", paths[i]).Debug("Deleting")
		if err := os.Remove(paths[i]); err != nil {
			log.WithError(err).Error("Failed to delete entry")
			return oops.Code(CodeDeleteFailed).Wrapf(err, "failed to delete %s", paths[i])
		}
	}
	return nil
}
