package appenv

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/rebelcraft/appenv/lib/fileutil"
	"github.com/rebelcraft/appenv/lib/util"
)

// DefaultAppName is used when the caller never sets an app name.
const DefaultAppName = "app"

// DefaultPropertiesFileName is the default file name for both tiers'
// properties files.
const DefaultPropertiesFileName = "app.properties"

// Builder accumulates the configuration for an App and constructs it with
// Build. A Builder is consumed by Build and cannot be reused.
//
// Defaults when unset: app name "app", home directory
// {user-home}/.{escaped app name}, local directory
// {working-dir}/.{escaped app name}, and "app.properties" for both tiers'
// file names. No directory is created on disk unless WithHomeDirectory or
// WithLocalDirectory is called.
type Builder struct {
	appName                 string
	homeDirOverride         string
	localDirOverride        string
	workingDirOverride      string
	homePropertiesFileName  string
	localPropertiesFileName string
	createHomeDir           bool
	createLocalDir          bool
	built                   bool

	// environment lookups, swappable in tests
	userHome   func() string
	workingDir func() string
}

// NewBuilder returns a Builder with environment-derived defaults.
func NewBuilder() *Builder {
	return &Builder{
		homePropertiesFileName:  DefaultPropertiesFileName,
		localPropertiesFileName: DefaultPropertiesFileName,
		userHome:                util.UserHome,
		workingDir:              util.WorkingDir,
	}
}

// AppName sets the app name the environment is derived from.
func (b *Builder) AppName(name string) *Builder {
	b.appName = name
	return b
}

// HomeDir overrides the home tier directory. The path is used verbatim
// (after being made absolute) instead of the derived default.
func (b *Builder) HomeDir(dir string) *Builder {
	b.homeDirOverride = dir
	return b
}

// LocalDir overrides the local tier directory. The path is used verbatim
// (after being made absolute) instead of the derived default.
func (b *Builder) LocalDir(dir string) *Builder {
	b.localDirOverride = dir
	return b
}

// HomePropertiesFileName sets the file name of the home tier's properties
// file.
func (b *Builder) HomePropertiesFileName(name string) *Builder {
	b.homePropertiesFileName = name
	return b
}

// LocalPropertiesFileName sets the file name of the local tier's
// properties file.
func (b *Builder) LocalPropertiesFileName(name string) *Builder {
	b.localPropertiesFileName = name
	return b
}

// WithHomeDirectory requests creation of the home tier directory during
// Build.
func (b *Builder) WithHomeDirectory() *Builder {
	b.createHomeDir = true
	return b
}

// WithLocalDirectory requests creation of the local tier directory during
// Build.
func (b *Builder) WithLocalDirectory() *Builder {
	b.createLocalDir = true
	return b
}

// WithWorkingDirectory sets the base directory the default local tier
// directory is derived from, instead of the process working directory.
func (b *Builder) WithWorkingDirectory(dir string) *Builder {
	b.workingDirOverride = dir
	return b
}

// Build resolves all paths and constructs the App, creating any requested
// tier directories (with missing ancestors) on disk. Build is terminal:
// the Builder cannot be reused afterwards. Directory creation failure
// aborts construction.
func (b *Builder) Build() (*App, error) {
	if b.built {
		return nil, oops.Errorf("builder already consumed by Build")
	}
	b.built = true

	appName := b.appName
	if appName == "" {
		appName = DefaultAppName
	}
	// The escaped name is the only form that ever becomes a path segment,
	// so an arbitrary app name cannot inject separators into either tier
	// path.
	dirName := "." + fileutil.EscapeName(appName)

	homeDir := b.homeDirOverride
	if homeDir == "" {
		homeDir = filepath.Join(b.userHome(), dirName)
	}
	workingDir := b.workingDirOverride
	if workingDir == "" {
		workingDir = b.workingDir()
	}
	localDir := b.localDirOverride
	if localDir == "" {
		localDir = filepath.Join(workingDir, dirName)
	}

	homeDir, err := filepath.Abs(homeDir)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to resolve home directory")
	}
	localDir, err = filepath.Abs(localDir)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to resolve local directory")
	}

	app := &App{
		appName:             appName,
		homeDir:             homeDir,
		localDir:            localDir,
		homePropertiesFile:  filepath.Join(homeDir, b.homePropertiesFileName),
		localPropertiesFile: filepath.Join(localDir, b.localPropertiesFileName),
	}

	log.WithFields(logrus.Fields{
		"app":   appName,
		"home":  app.homeDir,
		"local": app.localDir,
	}).Debug("Built app environment")

	if b.createHomeDir {
		if err := os.MkdirAll(app.homeDir, 0o755); err != nil {
			log.WithError(err).Error("Failed to create home directory")
			return nil, oops.Code(CodeDirectoryCreateFailed).Wrapf(err, "failed to create home directory %s", app.homeDir)
		}
	}
	if b.createLocalDir {
		if err := os.MkdirAll(app.localDir, 0o755); err != nil {
			log.WithError(err).Error("Failed to create local directory")
			return nil, oops.Code(CodeDirectoryCreateFailed).Wrapf(err, "failed to create local directory %s", app.localDir)
		}
	}

	return app, nil
}
