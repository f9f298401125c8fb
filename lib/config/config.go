package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rebelcraft/appenv/lib/appenv"
	"github.com/rebelcraft/appenv/lib/util"
	"github.com/rebelcraft/appenv/lib/util/logger"
)

var (
	// CfgFile is an explicit config file path, set from the CLI flag.
	CfgFile string
	log     = logger.GetLogger()
)

// APPENV_BASE_DIR holds the tool's own configuration, separate from the
// environments it manages for other apps.
const APPENV_BASE_DIR = ".appenv"

// InitConfig wires up viper: explicit config file if given, otherwise
// $HOME/.appenv/config.yaml, created with defaults on first run.
func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildConfigDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	handleConfigFile()
}

func setDefaults() {
	viper.SetDefault("app_name", appenv.DefaultAppName)
	viper.SetDefault("home_dir", "")
	viper.SetDefault("local_dir", "")
	viper.SetDefault("working_dir", "")
	viper.SetDefault("home_properties_file", appenv.DefaultPropertiesFileName)
	viper.SetDefault("local_properties_file", appenv.DefaultPropertiesFileName)
}

// AppConfig is the CLI-level configuration that feeds an appenv.Builder.
// Empty path fields mean "use the derived default".
type AppConfig struct {
	AppName                 string
	HomeDir                 string
	LocalDir                string
	WorkingDir              string
	HomePropertiesFileName  string
	LocalPropertiesFileName string
}

// NewAppConfigFromViper creates a new AppConfig from current viper settings.
func NewAppConfigFromViper() *AppConfig {
	return &AppConfig{
		AppName:                 viper.GetString("app_name"),
		HomeDir:                 viper.GetString("home_dir"),
		LocalDir:                viper.GetString("local_dir"),
		WorkingDir:              viper.GetString("working_dir"),
		HomePropertiesFileName:  viper.GetString("home_properties_file"),
		LocalPropertiesFileName: viper.GetString("local_properties_file"),
	}
}

// NewBuilder returns an appenv.Builder primed with this configuration.
func (c *AppConfig) NewBuilder() *appenv.Builder {
	b := appenv.NewBuilder().AppName(c.AppName)
	if c.HomeDir != "" {
		b.HomeDir(c.HomeDir)
	}
	if c.LocalDir != "" {
		b.LocalDir(c.LocalDir)
	}
	if c.WorkingDir != "" {
		b.WithWorkingDirectory(c.WorkingDir)
	}
	if c.HomePropertiesFileName != "" {
		b.HomePropertiesFileName(c.HomePropertiesFileName)
	}
	if c.LocalPropertiesFileName != "" {
		b.LocalPropertiesFileName(c.LocalPropertiesFileName)
	}
	return b
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file
	if err := viper.SafeWriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildConfigDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// BuildConfigDirPath returns the tool's own config directory,
// $HOME/.appenv.
func BuildConfigDirPath() string {
	return filepath.Join(util.UserHome(), APPENV_BASE_DIR)
}
