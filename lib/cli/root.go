package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rebelcraft/appenv/lib/appenv"
	"github.com/rebelcraft/appenv/lib/config"
	"github.com/rebelcraft/appenv/lib/util/logger"
)

var log = logger.GetLogger()

var rootCmd = &cobra.Command{
	Use:   "appenv",
	Short: "Manage per-app home and local configuration environments",
	Long: `appenv gives a CLI application a standardized on-disk environment:
a per-user home directory (~/.{app}) and a per-invocation local directory
(./.{app}), each holding a flat properties file. Local values override
home values in the merged view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

// newBuilder returns a builder primed from the resolved configuration.
// Directories are not created unless the caller opts in.
func newBuilder() *appenv.Builder {
	return config.NewAppConfigFromViper().NewBuilder()
}

func init() {
	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.appenv/config.yaml)")
	rootCmd.PersistentFlags().String("app", "", "app name the environment is derived from")
	rootCmd.PersistentFlags().String("home-dir", "", "override the home tier directory")
	rootCmd.PersistentFlags().String("local-dir", "", "override the local tier directory")
	rootCmd.PersistentFlags().String("working-dir", "", "base directory for the derived local tier path")
	rootCmd.PersistentFlags().String("home-properties-file", "", "file name of the home tier properties file")
	rootCmd.PersistentFlags().String("local-properties-file", "", "file name of the local tier properties file")

	viper.BindPFlag("app_name", rootCmd.PersistentFlags().Lookup("app"))
	viper.BindPFlag("home_dir", rootCmd.PersistentFlags().Lookup("home-dir"))
	viper.BindPFlag("local_dir", rootCmd.PersistentFlags().Lookup("local-dir"))
	viper.BindPFlag("working_dir", rootCmd.PersistentFlags().Lookup("working-dir"))
	viper.BindPFlag("home_properties_file", rootCmd.PersistentFlags().Lookup("home-properties-file"))
	viper.BindPFlag("local_properties_file", rootCmd.PersistentFlags().Lookup("local-properties-file"))
}
