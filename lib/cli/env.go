package cli

import (
	"github.com/spf13/cobra"

	"github.com/rebelcraft/appenv/lib/util"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the resolved environment paths and which tiers exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newBuilder().Build()
		if err != nil {
			return err
		}
		cmd.Printf("app:              %s\n", app.Name())
		cmd.Printf("home dir:         %s (%s)\n", app.HomeDir(), existence(app.HomeDir()))
		cmd.Printf("home properties:  %s\n", app.HomePropertiesFile())
		cmd.Printf("local dir:        %s (%s)\n", app.LocalDir(), existence(app.LocalDir()))
		cmd.Printf("local properties: %s\n", app.LocalPropertiesFile())
		return nil
	},
}

func existence(path string) string {
	if util.CheckDirExists(path) {
		return "exists"
	}
	return "missing"
}

func init() {
	rootCmd.AddCommand(envCmd)
}
