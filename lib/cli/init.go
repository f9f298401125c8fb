package cli

import (
	"github.com/spf13/cobra"
)

var (
	initHome  bool
	initLocal bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the app's tier directories",
	Long: `Create the home and/or local tier directories for the app. With no
flags both tiers are created. Missing ancestor directories are created
too. Initializing an existing tier is a no-op.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := newBuilder()
		// No flags means both tiers.
		if !initHome && !initLocal {
			initHome = true
			initLocal = true
		}
		if initHome {
			b.WithHomeDirectory()
		}
		if initLocal {
			b.WithLocalDirectory()
		}
		app, err := b.Build()
		if err != nil {
			return err
		}
		if initHome {
			cmd.Printf("created %s\n", app.HomeDir())
		}
		if initLocal {
			cmd.Printf("created %s\n", app.LocalDir())
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initHome, "home", false, "create the home tier directory")
	initCmd.Flags().BoolVar(&initLocal, "local", false, "create the local tier directory")
	rootCmd.AddCommand(initCmd)
}
