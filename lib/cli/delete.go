package cli

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Recursively delete the app's home and local directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes {
			return oops.Errorf("refusing to delete without --yes")
		}
		app, err := newBuilder().Build()
		if err != nil {
			return err
		}
		log.WithField("app", app.Name()).Debug("Deleting app environment")
		if err := app.DeleteApp(); err != nil {
			return err
		}
		cmd.Printf("deleted %s\n", app.HomeDir())
		cmd.Printf("deleted %s\n", app.LocalDir())
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "confirm deletion")
	rootCmd.AddCommand(deleteCmd)
}
