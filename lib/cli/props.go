package cli

import (
	"sort"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/rebelcraft/appenv/lib/appenv"
)

var (
	getTier   string
	setTier   string
	unsetTier string
	listTier  string
)

// loadTier reads one tier's property set, or the merged view.
func loadTier(app *appenv.App, tier string) (appenv.Properties, error) {
	switch tier {
	case "home":
		return app.LoadHomeProperties()
	case "local":
		return app.LoadLocalProperties()
	case "merged":
		return app.MergedProperties()
	}
	return nil, oops.Errorf("unknown tier %q (want home, local or merged)", tier)
}

// saveTier writes one tier's property set. The merged view is computed,
// never stored.
func saveTier(app *appenv.App, tier string, props appenv.Properties) error {
	switch tier {
	case "home":
		return app.SaveHomeProperties(props)
	case "local":
		return app.SaveLocalProperties(props)
	case "merged":
		return oops.Errorf("the merged view is read-only")
	}
	return oops.Errorf("unknown tier %q (want home or local)", tier)
}

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a property value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newBuilder().Build()
		if err != nil {
			return err
		}
		props, err := loadTier(app, getTier)
		if err != nil {
			return err
		}
		value, ok := props[args[0]]
		if !ok {
			return oops.Errorf("property %q not set in %s tier", args[0], getTier)
		}
		cmd.Println(value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a property in one tier",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newBuilder().Build()
		if err != nil {
			return err
		}
		props, err := loadTier(app, setTier)
		if err != nil {
			return err
		}
		props[args[0]] = args[1]
		return saveTier(app, setTier, props)
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a property from one tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newBuilder().Build()
		if err != nil {
			return err
		}
		props, err := loadTier(app, unsetTier)
		if err != nil {
			return err
		}
		if _, ok := props[args[0]]; !ok {
			// Nothing to remove; leave the file untouched.
			return nil
		}
		delete(props, args[0])
		return saveTier(app, unsetTier, props)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties of one tier or the merged view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newBuilder().Build()
		if err != nil {
			return err
		}
		props, err := loadTier(app, listTier)
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("%s=%s\n", k, props[k])
		}
		return nil
	},
}

func init() {
	getCmd.Flags().StringVar(&getTier, "tier", "merged", "tier to read (home|local|merged)")
	setCmd.Flags().StringVar(&setTier, "tier", "local", "tier to write (home|local)")
	unsetCmd.Flags().StringVar(&unsetTier, "tier", "local", "tier to write (home|local)")
	listCmd.Flags().StringVar(&listTier, "tier", "merged", "tier to read (home|local|merged)")
	rootCmd.AddCommand(getCmd, setCmd, unsetCmd, listCmd)
}
