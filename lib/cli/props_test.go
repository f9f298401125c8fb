package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebelcraft/appenv/lib/appenv"
)

func testApp(t *testing.T) *appenv.App {
	t.Helper()
	app, err := appenv.NewBuilder().
		AppName("cli-test").
		HomeDir(t.TempDir()).
		LocalDir(t.TempDir()).
		Build()
	require.NoError(t, err)
	return app
}

func TestLoadTier(t *testing.T) {
	app := testApp(t)

	require.NoError(t, app.SaveHomeProperties(appenv.Properties{"key": "home", "h": "1"}))
	require.NoError(t, app.SaveLocalProperties(appenv.Properties{"key": "local"}))

	home, err := loadTier(app, "home")
	require.NoError(t, err)
	assert.Equal(t, "home", home["key"])

	local, err := loadTier(app, "local")
	require.NoError(t, err)
	assert.Equal(t, "local", local["key"])

	merged, err := loadTier(app, "merged")
	require.NoError(t, err)
	assert.Equal(t, "local", merged["key"])
	assert.Equal(t, "1", merged["h"])

	_, err = loadTier(app, "global")
	assert.Error(t, err)
}

func TestSaveTier(t *testing.T) {
	app := testApp(t)

	require.NoError(t, saveTier(app, "home", appenv.Properties{"a": "1"}))
	require.NoError(t, saveTier(app, "local", appenv.Properties{"b": "2"}))

	home, err := app.LoadHomeProperties()
	require.NoError(t, err)
	assert.Equal(t, appenv.Properties{"a": "1"}, home)

	assert.Error(t, saveTier(app, "merged", appenv.Properties{}))
	assert.Error(t, saveTier(app, "nope", appenv.Properties{}))
}

// Every documented subcommand must be wired into the root command.
func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"env":    false,
		"init":   false,
		"get":    false,
		"set":    false,
		"unset":  false,
		"list":   false,
		"delete": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "command %q not registered", name)
	}
}
