// Package appenv gives a CLI application a standardized on-disk
// environment: a per-user home directory and a per-invocation local
// directory, each optionally holding a flat properties file.
//
// # Home vs Local
//
// Home tier: lives in the user's home directory (default
// ~/.{app-name}) and persists across working directories. Put per-user
// defaults here.
//
// Local tier: lives in the working directory (default ./.{app-name}) and
// scopes settings to one project or invocation site. Put per-project
// overrides here.
//
// MergedProperties combines both tiers, local winning on key conflicts,
// so an app reads one view while users keep defaults and overrides
// separate.
//
// Directories are only ever created by the Builder, and only when
// explicitly requested with WithHomeDirectory/WithLocalDirectory. Every
// property operation requires its tier directory to already exist:
// presence of the directory is the signal that the app opted in to that
// storage tier.
//
// Usage:
//
//	app, err := appenv.NewBuilder().
//		AppName("cli-power-tools").
//		WithHomeDirectory().
//		WithLocalDirectory().
//		Build()
//	if err != nil {
//		// handle
//	}
//	props, err := app.MergedProperties()
package appenv
