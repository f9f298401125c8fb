// Package config provides the CLI-level configuration layer for appenv.
//
// Settings resolve in the usual viper order: command-line flags override
// values from the config file, which override built-in defaults. The
// config file lives at $HOME/.appenv/config.yaml unless an explicit path
// is given, and is created with defaults on first run.
//
// This layer only decides what to ask the appenv.Builder for; path
// derivation and sanitization stay in the appenv package.
package config
