// Package cli implements the appenv command tree.
//
// Commands operate on the environment resolved from flags and the config
// file (see the config package): env, init, get, set, unset, list, and
// delete. Only init and delete touch directories; everything else fails
// if the tier it needs was never initialized.
package cli
