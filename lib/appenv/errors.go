package appenv

import (
	"github.com/samber/oops"
)

// Error codes attached to every error returned by this package. Callers
// discriminate failure classes with HasCode instead of matching message
// text.
const (
	// CodeDirectoryMissing: an operation required a tier directory that
	// does not exist. Directories are only ever created by the Builder.
	CodeDirectoryMissing = "directory_missing"
	// CodeDirectoryCreateFailed: the Builder could not create a requested
	// directory. Fatal to construction.
	CodeDirectoryCreateFailed = "directory_create_failed"
	// CodePropertyReadFailed: reading or parsing a properties file failed.
	CodePropertyReadFailed = "property_read_failed"
	// CodePropertyWriteFailed: writing a properties file failed.
	CodePropertyWriteFailed = "property_write_failed"
	// CodeDeleteFailed: a file or directory could not be removed during
	// recursive deletion.
	CodeDeleteFailed = "delete_failed"
)

// HasCode reports whether err carries the given appenv error code.
func HasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	if oopsErr, ok := oops.AsOops(err); ok {
		return oopsErr.Code() == code
	}
	return false
}
