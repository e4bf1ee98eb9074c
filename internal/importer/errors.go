package importer

import (
	"errors"
	"fmt"
)

// FileError marks a failure that invalidates the whole upload (unsupported
// format, missing required columns, undecodable content). No row is
// processed once a FileError is raised; the API layer maps it to a 4xx.
type FileError struct {
	Reason string
}

func (e *FileError) Error() string {
	return e.Reason
}

func fileErrorf(format string, args ...any) error {
	return &FileError{Reason: fmt.Sprintf(format, args...)}
}

// IsFileError reports whether err aborts the whole import rather than a
// single row.
func IsFileError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe)
}
