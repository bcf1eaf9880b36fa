package dtree

import "fmt"

// ErrSlashInName indicates that a directory name contains the path separator.
var ErrSlashInName = fmt.Errorf("slash in name is invalid")

// ErrEmptyName indicates that a directory name is empty.
var ErrEmptyName = fmt.Errorf("name must not be empty")

// ErrDirExists indicates that a sibling with the same name already exists.
var ErrDirExists = fmt.Errorf("directory exists")

// ErrInvalidChild indicates that a path segment did not match any child.
var ErrInvalidChild = fmt.Errorf("invalid element in path")

// Error carries the offending name or path segment of a failed operation.
// Use errors.Is with one of the sentinel errors above to tell the kinds apart
// and errors.As to recover Name.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(name string, err error) *Error {
	return &Error{Name: name, Err: err}
}
