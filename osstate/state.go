// Package osstate keeps a directory tree together with a current working
// directory, the way an operating system would.
package osstate

import (
	"github.com/klingtnet/dtree"
)

// State is a directory tree and the current working directory within it.
// State is not safe for concurrent use, see SyncState.
type State struct {
	root *dtree.Tree
	cwd  []string
}

// New returns a state with an empty tree and the root as working directory.
func New() *State {
	return NewFrom(dtree.New())
}

// NewFrom returns a state operating on root, starting at the root.
func NewFrom(root *dtree.Tree) *State {
	return &State{root: root}
}

// Tree returns the root of the directory tree.
//
// Changes made through it bypass the working directory bookkeeping. Nothing
// can be removed from a tree, so the working directory stays valid.
func (s *State) Tree() *dtree.Tree {
	return s.root
}

// Cwd returns the segments of the working directory, relative to the root.
func (s *State) Cwd() []string {
	cwd := make([]string, len(s.cwd))
	copy(cwd, s.cwd)

	return cwd
}

// Pwd returns the working directory formatted as a path.
func (s *State) Pwd() string {
	return dtree.FormatPath(s.cwd)
}

// Chdir changes the working directory.  An empty path returns to the root,
// anything else is resolved relative to the working directory.  There is no
// notion of "..", every segment must name an existing directory.
//
// On error the working directory is left unchanged.
func (s *State) Chdir(path []string) error {
	if len(path) == 0 {
		s.cwd = nil
		return nil
	}

	chdirErr, err := dtree.Visit(s.root, s.cwd, func(cwd *dtree.Tree) error {
		return cwd.WithSubdir(path, func(*dtree.Tree) {})
	})
	if err != nil {
		return err
	}
	if chdirErr != nil {
		return chdirErr
	}

	cwd := make([]string, 0, len(s.cwd)+len(path))
	cwd = append(cwd, s.cwd...)
	s.cwd = append(cwd, path...)

	return nil
}

// Mkdir creates the directory name inside the working directory.
func (s *State) Mkdir(name string) error {
	mkdirErr, err := dtree.VisitMut(s.root, s.cwd, func(cwd *dtree.Tree) error {
		return cwd.Mkdir(name)
	})
	if err != nil {
		return err
	}

	return mkdirErr
}

// Paths returns the path of every leaf below the working directory,
// relative to it and in no particular order.
func (s *State) Paths() ([]string, error) {
	return dtree.Visit(s.root, s.cwd, (*dtree.Tree).Paths)
}
