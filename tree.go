// Package dtree simulates a hierarchical directory namespace in memory.
//
// A Tree holds uniquely named subdirectories, each owning its own Tree.
// There are no files, no content and no notion of "." or "..".
// Trees are not safe for concurrent use.
package dtree

// Entry is a named subdirectory.
type Entry struct {
	name   string
	subdir *Tree
}

// NewEntry returns an entry with an empty subdirectory.
func NewEntry(name string) (*Entry, error) {
	err := validateName(name)
	if err != nil {
		return nil, err
	}

	return &Entry{name: name, subdir: New()}, nil
}

// Name returns the name of the entry.
func (e *Entry) Name() string {
	return e.name
}

// Subdir returns the contents of the entry.
func (e *Entry) Subdir() *Tree {
	return e.subdir
}

// Tree is a directory holding zero or more uniquely named subdirectories.
// The zero value is an empty tree.
type Tree struct {
	children []*Entry
}

// New returns an empty directory tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of direct subdirectories.
func (t *Tree) Len() int {
	return len(t.children)
}

// Names returns the names of all direct subdirectories in insertion order.
func (t *Tree) Names() []string {
	names := make([]string, 0, len(t.children))
	for _, child := range t.children {
		names = append(names, child.name)
	}

	return names
}

// Entries returns the direct subdirectories.  The returned slice is a copy,
// adding to it does not modify the tree.
func (t *Tree) Entries() []*Entry {
	entries := make([]*Entry, len(t.children))
	copy(entries, t.children)

	return entries
}

// Lookup returns the subdirectory with the given name.
func (t *Tree) Lookup(name string) (*Tree, bool) {
	for _, child := range t.children {
		if child.name == name {
			return child.subdir, true
		}
	}

	return nil, false
}

// Mkdir creates an empty subdirectory called name.
//
// The tree is left untouched if name is empty (ErrEmptyName), contains a
// slash (ErrSlashInName) or is already taken (ErrDirExists).
func (t *Tree) Mkdir(name string) error {
	entry, err := NewEntry(name)
	if err != nil {
		return err
	}

	if _, ok := t.Lookup(name); ok {
		return newError(name, ErrDirExists)
	}
	t.children = append(t.children, entry)

	return nil
}

// resolve follows path one child lookup at a time starting at t.
// An empty path resolves to t itself.
func (t *Tree) resolve(path []string) (*Tree, error) {
	node := t
	for _, segment := range path {
		child, ok := node.Lookup(segment)
		if !ok {
			return nil, newError(segment, ErrInvalidChild)
		}
		node = child
	}

	return node, nil
}

// Visit resolves path below t and returns the result of calling fn with the
// resolved directory.  fn must not modify the directory, use VisitMut for that.
// ErrInvalidChild is returned for the first segment that does not exist,
// in which case fn is not called.
func Visit[R any](t *Tree, path []string, fn func(*Tree) R) (R, error) {
	node, err := t.resolve(path)
	if err != nil {
		var zero R
		return zero, err
	}

	return fn(node), nil
}

// VisitMut is like Visit but fn is granted exclusive access to modify the
// resolved directory.  fn must not access t through any other handle.
func VisitMut[R any](t *Tree, path []string, fn func(*Tree) R) (R, error) {
	node, err := t.resolve(path)
	if err != nil {
		var zero R
		return zero, err
	}

	return fn(node), nil
}

// WithSubdir calls fn with the read-only subdirectory given by path.
func (t *Tree) WithSubdir(path []string, fn func(*Tree)) error {
	_, err := Visit(t, path, func(node *Tree) struct{} {
		fn(node)
		return struct{}{}
	})

	return err
}

// WithSubdirMut calls fn with the subdirectory given by path, which fn may
// modify.  To create a directory at depth and learn whether that succeeded,
// use VisitMut instead:
//
//	mkdirErr, err := VisitMut(t, []string{"a", "b"}, func(b *Tree) error { return b.Mkdir("c") })
func (t *Tree) WithSubdirMut(path []string, fn func(*Tree)) error {
	_, err := VisitMut(t, path, func(node *Tree) struct{} {
		fn(node)
		return struct{}{}
	})

	return err
}

// Paths returns the path of every reachable leaf, in no particular order.
// A tree without subdirectories is a leaf itself and yields "/".
func (t *Tree) Paths() []string {
	if len(t.children) == 0 {
		return []string{Separator}
	}

	var paths []string
	for _, child := range t.children {
		// 🌲 Recurse into subtree.
		for _, subpath := range child.subdir.Paths() {
			paths = append(paths, Separator+child.name+subpath)
		}
	}

	return paths
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	clone := &Tree{children: make([]*Entry, 0, len(t.children))}
	for _, child := range t.children {
		clone.children = append(clone.children, &Entry{
			name:   child.name,
			subdir: child.subdir.Clone(),
		})
	}

	return clone
}
