package dtree

// WalkFunc is called by Walk for every directory.  path holds the segments
// leading from the walked tree to dir, it is nil for the walked tree itself.
type WalkFunc func(path []string, dir *Tree) error

// Walk calls fn for t and every directory below it, parents before children.
// Walking stops at the first error returned by fn.
func (t *Tree) Walk(fn WalkFunc) error {
	return t.walk(nil, fn)
}

func (t *Tree) walk(path []string, fn WalkFunc) error {
	err := fn(path, t)
	if err != nil {
		return err
	}

	for _, child := range t.children {
		// Cap the slice so siblings never share a backing array.
		err = child.subdir.walk(append(path[:len(path):len(path)], child.name), fn)
		if err != nil {
			return err
		}
	}

	return nil
}
