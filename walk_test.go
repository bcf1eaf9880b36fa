package dtree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	tree := buildTree(t, [][]string{{"a", "b"}, {"a", "c"}, {"d"}})

	var visited []string
	err := tree.Walk(func(path []string, dir *Tree) error {
		visited = append(visited, FormatPath(path))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/", "/a/", "/a/b/", "/a/c/", "/d/"}, visited)
}

func TestWalkRetainedPaths(t *testing.T) {
	tree := buildTree(t, [][]string{{"a", "b"}, {"a", "c"}, {"a", "d"}})

	var paths [][]string
	err := tree.Walk(func(path []string, _ *Tree) error {
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, [][]string{nil, {"a"}, {"a", "b"}, {"a", "c"}, {"a", "d"}}, paths)
}

func TestWalkStops(t *testing.T) {
	tree := buildTree(t, [][]string{{"a", "b"}, {"c"}})
	errStop := fmt.Errorf("stop")

	var visited []string
	err := tree.Walk(func(path []string, dir *Tree) error {
		visited = append(visited, FormatPath(path))
		if len(path) == 2 {
			return errStop
		}
		return nil
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, []string{"/", "/a/", "/a/b/"}, visited)
}
