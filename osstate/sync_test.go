package osstate

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSyncState(t *testing.T) {
	const writers, dirsPerWriter, readers = 8, 32, 8

	ss := NewSyncState(New())
	eg := errgroup.Group{}
	for w := 0; w < writers; w++ {
		w := w
		eg.Go(func() error {
			dir := fmt.Sprintf("w%d", w)
			err := ss.Do(func(s *State) error {
				if err := s.Chdir(nil); err != nil {
					return err
				}
				return s.Mkdir(dir)
			})
			if err != nil {
				return err
			}

			for i := 0; i < dirsPerWriter; i++ {
				err = ss.Do(func(s *State) error {
					if err := s.Chdir(nil); err != nil {
						return err
					}
					if err := s.Chdir([]string{dir}); err != nil {
						return err
					}
					return s.Mkdir(fmt.Sprintf("d%d", i))
				})
				if err != nil {
					return err
				}
			}

			return nil
		})
	}
	for r := 0; r < readers; r++ {
		eg.Go(func() error {
			for i := 0; i < dirsPerWriter; i++ {
				paths, err := ss.Paths()
				if err != nil {
					return err
				}
				for _, p := range paths {
					if strings.Contains(p, "//") {
						return fmt.Errorf("malformed path %q", p)
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	require.NoError(t, ss.Chdir(nil))
	require.Equal(t, "/", ss.Pwd())
	require.Empty(t, ss.Cwd())

	paths, err := ss.Paths()
	require.NoError(t, err)
	require.Len(t, paths, writers*dirsPerWriter)

	require.NoError(t, ss.Chdir([]string{"w0"}))
	require.NoError(t, ss.Mkdir("extra"))
	paths, err = ss.Paths()
	require.NoError(t, err)
	sort.Strings(paths)
	require.Len(t, paths, dirsPerWriter+1)
	require.Contains(t, paths, "/extra/")
}
