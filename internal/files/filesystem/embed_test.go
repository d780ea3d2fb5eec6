package filesystem

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func newMapFS() fstest.MapFS {
	return fstest.MapFS{
		"testdata/a.txt":           {Data: []byte("a")},
		"testdata/subdir/b.txt":    {Data: []byte("bb")},
		"testdata/subdir/deep/c.x": {Data: []byte("ccc")},
	}
}

func TestFSFileSystem_OpenDir(t *testing.T) {
	efs := NewFSFileSystem(newMapFS(), "testdata")

	tests := []struct {
		name      string
		path      string
		expectErr bool
		want      []string
	}{
		{name: "open root directory", path: ".", want: []string{"a.txt", "subdir"}},
		{name: "open empty path (same as root)", path: "", want: []string{"a.txt", "subdir"}},
		{name: "leading slash", path: "/subdir", want: []string{"b.txt", "deep"}},
		{name: "backslashes", path: `subdir\deep`, want: []string{"c.x"}},
		{name: "open non-existent directory", path: "nonexistent", expectErr: true},
		{name: "open file", path: "a.txt", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := efs.OpenDir(tt.path)
			if tt.expectErr {
				require.Error(t, err)
				require.Nil(t, c)
				require.Equal(t, 0, efs.OpenHandles())
				return
			}
			require.NoError(t, err)
			require.Equal(t, 1, efs.OpenHandles())
			require.Equal(t, tt.want, drain(t, c))
			require.NoError(t, c.Close())
			require.Equal(t, 0, efs.OpenHandles())
		})
	}
}

func TestFSFileSystem_Stat(t *testing.T) {
	efs := NewFSFileSystem(newMapFS(), "testdata")

	info, err := efs.Stat("subdir/b.txt")
	require.NoError(t, err)
	require.Equal(t, int64(2), info.Size())

	info, err = efs.Stat("subdir")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = efs.Stat("nope")
	require.Error(t, err)
}
