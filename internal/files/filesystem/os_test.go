package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_OpenDir_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	// batch of 2 forces several reads
	p := NewOSFileSystem(2)
	c, err := p.OpenDir(dir)
	require.NoError(t, err)
	require.Equal(t, 1, p.OpenHandles())

	var names []string
	dirs := map[string]bool{}
	for {
		e, ok := c.Next()
		if !ok {
			break
		}
		names = append(names, e.Name)
		dirs[e.Name] = e.IsDir
	}
	require.NoError(t, c.Err())
	sort.Strings(names)
	require.Equal(t, []string{"a.txt", "b.txt", "c.txt", "sub"}, names)
	require.True(t, dirs["sub"])
	require.False(t, dirs["a.txt"])

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	require.Equal(t, 0, p.OpenHandles())

	_, ok := c.Next()
	require.False(t, ok, "closed cursor yields nothing")
}

func TestOSFileSystem_OpenDir_NonexistentPath(t *testing.T) {
	p := NewOSFileSystem(0)

	_, err := p.OpenDir(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("OpenDir(nonexistent) should return error")
	}
	if p.OpenHandles() != 0 {
		t.Errorf("OpenHandles() = %d, want 0", p.OpenHandles())
	}
}

func TestOSFileSystem_OpenDir_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	p := NewOSFileSystem(0)

	_, err := p.OpenDir(filePath)
	if err == nil {
		t.Error("OpenDir(file) should return error")
	}
	if p.OpenHandles() != 0 {
		t.Errorf("OpenHandles() = %d, want 0", p.OpenHandles())
	}
}

func TestOSFileSystem_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")))

	p := NewOSFileSystem(0)
	c, err := p.OpenDir(dir)
	require.NoError(t, err)
	defer c.Close()

	found := map[string]DirEntry{}
	for {
		e, ok := c.Next()
		if !ok {
			break
		}
		found[e.Name] = e
	}
	require.True(t, found["link"].Link)
	require.True(t, found["link"].IsDir)
	require.False(t, found["real"].Link)
}

func TestOSFileSystem_Stat_Metadata(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, ".hidden")
	require.NoError(t, os.WriteFile(filePath, []byte("abc"), 0444))

	p := NewOSFileSystem(0)
	info, err := p.Stat(filePath)
	require.NoError(t, err)
	require.Equal(t, int64(3), info.Size())

	m := Describe(info)
	require.False(t, m.Modification.IsZero())
	require.False(t, m.Access.IsZero())
	require.False(t, m.Creation.After(m.Modification))
	if runtime.GOOS != "windows" {
		require.True(t, m.Attributes.Has(AttrHidden))
	}
	require.True(t, m.Attributes.Has(AttrReadOnly))
}
