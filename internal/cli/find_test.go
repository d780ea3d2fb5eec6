package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/pathseq/internal/config"
	"github.com/vvka-141/pathseq/internal/files/attr"
	"github.com/vvka-141/pathseq/internal/files/filesystem"
	"github.com/vvka-141/pathseq/internal/files/scanner"
	"github.com/vvka-141/pathseq/internal/runctl"
	"github.com/vvka-141/pathseq/pkg/pathseq"
)

// newFindTree creates:
//
//	a.txt         3 bytes
//	b.log        10 bytes
//	run.peru
//	.git/HEAD
//	sub/c.txt     1 byte
//	sub/deep/d.txt 5 bytes
func newFindTree(t *testing.T) string {
	t.Helper()
	for _, k := range []string{config.EnvNoOmit, config.EnvVerbose, config.EnvLogFile} {
		t.Setenv(k, "")
	}

	dir := t.TempDir()
	files := map[string]string{
		"a.txt":          "aaa",
		"b.log":          "0123456789",
		"run.peru":       "print",
		".git/HEAD":      "ref",
		"sub/c.txt":      "c",
		"sub/deep/d.txt": "ddddd",
	}
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

func runFindCommand(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	resetFindFlags()
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
	// cobra hands the root context only to subcommands without one.
	findCmd.SetContext(nil) //nolint:staticcheck

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"find"}, args...))
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func lines(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestFind_Listings(t *testing.T) {
	p := filepath.FromSlash

	tests := []struct {
		name    string
		args    []string
		want    []string
		ordered bool
	}{
		{"default pattern", nil, []string{"a.txt", "b.log", "sub"}, false},
		{"flat pattern", []string{"*.txt"}, []string{"a.txt"}, false},
		{"recursive", []string{"-r", "*.txt"}, []string{"a.txt", p("sub/c.txt"), p("sub/deep/d.txt")}, false},
		{"double asterisk", []string{"sub/**/*.txt"}, []string{p("sub/c.txt"), p("sub/deep/d.txt")}, false},
		{"nested", []string{"s*/d*/*.txt"}, []string{p("sub/deep/d.txt")}, false},
		{"directories", []string{"-r", "--dirs"}, []string{"sub", p("sub/deep")}, false},
		{"no omit", []string{"--no-omit"}, []string{".git", "a.txt", "b.log", "run.peru", "sub"}, false},
		{"order by size", []string{"-r", "--files", "--order-by", "size:desc"}, []string{"b.log", p("sub/deep/d.txt"), "a.txt", p("sub/c.txt")}, true},
		{"order and limit", []string{"-r", "--files", "--order-by", "name", "--limit", "2"}, []string{"a.txt", "b.log"}, true},
		{"every and skip", []string{"-r", "--files", "--order-by", "name", "--every", "2", "--skip", "1"}, []string{p("sub/c.txt")}, true},
		{"final", []string{"-r", "--files", "--order-by", "size", "--final", "1"}, []string{"b.log"}, true},
		{"max depth", []string{"-r", "--files", "--max-depth", "0"}, []string{"a.txt", "b.log"}, false},
		{"where extension", []string{"-r", "--where-ext", ".LOG"}, []string{"b.log"}, false},
		{"min size", []string{"-r", "--files", "--min-size", "5"}, []string{"b.log", p("sub/deep/d.txt")}, false},
		{"literal", []string{"b.log"}, []string{"b.log"}, false},
		{"missing literal", []string{"nope.txt"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newFindTree(t)
			out, err := runFindCommand(t, context.Background(), append(tt.args, "-C", dir)...)
			require.NoError(t, err)

			if tt.ordered {
				assert.Equal(t, tt.want, lines(out))
			} else {
				assert.ElementsMatch(t, tt.want, lines(out))
			}
		})
	}
}

func TestFind_Count(t *testing.T) {
	dir := newFindTree(t)
	out, err := runFindCommand(t, context.Background(), "-r", "--files", "--count", "-C", dir)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestFind_Absolute(t *testing.T) {
	dir := newFindTree(t)
	out, err := runFindCommand(t, context.Background(), "*.txt", "--absolute", "-C", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, lines(out))
}

func TestFind_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"two double asterisks", []string{"a/**/b/**"}, pathseq.ExitUsageError},
		{"forbidden character", []string{"*.t?t"}, pathseq.ExitUsageError},
		{"files and dirs", []string{"--files", "--dirs"}, pathseq.ExitUsageError},
		{"dirs and extension", []string{"--dirs", "--where-ext", "go"}, pathseq.ExitUsageError},
		{"unknown order key", []string{"--order-by", "colour"}, pathseq.ExitUsageError},
		{"every zero", []string{"--every", "0"}, pathseq.ExitUsageError},
		{"negative skip", []string{"--skip", "-1"}, pathseq.ExitUsageError},
		{"too many args", []string{"*.a", "*.b"}, pathseq.ExitUsageError},
		{"unknown flag", []string{"--colour"}, pathseq.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newFindTree(t)
			out, err := runFindCommand(t, context.Background(), append(tt.args, "-C", dir)...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, tt.code, pathseq.ExitCodeForError(err), err.Error())
		})
	}
}

func TestFind_Cancelled(t *testing.T) {
	dir := newFindTree(t)
	_, err := runFindCommand(t, context.Background(), "-C", dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := runFindCommand(t, ctx, "-r", "-C", dir)
	require.ErrorIs(t, err, pathseq.ErrCancelled)
	assert.Equal(t, pathseq.ExitCancelled, pathseq.ExitCodeForError(err))
	assert.Empty(t, out)
}

func TestFind_ProjectConfig(t *testing.T) {
	dir := newFindTree(t)
	logFile := filepath.Join(t.TempDir(), "logs", "pathseq.log")
	cfg := "no_omit: true\nverbose: true\nlog_file: " + logFile + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(cfg), 0644))

	out, err := runFindCommand(t, context.Background(), "*.peru", "-C", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"run.peru"}, lines(out))

	out, err = runFindCommand(t, context.Background(), "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, lines(out), ".git")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "listing")
}

func TestFind_InvalidConfig(t *testing.T) {
	dir := newFindTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("read_batch: -4\n"), 0644))

	_, err := runFindCommand(t, context.Background(), "-C", dir)
	require.Error(t, err)
	assert.Equal(t, pathseq.ExitConfigError, pathseq.ExitCodeForError(err))
}

func TestBuildFind_RequestsFilterAttributes(t *testing.T) {
	dir := newFindTree(t)
	resetFindFlags()
	t.Cleanup(resetFindFlags)
	findFlags.files = true
	findFlags.whereExt = []string{"txt"}
	findFlags.minSize = 2

	env := scanner.NewEnv(filesystem.NewOSFileSystem(0), runctl.Background(), pathseq.DefaultFlags(), nil, dir)
	seq, err := buildFind(env, "*")
	require.NoError(t, err)
	assert.True(t, seq.Context().Mask().Has(attr.IsFile|attr.Extension|attr.Size))

	var got []string
	for seq.Next() {
		got = append(got, seq.Value())
	}
	assert.Equal(t, []string{"a.txt"}, got)
}

func TestRecursivePattern(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"*", "**"},
		{"*.go", "**/*.go"},
		{"src/*.go", "src/**/*.go"},
		{"../*.txt", "../**/*.txt"},
		{"a*/b", "**/a*/b"},
		{"/var/log/*.log", "/var/log/**/*.log"},
		{"go.mod", "go.mod"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recursivePattern(tt.in))
		})
	}
}
