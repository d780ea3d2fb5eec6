package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathseq/internal/config"
	"github.com/vvka-141/pathseq/internal/files/attr"
	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/files/filesystem"
	"github.com/vvka-141/pathseq/internal/files/glob"
	"github.com/vvka-141/pathseq/internal/files/scanner"
	"github.com/vvka-141/pathseq/internal/files/sequence"
	"github.com/vvka-141/pathseq/internal/logging"
	"github.com/vvka-141/pathseq/internal/runctl"
	"github.com/vvka-141/pathseq/pkg/pathseq"
)

var findFlags struct {
	dir       string
	recursive bool
	files     bool
	dirs      bool
	whereExt  []string
	minSize   int64
	maxDepth  int
	limit     int
	skip      int
	every     int
	final     int
	orderBy   string
	noOmit    bool
	absolute  bool
	count     bool
}

func resetFindFlags() {
	findFlags.dir = ""
	findFlags.recursive = false
	findFlags.files = false
	findFlags.dirs = false
	findFlags.whereExt = nil
	findFlags.minSize = -1
	findFlags.maxDepth = -1
	findFlags.limit = -1
	findFlags.skip = 0
	findFlags.every = 1
	findFlags.final = -1
	findFlags.orderBy = ""
	findFlags.noOmit = false
	findFlags.absolute = false
	findFlags.count = false
}

var findCmd = &cobra.Command{
	Use:   "find [pattern]",
	Short: "List paths matching a wildcard pattern",
	Long: `List paths matching a wildcard pattern.

Without a pattern every entry of the directory is listed. With --recursive a
pattern lacking '**' is matched at any depth.

Filters are applied in this order: kind, extension, size, depth, order,
every, skip, limit, final.

Examples:
  pathseq find '*.go'
  pathseq find 'src/**/*_test.go' --count
  pathseq find -r --files --order-by size:desc --limit 10
  pathseq find '../*/go.mod' --absolute`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runFind,
	ValidArgsFunction: cobra.NoFileCompletions,
}

func init() {
	resetFindFlags()
	f := findCmd.Flags()
	f.StringVarP(&findFlags.dir, "dir", "C", "", "Directory the pattern is resolved against (default: working directory)")
	f.BoolVarP(&findFlags.recursive, "recursive", "r", false, "Match at any depth")
	f.BoolVar(&findFlags.files, "files", false, "Only list files")
	f.BoolVar(&findFlags.dirs, "dirs", false, "Only list directories")
	f.StringSliceVar(&findFlags.whereExt, "where-ext", nil, "Only list files with one of these extensions")
	f.Int64Var(&findFlags.minSize, "min-size", -1, "Only list paths of at least this many bytes")
	f.IntVar(&findFlags.maxDepth, "max-depth", -1, "Only list paths at most this many directories deep")
	f.IntVar(&findFlags.limit, "limit", -1, "Stop after this many paths")
	f.IntVar(&findFlags.skip, "skip", 0, "Skip this many paths")
	f.IntVar(&findFlags.every, "every", 1, "Keep every n-th path")
	f.IntVar(&findFlags.final, "final", -1, "Keep only the last n paths")
	f.StringVar(&findFlags.orderBy, "order-by", "", "Sort by attributes, e.g. size:desc,name")
	f.BoolVar(&findFlags.noOmit, "no-omit", false, "Include script files and version control directories")
	f.BoolVar(&findFlags.absolute, "absolute", false, "Print absolute paths")
	f.BoolVar(&findFlags.count, "count", false, "Print only the number of matches")

	_ = findCmd.RegisterFlagCompletionFunc("order-by", completeOrderKeys)
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	if err := validateFindFlags(); err != nil {
		return err
	}

	dir := findFlags.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", findFlags.dir, err)
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	flags := cfg.Flags()
	flags.NoOmit = flags.NoOmit || findFlags.noOmit
	verbose := cfg.Verbose || getVerboseFlag(cmd)

	logger, closeLog := newLogger(cmd.ErrOrStderr(), verbose, cfg.LogFile)
	defer closeLog()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	sigCtx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()
	run := runctl.New(sigCtx)

	env := scanner.NewEnv(filesystem.NewOSFileSystem(flags.Batch()), run, flags, logger, dir)
	pattern := "*"
	if len(args) == 1 {
		pattern = args[0]
	}
	seq, err := buildFind(env, pattern)
	if err != nil {
		return err
	}
	logger.Verbose("[%s] listing %q in %s", run.ID(), pattern, dir)

	n, err := writeListing(cmd.OutOrStdout(), seq)
	if err != nil {
		return err
	}
	if !run.Running() {
		logger.Verbose("[%s] interrupted after %d paths", run.ID(), n)
		return fmt.Errorf("listing stopped after %d paths: %w", n, pathseq.ErrCancelled)
	}
	return nil
}

func validateFindFlags() error {
	switch {
	case findFlags.files && findFlags.dirs:
		return fmt.Errorf("--files and --dirs cannot be combined: %w", pathseq.ErrUsage)
	case findFlags.dirs && len(findFlags.whereExt) > 0:
		return fmt.Errorf("--where-ext selects files and cannot be combined with --dirs: %w", pathseq.ErrUsage)
	case findFlags.every < 1:
		return fmt.Errorf("--every must be at least 1, got %d: %w", findFlags.every, pathseq.ErrUsage)
	case findFlags.skip < 0:
		return fmt.Errorf("--skip must not be negative, got %d: %w", findFlags.skip, pathseq.ErrUsage)
	}
	return nil
}

func newLogger(stderr io.Writer, verbose bool, logFile string) (pathseq.Logger, func()) {
	console := logging.NewConsoleLoggerTo(stderr, verbose)
	if logFile == "" {
		return console, func() {}
	}
	file := logging.NewFileLogger(logFile, verbose)
	return logging.Tee(console, file), func() { _ = file.Close() }
}

// buildFind composes the sequence for a find invocation.
func buildFind(env *scanner.Env, pattern string) (sequence.Sequence, error) {
	if findFlags.recursive && !strings.Contains(pattern, "**") {
		pattern = recursivePattern(pattern)
	}

	seq, err := scanner.Expand(env, env.NewContext(), pattern)
	if err != nil {
		return nil, err
	}
	cand := seq.Context()

	switch {
	case findFlags.files:
		cand.Request(attr.IsFile)
		seq = sequence.Where(seq, (*candidate.Context).IsFile)
	case findFlags.dirs:
		cand.Request(attr.IsDirectory)
		seq = sequence.Where(seq, (*candidate.Context).IsDirectory)
	}
	if len(findFlags.whereExt) > 0 {
		cand.Request(attr.IsFile | attr.Extension)
		exts := make(map[string]bool, len(findFlags.whereExt))
		for _, e := range findFlags.whereExt {
			exts[strings.ToLower(strings.TrimPrefix(e, "."))] = true
		}
		seq = sequence.Where(seq, func(c *candidate.Context) bool {
			return c.IsFile() && exts[c.Extension()]
		})
	}
	if findFlags.minSize >= 0 {
		cand.Request(attr.Size)
		minSize := findFlags.minSize
		seq = sequence.Where(seq, func(c *candidate.Context) bool { return c.Size() >= minSize })
	}
	if findFlags.maxDepth >= 0 {
		maxDepth := findFlags.maxDepth
		seq = sequence.Where(seq, func(c *candidate.Context) bool { return c.Depth() <= maxDepth })
	}
	if findFlags.orderBy != "" {
		keys, err := sequence.ParseOrderSpec(findFlags.orderBy)
		if err != nil {
			return nil, err
		}
		seq = sequence.OrderBy(seq, env.Run, keys...)
	}
	if findFlags.every > 1 {
		seq = sequence.Every(seq, findFlags.every)
	}
	if findFlags.skip > 0 {
		seq = sequence.Skip(seq, findFlags.skip)
	}
	if findFlags.limit >= 0 {
		seq = sequence.Limit(seq, findFlags.limit)
	}
	if findFlags.final >= 0 {
		seq = sequence.Final(seq, env.Run, findFlags.final)
	}
	return seq, nil
}

// recursivePattern lets a pattern match at any depth below the directory.
// Absolute patterns and retreats keep their base.
func recursivePattern(pattern string) string {
	if pattern == "*" {
		return "**"
	}
	p := strings.ReplaceAll(pattern, `\`, "/")
	base, rest := "", p
	for strings.HasPrefix(rest, "../") {
		base, rest = base+"../", rest[3:]
	}
	if !glob.ContainsWildcard(rest) {
		return pattern
	}
	if i := strings.LastIndex(rest, "/"); i >= 0 && !glob.ContainsWildcard(rest[:i]) {
		base, rest = base+rest[:i+1], rest[i+1:]
	}
	return base + "**/" + rest
}

// writeListing drains seq into w and returns the number of paths produced.
func writeListing(w io.Writer, seq sequence.Sequence) (int, error) {
	defer seq.Reset()

	styled := stylesEnabled(w)
	n := 0
	for seq.Next() {
		n++
		if findFlags.count {
			continue
		}
		ctx := seq.Context()
		line := seq.Value()
		if findFlags.absolute {
			line = ctx.Path()
		}
		if styled {
			line = styleEntry(ctx, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return n, fmt.Errorf("failed to write listing: %w", err)
		}
	}
	if findFlags.count {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return n, fmt.Errorf("failed to write count: %w", err)
		}
	}
	return n, nil
}
