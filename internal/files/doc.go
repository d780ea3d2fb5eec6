// Package files groups the path enumeration engine.
//
// Sub-packages, from the bottom up:
//   - filesystem: directory cursors and stat over OS, in-memory and fs.FS trees
//   - attr: the attribute request mask
//   - candidate: the lazily computed properties of the current path
//   - glob: the wildcard matcher
//   - sequence: the pull-based sequence contract and its combinators
//   - scanner: directory, recursive and double asterisk scans, and pattern expansion
//
// # Usage
//
//	env := scanner.NewEnv(filesystem.NewOSFileSystem(0), runctl.New(ctx), pathseq.DefaultFlags(), logger, wd)
//	ctx := env.NewContext()
//	seq, err := scanner.Expand(env, ctx, "src/**/*.go")
//	if err != nil {
//	    return err
//	}
//	seq = sequence.Where(seq, func(c *candidate.Context) bool { return c.Size() > 0 })
//	for seq.Next() {
//	    fmt.Println(seq.Value())
//	}
package files
