package pathseq

import (
	"errors"
	"fmt"
	"strings"
)

// Flags are the run toggles consumed by every scan.
type Flags struct {
	// NoOmit disables the default exclusion of script files and reserved directories.
	NoOmit bool

	// ScriptExtension overrides ScriptExtension when non-empty. No leading dot.
	ScriptExtension string

	// ReservedDirectories overrides ReservedDirectories when non-nil.
	ReservedDirectories []string

	// ReadBatch overrides DefaultReadBatch when positive.
	ReadBatch int
}

// DefaultFlags returns the flags used when no configuration is present.
func DefaultFlags() Flags {
	return Flags{
		ScriptExtension:     ScriptExtension,
		ReservedDirectories: append([]string(nil), ReservedDirectories...),
		ReadBatch:           DefaultReadBatch,
	}
}

// Validate checks the flags and returns a multi-error if several values are wrong.
func (f Flags) Validate() error {
	var errs []error

	if strings.HasPrefix(f.ScriptExtension, ".") {
		errs = append(errs, fmt.Errorf("script extension %q must not start with a dot: %w", f.ScriptExtension, ErrInvalidConfig))
	}
	if f.ReadBatch < 0 {
		errs = append(errs, fmt.Errorf("read batch must not be negative, got %d: %w", f.ReadBatch, ErrInvalidConfig))
	}
	for _, d := range f.ReservedDirectories {
		if d == "" || strings.ContainsAny(d, `/\`) {
			errs = append(errs, fmt.Errorf("reserved directory %q must be a single name: %w", d, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// Extension returns the effective script extension.
func (f Flags) Extension() string {
	if f.ScriptExtension == "" {
		return ScriptExtension
	}
	return f.ScriptExtension
}

// Batch returns the effective directory read batch size.
func (f Flags) Batch() int {
	if f.ReadBatch <= 0 {
		return DefaultReadBatch
	}
	return f.ReadBatch
}

// IsReserved reports whether a directory name is excluded under these flags.
func (f Flags) IsReserved(name string) bool {
	if f.NoOmit {
		return false
	}
	dirs := f.ReservedDirectories
	if dirs == nil {
		dirs = ReservedDirectories
	}
	for _, d := range dirs {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// IsScript reports whether a file name is excluded under these flags.
func (f Flags) IsScript(name string) bool {
	if f.NoOmit {
		return false
	}
	ext := f.Extension()
	if len(name) <= len(ext)+1 {
		return false
	}
	dot := len(name) - len(ext) - 1
	return name[dot] == '.' && strings.EqualFold(name[dot+1:], ext)
}
