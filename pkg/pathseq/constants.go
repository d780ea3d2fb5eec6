package pathseq

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line, malformed pattern)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0   // Listing completed
	ExitGeneralError = 1   // Unknown or unclassified error
	ExitUsageError   = 2   // CLI usage error or malformed pattern
	ExitPanic        = 3   // Internal panic (unexpected crash)
	ExitConfigError  = 10  // Invalid configuration file
	ExitCancelled    = 130 // Interrupted by signal
)

const (
	// ScriptExtension is the extension of the tool's own script files.
	// Files carrying it are omitted from listings unless no-omit is set.
	ScriptExtension = "peru"

	// DefaultReadBatch is the number of entries a directory cursor fetches per OS call.
	DefaultReadBatch = 128

	// Separator is the path separator used inside glob patterns.
	Separator = '/'
)

// ReservedDirectories are version-control folders skipped unless no-omit is set.
var ReservedDirectories = []string{".git", ".svn"}
