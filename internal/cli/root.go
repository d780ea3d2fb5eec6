package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathseq",
	Short: "Lazy wildcard path listing",
	Long: `pathseq lists filesystem paths matching wildcard patterns.

Paths are produced one at a time: a directory is opened only when its entries
are needed and closed as soon as the listing moves on or stops. Patterns use
'*' within one path segment and '**' across any number of directories.

Exit Codes:
  0   - Success
  1   - General error
  2   - CLI usage error (invalid arguments, flags or pattern)
  3   - Panic or unexpected system error
  10  - Invalid configuration
  130 - Interrupted`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
