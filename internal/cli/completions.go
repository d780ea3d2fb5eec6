package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathseq/internal/files/sequence"
)

// completeOrderKeys provides shell completion for --order-by values. Earlier
// keys of a comma separated list are kept as a prefix.
func completeOrderKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	head := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		head, toComplete = toComplete[:i+1], toComplete[i+1:]
	}
	desc := strings.HasPrefix(toComplete, "-")
	toComplete = strings.TrimPrefix(toComplete, "-")

	var matches []string
	for _, name := range sequence.KeyNames() {
		if !strings.HasPrefix(name, strings.ToLower(toComplete)) {
			continue
		}
		if desc {
			name = "-" + name
		}
		matches = append(matches, head+name)
	}

	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
