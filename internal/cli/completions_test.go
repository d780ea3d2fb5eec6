package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/pathseq/internal/files/sequence"
)

func TestCompleteOrderKeys(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns all keys for empty input", func(t *testing.T) {
		completions, directive := completeOrderKeys(cmd, nil, "")
		assert.Equal(t, sequence.KeyNames(), completions)
		assert.NotZero(t, directive&cobra.ShellCompDirectiveNoFileComp)
	})

	t.Run("filters by prefix", func(t *testing.T) {
		completions, _ := completeOrderKeys(cmd, nil, "si")
		assert.Equal(t, []string{"size"}, completions)
	})

	t.Run("keeps earlier keys and descending marker", func(t *testing.T) {
		completions, _ := completeOrderKeys(cmd, nil, "name,-cr")
		assert.Equal(t, []string{"name,-creation"}, completions)
	})

	t.Run("returns empty for non-matching prefix", func(t *testing.T) {
		completions, _ := completeOrderKeys(cmd, nil, "xyz")
		assert.Empty(t, completions)
	})
}
