package runctl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Stop(t *testing.T) {
	s := Background()
	require.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())
	s.Stop()
	assert.False(t, s.Running())
}

func TestState_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(ctx)
	require.True(t, s.Running())

	cancel()
	assert.False(t, s.Running())
	assert.Equal(t, ctx, s.Context())
}

func TestState_ID(t *testing.T) {
	a, b := Background(), New(nil)
	_, err := uuid.Parse(a.ID())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, b.Running())
}
