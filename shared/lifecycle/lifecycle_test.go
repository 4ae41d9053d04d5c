package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tzbot/shared/lifecycle"
)

func TestState(t *testing.T) {
	state := lifecycle.New()

	assert.Equal(t, lifecycle.ServerStateStarting, state.Get())
	assert.False(t, state.Ready())

	state.Set(lifecycle.ServerStateReady)
	assert.True(t, state.Ready())
	assert.Equal(t, "ready", state.Get().String())

	state.Set(lifecycle.ServerStateInGracePeriod)
	assert.False(t, state.Ready())
	assert.Equal(t, "grace-period", state.Get().String())

	state.Set(lifecycle.ServerStateInCleanupPeriod)
	assert.Equal(t, "cleanup-period", state.Get().String())
}
