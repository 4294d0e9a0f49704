package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusWaiting.CanTransitionTo(StatusApproved))
	assert.True(t, StatusWaiting.CanTransitionTo(StatusRejected))
	assert.False(t, StatusWaiting.CanTransitionTo(StatusWaiting))

	// Both outcomes are terminal: no transition leaves them.
	for _, terminal := range []Status{StatusApproved, StatusRejected} {
		for _, target := range []Status{StatusWaiting, StatusApproved, StatusRejected} {
			assert.False(t, terminal.CanTransitionTo(target),
				"%s must not transition to %s", terminal, target)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusWaiting.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, Status("BOGUS").IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("WAITING")
	require.NoError(t, err)
	assert.Equal(t, StatusWaiting, status)

	_, err = ParseStatus("DELIVERED")
	assert.Error(t, err)
}
