package boot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateComplete.Terminal())
	assert.True(t, StateAborted.Terminal())
	assert.False(t, StatePowerCheck.Terminal())
	assert.False(t, StateThermalCheck.Terminal())
	assert.False(t, StateHardwareInit.Terminal())
}

func TestOutcomeClassification(t *testing.T) {
	tests := []struct {
		outcome   Outcome
		success   bool
		retryable bool
	}{
		{OutcomeSuccess, true, false},
		{OutcomeSuccessDerated, true, false},
		{OutcomeAbortedThermal, false, false},
		{OutcomeAbortedPower, false, true},
		{OutcomeAbortedHardwareInit, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tc.success, tc.outcome.Success())
			assert.Equal(t, tc.retryable, tc.outcome.Retryable())
		})
	}
}

func TestParseOutcome(t *testing.T) {
	o, ok := ParseOutcome("AbortedThermal")
	assert.True(t, ok)
	assert.Equal(t, OutcomeAbortedThermal, o)

	_, ok = ParseOutcome("WarmReboot")
	assert.False(t, ok)
}
