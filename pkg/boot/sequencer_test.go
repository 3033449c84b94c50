package boot

import (
	"context"
	"errors"
	"testing"

	"github.com/industrial-edge/bootguard/pkg/power"
	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
	"github.com/industrial-edge/bootguard/pkg/thermal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stableGateway(cpuTemp, boardTemp int) *sensor.StaticGateway {
	return &sensor.StaticGateway{
		Temp:  sensor.TempReading{CPUTempC: cpuTemp, BoardTempC: boardTemp},
		Power: sensor.PowerReading{RailVoltage: 12.0, RailCurrent: 3.0},
	}
}

// failingInitializer fails the named sub-step.
type failingInitializer struct {
	failStep string
}

func (f *failingInitializer) Steps() []InitStep {
	mk := func(name string, essential bool) InitStep {
		return InitStep{
			Name:      name,
			Essential: essential,
			Run: func(ctx context.Context, derated bool) error {
				if name == f.failStep {
					return errors.New(name + " bring-up failed")
				}
				return nil
			},
		}
	}
	return []InitStep{
		mk(StepCPU, true),
		mk(StepMemory, true),
		mk(StepIO, false),
	}
}

func TestRunNominalBoot(t *testing.T) {
	s := NewSequencer(stableGateway(75, 70))
	attempt := s.Run(context.Background(), 1, profile.Standard())

	assert.Equal(t, OutcomeSuccess, attempt.Outcome)
	assert.False(t, attempt.Derated)
	assert.Equal(t, power.ConditionStable, attempt.PowerCondition)
	assert.Equal(t, thermal.ConditionNominal, attempt.ThermalCondition)
	assert.True(t, attempt.VisitedState(StateHardwareInit))
	assert.True(t, attempt.VisitedState(StateComplete))
	assert.Equal(t, 1, attempt.Number)
	assert.NotEmpty(t, attempt.ID)
	assert.False(t, attempt.FinishedAt.IsZero())
}

func TestRunElevatedBootDerates(t *testing.T) {
	s := NewSequencer(stableGateway(95, 90))
	attempt := s.Run(context.Background(), 1, profile.Enhanced())

	assert.Equal(t, OutcomeSuccessDerated, attempt.Outcome)
	assert.True(t, attempt.Derated)
	assert.Equal(t, thermal.ConditionElevated, attempt.ThermalCondition)

	// Derated boot skips the non-essential I/O sub-step.
	var skippedIO bool
	for _, tr := range attempt.Trace {
		if tr.Detail == "skipped "+StepIO {
			skippedIO = true
		}
	}
	assert.True(t, skippedIO, "expected io sub-step to be skipped, trace: %+v", attempt.Trace)
}

func TestRunFactoryTempOnStandardProfileAborts(t *testing.T) {
	// 95°C exceeds the standard profile's critical threshold (86).
	s := NewSequencer(stableGateway(95, 90))
	attempt := s.Run(context.Background(), 1, profile.Standard())

	assert.Equal(t, OutcomeAbortedThermal, attempt.Outcome)
	assert.Equal(t, thermal.ConditionCritical, attempt.ThermalCondition)
	assert.False(t, attempt.VisitedState(StateHardwareInit))
}

func TestRunUnstablePowerAbortsBeforeThermal(t *testing.T) {
	g := stableGateway(75, 70)
	g.Power = sensor.PowerReading{} // dead rail

	s := NewSequencer(g)
	attempt := s.Run(context.Background(), 1, profile.Standard())

	assert.Equal(t, OutcomeAbortedPower, attempt.Outcome)
	assert.Equal(t, power.ConditionUnstable, attempt.PowerCondition)
	// Power short-circuits: the thermal check never runs.
	assert.False(t, attempt.VisitedState(StateThermalCheck))
	assert.Equal(t, thermal.ConditionUnknown, attempt.ThermalCondition)
}

func TestRunDegradedPowerDerates(t *testing.T) {
	g := stableGateway(75, 70)
	g.Power = sensor.PowerReading{RailVoltage: 11.0, RailCurrent: 3.0}

	s := NewSequencer(g)
	attempt := s.Run(context.Background(), 1, profile.Standard())

	assert.Equal(t, OutcomeSuccessDerated, attempt.Outcome)
	assert.True(t, attempt.Derated)
	assert.Equal(t, power.ConditionDegraded, attempt.PowerCondition)
}

func TestRunInitFailureAborts(t *testing.T) {
	s := NewSequencer(stableGateway(75, 70),
		WithInitializer(&failingInitializer{failStep: StepMemory}))
	attempt := s.Run(context.Background(), 1, profile.Standard())

	assert.Equal(t, OutcomeAbortedHardwareInit, attempt.Outcome)
	assert.True(t, attempt.VisitedState(StateHardwareInit))
	assert.False(t, attempt.VisitedState(StateComplete))
}

func TestRunUnreadableTemperatureAbortsThermal(t *testing.T) {
	g := stableGateway(75, 70)
	g.TempErr = errors.New("i2c timeout")

	s := NewSequencer(g)
	attempt := s.Run(context.Background(), 1, profile.Enhanced())

	// Unreadable is never treated as nominal.
	assert.Equal(t, OutcomeAbortedThermal, attempt.Outcome)
	assert.Equal(t, thermal.ConditionCritical, attempt.ThermalCondition)
}

func TestRunUnreadablePowerAborts(t *testing.T) {
	g := stableGateway(75, 70)
	g.PowerErr = errors.New("i2c timeout")

	s := NewSequencer(g)
	attempt := s.Run(context.Background(), 1, profile.Standard())

	assert.Equal(t, OutcomeAbortedPower, attempt.Outcome)
	assert.Equal(t, power.ConditionUnstable, attempt.PowerCondition)
}

// TestCriticalNeverReachesHardwareInit exhaustively enumerates profile,
// temperature band, and power condition combinations and verifies that no
// combination enters hardware init from a critical thermal classification.
func TestCriticalNeverReachesHardwareInit(t *testing.T) {
	profiles := []profile.Profile{profile.Standard(), profile.Enhanced()}
	temps := []int{-40, 0, 75, 85, 86, 95, 115, 120, 121, 139, 140, 150, 200}
	rails := []sensor.PowerReading{
		{RailVoltage: 12.0, RailCurrent: 3.0}, // stable
		{RailVoltage: 11.0, RailCurrent: 3.0}, // degraded, sets derated flag
	}

	for _, p := range profiles {
		for _, temp := range temps {
			for _, rail := range rails {
				g := &sensor.StaticGateway{
					Temp:  sensor.TempReading{CPUTempC: temp, BoardTempC: temp},
					Power: rail,
				}
				attempt := NewSequencer(g).Run(context.Background(), 1, p)

				if attempt.ThermalCondition == thermal.ConditionCritical {
					require.False(t, attempt.VisitedState(StateHardwareInit),
						"profile=%s temp=%d rail=%+v entered hardware init from critical",
						p.ID, temp, rail)
					require.Equal(t, OutcomeAbortedThermal, attempt.Outcome)
				}
			}
		}
	}
}

func TestRunTraceIsOrdered(t *testing.T) {
	s := NewSequencer(stableGateway(75, 70))
	attempt := s.Run(context.Background(), 1, profile.Standard())

	require.NotEmpty(t, attempt.Trace)
	assert.Equal(t, StatePowerCheck, attempt.Trace[0].State)
	last := attempt.Trace[len(attempt.Trace)-1]
	assert.Equal(t, StateComplete, last.Next)
	for i := 1; i < len(attempt.Trace); i++ {
		assert.False(t, attempt.Trace[i].At.Before(attempt.Trace[i-1].At),
			"trace timestamps must not go backwards")
	}
}
