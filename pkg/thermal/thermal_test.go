package thermal

import (
	"testing"

	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
	"github.com/stretchr/testify/assert"
)

func reading(c int) sensor.TempReading {
	return sensor.TempReading{CPUTempC: c, BoardTempC: c - 5}
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		name string
		temp int
		p    profile.Profile
		want Condition
	}{
		{"room temp standard", 75, profile.Standard(), ConditionNominal},
		{"at normal max standard", 85, profile.Standard(), ConditionNominal},
		{"factory temp standard", 95, profile.Standard(), ConditionCritical},
		{"just past band standard", 86, profile.Standard(), ConditionCritical},
		{"room temp enhanced", 75, profile.Enhanced(), ConditionNominal},
		{"factory temp enhanced", 95, profile.Enhanced(), ConditionElevated},
		{"top of elevated band enhanced", 120, profile.Enhanced(), ConditionElevated},
		{"past elevated band enhanced", 121, profile.Enhanced(), ConditionCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(reading(tt.temp), tt.p, ConditionUnknown)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCeilingOverridesProfile(t *testing.T) {
	// 140 and above is critical for every profile, enhanced included.
	for _, p := range []profile.Profile{profile.Standard(), profile.Enhanced()} {
		for _, temp := range []int{profile.CriticalCeilingC, 150, 500} {
			got := Classify(reading(temp), p, ConditionUnknown)
			assert.Equal(t, ConditionCritical, got,
				"temp %d profile %s must be critical", temp, p.ID)
		}
	}
}

func TestClassifyUsesHotterProbe(t *testing.T) {
	// Board probe hotter than CPU probe drives the classification.
	r := sensor.TempReading{CPUTempC: 70, BoardTempC: 95}
	got := Classify(r, profile.Enhanced(), ConditionUnknown)
	assert.Equal(t, ConditionElevated, got)
}

func TestHysteresis(t *testing.T) {
	enh := profile.Enhanced() // normalMax 85, elevatedMax 120, margin 5

	tests := []struct {
		name string
		temp int
		prev Condition
		want Condition
	}{
		{"held critical inside margin", 118, ConditionCritical, ConditionCritical},
		{"held critical at margin boundary", 115, ConditionCritical, ConditionCritical},
		{"released below margin", 110, ConditionCritical, ConditionElevated},
		{"released to nominal", 80, ConditionCritical, ConditionNominal},
		{"no hysteresis without critical history", 118, ConditionElevated, ConditionElevated},
		{"no hysteresis on first reading", 118, ConditionUnknown, ConditionElevated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(reading(tt.temp), enh, tt.prev)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	// Two consecutive calls with identical inputs agree.
	r := reading(95)
	first := Classify(r, profile.Enhanced(), ConditionUnknown)
	second := Classify(r, profile.Enhanced(), ConditionUnknown)
	assert.Equal(t, first, second)
}

func TestClassifyClampsWildReadings(t *testing.T) {
	r := sensor.TempReading{CPUTempC: 100000, BoardTempC: 70}
	got := Classify(r, profile.Enhanced(), ConditionUnknown)
	assert.Equal(t, ConditionCritical, got)
}

func TestClassifyUnreadable(t *testing.T) {
	assert.Equal(t, ConditionCritical, ClassifyUnreadable())
}

func TestParseCondition(t *testing.T) {
	c, ok := ParseCondition("Elevated")
	assert.True(t, ok)
	assert.Equal(t, ConditionElevated, c)

	_, ok = ParseCondition("melting")
	assert.False(t, ok)
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "Nominal", ConditionNominal.String())
	assert.Equal(t, "Unknown", ConditionUnknown.String())
}
