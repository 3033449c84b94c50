// Copyright (c) 2025, Industrial Edge Works.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sensor

import (
	"context"
	"time"
)

// Clamping bounds for temperature readings in degrees Celsius. Values outside
// this range indicate a faulty probe and are pinned to the nearest bound;
// the upper bound sits above every profile's critical threshold so a pinned
// reading always classifies as critical.
const (
	MinTempC = -55
	MaxTempC = 200
)

// Clamping bounds for rail measurements. A reading outside these bounds is
// pinned so the power monitor classifies it as unstable.
const (
	MinRailVoltage = 0.0
	MaxRailVoltage = 60.0
	MinRailCurrent = 0.0
	MaxRailCurrent = 100.0
)

// TempReading is a single temperature sample from both board probes.
type TempReading struct {
	// CPUTempC is the CPU package temperature in degrees Celsius.
	CPUTempC int `json:"cpuTempC" yaml:"cpuTempC"`

	// BoardTempC is the mainboard ambient temperature in degrees Celsius.
	BoardTempC int `json:"boardTempC" yaml:"boardTempC"`
}

// Hottest returns the higher of the two probe temperatures. Classification
// always uses the hotter probe.
func (t TempReading) Hottest() int {
	if t.BoardTempC > t.CPUTempC {
		return t.BoardTempC
	}
	return t.CPUTempC
}

// Clamp returns a copy of the reading with both probes pinned into
// [MinTempC, MaxTempC].
func (t TempReading) Clamp() TempReading {
	return TempReading{
		CPUTempC:   clampInt(t.CPUTempC, MinTempC, MaxTempC),
		BoardTempC: clampInt(t.BoardTempC, MinTempC, MaxTempC),
	}
}

// PowerReading is a single power-rail sample.
type PowerReading struct {
	// RailVoltage is the main rail voltage in volts.
	RailVoltage float64 `json:"railVoltage" yaml:"railVoltage"`

	// RailCurrent is the main rail current draw in amps.
	RailCurrent float64 `json:"railCurrent" yaml:"railCurrent"`
}

// Clamp returns a copy of the reading with rail values pinned into their
// sane ranges.
func (p PowerReading) Clamp() PowerReading {
	return PowerReading{
		RailVoltage: clampFloat(p.RailVoltage, MinRailVoltage, MaxRailVoltage),
		RailCurrent: clampFloat(p.RailCurrent, MinRailCurrent, MaxRailCurrent),
	}
}

// Measurement is an immutable snapshot of all sensor readings taken during
// one boot attempt. It is captured incrementally (power first, temperature
// second) and never mutated after the attempt reaches a terminal state.
type Measurement struct {
	Temp       TempReading  `json:"temp" yaml:"temp"`
	Power      PowerReading `json:"power" yaml:"power"`
	CapturedAt time.Time    `json:"capturedAt" yaml:"capturedAt"`
}

// Gateway is the narrow interface to the hardware sensor layer. Both reads
// are synchronous and side-effect-free from the caller's perspective;
// implementations must honor the context deadline.
type Gateway interface {
	// ReadTemperature samples both temperature probes.
	ReadTemperature(ctx context.Context) (TempReading, error)

	// ReadPower samples the main power rail.
	ReadPower(ctx context.Context) (PowerReading, error)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
