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

import "context"

// StaticGateway is a Gateway that returns fixed readings. It backs the CLI
// simulation flags and test scenarios; errors can be injected per read to
// exercise the conservative unreadable paths.
type StaticGateway struct {
	Temp  TempReading
	Power PowerReading

	// TempErr and PowerErr, when non-nil, are returned instead of readings.
	TempErr  error
	PowerErr error
}

// ReadTemperature returns the configured temperature reading, clamped.
func (g *StaticGateway) ReadTemperature(ctx context.Context) (TempReading, error) {
	if err := ctx.Err(); err != nil {
		return TempReading{}, err
	}
	if g.TempErr != nil {
		return TempReading{}, g.TempErr
	}
	return g.Temp.Clamp(), nil
}

// ReadPower returns the configured power reading, clamped.
func (g *StaticGateway) ReadPower(ctx context.Context) (PowerReading, error) {
	if err := ctx.Err(); err != nil {
		return PowerReading{}, err
	}
	if g.PowerErr != nil {
		return PowerReading{}, g.PowerErr
	}
	return g.Power.Clamp(), nil
}
