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
	"os"
	"strconv"
	"strings"

	"github.com/industrial-edge/bootguard/pkg/errors"
)

// maxAttrSize bounds sysfs attribute reads. hwmon attributes are a single
// integer line, so anything larger indicates a misconfigured path.
const maxAttrSize = 64

// FileGateway reads measurements from hwmon-style sysfs attribute files.
// Temperature attributes are expected in millidegrees Celsius, voltage in
// millivolts, and current in milliamps, matching the kernel hwmon ABI.
type FileGateway struct {
	// CPUTempPath and BoardTempPath point at temp*_input attributes.
	CPUTempPath   string
	BoardTempPath string

	// VoltagePath and CurrentPath point at in*_input and curr*_input
	// attributes for the main rail.
	VoltagePath string
	CurrentPath string
}

// ReadTemperature reads both temperature probes. A failed read of either
// probe fails the whole sample; callers map the failure conservatively.
func (g *FileGateway) ReadTemperature(ctx context.Context) (TempReading, error) {
	if err := ctx.Err(); err != nil {
		return TempReading{}, err
	}

	cpu, err := readMilliAttr(g.CPUTempPath)
	if err != nil {
		return TempReading{}, errors.WrapWithContext(errors.ErrCodeSensorUnavailable,
			"failed to read CPU temperature", err,
			map[string]any{"path": g.CPUTempPath})
	}

	board, err := readMilliAttr(g.BoardTempPath)
	if err != nil {
		return TempReading{}, errors.WrapWithContext(errors.ErrCodeSensorUnavailable,
			"failed to read board temperature", err,
			map[string]any{"path": g.BoardTempPath})
	}

	return TempReading{
		CPUTempC:   int(cpu / 1000),
		BoardTempC: int(board / 1000),
	}.Clamp(), nil
}

// ReadPower reads the main rail voltage and current.
func (g *FileGateway) ReadPower(ctx context.Context) (PowerReading, error) {
	if err := ctx.Err(); err != nil {
		return PowerReading{}, err
	}

	mv, err := readMilliAttr(g.VoltagePath)
	if err != nil {
		return PowerReading{}, errors.WrapWithContext(errors.ErrCodeSensorUnavailable,
			"failed to read rail voltage", err,
			map[string]any{"path": g.VoltagePath})
	}

	ma, err := readMilliAttr(g.CurrentPath)
	if err != nil {
		return PowerReading{}, errors.WrapWithContext(errors.ErrCodeSensorUnavailable,
			"failed to read rail current", err,
			map[string]any{"path": g.CurrentPath})
	}

	return PowerReading{
		RailVoltage: float64(mv) / 1000.0,
		RailCurrent: float64(ma) / 1000.0,
	}.Clamp(), nil
}

// readMilliAttr reads a single-integer sysfs attribute.
func readMilliAttr(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(data) > maxAttrSize {
		data = data[:maxAttrSize]
	}
	return strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
}
