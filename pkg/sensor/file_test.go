package sensor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	bgerrors "github.com/industrial-edge/bootguard/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAttr(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestFileGatewayReadTemperature(t *testing.T) {
	dir := t.TempDir()
	g := &FileGateway{
		CPUTempPath:   writeAttr(t, dir, "temp1_input", "75000\n"),
		BoardTempPath: writeAttr(t, dir, "temp2_input", "70500\n"),
	}

	r, err := g.ReadTemperature(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 75, r.CPUTempC)
	assert.Equal(t, 70, r.BoardTempC)
}

func TestFileGatewayReadPower(t *testing.T) {
	dir := t.TempDir()
	g := &FileGateway{
		VoltagePath: writeAttr(t, dir, "in1_input", "12050\n"),
		CurrentPath: writeAttr(t, dir, "curr1_input", "3200\n"),
	}

	p, err := g.ReadPower(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 12.05, p.RailVoltage, 0.001)
	assert.InDelta(t, 3.2, p.RailCurrent, 0.001)
}

func TestFileGatewayMissingAttr(t *testing.T) {
	g := &FileGateway{
		CPUTempPath:   "/nonexistent/temp1_input",
		BoardTempPath: "/nonexistent/temp2_input",
	}

	_, err := g.ReadTemperature(context.Background())
	require.Error(t, err)
	assert.Equal(t, bgerrors.ErrCodeSensorUnavailable, bgerrors.CodeOf(err))
}

func TestFileGatewayGarbageAttr(t *testing.T) {
	dir := t.TempDir()
	g := &FileGateway{
		VoltagePath: writeAttr(t, dir, "in1_input", "not-a-number\n"),
		CurrentPath: writeAttr(t, dir, "curr1_input", "3200\n"),
	}

	_, err := g.ReadPower(context.Background())
	require.Error(t, err)
	assert.Equal(t, bgerrors.ErrCodeSensorUnavailable, bgerrors.CodeOf(err))
}

func TestFileGatewayClampsWildReadings(t *testing.T) {
	dir := t.TempDir()
	g := &FileGateway{
		CPUTempPath:   writeAttr(t, dir, "temp1_input", "999000\n"),
		BoardTempPath: writeAttr(t, dir, "temp2_input", "70000\n"),
	}

	r, err := g.ReadTemperature(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MaxTempC, r.CPUTempC)
}
