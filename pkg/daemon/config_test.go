package daemon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/industrial-edge/bootguard/pkg/profile"
	"github.com/industrial-edge/bootguard/pkg/sensor"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, profile.Capability{}, cfg.Capability)
	assert.Equal(t, "/sys/class/hwmon/hwmon0/temp1_input", cfg.CPUTempPath)

	gw, ok := cfg.Gateway().(*sensor.FileGateway)
	require.True(t, ok)
	assert.Equal(t, cfg.VoltagePath, gw.VoltagePath)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("BOOTGUARD_CAPABILITY", "2.1-epd")
	t.Setenv("BOOTGUARD_MAX_ATTEMPTS", "5")
	t.Setenv("BOOTGUARD_CPU_TEMP_PATH", "/dev/null")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.Capability.EnhancedPowerDelivery)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, "/dev/null", cfg.CPUTempPath)
}

func TestConfigFromEnvInvalidMaxAttemptsIgnored(t *testing.T) {
	t.Setenv("BOOTGUARD_MAX_ATTEMPTS", "zero")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxAttempts)
}

func TestConfigFromEnvBadProfileTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: []\n"), 0o644))
	t.Setenv("BOOTGUARD_PROFILES", path)

	_, err := ConfigFromEnv()
	assert.Error(t, err)
}
