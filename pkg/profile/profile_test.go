package profile

import (
	"testing"

	"github.com/industrial-edge/bootguard/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsValid(t *testing.T) {
	require.NoError(t, Standard().Validate())
	require.NoError(t, Enhanced().Validate())
}

func TestBuiltinThresholds(t *testing.T) {
	std := Standard()
	assert.Equal(t, 85, std.NormalMaxC)
	assert.Equal(t, 85, std.ElevatedMaxC)
	assert.Equal(t, 86, std.CriticalMinC)
	assert.False(t, std.HasElevatedBand())

	enh := Enhanced()
	assert.Equal(t, 85, enh.NormalMaxC)
	assert.Equal(t, 120, enh.ElevatedMaxC)
	assert.Equal(t, CriticalCeilingC, enh.CriticalMinC)
	assert.True(t, enh.HasElevatedBand())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Profile
		wantErr bool
	}{
		{
			name: "valid with elevated band",
			p:    Profile{ID: "x", NormalMaxC: 80, ElevatedMaxC: 110, CriticalMinC: 130, HysteresisMarginC: 5},
		},
		{
			name: "valid collapsed band",
			p:    Profile{ID: "x", NormalMaxC: 85, ElevatedMaxC: 85, CriticalMinC: 86},
		},
		{
			name:    "normal above elevated",
			p:       Profile{ID: "x", NormalMaxC: 90, ElevatedMaxC: 85, CriticalMinC: 100},
			wantErr: true,
		},
		{
			name:    "elevated above critical",
			p:       Profile{ID: "x", NormalMaxC: 80, ElevatedMaxC: 120, CriticalMinC: 110},
			wantErr: true,
		},
		{
			name:    "critical above ceiling",
			p:       Profile{ID: "x", NormalMaxC: 80, ElevatedMaxC: 120, CriticalMinC: CriticalCeilingC + 10},
			wantErr: true,
		},
		{
			name:    "negative margin",
			p:       Profile{ID: "x", NormalMaxC: 80, ElevatedMaxC: 110, CriticalMinC: 130, HysteresisMarginC: -1},
			wantErr: true,
		},
		{
			name:    "empty id",
			p:       Profile{NormalMaxC: 80, ElevatedMaxC: 110, CriticalMinC: 130},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeConfiguration, errors.CodeOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCeilingNotTunableAboveLimit(t *testing.T) {
	// Even a profile that keeps thresholds ordered cannot raise critical
	// past the absolute ceiling.
	p := Profile{
		ID:           "hot-site",
		NormalMaxC:   100,
		ElevatedMaxC: 150,
		CriticalMinC: 160,
	}
	err := p.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfiguration, errors.CodeOf(err))
}
