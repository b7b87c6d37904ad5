package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeFlag(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"RFC3339", "2026-03-15T10:00:00Z", time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)},
		{"дата со временем", "2026-03-15 10:00", time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)},
		{"только дата", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := parseTimeFlag(tt.value)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts))
		})
	}
}

func TestParseTimeFlagInvalid(t *testing.T) {
	_, err := parseTimeFlag("15/03/2026")
	require.Error(t, err)
}

func TestParseOptionalTime(t *testing.T) {
	ts, err := parseOptionalTime("")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	_, err = parseOptionalTime("no-es-fecha")
	require.Error(t, err)
}
