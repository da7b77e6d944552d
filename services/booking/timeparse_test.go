package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeLabel(t *testing.T) {
	tests := []struct {
		label      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{"12:00 AM", 0, 0, false},
		{"12:00 PM", 12, 0, false},
		{"12:30 AM", 0, 30, false},
		{"1:30 PM", 13, 30, false},
		{"9:05 am", 9, 5, false},
		{"11:59 PM", 23, 59, false},
		{" 2:00 PM ", 14, 0, false},
		{"13:00 PM", 0, 0, true},
		{"09:00", 0, 0, true},
		{"noon", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		hour, minute, err := ParseTimeLabel(tt.label)
		if tt.wantErr {
			assert.Error(t, err, "ParseTimeLabel(%q)", tt.label)
			continue
		}
		require.NoError(t, err, "ParseTimeLabel(%q)", tt.label)
		assert.Equal(t, tt.wantHour, hour, "ParseTimeLabel(%q) hour", tt.label)
		assert.Equal(t, tt.wantMinute, minute, "ParseTimeLabel(%q) minute", tt.label)
	}
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2025-06-02", "2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 14, 30, 0, 0, time.Local), got)

	got, err = CombineDateTime("2025-06-02", "12:00 AM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local), got)

	_, err = CombineDateTime("06/02/2025", "2:30 PM")
	assert.Error(t, err)

	_, err = CombineDateTime("2025-06-02", "half past two")
	assert.Error(t, err)
}
