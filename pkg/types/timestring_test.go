package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "10:30"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "missing minutes", input: "10", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "10:61", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	mins, err := TimeString("10:30").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 630, mins)

	mins, err = TimeString("00:00").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 0, mins)

	_, err = TimeString("bad").MinutesFromMidnight()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:30").IsBefore("10:31"))
	assert.False(t, TimeString("10:30").IsBefore("10:30"))
	assert.False(t, TimeString("10:31").IsBefore("10:30"))

	assert.True(t, TimeString("19:30").IsAfter("10:30"))
	assert.False(t, TimeString("10:30").IsAfter("10:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:30").AddMinutes(40)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:10"), got)

	got, err = TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	_, err = TimeString("23:50").AddMinutes(20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("11:05").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 1, 11, 5, 0, 0, time.UTC), got)

	_, err = TimeString("bad").OnDate(date)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	instant := time.Date(2025, 8, 1, 9, 7, 33, 0, time.UTC)
	assert.Equal(t, TimeString("09:07"), NewTimeString(instant))
}
