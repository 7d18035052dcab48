package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid morning", value: "08:00"},
		{name: "valid midnight", value: "00:00"},
		{name: "valid last minute", value: "23:59"},
		{name: "missing leading zero", value: "8:00", wantErr: true},
		{name: "with seconds", value: "08:00:00", wantErr: true},
		{name: "out of range hour", value: "24:00", wantErr: true},
		{name: "garbage", value: "abc", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("08:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), got)

	got, err = TimeString("19:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:15"), got)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("20:00").IsAfter("19:59"))

	// Лексикографическое сравнение корректно и через границу 09/10
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("18:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres может вернуть time-колонку с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:45")))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_UnmarshalJSON(t *testing.T) {
	var ts TimeString

	require.NoError(t, json.Unmarshal([]byte(`"07:15"`), &ts))
	assert.Equal(t, TimeString("07:15"), ts)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ts))
}
