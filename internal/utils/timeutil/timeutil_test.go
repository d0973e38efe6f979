package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "midnight", input: "00:00", wantHour: 0, wantMinute: 0},
		{name: "afternoon", input: "13:30", wantHour: 13, wantMinute: 30},
		{name: "last minute", input: "23:59", wantHour: 23, wantMinute: 59},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "missing colon", input: "1230", wantErr: true},
		{name: "too many parts", input: "12:30:00", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestDurationBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "same day", start: "10:00", end: "10:45", want: "0h 45m"},
		{name: "crosses midnight", start: "20:00", end: "06:00", want: "10h 0m"},
		{name: "zero span", start: "00:00", end: "00:00", want: "0h 0m"},
		{name: "full hours", start: "13:00", end: "15:00", want: "2h 0m"},
		{name: "one minute short of a day", start: "00:01", end: "00:00", want: "23h 59m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationBetween(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationBetweenInvalid(t *testing.T) {
	_, err := DurationBetween("25:00", "06:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = DurationBetween("20:00", "6 am")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "00:00", want: "12:00 AM"},
		{input: "00:05", want: "12:05 AM"},
		{input: "01:30", want: "1:30 AM"},
		{input: "11:59", want: "11:59 AM"},
		{input: "12:00", want: "12:00 PM"},
		{input: "13:30", want: "1:30 PM"},
		{input: "23:45", want: "11:45 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := To12Hour(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateToEpoch(t *testing.T) {
	ts, err := DateToEpoch("2024-03-15")
	require.NoError(t, err)

	parsed := time.UnixMilli(ts).Local()
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, 0, parsed.Minute())

	_, err = DateToEpoch("15/03/2024")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local).UnixMilli()
	evening := time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local).UnixMilli()
	nextDay := time.Date(2024, 3, 16, 0, 1, 0, 0, time.Local).UnixMilli()

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestFormatClockRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 5, 0, 0, time.Local).UnixMilli()
	assert.Equal(t, "09:05", FormatClock(ts))
	assert.Equal(t, "2024-03-15", FormatDate(ts))
}
