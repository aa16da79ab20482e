package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := map[string]TimeString{
		"00:00": "00:00",
		"09:05": "09:05",
		"23:59": "23:59",
	}
	for input, expected := range valid {
		got, err := NewTimeStringFromString(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, got)
	}

	invalid := []string{"", "9:00", "24:00", "12:60", "12-30", "12:30:00", "ab:cd"}
	for _, input := range invalid {
		_, err := NewTimeStringFromString(input)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", input)
	}
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("10:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), got)

	// Выход за границы суток: ошибка, а не перенос на следующий день
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.True(t, TimeString("09:00").Equal("09:00"))
	assert.False(t, TimeString("09:00").Equal("09:01"))
}

func TestOnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	date := time.Date(2025, 11, 3, 0, 0, 0, 0, loc)
	got, err := TimeString("10:30").OnDate(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 11, 3, 10, 30, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(TimeString("10:30"))
	require.NoError(t, err)
	assert.Equal(t, `"10:30"`, string(data))

	var parsed TimeString
	require.NoError(t, json.Unmarshal([]byte(`"09:00"`), &parsed))
	assert.Equal(t, TimeString("09:00"), parsed)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &parsed))
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Колонки TIME приходят со значением секунд
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:00")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 11, 3, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	assert.Error(t, ts.Scan(123))
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
