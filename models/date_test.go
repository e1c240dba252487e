package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", d.String())

	_, err = ParseDate("01/10/2026")
	require.Error(t, err)

	_, err = ParseDate("")
	require.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.October, 1)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back.Time))
}

func TestDate_JSONZeroAndNull(t *testing.T) {
	b, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"next tuesday"`), &d)
	require.Error(t, err)
}

func TestDate_DaysUntil(t *testing.T) {
	from := NewDate(2026, time.October, 1)

	assert.Equal(t, 0, from.DaysUntil(NewDate(2026, time.October, 1)))
	assert.Equal(t, 4, from.DaysUntil(NewDate(2026, time.October, 5)))
	assert.Equal(t, -1, from.DaysUntil(NewDate(2026, time.September, 30)))
	assert.Equal(t, 31, from.DaysUntil(NewDate(2026, time.November, 1)))
}
