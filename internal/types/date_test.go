package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/income-recorder/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		valid bool
	}{
		{"25/07/2025", true},
		{"01/01/2000", true},
		{"31/12/1999", true},
		{"29/02/2024", true},  // leap year
		{"29/02/2000", true},  // divisible by 400, leap year
		{"29/02/2025", false}, // not a leap year
		{"29/02/1900", false}, // divisible by 100 but not 400, not a leap year
		{"32/01/2025", false},
		{"00/01/2025", false},
		{"01/13/2025", false},
		{"01/00/2025", false},
		{"31/04/2025", false}, // April has 30 days
		{"1/1/2025", false},   // not zero-padded
		{"2025/01/01", false},
		{"25-07-2025", false},
		{"", false},
		{"not a date", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			date, err := types.ParseDate(tt.input)
			if !tt.valid {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, date.String(), "re-rendering must reproduce the input")
		})
	}
}

func TestParseDateTrimsWhitespace(t *testing.T) {
	t.Parallel()

	date, err := types.ParseDate("  25/07/2025 ")
	require.NoError(t, err)
	assert.Equal(t, "25/07/2025", date.String())
}

func TestDateComparisons(t *testing.T) {
	t.Parallel()

	early := types.NewDate(2025, time.January, 1)
	late := types.NewDate(2025, time.December, 31)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.True(t, early.Equal(types.NewDate(2025, time.January, 1)))
	assert.False(t, early.Equal(late))
}

func TestDateIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, types.Date{}.IsZero())
	assert.False(t, types.NewDate(2025, time.July, 25).IsZero())
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	date := types.NewDate(2025, time.July, 25)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"25/07/2025"`, string(data))

	var parsed types.Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, date.Equal(parsed))

	var invalid types.Date
	assert.Error(t, json.Unmarshal([]byte(`"2025-07-25"`), &invalid))

	var null types.Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.True(t, null.IsZero())
}
