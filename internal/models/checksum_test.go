package models_test

import (
	"testing"

	"github.com/income-recorder/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want int
	}{
		// 4 uppercase letters (I, N, F, W) and 26 digit or period characters
		{"reference line", "IN001,Freelance Work,25/07/2025,10000.00,1000.00", 30},
		{"empty", "", 0},
		{"lowercase only", "abcdef", 0},
		{"uppercase only", "ABC", 3},
		{"digits and periods", "1.23", 4},
		{"non-ASCII ignored", "Ärger Straße", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, models.Checksum(tt.line))
		})
	}
}

func TestChecksumDeterministic(t *testing.T) {
	t.Parallel()

	line := "IN001,Freelance Work,25/07/2025,10000.00,1000.00"

	first := models.Checksum(line)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, models.Checksum(line))
	}
	assert.GreaterOrEqual(t, first, 0)
}
