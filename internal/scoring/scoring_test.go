package scoring

import (
	"math"
	"strconv"
	"testing"

	"go_golf_stat_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScoreToPar(t *testing.T) {
	tests := []struct {
		name  string
		par   float64
		score float64
		want  string
	}{
		{"even", 72, 72, "E"},
		{"over", 72, 85, "+13"},
		{"under", 72, 70, "-2"},
		{"single hole bogey", 4, 5, "+1"},
		{"single hole eagle", 5, 3, "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatScoreToPar(tt.par, tt.score)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatScoreToPar_RoundTrip(t *testing.T) {
	for par := 3; par <= 5; par++ {
		for score := 1; score <= 15; score++ {
			got, err := FormatScoreToPar(float64(par), float64(score))
			require.NoError(t, err)

			if score == par {
				assert.Equal(t, "E", got)
				continue
			}
			assert.NotEqual(t, "E", got)
			n, err := strconv.Atoi(got)
			require.NoError(t, err, "output %q must parse as a signed integer", got)
			assert.Equal(t, score-par, n)
		}
	}
}

func TestFormatScoreToPar_NonFinite(t *testing.T) {
	tests := []struct {
		name  string
		par   float64
		score float64
	}{
		{"nan score", 72, math.NaN()},
		{"nan par", math.NaN(), 72},
		{"inf score", 72, math.Inf(1)},
		{"negative inf par", math.Inf(-1), 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatScoreToPar(tt.par, tt.score)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Empty(t, got)
		})
	}
}

func TestCalculateScoreDifferential(t *testing.T) {
	tests := []struct {
		name   string
		score  float64
		rating float64
		slope  float64
		want   string
	}{
		{"reference case", 86, 68.7, 124, "15.8"},
		{"neutral slope", 80, 72, 113, "8.0"},
		{"under rating", 70, 72.4, 130, "-2.1"},
		{"exactly rating", 72, 72, 140, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateScoreDifferential(tt.score, tt.rating, tt.slope)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateScoreDifferential_InvalidSlope(t *testing.T) {
	for _, slope := range []float64{0, math.NaN(), math.Inf(1)} {
		_, err := CalculateScoreDifferential(86, 68.7, slope)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	}

	_, err := CalculateScoreDifferential(math.NaN(), 68.7, 124)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestFormatIntScoreToPar(t *testing.T) {
	assert.Equal(t, "E", FormatIntScoreToPar(36, 36))
	assert.Equal(t, "+4", FormatIntScoreToPar(36, 40))
	assert.Equal(t, "-1", FormatIntScoreToPar(36, 35))
}
