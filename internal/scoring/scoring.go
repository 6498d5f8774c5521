// Package scoring holds the pure scoring primitives: score-to-par formatting,
// handicap score differentials and score-to-par classification.
package scoring

import (
	"fmt"
	"math"
	"strconv"

	"go_golf_stat_keep/internal/model"
)

// NeutralSlope is the USGA slope rating of a course of standard difficulty.
const NeutralSlope = float64(model.NeutralSlopeRating)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatScoreToPar renders score relative to par: "E", "+N" or "-N".
func FormatScoreToPar(par, score float64) (string, error) {
	if !finite(par) || !finite(score) {
		return "", fmt.Errorf("%w: par and score must be finite numbers (par=%v, score=%v)", model.ErrInvalidInput, par, score)
	}

	diff := score - par
	switch {
	case diff == 0:
		return "E", nil
	case diff > 0:
		return "+" + strconv.FormatFloat(diff, 'f', -1, 64), nil
	default:
		return strconv.FormatFloat(diff, 'f', -1, 64), nil
	}
}

// FormatIntScoreToPar is FormatScoreToPar for whole-stroke values.
func FormatIntScoreToPar(par, score int) string {
	diff := score - par
	switch {
	case diff == 0:
		return "E"
	case diff > 0:
		return "+" + strconv.Itoa(diff)
	default:
		return strconv.Itoa(diff)
	}
}

// CalculateScoreDifferential computes (score - rating) * (113 / slope),
// rounded and formatted to one decimal place.
//
//	(86 - 68.7) * (113 / 124) = 15.8
func CalculateScoreDifferential(score, rating, slope float64) (string, error) {
	if !finite(score) || !finite(rating) {
		return "", fmt.Errorf("%w: score and rating must be finite numbers", model.ErrInvalidInput)
	}
	if !finite(slope) || slope == 0 {
		return "", fmt.Errorf("%w: slope must be a non-zero finite number, got %v", model.ErrInvalidInput, slope)
	}

	diff := (score - rating) * (NeutralSlope / slope)
	rounded := math.Round(diff*10) / 10
	return strconv.FormatFloat(rounded, 'f', 1, 64), nil
}
