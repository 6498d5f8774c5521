package stats

import (
	"math"

	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/scoring"
)

// ScoringAverages is the mean score per hole par. A nil entry means no hole of
// that par has been scored.
type ScoringAverages struct {
	Par3 *float64 `json:"par3"`
	Par4 *float64 `json:"par4"`
	Par5 *float64 `json:"par5"`
}

// CalculateScoringAverages averages scored holes by par, rounded to one decimal.
func CalculateScoringAverages(views []HoleView) ScoringAverages {
	var sum, count [model.MaxHolePar + 1]int
	for _, v := range views {
		s, ok := v.Score()
		if !ok || v.Par < model.MinHolePar || v.Par > model.MaxHolePar {
			continue
		}
		sum[v.Par] += s
		count[v.Par]++
	}

	avg := func(par int) *float64 {
		if count[par] == 0 {
			return nil
		}
		a := round1(float64(sum[par]) / float64(count[par]))
		return &a
	}

	return ScoringAverages{Par3: avg(3), Par4: avg(4), Par5: avg(5)}
}

// DirectionCount is how often a shot finished in one direction.
type DirectionCount struct {
	Direction model.Direction `json:"direction"`
	Count     int             `json:"count"`
	Percent   float64         `json:"percent"`
}

// AccuracyBreakdown counts shot results for one shot type. Eligible is the
// percentage denominator.
type AccuracyBreakdown struct {
	Eligible int              `json:"eligible"`
	Results  []DirectionCount `json:"results"`
}

// Count returns the count recorded for d.
func (a AccuracyBreakdown) Count(d model.Direction) int {
	for _, r := range a.Results {
		if r.Direction == d {
			return r.Count
		}
	}
	return 0
}

// CalculateDriveAccuracy breaks down tee shots. Par 3 holes have no fairway
// and are excluded from the denominator.
func CalculateDriveAccuracy(views []HoleView) AccuracyBreakdown {
	eligible := 0
	for _, v := range views {
		if v.Par != 3 {
			eligible++
		}
	}
	return breakdown(views, model.DriveDirections, eligible, func(s *model.HoleStat) *model.Direction { return s.Drive })
}

// CalculateApproachAccuracy breaks down approach shots over every hole in play.
func CalculateApproachAccuracy(views []HoleView) AccuracyBreakdown {
	return breakdown(views, model.AllDirections, len(views), func(s *model.HoleStat) *model.Direction { return s.Approach })
}

func breakdown(views []HoleView, dirs []model.Direction, eligible int, pick func(*model.HoleStat) *model.Direction) AccuracyBreakdown {
	counts := make(map[model.Direction]int, len(dirs))
	for _, v := range views {
		if v.Stat == nil {
			continue
		}
		if d := pick(v.Stat); d != nil {
			counts[*d]++
		}
	}

	out := AccuracyBreakdown{Eligible: eligible, Results: make([]DirectionCount, 0, len(dirs))}
	for _, d := range dirs {
		out.Results = append(out.Results, DirectionCount{
			Direction: d,
			Count:     counts[d],
			Percent:   percent(counts[d], eligible),
		})
	}
	return out
}

// CalculateDistribution buckets every scored hole.
func CalculateDistribution(views []HoleView) scoring.Distribution {
	var d scoring.Distribution
	for _, v := range views {
		if s, ok := v.Score(); ok {
			d.Add(v.Par, s)
		}
	}
	return d
}

// NineSummary is the subtotal of one nine.
type NineSummary struct {
	Par     int `json:"par"`
	Score   int `json:"score"`
	Yardage int `json:"yardage"`
	Holes   int `json:"holes"`
	Scored  int `json:"scored"`
	// CompleteRound is true when every hole of the nine has a score.
	CompleteRound bool `json:"complete_round"`
}

// CalculateNines subtotals holes 1-9 and 10-18. back is nil when no back-nine
// hole is in play.
func CalculateNines(views []HoleView) (front NineSummary, back *NineSummary) {
	var b NineSummary
	for _, v := range views {
		n := &front
		if v.Number > 9 {
			n = &b
		}
		n.Holes++
		n.Par += v.Par
		n.Yardage += v.Yardage
		if s, ok := v.Score(); ok {
			n.Score += s
			n.Scored++
		}
	}

	front.CompleteRound = front.Holes > 0 && front.Scored == front.Holes
	if b.Holes == 0 {
		return front, nil
	}
	b.CompleteRound = b.Scored == b.Holes
	return front, &b
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func percent(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return round1(float64(n) / float64(of) * 100)
}

func formatToPar(par, score int) string {
	return scoring.FormatIntScoreToPar(par, score)
}
