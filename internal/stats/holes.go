// Package stats derives the read-only views of a round: the hole-by-hole
// scorecard and everything computed from it. Nothing here is persisted.
package stats

import (
	"sort"

	"go_golf_stat_keep/internal/model"

	"github.com/google/uuid"
)

// HoleView joins a course hole with the round's tee yardage and hole stat.
type HoleView struct {
	HoleID      uuid.UUID       `json:"hole_id"`
	Number      int             `json:"number"`
	Par         int             `json:"par"`
	StrokeIndex int             `json:"stroke_index"`
	Yardage     int             `json:"yardage"`
	Stat        *model.HoleStat `json:"stat,omitempty"`

	// Thru is the running total from hole 1 through this hole.
	// It is nil when any hole up to and including this one is unscored.
	Thru *RunningScore `json:"thru,omitempty"`
}

// Score returns the recorded score and whether there is one.
func (h HoleView) Score() (int, bool) {
	if h.Stat == nil || h.Stat.Score == nil {
		return 0, false
	}
	return *h.Stat.Score, true
}

// RunningScore is the cumulative par and score through a hole.
type RunningScore struct {
	Par   int    `json:"par"`
	Score int    `json:"score"`
	ToPar string `json:"to_par"`
}

// BuildHoleViews returns one HoleView per course hole in play, ordered by hole
// number. Holes numbered above numberOfHoles are not in play. A hole without a
// TeeForHole row for the tee has yardage 0; a hole without a stat has a nil Stat.
func BuildHoleViews(numberOfHoles int, holes []model.Hole, teeHoles []model.TeeForHole, holeStats []model.HoleStat) []HoleView {
	yardage := make(map[uuid.UUID]int, len(teeHoles))
	for _, th := range teeHoles {
		yardage[th.HoleID] = th.Yardage
	}

	byNumber := make(map[int]*model.HoleStat, len(holeStats))
	for i := range holeStats {
		byNumber[holeStats[i].HoleNumber] = &holeStats[i]
	}

	sorted := make([]model.Hole, 0, len(holes))
	for _, h := range holes {
		if h.Number >= 1 && h.Number <= numberOfHoles {
			sorted = append(sorted, h)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	views := make([]HoleView, 0, len(sorted))
	for _, h := range sorted {
		views = append(views, HoleView{
			HoleID:      h.ID,
			Number:      h.Number,
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
			Yardage:     yardage[h.ID],
			Stat:        byNumber[h.Number],
		})
	}

	fillRunningScore(views)
	return views
}

func fillRunningScore(views []HoleView) {
	par, score := 0, 0
	for i := range views {
		s, ok := views[i].Score()
		if !ok {
			return
		}
		par += views[i].Par
		score += s
		views[i].Thru = &RunningScore{
			Par:   par,
			Score: score,
			ToPar: formatToPar(par, score),
		}
	}
}
