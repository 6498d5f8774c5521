package stats

import (
	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/scoring"
)

// RoundSummary holds the headline numbers of a round.
type RoundSummary struct {
	// ToPar and Differential are only set once the round is complete.
	ToPar        *string `json:"to_par"`
	Differential *string `json:"differential"`
	Par          int     `json:"par"`
	UpAndDowns   int     `json:"up_and_downs"`
	SandSaves    int     `json:"sand_saves"`
	ThreePutts   int     `json:"three_putts"`
}

// RoundWithStats is the full derived view of a round.
type RoundWithStats struct {
	Round            *model.Round         `json:"round"`
	Holes            []HoleView           `json:"holes"`
	Summary          RoundSummary         `json:"summary"`
	ScoringAverages  ScoringAverages      `json:"scoring_averages"`
	DriveAccuracy    AccuracyBreakdown    `json:"drive_accuracy"`
	ApproachAccuracy AccuracyBreakdown    `json:"approach_accuracy"`
	Distribution     scoring.Distribution `json:"distribution"`
	Front            NineSummary          `json:"front"`
	Back             *NineSummary         `json:"back,omitempty"`
}

// BuildRoundWithStats composes the derived view. round.Course must carry its
// Holes and round.Tee its TeeForHoles; either may be nil, which yields an
// empty scorecard.
func BuildRoundWithStats(round *model.Round, holeStats []model.HoleStat) (*RoundWithStats, error) {
	var (
		holes    []model.Hole
		teeHoles []model.TeeForHole
	)
	if round.Course != nil {
		holes = round.Course.Holes
	}
	if round.Tee != nil {
		teeHoles = round.Tee.TeeForHoles
	}

	views := BuildHoleViews(round.NumberOfHoles, holes, teeHoles, holeStats)
	summary, err := summarize(round, views)
	if err != nil {
		return nil, err
	}

	front, back := CalculateNines(views)
	return &RoundWithStats{
		Round:            round,
		Holes:            views,
		Summary:          summary,
		ScoringAverages:  CalculateScoringAverages(views),
		DriveAccuracy:    CalculateDriveAccuracy(views),
		ApproachAccuracy: CalculateApproachAccuracy(views),
		Distribution:     CalculateDistribution(views),
		Front:            front,
		Back:             back,
	}, nil
}

func summarize(round *model.Round, views []HoleView) (RoundSummary, error) {
	var s RoundSummary
	for _, v := range views {
		s.Par += v.Par
		if v.Stat == nil {
			continue
		}
		if v.Stat.UpAndDown() {
			s.UpAndDowns++
		}
		if v.Stat.SandSave() {
			s.SandSaves++
		}
		if v.Stat.Putts != nil && *v.Stat.Putts >= 3 {
			s.ThreePutts++
		}
	}

	if !round.IsComplete() {
		return s, nil
	}

	toPar := formatToPar(s.Par, *round.TotalScore)
	s.ToPar = &toPar

	if round.Tee != nil && round.Tee.Slope > 0 {
		diff, err := scoring.CalculateScoreDifferential(float64(*round.TotalScore), round.Tee.Rating, float64(round.Tee.Slope))
		if err != nil {
			return s, err
		}
		s.Differential = &diff
	}
	return s, nil
}
