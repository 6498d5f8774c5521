package stats

import (
	"testing"

	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// par72 is a typical layout: four par 3s, four par 5s, ten par 4s.
var par72 = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5}

func newCourse(t *testing.T, pars []int) (*model.Course, *model.Tee) {
	t.Helper()
	course := &model.Course{ID: uuid.New(), Name: "Test Links"}
	tee := &model.Tee{ID: uuid.New(), CourseID: course.ID, Name: "White", Rating: 68.7, Slope: 124}
	for i, p := range pars {
		h := model.Hole{ID: uuid.New(), CourseID: course.ID, Number: i + 1, Par: p, StrokeIndex: i + 1}
		course.Holes = append(course.Holes, h)
		course.Par += p
		th := model.TeeForHole{ID: uuid.New(), TeeID: tee.ID, HoleID: h.ID, Yardage: 100 * p}
		tee.TeeForHoles = append(tee.TeeForHoles, th)
		tee.Yardage += th.Yardage
	}
	return course, tee
}

func ptr[T any](v T) *T { return &v }

func statsFor(course *model.Course, scores []int) []model.HoleStat {
	out := make([]model.HoleStat, 0, len(scores))
	for i, s := range scores {
		h := course.Holes[i]
		out = append(out, model.HoleStat{ID: uuid.New(), HoleID: h.ID, HoleNumber: h.Number, Score: ptr(s)})
	}
	return out
}

func TestBuildHoleViews_JoinsYardageAndStats(t *testing.T) {
	course, tee := newCourse(t, par72)
	// shuffle input order; output must be ordered by number
	holes := []model.Hole{course.Holes[2], course.Holes[0], course.Holes[1]}
	teeHoles := tee.TeeForHoles[1:] // hole 1 has no yardage from this tee
	holeStats := []model.HoleStat{{HoleNumber: 2, Score: ptr(5)}}

	views := BuildHoleViews(18, holes, teeHoles, holeStats)

	require.Len(t, views, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{views[0].Number, views[1].Number, views[2].Number})
	assert.Equal(t, 0, views[0].Yardage)
	assert.Equal(t, 400, views[1].Yardage)
	assert.Nil(t, views[0].Stat)
	require.NotNil(t, views[1].Stat)
	assert.Equal(t, 5, *views[1].Stat.Score)
}

func TestBuildHoleViews_OnlyHolesInPlay(t *testing.T) {
	course, tee := newCourse(t, par72)
	views := BuildHoleViews(9, course.Holes, tee.TeeForHoles, nil)
	require.Len(t, views, 9)
	assert.Equal(t, 9, views[8].Number)
}

func TestBuildHoleViews_RunningScore(t *testing.T) {
	course, tee := newCourse(t, par72)
	holeStats := statsFor(course, []int{5, 4, 2})
	// hole 5 scored but hole 4 is not: running score stops at 3
	holeStats = append(holeStats, model.HoleStat{HoleNumber: 5, Score: ptr(4)})

	views := BuildHoleViews(18, course.Holes, tee.TeeForHoles, holeStats)

	require.NotNil(t, views[0].Thru)
	assert.Equal(t, RunningScore{Par: 4, Score: 5, ToPar: "+1"}, *views[0].Thru)
	assert.Equal(t, RunningScore{Par: 11, Score: 11, ToPar: "E"}, *views[2].Thru)
	assert.Nil(t, views[3].Thru)
	assert.Nil(t, views[4].Thru)
}

func TestCalculateScoringAverages(t *testing.T) {
	course, tee := newCourse(t, par72)
	// holes 1,2 par 4; hole 3 par 3; hole 4 par 5
	holeStats := statsFor(course, []int{5, 4, 3, 6})
	holeStats = append(holeStats, model.HoleStat{HoleNumber: 5, Putts: ptr(2)}) // unscored par 4
	views := BuildHoleViews(18, course.Holes, tee.TeeForHoles, holeStats)

	avg := CalculateScoringAverages(views)

	require.NotNil(t, avg.Par3)
	require.NotNil(t, avg.Par4)
	require.NotNil(t, avg.Par5)
	assert.Equal(t, 3.0, *avg.Par3)
	assert.Equal(t, 4.5, *avg.Par4)
	assert.Equal(t, 6.0, *avg.Par5)

	assert.Nil(t, CalculateScoringAverages(nil).Par4)
}

func TestCalculateScoringAverages_Rounding(t *testing.T) {
	course, tee := newCourse(t, []int{4, 4, 4})
	views := BuildHoleViews(18, course.Holes, tee.TeeForHoles, statsFor(course, []int{4, 4, 5}))

	avg := CalculateScoringAverages(views)
	require.NotNil(t, avg.Par4)
	assert.Equal(t, 4.3, *avg.Par4)
}

func TestCalculateDriveAccuracy_ExcludesPar3(t *testing.T) {
	course, tee := newCourse(t, par72)
	var holeStats []model.HoleStat
	hits := 0
	for _, h := range course.Holes {
		s := model.HoleStat{HoleNumber: h.Number}
		if h.Par != 3 {
			d := model.DirectionLeft
			if hits < 10 {
				d = model.DirectionHit
				hits++
			}
			s.Drive = &d
		}
		holeStats = append(holeStats, s)
	}
	views := BuildHoleViews(18, course.Holes, tee.TeeForHoles, holeStats)

	acc := CalculateDriveAccuracy(views)

	assert.Equal(t, 14, acc.Eligible)
	assert.Equal(t, 10, acc.Count(model.DirectionHit))
	assert.Equal(t, 4, acc.Count(model.DirectionLeft))
	assert.Equal(t, 0, acc.Count(model.DirectionRight))
	for _, r := range acc.Results {
		if r.Direction == model.DirectionHit {
			assert.Equal(t, 71.4, r.Percent)
		}
	}
	assert.Len(t, acc.Results, len(model.DriveDirections))
}

func TestCalculateApproachAccuracy(t *testing.T) {
	course, tee := newCourse(t, []int{4, 4, 3, 5})
	holeStats := []model.HoleStat{
		{HoleNumber: 1, Approach: ptr(model.DirectionHit)},
		{HoleNumber: 2, Approach: ptr(model.DirectionShort)},
		{HoleNumber: 3, Approach: ptr(model.DirectionHit)},
	}
	views := BuildHoleViews(18, course.Holes, tee.TeeForHoles, holeStats)

	acc := CalculateApproachAccuracy(views)

	assert.Equal(t, 4, acc.Eligible)
	assert.Equal(t, 2, acc.Count(model.DirectionHit))
	assert.Equal(t, 1, acc.Count(model.DirectionShort))
	assert.Len(t, acc.Results, len(model.AllDirections))
	for _, r := range acc.Results {
		switch r.Direction {
		case model.DirectionHit:
			assert.Equal(t, 50.0, r.Percent)
		case model.DirectionShort:
			assert.Equal(t, 25.0, r.Percent)
		default:
			assert.Zero(t, r.Percent)
		}
	}
}

func TestCalculateNines(t *testing.T) {
	course, tee := newCourse(t, par72)
	scores := make([]int, 0, 12)
	for i := 0; i < 12; i++ {
		scores = append(scores, par72[i])
	}
	views := BuildHoleViews(18, course.Holes, tee.TeeForHoles, statsFor(course, scores))

	front, back := CalculateNines(views)

	assert.Equal(t, 36, front.Par)
	assert.Equal(t, 36, front.Score)
	assert.Equal(t, 3600, front.Yardage)
	assert.True(t, front.CompleteRound)

	require.NotNil(t, back)
	assert.Equal(t, 36, back.Par)
	assert.Equal(t, 9, back.Holes)
	assert.Equal(t, 3, back.Scored)
	assert.Equal(t, 11, back.Score)
	assert.False(t, back.CompleteRound)
}

func TestCalculateNines_NineHoleRound(t *testing.T) {
	course, tee := newCourse(t, par72)
	views := BuildHoleViews(9, course.Holes, tee.TeeForHoles, nil)

	front, back := CalculateNines(views)
	assert.Nil(t, back)
	assert.Equal(t, 9, front.Holes)
	assert.False(t, front.CompleteRound)
}

func TestBuildRoundWithStats_CompleteRound(t *testing.T) {
	course, tee := newCourse(t, par72)
	scores := append([]int(nil), par72...)
	scores[0] = 5  // bogey
	scores[1] = 3  // birdie
	scores[3] = 10 // worse
	holeStats := statsFor(course, scores)
	holeStats[4].Putts, holeStats[4].ChipShots = ptr(1), ptr(1)
	holeStats[5].Putts, holeStats[5].SandShots = ptr(1), ptr(1)
	holeStats[6].Putts = ptr(3)
	holeStats[7].Putts, holeStats[7].ChipShots = ptr(2), ptr(1)

	total := 0
	for _, s := range scores {
		total += s
	}
	round := &model.Round{ID: uuid.New(), NumberOfHoles: 18, TotalScore: &total, Course: course, Tee: tee}

	rws, err := BuildRoundWithStats(round, holeStats)
	require.NoError(t, err)

	require.Len(t, rws.Holes, 18)
	assert.Equal(t, 72, rws.Summary.Par)
	require.NotNil(t, rws.Summary.ToPar)
	assert.Equal(t, "+5", *rws.Summary.ToPar)
	require.NotNil(t, rws.Summary.Differential)
	// (77 - 68.7) * 113 / 124 = 7.56
	assert.Equal(t, "7.6", *rws.Summary.Differential)
	assert.Equal(t, 1, rws.Summary.UpAndDowns)
	assert.Equal(t, 1, rws.Summary.SandSaves)
	assert.Equal(t, 1, rws.Summary.ThreePutts)
	assert.Equal(t, scoring.Distribution{Birdies: 1, Pars: 15, Bogeys: 1, Worse: 1}, rws.Distribution)
	require.NotNil(t, rws.Back)
	assert.True(t, rws.Back.CompleteRound)
}

func TestBuildRoundWithStats_InProgress(t *testing.T) {
	course, tee := newCourse(t, par72)
	round := &model.Round{ID: uuid.New(), NumberOfHoles: 18, Course: course, Tee: tee}

	rws, err := BuildRoundWithStats(round, statsFor(course, []int{4}))
	require.NoError(t, err)

	assert.Nil(t, rws.Summary.ToPar)
	assert.Nil(t, rws.Summary.Differential)
	assert.Equal(t, 1, rws.Distribution.Total())
}

func TestBuildRoundWithStats_NoCourseLoaded(t *testing.T) {
	rws, err := BuildRoundWithStats(&model.Round{NumberOfHoles: 18}, nil)
	require.NoError(t, err)
	assert.Empty(t, rws.Holes)
	assert.False(t, rws.Front.CompleteRound)
}
