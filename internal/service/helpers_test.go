// internal/service/helpers_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go_golf_stat_keep/internal/cache"
	"go_golf_stat_keep/internal/config"
	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Course{}, &model.Hole{}, &model.Tee{}, &model.TeeForHole{},
		&model.Round{}, &model.HoleStat{},
	))
	return db
}

// testEnv wires every service against one SQLite database.
type testEnv struct {
	db           *gorm.DB
	courseRepo   repository.CourseRepository
	teeRepo      repository.TeeRepository
	roundRepo    repository.RoundRepository
	holeStatRepo repository.HoleStatRepository
	cache        *recordingCache

	courses    CourseService
	rounds     RoundService
	dashboards DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		db:           setupTestDB(t),
		courseRepo:   repository.NewGormCourseRepository(),
		teeRepo:      repository.NewGormTeeRepository(),
		roundRepo:    repository.NewGormRoundRepository(),
		holeStatRepo: repository.NewGormHoleStatRepository(),
		cache:        newRecordingCache(),
	}
	cfg := config.DefaultAppConfig()
	cfg.PrefillScorecard = false

	env.courses = NewCourseService(env.db, env.courseRepo, env.teeRepo, env.roundRepo, env.holeStatRepo, env.cache)
	env.rounds = NewRoundService(env.db, env.courseRepo, env.teeRepo, env.roundRepo, env.holeStatRepo, env.cache, cfg)
	env.dashboards = NewDashboardService(env.db, env.roundRepo, env.holeStatRepo, env.cache, cfg)
	return env
}

var par72 = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5}

func courseRequest(name string, pars []int) *model.CreateCourseRequest {
	req := &model.CreateCourseRequest{Name: name, City: "Pinehurst", Country: "US"}
	for i, p := range pars {
		req.Holes = append(req.Holes, model.HoleInput{Number: i + 1, Par: p, StrokeIndex: i + 1})
	}
	return req
}

// seedCourseWithTee creates a course and a tee of 100 yards per par stroke.
func (env *testEnv) seedCourseWithTee(t *testing.T, pars []int) (*model.Course, *model.Tee) {
	t.Helper()
	ctx := context.Background()

	course, err := env.courses.CreateCourse(ctx, courseRequest("Pine Valley", pars))
	require.NoError(t, err)

	req := &model.AddTeeRequest{Name: "Blue", Rating: 68.7, Slope: 124}
	for _, h := range course.Holes {
		req.Holes = append(req.Holes, model.TeeHoleInput{HoleID: h.ID, Yardage: h.Par * 100})
	}
	tee, err := env.courses.AddTee(ctx, course.ID, req)
	require.NoError(t, err)
	return course, tee
}

func (env *testEnv) createRound(t *testing.T, userID uuid.UUID, course *model.Course, tee *model.Tee, played time.Time, holes int) *model.Round {
	t.Helper()

	round, err := env.rounds.CreateRound(context.Background(), userID, &model.CreateRoundRequest{
		CourseID:      course.ID,
		TeeID:         tee.ID,
		DatePlayed:    played,
		NumberOfHoles: holes,
	})
	require.NoError(t, err)
	return round
}

func (env *testEnv) update(t *testing.T, userID uuid.UUID, round *model.Round, course *model.Course, number int, u model.HoleStatUpdate) *HoleStatUpdateResult {
	t.Helper()

	res, err := env.rounds.UpdateHoleStat(context.Background(), userID, round.ID, number, course.Holes[number-1].ID, u)
	require.NoError(t, err)
	return res
}

func (env *testEnv) reloadRound(t *testing.T, id uuid.UUID) *model.Round {
	t.Helper()

	var r model.Round
	require.NoError(t, env.db.First(&r, "id = ?", id).Error)
	return &r
}

// recordingCache is an in-memory DashboardCache that records invalidations.
// afterMiss, when set, runs once after the next cache miss.
type recordingCache struct {
	entries     map[string]any
	versions    map[uuid.UUID]int64
	invalidated []uuid.UUID
	gets        int
	afterMiss   func()
}

var _ cache.DashboardCache = (*recordingCache)(nil)

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: map[string]any{}, versions: map[uuid.UUID]int64{}}
}

func cacheKey(userID uuid.UUID, version int64, year int, month time.Month) string {
	return fmt.Sprintf("%s:v%d:%04d-%02d", userID, version, year, int(month))
}

func (c *recordingCache) Get(_ context.Context, userID uuid.UUID, year int, month time.Month, dst any) (int64, bool, error) {
	c.gets++
	v := c.versions[userID]
	cached, ok := c.entries[cacheKey(userID, v, year, month)]
	if !ok {
		if hook := c.afterMiss; hook != nil {
			c.afterMiss = nil
			hook()
		}
		return v, false, nil
	}
	*(dst.(*Dashboard)) = *(cached.(*Dashboard))
	return v, true, nil
}

func (c *recordingCache) Set(_ context.Context, userID uuid.UUID, version int64, year int, month time.Month, value any) error {
	c.entries[cacheKey(userID, version, year, month)] = value
	return nil
}

func (c *recordingCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.invalidated = append(c.invalidated, userID)
	c.versions[userID]++
	return nil
}
