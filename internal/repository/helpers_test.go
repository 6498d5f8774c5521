package repository

import (
	"fmt"
	"testing"
	"time"

	"go_golf_stat_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database with the full schema.
// A single connection keeps every statement on the same memory database.
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

var par72 = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5}

func seedCourse(t *testing.T, db *gorm.DB, name string, pars []int) *model.Course {
	t.Helper()

	course := &model.Course{Name: name}
	for i, p := range pars {
		course.Holes = append(course.Holes, model.Hole{Number: i + 1, Par: p, StrokeIndex: i + 1})
		course.Par += p
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedTee(t *testing.T, db *gorm.DB, course *model.Course, name string, yardPerPar int) *model.Tee {
	t.Helper()

	tee := &model.Tee{CourseID: course.ID, Name: name, Rating: 70.1, Slope: 125}
	for _, h := range course.Holes {
		tee.TeeForHoles = append(tee.TeeForHoles, model.TeeForHole{HoleID: h.ID, Yardage: h.Par * yardPerPar})
		tee.Yardage += h.Par * yardPerPar
	}
	require.NoError(t, db.Create(tee).Error)
	return tee
}

func seedRound(t *testing.T, db *gorm.DB, userID uuid.UUID, course *model.Course, tee *model.Tee, played time.Time, totalScore *int) *model.Round {
	t.Helper()

	round := &model.Round{
		UserID:        userID,
		CourseID:      course.ID,
		TeeID:         tee.ID,
		DatePlayed:    played.UTC(),
		NumberOfHoles: 18,
		TotalScore:    totalScore,
	}
	require.NoError(t, db.Omit("Course", "Tee").Create(round).Error)
	return round
}

func intPtr(v int) *int { return &v }

func dirPtr(d model.Direction) *model.Direction { return &d }
