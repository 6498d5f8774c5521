package repository

import (
	"context"
	"testing"

	"go_golf_stat_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCourseRepository_CreateAndFindWithDetails(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormCourseRepository()

	course := &model.Course{Name: "Pine Valley", City: "Clementon", Par: 12}
	for _, n := range []int{3, 1, 2} { // holes inserted out of order
		course.Holes = append(course.Holes, model.Hole{Number: n, Par: 4, StrokeIndex: n})
	}
	require.NoError(t, repo.Create(ctx, db, course))
	assert.NotEqual(t, uuid.Nil, course.ID)

	seedTee(t, db, course, "Red", 80)
	seedTee(t, db, course, "Blue", 110)

	got, err := repo.FindWithDetails(ctx, db, course.ID)
	require.NoError(t, err)

	require.Len(t, got.Holes, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got.Holes[0].Number, got.Holes[1].Number, got.Holes[2].Number})
	require.Len(t, got.Tees, 2)
	assert.Equal(t, "Blue", got.Tees[0].Name, "tees are ordered by yardage, longest first")
	assert.Len(t, got.Tees[0].TeeForHoles, 3)
}

func TestGormCourseRepository_DuplicateHoleNumber(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormCourseRepository()

	course := &model.Course{Name: "Dup", Holes: []model.Hole{
		{Number: 1, Par: 4, StrokeIndex: 1},
		{Number: 1, Par: 3, StrokeIndex: 2},
	}}
	err := repo.Create(ctx, db, course)
	assert.ErrorIs(t, err, model.ErrConstraintViolation)
}

func TestGormCourseRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormCourseRepository()

	_, err := repo.FindByID(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = repo.FindWithDetails(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = repo.FindHoleByID(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, db, uuid.New()), model.ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePar(ctx, db, uuid.New(), 72), model.ErrNotFound)
}

func TestGormCourseRepository_ListPlayable(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormCourseRepository()

	withTee := seedCourse(t, db, "Augusta", par72)
	seedTee(t, db, withTee, "Masters", 100)
	seedCourse(t, db, "Bare Links", par72)

	all, err := repo.List(ctx, db)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Augusta", all[0].Name)

	playable, err := repo.ListPlayable(ctx, db)
	require.NoError(t, err)
	require.Len(t, playable, 1)
	assert.Equal(t, withTee.ID, playable[0].ID)
	assert.Len(t, playable[0].Tees, 1)
}

func TestGormCourseRepository_UpdateHoleAndPar(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormCourseRepository()
	course := seedCourse(t, db, "Muirfield", par72)

	hole := course.Holes[0]
	hole.Par, hole.StrokeIndex = 5, 18
	require.NoError(t, repo.UpdateHole(ctx, db, &hole))
	require.NoError(t, repo.UpdatePar(ctx, db, course.ID, 73))

	gotHole, err := repo.FindHoleByID(ctx, db, hole.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, gotHole.Par)
	assert.Equal(t, 18, gotHole.StrokeIndex)

	gotCourse, err := repo.FindByID(ctx, db, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 73, gotCourse.Par)

	// a hole of another course is not updated
	other := model.Hole{ID: hole.ID, CourseID: uuid.New(), Par: 3, StrokeIndex: 1}
	assert.ErrorIs(t, repo.UpdateHole(ctx, db, &other), model.ErrNotFound)
}

func TestGormCourseRepository_UpdateInfo(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormCourseRepository()
	course := seedCourse(t, db, "Old Name", par72)

	course.Name = "New Name"
	course.Country = "Scotland"
	course.Par = 1 // not part of the info columns
	require.NoError(t, repo.UpdateInfo(ctx, db, course))

	got, err := repo.FindByID(ctx, db, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "Scotland", got.Country)
	assert.Equal(t, 72, got.Par)
}
