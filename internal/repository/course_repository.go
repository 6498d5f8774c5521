//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	// Create inserts the course together with its Holes.
	Create(ctx context.Context, db *gorm.DB, course *model.Course) error
	FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	// FindWithDetails loads holes ordered by number and tees with their TeeForHole rows.
	FindWithDetails(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	List(ctx context.Context, db *gorm.DB) ([]model.Course, error)
	// ListPlayable returns courses that have at least one tee.
	ListPlayable(ctx context.Context, db *gorm.DB) ([]model.Course, error)
	UpdateInfo(ctx context.Context, db *gorm.DB, course *model.Course) error
	UpdatePar(ctx context.Context, db *gorm.DB, courseID uuid.UUID, par int) error
	Delete(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error

	FindHoles(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]model.Hole, error)
	FindHoleByID(ctx context.Context, db *gorm.DB, holeID uuid.UUID) (*model.Hole, error)
	UpdateHole(ctx context.Context, db *gorm.DB, hole *model.Hole) error
	DeleteHoles(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Create(ctx context.Context, db *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Create(course).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Warn("Duplicate hole number on create course", "error", err, "course_name", course.Name)
			return fmt.Errorf("%w: duplicate hole number", model.ErrConstraintViolation)
		}
		logger.Error("Error creating course in DB", "error", err, "course_name", course.Name)
		return fmt.Errorf("gormCourseRepository.Create: %w", err)
	}
	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	var course model.Course

	if err := db.WithContext(ctx).Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding course by ID", "error", err, "course_id", courseID.String())
		return nil, fmt.Errorf("gormCourseRepository.FindByID: %w", err)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindWithDetails(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	var course model.Course

	err := db.WithContext(ctx).
		Preload("Holes", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Preload("Tees", func(db *gorm.DB) *gorm.DB { return db.Order("yardage DESC") }).
		Preload("Tees.TeeForHoles").
		Where("id = ?", courseID).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error loading course details", "error", err, "course_id", courseID.String())
		return nil, fmt.Errorf("gormCourseRepository.FindWithDetails: %w", err)
	}
	return &course, nil
}

func (r *gormCourseRepository) List(ctx context.Context, db *gorm.DB) ([]model.Course, error) {
	var courses []model.Course

	if err := db.WithContext(ctx).Order("name ASC").Find(&courses).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing courses", "error", err)
		return nil, fmt.Errorf("gormCourseRepository.List: %w", err)
	}
	return courses, nil
}

func (r *gormCourseRepository) ListPlayable(ctx context.Context, db *gorm.DB) ([]model.Course, error) {
	var courses []model.Course

	err := db.WithContext(ctx).
		Where("EXISTS (SELECT 1 FROM tees WHERE tees.course_id = courses.id)").
		Preload("Tees", func(db *gorm.DB) *gorm.DB { return db.Order("yardage DESC") }).
		Order("name ASC").
		Find(&courses).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing playable courses", "error", err)
		return nil, fmt.Errorf("gormCourseRepository.ListPlayable: %w", err)
	}
	return courses, nil
}

func (r *gormCourseRepository) UpdateInfo(ctx context.Context, db *gorm.DB, course *model.Course) error {
	result := db.WithContext(ctx).Model(course).
		Select("name", "address", "city", "state", "country").
		Updates(course)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating course info", "error", result.Error, "course_id", course.ID.String())
		return fmt.Errorf("gormCourseRepository.UpdateInfo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCourseRepository) UpdatePar(ctx context.Context, db *gorm.DB, courseID uuid.UUID, par int) error {
	result := db.WithContext(ctx).Model(&model.Course{}).Where("id = ?", courseID).Update("par", par)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating course par", "error", result.Error, "course_id", courseID.String())
		return fmt.Errorf("gormCourseRepository.UpdatePar: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCourseRepository) Delete(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Delete(&model.Course{}, "id = ?", courseID)
	if result.Error != nil {
		logger.Error("Error deleting course", "error", result.Error, "course_id", courseID.String())
		return fmt.Errorf("gormCourseRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCourseRepository) FindHoles(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]model.Hole, error) {
	var holes []model.Hole

	if err := db.WithContext(ctx).Where("course_id = ?", courseID).Order("number ASC").Find(&holes).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding holes", "error", err, "course_id", courseID.String())
		return nil, fmt.Errorf("gormCourseRepository.FindHoles: %w", err)
	}
	return holes, nil
}

func (r *gormCourseRepository) FindHoleByID(ctx context.Context, db *gorm.DB, holeID uuid.UUID) (*model.Hole, error) {
	var hole model.Hole

	if err := db.WithContext(ctx).Where("id = ?", holeID).First(&hole).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding hole by ID", "error", err, "hole_id", holeID.String())
		return nil, fmt.Errorf("gormCourseRepository.FindHoleByID: %w", err)
	}
	return &hole, nil
}

func (r *gormCourseRepository) UpdateHole(ctx context.Context, db *gorm.DB, hole *model.Hole) error {
	result := db.WithContext(ctx).Model(&model.Hole{}).
		Where("id = ? AND course_id = ?", hole.ID, hole.CourseID).
		Updates(map[string]interface{}{"par": hole.Par, "stroke_index": hole.StrokeIndex})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating hole", "error", result.Error, "hole_id", hole.ID.String())
		return fmt.Errorf("gormCourseRepository.UpdateHole: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCourseRepository) DeleteHoles(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	if err := db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Hole{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting holes", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormCourseRepository.DeleteHoles: %w", err)
	}
	return nil
}
