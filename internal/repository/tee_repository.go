//go:generate mockery --name TeeRepository --output ./mocks --outpkg mocks --case=underscore
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

type TeeRepository interface {
	// Create inserts the tee together with its TeeForHoles.
	Create(ctx context.Context, db *gorm.DB, tee *model.Tee) error
	FindByID(ctx context.Context, db *gorm.DB, teeID uuid.UUID) (*model.Tee, error)
	// FindWithHoles loads the tee with its TeeForHole rows.
	FindWithHoles(ctx context.Context, db *gorm.DB, teeID uuid.UUID) (*model.Tee, error)
	Delete(ctx context.Context, db *gorm.DB, teeID uuid.UUID) error
	DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error
}

type gormTeeRepository struct{}

func NewGormTeeRepository() TeeRepository {
	return &gormTeeRepository{}
}

func (r *gormTeeRepository) Create(ctx context.Context, db *gorm.DB, tee *model.Tee) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Create(tee).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Warn("Duplicate hole yardage on create tee", "error", err, "course_id", tee.CourseID.String())
			return fmt.Errorf("%w: a hole has more than one yardage for this tee", model.ErrConstraintViolation)
		}
		logger.Error("Error creating tee in DB", "error", err, "course_id", tee.CourseID.String())
		return fmt.Errorf("gormTeeRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTeeRepository) FindByID(ctx context.Context, db *gorm.DB, teeID uuid.UUID) (*model.Tee, error) {
	var tee model.Tee

	if err := db.WithContext(ctx).Where("id = ?", teeID).First(&tee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding tee by ID", "error", err, "tee_id", teeID.String())
		return nil, fmt.Errorf("gormTeeRepository.FindByID: %w", err)
	}
	return &tee, nil
}

func (r *gormTeeRepository) FindWithHoles(ctx context.Context, db *gorm.DB, teeID uuid.UUID) (*model.Tee, error) {
	var tee model.Tee

	if err := db.WithContext(ctx).Preload("TeeForHoles").Where("id = ?", teeID).First(&tee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error loading tee holes", "error", err, "tee_id", teeID.String())
		return nil, fmt.Errorf("gormTeeRepository.FindWithHoles: %w", err)
	}
	return &tee, nil
}

// Delete removes the tee and its TeeForHole rows.
func (r *gormTeeRepository) Delete(ctx context.Context, db *gorm.DB, teeID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Where("tee_id = ?", teeID).Delete(&model.TeeForHole{}).Error; err != nil {
		logger.Error("Error deleting tee yardages", "error", err, "tee_id", teeID.String())
		return fmt.Errorf("gormTeeRepository.Delete: %w", err)
	}

	result := db.WithContext(ctx).Delete(&model.Tee{}, "id = ?", teeID)
	if result.Error != nil {
		logger.Error("Error deleting tee", "error", result.Error, "tee_id", teeID.String())
		return fmt.Errorf("gormTeeRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTeeRepository) DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Where("tee_id IN (SELECT id FROM tees WHERE course_id = ?)", courseID).Delete(&model.TeeForHole{}).Error; err != nil {
		logger.Error("Error deleting tee yardages for course", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormTeeRepository.DeleteByCourse: %w", err)
	}
	if err := db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Tee{}).Error; err != nil {
		logger.Error("Error deleting tees for course", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormTeeRepository.DeleteByCourse: %w", err)
	}
	return nil
}
