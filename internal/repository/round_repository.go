//go:generate mockery --name RoundRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoundFilter narrows ListByUser. Zero values mean no restriction.
type RoundFilter struct {
	CompletedOnly bool
	From          time.Time
	To            time.Time
	Take          int
}

// AccuracyTotals sums cached round aggregates over a set of completed rounds.
type AccuracyTotals struct {
	Rounds           int64
	Fairways         int64
	PossibleFairways int64
	Gir              int64
	Holes            int64
}

type RoundRepository interface {
	Create(ctx context.Context, db *gorm.DB, round *model.Round) error
	FindByID(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (*model.Round, error)
	// FindByIDForUpdate row-locks the round until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (*model.Round, error)
	// FindWithDetails loads the course holes and the tee yardages of the round.
	FindWithDetails(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (*model.Round, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter RoundFilter) ([]model.Round, error)
	CountCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) (int64, error)
	SumAccuracy(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) (AccuracyTotals, error)
	// UpdateAggregates writes the given round columns. A nil value writes NULL.
	UpdateAggregates(ctx context.Context, db *gorm.DB, roundID uuid.UUID, values map[string]interface{}) error
	CountByTee(ctx context.Context, db *gorm.DB, teeID uuid.UUID) (int64, error)
	// UserIDsByCourse returns the distinct owners of rounds played on the course.
	UserIDsByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, db *gorm.DB, roundID uuid.UUID) error
	DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error
}

// aggregateColumns are the only columns UpdateAggregates may write.
var aggregateColumns = map[string]bool{
	"total_score":    true,
	"total_putts":    true,
	"total_fairways": true,
	"total_gir":      true,
}

type gormRoundRepository struct{}

func NewGormRoundRepository() RoundRepository {
	return &gormRoundRepository{}
}

func (r *gormRoundRepository) Create(ctx context.Context, db *gorm.DB, round *model.Round) error {
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(round).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating round in DB", "error", err, "course_id", round.CourseID.String())
		return fmt.Errorf("gormRoundRepository.Create: %w", err)
	}
	return nil
}

func (r *gormRoundRepository) FindByID(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (*model.Round, error) {
	return r.first(ctx, db.WithContext(ctx), roundID, "FindByID")
}

func (r *gormRoundRepository) FindByIDForUpdate(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (*model.Round, error) {
	return r.first(ctx, db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), roundID, "FindByIDForUpdate")
}

func (r *gormRoundRepository) FindWithDetails(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (*model.Round, error) {
	q := db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Holes", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Preload("Tee").
		Preload("Tee.TeeForHoles")
	return r.first(ctx, q, roundID, "FindWithDetails")
}

func (r *gormRoundRepository) first(ctx context.Context, q *gorm.DB, roundID uuid.UUID, op string) (*model.Round, error) {
	var round model.Round

	if err := q.Where("id = ?", roundID).First(&round).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding round", "error", err, "round_id", roundID.String(), "op", op)
		return nil, fmt.Errorf("gormRoundRepository.%s: %w", op, err)
	}
	return &round, nil
}

func (r *gormRoundRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter RoundFilter) ([]model.Round, error) {
	var rounds []model.Round

	q := db.WithContext(ctx).Preload("Course").Preload("Tee").Where("user_id = ?", userID)
	if filter.CompletedOnly {
		q = q.Where("total_score IS NOT NULL")
	}
	if !filter.From.IsZero() {
		q = q.Where("date_played >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("date_played <= ?", filter.To)
	}
	if filter.Take > 0 {
		q = q.Limit(filter.Take)
	}

	if err := q.Order("date_played DESC").Order("created_at DESC").Find(&rounds).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing rounds", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormRoundRepository.ListByUser: %w", err)
	}
	return rounds, nil
}

func completedInRange(db *gorm.DB, userID uuid.UUID, from, to time.Time) *gorm.DB {
	return db.Where("rounds.user_id = ? AND rounds.total_score IS NOT NULL AND rounds.date_played >= ? AND rounds.date_played <= ?",
		userID, from, to)
}

func (r *gormRoundRepository) CountCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) (int64, error) {
	var n int64

	if err := completedInRange(db.WithContext(ctx).Model(&model.Round{}), userID, from, to).Count(&n).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error counting completed rounds", "error", err, "user_id", userID.String())
		return 0, fmt.Errorf("gormRoundRepository.CountCompleted: %w", err)
	}
	return n, nil
}

func (r *gormRoundRepository) SumAccuracy(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) (AccuracyTotals, error) {
	logger := middleware.GetLogger(ctx)
	var totals AccuracyTotals

	err := completedInRange(db.WithContext(ctx).Model(&model.Round{}), userID, from, to).
		Select("COUNT(*) AS rounds, " +
			"COALESCE(SUM(total_fairways), 0) AS fairways, " +
			"COALESCE(SUM(total_gir), 0) AS gir, " +
			"COALESCE(SUM(number_of_holes), 0) AS holes").
		Scan(&totals).Error
	if err != nil {
		logger.Error("Error summing round accuracy", "error", err, "user_id", userID.String())
		return AccuracyTotals{}, fmt.Errorf("gormRoundRepository.SumAccuracy: %w", err)
	}

	// a fairway is possible on every non par 3 hole in play
	err = completedInRange(db.WithContext(ctx).Table("rounds"), userID, from, to).
		Joins("JOIN holes ON holes.course_id = rounds.course_id AND holes.number <= rounds.number_of_holes AND holes.par <> 3").
		Count(&totals.PossibleFairways).Error
	if err != nil {
		logger.Error("Error counting possible fairways", "error", err, "user_id", userID.String())
		return AccuracyTotals{}, fmt.Errorf("gormRoundRepository.SumAccuracy: %w", err)
	}
	return totals, nil
}

func (r *gormRoundRepository) UpdateAggregates(ctx context.Context, db *gorm.DB, roundID uuid.UUID, values map[string]interface{}) error {
	for col := range values {
		if !aggregateColumns[col] {
			return fmt.Errorf("gormRoundRepository.UpdateAggregates: column %q is not an aggregate", col)
		}
	}

	result := db.WithContext(ctx).Model(&model.Round{}).Where("id = ?", roundID).Updates(values)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating round aggregates", "error", result.Error, "round_id", roundID.String())
		return fmt.Errorf("gormRoundRepository.UpdateAggregates: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormRoundRepository) CountByTee(ctx context.Context, db *gorm.DB, teeID uuid.UUID) (int64, error) {
	var n int64

	if err := db.WithContext(ctx).Model(&model.Round{}).Where("tee_id = ?", teeID).Count(&n).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error counting rounds by tee", "error", err, "tee_id", teeID.String())
		return 0, fmt.Errorf("gormRoundRepository.CountByTee: %w", err)
	}
	return n, nil
}

func (r *gormRoundRepository) UserIDsByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := db.WithContext(ctx).Model(&model.Round{}).Where("course_id = ?", courseID).Distinct().Pluck("user_id", &ids).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing round owners for course", "error", err, "course_id", courseID.String())
		return nil, fmt.Errorf("gormRoundRepository.UserIDsByCourse: %w", err)
	}
	return ids, nil
}

func (r *gormRoundRepository) Delete(ctx context.Context, db *gorm.DB, roundID uuid.UUID) error {
	result := db.WithContext(ctx).Delete(&model.Round{}, "id = ?", roundID)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting round", "error", result.Error, "round_id", roundID.String())
		return fmt.Errorf("gormRoundRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormRoundRepository) DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	if err := db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Round{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting rounds for course", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormRoundRepository.DeleteByCourse: %w", err)
	}
	return nil
}
