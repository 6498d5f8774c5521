//go:generate mockery --name HoleStatRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScoreTotals is the sum and count of non-null scores of a round.
type ScoreTotals struct {
	Total  int
	Scored int
}

// ScoredHole is a hole score joined with the hole's par.
type ScoredHole struct {
	RoundID uuid.UUID
	Par     int
	Score   int
}

type HoleStatRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, stats []model.HoleStat) error
	// Upsert inserts stat, or on a (round_id, hole_number) conflict updates only column.
	Upsert(ctx context.Context, db *gorm.DB, stat *model.HoleStat, column string) error
	FindByRound(ctx context.Context, db *gorm.DB, roundID uuid.UUID) ([]model.HoleStat, error)
	FindByRoundAndNumber(ctx context.Context, db *gorm.DB, roundID uuid.UUID, holeNumber int) (*model.HoleStat, error)

	SumScores(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (ScoreTotals, error)
	SumPutts(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (int, error)
	// CountDirection counts hole stats whose column (drive or approach) equals d.
	CountDirection(ctx context.Context, db *gorm.DB, roundID uuid.UUID, column string, d model.Direction) (int, error)
	// ClearDrives nulls the drive of every stat on the given holes and returns
	// the distinct rounds that had one.
	ClearDrives(ctx context.Context, db *gorm.DB, holeIDs []uuid.UUID) ([]uuid.UUID, error)
	// FindScoredWithPar returns every scored hole of the rounds with its par.
	FindScoredWithPar(ctx context.Context, db *gorm.DB, roundIDs []uuid.UUID) ([]ScoredHole, error)

	DeleteByRound(ctx context.Context, db *gorm.DB, roundID uuid.UUID) error
	DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error
}

var holeStatColumns = map[string]bool{
	"score":      true,
	"putts":      true,
	"chip_shots": true,
	"sand_shots": true,
	"drive":      true,
	"approach":   true,
	"note":       true,
}

type gormHoleStatRepository struct{}

func NewGormHoleStatRepository() HoleStatRepository {
	return &gormHoleStatRepository{}
}

func (r *gormHoleStatRepository) CreateBatch(ctx context.Context, db *gorm.DB, stats []model.HoleStat) error {
	if len(stats) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(&stats).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate hole number in round", model.ErrConstraintViolation)
		}
		middleware.GetLogger(ctx).Error("Error seeding hole stats", "error", err, "round_id", stats[0].RoundID.String())
		return fmt.Errorf("gormHoleStatRepository.CreateBatch: %w", err)
	}
	return nil
}

func (r *gormHoleStatRepository) Upsert(ctx context.Context, db *gorm.DB, stat *model.HoleStat, column string) error {
	logger := middleware.GetLogger(ctx)

	if !holeStatColumns[column] {
		return fmt.Errorf("%w: unknown hole stat column %q", model.ErrInvalidInput, column)
	}

	err := db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "round_id"}, {Name: "hole_number"}},
			DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
		}).
		Create(stat).Error
	if err != nil {
		logger.Error("Error upserting hole stat",
			"error", err,
			"round_id", stat.RoundID.String(),
			"hole_number", stat.HoleNumber,
			"column", column,
		)
		return fmt.Errorf("gormHoleStatRepository.Upsert: %w", err)
	}
	return nil
}

func (r *gormHoleStatRepository) FindByRound(ctx context.Context, db *gorm.DB, roundID uuid.UUID) ([]model.HoleStat, error) {
	var stats []model.HoleStat

	if err := db.WithContext(ctx).Where("round_id = ?", roundID).Order("hole_number ASC").Find(&stats).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding hole stats", "error", err, "round_id", roundID.String())
		return nil, fmt.Errorf("gormHoleStatRepository.FindByRound: %w", err)
	}
	return stats, nil
}

func (r *gormHoleStatRepository) FindByRoundAndNumber(ctx context.Context, db *gorm.DB, roundID uuid.UUID, holeNumber int) (*model.HoleStat, error) {
	var stat model.HoleStat

	err := db.WithContext(ctx).Where("round_id = ? AND hole_number = ?", roundID, holeNumber).First(&stat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding hole stat", "error", err, "round_id", roundID.String(), "hole_number", holeNumber)
		return nil, fmt.Errorf("gormHoleStatRepository.FindByRoundAndNumber: %w", err)
	}
	return &stat, nil
}

func (r *gormHoleStatRepository) SumScores(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (ScoreTotals, error) {
	var totals ScoreTotals

	err := db.WithContext(ctx).Model(&model.HoleStat{}).
		Select("COALESCE(SUM(score), 0) AS total, COUNT(score) AS scored").
		Where("round_id = ?", roundID).
		Scan(&totals).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error summing scores", "error", err, "round_id", roundID.String())
		return ScoreTotals{}, fmt.Errorf("gormHoleStatRepository.SumScores: %w", err)
	}
	return totals, nil
}

func (r *gormHoleStatRepository) SumPutts(ctx context.Context, db *gorm.DB, roundID uuid.UUID) (int, error) {
	var sum int

	err := db.WithContext(ctx).Model(&model.HoleStat{}).
		Select("COALESCE(SUM(putts), 0)").
		Where("round_id = ?", roundID).
		Scan(&sum).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error summing putts", "error", err, "round_id", roundID.String())
		return 0, fmt.Errorf("gormHoleStatRepository.SumPutts: %w", err)
	}
	return sum, nil
}

func (r *gormHoleStatRepository) CountDirection(ctx context.Context, db *gorm.DB, roundID uuid.UUID, column string, d model.Direction) (int, error) {
	if column != "drive" && column != "approach" {
		return 0, fmt.Errorf("%w: %q is not a direction column", model.ErrInvalidInput, column)
	}

	var n int64
	err := db.WithContext(ctx).Model(&model.HoleStat{}).
		Where("round_id = ?", roundID).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: string(d)}).
		Count(&n).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error counting directions", "error", err, "round_id", roundID.String(), "column", column)
		return 0, fmt.Errorf("gormHoleStatRepository.CountDirection: %w", err)
	}
	return int(n), nil
}

func (r *gormHoleStatRepository) ClearDrives(ctx context.Context, db *gorm.DB, holeIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(holeIDs) == 0 {
		return nil, nil
	}
	logger := middleware.GetLogger(ctx)

	withDrive := db.WithContext(ctx).Model(&model.HoleStat{}).
		Where("hole_id IN ? AND drive IS NOT NULL", holeIDs)

	var roundIDs []uuid.UUID
	if err := withDrive.Session(&gorm.Session{}).Distinct("round_id").Pluck("round_id", &roundIDs).Error; err != nil {
		logger.Error("Error finding rounds with drives", "error", err, "holes", len(holeIDs))
		return nil, fmt.Errorf("gormHoleStatRepository.ClearDrives: %w", err)
	}
	if len(roundIDs) == 0 {
		return nil, nil
	}

	if err := withDrive.Session(&gorm.Session{}).Update("drive", nil).Error; err != nil {
		logger.Error("Error clearing drives", "error", err, "holes", len(holeIDs))
		return nil, fmt.Errorf("gormHoleStatRepository.ClearDrives: %w", err)
	}
	return roundIDs, nil
}

func (r *gormHoleStatRepository) FindScoredWithPar(ctx context.Context, db *gorm.DB, roundIDs []uuid.UUID) ([]ScoredHole, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}

	var holes []ScoredHole
	err := db.WithContext(ctx).Table("hole_stats").
		Select("hole_stats.round_id AS round_id, holes.par AS par, hole_stats.score AS score").
		Joins("JOIN holes ON holes.id = hole_stats.hole_id").
		Where("hole_stats.round_id IN ? AND hole_stats.score IS NOT NULL", roundIDs).
		Scan(&holes).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error loading scored holes", "error", err, "rounds", len(roundIDs))
		return nil, fmt.Errorf("gormHoleStatRepository.FindScoredWithPar: %w", err)
	}
	return holes, nil
}

func (r *gormHoleStatRepository) DeleteByRound(ctx context.Context, db *gorm.DB, roundID uuid.UUID) error {
	if err := db.WithContext(ctx).Where("round_id = ?", roundID).Delete(&model.HoleStat{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting hole stats", "error", err, "round_id", roundID.String())
		return fmt.Errorf("gormHoleStatRepository.DeleteByRound: %w", err)
	}
	return nil
}

func (r *gormHoleStatRepository) DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	err := db.WithContext(ctx).
		Where("round_id IN (SELECT id FROM rounds WHERE course_id = ?)", courseID).
		Delete(&model.HoleStat{}).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error deleting hole stats for course", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormHoleStatRepository.DeleteByCourse: %w", err)
	}
	return nil
}
