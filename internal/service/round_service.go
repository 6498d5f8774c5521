// internal/service/round_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go_golf_stat_keep/internal/cache"
	"go_golf_stat_keep/internal/config"
	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/repository"
	"go_golf_stat_keep/internal/stats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HoleStatUpdateResult is the state of the round and the hole after an update.
type HoleStatUpdateResult struct {
	Round    *model.Round    `json:"round"`
	HoleStat *model.HoleStat `json:"hole_stat"`
}

type RoundService interface {
	CreateRound(ctx context.Context, userID uuid.UUID, req *model.CreateRoundRequest) (*model.Round, error)
	GetRoundWithStats(ctx context.Context, userID, roundID uuid.UUID) (*stats.RoundWithStats, error)
	// ListRounds returns the user's rounds, most recently played first. take <= 0 means no limit.
	ListRounds(ctx context.Context, userID uuid.UUID, take int) ([]model.Round, error)
	ListCompletedRounds(ctx context.Context, userID uuid.UUID, take int) ([]model.Round, error)
	DeleteRound(ctx context.Context, userID, roundID uuid.UUID) error
	// UpdateHoleStat writes one field of one hole and recomputes the round
	// aggregate that depends on it, in a single transaction.
	UpdateHoleStat(ctx context.Context, userID, roundID uuid.UUID, holeNumber int, holeID uuid.UUID, update model.HoleStatUpdate) (*HoleStatUpdateResult, error)
}

type roundService struct {
	db           *gorm.DB
	courseRepo   repository.CourseRepository
	teeRepo      repository.TeeRepository
	roundRepo    repository.RoundRepository
	holeStatRepo repository.HoleStatRepository
	dashboards   cache.DashboardCache
	cfg          config.AppConfig
	loc          *time.Location
}

func NewRoundService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	teeRepo repository.TeeRepository,
	roundRepo repository.RoundRepository,
	holeStatRepo repository.HoleStatRepository,
	dashboards cache.DashboardCache,
	cfg config.AppConfig,
) RoundService {
	if dashboards == nil {
		dashboards = cache.Noop{}
	}
	return &roundService{
		db:           db,
		courseRepo:   courseRepo,
		teeRepo:      teeRepo,
		roundRepo:    roundRepo,
		holeStatRepo: holeStatRepo,
		dashboards:   dashboards,
		cfg:          cfg,
		loc:          cfg.Location(),
	}
}

// normalizeDatePlayed keeps only the calendar day of t as seen in loc and
// returns local midnight of that day in UTC.
func normalizeDatePlayed(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
}

// seedHoleStats builds one row per hole in play. With prefill every hole is
// recorded as played to par: two putts, green hit and fairway hit where there is one.
func seedHoleStats(roundID uuid.UUID, holes []model.Hole, prefill bool) []model.HoleStat {
	seeded := make([]model.HoleStat, 0, len(holes))
	for _, h := range holes {
		stat := model.HoleStat{RoundID: roundID, HoleID: h.ID, HoleNumber: h.Number}
		if prefill {
			model.ScoreUpdate{Strokes: h.Par}.Apply(&stat)
			model.PuttsUpdate{Putts: 2}.Apply(&stat)
			model.ApproachUpdate{Result: model.DirectionHit}.Apply(&stat)
			if h.Par != 3 {
				model.DriveUpdate{Result: model.DirectionHit}.Apply(&stat)
			}
		}
		seeded = append(seeded, stat)
	}
	return seeded
}

func (s *roundService) CreateRound(ctx context.Context, userID uuid.UUID, req *model.CreateRoundRequest) (*model.Round, error) {
	if req.NumberOfHoles != 9 && req.NumberOfHoles != 18 {
		return nil, model.NewAppError("INVALID_NUMBER_OF_HOLES", "number_of_holes must be 9 or 18", "number_of_holes", model.ErrInvalidInput)
	}
	if req.DatePlayed.IsZero() {
		return nil, model.NewAppError("VALIDATION_ERROR", "date_played is required", "date_played", model.ErrInvalidInput)
	}
	prefill := s.cfg.PrefillScorecard
	if req.Prefill != nil {
		prefill = *req.Prefill
	}

	logger := middleware.GetLogger(ctx).With("course_id", req.CourseID.String(), "tee_id", req.TeeID.String())
	var created *model.Round

	err := runInTx(ctx, s.db, "CreateRound", func(tx *gorm.DB) error {
		if _, err := s.courseRepo.FindByID(ctx, tx, req.CourseID); err != nil {
			return err
		}
		tee, err := s.teeRepo.FindByID(ctx, tx, req.TeeID)
		if err != nil {
			return err
		}
		if tee.CourseID != req.CourseID {
			return model.NewAppError("TEE_NOT_ON_COURSE", "tee does not belong to the course", "tee_id", model.ErrInvalidInput)
		}

		holes, err := s.courseRepo.FindHoles(ctx, tx, req.CourseID)
		if err != nil {
			return err
		}
		inPlay := make([]model.Hole, 0, req.NumberOfHoles)
		for _, h := range holes {
			if h.Number <= req.NumberOfHoles {
				inPlay = append(inPlay, h)
			}
		}
		if len(inPlay) != req.NumberOfHoles {
			return model.NewAppError("NOT_ENOUGH_HOLES",
				fmt.Sprintf("course has %d of the %d holes needed", len(inPlay), req.NumberOfHoles),
				"number_of_holes", model.ErrInvalidInput)
		}

		round := &model.Round{
			UserID:        userID,
			CourseID:      req.CourseID,
			TeeID:         req.TeeID,
			DatePlayed:    normalizeDatePlayed(req.DatePlayed, s.loc),
			NumberOfHoles: req.NumberOfHoles,
		}
		if err := s.roundRepo.Create(ctx, tx, round); err != nil {
			return err
		}
		if err := s.holeStatRepo.CreateBatch(ctx, tx, seedHoleStats(round.ID, inPlay, prefill)); err != nil {
			return err
		}
		if err := s.recomputeAll(ctx, tx, round); err != nil {
			return err
		}

		created, err = s.roundRepo.FindByID(ctx, tx, round.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	invalidateDashboards(ctx, s.dashboards, userID)
	logger.Info("Round created", "round_id", created.ID.String(), "number_of_holes", created.NumberOfHoles, "prefill", prefill)
	return created, nil
}

// ownedRound hides rounds of other users behind ErrNotFound.
func ownedRound(round *model.Round, userID uuid.UUID) error {
	if round.UserID != userID {
		return fmt.Errorf("%w: round %s", model.ErrNotFound, round.ID)
	}
	return nil
}

func (s *roundService) GetRoundWithStats(ctx context.Context, userID, roundID uuid.UUID) (*stats.RoundWithStats, error) {
	round, err := s.roundRepo.FindWithDetails(ctx, s.db, roundID)
	if err != nil {
		return nil, internalError(ctx, "GetRoundWithStats", err)
	}
	if err := ownedRound(round, userID); err != nil {
		return nil, err
	}

	holeStats, err := s.holeStatRepo.FindByRound(ctx, s.db, roundID)
	if err != nil {
		return nil, internalError(ctx, "GetRoundWithStats", err)
	}
	view, err := stats.BuildRoundWithStats(round, holeStats)
	if err != nil {
		return nil, internalError(ctx, "GetRoundWithStats", err)
	}
	return view, nil
}

func (s *roundService) ListRounds(ctx context.Context, userID uuid.UUID, take int) ([]model.Round, error) {
	return s.listRounds(ctx, userID, repository.RoundFilter{Take: take})
}

func (s *roundService) ListCompletedRounds(ctx context.Context, userID uuid.UUID, take int) ([]model.Round, error) {
	return s.listRounds(ctx, userID, repository.RoundFilter{CompletedOnly: true, Take: take})
}

func (s *roundService) listRounds(ctx context.Context, userID uuid.UUID, filter repository.RoundFilter) ([]model.Round, error) {
	if filter.Take < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "take must not be negative", "take", model.ErrInvalidInput)
	}
	rounds, err := s.roundRepo.ListByUser(ctx, s.db, userID, filter)
	if err != nil {
		return nil, internalError(ctx, "ListRounds", err)
	}
	return rounds, nil
}

func (s *roundService) DeleteRound(ctx context.Context, userID, roundID uuid.UUID) error {
	err := runInTx(ctx, s.db, "DeleteRound", func(tx *gorm.DB) error {
		round, err := s.roundRepo.FindByIDForUpdate(ctx, tx, roundID)
		if err != nil {
			return err
		}
		if err := ownedRound(round, userID); err != nil {
			return err
		}
		if err := s.holeStatRepo.DeleteByRound(ctx, tx, roundID); err != nil {
			return err
		}
		return s.roundRepo.Delete(ctx, tx, roundID)
	})
	if err != nil {
		return err
	}

	invalidateDashboards(ctx, s.dashboards, userID)
	middleware.GetLogger(ctx).Info("Round deleted", "round_id", roundID.String())
	return nil
}

func (s *roundService) UpdateHoleStat(ctx context.Context, userID, roundID uuid.UUID, holeNumber int, holeID uuid.UUID, update model.HoleStatUpdate) (*HoleStatUpdateResult, error) {
	if err := model.ValidateHoleStatUpdate(update); err != nil {
		return nil, err
	}
	logger := middleware.GetLogger(ctx).With("round_id", roundID.String(), "hole_number", holeNumber, "field", string(update.Field()))

	var result HoleStatUpdateResult

	err := runInTx(ctx, s.db, "UpdateHoleStat", func(tx *gorm.DB) error {
		// serializes writers of the same round
		round, err := s.roundRepo.FindByIDForUpdate(ctx, tx, roundID)
		if err != nil {
			return err
		}
		if err := ownedRound(round, userID); err != nil {
			return err
		}
		if holeNumber < 1 || holeNumber > round.NumberOfHoles {
			return model.NewAppError("HOLE_OUT_OF_RANGE",
				fmt.Sprintf("hole %d is not played in a %d hole round", holeNumber, round.NumberOfHoles),
				"hole_number", model.ErrConstraintViolation)
		}

		hole, err := s.courseRepo.FindHoleByID(ctx, tx, holeID)
		if err != nil {
			return err
		}
		if hole.CourseID != round.CourseID || hole.Number != holeNumber {
			return model.NewAppError("HOLE_MISMATCH", "hole_id does not match the hole number on this course", "hole_id", model.ErrInvalidInput)
		}
		if _, ok := update.(model.DriveUpdate); ok && hole.Par == 3 {
			return model.NewAppError("NO_FAIRWAY", "drive cannot be recorded on a par 3", "field", model.ErrInvalidInput)
		}

		stat := &model.HoleStat{RoundID: round.ID, HoleID: hole.ID, HoleNumber: holeNumber}
		update.Apply(stat)
		if err := s.holeStatRepo.Upsert(ctx, tx, stat, update.Column()); err != nil {
			return err
		}
		if err := s.recompute(ctx, tx, round, update); err != nil {
			return err
		}

		if result.Round, err = s.roundRepo.FindByID(ctx, tx, round.ID); err != nil {
			return err
		}
		result.HoleStat, err = s.holeStatRepo.FindByRoundAndNumber(ctx, tx, round.ID, holeNumber)
		return err
	})
	if err != nil {
		logger.Warn("Hole stat update rejected", "error", err)
		return nil, err
	}

	invalidateDashboards(ctx, s.dashboards, userID)
	logger.Debug("Hole stat updated")
	return &result, nil
}

// recompute rewrites only the round aggregate that depends on the updated field.
// Aggregates are always re-derived from every hole stat of the round.
func (s *roundService) recompute(ctx context.Context, tx *gorm.DB, round *model.Round, update model.HoleStatUpdate) error {
	switch update.(type) {
	case model.ScoreUpdate:
		return s.recomputeScore(ctx, tx, round)
	case model.PuttsUpdate:
		return s.recomputePutts(ctx, tx, round)
	case model.DriveUpdate:
		return s.recomputeHits(ctx, tx, round, "drive", "total_fairways")
	case model.ApproachUpdate:
		return s.recomputeHits(ctx, tx, round, "approach", "total_gir")
	case model.ChipShotsUpdate, model.SandShotsUpdate, model.NoteUpdate:
		return nil
	default:
		return fmt.Errorf("%w: unsupported update %T", model.ErrInvalidInput, update)
	}
}

func (s *roundService) recomputeAll(ctx context.Context, tx *gorm.DB, round *model.Round) error {
	if err := s.recomputeScore(ctx, tx, round); err != nil {
		return err
	}
	if err := s.recomputePutts(ctx, tx, round); err != nil {
		return err
	}
	if err := s.recomputeHits(ctx, tx, round, "drive", "total_fairways"); err != nil {
		return err
	}
	return s.recomputeHits(ctx, tx, round, "approach", "total_gir")
}

// recomputeScore writes the total only once every hole in play is scored; until then it is NULL.
func (s *roundService) recomputeScore(ctx context.Context, tx *gorm.DB, round *model.Round) error {
	totals, err := s.holeStatRepo.SumScores(ctx, tx, round.ID)
	if err != nil {
		return err
	}
	var total interface{}
	if totals.Scored == round.NumberOfHoles {
		total = totals.Total
	}
	return s.roundRepo.UpdateAggregates(ctx, tx, round.ID, map[string]interface{}{"total_score": total})
}

func (s *roundService) recomputePutts(ctx context.Context, tx *gorm.DB, round *model.Round) error {
	putts, err := s.holeStatRepo.SumPutts(ctx, tx, round.ID)
	if err != nil {
		return err
	}
	return s.roundRepo.UpdateAggregates(ctx, tx, round.ID, map[string]interface{}{"total_putts": putts})
}

func (s *roundService) recomputeHits(ctx context.Context, tx *gorm.DB, round *model.Round, column, aggregate string) error {
	return recountHits(ctx, tx, s.holeStatRepo, s.roundRepo, round.ID, column, aggregate)
}

// recountHits stores the number of "hit" values in column as the round's aggregate.
func recountHits(ctx context.Context, tx *gorm.DB, holeStats repository.HoleStatRepository, rounds repository.RoundRepository, roundID uuid.UUID, column, aggregate string) error {
	hits, err := holeStats.CountDirection(ctx, tx, roundID, column, model.DirectionHit)
	if err != nil {
		return err
	}
	return rounds.UpdateAggregates(ctx, tx, roundID, map[string]interface{}{aggregate: hits})
}
