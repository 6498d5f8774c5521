// internal/service/dashboard_service.go
package service

import (
	"context"
	"math"
	"time"

	"go_golf_stat_keep/internal/cache"
	"go_golf_stat_keep/internal/config"
	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/repository"
	"go_golf_stat_keep/internal/scoring"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RoundsPlayed compares completed rounds in a month with the month before.
type RoundsPlayed struct {
	Current  int64 `json:"current"`
	Previous int64 `json:"previous"`
	Delta    int64 `json:"delta"`
}

// TrendPeriod is the hit count of one month. Percent is a fraction in [0, 1].
type TrendPeriod struct {
	Hits     int64   `json:"hits"`
	Possible int64   `json:"possible"`
	Percent  float64 `json:"percent"`
}

type Trend struct {
	Current    TrendPeriod `json:"current"`
	Previous   TrendPeriod `json:"previous"`
	Difference float64     `json:"difference"`
}

type Dashboard struct {
	Year              int                  `json:"year"`
	Month             time.Month           `json:"month"`
	RecentRounds      []model.Round        `json:"recent_rounds"`
	RoundsPlayed      RoundsPlayed         `json:"rounds_played"`
	FairwaysHit       Trend                `json:"fairways_hit"`
	GreensInReg       Trend                `json:"greens_in_regulation"`
	ScoreDistribution scoring.Distribution `json:"score_distribution"`
}

type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*Dashboard, error)
	GetRoundsPlayed(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*RoundsPlayed, error)
	GetFairwaysHitTrend(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*Trend, error)
	GetGirTrend(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*Trend, error)
	GetScoreDistribution(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*scoring.Distribution, error)
}

type dashboardService struct {
	db           *gorm.DB
	roundRepo    repository.RoundRepository
	holeStatRepo repository.HoleStatRepository
	dashboards   cache.DashboardCache
	cfg          config.AppConfig
	loc          *time.Location
}

func NewDashboardService(
	db *gorm.DB,
	roundRepo repository.RoundRepository,
	holeStatRepo repository.HoleStatRepository,
	dashboards cache.DashboardCache,
	cfg config.AppConfig,
) DashboardService {
	if dashboards == nil {
		dashboards = cache.Noop{}
	}
	return &dashboardService{
		db:           db,
		roundRepo:    roundRepo,
		holeStatRepo: holeStatRepo,
		dashboards:   dashboards,
		cfg:          cfg,
		loc:          cfg.Location(),
	}
}

// monthRange is the first and last calendar day of a month, both inclusive.
type monthRange struct {
	From time.Time
	To   time.Time
}

// monthBounds returns local midnight of the first and the last day of the month in UTC.
// The last day is day 0 of the following month.
func monthBounds(year int, month time.Month, loc *time.Location) monthRange {
	return monthRange{
		From: time.Date(year, month, 1, 0, 0, 0, 0, loc).UTC(),
		To:   time.Date(year, month+1, 0, 0, 0, 0, 0, loc).UTC(),
	}
}

func validatePeriod(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return model.NewAppError("INVALID_MONTH", "month must be between 1 and 12", "month", model.ErrInvalidInput)
	}
	if year < 1900 || year > 9999 {
		return model.NewAppError("INVALID_YEAR", "year is out of range", "year", model.ErrInvalidInput)
	}
	return nil
}

func fraction(hits, possible int64) float64 {
	if possible == 0 {
		return 0
	}
	return float64(hits) / float64(possible)
}

// newTrend rounds percentages to three decimals.
func newTrend(cur, prev TrendPeriod) Trend {
	cur.Percent = round3(cur.Percent)
	prev.Percent = round3(prev.Percent)
	return Trend{Current: cur, Previous: prev, Difference: round3(cur.Percent - prev.Percent)}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func (s *dashboardService) GetRoundsPlayed(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*RoundsPlayed, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	cur, prev := monthBounds(year, month, s.loc), monthBounds(year, month-1, s.loc)

	current, err := s.roundRepo.CountCompleted(ctx, s.db, userID, cur.From, cur.To)
	if err != nil {
		return nil, internalError(ctx, "GetRoundsPlayed", err)
	}
	previous, err := s.roundRepo.CountCompleted(ctx, s.db, userID, prev.From, prev.To)
	if err != nil {
		return nil, internalError(ctx, "GetRoundsPlayed", err)
	}
	return &RoundsPlayed{Current: current, Previous: previous, Delta: current - previous}, nil
}

// accuracy loads the accuracy totals of a month and of the month before.
func (s *dashboardService) accuracy(ctx context.Context, userID uuid.UUID, year int, month time.Month) (cur, prev repository.AccuracyTotals, err error) {
	if err := validatePeriod(year, month); err != nil {
		return cur, prev, err
	}
	c, p := monthBounds(year, month, s.loc), monthBounds(year, month-1, s.loc)

	if cur, err = s.roundRepo.SumAccuracy(ctx, s.db, userID, c.From, c.To); err != nil {
		return cur, prev, internalError(ctx, "SumAccuracy", err)
	}
	if prev, err = s.roundRepo.SumAccuracy(ctx, s.db, userID, p.From, p.To); err != nil {
		return cur, prev, internalError(ctx, "SumAccuracy", err)
	}
	return cur, prev, nil
}

func fairwaysPeriod(t repository.AccuracyTotals) TrendPeriod {
	return TrendPeriod{Hits: t.Fairways, Possible: t.PossibleFairways, Percent: fraction(t.Fairways, t.PossibleFairways)}
}

func girPeriod(t repository.AccuracyTotals) TrendPeriod {
	return TrendPeriod{Hits: t.Gir, Possible: t.Holes, Percent: fraction(t.Gir, t.Holes)}
}

func (s *dashboardService) GetFairwaysHitTrend(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*Trend, error) {
	cur, prev, err := s.accuracy(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	t := newTrend(fairwaysPeriod(cur), fairwaysPeriod(prev))
	return &t, nil
}

func (s *dashboardService) GetGirTrend(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*Trend, error) {
	cur, prev, err := s.accuracy(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	t := newTrend(girPeriod(cur), girPeriod(prev))
	return &t, nil
}

// GetScoreDistribution buckets every scored hole of the most recent completed
// rounds of the month, all rounds combined.
func (s *dashboardService) GetScoreDistribution(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*scoring.Distribution, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	r := monthBounds(year, month, s.loc)

	rounds, err := s.roundRepo.ListByUser(ctx, s.db, userID, repository.RoundFilter{
		CompletedOnly: true,
		From:          r.From,
		To:            r.To,
		Take:          s.cfg.ScoreDistributionRounds,
	})
	if err != nil {
		return nil, internalError(ctx, "GetScoreDistribution", err)
	}

	var dist scoring.Distribution
	if len(rounds) == 0 {
		return &dist, nil
	}
	ids := make([]uuid.UUID, 0, len(rounds))
	for _, rd := range rounds {
		ids = append(ids, rd.ID)
	}
	scored, err := s.holeStatRepo.FindScoredWithPar(ctx, s.db, ids)
	if err != nil {
		return nil, internalError(ctx, "GetScoreDistribution", err)
	}
	for _, h := range scored {
		dist.Add(h.Par, h.Score)
	}
	return &dist, nil
}

// GetDashboard loads every part of the dashboard concurrently. Results are
// cached per user and month until the user writes a round.
func (s *dashboardService) GetDashboard(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*Dashboard, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	logger := middleware.GetLogger(ctx).With("year", year, "month", int(month))

	var cached Dashboard
	version, ok, cacheErr := s.dashboards.Get(ctx, userID, year, month, &cached)
	if cacheErr != nil {
		logger.Warn("Dashboard cache read failed", "error", cacheErr)
	} else if ok {
		logger.Debug("Dashboard cache hit")
		return &cached, nil
	}

	d := &Dashboard{Year: year, Month: month}
	r := monthBounds(year, month, s.loc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rounds, err := s.roundRepo.ListByUser(gctx, s.db, userID, repository.RoundFilter{
			CompletedOnly: true,
			Take:          s.cfg.RecentRoundsLimit,
		})
		if err != nil {
			return internalError(gctx, "RecentRounds", err)
		}
		d.RecentRounds = rounds
		return nil
	})
	g.Go(func() error {
		played, err := s.GetRoundsPlayed(gctx, userID, year, month)
		if err != nil {
			return err
		}
		d.RoundsPlayed = *played
		return nil
	})
	g.Go(func() error {
		cur, prev, err := s.accuracy(gctx, userID, year, month)
		if err != nil {
			return err
		}
		d.FairwaysHit = newTrend(fairwaysPeriod(cur), fairwaysPeriod(prev))
		d.GreensInReg = newTrend(girPeriod(cur), girPeriod(prev))
		return nil
	})
	g.Go(func() error {
		dist, err := s.GetScoreDistribution(gctx, userID, year, month)
		if err != nil {
			return err
		}
		d.ScoreDistribution = *dist
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if d.RecentRounds == nil {
		d.RecentRounds = []model.Round{}
	}

	// without a known version the entry could outlive a later invalidation
	if cacheErr == nil {
		if err := s.dashboards.Set(ctx, userID, version, year, month, d); err != nil {
			logger.Warn("Dashboard cache write failed", "error", err)
		}
	}
	logger.Debug("Dashboard computed", "from", r.From, "to", r.To)
	return d, nil
}

// invalidateDashboards drops cached dashboards. Failures are logged only; the
// entries expire with their TTL.
func invalidateDashboards(ctx context.Context, c cache.DashboardCache, userIDs ...uuid.UUID) {
	for _, id := range userIDs {
		if err := c.Invalidate(ctx, id); err != nil {
			middleware.GetLogger(ctx).Warn("Dashboard cache invalidation failed", "user_id", id.String(), "error", err)
		}
	}
}
