// internal/handlers/dashboard_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_golf_stat_keep/internal/service"
	"go_golf_stat_keep/internal/webutil"
)

type DashboardHandler struct {
	service service.DashboardService
	loc     *time.Location
	now     func() time.Time
	logger  *slog.Logger
}

// NewDashboardHandler uses loc to pick the current month when the request names none.
func NewDashboardHandler(s service.DashboardService, loc *time.Location, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{
		service: s,
		loc:     loc,
		now:     time.Now,
		logger:  logger,
	}
}

// period reads ?year= and ?month=, defaulting to the current month.
func (h *DashboardHandler) period(r *http.Request) (int, time.Month, error) {
	now := h.now().In(h.loc)
	year, err := webutil.QueryInt(r, "year", now.Year())
	if err != nil {
		return 0, 0, err
	}
	month, err := webutil.QueryInt(r, "month", int(now.Month()))
	if err != nil {
		return 0, 0, err
	}
	return year, time.Month(month), nil
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "GetDashboard")))
	if !ok {
		return
	}

	year, month, err := h.period(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	d, err := h.service.GetDashboard(r.Context(), userID, year, month)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, d)
}

func (h *DashboardHandler) GetScoreDistribution(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "GetScoreDistribution")))
	if !ok {
		return
	}

	year, month, err := h.period(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	dist, err := h.service.GetScoreDistribution(r.Context(), userID, year, month)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, dist)
}
