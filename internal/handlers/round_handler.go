// internal/handlers/round_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/service"
	"go_golf_stat_keep/internal/webutil"

	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RoundHandler struct {
	rounds service.RoundService
	export service.ExportService
	logger *slog.Logger
}

func NewRoundHandler(rounds service.RoundService, export service.ExportService, logger *slog.Logger) *RoundHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoundHandler{
		rounds: rounds,
		export: export,
		logger: logger,
	}
}

// currentUser reads the authenticated user. On failure the 403 response is
// already written and ok is false.
func currentUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, *slog.Logger, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "user is not authenticated", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, logger, false
	}
	return userID, logger.With(slog.String("user_id", userID.String())), true
}

func (h *RoundHandler) CreateRound(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "CreateRound")))
	if !ok {
		return
	}

	var req model.CreateRoundRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create round request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	round, err := h.rounds.CreateRound(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Round created", slog.String("round_id", round.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, round)
}

// ListRounds supports ?take=N and ?completed=true.
func (h *RoundHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "ListRounds")))
	if !ok {
		return
	}

	take, err := webutil.QueryInt(r, "take", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	completed := false
	if raw := r.URL.Query().Get("completed"); raw != "" {
		if completed, err = strconv.ParseBool(raw); err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_PARAM", "completed must be true or false", "completed", model.ErrInvalidInput))
			return
		}
	}

	var rounds []model.Round
	if completed {
		rounds, err = h.rounds.ListCompletedRounds(r.Context(), userID, take)
	} else {
		rounds, err = h.rounds.ListRounds(r.Context(), userID, take)
	}
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if rounds == nil {
		rounds = []model.Round{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, rounds)
}

// GetRound returns the round with its hole-by-hole view and derived statistics.
func (h *RoundHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "GetRound")))
	if !ok {
		return
	}

	roundID, err := webutil.URLParamUUID(r, "round_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.rounds.GetRoundWithStats(r.Context(), userID, roundID)
	if err != nil {
		webutil.HandleError(w, logger.With(slog.String("round_id", roundID.String())), err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view)
}

func (h *RoundHandler) DeleteRound(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "DeleteRound")))
	if !ok {
		return
	}

	roundID, err := webutil.URLParamUUID(r, "round_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.rounds.DeleteRound(r.Context(), userID, roundID); err != nil {
		webutil.HandleError(w, logger.With(slog.String("round_id", roundID.String())), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateHoleStat sets one field of one hole: {"hole_id": "...", "field": "putts", "value": 2}.
func (h *RoundHandler) UpdateHoleStat(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "UpdateHoleStat")))
	if !ok {
		return
	}

	roundID, err := webutil.URLParamUUID(r, "round_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	holeNumber, err := webutil.URLParamInt(r, "hole_number")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("round_id", roundID.String()), slog.Int("hole_number", holeNumber))

	var req model.UpdateHoleStatRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid hole stat request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	update, err := model.ParseHoleStatUpdate(req.Field, req.Value)
	if err != nil {
		logger.Warn("Invalid hole stat value", slog.String("field", req.Field), slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_STAT", err.Error(), "value", model.ErrInvalidInput))
		return
	}

	result, err := h.rounds.UpdateHoleStat(r.Context(), userID, roundID, holeNumber, req.HoleID, update)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// ExportScorecard streams the round as an .xlsx workbook.
func (h *RoundHandler) ExportScorecard(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "ExportScorecard")))
	if !ok {
		return
	}

	roundID, err := webutil.URLParamUUID(r, "round_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	buf, filename, err := h.export.ExportScorecard(r.Context(), userID, roundID)
	if err != nil {
		webutil.HandleError(w, logger.With(slog.String("round_id", roundID.String())), err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Writing scorecard failed", slog.Any("error", err))
	}
}
