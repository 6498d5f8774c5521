// internal/handlers/dashboard_handler_test.go
package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_golf_stat_keep/internal/scoring"
	"go_golf_stat_keep/internal/service"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	userID := uuid.New()
	course, tee := createCourseWithTee(t, userID)
	round := createRound(t, userID, course, tee, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))

	// one birdie, otherwise par
	for _, h := range course.Holes {
		score := h.Par
		if h.Number == 1 {
			score--
		}
		sendRequest(t, httpRequestDetails{
			Method: http.MethodPut,
			Path:   statPath(round.ID, h.Number),
			Body:   statBody(h.ID, "score", score),
			UserID: userID,
		}, http.StatusOK)
	}
	sendRequest(t, httpRequestDetails{
		Method: http.MethodPut,
		Path:   statPath(round.ID, 1),
		Body:   statBody(course.Holes[0].ID, "approach", "hit"),
		UserID: userID,
	}, http.StatusOK)

	_, body := sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/dashboard?year=2024&month=3",
		UserID: userID,
	}, http.StatusOK)
	d := decodeBody[service.Dashboard](t, body)

	assert.Equal(t, 2024, d.Year)
	assert.Equal(t, time.March, d.Month)
	require.Len(t, d.RecentRounds, 1)
	assert.Equal(t, round.ID, d.RecentRounds[0].ID)
	assert.Equal(t, service.RoundsPlayed{Current: 1, Previous: 0, Delta: 1}, d.RoundsPlayed)
	assert.Equal(t, int64(1), d.GreensInReg.Current.Hits)
	assert.Equal(t, int64(18), d.GreensInReg.Current.Possible)
	assert.Equal(t, 1, d.ScoreDistribution.Birdies)
	assert.Equal(t, 17, d.ScoreDistribution.Pars)

	// recent rounds are not bound to the month, the trends are
	_, body = sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/dashboard?year=2024&month=1",
		UserID: userID,
	}, http.StatusOK)
	january := decodeBody[service.Dashboard](t, body)
	assert.Len(t, january.RecentRounds, 1)
	assert.Equal(t, service.RoundsPlayed{}, january.RoundsPlayed)
	assert.Zero(t, january.FairwaysHit.Current.Percent)
	assert.Equal(t, scoring.Distribution{}, january.ScoreDistribution)
}

func TestDashboardHandler_InvalidPeriod(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		query       string
		expectedErr string
	}{
		{"year=2024&month=13", "INVALID_MONTH"},
		{"year=2024&month=0", "INVALID_MONTH"},
		{"year=12&month=5", "INVALID_YEAR"},
		{"year=abc", "INVALID_PARAM"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			_, body := sendRequest(t, httpRequestDetails{
				Method: http.MethodGet,
				Path:   "/api/v1/dashboard?" + tc.query,
				UserID: userID,
			}, http.StatusBadRequest)
			verifyErrorResponse(t, body, tc.expectedErr)
		})
	}
}

func TestDashboardHandler_GetScoreDistribution(t *testing.T) {
	userID := uuid.New()
	course, tee := createCourseWithTee(t, userID)
	now := time.Now().UTC()
	round := createRound(t, userID, course, tee, now)

	for _, h := range course.Holes {
		sendRequest(t, httpRequestDetails{
			Method: http.MethodPut,
			Path:   statPath(round.ID, h.Number),
			Body:   statBody(h.ID, "score", h.Par+1),
			UserID: userID,
		}, http.StatusOK)
	}

	// no query: defaults to the current month
	_, body := sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/dashboard/score-distribution",
		UserID: userID,
	}, http.StatusOK)
	dist := decodeBody[scoring.Distribution](t, body)
	assert.Equal(t, 18, dist.Bogeys)

	_, body = sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/v1/dashboard/score-distribution?year=%d&month=%d", now.Year()-1, int(now.Month())),
		UserID: userID,
	}, http.StatusOK)
	assert.Equal(t, scoring.Distribution{}, decodeBody[scoring.Distribution](t, body))
}
