// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"
)

// httpRequestDetails groups what is needed to send one request.
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	UserID  uuid.UUID
	Headers map[string]string
}

// sendRequest sends the request to testServer, asserts the status code and
// returns the response with its body already read.
func sendRequest(t *testing.T, details httpRequestDetails, expectedCode int) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if details.Body != nil {
		if s, ok := details.Body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			b, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewBuffer(b)
		}
	}

	req, err := http.NewRequest(details.Method, testServer.URL+details.Path, reqBody)
	require.NoError(t, err, "Failed to create request")

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.UserID != uuid.Nil {
		req.Header.Set(middleware.DevUserHeader, details.UserID.String())
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := testServer.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch, body: %s", string(body))
	return resp, body
}

// decodeBody unmarshals a successful response body into T.
func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body: %s", string(body))
	return v
}

// verifyErrorResponse checks the error code of a failed request.
func verifyErrorResponse(t *testing.T, body []byte, expectedCode string) {
	t.Helper()
	if expectedCode == "" {
		return
	}
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "error body not valid JSON: %s", string(body))
	assert.Equal(t, expectedCode, errResp.Error.Code, "message: %s", errResp.Error.Message)
}

var par72 = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5}

func courseBody(name string, pars []int) model.CreateCourseRequest {
	req := model.CreateCourseRequest{Name: name, City: "Pinehurst", Country: "US"}
	for i, p := range pars {
		req.Holes = append(req.Holes, model.HoleInput{Number: i + 1, Par: p, StrokeIndex: i + 1})
	}
	return req
}

// createCourseWithTee authors a course and one tee through the API.
func createCourseWithTee(t *testing.T, userID uuid.UUID) (model.Course, model.Tee) {
	t.Helper()

	_, body := sendRequest(t, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/courses",
		Body:   courseBody(fmt.Sprintf("Course %s", uuid.NewString()[:8]), par72),
		UserID: userID,
	}, http.StatusCreated)
	course := decodeBody[model.Course](t, body)

	teeReq := model.AddTeeRequest{Name: "White", Rating: 70.1, Slope: 128}
	for _, h := range course.Holes {
		teeReq.Holes = append(teeReq.Holes, model.TeeHoleInput{HoleID: h.ID, Yardage: 350})
	}
	_, body = sendRequest(t, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/courses/" + course.ID.String() + "/tees",
		Body:   teeReq,
		UserID: userID,
	}, http.StatusCreated)
	return course, decodeBody[model.Tee](t, body)
}

func createRound(t *testing.T, userID uuid.UUID, course model.Course, tee model.Tee, played time.Time) model.Round {
	t.Helper()
	_, body := sendRequest(t, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/rounds",
		Body: model.CreateRoundRequest{
			CourseID:      course.ID,
			TeeID:         tee.ID,
			DatePlayed:    played,
			NumberOfHoles: 18,
		},
		UserID: userID,
	}, http.StatusCreated)
	return decodeBody[model.Round](t, body)
}

// statBody builds the body of a hole stat update.
func statBody(holeID uuid.UUID, field string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"hole_id": holeID, "field": field, "value": value}
}

func statPath(roundID uuid.UUID, holeNumber int) string {
	return fmt.Sprintf("/api/v1/rounds/%s/holes/%d/stat", roundID, holeNumber)
}
