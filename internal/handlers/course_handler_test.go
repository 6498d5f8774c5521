// internal/handlers/course_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_golf_stat_keep/internal/model"
)

func TestCourseHandler_CreateCourse(t *testing.T) {
	userID := uuid.New()

	duplicateIndex := courseBody("Twin Index", []int{4, 4, 3})
	duplicateIndex.Holes[2].StrokeIndex = 1

	tests := []struct {
		name         string
		userID       uuid.UUID
		body         interface{}
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "Success - 18 holes",
			userID:       userID,
			body:         courseBody("Pebble Creek", par72),
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Fail - Missing user header",
			body:         courseBody("No User", par72),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "UNAUTHORIZED",
		},
		{
			name:         "Fail - Missing name",
			userID:       userID,
			body:         model.CreateCourseRequest{Holes: []model.HoleInput{{Number: 1, Par: 4, StrokeIndex: 1}}},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "Fail - Par out of range",
			userID:       userID,
			body:         courseBody("Par Six", []int{6}),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "Fail - Duplicate stroke index",
			userID:       userID,
			body:         duplicateIndex,
			expectedCode: http.StatusConflict,
			expectedErr:  "CONSTRAINT_VIOLATION",
		},
		{
			name:         "Fail - Unknown field",
			userID:       userID,
			body:         `{"name":"X","holes":[{"number":1,"par":4,"stroke_index":1}],"rating":72}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_BODY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, body := sendRequest(t, httpRequestDetails{
				Method: http.MethodPost,
				Path:   "/api/v1/courses",
				Body:   tc.body,
				UserID: tc.userID,
			}, tc.expectedCode)

			if tc.expectedErr != "" {
				verifyErrorResponse(t, body, tc.expectedErr)
				return
			}
			course := decodeBody[model.Course](t, body)
			assert.NotEqual(t, uuid.Nil, course.ID)
			assert.Equal(t, 72, course.Par)
			assert.Len(t, course.Holes, 18)
		})
	}
}

func TestCourseHandler_GetCourse(t *testing.T) {
	userID := uuid.New()
	course, tee := createCourseWithTee(t, userID)

	_, body := sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/courses/" + course.ID.String(),
		UserID: userID,
	}, http.StatusOK)
	got := decodeBody[model.Course](t, body)
	assert.Equal(t, course.Name, got.Name)
	require.Len(t, got.Tees, 1)
	assert.Equal(t, tee.ID, got.Tees[0].ID)
	assert.Equal(t, 18*350, got.Tees[0].Yardage)

	_, body = sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/courses/" + uuid.NewString(),
		UserID: userID,
	}, http.StatusNotFound)
	verifyErrorResponse(t, body, "NOT_FOUND")

	_, body = sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/courses/not-a-uuid",
		UserID: userID,
	}, http.StatusBadRequest)
	verifyErrorResponse(t, body, "INVALID_ID")
}

func TestCourseHandler_ListPlayableCourses(t *testing.T) {
	userID := uuid.New()
	playable, _ := createCourseWithTee(t, userID)

	_, body := sendRequest(t, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/courses",
		Body:   courseBody("Teeless "+uuid.NewString()[:8], par72),
		UserID: userID,
	}, http.StatusCreated)
	teeless := decodeBody[model.Course](t, body)

	_, body = sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/courses/playable",
		UserID: userID,
	}, http.StatusOK)
	courses := decodeBody[[]model.Course](t, body)

	ids := make(map[uuid.UUID]bool, len(courses))
	for _, c := range courses {
		ids[c.ID] = true
	}
	assert.True(t, ids[playable.ID])
	assert.False(t, ids[teeless.ID])
}

func TestCourseHandler_UpdateCourseHoles(t *testing.T) {
	userID := uuid.New()
	course, _ := createCourseWithTee(t, userID)

	// hole 1 becomes a par 5 and trades stroke index with hole 2
	req := model.UpdateCourseHolesRequest{Holes: []model.HoleUpdate{
		{ID: course.Holes[0].ID, Par: 5, StrokeIndex: 2},
		{ID: course.Holes[1].ID, Par: 4, StrokeIndex: 1},
	}}
	_, body := sendRequest(t, httpRequestDetails{
		Method: http.MethodPut,
		Path:   "/api/v1/courses/" + course.ID.String() + "/holes",
		Body:   req,
		UserID: userID,
	}, http.StatusOK)
	updated := decodeBody[model.Course](t, body)
	assert.Equal(t, 73, updated.Par)
	assert.Equal(t, 2, updated.Holes[0].StrokeIndex)
	assert.Equal(t, 1, updated.Holes[1].StrokeIndex)

	clash := model.UpdateCourseHolesRequest{Holes: []model.HoleUpdate{
		{ID: course.Holes[0].ID, Par: 4, StrokeIndex: 3},
	}}
	_, body = sendRequest(t, httpRequestDetails{
		Method: http.MethodPut,
		Path:   "/api/v1/courses/" + course.ID.String() + "/holes",
		Body:   clash,
		UserID: userID,
	}, http.StatusConflict)
	verifyErrorResponse(t, body, "CONSTRAINT_VIOLATION")
}

func TestCourseHandler_DeleteTee(t *testing.T) {
	userID := uuid.New()
	course, tee := createCourseWithTee(t, userID)
	round := createRound(t, userID, course, tee, time.Now())

	_, body := sendRequest(t, httpRequestDetails{
		Method: http.MethodDelete,
		Path:   "/api/v1/tees/" + tee.ID.String(),
		UserID: userID,
	}, http.StatusConflict)
	verifyErrorResponse(t, body, "TEE_IN_USE")

	sendRequest(t, httpRequestDetails{
		Method: http.MethodDelete,
		Path:   "/api/v1/rounds/" + round.ID.String(),
		UserID: userID,
	}, http.StatusNoContent)

	sendRequest(t, httpRequestDetails{
		Method: http.MethodDelete,
		Path:   "/api/v1/tees/" + tee.ID.String(),
		UserID: userID,
	}, http.StatusNoContent)
}

func TestCourseHandler_DeleteCourse(t *testing.T) {
	userID := uuid.New()
	course, tee := createCourseWithTee(t, userID)
	round := createRound(t, userID, course, tee, time.Now())

	sendRequest(t, httpRequestDetails{
		Method: http.MethodDelete,
		Path:   "/api/v1/courses/" + course.ID.String(),
		UserID: userID,
	}, http.StatusNoContent)

	sendRequest(t, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/rounds/" + round.ID.String(),
		UserID: userID,
	}, http.StatusNotFound)
}
