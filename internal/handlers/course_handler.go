// internal/handlers/course_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/service"
	"go_golf_stat_keep/internal/webutil"
)

type CourseHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(s service.CourseService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		service: s,
		logger:  logger,
	}
}

// CreateCourse creates a course together with its holes.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateCourse"))

	var req model.CreateCourseRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create course request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course created", slog.String("course_id", course.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, course)
}

func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListCourses"))

	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, courses)
}

// ListPlayableCourses lists courses that have at least one tee.
func (h *CourseHandler) ListPlayableCourses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListPlayableCourses"))

	courses, err := h.service.ListPlayableCourses(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourse"))

	courseID, err := webutil.URLParamUUID(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		webutil.HandleError(w, logger.With(slog.String("course_id", courseID.String())), err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) UpdateCourseInfo(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateCourseInfo"))

	courseID, err := webutil.URLParamUUID(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("course_id", courseID.String()))

	var req model.UpdateCourseInfoRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid update course request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.UpdateCourseInfo(r.Context(), courseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Course info updated")
	webutil.RespondWithJSON(w, http.StatusOK, course)
}

// UpdateCourseHoles changes par and stroke index of holes and returns the updated course.
func (h *CourseHandler) UpdateCourseHoles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateCourseHoles"))

	courseID, err := webutil.URLParamUUID(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("course_id", courseID.String()))

	var req model.UpdateCourseHolesRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid update holes request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.UpdateCourseHoles(r.Context(), courseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Course holes updated", slog.Int("par", course.Par))
	webutil.RespondWithJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCourse"))

	courseID, err := webutil.URLParamUUID(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteCourse(r.Context(), courseID); err != nil {
		webutil.HandleError(w, logger.With(slog.String("course_id", courseID.String())), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) AddTee(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddTee"))

	courseID, err := webutil.URLParamUUID(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("course_id", courseID.String()))

	var req model.AddTeeRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid add tee request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	tee, err := h.service.AddTee(r.Context(), courseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, tee)
}

// DeleteTee answers 409 while rounds still reference the tee.
func (h *CourseHandler) DeleteTee(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTee"))

	teeID, err := webutil.URLParamUUID(r, "tee_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteTee(r.Context(), teeID); err != nil {
		webutil.HandleError(w, logger.With(slog.String("tee_id", teeID.String())), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
