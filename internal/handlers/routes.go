// internal/handlers/routes.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the API under r. auth resolves the calling user and
// guards every route.
func RegisterRoutes(r chi.Router, courses *CourseHandler, rounds *RoundHandler, dashboard *DashboardHandler, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth)

		r.Route("/courses", func(r chi.Router) {
			r.Post("/", courses.CreateCourse)
			r.Get("/", courses.ListCourses)
			r.Get("/playable", courses.ListPlayableCourses)
			r.Get("/{course_id}", courses.GetCourse)
			r.Patch("/{course_id}", courses.UpdateCourseInfo)
			r.Put("/{course_id}/holes", courses.UpdateCourseHoles)
			r.Delete("/{course_id}", courses.DeleteCourse)
			r.Post("/{course_id}/tees", courses.AddTee)
		})
		r.Delete("/tees/{tee_id}", courses.DeleteTee)

		r.Route("/rounds", func(r chi.Router) {
			r.Post("/", rounds.CreateRound)
			r.Get("/", rounds.ListRounds)
			r.Get("/{round_id}", rounds.GetRound)
			r.Delete("/{round_id}", rounds.DeleteRound)
			r.Put("/{round_id}/holes/{hole_number}/stat", rounds.UpdateHoleStat)
			r.Get("/{round_id}/scorecard.xlsx", rounds.ExportScorecard)
		})

		r.Get("/dashboard", dashboard.GetDashboard)
		r.Get("/dashboard/score-distribution", dashboard.GetScoreDistribution)
	})
}
