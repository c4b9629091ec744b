package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gymapi/schema"
)

// Register installs the payload validator and mounts every route on e.
func Register(e *echo.Echo, h *Handler) {
	e.Validator = schema.NewValidator()

	e.GET("/", h.Home)

	e.GET("/members", h.GetMembers)
	e.POST("/members", h.AddMember)
	e.PUT("/members/:id", h.UpdateMember)
	e.DELETE("/members/:id", h.DeleteMember)
	e.GET("/members/:id/workout-sessions", h.GetMemberWorkoutSessions)

	e.POST("/workout-sessions", h.ScheduleWorkoutSession)
	e.GET("/workout-sessions", h.GetWorkoutSessions)
	e.PUT("/workout-sessions/:id", h.UpdateWorkoutSession)
}
