package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/repo"
	"github.com/padraicbc/gymapi/schema"
)

func sessionFromInput(in schema.WorkoutSessionInput) *models.WorkoutSession {
	return &models.WorkoutSession{
		Date:            in.Date,
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  in.CaloriesBurned,
		MemberID:        in.MemberID,
		TrainerID:       in.TrainerID,
	}
}

// ScheduleWorkoutSession creates a workout session.
// Member and trainer ids are stored as given.
func (h *Handler) ScheduleWorkoutSession(c echo.Context) error {
	var payload schema.WorkoutSessionPayload
	errs, err := bindPayload(c, &payload)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	in := payload.Input()

	if err := repo.CreateWorkoutSession(c.Request().Context(), h.db, sessionFromInput(in)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, message{"Workout session scheduled successfully"})
}

// GetWorkoutSessions returns all workout sessions.
func (h *Handler) GetWorkoutSessions(c echo.Context) error {
	sessions, err := repo.ListWorkoutSessions(c.Request().Context(), h.db)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sessions)
}

// UpdateWorkoutSession replaces all fields of an existing session.
func (h *Handler) UpdateWorkoutSession(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if _, err := repo.GetWorkoutSession(ctx, h.db, id); err != nil {
		return sessionLookupError(id, err)
	}

	var payload schema.WorkoutSessionPayload
	errs, err := bindPayload(c, &payload)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	in := payload.Input()

	s := sessionFromInput(in)
	s.ID = id
	if err := repo.UpdateWorkoutSession(ctx, h.db, s); err != nil {
		return sessionLookupError(id, err)
	}
	return c.JSON(http.StatusOK, message{"Workout session updated successfully"})
}

// GetMemberWorkoutSessions lists the sessions of one member. No sessions,
// including for an unknown member, answers 404.
func (h *Handler) GetMemberWorkoutSessions(c echo.Context) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sessions, err := repo.ListWorkoutSessionsForMember(c.Request().Context(), h.db, memberID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("No workout sessions found for member with id %d", memberID))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sessions)
}

func sessionLookupError(id int, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Workout session with id %d not found", id))
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
