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

// GetMembers returns all members.
func (h *Handler) GetMembers(c echo.Context) error {
	members, err := repo.ListMembers(c.Request().Context(), h.db)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]models.MemberView, len(members))
	for i := range members {
		result[i] = members[i].View()
	}
	return c.JSON(http.StatusOK, result)
}

// AddMember creates a member from a {name, age, trainer_id} body.
func (h *Handler) AddMember(c echo.Context) error {
	var payload schema.MemberPayload
	errs, err := bindPayload(c, &payload)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	in := payload.Input()

	if _, err := repo.CreateMember(c.Request().Context(), h.db, in.Name, in.Age, in.TrainerID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, message{"New member added successfully"})
}

// UpdateMember replaces all fields of an existing member.
// A missing member answers 404 before the body is looked at.
func (h *Handler) UpdateMember(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if _, err := repo.GetMember(ctx, h.db, id); err != nil {
		return memberLookupError(id, err)
	}

	var payload schema.MemberPayload
	errs, err := bindPayload(c, &payload)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	in := payload.Input()

	if _, err := repo.UpdateMember(ctx, h.db, id, in.Name, in.Age, in.TrainerID); err != nil {
		return memberLookupError(id, err)
	}
	return c.JSON(http.StatusOK, message{"Member details updated successfully"})
}

// DeleteMember removes a member. Its workout sessions are kept.
func (h *Handler) DeleteMember(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := repo.DeleteMember(c.Request().Context(), h.db, id); err != nil {
		return memberLookupError(id, err)
	}
	return c.JSON(http.StatusOK, message{fmt.Sprintf("Member with id %d deleted successfully", id)})
}

func memberLookupError(id int, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Member with id %d not found", id))
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
