package schema

import (
	"encoding/json"

	"github.com/padraicbc/gymapi/models"
)

// WorkoutSessionPayload is the body of POST /workout-sessions and
// PUT /workout-sessions/:id. A client-supplied id is accepted and ignored.
type WorkoutSessionPayload struct {
	ID              json.RawMessage `json:"id"`
	Date            json.RawMessage `json:"date" validate:"required,notnull,isodate"`
	DurationMinutes json.RawMessage `json:"duration_minutes" validate:"required,notnull,jsonint"`
	CaloriesBurned  json.RawMessage `json:"calories_burned" validate:"required,notnull,jsonint"`
	MemberID        json.RawMessage `json:"member_id" validate:"required,notnull,jsonint"`
	TrainerID       json.RawMessage `json:"trainer_id" validate:"required,notnull,jsonint"`
}

// WorkoutSessionInput is a validated workout session payload.
type WorkoutSessionInput struct {
	Date            models.Date
	DurationMinutes int
	CaloriesBurned  int
	MemberID        int
	TrainerID       int
}

// Input converts a payload that passed Validate.
func (p *WorkoutSessionPayload) Input() WorkoutSessionInput {
	date, _ := parseDate(p.Date)
	duration, _ := parseInt(p.DurationMinutes)
	calories, _ := parseInt(p.CaloriesBurned)
	memberID, _ := parseInt(p.MemberID)
	trainerID, _ := parseInt(p.TrainerID)
	return WorkoutSessionInput{
		Date:            date,
		DurationMinutes: duration,
		CaloriesBurned:  calories,
		MemberID:        memberID,
		TrainerID:       trainerID,
	}
}
