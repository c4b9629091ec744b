package models

import "github.com/uptrace/bun"

// WorkoutSession records one session a member trained with a trainer.
type WorkoutSession struct {
	bun.BaseModel `bun:"table:Workout_Sessions,alias:ws"`

	ID              int  `bun:"id,pk,autoincrement" json:"id"`
	Date            Date `bun:"date,notnull,type:date" json:"date"`
	DurationMinutes int  `bun:"duration_minutes,notnull" json:"duration_minutes"`
	CaloriesBurned  int  `bun:"calories_burned,notnull" json:"calories_burned"`
	MemberID        int  `bun:"member_id,notnull" json:"member_id"`
	TrainerID       int  `bun:"trainer_id,notnull" json:"trainer_id"`
}
