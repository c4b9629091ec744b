package models

import "github.com/uptrace/bun"

// Trainer is a gym trainer. Members and workout sessions reference it by id.
type Trainer struct {
	bun.BaseModel `bun:"table:trainers,alias:t"`

	ID   int    `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull,type:varchar(255)" json:"name"`
}
