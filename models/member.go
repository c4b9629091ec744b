package models

import "github.com/uptrace/bun"

// Member is a gym member assigned to one trainer.
type Member struct {
	bun.BaseModel `bun:"table:members,alias:m"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	Name      string `bun:"name,notnull,type:varchar(255)" json:"name"`
	Age       int    `bun:"age,notnull" json:"age"`
	TrainerID int    `bun:"trainer_id,notnull" json:"trainer_id"`
}

// MemberView is the public JSON shape of a member. The id is not exposed.
type MemberView struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	TrainerID int    `json:"trainer_id"`
}

// View projects m onto its public JSON shape.
func (m *Member) View() MemberView {
	return MemberView{Name: m.Name, Age: m.Age, TrainerID: m.TrainerID}
}
