package schema

import "encoding/json"

// MemberPayload is the body of POST /members and PUT /members/:id.
type MemberPayload struct {
	Name      json.RawMessage `json:"name" validate:"required,notnull,jsonstr"`
	Age       json.RawMessage `json:"age" validate:"required,notnull,jsonint"`
	TrainerID json.RawMessage `json:"trainer_id" validate:"required,notnull,jsonint"`
}

// MemberInput is a validated member payload.
type MemberInput struct {
	Name      string
	Age       int
	TrainerID int
}

// Input converts a payload that passed Validate.
func (p *MemberPayload) Input() MemberInput {
	name, _ := parseString(p.Name)
	age, _ := parseInt(p.Age)
	trainerID, _ := parseInt(p.TrainerID)
	return MemberInput{Name: name, Age: age, TrainerID: trainerID}
}
