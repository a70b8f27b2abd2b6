package models

import (
	"time"

	"guestdesk/src/types"
)

// ResponseRecord is the latest guest questionnaire stored in the notes cell.
// Answer fields are flattened at the top level of the JSON object.
type ResponseRecord struct {
	types.GuestAnswers

	SubmittedAt      *time.Time          `json:"submittedAt,omitempty"`
	IsRevision       bool                `json:"isRevision,omitempty"`
	RevisedAt        *time.Time          `json:"revisedAt,omitempty"`
	PreviousResponse *types.GuestAnswers `json:"previousResponse,omitempty"`
}

type FieldChange struct {
	Field  string `json:"field"`
	Label  string `json:"label"`
	Before string `json:"before"`
	After  string `json:"after"`
}
