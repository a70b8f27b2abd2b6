package common

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"guestdesk/src/models"
	"guestdesk/src/types"
)

type answerField struct {
	name    string
	label   string
	display func(a types.GuestAnswers) string
}

func displayBool(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// answerFields is the canonical display order used by DiffAnswers.
var answerFields = []answerField{
	{"hasChildren", "Traveling with children", func(a types.GuestAnswers) string { return displayBool(a.HasChildren) }},
	{"childrenDetails", "Children age and gender", func(a types.GuestAnswers) string { return a.ChildrenDetails }},
	{"arrivalCountryDate", "Arrival in Japan", func(a types.GuestAnswers) string { return a.ArrivalCountryDate }},
	{"prevNightPlace", "Previous night stay", func(a types.GuestAnswers) string { return a.PrevNightPlace }},
	{"hasPhone", "Phone usable in Japan", func(a types.GuestAnswers) string { return displayBool(a.HasPhone) }},
	{"phoneNumber", "Phone number", func(a types.GuestAnswers) string { return a.PhoneNumber }},
	{"dinnerRequest", "Dinner add-on", func(a types.GuestAnswers) string { return a.DinnerRequest }},
	{"dinnerConsent", "Dinner terms accepted", func(a types.GuestAnswers) string { return displayBool(a.DinnerConsent) }},
	{"dietaryNeeds", "Dietary requirements", func(a types.GuestAnswers) string { return displayBool(a.DietaryNeeds) }},
	{"dietaryDetails", "Dietary details", func(a types.GuestAnswers) string { return a.DietaryDetails }},
	{"arrivalTime", "Arrival time", func(a types.GuestAnswers) string { return a.ArrivalTime }},
	{"arrivalTimeConsent", "Arrival time notice accepted", func(a types.GuestAnswers) string { return displayBool(a.ArrivalTimeConsent) }},
	{"needsPickup", "Station pickup", func(a types.GuestAnswers) string { return displayBool(a.NeedsPickup) }},
	{"pickupConsent", "Pickup notice accepted", func(a types.GuestAnswers) string { return displayBool(a.PickupConsent) }},
	{"otherNotes", "Other requests", func(a types.GuestAnswers) string { return a.OtherNotes }},
	{"language", "Language", func(a types.GuestAnswers) string { return string(a.Language) }},
	{"reservationConfirmed", "Reservation details confirmed", func(a types.GuestAnswers) string { return displayBool(a.ReservationConfirmed) }},
}

// ParseResponseRecord decodes the notes cell. Empty or malformed content
// yields nil, which callers treat as no previous response.
func ParseResponseRecord(raw string) *models.ResponseRecord {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var rec models.ResponseRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		log.Printf("[responses] Ignoring malformed notes: %s\n", err.Error())
		return nil
	}
	return &rec
}

func EncodeResponseRecord(rec models.ResponseRecord) (string, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ClassifySubmission builds the record to store for a new submission.
// A previous record with a submittedAt turns the submission into a revision
// that keeps the first submittedAt and snapshots the previous answers.
func ClassifySubmission(existing *models.ResponseRecord, incoming types.GuestAnswers, now time.Time) models.ResponseRecord {
	ts := now.UTC()
	if existing == nil || existing.SubmittedAt == nil {
		return models.ResponseRecord{
			GuestAnswers: incoming,
			SubmittedAt:  &ts,
		}
	}
	submittedAt := *existing.SubmittedAt
	previous := existing.GuestAnswers
	return models.ResponseRecord{
		GuestAnswers:     incoming,
		SubmittedAt:      &submittedAt,
		IsRevision:       true,
		RevisedAt:        &ts,
		PreviousResponse: &previous,
	}
}

// DiffAnswers lists the fields whose display value changed between prev and
// cur. Unset, empty and false all display as an empty string.
func DiffAnswers(prev, cur types.GuestAnswers) []models.FieldChange {
	changes := []models.FieldChange{}
	for _, f := range answerFields {
		before, after := f.display(prev), f.display(cur)
		if before == after {
			continue
		}
		changes = append(changes, models.FieldChange{
			Field:  f.name,
			Label:  f.label,
			Before: before,
			After:  after,
		})
	}
	return changes
}

// RevisionDiff returns the changes recorded by a revision, or nil for a
// first submission.
func RevisionDiff(rec *models.ResponseRecord) []models.FieldChange {
	if rec == nil || !rec.IsRevision || rec.PreviousResponse == nil {
		return nil
	}
	return DiffAnswers(*rec.PreviousResponse, rec.GuestAnswers)
}

// PlanSubmission writes the new response record and marks the form as
// responded. questioning is left as it is.
func PlanSubmission(row models.Row, rec models.ResponseRecord) (WritePlan, error) {
	notes, err := EncodeResponseRecord(rec)
	if err != nil {
		return nil, err
	}
	plan := WritePlan{}
	plan.setFlag(row, models.COL_FORM_RESPONDED, true)
	plan.set(row, models.COL_NOTES, notes)
	return plan, nil
}
