package common

import (
	"testing"
	"time"

	"guestdesk/src/models"
	"guestdesk/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseRecordMalformed(t *testing.T) {
	assert.Nil(t, ParseResponseRecord(""))
	assert.Nil(t, ParseResponseRecord("   "))
	assert.Nil(t, ParseResponseRecord("{not json"))
	assert.Nil(t, ParseResponseRecord("seeded by /functions/seed"))
	assert.Nil(t, ParseResponseRecord(`{"submittedAt": "yesterday"}`))
}

func TestParseResponseRecordFlattenedAnswers(t *testing.T) {
	raw := `{"submittedAt":"2025-02-01T10:00:00.000Z","language":"en","hasChildren":true,"childrenDetails":"boy, 6","dinnerRequest":"no"}`
	rec := ParseResponseRecord(raw)
	require.NotNil(t, rec)
	require.NotNil(t, rec.SubmittedAt)
	assert.Equal(t, time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC), rec.SubmittedAt.UTC())
	assert.Equal(t, types.LANG_EN, rec.Language)
	assert.True(t, rec.HasChildren)
	assert.Equal(t, "boy, 6", rec.ChildrenDetails)
	assert.False(t, rec.IsRevision)
}

func TestClassifyMalformedNotesIsFresh(t *testing.T) {
	now := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	rec := ClassifySubmission(ParseResponseRecord("{not json"), types.GuestAnswers{Language: types.LANG_JA}, now)
	require.NotNil(t, rec.SubmittedAt)
	assert.Equal(t, now, *rec.SubmittedAt)
	assert.False(t, rec.IsRevision)
	assert.Nil(t, rec.RevisedAt)
	assert.Nil(t, rec.PreviousResponse)
}

func TestClassifyWithoutSubmittedAtIsFresh(t *testing.T) {
	now := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	existing := &models.ResponseRecord{GuestAnswers: types.GuestAnswers{OtherNotes: "old"}}
	rec := ClassifySubmission(existing, types.GuestAnswers{OtherNotes: "new"}, now)
	assert.False(t, rec.IsRevision)
	assert.Equal(t, now, *rec.SubmittedAt)
}

func TestRevisionRoundTrip(t *testing.T) {
	first := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	third := second.Add(time.Hour)

	a := types.GuestAnswers{
		Language:      types.LANG_EN,
		HasChildren:   false,
		HasPhone:      true,
		PhoneNumber:   "090-1111-2222",
		DinnerRequest: "no",
		ArrivalTime:   "15:00",
		OtherNotes:    "",
	}
	b := a
	b.HasChildren = true
	b.ChildrenDetails = "girl, 4"
	b.DinnerRequest = "yes"
	b.DinnerConsent = true
	b.ArrivalTime = "16:00"

	recA := ClassifySubmission(nil, a, first)
	notes, err := EncodeResponseRecord(recA)
	require.Nil(t, err)

	recB := ClassifySubmission(ParseResponseRecord(notes), b, second)
	assert.True(t, recB.IsRevision)
	assert.Equal(t, first, recB.SubmittedAt.UTC())
	assert.Equal(t, second, *recB.RevisedAt)
	require.NotNil(t, recB.PreviousResponse)
	assert.Equal(t, a, *recB.PreviousResponse)
	assert.Equal(t, b, recB.GuestAnswers)

	diff := DiffAnswers(a, b)
	fields := []string{}
	for _, c := range diff {
		fields = append(fields, c.Field)
	}
	assert.Equal(t, []string{"hasChildren", "childrenDetails", "dinnerRequest", "dinnerConsent", "arrivalTime"}, fields)
	assert.Equal(t, models.FieldChange{Field: "hasChildren", Label: "Traveling with children", Before: "", After: "yes"}, diff[0])
	assert.Equal(t, "15:00", diff[4].Before)
	assert.Equal(t, "16:00", diff[4].After)
	assert.Equal(t, diff, RevisionDiff(&recB))

	// a third submission snapshots B only, never A
	notes, err = EncodeResponseRecord(recB)
	require.Nil(t, err)
	recC := ClassifySubmission(ParseResponseRecord(notes), a, third)
	assert.Equal(t, first, recC.SubmittedAt.UTC())
	assert.Equal(t, third, *recC.RevisedAt)
	assert.Equal(t, b, *recC.PreviousResponse)
}

func TestDiffAnswersTreatsUnsetAsEmpty(t *testing.T) {
	prev := types.GuestAnswers{}
	cur := types.GuestAnswers{HasChildren: false, OtherNotes: ""}
	assert.Empty(t, DiffAnswers(prev, cur))
}

func TestDiffAnswersLanguageLast(t *testing.T) {
	prev := types.GuestAnswers{Language: types.LANG_JA, OtherNotes: "none"}
	cur := types.GuestAnswers{Language: types.LANG_EN, NeedsPickup: true}
	diff := DiffAnswers(prev, cur)
	require.Len(t, diff, 3)
	assert.Equal(t, "needsPickup", diff[0].Field)
	assert.Equal(t, "otherNotes", diff[1].Field)
	assert.Equal(t, "language", diff[2].Field)
}

func TestRevisionDiffFirstSubmission(t *testing.T) {
	rec := ClassifySubmission(nil, types.GuestAnswers{}, time.Now())
	assert.Nil(t, RevisionDiff(&rec))
	assert.Nil(t, RevisionDiff(nil))
}

func TestPlanSubmission(t *testing.T) {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	rec := ClassifySubmission(nil, types.GuestAnswers{Language: types.LANG_JA}, now)

	row := models.Row{
		models.COL_BOOKING_ID:     "BK-1",
		models.COL_FORM_RESPONDED: "FALSE",
		models.COL_QUESTIONING:    "TRUE",
		models.COL_NOTES:          "",
	}
	plan, err := PlanSubmission(row, rec)
	require.Nil(t, err)
	assert.Equal(t, "TRUE", plan[models.COL_FORM_RESPONDED])
	assert.Contains(t, plan[models.COL_NOTES], `"submittedAt":"2025-02-01T10:00:00Z"`)
	assert.NotContains(t, plan, models.COL_QUESTIONING)

	row[models.COL_FORM_RESPONDED] = "true"
	plan, err = PlanSubmission(row, rec)
	require.Nil(t, err)
	assert.NotContains(t, plan, models.COL_FORM_RESPONDED)
}

func TestReservationConfirmedKeptAndDiffedLast(t *testing.T) {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	prev := types.GuestAnswers{Language: types.LANG_JA}
	cur := types.GuestAnswers{Language: types.LANG_EN, ReservationConfirmed: true}

	changes := DiffAnswers(prev, cur)
	require.Len(t, changes, 2)
	assert.Equal(t, "language", changes[0].Field)
	assert.Equal(t, models.FieldChange{
		Field:  "reservationConfirmed",
		Label:  "Reservation details confirmed",
		Before: "",
		After:  "yes",
	}, changes[1])

	raw, err := EncodeResponseRecord(ClassifySubmission(nil, cur, now))
	require.Nil(t, err)
	assert.Contains(t, raw, `"reservationConfirmed":true`)
	rec := ParseResponseRecord(raw)
	require.NotNil(t, rec)
	assert.True(t, rec.ReservationConfirmed)
}
