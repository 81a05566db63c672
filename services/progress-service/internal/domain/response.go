package domain

import (
	"time"

	"github.com/google/uuid"
)

// PairedResponse is one partner's answer to the question of a given day.
// The unique index makes the first write win.
type PairedResponse struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PairID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_paired_response,priority:1"`
	QuestionID   int       `gorm:"not null;uniqueIndex:ux_paired_response,priority:2"`
	Day          string    `gorm:"size:10;not null;uniqueIndex:ux_paired_response,priority:3"`
	ResponderID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_paired_response,priority:4"`
	ResponseText string    `gorm:"not null"`
	CreatedAt    time.Time
}

type RevealState string

const (
	RevealUnanswered RevealState = "unanswered"
	RevealWaiting    RevealState = "waiting"
	RevealRevealed   RevealState = "revealed"
)

// ResolveReveal derives the state seen by responderID from the responses of one
// (pair, question, day). It also returns the caller's and partner's answers.
func ResolveReveal(responderID, partnerID uuid.UUID, responses []PairedResponse) (RevealState, *PairedResponse, *PairedResponse) {
	var mine, theirs *PairedResponse
	for i := range responses {
		switch responses[i].ResponderID {
		case responderID:
			mine = &responses[i]
		case partnerID:
			theirs = &responses[i]
		}
	}
	switch {
	case mine == nil:
		return RevealUnanswered, nil, theirs
	case theirs == nil:
		return RevealWaiting, mine, nil
	default:
		return RevealRevealed, mine, theirs
	}
}
