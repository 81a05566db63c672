package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompletionRecord is keyed by (enrollment, unit) so completing twice upserts.
// CompletedAt keeps the first completion, UpdatedAt the latest touch.
type CompletionRecord struct {
	EnrollmentID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SequenceNumber     int       `gorm:"primaryKey;autoIncrement:false"`
	SubjectID          uuid.UUID `gorm:"type:uuid;not null;index:idx_completion_subject_time,priority:1"`
	ProgramID          string    `gorm:"size:64;not null"`
	CompletedAt        time.Time `gorm:"not null;index:idx_completion_subject_time,priority:2"`
	ActionAcknowledged bool      `gorm:"not null;default:false"`
	Note               string
	UpdatedAt          time.Time
}

// CompletionFlags are the optional sub-flags of a completion. Nil keeps the stored value.
type CompletionFlags struct {
	ActionAcknowledged *bool
	Note               *string
}

// Apply merges the flags into rec.
func (f CompletionFlags) Apply(rec *CompletionRecord) {
	if f.ActionAcknowledged != nil {
		rec.ActionAcknowledged = *f.ActionAcknowledged
	}
	if f.Note != nil {
		rec.Note = *f.Note
	}
}
