package domain

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentAbandoned EnrollmentStatus = "abandoned"
)

// Enrollment is one run of a subject (user or couple) through a program.
// At most one active row per (subject, program).
type Enrollment struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SubjectID       uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:ux_enrollment_active,where:status = 'active'"`
	ProgramID       string           `gorm:"size:64;not null;uniqueIndex:ux_enrollment_active,where:status = 'active'"`
	StartDate       time.Time        `gorm:"type:date"`
	CurrentPosition int              `gorm:"not null;default:1"`
	Status          EnrollmentStatus `gorm:"size:16;not null;default:'active'"`
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (e *Enrollment) IsActive() bool {
	return e.Status == EnrollmentActive
}

// NextPosition is where the enrollment moves after its current unit is done.
func NextPosition(current, totalUnits int) int {
	if current+1 > totalUnits {
		return totalUnits
	}
	return current + 1
}
