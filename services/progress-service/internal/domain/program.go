package domain

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type ProgramKind string

const (
	// ProgramSequential programs are walked one unit at a time through an Enrollment.
	ProgramSequential ProgramKind = "sequential"
	// ProgramRotating programs are only addressed by date through SelectUnitForDate.
	ProgramRotating ProgramKind = "rotating"
)

type GroupKind string

const (
	GroupPhase GroupKind = "phase"
	GroupWeek  GroupKind = "week"
	GroupTrack GroupKind = "track"
)

type Program struct {
	ID        string      `gorm:"primaryKey;size:64"`
	Title     string      `gorm:"not null"`
	Kind      ProgramKind `gorm:"size:16;not null;default:'sequential'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProgramGroup is a phase or a week. Weeks point at their phase through ParentID.
type ProgramGroup struct {
	ProgramID string    `gorm:"primaryKey;size:64"`
	ID        string    `gorm:"primaryKey;size:64"`
	ParentID  string    `gorm:"size:64;index"`
	Kind      GroupKind `gorm:"size:16"`
	Title     string
	Position  int
}

// Unit is one day of content. Payload is authored JSON the engine never reads.
type Unit struct {
	ProgramID      string         `gorm:"primaryKey;size:64"`
	SequenceNumber int            `gorm:"primaryKey;autoIncrement:false"`
	GroupID        string         `gorm:"size:64;index"`
	Title          string
	Payload        datatypes.JSON
}

// ValidateUnits checks that units are ordered 1..n with no gaps.
func ValidateUnits(units []Unit) error {
	for i, u := range units {
		if u.SequenceNumber != i+1 {
			return fmt.Errorf("%w: unit at index %d has sequence %d, want %d", ErrInvalidArgument, i, u.SequenceNumber, i+1)
		}
	}
	return nil
}

// GroupAndDescendants returns groupID plus every group nested below it.
func GroupAndDescendants(groups []ProgramGroup, groupID string) map[string]bool {
	out := map[string]bool{groupID: true}
	for changed := true; changed; {
		changed = false
		for _, g := range groups {
			if out[g.ParentID] && !out[g.ID] {
				out[g.ID] = true
				changed = true
			}
		}
	}
	return out
}
