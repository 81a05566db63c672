package domain

import (
	"time"

	"github.com/google/uuid"
)

// Couple links two members. Its ID doubles as the pair id of the daily
// question and as the subject of couple-scoped programs.
type Couple struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerAID uuid.UUID `gorm:"type:uuid;not null"`
	PartnerBID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
}

// CoupleMember maps a member to their couple. The primary key on MemberID is
// what keeps a member in at most one couple.
type CoupleMember struct {
	MemberID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CoupleID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (c *Couple) HasMember(id uuid.UUID) bool {
	return id == c.PartnerAID || id == c.PartnerBID
}

// PartnerOf returns the other member, or false if id is not in the couple.
func (c *Couple) PartnerOf(id uuid.UUID) (uuid.UUID, bool) {
	switch id {
	case c.PartnerAID:
		return c.PartnerBID, true
	case c.PartnerBID:
		return c.PartnerAID, true
	default:
		return uuid.Nil, false
	}
}
