package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MilestoneRPC calls the check_milestones database function. Its rules live
// in the database and are not mirrored here.
type MilestoneRPC struct {
	db *gorm.DB
}

func NewMilestoneRPC(db *gorm.DB) *MilestoneRPC {
	return &MilestoneRPC{db: db}
}

func (m *MilestoneRPC) CheckMilestones(ctx context.Context, subjectID uuid.UUID) ([]string, error) {
	var ids []string
	err := m.db.WithContext(ctx).
		Raw("SELECT milestone_id FROM check_milestones(?)", subjectID).
		Scan(&ids).Error
	return ids, err
}
