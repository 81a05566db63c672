package repository

import (
	"context"
	"fmt"

	"couplepath/services/progress-service/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetProgram(ctx context.Context, programID string) (*domain.Program, error) {
	var p domain.Program
	if err := r.db.WithContext(ctx).First(&p, "id = ?", programID).Error; err != nil {
		return nil, notFound(err, "program %q", programID)
	}
	return &p, nil
}

func (r *CatalogRepository) ListUnits(ctx context.Context, programID string) ([]domain.Unit, error) {
	var units []domain.Unit
	err := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("sequence_number asc").
		Find(&units).Error
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		// Distinguish an empty program from an unknown one.
		if _, err := r.GetProgram(ctx, programID); err != nil {
			return nil, err
		}
	}
	return units, nil
}

func (r *CatalogRepository) GetUnit(ctx context.Context, programID string, sequenceNumber int) (*domain.Unit, error) {
	var u domain.Unit
	err := r.db.WithContext(ctx).
		Where("program_id = ? AND sequence_number = ?", programID, sequenceNumber).
		First(&u).Error
	if err != nil {
		return nil, notFound(err, "unit %d of program %q", sequenceNumber, programID)
	}
	return &u, nil
}

func (r *CatalogRepository) ListGroups(ctx context.Context, programID string) ([]domain.ProgramGroup, error) {
	var groups []domain.ProgramGroup
	err := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("position asc").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		if _, err := r.GetProgram(ctx, programID); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// SeedProgram replaces the program's groups and units with the given ones.
// Progress rows are keyed by sequence number and survive a reseed.
func (r *CatalogRepository) SeedProgram(ctx context.Context, p domain.Program, groups []domain.ProgramGroup, units []domain.Unit) error {
	if err := domain.ValidateUnits(units); err != nil {
		return fmt.Errorf("program %q: %w", p.ID, err)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "kind", "updated_at"}),
		}).Create(&p).Error
		if err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", p.ID).Delete(&domain.ProgramGroup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", p.ID).Delete(&domain.Unit{}).Error; err != nil {
			return err
		}
		if len(groups) > 0 {
			if err := tx.CreateInBatches(groups, 100).Error; err != nil {
				return err
			}
		}
		return tx.CreateInBatches(units, 100).Error
	})
}
