package repository

import (
	"couplepath/services/progress-service/internal/domain"

	"gorm.io/gorm"
)

// Models lists every table owned by the progress service.
func Models() []any {
	return []any{
		&domain.Program{},
		&domain.ProgramGroup{},
		&domain.Unit{},
		&domain.Enrollment{},
		&domain.CompletionRecord{},
		&domain.PairedResponse{},
		&domain.Couple{},
		&domain.CoupleMember{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
