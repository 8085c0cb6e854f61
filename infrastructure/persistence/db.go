package persistence

import (
	"fmt"

	"github.com/adgenhq/adgen/internal/database"
)

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(
		&BrandModel{},
		&ProductModel{},
		&CampaignModel{},
		&CampaignProductModel{},
		&AssetModel{},
		&WorkflowModel{},
		&TaskModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
