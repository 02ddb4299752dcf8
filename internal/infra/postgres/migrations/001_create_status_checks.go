package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createStatusChecksTable creates the status_checks table with its indexes.
func createStatusChecksTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_status_checks",
		Migrate: func(tx *gorm.DB) error {
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS status_checks (
					id UUID PRIMARY KEY,
					client_name VARCHAR(255) NOT NULL,
					timestamp TIMESTAMP NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);
			`).Error
			if err != nil {
				return err
			}

			return tx.Exec(
				"CREATE INDEX IF NOT EXISTS idx_status_checks_timestamp ON status_checks(timestamp DESC);",
			).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE IF EXISTS status_checks;").Error
		},
	}
}
