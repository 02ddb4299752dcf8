package postgres

import (
	"time"

	"anime-catalog-service/internal/domain"
)

// StatusCheckModel is the GORM model for the status_checks table.
type StatusCheckModel struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	ClientName string    `gorm:"type:varchar(255);not null"`
	Timestamp  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for StatusCheckModel.
func (StatusCheckModel) TableName() string {
	return "status_checks"
}

// ToDomain converts StatusCheckModel to domain.StatusCheck.
func (m *StatusCheckModel) ToDomain() *domain.StatusCheck {
	return &domain.StatusCheck{
		ID:         m.ID,
		ClientName: m.ClientName,
		Timestamp:  m.Timestamp,
	}
}

// FromDomain creates a StatusCheckModel from domain.StatusCheck.
func FromDomain(s *domain.StatusCheck) *StatusCheckModel {
	return &StatusCheckModel{
		ID:         s.ID,
		ClientName: s.ClientName,
		Timestamp:  s.Timestamp,
	}
}
