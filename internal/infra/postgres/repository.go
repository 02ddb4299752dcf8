package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"anime-catalog-service/internal/domain"
)

// listCap bounds List so the endpoint cannot dump an unbounded table.
const listCap = 1000

// Repository implements domain.StatusRepository using PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a status check record.
func (r *Repository) Create(ctx context.Context, check *domain.StatusCheck) error {
	model := FromDomain(check)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating status check: %w", err)
	}

	return nil
}

// List returns status checks newest first. limit is capped at listCap rows;
// zero or negative means the cap itself.
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	if limit <= 0 || limit > listCap {
		limit = listCap
	}

	var models []StatusCheckModel
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing status checks: %w", err)
	}

	checks := make([]*domain.StatusCheck, len(models))
	for i := range models {
		checks[i] = models[i].ToDomain()
	}

	return checks, nil
}
