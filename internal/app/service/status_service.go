package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"anime-catalog-service/internal/domain"
)

// StatusService records client health pings.
type StatusService struct {
	repo   domain.StatusRepository
	logger *zap.Logger
}

// NewStatusService creates a new StatusService.
func NewStatusService(repo domain.StatusRepository, logger *zap.Logger) *StatusService {
	return &StatusService{
		repo:   repo,
		logger: logger,
	}
}

// Create records a status check for the named client.
func (s *StatusService) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, &domain.ValidationError{Msg: "client_name is required"}
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, check); err != nil {
		s.logger.Error("status check create failed",
			zap.String("client_name", clientName), zap.Error(err))
		return nil, err
	}

	return check, nil
}

// List returns recorded status checks, newest first.
func (s *StatusService) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	return s.repo.List(ctx, limit)
}
