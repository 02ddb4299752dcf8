package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anime-catalog-service/internal/domain"
)

type fakeStatusRepo struct {
	checks []*domain.StatusCheck
	err    error
}

func (f *fakeStatusRepo) Create(_ context.Context, check *domain.StatusCheck) error {
	if f.err != nil {
		return f.err
	}
	f.checks = append([]*domain.StatusCheck{check}, f.checks...)
	return nil
}

func (f *fakeStatusRepo) List(_ context.Context, limit int) ([]*domain.StatusCheck, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && limit < len(f.checks) {
		return f.checks[:limit], nil
	}
	return f.checks, nil
}

func TestStatusCreate(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := NewStatusService(repo, zap.NewNop())

	check, err := svc.Create(context.Background(), "  frontend  ")
	require.NoError(t, err)

	assert.Equal(t, "frontend", check.ClientName)
	_, parseErr := uuid.Parse(check.ID)
	assert.NoError(t, parseErr)
	assert.WithinDuration(t, time.Now().UTC(), check.Timestamp, 5*time.Second)
	assert.Equal(t, time.UTC, check.Timestamp.Location())

	require.Len(t, repo.checks, 1)
}

func TestStatusCreateEmptyName(t *testing.T) {
	svc := NewStatusService(&fakeStatusRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), "   ")

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestStatusList(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := NewStatusService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), "a")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "b")
	require.NoError(t, err)

	checks, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "b", checks[0].ClientName)
}
