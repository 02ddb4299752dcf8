// Package recap supplies anime recap/review videos from a video platform,
// either live or from an embedded fixture for offline development.
package recap

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"anime-catalog-service/internal/domain"
)

//go:embed data.json
var fixtureData []byte

// FixtureProvider serves a static embedded list of recap videos. Used when
// no platform API key is configured and in tests.
type FixtureProvider struct {
	videos []domain.RecapVideo
}

// NewFixtureProvider decodes the embedded fixture once at construction.
func NewFixtureProvider() (*FixtureProvider, error) {
	var videos []domain.RecapVideo
	if err := json.Unmarshal(fixtureData, &videos); err != nil {
		return nil, fmt.Errorf("decoding recap fixture: %w", err)
	}

	return &FixtureProvider{videos: videos}, nil
}

// Latest returns up to limit fixture videos in embedded order.
func (p *FixtureProvider) Latest(_ context.Context, limit int) ([]domain.RecapVideo, error) {
	if limit <= 0 || limit > len(p.videos) {
		limit = len(p.videos)
	}

	out := make([]domain.RecapVideo, limit)
	copy(out, p.videos[:limit])

	return out, nil
}
