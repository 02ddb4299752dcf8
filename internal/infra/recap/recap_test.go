package recap

import (
	"context"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anime-catalog-service/internal/domain"
)

func TestFixtureProviderLatest(t *testing.T) {
	p, err := NewFixtureProvider()
	require.NoError(t, err)

	all, err := p.Latest(context.Background(), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	two, err := p.Latest(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
	assert.Equal(t, all[0].ID, two[0].ID)

	for _, v := range all {
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.Title)
		assert.NotEmpty(t, v.URL)
	}
}

func TestAPIProviderLatest(t *testing.T) {
	p := NewAPIProvider(APIConfig{
		BaseURL: "https://video.example.test/v3",
		APIKey:  "vk",
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	httpmock.ActivateNonDefault(p.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	httpmock.RegisterResponder("GET", "https://video.example.test/v3/search",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{
			"items": []map[string]any{
				{
					"id": map[string]any{"videoId": "abc123"},
					"snippet": map[string]any{
						"title":        "Solo Leveling Recap",
						"channelTitle": "AniRecap",
						"publishedAt":  "2024-04-01T00:00:00Z",
					},
				},
				{
					"id":      map[string]any{},
					"snippet": map[string]any{"title": "not a video"},
				},
			},
		}))

	videos, err := p.Latest(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "abc123", videos[0].ID)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", videos[0].URL)
}

func TestAPIProviderRateLimited(t *testing.T) {
	p := NewAPIProvider(APIConfig{
		BaseURL: "https://video.example.test/v3",
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	httpmock.ActivateNonDefault(p.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	httpmock.RegisterResponder("GET", "https://video.example.test/v3/search",
		httpmock.NewStringResponder(429, `{}`))

	_, err := p.Latest(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}
