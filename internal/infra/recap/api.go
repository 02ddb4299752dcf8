package recap

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"anime-catalog-service/internal/domain"
)

const defaultQuery = "anime recap"

// APIConfig holds configuration for the live video-platform provider.
type APIConfig struct {
	BaseURL string
	APIKey  string
	Query   string
	Timeout time.Duration
}

// APIProvider fetches recent recap videos from the platform search endpoint.
type APIProvider struct {
	client *resty.Client
	apiKey string
	query  string
	logger *zap.Logger
}

// NewAPIProvider creates a live provider against cfg.BaseURL.
func NewAPIProvider(cfg APIConfig, logger *zap.Logger) *APIProvider {
	query := cfg.Query
	if query == "" {
		query = defaultQuery
	}

	return &APIProvider{
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout),
		apiKey: cfg.APIKey,
		query:  query,
		logger: logger,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Latest searches the platform for recent recap videos, newest first.
func (p *APIProvider) Latest(ctx context.Context, limit int) ([]domain.RecapVideo, error) {
	if limit <= 0 {
		limit = 10
	}

	var payload searchResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":        p.apiKey,
			"q":          p.query,
			"part":       "snippet",
			"type":       "video",
			"order":      "date",
			"maxResults": strconv.Itoa(limit),
		}).
		SetResult(&payload).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("recap search: %w", err)
	}
	if resp.StatusCode() == 429 {
		return nil, fmt.Errorf("recap search: %w", domain.ErrRateLimited)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("recap search: %w", &domain.UpstreamError{Status: resp.StatusCode()})
	}

	videos := make([]domain.RecapVideo, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, domain.RecapVideo{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Channel:      item.Snippet.ChannelTitle,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
			PublishedAt:  item.Snippet.PublishedAt,
			URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}

	p.logger.Debug("recap videos fetched", zap.Int("count", len(videos)))

	return videos, nil
}
