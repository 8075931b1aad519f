package services

import (
	"context"

	"github.com/campaign-studio/backend/internal/config"
	"github.com/campaign-studio/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CampaignWithInsights pairs a listed campaign with its analytics.
// Insights stays nil when the per-item fetch failed: one bad item must
// not abort the batch.
type CampaignWithInsights struct {
	CampaignSummary
	Insights *CampaignInsights `json:"insights,omitempty"`
}

// InsightsFetcher is the slice of the ads client the listing view needs.
type InsightsFetcher interface {
	ListCampaigns(ctx context.Context, creds models.PlatformCredentials, limit int) ([]CampaignSummary, error)
	FetchInsights(ctx context.Context, campaignID string, creds models.PlatformCredentials) (*CampaignInsights, error)
}

// InsightsService backs the post-creation listing view. The campaign list
// itself is one call; the per-item insight fetches fan out in parallel,
// bounded by the configured concurrency.
type InsightsService struct {
	client InsightsFetcher
	cfg    *config.Config
	log    *zap.Logger
}

func NewInsightsService(client InsightsFetcher, cfg *config.Config, log *zap.Logger) *InsightsService {
	return &InsightsService{client: client, cfg: cfg, log: log}
}

// List fetches up to limit campaigns and enriches each with insights.
func (s *InsightsService) List(ctx context.Context, creds models.PlatformCredentials, limit int) ([]CampaignWithInsights, error) {
	if limit <= 0 || limit > 25 {
		limit = 25
	}

	campaigns, err := s.client.ListCampaigns(ctx, creds, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CampaignWithInsights, len(campaigns))
	for i, c := range campaigns {
		result[i] = CampaignWithInsights{CampaignSummary: c}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.InsightsConcurrency)

	for i := range result {
		g.Go(func() error {
			insights, err := s.client.FetchInsights(gctx, result[i].ID, creds)
			if err != nil {
				// "no insight data" for this one item only
				s.log.Warn("insights fetch failed",
					zap.String("campaign_id", result[i].ID),
					zap.Error(err),
				)
				return nil
			}
			result[i].Insights = insights
			return nil
		})
	}

	_ = g.Wait()
	return result, nil
}
