package strategy

import (
	"fmt"

	"github.com/campaign-studio/backend/internal/models"
)

// linkStrategy: traffic campaign sending clicks to a website.
type linkStrategy struct{}

func (s *linkStrategy) Type() models.CampaignType { return models.CampaignTypeLink }

func (s *linkStrategy) Objective() models.Objective { return models.ObjectiveTraffic }

func (s *linkStrategy) DestinationType() models.DestinationType {
	return models.DestinationWebsite
}

func (s *linkStrategy) ResolveGoal(models.OptimizationGoal) (models.OptimizationGoal, error) {
	return models.GoalLinkClicks, nil
}

func (s *linkStrategy) Endpoints() Endpoints { return endpointsFor(s.Type()) }

func (s *linkStrategy) BuildCampaignPayload(form CampaignForm) (map[string]any, error) {
	return buildCampaignPayload(form, s.Objective())
}

func (s *linkStrategy) BuildAdSetPayload(form AdSetForm, campaignID string, targeting *models.TargetingSpec) (map[string]any, error) {
	return buildAdSetPayload(form, campaignID, models.GoalLinkClicks, s.DestinationType(), models.BillingImpressions, targeting)
}

func (s *linkStrategy) BuildCreativePayload(form CreativeForm) (map[string]any, error) {
	if form.Link == "" {
		return nil, fmt.Errorf("link is required")
	}
	cta := form.CTA
	if cta == "" {
		cta = models.CTALearnMore
	}
	return buildLinkCreativePayload(form, cta, map[string]any{"link": form.Link})
}

func (s *linkStrategy) BuildAdPayload(form AdForm, adSetID, creativeID string) (map[string]any, error) {
	return buildAdPayload(form, adSetID, creativeID)
}
