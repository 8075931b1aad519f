package strategy

import (
	"fmt"

	"github.com/campaign-studio/backend/internal/models"
)

// callStrategy: traffic campaign whose ads dial a phone number. The only
// variant with a dedicated creative stage: the platform needs the page,
// picture, business page URL and phone number before an ad can reference
// the creative.
type callStrategy struct{}

func (s *callStrategy) Type() models.CampaignType { return models.CampaignTypeCall }

func (s *callStrategy) Objective() models.Objective { return models.ObjectiveTraffic }

func (s *callStrategy) DestinationType() models.DestinationType {
	return models.DestinationPhoneCall
}

func (s *callStrategy) ResolveGoal(models.OptimizationGoal) (models.OptimizationGoal, error) {
	return models.GoalQualityCall, nil
}

func (s *callStrategy) Endpoints() Endpoints { return endpointsFor(s.Type()) }

func (s *callStrategy) BuildCampaignPayload(form CampaignForm) (map[string]any, error) {
	return buildCampaignPayload(form, s.Objective())
}

func (s *callStrategy) BuildAdSetPayload(form AdSetForm, campaignID string, targeting *models.TargetingSpec) (map[string]any, error) {
	return buildAdSetPayload(form, campaignID, models.GoalQualityCall, s.DestinationType(), models.BillingImpressions, targeting)
}

func (s *callStrategy) BuildCreativePayload(form CreativeForm) (map[string]any, error) {
	if form.Name == "" {
		return nil, fmt.Errorf("creative name is required")
	}
	if form.PageID == "" {
		return nil, fmt.Errorf("page_id is required")
	}
	if form.PictureURL == "" {
		return nil, fmt.Errorf("picture_url is required")
	}
	if form.BusinessPageURL == "" {
		return nil, fmt.Errorf("business_page_url is required")
	}
	if form.PhoneNumber == "" {
		return nil, fmt.Errorf("phone_number is required")
	}
	return map[string]any{
		"name":              form.Name,
		"page_id":           form.PageID,
		"picture_url":       form.PictureURL,
		"business_page_url": form.BusinessPageURL,
		"phone_number":      form.PhoneNumber,
		"call_to_action":    map[string]any{"type": models.CTACallNow},
	}, nil
}

func (s *callStrategy) BuildAdPayload(form AdForm, adSetID, creativeID string) (map[string]any, error) {
	return buildAdPayload(form, adSetID, creativeID)
}
