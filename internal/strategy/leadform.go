package strategy

import (
	"fmt"

	"github.com/campaign-studio/backend/internal/models"
	"github.com/campaign-studio/backend/internal/rules"
)

// leadFormStrategy: leads campaign collecting contacts through an instant
// form. The only variant with a selectable optimization goal and the full
// generic ad set form (bid strategy, promoted object, pixel).
type leadFormStrategy struct{}

func (s *leadFormStrategy) Type() models.CampaignType { return models.CampaignTypeLeadForm }

func (s *leadFormStrategy) Objective() models.Objective { return models.ObjectiveLeads }

func (s *leadFormStrategy) DestinationType() models.DestinationType {
	return models.DestinationLeadForm
}

// ResolveGoal validates the requested goal against the leads-allowed set.
// An empty request falls back to the first allowed goal; an out-of-set
// request is rejected.
func (s *leadFormStrategy) ResolveGoal(requested models.OptimizationGoal) (models.OptimizationGoal, error) {
	allowed := rules.AllowedGoals(s.Objective())
	if requested == "" {
		return allowed[0], nil
	}
	if !rules.ContainsGoal(allowed, requested) {
		return "", fmt.Errorf("optimization goal %s is not available for objective %s", requested, s.Objective())
	}
	return requested, nil
}

func (s *leadFormStrategy) Endpoints() Endpoints { return endpointsFor(s.Type()) }

func (s *leadFormStrategy) BuildCampaignPayload(form CampaignForm) (map[string]any, error) {
	return buildCampaignPayload(form, s.Objective())
}

func (s *leadFormStrategy) BuildAdSetPayload(form AdSetForm, campaignID string, targeting *models.TargetingSpec) (map[string]any, error) {
	goal, err := s.ResolveGoal(form.OptimizationGoal)
	if err != nil {
		return nil, err
	}
	if form.PromotedPageID == "" {
		return nil, fmt.Errorf("promoted_page_id is required for lead form ad sets")
	}
	if goal == models.GoalQualityLead && form.PixelID == "" {
		return nil, fmt.Errorf("pixel_id is required when optimizing for quality leads")
	}

	payload, err := buildAdSetPayload(form, campaignID, goal, s.DestinationType(), models.BillingImpressions, targeting)
	if err != nil {
		return nil, err
	}

	promoted := map[string]any{"page_id": form.PromotedPageID}
	if form.PixelID != "" {
		promoted["pixel_id"] = form.PixelID
	}
	payload["promoted_object"] = promoted
	return payload, nil
}

func (s *leadFormStrategy) BuildCreativePayload(form CreativeForm) (map[string]any, error) {
	if form.LeadFormID == "" {
		return nil, fmt.Errorf("lead_form_id is required")
	}
	cta := form.CTA
	if cta == "" {
		cta = models.CTASignUp
	}
	return buildLinkCreativePayload(form, cta, map[string]any{"lead_gen_form_id": form.LeadFormID})
}

func (s *leadFormStrategy) BuildAdPayload(form AdForm, adSetID, creativeID string) (map[string]any, error) {
	return buildAdPayload(form, adSetID, creativeID)
}
