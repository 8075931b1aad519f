package strategy

import (
	"fmt"

	"github.com/campaign-studio/backend/internal/models"
)

// whatsappStrategy: engagement campaign driving WhatsApp conversations.
// Objective, destination and optimization goal are all pinned.
type whatsappStrategy struct{}

func (s *whatsappStrategy) Type() models.CampaignType { return models.CampaignTypeWhatsApp }

func (s *whatsappStrategy) Objective() models.Objective { return models.ObjectiveEngagement }

func (s *whatsappStrategy) DestinationType() models.DestinationType {
	return models.DestinationWhatsApp
}

func (s *whatsappStrategy) ResolveGoal(models.OptimizationGoal) (models.OptimizationGoal, error) {
	return models.GoalConversations, nil
}

func (s *whatsappStrategy) Endpoints() Endpoints { return endpointsFor(s.Type()) }

func (s *whatsappStrategy) BuildCampaignPayload(form CampaignForm) (map[string]any, error) {
	return buildCampaignPayload(form, s.Objective())
}

func (s *whatsappStrategy) BuildAdSetPayload(form AdSetForm, campaignID string, targeting *models.TargetingSpec) (map[string]any, error) {
	return buildAdSetPayload(form, campaignID, models.GoalConversations, s.DestinationType(), models.BillingImpressions, targeting)
}

func (s *whatsappStrategy) BuildCreativePayload(form CreativeForm) (map[string]any, error) {
	if form.WhatsAppNumber == "" {
		return nil, fmt.Errorf("whatsapp_number is required")
	}
	cta := form.CTA
	if cta == "" {
		cta = models.CTAWhatsAppMessage
	}
	return buildLinkCreativePayload(form, cta, map[string]any{
		"app_destination": "WHATSAPP",
		"whatsapp_number": form.WhatsAppNumber,
	})
}

func (s *whatsappStrategy) BuildAdPayload(form AdForm, adSetID, creativeID string) (map[string]any, error) {
	return buildAdPayload(form, adSetID, creativeID)
}
