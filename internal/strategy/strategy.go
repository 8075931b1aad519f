package strategy

import (
	"fmt"

	"github.com/campaign-studio/backend/internal/models"
)

// Endpoints are the platform paths one campaign type posts to, one per
// creation stage.
type Endpoints struct {
	Campaign string
	AdSet    string
	Creative string
	Ad       string
}

// CampaignForm is the input for the campaign stage.
type CampaignForm struct {
	Name string `json:"name"`
}

// AdSetForm is the input for the ad set stage. Goal and bid fields are
// ignored by variants that force them.
type AdSetForm struct {
	Name             string                  `json:"name"`
	DailyBudget      int64                   `json:"daily_budget"`
	OptimizationGoal models.OptimizationGoal `json:"optimization_goal,omitempty"`
	Bid              models.BidConstraints   `json:"bid,omitempty"`
	PromotedPageID   string                  `json:"promoted_page_id,omitempty"`
	PixelID          string                  `json:"pixel_id,omitempty"`
}

// CreativeForm is the input for the creative stage. Which fields are
// required depends on the variant.
type CreativeForm struct {
	Name            string         `json:"name"`
	PageID          string         `json:"page_id"`
	Message         string         `json:"message,omitempty"`
	Link            string         `json:"link,omitempty"`
	PictureURL      string         `json:"picture_url,omitempty"`
	BusinessPageURL string         `json:"business_page_url,omitempty"`
	PhoneNumber     string         `json:"phone_number,omitempty"`
	WhatsAppNumber  string         `json:"whatsapp_number,omitempty"`
	LeadFormID      string         `json:"lead_form_id,omitempty"`
	CTA             models.CTAType `json:"cta,omitempty"`
}

// AdForm is the input for the final ad stage.
type AdForm struct {
	Name string `json:"name"`
}

// Strategy is the capability set one campaign type implements: which
// objective and destination it pins, which endpoints each stage talks to,
// and how each stage's payload is assembled.
type Strategy interface {
	Type() models.CampaignType
	Objective() models.Objective
	DestinationType() models.DestinationType

	// ResolveGoal maps the operator's requested optimization goal to the
	// one that will be submitted. Variants with a forced goal ignore the
	// request; the lead-form variant validates it instead.
	ResolveGoal(requested models.OptimizationGoal) (models.OptimizationGoal, error)

	Endpoints() Endpoints

	BuildCampaignPayload(form CampaignForm) (map[string]any, error)
	BuildAdSetPayload(form AdSetForm, campaignID string, targeting *models.TargetingSpec) (map[string]any, error)
	BuildCreativePayload(form CreativeForm) (map[string]any, error)
	BuildAdPayload(form AdForm, adSetID, creativeID string) (map[string]any, error)
}

// ForType returns the strategy for a campaign type.
func ForType(t models.CampaignType) (Strategy, error) {
	switch t {
	case models.CampaignTypeWhatsApp:
		return &whatsappStrategy{}, nil
	case models.CampaignTypeCall:
		return &callStrategy{}, nil
	case models.CampaignTypeLink:
		return &linkStrategy{}, nil
	case models.CampaignTypeLeadForm:
		return &leadFormStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown campaign type %q", t)
}

func endpointsFor(t models.CampaignType) Endpoints {
	return Endpoints{
		Campaign: fmt.Sprintf("/%s/campaigns", t),
		AdSet:    fmt.Sprintf("/%s/adsets", t),
		Creative: fmt.Sprintf("/%s/adcreatives", t),
		Ad:       fmt.Sprintf("/%s/ads", t),
	}
}

// buildCampaignPayload is shared by every variant: the campaign stage only
// differs in objective.
func buildCampaignPayload(form CampaignForm, objective models.Objective) (map[string]any, error) {
	if form.Name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	return map[string]any{
		"name":                  form.Name,
		"objective":             objective,
		"special_ad_categories": []string{"NONE"},
		"status":                models.StatusPaused,
	}, nil
}

// buildAdSetPayload embeds the already-validated targeting and always
// submits paused.
func buildAdSetPayload(form AdSetForm, campaignID string, goal models.OptimizationGoal, destination models.DestinationType, billing models.BillingEvent, targeting *models.TargetingSpec) (map[string]any, error) {
	if form.Name == "" {
		return nil, fmt.Errorf("ad set name is required")
	}
	if campaignID == "" {
		return nil, fmt.Errorf("campaign_id is required")
	}
	if targeting == nil {
		return nil, fmt.Errorf("targeting is required")
	}
	if err := targeting.Validate(); err != nil {
		return nil, err
	}
	if err := form.Bid.Validate(goal); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"name":              form.Name,
		"campaign_id":       campaignID,
		"daily_budget":      form.DailyBudget,
		"destination_type":  destination,
		"optimization_goal": goal,
		"billing_event":     billing,
		"targeting":         targeting.Payload(),
		"status":            models.StatusPaused,
	}
	if form.Bid.Strategy != "" {
		payload["bid_strategy"] = form.Bid.Strategy
		if form.Bid.BidAmount != nil {
			payload["bid_amount"] = *form.Bid.BidAmount
		}
		if form.Bid.ROASFloor != nil {
			payload["bid_constraints"] = map[string]any{"roas_average_floor": *form.Bid.ROASFloor}
		}
	}
	return payload, nil
}

// buildLinkCreativePayload is the generic creative builder: a page story
// with a link, message and call-to-action.
func buildLinkCreativePayload(form CreativeForm, cta models.CTAType, ctaValue map[string]any) (map[string]any, error) {
	if form.Name == "" {
		return nil, fmt.Errorf("creative name is required")
	}
	if form.PageID == "" {
		return nil, fmt.Errorf("page_id is required")
	}

	callToAction := map[string]any{"type": cta}
	if len(ctaValue) > 0 {
		callToAction["value"] = ctaValue
	}

	linkData := map[string]any{
		"message":        form.Message,
		"call_to_action": callToAction,
	}
	if form.Link != "" {
		linkData["link"] = form.Link
	}
	if form.PictureURL != "" {
		linkData["picture"] = form.PictureURL
	}

	return map[string]any{
		"name": form.Name,
		"object_story_spec": map[string]any{
			"page_id":   form.PageID,
			"link_data": linkData,
		},
	}, nil
}

// buildAdPayload is shared by every variant.
func buildAdPayload(form AdForm, adSetID, creativeID string) (map[string]any, error) {
	if form.Name == "" {
		return nil, fmt.Errorf("ad name is required")
	}
	if adSetID == "" {
		return nil, fmt.Errorf("adset_id is required")
	}
	if creativeID == "" {
		return nil, fmt.Errorf("creative_id is required")
	}
	return map[string]any{
		"name":        form.Name,
		"adset_id":    adSetID,
		"creative_id": creativeID,
		"status":      models.StatusPaused,
	}, nil
}
