package strategy

import (
	"testing"

	"github.com/campaign-studio/backend/internal/models"
)

func validTargeting() *models.TargetingSpec {
	spec := models.NewTargetingSpec()
	_ = spec.AddLocation(models.CustomLocation{Latitude: 12.97, Longitude: 77.59, RadiusKm: 5})
	return spec
}

func TestForType(t *testing.T) {
	for _, ct := range models.AllCampaignTypes {
		s, err := ForType(ct)
		if err != nil {
			t.Errorf("ForType(%s): %v", ct, err)
			continue
		}
		if s.Type() != ct {
			t.Errorf("ForType(%s).Type() = %s", ct, s.Type())
		}
	}
	if _, err := ForType("banner"); err == nil {
		t.Error("unknown campaign type should fail")
	}
}

func TestPinnedObjectivesAndGoals(t *testing.T) {
	tests := []struct {
		campaignType models.CampaignType
		objective    models.Objective
		destination  models.DestinationType
		goal         models.OptimizationGoal
	}{
		{models.CampaignTypeWhatsApp, models.ObjectiveEngagement, models.DestinationWhatsApp, models.GoalConversations},
		{models.CampaignTypeCall, models.ObjectiveTraffic, models.DestinationPhoneCall, models.GoalQualityCall},
		{models.CampaignTypeLink, models.ObjectiveTraffic, models.DestinationWebsite, models.GoalLinkClicks},
	}
	for _, tt := range tests {
		s, err := ForType(tt.campaignType)
		if err != nil {
			t.Fatalf("ForType(%s): %v", tt.campaignType, err)
		}
		if s.Objective() != tt.objective {
			t.Errorf("%s objective = %s, want %s", tt.campaignType, s.Objective(), tt.objective)
		}
		if s.DestinationType() != tt.destination {
			t.Errorf("%s destination = %s, want %s", tt.campaignType, s.DestinationType(), tt.destination)
		}
		// Pinned variants ignore whatever goal is requested.
		goal, err := s.ResolveGoal(models.GoalReach)
		if err != nil {
			t.Errorf("%s ResolveGoal: %v", tt.campaignType, err)
		}
		if goal != tt.goal {
			t.Errorf("%s goal = %s, want %s", tt.campaignType, goal, tt.goal)
		}
	}
}

func TestCampaignPayload(t *testing.T) {
	s, _ := ForType(models.CampaignTypeWhatsApp)

	payload, err := s.BuildCampaignPayload(CampaignForm{Name: "Promo"})
	if err != nil {
		t.Fatalf("BuildCampaignPayload: %v", err)
	}
	if payload["name"] != "Promo" {
		t.Errorf("name = %v", payload["name"])
	}
	if payload["objective"] != models.ObjectiveEngagement {
		t.Errorf("objective = %v", payload["objective"])
	}
	if payload["status"] != models.StatusPaused {
		t.Errorf("status = %v, want PAUSED", payload["status"])
	}

	if _, err := s.BuildCampaignPayload(CampaignForm{}); err == nil {
		t.Error("empty name should fail")
	}
}

func TestWhatsAppAdSetPayload(t *testing.T) {
	s, _ := ForType(models.CampaignTypeWhatsApp)

	payload, err := s.BuildAdSetPayload(AdSetForm{Name: "Audience A", DailyBudget: 300}, "cmp_1", validTargeting())
	if err != nil {
		t.Fatalf("BuildAdSetPayload: %v", err)
	}
	if payload["optimization_goal"] != models.GoalConversations {
		t.Errorf("optimization_goal = %v, want CONVERSATIONS", payload["optimization_goal"])
	}
	if payload["destination_type"] != models.DestinationWhatsApp {
		t.Errorf("destination_type = %v, want WHATSAPP", payload["destination_type"])
	}
	if payload["status"] != models.StatusPaused {
		t.Errorf("status = %v, want PAUSED", payload["status"])
	}
	if payload["campaign_id"] != "cmp_1" {
		t.Errorf("campaign_id = %v", payload["campaign_id"])
	}
	if _, ok := payload["targeting"].(map[string]any); !ok {
		t.Error("targeting payload missing")
	}

	if _, err := s.BuildAdSetPayload(AdSetForm{Name: "A", DailyBudget: 300}, "cmp_1", models.NewTargetingSpec()); err == nil {
		t.Error("targeting without locations should fail")
	}
	if _, err := s.BuildAdSetPayload(AdSetForm{Name: "A", DailyBudget: 300}, "", validTargeting()); err == nil {
		t.Error("missing campaign_id should fail")
	}
}

func TestWhatsAppCreativeRequiresNumber(t *testing.T) {
	s, _ := ForType(models.CampaignTypeWhatsApp)

	if _, err := s.BuildCreativePayload(CreativeForm{Name: "C", PageID: "pg_1"}); err == nil {
		t.Error("missing whatsapp_number should fail")
	}

	payload, err := s.BuildCreativePayload(CreativeForm{Name: "C", PageID: "pg_1", Message: "hi", WhatsAppNumber: "+15551234567"})
	if err != nil {
		t.Fatalf("BuildCreativePayload: %v", err)
	}
	story := payload["object_story_spec"].(map[string]any)
	linkData := story["link_data"].(map[string]any)
	cta := linkData["call_to_action"].(map[string]any)
	if cta["type"] != models.CTAWhatsAppMessage {
		t.Errorf("cta type = %v, want WHATSAPP_MESSAGE", cta["type"])
	}
	value := cta["value"].(map[string]any)
	if value["whatsapp_number"] != "+15551234567" {
		t.Errorf("whatsapp_number = %v", value["whatsapp_number"])
	}
}

func TestCallCreativeRequiredFields(t *testing.T) {
	s, _ := ForType(models.CampaignTypeCall)

	full := CreativeForm{
		Name:            "Call us",
		PageID:          "pg_1",
		PictureURL:      "https://cdn.example.com/a.jpg",
		BusinessPageURL: "https://example.com",
		PhoneNumber:     "+15550001111",
	}

	drop := []func(f *CreativeForm){
		func(f *CreativeForm) { f.Name = "" },
		func(f *CreativeForm) { f.PageID = "" },
		func(f *CreativeForm) { f.PictureURL = "" },
		func(f *CreativeForm) { f.BusinessPageURL = "" },
		func(f *CreativeForm) { f.PhoneNumber = "" },
	}
	for i, mutate := range drop {
		form := full
		mutate(&form)
		if _, err := s.BuildCreativePayload(form); err == nil {
			t.Errorf("case %d: missing field should fail", i)
		}
	}

	payload, err := s.BuildCreativePayload(full)
	if err != nil {
		t.Fatalf("BuildCreativePayload: %v", err)
	}
	if payload["phone_number"] != "+15550001111" {
		t.Errorf("phone_number = %v", payload["phone_number"])
	}
	cta := payload["call_to_action"].(map[string]any)
	if cta["type"] != models.CTACallNow {
		t.Errorf("cta type = %v, want CALL_NOW", cta["type"])
	}
}

func TestLinkCreativeRequiresLink(t *testing.T) {
	s, _ := ForType(models.CampaignTypeLink)

	if _, err := s.BuildCreativePayload(CreativeForm{Name: "C", PageID: "pg_1"}); err == nil {
		t.Error("missing link should fail")
	}

	payload, err := s.BuildCreativePayload(CreativeForm{Name: "C", PageID: "pg_1", Link: "https://example.com"})
	if err != nil {
		t.Fatalf("BuildCreativePayload: %v", err)
	}
	story := payload["object_story_spec"].(map[string]any)
	linkData := story["link_data"].(map[string]any)
	if linkData["link"] != "https://example.com" {
		t.Errorf("link = %v", linkData["link"])
	}
}

func TestLeadFormResolveGoal(t *testing.T) {
	s, _ := ForType(models.CampaignTypeLeadForm)

	goal, err := s.ResolveGoal("")
	if err != nil {
		t.Fatalf("empty goal: %v", err)
	}
	if goal != models.GoalLeadGeneration {
		t.Errorf("default goal = %s, want LEAD_GENERATION", goal)
	}

	goal, err = s.ResolveGoal(models.GoalQualityLead)
	if err != nil {
		t.Fatalf("quality lead: %v", err)
	}
	if goal != models.GoalQualityLead {
		t.Errorf("goal = %s", goal)
	}

	if _, err := s.ResolveGoal(models.GoalThruPlay); err == nil {
		t.Error("THRUPLAY is not a leads goal and should be rejected")
	}
}

func TestLeadFormAdSetPayload(t *testing.T) {
	s, _ := ForType(models.CampaignTypeLeadForm)

	form := AdSetForm{Name: "Leads", DailyBudget: 500, PromotedPageID: "pg_1"}
	payload, err := s.BuildAdSetPayload(form, "cmp_1", validTargeting())
	if err != nil {
		t.Fatalf("BuildAdSetPayload: %v", err)
	}
	promoted := payload["promoted_object"].(map[string]any)
	if promoted["page_id"] != "pg_1" {
		t.Errorf("promoted page_id = %v", promoted["page_id"])
	}

	// Promoted page is mandatory.
	if _, err := s.BuildAdSetPayload(AdSetForm{Name: "Leads", DailyBudget: 500}, "cmp_1", validTargeting()); err == nil {
		t.Error("missing promoted_page_id should fail")
	}

	// Quality leads needs a pixel.
	form.OptimizationGoal = models.GoalQualityLead
	if _, err := s.BuildAdSetPayload(form, "cmp_1", validTargeting()); err == nil {
		t.Error("quality lead without pixel_id should fail")
	}
	form.PixelID = "px_1"
	payload, err = s.BuildAdSetPayload(form, "cmp_1", validTargeting())
	if err != nil {
		t.Fatalf("quality lead with pixel: %v", err)
	}
	promoted = payload["promoted_object"].(map[string]any)
	if promoted["pixel_id"] != "px_1" {
		t.Errorf("promoted pixel_id = %v", promoted["pixel_id"])
	}
}

func TestLeadFormCreativeRequiresFormID(t *testing.T) {
	s, _ := ForType(models.CampaignTypeLeadForm)

	if _, err := s.BuildCreativePayload(CreativeForm{Name: "C", PageID: "pg_1"}); err == nil {
		t.Error("missing lead_form_id should fail")
	}

	payload, err := s.BuildCreativePayload(CreativeForm{Name: "C", PageID: "pg_1", LeadFormID: "lf_1"})
	if err != nil {
		t.Fatalf("BuildCreativePayload: %v", err)
	}
	story := payload["object_story_spec"].(map[string]any)
	cta := story["link_data"].(map[string]any)["call_to_action"].(map[string]any)
	if cta["value"].(map[string]any)["lead_gen_form_id"] != "lf_1" {
		t.Errorf("lead_gen_form_id missing: %v", cta)
	}
}

func TestAdPayload(t *testing.T) {
	s, _ := ForType(models.CampaignTypeLink)

	payload, err := s.BuildAdPayload(AdForm{Name: "Ad 1"}, "as_1", "cr_1")
	if err != nil {
		t.Fatalf("BuildAdPayload: %v", err)
	}
	if payload["adset_id"] != "as_1" || payload["creative_id"] != "cr_1" {
		t.Errorf("ids = %v / %v", payload["adset_id"], payload["creative_id"])
	}
	if payload["status"] != models.StatusPaused {
		t.Errorf("status = %v, want PAUSED", payload["status"])
	}

	if _, err := s.BuildAdPayload(AdForm{Name: "Ad 1"}, "as_1", ""); err == nil {
		t.Error("missing creative_id should fail")
	}
}

func TestEndpointsPerCampaignType(t *testing.T) {
	s, _ := ForType(models.CampaignTypeCall)
	ep := s.Endpoints()
	if ep.Campaign != "/call/campaigns" {
		t.Errorf("campaign endpoint = %s", ep.Campaign)
	}
	if ep.Ad != "/call/ads" {
		t.Errorf("ad endpoint = %s", ep.Ad)
	}
}
