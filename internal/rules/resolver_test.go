package rules

import (
	"testing"

	"github.com/campaign-studio/backend/internal/models"
)

func TestResolvePhoneCallForcesCallNow(t *testing.T) {
	goals := []models.OptimizationGoal{
		models.GoalQualityCall, models.GoalLinkClicks, models.GoalConversations, "",
	}
	for _, goal := range goals {
		res := Resolve(models.ObjectiveTraffic, goal, models.DestinationPhoneCall, "")
		if res.Selected != models.CTACallNow {
			t.Errorf("goal %s: selected = %s, want CALL_NOW", goal, res.Selected)
		}
		if !res.AutoSelected {
			t.Errorf("goal %s: forced CALL_NOW should be marked auto-selected", goal)
		}
		if res.AllowedCTAs[0] != models.CTACallNow {
			t.Errorf("goal %s: CALL_NOW should lead the allowed set, got %v", goal, res.AllowedCTAs)
		}
	}
}

func TestResolvePhoneCallIgnoresCurrentSelection(t *testing.T) {
	// Even a previously chosen in-set CTA cannot displace the forced one.
	res := Resolve(models.ObjectiveTraffic, models.GoalQualityCall, models.DestinationPhoneCall, models.CTALearnMore)
	if res.Selected != models.CTACallNow {
		t.Errorf("selected = %s, want CALL_NOW", res.Selected)
	}
}

func TestResolveWhatsAppAutoSelects(t *testing.T) {
	res := Resolve(models.ObjectiveEngagement, models.GoalConversations, models.DestinationWhatsApp, "")
	if res.Selected != models.CTAWhatsAppMessage {
		t.Errorf("selected = %s, want WHATSAPP_MESSAGE", res.Selected)
	}
	if !res.AutoSelected {
		t.Error("WhatsApp destination should auto-select")
	}
	if len(res.AllowedCTAs) != len(models.AllCTATypes) {
		t.Errorf("WhatsApp destination should offer the full CTA set, got %d", len(res.AllowedCTAs))
	}
}

func TestResolveWebsiteAutoSelectsLearnMore(t *testing.T) {
	res := Resolve(models.ObjectiveTraffic, models.GoalLinkClicks, models.DestinationWebsite, "")
	if res.Selected != models.CTALearnMore {
		t.Errorf("selected = %s, want LEARN_MORE", res.Selected)
	}
	if !res.AutoSelected {
		t.Error("website destination should auto-select")
	}
}

func TestResolveKeepsCurrentInSetSelection(t *testing.T) {
	res := Resolve(models.ObjectiveTraffic, models.GoalLinkClicks, models.DestinationWebsite, models.CTAShopNow)
	if res.Selected != models.CTAShopNow {
		t.Errorf("selected = %s, want SHOP_NOW kept", res.Selected)
	}
	if res.AutoSelected {
		t.Error("a user-chosen CTA should clear the auto flag")
	}
}

func TestResolveResetsOutOfSetSelection(t *testing.T) {
	// PLAY_GAME is not in the QUALITY_LEAD CTA set.
	res := Resolve(models.ObjectiveLeads, models.GoalQualityLead, "", models.CTAPlayGame)
	if res.Selected != res.AllowedCTAs[0] {
		t.Errorf("selected = %s, want reset to first allowed %s", res.Selected, res.AllowedCTAs[0])
	}
	if res.AutoSelected {
		t.Error("reset should not be flagged as auto-selected")
	}
}

func TestResolveIntersectsGoalAndDestination(t *testing.T) {
	res := Resolve(models.ObjectiveEngagement, models.GoalConversations, models.DestinationMessagingApps, "")
	for _, cta := range res.AllowedCTAs {
		if !containsCTA(GoalCTAs[models.GoalConversations], cta) {
			t.Errorf("CTA %s is outside the CONVERSATIONS goal set", cta)
		}
	}
	if !containsCTA(res.AllowedCTAs, models.CTAWhatsAppMessage) {
		t.Errorf("messaging destination should keep WHATSAPP_MESSAGE, got %v", res.AllowedCTAs)
	}
	if containsCTA(res.AllowedCTAs, models.CTALearnMore) {
		t.Errorf("messaging destination should drop LEARN_MORE, got %v", res.AllowedCTAs)
	}
}

func TestResolveAllowedGoalsFollowObjective(t *testing.T) {
	res := Resolve(models.ObjectiveAwareness, "", "", "")
	if len(res.AllowedGoals) != 4 {
		t.Errorf("awareness goals = %v, want 4 entries", res.AllowedGoals)
	}
	if !ContainsGoal(res.AllowedGoals, models.GoalReach) {
		t.Errorf("awareness goals should contain REACH, got %v", res.AllowedGoals)
	}
}
