package models

import "testing"

func TestIsValidStepTransition(t *testing.T) {
	tests := []struct {
		from     WorkflowStep
		to       WorkflowStep
		expected bool
	}{
		// Forward path
		{StepSelectType, StepCampaign, true},
		{StepCampaign, StepAdSet, true},
		{StepAdSet, StepCreative, true},
		{StepCreative, StepAd, true},
		{StepAd, StepComplete, true},

		// Back transitions
		{StepCampaign, StepSelectType, true},
		{StepAdSet, StepCampaign, true},
		{StepCreative, StepAdSet, true},
		{StepAd, StepCreative, true},

		// No skipping
		{StepSelectType, StepAdSet, false},
		{StepCampaign, StepCreative, false},
		{StepCampaign, StepComplete, false},
		{StepAdSet, StepAd, false},

		// Terminal
		{StepComplete, StepAd, false},
		{StepComplete, StepCampaign, false},

		// Unknown
		{"nonexistent", StepCampaign, false},
		{StepCampaign, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			result := IsValidStepTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidStepTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllStepsHaveTransitionEntry(t *testing.T) {
	for _, step := range workflowOrder {
		if _, ok := ValidStepTransitions[step]; !ok {
			t.Errorf("step %q missing from ValidStepTransitions map", step)
		}
	}
}

func TestFixedObjectives(t *testing.T) {
	tests := []struct {
		campaignType CampaignType
		objective    Objective
	}{
		{CampaignTypeWhatsApp, ObjectiveEngagement},
		{CampaignTypeCall, ObjectiveTraffic},
		{CampaignTypeLink, ObjectiveTraffic},
		{CampaignTypeLeadForm, ObjectiveLeads},
	}
	for _, tt := range tests {
		obj, ok := tt.campaignType.FixedObjective()
		if !ok {
			t.Errorf("%s should have a fixed objective", tt.campaignType)
			continue
		}
		if obj != tt.objective {
			t.Errorf("%s objective = %s, want %s", tt.campaignType, obj, tt.objective)
		}
	}
}

func TestReadyForRequiresEarlierIdentifiers(t *testing.T) {
	sess := NewWorkflowSession(CampaignTypeWhatsApp, PlatformCredentials{AdAccountID: "act_1", AccessToken: "tok"})

	if err := sess.ReadyFor(StepCampaign); err != nil {
		t.Errorf("campaign step should need no identifiers: %v", err)
	}
	if err := sess.ReadyFor(StepAdSet); err == nil {
		t.Error("adset step should be blocked without a campaign id")
	}
	if err := sess.ReadyFor(StepAd); err == nil {
		t.Error("ad step should be blocked without a creative id")
	}

	if err := sess.SetIdentifier(StepCampaign, "cmp_1"); err != nil {
		t.Fatalf("SetIdentifier: %v", err)
	}
	if err := sess.ReadyFor(StepAdSet); err != nil {
		t.Errorf("adset step should be ready after campaign id: %v", err)
	}
	if err := sess.ReadyFor(StepAd); err == nil {
		t.Error("ad step should still be blocked")
	}

	_ = sess.SetIdentifier(StepAdSet, "as_1")
	_ = sess.SetIdentifier(StepCreative, "cr_1")
	if err := sess.ReadyFor(StepAd); err != nil {
		t.Errorf("ad step should be ready: %v", err)
	}
}

func TestSetIdentifierWritesOnce(t *testing.T) {
	sess := NewWorkflowSession(CampaignTypeLink, PlatformCredentials{AdAccountID: "act_1", AccessToken: "tok"})

	if err := sess.SetIdentifier(StepCampaign, "cmp_1"); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := sess.SetIdentifier(StepCampaign, "cmp_2"); err == nil {
		t.Error("second write to the same step should fail")
	}
	if *sess.CampaignID != "cmp_1" {
		t.Errorf("campaign id mutated to %s", *sess.CampaignID)
	}

	if err := sess.SetIdentifier(StepSelectType, "x"); err == nil {
		t.Error("select_type produces no resource and should reject identifiers")
	}
}
