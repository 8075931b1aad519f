package rules

import (
	"testing"

	"github.com/campaign-studio/backend/internal/models"
)

func TestObjectiveGoalsAreSubsetOfEnum(t *testing.T) {
	known := make(map[models.OptimizationGoal]bool, len(models.AllOptimizationGoals))
	for _, g := range models.AllOptimizationGoals {
		known[g] = true
	}

	for objective, goals := range ObjectiveGoals {
		if len(goals) == 0 {
			t.Errorf("objective %s maps to an empty goal set", objective)
		}
		for _, g := range goals {
			if !known[g] {
				t.Errorf("objective %s references unknown goal %s", objective, g)
			}
		}
	}
}

func TestGoalCTAsAreSubsetOfEnum(t *testing.T) {
	known := make(map[models.CTAType]bool, len(models.AllCTATypes))
	for _, c := range models.AllCTATypes {
		known[c] = true
	}

	for goal, ctas := range GoalCTAs {
		if len(ctas) == 0 {
			t.Errorf("goal %s maps to an empty CTA set", goal)
		}
		for _, c := range ctas {
			if !known[c] {
				t.Errorf("goal %s references unknown CTA %s", goal, c)
			}
		}
	}
}

func TestAllowedGoalsFallback(t *testing.T) {
	goals := AllowedGoals(models.Objective("SOMETHING_NEW"))
	if len(goals) != len(models.AllOptimizationGoals) {
		t.Errorf("unmapped objective returned %d goals, want full enum (%d)", len(goals), len(models.AllOptimizationGoals))
	}

	awareness := AllowedGoals(models.ObjectiveAwareness)
	if len(awareness) != 4 {
		t.Errorf("awareness goals = %v, want 4 entries", awareness)
	}
}

func TestAllowedCTAsForGoalFallback(t *testing.T) {
	ctas := AllowedCTAsForGoal(models.GoalEngagedUsers)
	if len(ctas) != len(models.AllCTATypes) {
		t.Errorf("unmapped goal returned %d CTAs, want full enum (%d)", len(ctas), len(models.AllCTATypes))
	}
}

func TestDestinationsFor(t *testing.T) {
	tests := []struct {
		objective models.Objective
		expected  []models.DestinationType
	}{
		{models.ObjectiveLeads, []models.DestinationType{models.DestinationLeadForm}},
		{models.ObjectiveAwareness, nil},
		{models.ObjectiveEngagement, EngagementDestinations},
	}
	for _, tt := range tests {
		got := DestinationsFor(tt.objective)
		if len(got) != len(tt.expected) {
			t.Errorf("DestinationsFor(%s) = %v, want %v", tt.objective, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("DestinationsFor(%s)[%d] = %s, want %s", tt.objective, i, got[i], tt.expected[i])
			}
		}
	}

	if got := DestinationsFor(models.ObjectiveTraffic); len(got) != len(models.AllDestinationTypes) {
		t.Errorf("traffic destinations = %d entries, want full enum", len(got))
	}
}
