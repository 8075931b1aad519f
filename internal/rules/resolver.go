package rules

import "github.com/campaign-studio/backend/internal/models"

// Resolution is the outcome of combining the objective, optimization goal
// and destination type. Selected is the CTA the caller should use after
// the out-of-set reset rule; AutoSelected tells the UI to show a hint that
// the choice was made for the user rather than applying it silently.
type Resolution struct {
	AllowedGoals []models.OptimizationGoal `json:"allowed_goals"`
	AllowedCTAs  []models.CTAType          `json:"allowed_ctas"`
	Selected     models.CTAType            `json:"selected_cta"`
	AutoSelected bool                      `json:"auto_selected"`
}

// phoneCallCTAs is the fixed CTA set for phone-call destinations, with
// CALL_NOW first because it is the forced selection.
var phoneCallCTAs = []models.CTAType{
	models.CTACallNow, models.CTAWhatsAppMessage, models.CTALearnMore,
}

// Resolve derives the legal goal and CTA sets for the current selections.
// Destination type outranks goal-based filtering: a phone-call destination
// forces CALL_NOW no matter which optimization goal is active. current is
// the CTA the user has selected so far; if it falls outside the resolved
// set it resets to the first allowed entry and the auto flag is cleared.
//
// Must be re-run whenever objective, optimization goal or destination
// type changes.
func Resolve(objective models.Objective, goal models.OptimizationGoal, destination models.DestinationType, current models.CTAType) Resolution {
	res := Resolution{AllowedGoals: AllowedGoals(objective)}

	switch destination {
	case models.DestinationPhoneCall:
		res.AllowedCTAs = phoneCallCTAs
		res.Selected = models.CTACallNow
		res.AutoSelected = true
		return res
	case models.DestinationWhatsApp:
		res.AllowedCTAs = models.AllCTATypes
		res.Selected = models.CTAWhatsAppMessage
		res.AutoSelected = true
	case models.DestinationWebsite:
		res.AllowedCTAs = models.AllCTATypes
		res.Selected = models.CTALearnMore
		res.AutoSelected = true
	default:
		res.AllowedCTAs = AllowedCTAsForGoal(goal)
		if destination != "" {
			if _, hasGoalMapping := GoalCTAs[goal]; hasGoalMapping {
				res.AllowedCTAs = intersectCTAs(res.AllowedCTAs, destinationCTAs(destination))
			}
		}
		if len(res.AllowedCTAs) == 0 {
			res.AllowedCTAs = AllowedCTAsForGoal(goal)
		}
		res.Selected = res.AllowedCTAs[0]
	}

	if current != "" && containsCTA(res.AllowedCTAs, current) {
		if current != res.Selected {
			res.Selected = current
			res.AutoSelected = false
		}
		return res
	}
	if current != "" && !containsCTA(res.AllowedCTAs, current) {
		// Out-of-set selection: reset to the first allowed entry.
		res.Selected = res.AllowedCTAs[0]
		res.AutoSelected = false
	}
	return res
}

// destinationCTAs narrows CTAs for destinations that imply a channel.
// Destinations without an opinion return the full set.
func destinationCTAs(destination models.DestinationType) []models.CTAType {
	switch destination {
	case models.DestinationMessagingApps:
		return []models.CTAType{
			models.CTAWhatsAppMessage, models.CTASendMessage, models.CTAMessagePage,
		}
	case models.DestinationInstagramProfile, models.DestinationFacebookPage:
		return []models.CTAType{
			models.CTALearnMore, models.CTASendMessage, models.CTAContactUs,
		}
	case models.DestinationAppStore, models.DestinationAppDeepLink, models.DestinationApp:
		return []models.CTAType{
			models.CTAInstallApp, models.CTADownload, models.CTAPlayGame,
			models.CTALearnMore,
		}
	case models.DestinationInstantForm, models.DestinationLeadForm:
		return []models.CTAType{
			models.CTASignUp, models.CTASubscribe, models.CTAApplyNow,
			models.CTAGetQuote, models.CTALearnMore, models.CTADownload,
		}
	}
	return models.AllCTATypes
}

func intersectCTAs(a, b []models.CTAType) []models.CTAType {
	var out []models.CTAType
	for _, cta := range a {
		if containsCTA(b, cta) {
			out = append(out, cta)
		}
	}
	return out
}

func containsCTA(set []models.CTAType, cta models.CTAType) bool {
	for _, c := range set {
		if c == cta {
			return true
		}
	}
	return false
}

// ContainsGoal reports whether a goal belongs to a resolved goal set.
func ContainsGoal(set []models.OptimizationGoal, goal models.OptimizationGoal) bool {
	for _, g := range set {
		if g == goal {
			return true
		}
	}
	return false
}
