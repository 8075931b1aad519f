package rules

import "github.com/campaign-studio/backend/internal/models"

// ObjectiveGoals: objective -> optimization goals the platform accepts for
// it. A missing key means "no restriction" (every goal is legal).
var ObjectiveGoals = map[models.Objective][]models.OptimizationGoal{
	models.ObjectiveAwareness: {
		models.GoalAdRecallLift, models.GoalReach,
		models.GoalImpressions, models.GoalThruPlay,
	},
	models.ObjectiveTraffic: {
		models.GoalLinkClicks, models.GoalLandingPageViews,
		models.GoalQualityCall, models.GoalConversations,
		models.GoalVisitInstagramProfile, models.GoalReach,
		models.GoalImpressions,
	},
	models.ObjectiveEngagement: {
		models.GoalConversations, models.GoalPostEngagement,
		models.GoalPageLikes, models.GoalEventResponses,
		models.GoalThruPlay, models.GoalLinkClicks,
		models.GoalReach, models.GoalImpressions,
	},
	models.ObjectiveLeads: {
		models.GoalLeadGeneration, models.GoalQualityLead,
		models.GoalConversations, models.GoalLinkClicks,
		models.GoalLandingPageViews, models.GoalReach,
	},
	models.ObjectiveSales: {
		models.GoalOffsiteConversions, models.GoalValue,
		models.GoalConversations, models.GoalLinkClicks,
		models.GoalLandingPageViews, models.GoalImpressions,
		models.GoalReach,
	},
	models.ObjectiveAppPromotion: {
		models.GoalAppInstalls, models.GoalLinkClicks,
		models.GoalOffsiteConversions, models.GoalValue,
		models.GoalDerivedEvents,
	},
}

// GoalCTAs: optimization goal -> call-to-action types that pair with it.
// Same fallback rule as ObjectiveGoals: a missing key means every CTA.
var GoalCTAs = map[models.OptimizationGoal][]models.CTAType{
	models.GoalConversations: {
		models.CTAWhatsAppMessage, models.CTASendMessage,
		models.CTAMessagePage, models.CTALearnMore, models.CTAContactUs,
	},
	models.GoalQualityCall: {
		models.CTACallNow, models.CTALearnMore, models.CTAWhatsAppMessage,
	},
	models.GoalLinkClicks: {
		models.CTALearnMore, models.CTAShopNow, models.CTASignUp,
		models.CTASubscribe, models.CTADownload, models.CTABookNow,
		models.CTAContactUs, models.CTAGetOffer, models.CTAGetQuote,
		models.CTAOrderNow, models.CTAApplyNow,
	},
	models.GoalLandingPageViews: {
		models.CTALearnMore, models.CTAShopNow, models.CTASignUp,
		models.CTABookNow, models.CTAGetOffer, models.CTAOrderNow,
	},
	models.GoalLeadGeneration: {
		models.CTASignUp, models.CTASubscribe, models.CTAApplyNow,
		models.CTAGetQuote, models.CTALearnMore, models.CTADownload,
	},
	models.GoalQualityLead: {
		models.CTASignUp, models.CTAApplyNow, models.CTAGetQuote,
		models.CTALearnMore,
	},
	models.GoalPostEngagement: {
		models.CTALearnMore, models.CTASendMessage, models.CTAWatchMore,
	},
	models.GoalPageLikes: {
		models.CTALearnMore,
	},
	models.GoalEventResponses: {
		models.CTALearnMore, models.CTAGetDirections,
	},
	models.GoalThruPlay: {
		models.CTAWatchMore, models.CTALearnMore, models.CTAListenNow,
	},
	models.GoalVisitInstagramProfile: {
		models.CTALearnMore, models.CTASendMessage,
	},
	models.GoalOffsiteConversions: {
		models.CTAShopNow, models.CTAOrderNow, models.CTASignUp,
		models.CTASubscribe, models.CTAGetOffer, models.CTALearnMore,
	},
	models.GoalValue: {
		models.CTAShopNow, models.CTAOrderNow, models.CTAGetOffer,
	},
	models.GoalAppInstalls: {
		models.CTAInstallApp, models.CTADownload, models.CTAPlayGame,
		models.CTALearnMore,
	},
	models.GoalAdRecallLift: {
		models.CTALearnMore, models.CTAWatchMore,
	},
}

// AllowedGoals returns the goal set for an objective, falling back to the
// full enum when the objective has no entry.
func AllowedGoals(objective models.Objective) []models.OptimizationGoal {
	if goals, ok := ObjectiveGoals[objective]; ok {
		return goals
	}
	return models.AllOptimizationGoals
}

// AllowedCTAsForGoal returns the CTA set for a goal, falling back to the
// full enum when the goal has no entry.
func AllowedCTAsForGoal(goal models.OptimizationGoal) []models.CTAType {
	if ctas, ok := GoalCTAs[goal]; ok {
		return ctas
	}
	return models.AllCTATypes
}

// EngagementDestinations is the narrowed destination set offered when the
// objective is engagement.
var EngagementDestinations = []models.DestinationType{
	models.DestinationWebsite, models.DestinationPhoneCall, models.DestinationWhatsApp,
}

// DestinationsFor returns the destination choices an objective allows.
// Leads is pinned to the lead form, awareness has no destination at all.
func DestinationsFor(objective models.Objective) []models.DestinationType {
	switch objective {
	case models.ObjectiveLeads:
		return []models.DestinationType{models.DestinationLeadForm}
	case models.ObjectiveAwareness:
		return nil
	case models.ObjectiveEngagement:
		return EngagementDestinations
	}
	return models.AllDestinationTypes
}
