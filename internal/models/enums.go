package models

// CampaignType selects the guided flow variant. Chosen once when a
// workflow session starts and immutable for the rest of the session.
type CampaignType string

const (
	CampaignTypeWhatsApp CampaignType = "whatsapp"
	CampaignTypeCall     CampaignType = "call"
	CampaignTypeLink     CampaignType = "link"
	CampaignTypeLeadForm CampaignType = "lead_form"
)

var AllCampaignTypes = []CampaignType{
	CampaignTypeWhatsApp, CampaignTypeCall, CampaignTypeLink, CampaignTypeLeadForm,
}

func IsValidCampaignType(t CampaignType) bool {
	for _, ct := range AllCampaignTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Objective is the top-level business goal of a campaign.
type Objective string

const (
	ObjectiveAwareness    Objective = "OUTCOME_AWARENESS"
	ObjectiveTraffic      Objective = "OUTCOME_TRAFFIC"
	ObjectiveEngagement   Objective = "OUTCOME_ENGAGEMENT"
	ObjectiveLeads        Objective = "OUTCOME_LEADS"
	ObjectiveSales        Objective = "OUTCOME_SALES"
	ObjectiveAppPromotion Objective = "OUTCOME_APP_PROMOTION"
)

var AllObjectives = []Objective{
	ObjectiveAwareness, ObjectiveTraffic, ObjectiveEngagement,
	ObjectiveLeads, ObjectiveSales, ObjectiveAppPromotion,
}

// OptimizationGoal is the metric an ad set is tuned to maximize.
type OptimizationGoal string

const (
	GoalAdRecallLift          OptimizationGoal = "AD_RECALL_LIFT"
	GoalReach                 OptimizationGoal = "REACH"
	GoalImpressions           OptimizationGoal = "IMPRESSIONS"
	GoalThruPlay              OptimizationGoal = "THRUPLAY"
	GoalLinkClicks            OptimizationGoal = "LINK_CLICKS"
	GoalLandingPageViews      OptimizationGoal = "LANDING_PAGE_VIEWS"
	GoalQualityCall           OptimizationGoal = "QUALITY_CALL"
	GoalConversations         OptimizationGoal = "CONVERSATIONS"
	GoalVisitInstagramProfile OptimizationGoal = "VISIT_INSTAGRAM_PROFILE"
	GoalPostEngagement        OptimizationGoal = "POST_ENGAGEMENT"
	GoalPageLikes             OptimizationGoal = "PAGE_LIKES"
	GoalEventResponses        OptimizationGoal = "EVENT_RESPONSES"
	GoalLeadGeneration        OptimizationGoal = "LEAD_GENERATION"
	GoalQualityLead           OptimizationGoal = "QUALITY_LEAD"
	GoalOffsiteConversions    OptimizationGoal = "OFFSITE_CONVERSIONS"
	GoalValue                 OptimizationGoal = "VALUE"
	GoalAppInstalls           OptimizationGoal = "APP_INSTALLS"
	GoalEngagedUsers          OptimizationGoal = "ENGAGED_USERS"
	GoalSubscribers           OptimizationGoal = "SUBSCRIBERS"
	GoalDerivedEvents         OptimizationGoal = "DERIVED_EVENTS"
)

var AllOptimizationGoals = []OptimizationGoal{
	GoalAdRecallLift, GoalReach, GoalImpressions, GoalThruPlay,
	GoalLinkClicks, GoalLandingPageViews, GoalQualityCall, GoalConversations,
	GoalVisitInstagramProfile, GoalPostEngagement, GoalPageLikes,
	GoalEventResponses, GoalLeadGeneration, GoalQualityLead,
	GoalOffsiteConversions, GoalValue, GoalAppInstalls, GoalEngagedUsers,
	GoalSubscribers, GoalDerivedEvents,
}

// DestinationType is where a click/tap on the ad leads.
type DestinationType string

const (
	DestinationWebsite          DestinationType = "WEBSITE"
	DestinationWhatsApp         DestinationType = "WHATSAPP"
	DestinationMessagingApps    DestinationType = "MESSAGING_APPS"
	DestinationPhoneCall        DestinationType = "PHONE_CALL"
	DestinationInstagramProfile DestinationType = "INSTAGRAM_PROFILE"
	DestinationFacebookPage     DestinationType = "FACEBOOK_PAGE"
	DestinationOnAd             DestinationType = "ON_AD"
	DestinationInstantForm      DestinationType = "INSTANT_FORM"
	DestinationCalls            DestinationType = "CALLS"
	DestinationAppStore         DestinationType = "APP_STORE"
	DestinationAppDeepLink      DestinationType = "APP_DEEP_LINK"
	DestinationApp              DestinationType = "APP"
	DestinationLeadForm         DestinationType = "LEAD_FORM"
)

var AllDestinationTypes = []DestinationType{
	DestinationWebsite, DestinationWhatsApp, DestinationMessagingApps,
	DestinationPhoneCall, DestinationInstagramProfile, DestinationFacebookPage,
	DestinationOnAd, DestinationInstantForm, DestinationCalls,
	DestinationAppStore, DestinationAppDeepLink, DestinationApp,
	DestinationLeadForm,
}

// CTAType is the call-to-action label shown on the rendered ad.
type CTAType string

const (
	CTALearnMore       CTAType = "LEARN_MORE"
	CTACallNow         CTAType = "CALL_NOW"
	CTAWhatsAppMessage CTAType = "WHATSAPP_MESSAGE"
	CTASendMessage     CTAType = "SEND_MESSAGE"
	CTAMessagePage     CTAType = "MESSAGE_PAGE"
	CTAShopNow         CTAType = "SHOP_NOW"
	CTASignUp          CTAType = "SIGN_UP"
	CTASubscribe       CTAType = "SUBSCRIBE"
	CTADownload        CTAType = "DOWNLOAD"
	CTABookNow         CTAType = "BOOK_NOW"
	CTAContactUs       CTAType = "CONTACT_US"
	CTAGetOffer        CTAType = "GET_OFFER"
	CTAGetQuote        CTAType = "GET_QUOTE"
	CTAOrderNow        CTAType = "ORDER_NOW"
	CTAApplyNow        CTAType = "APPLY_NOW"
	CTAGetDirections   CTAType = "GET_DIRECTIONS"
	CTAWatchMore       CTAType = "WATCH_MORE"
	CTAListenNow       CTAType = "LISTEN_NOW"
	CTAPlayGame        CTAType = "PLAY_GAME"
	CTAInstallApp      CTAType = "INSTALL_APP"
)

var AllCTATypes = []CTAType{
	CTALearnMore, CTACallNow, CTAWhatsAppMessage, CTASendMessage,
	CTAMessagePage, CTAShopNow, CTASignUp, CTASubscribe, CTADownload,
	CTABookNow, CTAContactUs, CTAGetOffer, CTAGetQuote, CTAOrderNow,
	CTAApplyNow, CTAGetDirections, CTAWatchMore, CTAListenNow,
	CTAPlayGame, CTAInstallApp,
}

// BillingEvent is what the platform bills the ad set on.
type BillingEvent string

const (
	BillingImpressions BillingEvent = "IMPRESSIONS"
	BillingLinkClicks  BillingEvent = "LINK_CLICKS"
	BillingThruPlay    BillingEvent = "THRUPLAY"
)

// StatusPaused is the only status this service ever submits: campaigns,
// ad sets and ads are created paused and activated later, outside the
// guided flow.
const StatusPaused = "PAUSED"

// FixedObjective returns the objective a campaign type pins, if any.
func (t CampaignType) FixedObjective() (Objective, bool) {
	switch t {
	case CampaignTypeWhatsApp:
		return ObjectiveEngagement, true
	case CampaignTypeCall, CampaignTypeLink:
		return ObjectiveTraffic, true
	case CampaignTypeLeadForm:
		return ObjectiveLeads, true
	}
	return "", false
}
