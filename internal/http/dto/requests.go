package dto

import "github.com/campaign-studio/backend/internal/models"

// StartWorkflowRequest opens a guided creation session. The campaign type
// is fixed for the session's lifetime; platform credentials ride along
// with every creation call.
type StartWorkflowRequest struct {
	CampaignType models.CampaignType `json:"campaign_type"`
	AdAccountID  string              `json:"ad_account_id"`
	AccessToken  string              `json:"access_token"`
}

// OptionsQuery are the resolver inputs the UI sends whenever the operator
// changes a selection.
type OptionsQuery struct {
	Objective        models.Objective        `query:"objective"`
	OptimizationGoal models.OptimizationGoal `query:"goal"`
	DestinationType  models.DestinationType  `query:"destination"`
	CurrentCTA       models.CTAType          `query:"cta"`
}
