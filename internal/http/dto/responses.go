package dto

import (
	"github.com/campaign-studio/backend/internal/models"
	"github.com/campaign-studio/backend/internal/rules"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// StartWorkflowResponse carries the session token used by every later
// workflow call.
type StartWorkflowResponse struct {
	Token   string                  `json:"token"`
	Session *models.WorkflowSession `json:"session"`
}

// OptionsResponse is the resolver output plus the destination choices the
// active objective allows. AutoSelected is a hint for the UI, not a
// silent override.
type OptionsResponse struct {
	rules.Resolution
	Destinations []models.DestinationType `json:"destinations,omitempty"`
}
