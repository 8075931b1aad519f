package handlers

import (
	"github.com/campaign-studio/backend/internal/http/dto"
	"github.com/campaign-studio/backend/internal/models"
	"github.com/campaign-studio/backend/internal/rules"
	"github.com/gofiber/fiber/v2"
)

// MetaHandler serves the static option lists and the resolver output the
// UI needs to render each step.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type CampaignTypeOption struct {
	ID    models.CampaignType `json:"id"`
	Label string              `json:"label"`
}

var campaignTypeOptions = []CampaignTypeOption{
	{ID: models.CampaignTypeWhatsApp, Label: "WhatsApp Conversations"},
	{ID: models.CampaignTypeCall, Label: "Phone Calls"},
	{ID: models.CampaignTypeLink, Label: "Website Traffic"},
	{ID: models.CampaignTypeLeadForm, Label: "Lead Form"},
}

func (h *MetaHandler) GetCampaignTypes(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaignTypeOptions})
}

func (h *MetaHandler) GetObjectives(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.AllObjectives})
}

// GetOptions re-runs the resolver for the current selections. Called
// whenever objective, optimization goal or destination type changes.
func (h *MetaHandler) GetOptions(c *fiber.Ctx) error {
	var q dto.OptionsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid query"})
	}
	if q.Objective == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "objective is required"})
	}

	resolution := rules.Resolve(q.Objective, q.OptimizationGoal, q.DestinationType, q.CurrentCTA)
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.OptionsResponse{
		Resolution:   resolution,
		Destinations: rules.DestinationsFor(q.Objective),
	}})
}
