package handlers

import (
	"strconv"

	"github.com/campaign-studio/backend/internal/http/dto"
	"github.com/campaign-studio/backend/internal/middleware"
	"github.com/campaign-studio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CampaignHandler serves the post-creation listing view.
type CampaignHandler struct {
	insightsService *services.InsightsService
	workflowService *services.WorkflowService
	log             *zap.Logger
}

func NewCampaignHandler(insightsService *services.InsightsService, workflowService *services.WorkflowService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{
		insightsService: insightsService,
		workflowService: workflowService,
		log:             log,
	}
}

// ListCampaigns returns the account's campaigns enriched with insights.
// A failed per-item insight fetch leaves that item without insight data;
// it never fails the whole listing.
func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	sess, err := h.workflowService.Get(c.Context(), middleware.GetSessionID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "session not found"})
	}

	limit := 25
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	campaigns, err := h.insightsService.List(c.Context(), sess.Credentials, limit)
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "failed to fetch campaigns"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}
