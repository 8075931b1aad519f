package handlers

import (
	"errors"

	"github.com/campaign-studio/backend/internal/auth"
	"github.com/campaign-studio/backend/internal/config"
	"github.com/campaign-studio/backend/internal/http/dto"
	"github.com/campaign-studio/backend/internal/middleware"
	"github.com/campaign-studio/backend/internal/models"
	"github.com/campaign-studio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type WorkflowHandler struct {
	workflowService *services.WorkflowService
	cfg             *config.Config
	log             *zap.Logger
}

func NewWorkflowHandler(workflowService *services.WorkflowService, cfg *config.Config, log *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService, cfg: cfg, log: log}
}

func (h *WorkflowHandler) StartWorkflow(c *fiber.Ctx) error {
	var req dto.StartWorkflowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	sess, err := h.workflowService.Start(c.Context(), req.CampaignType, models.PlatformCredentials{
		AdAccountID: req.AdAccountID,
		AccessToken: req.AccessToken,
	})
	if err != nil {
		return h.renderError(c, err)
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, sess.ID, sess.Credentials.AdAccountID, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		OK:   true,
		Data: dto.StartWorkflowResponse{Token: token, Session: sess},
	})
}

func (h *WorkflowHandler) GetState(c *fiber.Ctx) error {
	sess, err := h.workflowService.Get(c.Context(), middleware.GetSessionID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "session not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: sess})
}

func (h *WorkflowHandler) Advance(c *fiber.Ctx) error {
	var input services.AdvanceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	sess, err := h.workflowService.Advance(c.Context(), middleware.GetSessionID(c), input)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: sess})
}

func (h *WorkflowHandler) Back(c *fiber.Ctx) error {
	sess, err := h.workflowService.Back(c.Context(), middleware.GetSessionID(c))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: sess})
}

func (h *WorkflowHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	logs, err := h.workflowService.History(c.Context(), middleware.GetSessionID(c), limit, offset)
	if err != nil {
		h.log.Error("audit history failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: logs})
}

func (h *WorkflowHandler) Abandon(c *fiber.Ctx) error {
	if err := h.workflowService.Abandon(c.Context(), middleware.GetSessionID(c)); err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

// renderError maps the workflow error taxonomy onto HTTP statuses. The
// message is always the most specific one available.
func (h *WorkflowHandler) renderError(c *fiber.Ctx, err error) error {
	var (
		validation *services.ValidationError
		expired    *services.SessionExpiredError
		rejected   *services.RemoteRejectionError
		malformed  *services.MalformedResponseError
		transient  *services.TransientNetworkError
	)

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: validation.Message})
	case errors.As(err, &expired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "ads platform session expired, reconnect the account"})
	case errors.As(err, &rejected):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: rejected.Message})
	case errors.As(err, &malformed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &transient):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	h.log.Error("workflow operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
}
