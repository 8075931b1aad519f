package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campaign-studio/backend/internal/config"
	"github.com/campaign-studio/backend/internal/events"
	"github.com/campaign-studio/backend/internal/models"
	"github.com/campaign-studio/backend/internal/rules"
	"github.com/campaign-studio/backend/internal/strategy"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResourceCreator is the slice of the ads client the workflow needs.
type ResourceCreator interface {
	CreateResource(ctx context.Context, endpoint string, payload map[string]any, creds models.PlatformCredentials) (string, error)
}

// SessionStore is the persistence surface of the workflow.
type SessionStore interface {
	Create(ctx context.Context, s *models.WorkflowSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.WorkflowSession, error)
	Update(ctx context.Context, s *models.WorkflowSession) error
}

// AuditLogger records workflow actions and serves them back per session.
type AuditLogger interface {
	Log(ctx context.Context, entry models.AuditLog) error
	GetBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]models.AuditLog, error)
}

// LocationInput is one custom location as submitted by the operator.
// Radius comes in as text because the UI field is free-form.
type LocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    string  `json:"radius"`
	Label     string  `json:"label,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// TargetingInput carries the raw targeting edits of the ad set step. Age
// fields are text for the same reason as radius: garbage input falls back
// instead of zeroing the value.
type TargetingInput struct {
	AgeMin             string                     `json:"age_min,omitempty"`
	AgeMax             string                     `json:"age_max,omitempty"`
	Genders            []models.Gender            `json:"genders,omitempty"`
	Locations          []LocationInput            `json:"locations,omitempty"`
	PublisherPlatforms []models.PublisherPlatform `json:"publisher_platforms,omitempty"`
	FacebookPositions  []string                   `json:"facebook_positions,omitempty"`
	InstagramPositions []string                   `json:"instagram_positions,omitempty"`
	DevicePlatforms    []string                   `json:"device_platforms,omitempty"`
}

// AdvanceInput is the active step's form. Only the field matching the
// session's current step is consulted.
type AdvanceInput struct {
	Campaign  *strategy.CampaignForm `json:"campaign,omitempty"`
	AdSet     *strategy.AdSetForm    `json:"adset,omitempty"`
	Targeting *TargetingInput        `json:"targeting,omitempty"`
	Creative  *strategy.CreativeForm `json:"creative,omitempty"`
	Ad        *strategy.AdForm       `json:"ad,omitempty"`
}

// WorkflowService owns the guided creation sequence: one session at a
// time per operator, four dependent remote resources created in strict
// order, each step's identifier feeding the next step's payload.
type WorkflowService struct {
	sessionRepo SessionStore
	auditRepo   AuditLogger
	client      ResourceCreator
	publisher   events.Publisher
	cfg         *config.Config
	log         *zap.Logger
}

func NewWorkflowService(
	sessionRepo SessionStore,
	auditRepo AuditLogger,
	client ResourceCreator,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *WorkflowService {
	return &WorkflowService{
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
		client:      client,
		publisher:   publisher,
		cfg:         cfg,
		log:         log,
	}
}

// Start opens a new session for the chosen campaign type. The type is
// immutable afterwards; restarting means a fresh session.
func (s *WorkflowService) Start(ctx context.Context, t models.CampaignType, creds models.PlatformCredentials) (*models.WorkflowSession, error) {
	if !models.IsValidCampaignType(t) {
		return nil, &ValidationError{Step: string(models.StepSelectType), Message: fmt.Sprintf("unknown campaign type %q", t)}
	}
	if creds.AdAccountID == "" || creds.AccessToken == "" {
		return nil, &ValidationError{Step: string(models.StepSelectType), Message: "ad_account_id and access_token are required"}
	}

	sess := models.NewWorkflowSession(t, creds)
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		SessionID:  &sess.ID,
		Action:     "workflow_started",
		EntityType: "session",
		Meta:       map[string]any{"campaign_type": t},
	})

	return sess, nil
}

// Get loads an active session.
func (s *WorkflowService) Get(ctx context.Context, id uuid.UUID) (*models.WorkflowSession, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// History returns the session's audit trail, newest first.
func (s *WorkflowService) History(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	return s.auditRepo.GetBySession(ctx, sessionID, limit, offset)
}

// Advance validates the active step's form, performs its creation call,
// stores the returned identifier and moves one step forward. On any
// failure the session is left exactly as it was, except that an expired
// platform session invalidates the credentials and ends the workflow.
func (s *WorkflowService) Advance(ctx context.Context, sessionID uuid.UUID, input AdvanceInput) (*models.WorkflowSession, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != models.SessionStatusActive {
		return nil, &ValidationError{Step: string(sess.Step), Message: fmt.Sprintf("session is %s", sess.Status)}
	}

	strat, err := strategy.ForType(sess.CampaignType)
	if err != nil {
		return nil, err
	}

	// Every identifier from earlier steps must exist before this step may
	// touch the network.
	if err := sess.ReadyFor(sess.Step); err != nil {
		return nil, &ValidationError{Step: string(sess.Step), Message: err.Error()}
	}

	// Steps revisited via Back advance again without a creation call: the
	// campaign type is immutable at select_type, and a step that already
	// holds its identifier keeps it, each id written exactly once.
	if sess.Step == models.StepSelectType {
		return s.completeStep(ctx, sess, sess.Step, "", false)
	}
	if existing := sess.IdentifierFor(sess.Step); existing != nil {
		return s.completeStep(ctx, sess, sess.Step, *existing, false)
	}

	endpoint, payload, err := s.prepareStep(sess, strat, input)
	if err != nil {
		return nil, err
	}

	id, err := s.client.CreateResource(ctx, endpoint, payload, sess.Credentials)
	if err != nil {
		var expired *SessionExpiredError
		if errors.As(err, &expired) {
			s.expireSession(ctx, sess)
		}
		return nil, err
	}

	completedStep := sess.Step
	if err := sess.SetIdentifier(completedStep, id); err != nil {
		return nil, err
	}
	return s.completeStep(ctx, sess, completedStep, id, true)
}

// completeStep moves past a step whose identifier is known and persists
// the session. Audit and event publication only happen when the resource
// was created by this call, not when a revisited step is passed again.
func (s *WorkflowService) completeStep(ctx context.Context, sess *models.WorkflowSession, completedStep models.WorkflowStep, id string, created bool) (*models.WorkflowSession, error) {
	next, ok := completedStep.Next()
	if !ok || !models.IsValidStepTransition(completedStep, next) {
		return nil, fmt.Errorf("no forward transition from step %s", completedStep)
	}
	sess.Step = next
	if next == models.StepComplete {
		sess.Status = models.SessionStatusCompleted
	}

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		return nil, err
	}

	if !created {
		return sess, nil
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		SessionID:  &sess.ID,
		Action:     fmt.Sprintf("step_%s_completed", completedStep),
		EntityType: string(completedStep),
		Meta:       map[string]any{"resource_id": id},
	})

	eventType := events.EventStepCompleted
	if sess.Status == models.SessionStatusCompleted {
		eventType = events.EventWorkflowCompleted
	}
	_ = s.publisher.Publish(ctx, events.StreamWorkflow, events.Event{
		Type: eventType,
		Payload: map[string]any{
			"session_id":  sess.ID.String(),
			"step":        string(completedStep),
			"resource_id": id,
		},
	})

	return sess, nil
}

// prepareStep builds the active step's endpoint and payload. Builder
// failures are local validation errors: nothing has gone over the wire.
func (s *WorkflowService) prepareStep(sess *models.WorkflowSession, strat strategy.Strategy, input AdvanceInput) (string, map[string]any, error) {
	endpoints := strat.Endpoints()

	switch sess.Step {
	case models.StepCampaign:
		if input.Campaign == nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: "campaign form is required"}
		}
		payload, err := strat.BuildCampaignPayload(*input.Campaign)
		if err != nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: err.Error()}
		}
		return endpoints.Campaign, payload, nil

	case models.StepAdSet:
		if input.AdSet == nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: "adset form is required"}
		}
		if input.AdSet.DailyBudget < s.cfg.MinDailyBudget {
			return "", nil, &ValidationError{
				Step:    string(sess.Step),
				Message: fmt.Sprintf("daily_budget must be at least %d", s.cfg.MinDailyBudget),
			}
		}
		if err := s.applyTargeting(sess, input.Targeting); err != nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: err.Error()}
		}
		payload, err := strat.BuildAdSetPayload(*input.AdSet, *sess.CampaignID, sess.Targeting)
		if err != nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: err.Error()}
		}
		goal, err := strat.ResolveGoal(input.AdSet.OptimizationGoal)
		if err != nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: err.Error()}
		}
		sess.OptimizationGoal = goal
		sess.DestinationType = strat.DestinationType()
		return endpoints.AdSet, payload, nil

	case models.StepCreative:
		if input.Creative == nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: "creative form is required"}
		}
		form := *input.Creative
		// Destination type wins over goal-based CTA filtering; an
		// out-of-set choice resets to the first allowed entry.
		resolution := rules.Resolve(sess.Objective, sess.OptimizationGoal, sess.DestinationType, form.CTA)
		form.CTA = resolution.Selected
		payload, err := strat.BuildCreativePayload(form)
		if err != nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: err.Error()}
		}
		sess.CTA = resolution.Selected
		return endpoints.Creative, payload, nil

	case models.StepAd:
		if input.Ad == nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: "ad form is required"}
		}
		payload, err := strat.BuildAdPayload(*input.Ad, *sess.AdSetID, *sess.CreativeID)
		if err != nil {
			return "", nil, &ValidationError{Step: string(sess.Step), Message: err.Error()}
		}
		return endpoints.Ad, payload, nil
	}

	return "", nil, &ValidationError{Step: string(sess.Step), Message: "no creation call at this step"}
}

// applyTargeting folds raw targeting edits into the session spec through
// the builder rules: age fallback, radius clamp, duplicate rejection,
// non-empty platforms, Instagram position co-dependency.
func (s *WorkflowService) applyTargeting(sess *models.WorkflowSession, in *TargetingInput) error {
	if sess.Targeting == nil {
		sess.Targeting = models.NewTargetingSpec()
	}
	if in == nil {
		return sess.Targeting.Validate()
	}

	spec := sess.Targeting
	if in.AgeMin != "" {
		spec.SetAgeMin(in.AgeMin)
	}
	if in.AgeMax != "" {
		spec.SetAgeMax(in.AgeMax)
	}
	if in.Genders != nil {
		spec.Genders = in.Genders
	}
	for _, loc := range in.Locations {
		err := spec.AddLocation(models.CustomLocation{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			RadiusKm:  models.ParseRadius(loc.Radius),
			Label:     loc.Label,
			Address:   loc.Address,
		})
		if err != nil {
			return err
		}
	}
	if len(in.PublisherPlatforms) > 0 {
		spec.PublisherPlatforms = in.PublisherPlatforms
	}
	if in.FacebookPositions != nil {
		spec.FacebookPositions = in.FacebookPositions
	}
	for _, pos := range in.InstagramPositions {
		if !hasString(spec.InstagramPositions, pos) {
			spec.ToggleInstagramPosition(pos)
		}
	}
	if in.DevicePlatforms != nil {
		spec.DevicePlatforms = in.DevicePlatforms
	}

	return spec.Validate()
}

// Back moves one step down. Created identifiers and entered form values
// survive; no deletion call is ever issued, so remote objects created so
// far stay behind in paused state.
func (s *WorkflowService) Back(ctx context.Context, sessionID uuid.UUID) (*models.WorkflowSession, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != models.SessionStatusActive {
		return nil, &ValidationError{Step: string(sess.Step), Message: fmt.Sprintf("session is %s", sess.Status)}
	}

	prev, ok := sess.Step.Prev()
	if !ok || !models.IsValidStepTransition(sess.Step, prev) {
		return nil, &ValidationError{Step: string(sess.Step), Message: "cannot go back from the first step"}
	}

	sess.Step = prev
	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Abandon discards the session client-side. Remote resources already
// created remain paused on the platform.
func (s *WorkflowService) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status != models.SessionStatusActive {
		return nil
	}
	sess.Status = models.SessionStatusAbandoned
	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		SessionID:  &sess.ID,
		Action:     "workflow_abandoned",
		EntityType: "session",
		Meta:       map[string]any{"step": string(sess.Step)},
	})
	return nil
}

func (s *WorkflowService) expireSession(ctx context.Context, sess *models.WorkflowSession) {
	sess.Status = models.SessionStatusExpired
	sess.Credentials.AccessToken = ""
	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		s.log.Error("failed to mark session expired", zap.String("session_id", sess.ID.String()), zap.Error(err))
		return
	}
	_ = s.publisher.Publish(ctx, events.StreamWorkflow, events.Event{
		Type:    events.EventSessionExpired,
		Payload: map[string]any{"session_id": sess.ID.String()},
	})
}

func hasString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
