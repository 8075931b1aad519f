package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Workflow steps, in creation order.
type WorkflowStep string

const (
	StepSelectType WorkflowStep = "select_type"
	StepCampaign   WorkflowStep = "campaign"
	StepAdSet      WorkflowStep = "adset"
	StepCreative   WorkflowStep = "creative"
	StepAd         WorkflowStep = "ad"
	StepComplete   WorkflowStep = "complete"
)

// workflowOrder fixes each step's position in the sequence.
var workflowOrder = []WorkflowStep{
	StepSelectType, StepCampaign, StepAdSet, StepCreative, StepAd, StepComplete,
}

// ValidStepTransitions: from -> []to. Forward moves go one step ahead;
// every non-terminal step except the first can also go one step back.
var ValidStepTransitions = map[WorkflowStep][]WorkflowStep{
	StepSelectType: {StepCampaign},
	StepCampaign:   {StepAdSet, StepSelectType},
	StepAdSet:      {StepCreative, StepCampaign},
	StepCreative:   {StepAd, StepAdSet},
	StepAd:         {StepComplete, StepCreative},
	StepComplete:   {},
}

func IsValidStepTransition(from, to WorkflowStep) bool {
	allowed, ok := ValidStepTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Index returns the step's position (0..5), or -1 for unknown steps.
func (s WorkflowStep) Index() int {
	for i, step := range workflowOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the following step in creation order.
func (s WorkflowStep) Next() (WorkflowStep, bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(workflowOrder) {
		return "", false
	}
	return workflowOrder[i+1], true
}

// Prev returns the preceding step.
func (s WorkflowStep) Prev() (WorkflowStep, bool) {
	i := s.Index()
	if i <= 0 {
		return "", false
	}
	return workflowOrder[i-1], true
}

// Session statuses.
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusAbandoned = "abandoned"
	SessionStatusExpired   = "expired"
)

// PlatformCredentials are sent with every creation request as headers.
type PlatformCredentials struct {
	AdAccountID string `json:"ad_account_id"`
	AccessToken string `json:"-"`
}

// WorkflowSession owns one guided creation run. Each remote identifier is
// written exactly once, by its creation step, and never mutated within the
// session. Abandoning a session discards it client-side only: remote
// objects stay behind, paused, and are never deleted by this service.
type WorkflowSession struct {
	ID           uuid.UUID    `json:"id"`
	CampaignType CampaignType `json:"campaign_type"`
	Status       string       `json:"status"`
	Step         WorkflowStep `json:"step"`

	CampaignID *string `json:"campaign_id,omitempty"`
	AdSetID    *string `json:"adset_id,omitempty"`
	CreativeID *string `json:"creative_id,omitempty"`
	AdID       *string `json:"ad_id,omitempty"`

	Objective        Objective        `json:"objective"`
	OptimizationGoal OptimizationGoal `json:"optimization_goal,omitempty"`
	DestinationType  DestinationType  `json:"destination_type,omitempty"`
	CTA              CTAType          `json:"cta,omitempty"`

	Targeting   *TargetingSpec      `json:"targeting,omitempty"`
	Credentials PlatformCredentials `json:"credentials"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWorkflowSession starts an empty session for the given campaign type.
func NewWorkflowSession(t CampaignType, creds PlatformCredentials) *WorkflowSession {
	obj, _ := t.FixedObjective()
	return &WorkflowSession{
		ID:           uuid.New(),
		CampaignType: t,
		Status:       SessionStatusActive,
		Step:         StepCampaign,
		Objective:    obj,
		Targeting:    NewTargetingSpec(),
		Credentials:  creds,
	}
}

// IdentifierFor returns the remote id a completed step produced.
func (s *WorkflowSession) IdentifierFor(step WorkflowStep) *string {
	switch step {
	case StepCampaign:
		return s.CampaignID
	case StepAdSet:
		return s.AdSetID
	case StepCreative:
		return s.CreativeID
	case StepAd:
		return s.AdID
	}
	return nil
}

// ReadyFor reports whether every step before the given one has produced
// its identifier. The workflow never skips forward past a missing id.
func (s *WorkflowSession) ReadyFor(step WorkflowStep) error {
	for _, earlier := range workflowOrder {
		if earlier.Index() >= step.Index() {
			break
		}
		if earlier == StepSelectType {
			continue
		}
		if s.IdentifierFor(earlier) == nil {
			return fmt.Errorf("step %s has not produced an identifier yet", earlier)
		}
	}
	return nil
}

// SetIdentifier records a creation result. A second write to the same
// step is a bug in the caller.
func (s *WorkflowSession) SetIdentifier(step WorkflowStep, id string) error {
	if existing := s.IdentifierFor(step); existing != nil {
		return fmt.Errorf("step %s already produced identifier %s", step, *existing)
	}
	switch step {
	case StepCampaign:
		s.CampaignID = &id
	case StepAdSet:
		s.AdSetID = &id
	case StepCreative:
		s.CreativeID = &id
	case StepAd:
		s.AdID = &id
	default:
		return fmt.Errorf("step %s does not create a resource", step)
	}
	return nil
}
