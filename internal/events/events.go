package events

import "context"

// StreamWorkflow is the channel workflow events are published on.
const StreamWorkflow = "events:workflow"

// Event types
const (
	EventStepCompleted     = "workflow_step_completed"
	EventWorkflowCompleted = "workflow_completed"
	EventSessionExpired    = "workflow_session_expired"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// SessionID extracts the owning session id, empty when absent.
func (e Event) SessionID() string {
	id, _ := e.Payload["session_id"].(string)
	return id
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
