package agents

// Event types pushed to the client while a generation pipeline runs
const (
	EventStepStart    = "step-start"
	EventStepComplete = "step-complete"
	EventDone         = "done"
	EventError        = "error"
)

// ProgressEvent is one JSON event on the generation stream
type ProgressEvent struct {
	Type    string      `json:"type"`
	Step    int         `json:"step,omitempty"`
	Message string      `json:"message,omitempty"`
	Percent int         `json:"percent,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ProgressSink receives pipeline events in call order
type ProgressSink func(ProgressEvent)
