package sse

// SSE event type constants
const (
	EventScreen = "screen"
	EventTimer  = "timer"
	EventCue    = "cue"
)
