package core

import "github.com/lumipallolabs/codemap/internal/ignore"

// Event describes the effect of a transition
type Event interface {
	isEvent()
}

// NoopEvent is returned when a transition changed nothing
type NoopEvent struct{}

func (NoopEvent) isEvent() {}

// SelectionChangedEvent is emitted when the cursor or scroll moved
type SelectionChangedEvent struct {
	Selected int
	Offset   int
}

func (SelectionChangedEvent) isEvent() {}

// NavigatedEvent is emitted when the current directory changed
type NavigatedEvent struct {
	From string
	To   string
}

func (NavigatedEvent) isEvent() {}

// RescannedEvent is emitted when the current directory was listed again
type RescannedEvent struct {
	Path string
}

func (RescannedEvent) isEvent() {}

// IgnoreEvent carries the outcome of an ignore request
type IgnoreEvent struct {
	Outcome ignore.Outcome
}

func (IgnoreEvent) isEvent() {}

// ErrorEvent is emitted when a scan failed; state is left as it was
type ErrorEvent struct {
	Err error
}

func (ErrorEvent) isEvent() {}
