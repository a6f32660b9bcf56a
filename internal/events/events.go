package events

import (
	"time"

	"github.com/google/uuid"
)

// ChangeKind describes what happened to a list.
type ChangeKind int

const (
	// Added means one element was appended.
	Added ChangeKind = iota
	// Replaced means the element at Index was swapped for another.
	Replaced
	// Removed means the element previously at Index is gone.
	Removed
	// Reset means the whole content was replaced.
	Reset
)

// String returns the lower-case name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Replaced:
		return "replaced"
	case Removed:
		return "removed"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// ListChangedEvent describes a committed change to an observable list.
type ListChangedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Source names the list that changed, e.g. "persons" or "schedules"
	Source string `json:"source"`

	// Kind tells subscribers what sort of change occurred
	Kind ChangeKind `json:"kind"`

	// Index is the position affected by the change, or -1 for Reset
	Index int `json:"index"`

	// Size is the length of the list after the change
	Size int `json:"size"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewListChangedEvent creates a new ListChangedEvent for source.
func NewListChangedEvent(source string, kind ChangeKind, index, size int) *ListChangedEvent {
	if kind == Reset {
		index = -1
	}
	return &ListChangedEvent{
		ID:        uuid.New(),
		Source:    source,
		Kind:      kind,
		Index:     index,
		Size:      size,
		CreatedAt: time.Now(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(event *ListChangedEvent) error
}

// HandlerFunc adapts an ordinary function to the EventHandler interface.
type HandlerFunc func(event *ListChangedEvent) error

// HandleEvent calls f(event).
func (f HandlerFunc) HandleEvent(event *ListChangedEvent) error {
	return f(event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows lists to publish changes without direct knowledge of their views.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(event *ListChangedEvent) error
}
