package events

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewListChangedEvent(t *testing.T) {
	event := NewListChangedEvent("persons", Added, 3, 4)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "persons", event.Source)
	assert.Equal(t, Added, event.Kind)
	assert.Equal(t, 3, event.Index)
	assert.Equal(t, 4, event.Size)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	reset := NewListChangedEvent("persons", Reset, 7, 0)
	assert.Equal(t, -1, reset.Index, "reset events carry no index")
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "replaced", Replaced.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "reset", Reset.String())
	assert.Equal(t, "unknown", ChangeKind(42).String())
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *ListChangedEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(event *ListChangedEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestHandlerFunc(t *testing.T) {
	var got *ListChangedEvent
	expectedErr := errors.New("handler error")
	handler := HandlerFunc(func(event *ListChangedEvent) error {
		got = event
		return expectedErr
	})

	event := NewListChangedEvent("schedules", Removed, 0, 0)
	err := handler.HandleEvent(event)
	assert.Equal(t, expectedErr, err)
	assert.Same(t, event, got)
}
