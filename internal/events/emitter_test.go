package events

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryEventEmitter(t *testing.T) {
	// Create a minimal logger that discards output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		err := emitter.EmitEvent(NewListChangedEvent("persons", Added, 0, 1))
		assert.NoError(t, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		emitter.RegisterHandler(&MockEventHandler{})
		assert.Equal(t, 1, emitter.HandlerCount())
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := NewListChangedEvent("persons", Replaced, 2, 5)
		err := emitter.EmitEvent(event)
		assert.NoError(t, err)

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("handlers run in registration order", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		var order []int
		for i := range 3 {
			emitter.RegisterHandler(HandlerFunc(func(*ListChangedEvent) error {
				order = append(order, i)
				return nil
			}))
		}

		assert.NoError(t, emitter.EmitEvent(NewListChangedEvent("persons", Reset, 0, 0)))
		assert.Equal(t, []int{0, 1, 2}, order)
	})

	t.Run("handler registered during dispatch sees next event only", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		late := &MockEventHandler{}
		registered := false
		emitter.RegisterHandler(HandlerFunc(func(*ListChangedEvent) error {
			if !registered {
				emitter.RegisterHandler(late)
				registered = true
			}
			return nil
		}))

		assert.NoError(t, emitter.EmitEvent(NewListChangedEvent("persons", Added, 0, 1)))
		assert.Equal(t, 0, late.HandledCount)

		assert.NoError(t, emitter.EmitEvent(NewListChangedEvent("persons", Added, 1, 2)))
		assert.Equal(t, 1, late.HandledCount)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		successHandler := &MockEventHandler{}
		failingHandler := &MockEventHandler{
			HandlerError: errors.New("handler error"),
		}
		secondFailure := &MockEventHandler{
			HandlerError: errors.New("second error"),
		}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)
		emitter.RegisterHandler(secondFailure)

		err := emitter.EmitEvent(NewListChangedEvent("persons", Removed, 0, 0))
		assert.Error(t, err)
		assert.Equal(t, "handler error", err.Error(), "first error wins")

		assert.Equal(t, 1, successHandler.HandledCount)
		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, secondFailure.HandledCount)
	})
}
