package events

import (
	"log/slog"
)

// InMemoryEventEmitter stores registered handlers in memory and dispatches
// events to them synchronously, in registration order.
//
// It is not safe for concurrent use; the model layer it serves is confined to a
// single goroutine.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
// A nil logger falls back to slog.Default().
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		handlers: make([]EventHandler, 0),
		logger:   logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds a new event handler to receive events.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered new event handler", "handler_count", len(e.handlers))
}

// HandlerCount returns the number of registered handlers.
func (e *InMemoryEventEmitter) HandlerCount() int {
	return len(e.handlers)
}

// EmitEvent publishes the given event to all registered handlers.
// If any handler returns an error, the event will still be sent to all other handlers,
// and the first error encountered will be returned.
func (e *InMemoryEventEmitter) EmitEvent(event *ListChangedEvent) error {
	if len(e.handlers) == 0 {
		return nil
	}

	// Handlers may register further handlers while running.
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)

	e.logger.Debug("emitting event",
		"event_id", event.ID,
		"source", event.Source,
		"kind", event.Kind.String(),
		"handler_count", len(handlers))

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"source", event.Source)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
