package store

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/phrazzld/recruitbook/internal/events"
)

// FilteredList is a read-only projection of a source list through a predicate.
//
// The projection is recomputed in full whenever the source changes or the
// predicate is replaced, so it is always the subset of the source that satisfies
// the predicate, in source order.
type FilteredList[T any] struct {
	source    ListView[T]
	predicate Predicate[T]
	items     []T
	emitter   *events.InMemoryEventEmitter
	name      string
}

// NewFilteredList creates a projection of source that initially shows every element.
func NewFilteredList[T any](name string, source ListView[T], logger *slog.Logger) *FilteredList[T] {
	if logger == nil {
		logger = slog.Default()
	}
	f := &FilteredList[T]{
		source:    source,
		predicate: ShowAll[T],
		emitter:   events.NewInMemoryEventEmitter(logger.With("list", name)),
		name:      name,
	}
	f.recompute()
	source.Subscribe(events.HandlerFunc(func(*events.ListChangedEvent) error {
		f.refresh()
		return nil
	}))
	return f
}

// SetPredicate replaces the active predicate wholesale. A nil predicate shows
// every element.
func (f *FilteredList[T]) SetPredicate(predicate Predicate[T]) {
	if predicate == nil {
		predicate = ShowAll[T]
	}
	f.predicate = predicate
	f.refresh()
}

// Predicate returns the active predicate.
func (f *FilteredList[T]) Predicate() Predicate[T] {
	return f.predicate
}

// Len returns the number of visible elements.
func (f *FilteredList[T]) Len() int {
	return len(f.items)
}

// At returns the visible element at index i. It panics if i is out of range.
func (f *FilteredList[T]) At(i int) T {
	return f.items[i]
}

// First returns the first visible element, if any.
func (f *FilteredList[T]) First() (T, bool) {
	if len(f.items) == 0 {
		var zero T
		return zero, false
	}
	return f.items[0], true
}

// Items returns a snapshot copy of the visible elements.
func (f *FilteredList[T]) Items() []T {
	return slices.Clone(f.items)
}

// All iterates over a snapshot of the visible elements.
func (f *FilteredList[T]) All() iter.Seq2[int, T] {
	return all(f.Items())
}

// Subscribe registers handler to be called after every recomputation.
func (f *FilteredList[T]) Subscribe(handler events.EventHandler) {
	f.emitter.RegisterHandler(handler)
}

func (f *FilteredList[T]) refresh() {
	f.recompute()
	_ = f.emitter.EmitEvent(events.NewListChangedEvent(f.name, events.Reset, -1, len(f.items)))
}

func (f *FilteredList[T]) recompute() {
	visible := make([]T, 0, f.source.Len())
	for _, item := range f.source.All() {
		if f.predicate(item) {
			visible = append(visible, item)
		}
	}
	f.items = visible
}
