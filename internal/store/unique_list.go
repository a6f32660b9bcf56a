package store

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/phrazzld/recruitbook/internal/events"
)

// Rules describes the two equality relations of an element type and the errors a
// UniqueList reports when they are violated.
type Rules[T any] struct {
	// Source names the list in change events, e.g. "persons".
	Source string

	// Same is the identity relation. No two elements of a list are Same.
	Same func(a, b T) bool

	// Equal is the full relation used to locate elements for Set and Remove.
	Equal func(a, b T) bool

	// ErrDuplicate is returned when an element would collide under Same.
	// Defaults to ErrDuplicate.
	ErrDuplicate error

	// ErrNotFound is returned when no element matches under Equal.
	// Defaults to ErrNotFound.
	ErrNotFound error
}

// ComparableRules returns rules for value types whose identity and full
// equality are both ==.
func ComparableRules[T comparable](source string, errDuplicate, errNotFound error) Rules[T] {
	eq := func(a, b T) bool { return a == b }
	return Rules[T]{
		Source:       source,
		Same:         eq,
		Equal:        eq,
		ErrDuplicate: errDuplicate,
		ErrNotFound:  errNotFound,
	}
}

// UniqueList is an ordered list that enforces uniqueness under Rules.Same.
//
// Contains and Add use the identity relation; Set and Remove locate their target
// with the full relation. Removing an element that was edited but not replaced
// therefore fails with ErrNotFound, forcing edits through Set.
//
// Every method validates before it commits and never partially mutates. After a
// commit, subscribers are notified synchronously. UniqueList is not safe for
// concurrent use.
type UniqueList[T any] struct {
	rules   Rules[T]
	items   []T
	emitter *events.InMemoryEventEmitter
}

// NewUniqueList creates an empty list governed by rules.
func NewUniqueList[T any](rules Rules[T], logger *slog.Logger) *UniqueList[T] {
	if rules.ErrDuplicate == nil {
		rules.ErrDuplicate = ErrDuplicate
	}
	if rules.ErrNotFound == nil {
		rules.ErrNotFound = ErrNotFound
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UniqueList[T]{
		rules:   rules,
		emitter: events.NewInMemoryEventEmitter(logger.With("list", rules.Source)),
	}
}

// Contains reports whether an element Same as item is present.
func (l *UniqueList[T]) Contains(item T) bool {
	return slices.ContainsFunc(l.items, func(existing T) bool {
		return l.rules.Same(existing, item)
	})
}

// Add appends item. It fails with Rules.ErrDuplicate if an element Same as item exists.
func (l *UniqueList[T]) Add(item T) error {
	if l.Contains(item) {
		return l.rules.ErrDuplicate
	}
	l.items = append(l.items, item)
	l.notify(events.Added, len(l.items)-1)
	return nil
}

// Set replaces target with edited in place.
// It fails with Rules.ErrNotFound if no element Equal to target exists, and with
// Rules.ErrDuplicate if edited is not Same as target but is Same as another element.
func (l *UniqueList[T]) Set(target, edited T) error {
	index := l.indexOf(target)
	if index < 0 {
		return l.rules.ErrNotFound
	}
	if !l.rules.Same(target, edited) && l.Contains(edited) {
		return l.rules.ErrDuplicate
	}
	l.items[index] = edited
	l.notify(events.Replaced, index)
	return nil
}

// Remove deletes the element Equal to item.
// It fails with Rules.ErrNotFound if there is no such element.
func (l *UniqueList[T]) Remove(item T) error {
	index := l.indexOf(item)
	if index < 0 {
		return l.rules.ErrNotFound
	}
	l.items = slices.Delete(l.items, index, index+1)
	l.notify(events.Removed, index)
	return nil
}

// SetAll replaces the contents with items.
// It fails with Rules.ErrDuplicate if any two of items are Same; the list is
// left untouched in that case.
func (l *UniqueList[T]) SetAll(items []T) error {
	if !l.allUnique(items) {
		return l.rules.ErrDuplicate
	}
	l.items = slices.Clone(items)
	l.notify(events.Reset, -1)
	return nil
}

// Replace replaces the contents with those of other.
func (l *UniqueList[T]) Replace(other ListView[T]) {
	l.items = other.Items()
	l.notify(events.Reset, -1)
}

// Len returns the number of elements.
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics if i is out of range.
func (l *UniqueList[T]) At(i int) T {
	return l.items[i]
}

// Items returns a snapshot copy of the elements in order.
func (l *UniqueList[T]) Items() []T {
	return slices.Clone(l.items)
}

// All iterates over a snapshot of the elements in order.
func (l *UniqueList[T]) All() iter.Seq2[int, T] {
	return all(l.Items())
}

// Equal reports whether both lists hold pairwise Equal elements in the same order.
func (l *UniqueList[T]) Equal(other *UniqueList[T]) bool {
	if other == nil {
		return false
	}
	return slices.EqualFunc(l.items, other.items, l.rules.Equal)
}

// Subscribe registers handler to be called after every committed change.
func (l *UniqueList[T]) Subscribe(handler events.EventHandler) {
	l.emitter.RegisterHandler(handler)
}

// View returns a live read-only view of the list.
func (l *UniqueList[T]) View() ListView[T] {
	return readOnly[T]{list: l}
}

func (l *UniqueList[T]) indexOf(item T) int {
	return slices.IndexFunc(l.items, func(existing T) bool {
		return l.rules.Equal(existing, item)
	})
}

func (l *UniqueList[T]) allUnique(items []T) bool {
	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			if l.rules.Same(items[i], items[j]) {
				return false
			}
		}
	}
	return true
}

func (l *UniqueList[T]) notify(kind events.ChangeKind, index int) {
	// Handler failures are logged by the emitter; the mutation has already committed.
	_ = l.emitter.EmitEvent(events.NewListChangedEvent(l.rules.Source, kind, index, len(l.items)))
}
