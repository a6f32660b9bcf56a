package store

import (
	"iter"

	"github.com/phrazzld/recruitbook/internal/events"
)

// ListView is a live, read-only view of an observable list.
// Holders can read and subscribe but never mutate the underlying list.
type ListView[T any] interface {
	// Len returns the current number of elements.
	Len() int

	// At returns the element at index i. It panics if i is out of range.
	At(i int) T

	// Items returns a snapshot copy of the elements in order.
	Items() []T

	// All iterates over the elements in order.
	All() iter.Seq2[int, T]

	// Subscribe registers handler to be called synchronously after every change.
	Subscribe(handler events.EventHandler)
}

// Predicate selects the elements shown by a FilteredList.
type Predicate[T any] func(T) bool

// ShowAll is the predicate that accepts every element.
func ShowAll[T any](T) bool { return true }

// readOnly hides the mutating methods of the wrapped list.
type readOnly[T any] struct {
	list *UniqueList[T]
}

func (v readOnly[T]) Len() int { return v.list.Len() }
func (v readOnly[T]) At(i int) T { return v.list.At(i) }
func (v readOnly[T]) Items() []T { return v.list.Items() }
func (v readOnly[T]) All() iter.Seq2[int, T] { return v.list.All() }
func (v readOnly[T]) Subscribe(handler events.EventHandler) { v.list.Subscribe(handler) }

// all iterates over a slice snapshot taken when iteration starts.
func all[T any](items []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range items {
			if !yield(i, item) {
				return
			}
		}
	}
}
