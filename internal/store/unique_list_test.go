package store

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/recruitbook/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entry is keyed by key; note is free text that only full equality sees.
type entry struct {
	key  string
	note string
}

var errEntryExists = errors.New("entry exists")

func newEntryList(t *testing.T) *UniqueList[entry] {
	t.Helper()
	return NewUniqueList(Rules[entry]{
		Source:       "entries",
		Same:         func(a, b entry) bool { return a.key == b.key },
		Equal:        func(a, b entry) bool { return a == b },
		ErrDuplicate: errEntryExists,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUniqueList_AddContains(t *testing.T) {
	t.Parallel()

	l := newEntryList(t)
	alice := entry{key: "alice"}

	assert.False(t, l.Contains(alice))
	require.NoError(t, l.Add(alice))
	assert.True(t, l.Contains(alice))
	assert.True(t, l.Contains(entry{key: "alice", note: "edited"}), "Contains uses identity")

	err := l.Add(alice)
	assert.ErrorIs(t, err, errEntryExists)
	assert.Equal(t, 1, l.Len(), "failed add leaves length unchanged")

	err = l.Add(entry{key: "alice", note: "different"})
	assert.ErrorIs(t, err, errEntryExists)
}

func TestUniqueList_DefaultErrors(t *testing.T) {
	t.Parallel()

	l := NewUniqueList(ComparableRules[string]("names", nil, nil), nil)
	require.NoError(t, l.Add("a"))
	assert.ErrorIs(t, l.Add("a"), ErrDuplicate)
	assert.ErrorIs(t, l.Remove("b"), ErrNotFound)
}

func TestUniqueList_Remove(t *testing.T) {
	t.Parallel()

	l := newEntryList(t)
	alice := entry{key: "alice", note: "x"}
	require.NoError(t, l.Add(alice))

	err := l.Remove(entry{key: "alice", note: "y"})
	assert.ErrorIs(t, err, ErrNotFound, "Remove uses full equality")
	assert.True(t, l.Contains(alice))

	require.NoError(t, l.Remove(entry{key: "alice", note: "x"}), "a reconstructed equal value is removable")
	assert.False(t, l.Contains(alice))
	assert.ErrorIs(t, l.Remove(entry{key: "bob"}), ErrNotFound)
}

func TestUniqueList_Set(t *testing.T) {
	t.Parallel()

	alice := entry{key: "alice"}
	bob := entry{key: "bob"}

	t.Run("edit in place keeps position", func(t *testing.T) {
		l := newEntryList(t)
		require.NoError(t, l.SetAll([]entry{alice, bob}))

		edited := entry{key: "alice", note: "new phone"}
		require.NoError(t, l.Set(alice, edited))
		assert.Equal(t, []entry{edited, bob}, l.Items())
	})

	t.Run("rename to a free key", func(t *testing.T) {
		l := newEntryList(t)
		require.NoError(t, l.SetAll([]entry{alice, bob}))

		require.NoError(t, l.Set(alice, entry{key: "carol"}))
		assert.Equal(t, []entry{{key: "carol"}, bob}, l.Items())
	})

	t.Run("target missing", func(t *testing.T) {
		l := newEntryList(t)
		require.NoError(t, l.Add(alice))

		err := l.Set(entry{key: "alice", note: "stale"}, bob)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, []entry{alice}, l.Items())
	})

	t.Run("collision with another element", func(t *testing.T) {
		l := newEntryList(t)
		require.NoError(t, l.SetAll([]entry{alice, bob}))

		err := l.Set(alice, entry{key: "bob", note: "clash"})
		assert.ErrorIs(t, err, errEntryExists)
		assert.Equal(t, []entry{alice, bob}, l.Items())
	})
}

func TestUniqueList_SetAll(t *testing.T) {
	t.Parallel()

	l := newEntryList(t)
	require.NoError(t, l.Add(entry{key: "zed"}))

	err := l.SetAll([]entry{{key: "a"}, {key: "b"}, {key: "a", note: "again"}})
	assert.ErrorIs(t, err, errEntryExists)
	assert.Equal(t, []entry{{key: "zed"}}, l.Items(), "failed bulk replace leaves contents untouched")

	input := []entry{{key: "a"}, {key: "b"}}
	require.NoError(t, l.SetAll(input))
	input[0] = entry{key: "mutated"}
	assert.Equal(t, []entry{{key: "a"}, {key: "b"}}, l.Items(), "SetAll copies its input")

	require.NoError(t, l.SetAll(nil))
	assert.Equal(t, 0, l.Len())
}

func TestUniqueList_ReplaceAndEqual(t *testing.T) {
	t.Parallel()

	src := newEntryList(t)
	require.NoError(t, src.SetAll([]entry{{key: "a"}, {key: "b"}}))

	dst := newEntryList(t)
	assert.False(t, dst.Equal(src))
	dst.Replace(src.View())
	assert.True(t, dst.Equal(src))
	assert.False(t, dst.Equal(nil))

	require.NoError(t, src.Add(entry{key: "c"}))
	assert.Equal(t, 2, dst.Len(), "Replace copies, it does not alias")
}

func TestUniqueList_ViewIsLive(t *testing.T) {
	t.Parallel()

	l := newEntryList(t)
	view := l.View()
	assert.Equal(t, 0, view.Len())

	require.NoError(t, l.Add(entry{key: "a"}))
	require.NoError(t, l.Add(entry{key: "b"}))
	assert.Equal(t, 2, view.Len())
	assert.Equal(t, "b", view.At(1).key)

	var keys []string
	for _, e := range view.All() {
		keys = append(keys, e.key)
	}
	assert.Equal(t, []string{"a", "b"}, keys)

	_, mutable := view.(*UniqueList[entry])
	assert.False(t, mutable, "the view does not expose the list")

	snapshot := view.Items()
	snapshot[0] = entry{key: "changed"}
	assert.Equal(t, "a", l.At(0).key)
}

func TestUniqueList_NotifiesAfterCommit(t *testing.T) {
	t.Parallel()

	l := newEntryList(t)
	var got []*events.ListChangedEvent
	l.Subscribe(events.HandlerFunc(func(e *events.ListChangedEvent) error {
		got = append(got, e)
		assert.Equal(t, e.Size, l.Len(), "subscribers observe the committed state")
		return nil
	}))

	require.NoError(t, l.Add(entry{key: "a"}))
	require.NoError(t, l.Add(entry{key: "b"}))
	require.NoError(t, l.Set(entry{key: "b"}, entry{key: "b", note: "x"}))
	require.NoError(t, l.Remove(entry{key: "a"}))
	require.NoError(t, l.SetAll([]entry{{key: "c"}}))

	// rejected mutations emit nothing
	assert.Error(t, l.Add(entry{key: "c"}))
	assert.Error(t, l.Remove(entry{key: "zzz"}))

	require.Len(t, got, 5)
	kinds := make([]events.ChangeKind, len(got))
	for i, e := range got {
		kinds[i] = e.Kind
		assert.Equal(t, "entries", e.Source)
	}
	assert.Equal(t, []events.ChangeKind{
		events.Added, events.Added, events.Replaced, events.Removed, events.Reset,
	}, kinds)
	assert.Equal(t, 1, got[1].Index)
	assert.Equal(t, 0, got[3].Index)
}

func TestUniqueList_FailingSubscriberDoesNotUndoCommit(t *testing.T) {
	t.Parallel()

	l := newEntryList(t)
	l.Subscribe(events.HandlerFunc(func(*events.ListChangedEvent) error {
		return errors.New("view broke")
	}))

	require.NoError(t, l.Add(entry{key: "a"}))
	assert.Equal(t, 1, l.Len())
}
