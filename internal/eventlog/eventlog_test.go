package eventlog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func TestOpenAssignsMonotonicIds(t *testing.T) {
	l := New(store.NewIDGenerator())
	id1 := l.Open(CustomEventKind("birth"), simtime.Zero, "Alice is born", nil, nil)
	id2 := l.Open(CustomEventKind("birth"), simtime.Zero, "Bob is born", nil, nil)
	require.Less(t, id1, id2)
}

func TestParticipantsAttachInOrder(t *testing.T) {
	l := New(store.NewIDGenerator())
	ev := l.Open(CustomEventKind("marriage"), simtime.Zero, "Alice and Bob wed", nil, nil)
	l.AddParticipant(ev, store.SimId(1), Subject)
	l.AddParticipant(ev, store.SimId(2), Object)

	got, ok := l.Get(ev)
	require.True(t, ok)
	require.Equal(t, []Participant{{store.SimId(1), Subject}, {store.SimId(2), Object}}, got.Participants)
}

func TestCausalChainReachesRoot(t *testing.T) {
	l := New(store.NewIDGenerator())
	root := l.Open(CustomEventKind("death"), simtime.Zero, "death", nil, nil)
	child := l.Open(CustomEventKind("spouse_end"), simtime.Zero, "marriage ends", &root, nil)

	chain := l.RootOf(child)
	require.Len(t, chain, 2)
	require.Equal(t, root, chain[0].ID)
	require.Equal(t, child, chain[1].ID)
}

func TestAllPreservesOrder(t *testing.T) {
	l := New(store.NewIDGenerator())
	a := l.Open(CustomEventKind("a"), simtime.Zero, "a", nil, nil)
	b := l.Open(CustomEventKind("b"), simtime.Zero, "b", nil, nil)

	all := l.All()
	require.Equal(t, a, all[0].ID)
	require.Equal(t, b, all[1].ID)
}

func TestGetUnknownReturnsFalse(t *testing.T) {
	l := New(store.NewIDGenerator())
	_, ok := l.Get(store.SimId(999))
	require.False(t, ok)
}
