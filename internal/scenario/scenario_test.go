package scenario

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func TestBuilderAssemblesACausallyLinkedWorld(t *testing.T) {
	b := New(7)

	founding := b.Event(eventlog.CustomEventKind("settlement_founded"), simtime.FromYear(50), "Ironhold founded")
	_ = founding
	ironholdID, ironholdHandle := b.Entity(store.KindSettlement, "Ironhold", simtime.FromYear(50))

	b.Event(eventlog.CustomEventKind("birth"), simtime.FromYear(100), "Alice is born")
	aliceID, aliceHandle := b.Entity(store.KindPerson, "Alice", simtime.FromYear(100))

	b.Event(eventlog.CustomEventKind("birth"), simtime.FromYear(105), "Bob is born")
	bobID, bobHandle := b.Entity(store.KindPerson, "Bob", simtime.FromYear(105))

	union := b.w.Events.Open(eventlog.CustomEventKind("union"), simtime.FromYear(125), "Alice and Bob wed", nil, nil)
	b.Relate(aliceHandle, bobHandle, relgraph.Spouse, simtime.FromYear(125))
	b.Participant(union, aliceID, eventlog.Subject)
	b.Participant(union, bobID, eventlog.Object)

	world := b.Build()

	require.True(t, world.Graph.AreSpouses(world.Store, aliceHandle, bobHandle))
	require.Len(t, world.Events.All(), 4)
	require.NotZero(t, ironholdID)
}

func TestRunTicksAdvancesClock(t *testing.T) {
	world := New(1).Build()
	world.RunTicks(60, false)
	require.Equal(t, uint32(1), world.Sched.Clock.Hour())
}

func TestSkipToMonthBoundaryForTestingSnapsToMonthStart(t *testing.T) {
	world := New(1).Build()
	world.Sched.Clock = simtime.New(0, 5, 10, 0)
	world.SkipToMonthBoundaryForTesting()
	require.True(t, world.Sched.Clock.IsMonthStart())
}
