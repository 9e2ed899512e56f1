package reactive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/chronicle-sim/internal/store"
)

func TestEmitThenEventsReturnsInsertionOrder(t *testing.T) {
	b := NewBus()
	b.Emit(EntityDied{ID: 1, Entity: 100})
	b.Emit(EntityDied{ID: 2, Entity: 101})

	got := b.Events()
	require.Len(t, got, 2)
	require.Equal(t, store.SimId(1), got[0].EventID())
	require.Equal(t, store.SimId(2), got[1].EventID())
}

func TestClearDropsBufferedEvents(t *testing.T) {
	b := NewBus()
	b.Emit(EntityDied{ID: 1, Entity: 100})
	b.Clear()

	require.Empty(t, b.Events())
}

func TestEventsReturnsDefensiveCopy(t *testing.T) {
	b := NewBus()
	b.Emit(EntityDied{ID: 1, Entity: 100})
	got := b.Events()
	got[0] = EntityDied{ID: 99, Entity: 1}

	require.Equal(t, store.SimId(1), b.Events()[0].EventID())
}

func TestKindStringsAreSnakeCase(t *testing.T) {
	require.Equal(t, "war_started", WarStarted{}.Kind())
	require.Equal(t, "religion_schism", ReligionSchism{}.Kind())
	require.Equal(t, "refugees_arrived", RefugeesArrived{}.Kind())
}
