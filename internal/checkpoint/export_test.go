package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func TestExportProducesOneEntityRecordPerLivingEntity(t *testing.T) {
	idgen := store.NewIDGenerator()
	s := store.New(idgen)
	g := relgraph.New()
	log := eventlog.New(idgen)

	id, h := s.Create(store.KindFaction, "Crown", simtime.Zero)
	store.Set(s, h, store.FactionCore{Stability: 0.6})
	_, endedHandle := s.Create(store.KindFaction, "Fallen", simtime.Zero)
	s.End(endedHandle, simtime.FromYear(1))

	entities, _, _, _ := Export(s, g, log)
	require.Len(t, entities, 1)
	require.Equal(t, int64(id), entities[0].ID)
	require.Contains(t, entities[0].ComponentsJSON, "Stability")
}

func TestExportIncludesGraphEdgesAndEvents(t *testing.T) {
	idgen := store.NewIDGenerator()
	s := store.New(idgen)
	g := relgraph.New()
	log := eventlog.New(idgen)

	_, a := s.Create(store.KindFaction, "A", simtime.Zero)
	_, b := s.Create(store.KindFaction, "B", simtime.Zero)
	g.AddEdge(s, a, b, relgraph.Ally, simtime.Zero)

	eventID := log.Open(eventlog.CustomEventKind("test_event"), simtime.Zero, "something happened", nil, nil)
	log.AddParticipant(eventID, s.Entity(a).ID, eventlog.Subject)

	_, relationships, events, participants := Export(s, g, log)
	require.Len(t, relationships, 1)
	require.Equal(t, "ally", relationships[0].Kind)
	require.Len(t, events, 1)
	require.Len(t, participants, 1)
}
