package relgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func newFixture(t *testing.T) (*store.Store, store.Handle, store.Handle) {
	t.Helper()
	s := store.New(store.NewIDGenerator())
	_, a := s.Create(store.KindPerson, "Alice", simtime.Zero)
	_, b := s.Create(store.KindPerson, "Bob", simtime.Zero)
	return s, a, b
}

func TestCanonicalPairOrderingIsSymmetric(t *testing.T) {
	s, a, b := newFixture(t)
	require.Equal(t, Canonical(s, a, b), Canonical(s, b, a))
}

func TestAddEdgeAndQueryBothOrientations(t *testing.T) {
	s, a, b := newFixture(t)
	g := New()
	g.AddEdge(s, a, b, Spouse, simtime.FromYear(1))

	require.True(t, g.AreSpouses(s, a, b))
	require.True(t, g.AreSpouses(s, b, a))
}

func TestEndEdgeMakesItInactive(t *testing.T) {
	s, a, b := newFixture(t)
	g := New()
	g.AddEdge(s, a, b, Ally, simtime.Zero)
	g.EndEdge(s, a, b, Ally, simtime.FromYear(3))

	require.False(t, g.AreAllies(s, a, b))
}

func TestEndEdgeIdempotent(t *testing.T) {
	s, a, b := newFixture(t)
	g := New()
	g.AddEdge(s, a, b, Enemy, simtime.Zero)
	g.EndEdge(s, a, b, Enemy, simtime.FromYear(1))
	g.EndEdge(s, a, b, Enemy, simtime.FromYear(99))

	require.False(t, g.AreEnemies(s, a, b))
}

func TestTradeRouteDataRoundTrip(t *testing.T) {
	s, a, b := newFixture(t)
	g := New()
	data := TradeRouteData{Path: []store.Handle{a, b}, Distance: 12, Resource: "grain", Start: simtime.Zero}
	g.AddTradeRoute(s, a, b, data)

	got, ok := g.TradeRouteData(s, a, b)
	require.True(t, ok)
	require.Equal(t, data, got)
}

func TestChildrenOfAndParentOf(t *testing.T) {
	s := store.New(store.NewIDGenerator())
	_, parent := s.Create(store.KindPerson, "Parent", simtime.Zero)
	_, child1 := s.Create(store.KindPerson, "Child1", simtime.Zero)
	_, child2 := s.Create(store.KindPerson, "Child2", simtime.Zero)

	g := New()
	g.SetParent(child1, parent)
	g.SetParent(child2, parent)

	require.Equal(t, []store.Handle{child1, child2}, g.ChildrenOf(parent))
	got, ok := g.ParentOf(child1)
	require.True(t, ok)
	require.Equal(t, parent, got)
}

func TestAdjacencyIsSortedBySimIdRegardlessOfInsertionOrder(t *testing.T) {
	s := store.New(store.NewIDGenerator())
	_, r1 := s.Create(store.KindRegion, "R1", simtime.Zero)
	_, r2 := s.Create(store.KindRegion, "R2", simtime.Zero)
	_, r3 := s.Create(store.KindRegion, "R3", simtime.Zero)

	g := New()
	g.AddAdjacency(s, r1, r3)
	g.AddAdjacency(s, r1, r2)

	require.Equal(t, []store.Handle{r2, r3}, g.Neighbors(r1))
	require.True(t, g.AreAdjacent(s, r1, r2))
	require.True(t, g.AreAdjacent(s, r2, r1))
}
