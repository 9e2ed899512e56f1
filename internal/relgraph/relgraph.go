// Package relgraph implements the auxiliary relationship graphs that sit
// outside entity composition: symmetric edges (alliances, enmities, war,
// marriage, trade routes) keyed by canonical ordered pair, and region
// adjacency with sorted neighbor lists for deterministic traversal.
package relgraph

import (
	"sort"

	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

// Kind enumerates the symmetric graph-relationship kinds.
type Kind uint8

const (
	Ally Kind = iota
	Enemy
	AtWar
	Spouse
	TradeRoute
)

// Pair is a canonically ordered (smaller-first) handle pair, used as the
// map key for every symmetric edge so that (a,b) and (b,a) always resolve
// to the same entry.
type Pair struct {
	A, B store.Handle
}

// Canonical orders a and b so the smaller SimId comes first, per the
// store's SimId ordering (not Handle.Index, which is allocation order and
// not meaningful across executors).
func Canonical(s *store.Store, a, b store.Handle) Pair {
	if s.Entity(a).ID <= s.Entity(b).ID {
		return Pair{a, b}
	}
	return Pair{b, a}
}

// Meta is the lifetime of a graph edge: start is when it began, end is nil
// while active.
type Meta struct {
	Start simtime.SimTime
	End   *simtime.SimTime
}

// IsActive reports whether the edge has not yet ended.
func (m Meta) IsActive() bool { return m.End == nil }

// TradeRouteData is the extra payload carried by TradeRoute edges.
type TradeRouteData struct {
	Path     []store.Handle // ordered region handles
	Distance uint32
	Resource string
	Start    simtime.SimTime
}

// Graph holds every symmetric relationship kind plus the parent/child
// edges the original keeps alongside them. Parent/child links are plain
// parent->children and child->parent maps that can be queried from either
// end (ChildrenOf, ParentOf); they carry no start/end lifetime and are not
// keyed by canonical pair.
type Graph struct {
	edges      map[Kind]map[Pair]Meta
	tradeData  map[Pair]TradeRouteData
	parentOf   map[store.Handle][]store.Handle // parent -> children
	childOf    map[store.Handle]store.Handle   // child -> parent
	adjacency  map[store.Handle][]store.Handle // region adjacency, sorted
}

// New returns an empty relationship graph.
func New() *Graph {
	return &Graph{
		edges:     make(map[Kind]map[Pair]Meta),
		tradeData: make(map[Pair]TradeRouteData),
		parentOf:  make(map[store.Handle][]store.Handle),
		childOf:   make(map[store.Handle]store.Handle),
		adjacency: make(map[store.Handle][]store.Handle),
	}
}

func (g *Graph) table(kind Kind) map[Pair]Meta {
	t, ok := g.edges[kind]
	if !ok {
		t = make(map[Pair]Meta)
		g.edges[kind] = t
	}
	return t
}

// AddEdge starts a symmetric edge of kind between a and b at start.
func (g *Graph) AddEdge(s *store.Store, a, b store.Handle, kind Kind, start simtime.SimTime) {
	g.table(kind)[Canonical(s, a, b)] = Meta{Start: start}
}

// AddTradeRoute starts a TradeRoute edge between a and b carrying
// path/distance/resource data, starting at data.Start.
func (g *Graph) AddTradeRoute(s *store.Store, a, b store.Handle, data TradeRouteData) {
	pair := Canonical(s, a, b)
	g.table(TradeRoute)[pair] = Meta{Start: data.Start}
	g.tradeData[pair] = data
}

// TradeRouteData returns the extra payload for a trade route edge, if any.
func (g *Graph) TradeRouteData(s *store.Store, a, b store.Handle) (TradeRouteData, bool) {
	d, ok := g.tradeData[Canonical(s, a, b)]
	return d, ok
}

// EndEdge ends a symmetric edge of kind between a and b, idempotently.
func (g *Graph) EndEdge(s *store.Store, a, b store.Handle, kind Kind, at simtime.SimTime) {
	tbl := g.table(kind)
	pair := Canonical(s, a, b)
	m, ok := tbl[pair]
	if !ok || m.End != nil {
		return
	}
	t := at
	m.End = &t
	tbl[pair] = m
}

// IsActive reports whether a kind-edge between a and b exists and has not
// ended.
func (g *Graph) IsActive(s *store.Store, a, b store.Handle, kind Kind) bool {
	m, ok := g.table(kind)[Canonical(s, a, b)]
	return ok && m.IsActive()
}

// AreAllies, AreEnemies, AreAtWar, AreSpouses are the named convenience
// queries spec §3.3/§4.2 calls out explicitly.
func (g *Graph) AreAllies(s *store.Store, a, b store.Handle) bool { return g.IsActive(s, a, b, Ally) }
func (g *Graph) AreEnemies(s *store.Store, a, b store.Handle) bool {
	return g.IsActive(s, a, b, Enemy)
}
func (g *Graph) AreAtWar(s *store.Store, a, b store.Handle) bool { return g.IsActive(s, a, b, AtWar) }
func (g *Graph) AreSpouses(s *store.Store, a, b store.Handle) bool {
	return g.IsActive(s, a, b, Spouse)
}

// SetParent records that child's parent is parent.
func (g *Graph) SetParent(child, parent store.Handle) {
	g.childOf[child] = parent
	g.parentOf[parent] = append(g.parentOf[parent], child)
}

// ChildrenOf returns every recorded child of parent, in the order they
// were added.
func (g *Graph) ChildrenOf(parent store.Handle) []store.Handle {
	return append([]store.Handle(nil), g.parentOf[parent]...)
}

// ParentOf returns child's recorded parent, if any.
func (g *Graph) ParentOf(child store.Handle) (store.Handle, bool) {
	p, ok := g.childOf[child]
	return p, ok
}

// AddAdjacency records a to b adjacency (bidirectionally), keeping each
// region's neighbor list sorted by SimId so iteration is deterministic
// regardless of insertion order.
func (g *Graph) AddAdjacency(s *store.Store, a, b store.Handle) {
	g.insertSorted(s, a, b)
	g.insertSorted(s, b, a)
}

func (g *Graph) insertSorted(s *store.Store, region, neighbor store.Handle) {
	list := g.adjacency[region]
	id := s.Entity(neighbor).ID
	i := sort.Search(len(list), func(i int) bool {
		return s.Entity(list[i]).ID >= id
	})
	if i < len(list) && list[i] == neighbor {
		return
	}
	list = append(list, store.Handle{})
	copy(list[i+1:], list[i:])
	list[i] = neighbor
	g.adjacency[region] = list
}

// Neighbors returns region's adjacent regions, sorted by SimId.
func (g *Graph) Neighbors(region store.Handle) []store.Handle {
	return append([]store.Handle(nil), g.adjacency[region]...)
}

// AreAdjacent reports whether a and b are recorded as neighbors.
func (g *Graph) AreAdjacent(s *store.Store, a, b store.Handle) bool {
	for _, n := range g.adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Edge is one exported symmetric edge, for use by the checkpoint exporter.
type Edge struct {
	Kind Kind
	Pair Pair
	Meta Meta
}

// AllEdges returns every symmetric edge across every kind, ordered by kind
// then by the source entity's SimId so export order is deterministic.
func (g *Graph) AllEdges(s *store.Store) []Edge {
	var out []Edge
	for kind, tbl := range g.edges {
		for pair, meta := range tbl {
			out = append(out, Edge{Kind: kind, Pair: pair, Meta: meta})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].Pair.A != out[j].Pair.A {
			return s.Entity(out[i].Pair.A).ID < s.Entity(out[j].Pair.A).ID
		}
		return s.Entity(out[i].Pair.B).ID < s.Entity(out[j].Pair.B).ID
	})
	return out
}

// Adjacency is one exported region-adjacency edge.
type Adjacency struct {
	Region   store.Handle
	Neighbor store.Handle
}

// AllAdjacency returns every adjacency edge exactly once (region SimId <
// neighbor SimId), ordered by region then neighbor SimId.
func (g *Graph) AllAdjacency(s *store.Store) []Adjacency {
	var out []Adjacency
	for region, neighbors := range g.adjacency {
		for _, n := range neighbors {
			if s.Entity(region).ID < s.Entity(n).ID {
				out = append(out, Adjacency{Region: region, Neighbor: n})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Region != out[j].Region {
			return s.Entity(out[i].Region).ID < s.Entity(out[j].Region).ID
		}
		return s.Entity(out[i].Neighbor).ID < s.Entity(out[j].Neighbor).ID
	})
	return out
}

func (k Kind) String() string {
	switch k {
	case Ally:
		return "ally"
	case Enemy:
		return "enemy"
	case AtWar:
		return "at_war"
	case Spouse:
		return "spouse"
	case TradeRoute:
		return "trade_route"
	default:
		return "unknown"
	}
}
