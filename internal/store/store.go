package store

import (
	"fmt"
	"reflect"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/talgya/chronicle-sim/internal/simtime"
)

// EdgeKind enumerates the structural relationship kinds: 1-to-many edges
// owned by their source, with an automatically maintained back-index on
// the target. This set is closed — unlike entity/event/relationship kind
// tags, structural edges are part of the store's own invariant machinery
// (spec §3.3 lists exactly these nine).
type EdgeKind uint8

const (
	LocatedIn EdgeKind = iota
	MemberOf
	LeaderOf
	HeldBy
	HiredBy
	FlowsThrough
	Exploits
	Parent
	Child
)

func (k EdgeKind) String() string {
	switch k {
	case LocatedIn:
		return "located_in"
	case MemberOf:
		return "member_of"
	case LeaderOf:
		return "leader_of"
	case HeldBy:
		return "held_by"
	case HiredBy:
		return "hired_by"
	case FlowsThrough:
		return "flows_through"
	case Exploits:
		return "exploits"
	case Parent:
		return "parent"
	case Child:
		return "child"
	default:
		return fmt.Sprintf("edge_kind(%d)", uint8(k))
	}
}

// Store owns every entity, its components, and its structural
// relationships. Iteration is always ordered by SimId so that parallel and
// single-threaded executors observe entities in the same sequence.
type Store struct {
	idgen *IDGenerator

	entities []Entity          // indexed by Handle.Index
	idIndex  map[SimId]Handle

	components map[reflect.Type]map[Handle]any

	// forward[kind][source] = target (single-valued: a settlement has
	// exactly one LocatedIn region, a person at most one MemberOf faction).
	forward map[EdgeKind]map[Handle]Handle
	// backward[kind][target] = sources, the maintained reverse index.
	backward map[EdgeKind]map[Handle][]Handle
}

// New returns an empty store backed by the given ID generator. Sharing one
// generator across stores is never meaningful; callers construct exactly
// one IDGenerator per simulation run.
func New(idgen *IDGenerator) *Store {
	return &Store{
		idgen:      idgen,
		idIndex:    make(map[SimId]Handle),
		components: make(map[reflect.Type]map[Handle]any),
		forward:    make(map[EdgeKind]map[Handle]Handle),
		backward:   make(map[EdgeKind]map[Handle][]Handle),
	}
}

// Create assigns a fresh SimId, opens the entity's lifetime at origin, and
// returns both the SimId and the Handle used for all subsequent component
// and relationship operations.
func (s *Store) Create(kind EntityKind, name string, origin simtime.SimTime) (SimId, Handle) {
	id := s.idgen.Next()
	h := Handle{Index: uint32(len(s.entities))}
	s.entities = append(s.entities, Entity{
		ID:     id,
		Handle: h,
		Kind:   kind,
		Name:   name,
		Origin: origin,
	})
	s.idIndex[id] = h
	return id, h
}

// Entity returns the entity at h. Panics if h is out of range: a Handle
// that was never issued by this store is a programmer error, not a soft
// failure.
func (s *Store) Entity(h Handle) *Entity {
	if int(h.Index) >= len(s.entities) {
		panic(fmt.Sprintf("store: handle %v out of range", h))
	}
	return &s.entities[h.Index]
}

// HandleFor translates a SimId to its Handle. Returns false if id is
// unknown to this store.
func (s *Store) HandleFor(id SimId) (Handle, bool) {
	h, ok := s.idIndex[id]
	return h, ok
}

// End sets the entity's end time, idempotently: ending an already-ended
// entity with a later time is a no-op, matching "end is set exactly once".
func (s *Store) End(h Handle, at simtime.SimTime) {
	e := s.Entity(h)
	if e.End != nil {
		return
	}
	t := at
	e.End = &t
}

// Rename updates the entity's display name.
func (s *Store) Rename(h Handle, name string) {
	s.Entity(h).Name = name
}

// componentTable returns (creating if absent) the table for component
// type C, keyed by its reflect.Type so distinct component structs never
// collide even if structurally identical.
func componentTable[C any](s *Store) map[Handle]any {
	t := reflect.TypeOf((*C)(nil)).Elem()
	tbl, ok := s.components[t]
	if !ok {
		tbl = make(map[Handle]any)
		s.components[t] = tbl
	}
	return tbl
}

// Get returns entity h's component of type C, and whether it was present.
func Get[C any](s *Store, h Handle) (C, bool) {
	tbl := componentTable[C](s)
	v, ok := tbl[h]
	if !ok {
		var zero C
		return zero, false
	}
	return v.(C), true
}

// Set attaches or replaces entity h's component of type C.
func Set[C any](s *Store, h Handle, c C) {
	componentTable[C](s)[h] = c
}

// Mutate loads entity h's component of type C (zero value if absent),
// applies fn, and writes the result back. This is the store's only
// update-in-place primitive; callers that need clamped numeric writes use
// store.Clamp01 inside fn.
func Mutate[C any](s *Store, h Handle, fn func(c C) C) {
	cur, _ := Get[C](s, h)
	Set[C](s, h, fn(cur))
}

// Remove detaches entity h's component of type C.
func Remove[C any](s *Store, h Handle) {
	delete(componentTable[C](s), h)
}

// Query returns the handles of every living entity carrying component type
// C, ordered by SimId. Ordering by SimId (rather than Handle.Index, which
// is allocation order) makes the result independent of which executor
// produced it.
func Query[C any](s *Store) []Handle {
	tbl := componentTable[C](s)
	out := make([]Handle, 0, len(tbl))
	for h := range tbl {
		if s.Entity(h).Alive() {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return s.Entity(out[i]).ID < s.Entity(out[j]).ID
	})
	return out
}

// AllEntities returns every living entity's handle, ordered by SimId.
func (s *Store) AllEntities() []Handle {
	out := make([]Handle, 0, len(s.entities))
	for i := range s.entities {
		h := Handle{Index: uint32(i)}
		if s.Entity(h).Alive() {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return s.Entity(out[i]).ID < s.Entity(out[j]).ID
	})
	return out
}

// ComponentSnapshot returns every component currently attached to h, keyed
// by the component struct's bare type name. Used only by the checkpoint
// exporter: the store has no closed component schema to map onto
// individual columns, so a checkpoint serializes this snapshot as JSON.
func (s *Store) ComponentSnapshot(h Handle) map[string]any {
	out := make(map[string]any)
	for t, tbl := range s.components {
		if v, ok := tbl[h]; ok {
			out[t.Name()] = v
		}
	}
	return out
}

// Link establishes a structural edge: source -> target under kind, updating
// the back-index atomically. A source may hold only one active target per
// kind at a time (re-linking replaces the previous target and removes the
// stale back-index entry), matching "every living settlement has a
// LocatedIn edge to exactly one Region".
func (s *Store) Link(source, target Handle, kind EdgeKind) {
	fwd, ok := s.forward[kind]
	if !ok {
		fwd = make(map[Handle]Handle)
		s.forward[kind] = fwd
	}
	if prev, had := fwd[source]; had {
		s.removeBack(kind, prev, source)
	}
	fwd[source] = target

	back, ok := s.backward[kind]
	if !ok {
		back = make(map[Handle][]Handle)
		s.backward[kind] = back
	}
	back[target] = append(back[target], source)
}

// Unlink removes the structural edge from source under kind, if present.
func (s *Store) Unlink(source Handle, kind EdgeKind) {
	fwd, ok := s.forward[kind]
	if !ok {
		return
	}
	target, had := fwd[source]
	if !had {
		return
	}
	delete(fwd, source)
	s.removeBack(kind, target, source)
}

func (s *Store) removeBack(kind EdgeKind, target, source Handle) {
	back := s.backward[kind]
	list := back[target]
	for i, h := range list {
		if h == source {
			back[target] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

// Target returns the structural target of source under kind, if any.
func (s *Store) Target(source Handle, kind EdgeKind) (Handle, bool) {
	t, ok := s.forward[kind][source]
	return t, ok
}

// Sources returns every source linked to target under kind, in the order
// they were linked (insertion order; stable because a given source can
// appear at most once per kind at a time).
func (s *Store) Sources(target Handle, kind EdgeKind) []Handle {
	return append([]Handle(nil), s.backward[kind][target]...)
}

// StructuralEdge is one exported forward edge, for use by the checkpoint
// exporter.
type StructuralEdge struct {
	Kind   EdgeKind
	Source Handle
	Target Handle
}

// AllStructuralEdges returns every active forward edge across every kind,
// ordered by kind then by source SimId so export order is deterministic.
func (s *Store) AllStructuralEdges() []StructuralEdge {
	var out []StructuralEdge
	for kind, fwd := range s.forward {
		for source, target := range fwd {
			out = append(out, StructuralEdge{Kind: kind, Source: source, Target: target})
		}
		_ = kind
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return s.Entity(out[i].Source).ID < s.Entity(out[j].Source).ID
	})
	return out
}

// Clamp01 clamps a normalized field to [0,1], the write-time enforcement
// spec §3.2 requires for stability/happiness/legitimacy/prestige/trust/
// loyalty/accuracy/completeness/condition/resistance/fervor/proselytism/
// orthodoxy.
func Clamp01[F constraints.Float](v F) F {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
