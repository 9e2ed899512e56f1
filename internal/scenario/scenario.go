// Package scenario is the fluent test-world builder every kernel package's
// tests are expected to reach for when a scenario needs more than one or
// two bare entities: it mirrors the original's build_test_world() helper,
// letting a test assemble a small causally-linked world in a few chained
// calls instead of hand-wiring IDGenerator/Store/Graph/Log plumbing.
package scenario

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/chronicle-sim/internal/checkpoint"
	"github.com/talgya/chronicle-sim/internal/command"
	"github.com/talgya/chronicle-sim/internal/domainrng"
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/reactive"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/sched"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

// World bundles a fully wired kernel plus the scheduler driving it, the
// shape every test fixture needs.
type World struct {
	IDGen   *store.IDGenerator
	Store   *store.Store
	Graph   *relgraph.Graph
	Events  *eventlog.Log
	Effects *command.EffectLog
	Bus     *reactive.Bus
	App     *command.Applicator
	Sched   *sched.Scheduler
}

// Builder accumulates entities and relationships before producing a World.
// Event, Participant, Relate, Link, End and Register return the Builder so
// those calls chain, matching the original's single long build function
// but split into named steps; Entity, CausedEvent and Build return what
// they create.
type Builder struct {
	w         *World
	lastEvent *store.SimId
}

// New starts a Builder with a freshly wired, empty kernel seeded for
// deterministic RNG use.
func New(globalSeed uint64) *Builder {
	s := sched.New(globalSeed)
	return &Builder{
		w: &World{
			IDGen:   s.IDGen,
			Store:   s.Store,
			Graph:   s.Graph,
			Events:  s.Events,
			Effects: s.Effects,
			Bus:     s.Bus,
			App:     s.Applicator,
			Sched:   s,
		},
	}
}

// Entity creates a new entity of kind with the given name at origin. It
// does not link the entity to the Builder's last opened event; entities
// carry no founding-cause field.
func (b *Builder) Entity(kind store.EntityKind, name string, origin simtime.SimTime) (store.SimId, store.Handle) {
	return b.w.Store.Create(kind, name, origin)
}

// Event opens a new chronicle entry and remembers it as the causal parent
// for anything the caller builds next, until the next call to Event.
func (b *Builder) Event(kind eventlog.EventKind, at simtime.SimTime, description string) *Builder {
	id := b.w.Events.Open(kind, at, description, b.lastEvent, nil)
	b.lastEvent = &id
	return b
}

// CausedEvent opens an event explicitly caused by a prior one, without
// disturbing the Builder's "last event" pointer.
func (b *Builder) CausedEvent(kind eventlog.EventKind, at simtime.SimTime, description string, causedBy store.SimId) store.SimId {
	return b.w.Events.Open(kind, at, description, &causedBy, nil)
}

// Participant attaches entity to event under role.
func (b *Builder) Participant(event, entity store.SimId, role eventlog.ParticipantRole) *Builder {
	b.w.Events.AddParticipant(event, entity, role)
	return b
}

// Relate establishes a symmetric graph relationship between a and b.
func (b *Builder) Relate(a, b2 store.Handle, kind relgraph.Kind, start simtime.SimTime) *Builder {
	b.w.Graph.AddEdge(b.w.Store, a, b2, kind, start)
	return b
}

// Link establishes a structural edge from source to target.
func (b *Builder) Link(source, target store.Handle, kind store.EdgeKind) *Builder {
	b.w.Store.Link(source, target, kind)
	return b
}

// End ends an entity's lifetime at the given time.
func (b *Builder) End(h store.Handle, at simtime.SimTime) *Builder {
	b.w.Store.End(h, at)
	return b
}

// Register attaches a domain system to the built world's scheduler.
func (b *Builder) Register(domain domainrng.Domain, sys sched.DomainSystem) *Builder {
	b.w.Sched.Register(domain, sys)
	return b
}

// Build finalizes and returns the assembled World.
func (b *Builder) Build() *World {
	return b.w
}

// RunTicks advances the world's scheduler by n ticks using the given
// executor mode, the normal production entry point (unlike
// SkipToMonthBoundaryForTesting below, this is safe to call from anything).
func (w *World) RunTicks(n int, parallel bool) {
	for i := 0; i < n; i++ {
		w.Sched.Tick(parallel)
	}
}

// SkipToMonthBoundaryForTesting snaps the clock directly to the next month
// boundary, skipping every intermediate tick (no systems run, no events are
// produced for the skipped minutes). This mirrors the original's
// fast-forward test helper and carries the same warning: it is a testing
// convenience ONLY. Production code and any code reachable from
// sched.Scheduler.Tick must never call this — skipping ticks silently
// drops whatever a cadenced system would have done during them.
func (w *World) SkipToMonthBoundaryForTesting() {
	for !w.Sched.Clock.IsMonthStart() {
		w.Sched.Clock = w.Sched.Clock.Advance()
	}
}

// Summary renders a human-readable one-liner describing how much history
// the world has accumulated so far: humanized tick and event counts and
// how long ago (relative to an imagined "now") the run started, using the
// same humanize.Comma/humanize.RelTime formatting the teacher reaches for
// in its own run reports.
func (w *World) Summary(runStarted time.Time) string {
	return fmt.Sprintf(
		"tick %s (%s), %s entities, %s events — run started %s",
		humanize.Comma(int64(w.Sched.TickCount)),
		w.Sched.Clock.String(),
		humanize.Comma(int64(len(w.Store.AllEntities()))),
		humanize.Comma(int64(len(w.Events.All()))),
		humanize.RelTime(runStarted, time.Now(), "ago", "from now"),
	)
}

// Snapshot exports the current world state through the checkpoint package's
// flat record shapes, for tests asserting on persisted-shape output.
func (w *World) Snapshot() (entities []checkpoint.EntityRecord, relationships []checkpoint.RelationshipRecord, events []checkpoint.EventRecord, participants []checkpoint.ParticipantRecord) {
	return checkpoint.Export(w.Store, w.Graph, w.Events)
}
