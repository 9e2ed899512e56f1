package command

import (
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/reactive"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

// Enqueued pairs a command with the reactive event (if any) that caused a
// domain system to emit it, so the applicator can thread causality through
// to the event it opens.
type Enqueued struct {
	Cmd      Command
	CausedBy *store.SimId
}

// Applicator is the single-threaded PostUpdate stage: it drains a command
// queue in insertion order, mutating the store and relationship graph,
// recording effects, and emitting reactive events. Spec §4.5 requires this
// stage never run concurrently with itself or with Update.
type Applicator struct {
	Store   *store.Store
	Graph   *relgraph.Graph
	Events  *eventlog.Log
	Effects *EffectLog
	Bus     *reactive.Bus
}

// New returns an Applicator wired to the given collaborators.
func New(s *store.Store, g *relgraph.Graph, ev *eventlog.Log, eff *EffectLog, bus *reactive.Bus) *Applicator {
	return &Applicator{Store: s, Graph: g, Events: ev, Effects: eff, Bus: bus}
}

// Apply drains queue in order, applying each command at the given tick
// time. It is the kernel's only writer of store/graph state.
func (a *Applicator) Apply(queue []Enqueued, at simtime.SimTime) {
	for _, item := range queue {
		a.applyOne(item.Cmd, item.CausedBy, at)
	}
}

// alive resolves id to a handle, returning ok=false if id is unknown or
// the entity has already ended — the silent-drop path spec §4.9 requires
// for commands whose target died between enqueue and apply.
func (a *Applicator) alive(id store.SimId) (store.Handle, bool) {
	h, ok := a.Store.HandleFor(id)
	if !ok || !a.Store.Entity(h).Alive() {
		return store.Handle{}, false
	}
	return h, true
}

func (a *Applicator) open(kind eventlog.EventKind, at simtime.SimTime, desc string, causedBy *store.SimId) store.SimId {
	return a.Events.Open(kind, at, desc, causedBy, nil)
}

func (a *Applicator) effect(eventID, entityID store.SimId, change StateChange) {
	a.Effects.Record(Effect{EventID: eventID, EntityID: entityID, Change: change})
}

func (a *Applicator) applyOne(cmd Command, causedBy *store.SimId, at simtime.SimTime) {
	switch c := cmd.(type) {
	case AdjustFactionStats:
		a.applyAdjustFactionStats(c, causedBy, at)
	case DissolveFaction:
		a.applyDissolveFaction(c, causedBy, at)
	case SetWarGoal:
		a.applySetWarGoal(c, causedBy, at)
	case TriggerDisaster:
		a.applyTriggerDisaster(c, causedBy, at)
	case SeverTradeRoute:
		a.applySeverTradeRoute(c, causedBy, at)
	case StartPersistentDisaster:
		a.applyStartPersistentDisaster(c, causedBy, at)
	case EndDisaster:
		a.applyEndDisaster(c, causedBy, at)
	case CreateGeographicFeature:
		a.applyCreateGeographicFeature(c, causedBy, at)
	case BlendCultures:
		a.applyBlendCultures(c, causedBy, at)
	case CulturalShift:
		a.applyCulturalShift(c, causedBy, at)
	case CulturalRebellion:
		a.applyCulturalRebellion(c, causedBy, at)
	case FoundReligion:
		a.applyFoundReligion(c, causedBy, at)
	case ReligiousSchism:
		a.applyReligiousSchism(c, causedBy, at)
	case ConvertFaction:
		a.applyConvertFaction(c, causedBy, at)
	case DeclareProphecy:
		a.applyDeclareProphecy(c, causedBy, at)
	case SpreadReligion:
		a.applySpreadReligion(c, causedBy, at)
	case SetField:
		a.applySetField(c, causedBy, at)
	default:
		panic("command: unhandled command type in applicator")
	}
}
