// Package eventlog is the append-only, causally-linked chronicle: every
// observable state change is attributed to exactly one Event, and every
// Event optionally points at the event that caused it.
package eventlog

import (
	"fmt"

	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

// EventKind tags what kind of thing happened. Closed constants cover the
// command-driven events this kernel knows about; Custom(tag) covers
// anything a domain system wants to log without a dedicated constant.
type EventKind store.OpenString

func (k EventKind) String() string { return string(k) }

// CustomEventKind builds an open-variant event kind.
func CustomEventKind(tag string) EventKind { return EventKind(store.Custom(tag)) }

// ParticipantRole is a participant's relation to an event.
type ParticipantRole uint8

const (
	Subject ParticipantRole = iota
	Object
	Instigator
	Witness
)

func (r ParticipantRole) String() string {
	switch r {
	case Subject:
		return "subject"
	case Object:
		return "object"
	case Instigator:
		return "instigator"
	case Witness:
		return "witness"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Participant links an entity to an event under a role.
type Participant struct {
	Entity store.SimId
	Role   ParticipantRole
}

// Event is one entry in the chronicle: append-only, strictly ordered by
// ID, optionally pointing at the event that caused it.
type Event struct {
	ID           store.SimId
	Kind         EventKind
	Timestamp    simtime.SimTime
	Description  string
	CausedBy     *store.SimId
	Data         any
	Participants []Participant
}

// Log is the append-only event store. Events are allocated their ID from
// the same IDGenerator the entity store uses, so event SimIds and entity
// SimIds interleave in a single global, monotonic sequence (an event can
// never collide with an entity for the purposes of the Checkpoint
// interface's "opaque id" fields).
type Log struct {
	idgen  *store.IDGenerator
	events []Event
	index  map[store.SimId]int
}

// New returns an empty log backed by idgen.
func New(idgen *store.IDGenerator) *Log {
	return &Log{idgen: idgen, index: make(map[store.SimId]int)}
}

// Open appends a new event and returns its SimId. causedBy is nil for a
// root event.
func (l *Log) Open(kind EventKind, at simtime.SimTime, description string, causedBy *store.SimId, data any) store.SimId {
	id := l.idgen.Next()
	l.index[id] = len(l.events)
	l.events = append(l.events, Event{
		ID:          id,
		Kind:        kind,
		Timestamp:   at,
		Description: description,
		CausedBy:    causedBy,
		Data:        data,
	})
	return id
}

// AddParticipant attaches a participant to an already-opened event.
func (l *Log) AddParticipant(event store.SimId, entity store.SimId, role ParticipantRole) {
	i, ok := l.index[event]
	if !ok {
		panic(fmt.Sprintf("eventlog: unknown event id %d", event))
	}
	l.events[i].Participants = append(l.events[i].Participants, Participant{Entity: entity, Role: role})
}

// Get returns the event with the given id, if present. The returned value
// is a copy; the log itself is append-only and never exposes a mutable
// pointer into its backing slice.
func (l *Log) Get(id store.SimId) (Event, bool) {
	i, ok := l.index[id]
	if !ok {
		return Event{}, false
	}
	return l.events[i], true
}

// All returns every event in ID (== chronological) order.
func (l *Log) All() []Event {
	return append([]Event(nil), l.events...)
}

// RootOf walks caused_by pointers from id back to its causal root, and
// returns every event on the chain from root to id inclusive. Panics if a
// cycle is detected — spec §8 requires causal chains to reach a root in
// finitely many steps, so a cycle is a programmer error, not a soft
// failure.
func (l *Log) RootOf(id store.SimId) []Event {
	var chain []Event
	seen := make(map[store.SimId]bool)
	cur := id
	for {
		if seen[cur] {
			panic(fmt.Sprintf("eventlog: cycle detected in caused_by chain at event %d", cur))
		}
		seen[cur] = true
		ev, ok := l.Get(cur)
		if !ok {
			panic(fmt.Sprintf("eventlog: unknown event id %d in caused_by chain", cur))
		}
		chain = append([]Event{ev}, chain...)
		if ev.CausedBy == nil {
			return chain
		}
		cur = *ev.CausedBy
	}
}
