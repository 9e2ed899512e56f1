// Package sched implements the tick-level scheduler: strict phase order
// (PreUpdate → Update → PostUpdate → Reactions → Last), the intra-Update
// domain partial order, the cadence gate, and the uniform domain-system
// harness every pluggable rule system implements against.
package sched

import (
	"math/rand"

	"github.com/talgya/chronicle-sim/internal/command"
	"github.com/talgya/chronicle-sim/internal/reactive"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

// TickFrequency is a domain system's declared cadence, ordered coarsest to
// finest so a slice of frequencies can be reduced with max() to find the
// tightest cadence among a set of systems.
type TickFrequency uint8

const (
	Yearly TickFrequency = iota
	Monthly
	Weekly
	Daily
	Hourly
)

// Due reports whether t satisfies this frequency's recurrence predicate.
func (f TickFrequency) Due(t simtime.SimTime) bool {
	switch f {
	case Yearly:
		return simtime.IsYearly(t)
	case Monthly:
		return simtime.IsMonthly(t)
	case Weekly:
		return simtime.IsWeekly(t)
	case Daily:
		return simtime.IsDaily(t)
	case Hourly:
		return simtime.IsHourly(t)
	default:
		panic("sched: unknown TickFrequency")
	}
}

// TickContext bundles everything a DomainSystem needs during Tick or
// HandleSignals: read access to the store and relationship graph, the
// domain's own RNG, a command sink, and a read-only reactive-event inbox.
// Bundled in a struct (rather than passed as separate args) so fields can
// be added later without changing the DomainSystem interface.
type TickContext struct {
	Store *store.Store
	Graph *relgraph.Graph
	RNG   *rand.Rand
	Time  simtime.SimTime
	Tick  uint64
	Inbox []reactive.Event

	queue *[]command.Enqueued
}

// Enqueue pushes cmd onto this context's command sink, optionally
// attributing it to the reactive event that caused it.
func (c *TickContext) Enqueue(cmd command.Command, causedBy *store.SimId) {
	*c.queue = append(*c.queue, command.Enqueued{Cmd: cmd, CausedBy: causedBy})
}

// DomainSystem is the uniform, object-safe interface every pluggable rule
// system implements. Systems are listed and dispatched by the scheduler
// without it knowing their concrete type.
type DomainSystem interface {
	Name() string
	Frequency() TickFrequency
	Tick(ctx *TickContext)
	HandleSignals(ctx *TickContext)
}

// NoSignalHandler is embedded by domain systems that have nothing to do
// during the Reactions phase, giving them a no-op HandleSignals without
// repeating the boilerplate in every system.
type NoSignalHandler struct{}

// HandleSignals does nothing.
func (NoSignalHandler) HandleSignals(*TickContext) {}
