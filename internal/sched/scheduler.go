package sched

import (
	"sync"

	"github.com/talgya/chronicle-sim/internal/command"
	"github.com/talgya/chronicle-sim/internal/domainrng"
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/reactive"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

// tier groups domains that may run concurrently with each other but must
// run after every earlier tier and before every later one, per the
// Environment → Buildings → {middle domains} → Agency → Actions partial
// order. Domains within a tier are still iterated in a fixed declared
// order so that, regardless of executor mode, per-domain command batches
// are concatenated identically — only which domains may overlap in wall
// clock time differs between executors, never the merge order.
var tiers = [][]domainrng.Domain{
	{domainrng.Environment},
	{domainrng.Buildings},
	{
		domainrng.Demographics, domainrng.Economy, domainrng.Education,
		domainrng.Disease, domainrng.Culture, domainrng.Religion,
		domainrng.Crime, domainrng.Reputation, domainrng.Knowledge,
		domainrng.Items, domainrng.Migration, domainrng.Politics,
		domainrng.Conflicts,
	},
	{domainrng.Agency},
	{domainrng.Actions},
}

// Scheduler drives the simulation one tick at a time, in the strict phase
// order PreUpdate → Update → PostUpdate → Reactions → Last, threading the
// clock, per-domain RNG, event log, effect log and reactive bus through
// every phase.
type Scheduler struct {
	Store      *store.Store
	Graph      *relgraph.Graph
	Events     *eventlog.Log
	Effects    *command.EffectLog
	Bus        *reactive.Bus
	Applicator *command.Applicator
	RNG        *domainrng.Distributor
	IDGen      *store.IDGenerator

	Clock     simtime.SimTime
	TickCount uint64

	systemsByDomain map[domainrng.Domain][]DomainSystem
	reactionsCarry  []command.Enqueued
}

// New returns a Scheduler with freshly wired kernel collaborators, starting
// its clock at simtime.Zero and its tick counter at zero.
func New(globalSeed uint64) *Scheduler {
	idgen := store.NewIDGenerator()
	s := store.New(idgen)
	g := relgraph.New()
	log := eventlog.New(idgen)
	eff := command.NewEffectLog()
	bus := reactive.NewBus()
	return &Scheduler{
		Store:           s,
		Graph:           g,
		Events:          log,
		Effects:         eff,
		Bus:             bus,
		Applicator:      command.New(s, g, log, eff, bus),
		RNG:             domainrng.NewDistributor(globalSeed),
		IDGen:           idgen,
		Clock:           simtime.Zero,
		systemsByDomain: make(map[domainrng.Domain][]DomainSystem),
	}
}

// Register attaches sys to domain. Systems run in registration order
// within their domain, and domains run in the fixed tier order declared
// above regardless of registration order across domains.
func (s *Scheduler) Register(domain domainrng.Domain, sys DomainSystem) {
	s.systemsByDomain[domain] = append(s.systemsByDomain[domain], sys)
}

// Tick advances the simulation by exactly one minute, running every
// registered system whose cadence is due at the current clock value. When
// parallel is true, domains within a tier run concurrently (each writing
// into its own isolated command slice); when false, everything runs on the
// calling goroutine. Both modes MUST and do produce byte-identical event
// and effect sequences for the same seed, because command batches are
// always flattened in the same fixed per-domain, per-system order
// regardless of which goroutine finished first.
func (s *Scheduler) Tick(parallel bool) {
	// PreUpdate: snapshot last tick's reactive events as this tick's
	// Update-phase inbox, then clear the bus and reseed every domain RNG.
	inbox := s.Bus.Events()
	s.Bus.Clear()
	s.RNG.Reseed(s.TickCount)

	// Commands deferred from the previous tick's Reactions phase apply
	// before this tick's own Update-phase commands, since they were
	// logically enqueued earlier.
	pending := append([]command.Enqueued(nil), s.reactionsCarry...)
	s.reactionsCarry = nil

	// Update
	pending = append(pending, s.runPhase(parallel, inbox, func(ctx *TickContext, sys DomainSystem) {
		sys.Tick(ctx)
	})...)

	// PostUpdate
	s.Applicator.Apply(pending, s.Clock)

	// Reactions
	reactionEvents := s.Bus.Events()
	s.reactionsCarry = s.runPhase(parallel, reactionEvents, func(ctx *TickContext, sys DomainSystem) {
		sys.HandleSignals(ctx)
	})

	// Last
	s.Clock = s.Clock.Advance()
	s.TickCount++
}

// runPhase invokes call for every due system across every tier, returning
// every emitted command flattened in fixed declared order. Tiers run
// sequentially; within a tier, systems run concurrently when parallel is
// true and sequentially otherwise. Each system writes into its own queue
// slice so ordering never depends on goroutine completion order.
func (s *Scheduler) runPhase(parallel bool, inbox []reactive.Event, call func(ctx *TickContext, sys DomainSystem)) []command.Enqueued {
	var out []command.Enqueued
	for _, tier := range tiers {
		type slot struct {
			domain domainrng.Domain
			sys    DomainSystem
			queue  []command.Enqueued
		}
		var slots []*slot
		for _, dom := range tier {
			for _, sys := range s.systemsByDomain[dom] {
				if !sys.Frequency().Due(s.Clock) {
					continue
				}
				slots = append(slots, &slot{domain: dom, sys: sys})
			}
		}

		run := func(sl *slot) {
			ctx := &TickContext{
				Store: s.Store,
				Graph: s.Graph,
				RNG:   s.RNG.For(sl.domain),
				Time:  s.Clock,
				Tick:  s.TickCount,
				Inbox: inbox,
				queue: &sl.queue,
			}
			call(ctx, sl.sys)
		}

		if parallel && len(slots) > 1 {
			var wg sync.WaitGroup
			wg.Add(len(slots))
			for _, sl := range slots {
				sl := sl
				go func() {
					defer wg.Done()
					run(sl)
				}()
			}
			wg.Wait()
		} else {
			for _, sl := range slots {
				run(sl)
			}
		}

		for _, sl := range slots {
			out = append(out, sl.queue...)
		}
	}
	return out
}
