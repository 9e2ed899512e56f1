package sched

import (
	"github.com/talgya/chronicle-sim/internal/command"
	"github.com/talgya/chronicle-sim/internal/domainrng"
	"github.com/talgya/chronicle-sim/internal/store"
)

// EconomicCircuitBreaker is a reference Economy domain system: it reads
// every living faction's economic motivation (never writing state directly
// — only the applicator may mutate state) and enqueues a corrective AdjustFactionStats
// command when a faction's economic motivation has run far enough from
// equilibrium that its stability is dragging other stats down with it.
// It exists to demonstrate the command/effect contract end to end with a
// concrete, testable system, adapted from the teacher's monthly
// hyperinflation/deflation circuit breaker (which corrected a settlement
// market's price-to-base-price ratio); this kernel has no per-good market
// component, so the analogous signal is a faction's own economic
// motivation relative to its stability, with the same "pull back toward
// equilibrium" correction shape.
type EconomicCircuitBreaker struct {
	NoSignalHandler
}

// circuitBreakerHighRatio and circuitBreakerLowRatio bound the economic
// motivation a faction can sustain before this system nudges stability
// back toward equilibrium; above High, or below Low but still positive,
// the correction fires.
const (
	circuitBreakerHighRatio = 0.85
	circuitBreakerLowRatio  = 0.15
	circuitBreakerPull      = 0.05
)

// Name identifies this system in logs and registration.
func (EconomicCircuitBreaker) Name() string { return "economic_circuit_breaker" }

// Frequency runs the breaker monthly, matching the teacher's
// processAntiStagnation cadence.
func (EconomicCircuitBreaker) Frequency() TickFrequency { return Monthly }

// Tick scans every living faction with a FactionMilitary component: above
// the sustainable band it enqueues a stability cut, below it a legitimacy
// lift. A motivation of exactly zero is left alone.
func (EconomicCircuitBreaker) Tick(ctx *TickContext) {
	for _, h := range store.Query[store.FactionMilitary](ctx.Store) {
		if !ctx.Store.Entity(h).Alive() {
			continue
		}
		mil, ok := store.Get[store.FactionMilitary](ctx.Store, h)
		if !ok {
			continue
		}
		id := ctx.Store.Entity(h).ID

		switch {
		case mil.EconomicMotivation > circuitBreakerHighRatio:
			// Overheating: the faction is straining to fund its ambitions.
			ctx.Enqueue(command.AdjustFactionStats{
				Faction:    id,
				DStability: -circuitBreakerPull,
			}, nil)
		case mil.EconomicMotivation < circuitBreakerLowRatio && mil.EconomicMotivation > 0:
			// Undercooled: idle treasury, nothing driving policy; a small
			// legitimacy lift reflects the calm.
			ctx.Enqueue(command.AdjustFactionStats{
				Faction:     id,
				DLegitimacy: circuitBreakerPull,
			}, nil)
		}
	}
}

// registeredExampleDomain documents where example systems like
// EconomicCircuitBreaker attach; it is not itself registered by the
// scheduler — callers opt in via Scheduler.Register, matching how every
// other domain system is wired.
const registeredExampleDomain = domainrng.Economy
