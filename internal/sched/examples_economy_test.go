package sched

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/chronicle-sim/internal/domainrng"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func TestEconomicCircuitBreakerCorrectsOverheatingFaction(t *testing.T) {
	s := New(7)
	id, h := s.Store.Create(store.KindFaction, "Overheated Crown", simtime.Zero)
	store.Set(s.Store, h, store.FactionCore{Stability: 0.5})
	store.Set(s.Store, h, store.FactionMilitary{EconomicMotivation: 0.95})

	s.Register(domainrng.Economy, EconomicCircuitBreaker{})

	// Monthly cadence: run a full month of minutes so it's due at least once.
	for i := 0; i < 43200; i++ {
		s.Tick(false)
	}

	core, ok := store.Get[store.FactionCore](s.Store, h)
	require.True(t, ok)
	require.Less(t, core.Stability, 0.5)

	_ = id
}

func TestEconomicCircuitBreakerIgnoresBalancedFaction(t *testing.T) {
	s := New(7)
	_, h := s.Store.Create(store.KindFaction, "Balanced Crown", simtime.Zero)
	store.Set(s.Store, h, store.FactionCore{Stability: 0.5})
	store.Set(s.Store, h, store.FactionMilitary{EconomicMotivation: 0.5})

	s.Register(domainrng.Economy, EconomicCircuitBreaker{})
	for i := 0; i < 43200; i++ {
		s.Tick(false)
	}

	core, ok := store.Get[store.FactionCore](s.Store, h)
	require.True(t, ok)
	require.Equal(t, 0.5, core.Stability)
}
