package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/chronicle-sim/internal/simtime"
)

func TestGiniCoefficientZeroWithFewerThanTwoFactions(t *testing.T) {
	idgen := NewIDGenerator()
	s := New(idgen)
	_, h := s.Create(KindFaction, "Solo", simtime.Zero)
	Set(s, h, FactionCore{Treasury: 500})

	require.Equal(t, 0.0, GiniCoefficient(s))
}

func TestGiniCoefficientPositiveUnderInequality(t *testing.T) {
	idgen := NewIDGenerator()
	s := New(idgen)
	_, a := s.Create(KindFaction, "Rich", simtime.Zero)
	Set(s, a, FactionCore{Treasury: 1000})
	_, b := s.Create(KindFaction, "Poor", simtime.Zero)
	Set(s, b, FactionCore{Treasury: 10})

	g := GiniCoefficient(s)
	require.Greater(t, g, 0.0)
	require.Less(t, g, 1.0)
}

func TestCarryingCapacityReflectsProsperityAndPopulation(t *testing.T) {
	idgen := NewIDGenerator()
	s := New(idgen)
	_, h := s.Create(KindSettlement, "Hamlet", simtime.Zero)
	Set(s, h, SettlementCore{
		Population: PopulationBreakdown{"farmers": 100},
		Prosperity: 0,
	})

	capacity, pressure := CarryingCapacity(s, h)
	require.Equal(t, float64(baselineCarryingCapacity), capacity)
	require.InDelta(t, 100.0/float64(baselineCarryingCapacity), pressure, 1e-9)
}

func TestCarryingCapacityUnknownHandle(t *testing.T) {
	idgen := NewIDGenerator()
	s := New(idgen)
	capacity, pressure := CarryingCapacity(s, Handle{Index: 99})
	require.Equal(t, 0.0, capacity)
	require.Equal(t, 0.0, pressure)
}
