package store

import "sort"

// GiniCoefficient computes wealth inequality across every living faction's
// treasury, using the same sorted-population formula the teacher uses for
// agent wealth inequality (G = (2*Σ(i*wᵢ))/(n*Σwᵢ) - (n+1)/n). Factions
// with a zero treasury are counted, negative treasuries are skipped.
// Returns 0 when fewer than two treasuries are counted or when they sum to
// zero.
func GiniCoefficient(s *Store) float64 {
	var treasuries []float64
	for _, h := range Query[FactionCore](s) {
		c, ok := Get[FactionCore](s, h)
		if !ok || c.Treasury < 0 {
			continue
		}
		treasuries = append(treasuries, c.Treasury)
	}
	n := len(treasuries)
	if n < 2 {
		return 0
	}
	sort.Float64s(treasuries)
	var total, weighted float64
	for i, w := range treasuries {
		total += w
		weighted += float64(i+1) * w
	}
	if total == 0 {
		return 0
	}
	return (2*weighted)/(float64(n)*total) - float64(n+1)/float64(n)
}

// CarryingCapacity estimates a settlement's population pressure from its
// own population breakdown and prosperity, returning its prosperity-scaled
// capacity and pressure = population / capacity. Mirrors the teacher's SettlementCarryingCapacity shape
// (capacity, pressure) but sources capacity from the kernel's own
// SettlementCore fields rather than a hex-map terrain model, since terrain
// is a world-generation concern outside this store's scope.
func CarryingCapacity(s *Store, h Handle) (capacity float64, pressure float64) {
	c, ok := Get[SettlementCore](s, h)
	if !ok {
		return 0, 0
	}
	pop := float64(c.Population.Total())
	// Prosperity of 0 still supports some baseline population; scale
	// linearly above that floor, matching the teacher's health-weighted
	// resource-cap approach in spirit (more prosperity ⇒ more capacity).
	capacity = (1 + c.Prosperity) * baselineCarryingCapacity
	if capacity <= 0 {
		return capacity, 0
	}
	return capacity, pop / capacity
}

// baselineCarryingCapacity is the population a settlement with zero
// prosperity can still sustain before CarryingCapacity reports pressure.
const baselineCarryingCapacity = 500
