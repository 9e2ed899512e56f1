package procgen

import (
	"fmt"
	"math/rand"
)

// wordBank is a small, clearly-reference-only vocabulary: enough to prove
// the generator is pure and deterministic, not a narrative content system.
var wordBank = map[Category][]string{
	Artifact:   {"chalice", "standard", "seal", "codex", "idol", "blade", "crown"},
	Writing:    {"chronicle", "hymn", "treaty", "elegy", "edict", "ledger"},
	Inhabitant: {"elder", "smith", "scribe", "herald", "outcast", "seer"},
}

// ReferenceGenerator is the minimal deterministic Generator this package
// ships so the "same snapshot twice yields byte-identical output" property
// is actually exercised; it is deliberately not a creative-writing system.
type ReferenceGenerator struct{}

// Generate returns count deterministic details for snapshot and category.
func (ReferenceGenerator) Generate(snapshot Snapshot, category Category, count int) []Detail {
	bank := wordBank[category]
	if len(bank) == 0 {
		return nil
	}
	out := make([]Detail, 0, count)
	for i := 0; i < count; i++ {
		seed := DeriveSeed(snapshot.SettlementID, snapshot.CurrentYear, category) + uint64(i)
		r := rand.New(rand.NewSource(int64(seed)))
		word := bank[r.Intn(len(bank))]
		out = append(out, Detail{
			ID:          DeriveID(snapshot.SettlementID, snapshot.CurrentYear, category, uint32(i)),
			Category:    category,
			Name:        fmt.Sprintf("the %s of %s", word, snapshot.Name),
			Description: fmt.Sprintf("a %s %s from %s, year %d", category, word, snapshot.Name, snapshot.CurrentYear),
		})
	}
	return out
}
