// Package procgen is the procedural detail interface: given a per-settlement
// snapshot, deterministically derive content-pack entries (artifacts,
// writings, notable inhabitants) keyed by H(settlement_id, year,
// category_name). The actual creative content tables (word banks, markov
// chains, real narrative text) are out of this core's scope — only the
// interface and the deterministic, collision-free ID-keying are. The
// reference Generator here exists to make that determinism testable, not
// to be a production text generator.
package procgen

import (
	"hash/fnv"

	"github.com/talgya/chronicle-sim/internal/store"
)

// Category names a procedural detail pack's kind.
type Category string

const (
	Artifact   Category = "artifact"
	Writing    Category = "writing"
	Inhabitant Category = "inhabitant"
)

// Snapshot is the read-only view of a settlement a generator works from. It
// intentionally carries no live store handle: generators must be pure
// functions of this value so repeated calls are byte-identical.
type Snapshot struct {
	SettlementID  store.SimId
	Name          string
	FoundedYear   uint32
	CurrentYear   uint32
	Population    store.PopulationBreakdown
	Resources     []string
	Terrain       string
	Tags          []string
	NotableEvents []string
}

// Detail is one generated content-pack entry. ID is always at or above
// store.ProceduralIDFloor.
type Detail struct {
	ID          store.SimId
	Category    Category
	Name        string
	Description string
}

// DeriveSeed computes H(settlement_id, year, category): the seed for the
// deterministic content generator serving this (settlement, year, category)
// triple. Same algorithm family as internal/domainrng.DeriveSeed (64-bit
// FNV-1a over the big-endian-encoded key parts) for the same reason: a
// pinned, portable hash this core's version compatibility depends on.
func DeriveSeed(settlementID store.SimId, year uint32, category Category) uint64 {
	h := fnv.New64a()
	var buf8 [8]byte
	putUint64BE(buf8[:], uint64(settlementID))
	h.Write(buf8[:])
	var buf4 [4]byte
	putUint32BE(buf4[:], year)
	h.Write(buf4[:])
	h.Write([]byte(category))
	return h.Sum64()
}

func putUint64BE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[7-i] = byte(v)
		v >>= 8
	}
}

func putUint32BE(b []byte, v uint32) {
	for i := 0; i < 4; i++ {
		b[3-i] = byte(v)
		v >>= 8
	}
}

// DeriveID deterministically derives the index-th generated detail's SimId
// for a given (settlement, year, category) triple. Distinct indices within
// the same triple, and distinct triples, are vanishingly unlikely to
// collide (64 bits of hash plus a 32-bit index folded in), and every result
// lands at or above store.ProceduralIDFloor by construction, so procedural
// ids structurally can never collide with a live simulation SimId.
func DeriveID(settlementID store.SimId, year uint32, category Category, index uint32) store.SimId {
	h := fnv.New64a()
	var buf8 [8]byte
	putUint64BE(buf8[:], DeriveSeed(settlementID, year, category))
	h.Write(buf8[:])
	var buf4 [4]byte
	putUint32BE(buf4[:], index)
	h.Write(buf4[:])
	return store.NextProcedural(h.Sum64())
}

// Generator produces a deterministic content pack for one snapshot and
// category. Implementations MUST be pure: same snapshot and category in,
// byte-identical []Detail out, every time.
type Generator interface {
	Generate(snapshot Snapshot, category Category, count int) []Detail
}
