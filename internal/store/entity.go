package store

import "github.com/talgya/chronicle-sim/internal/simtime"

// EntityKind tags what an entity represents. The named constants cover the
// kinds spec.md §3.2 enumerates; callers may also use Custom(tag) for
// domain-specific kinds (the original's tests exercise this with a
// "dragon" entity kind that ships no dedicated constant).
type EntityKind OpenString

const (
	KindPerson              EntityKind = "person"
	KindSettlement          EntityKind = "settlement"
	KindRegion              EntityKind = "region"
	KindFaction             EntityKind = "faction"
	KindArmy                EntityKind = "army"
	KindBuilding            EntityKind = "building"
	KindCulture             EntityKind = "culture"
	KindReligion            EntityKind = "religion"
	KindDeity               EntityKind = "deity"
	KindKnowledge            EntityKind = "knowledge"
	KindManifestation       EntityKind = "manifestation"
	KindItem                EntityKind = "item"
	KindResourceDeposit     EntityKind = "resource_deposit"
	KindRiver               EntityKind = "river"
	KindGeographicFeature   EntityKind = "geographic_feature"
	KindDisease             EntityKind = "disease"
	KindCreature            EntityKind = "creature"
)

// String returns the snake_case wire form.
func (k EntityKind) String() string { return string(k) }

// CustomEntityKind builds an open-variant entity kind for domain-specific
// uses the closed constant set does not cover.
func CustomEntityKind(tag string) EntityKind { return EntityKind(Custom(tag)) }

// Entity is the store's unit of identity: a SimId, a kind tag, a display
// name, a lifetime, and whatever typed components are attached to it.
// Entity itself never holds component data directly — that lives in the
// Store's per-type tables, keyed by Handle — so that adding a component
// type never requires touching this struct.
type Entity struct {
	ID     SimId
	Handle Handle
	Kind   EntityKind
	Name   string
	Origin simtime.SimTime
	End    *simtime.SimTime // nil while alive
}

// Alive reports whether the entity has not yet been ended.
func (e *Entity) Alive() bool { return e.End == nil }

// Handle is an opaque, store-local reference to an entity. It is a
// generational index: Index addresses a slot, Generation invalidates stale
// handles held past a slot's reuse. Translation to/from SimId is O(1) via
// the Store's IDMap.
type Handle struct {
	Index      uint32
	Generation uint32
}
