// Package command implements the command & effect pipeline: domain
// systems never mutate the store directly during Update, they push
// Commands onto a queue; a single-threaded Applicator drains that queue in
// PostUpdate, mutating state, recording Effects, and emitting reactive
// events.
package command

import "github.com/talgya/chronicle-sim/internal/store"

// Command is implemented by every command variant spec §6.1 names. The
// set is closed at the kernel level (this package), though a hosting
// application MAY define further command types in its own package and
// drain its own queue of them through a separate applicator — the
// contract only requires that ALL state mutation flow through some
// applicator, not that this package's Command type be the only one a
// program ever defines.
type Command interface {
	commandMarker()
}

type marker struct{}

func (marker) commandMarker() {}

// AdjustFactionStats applies clamped deltas to a faction's headline
// stats. Zero deltas are no-ops and produce no effect.
type AdjustFactionStats struct {
	marker
	Faction                                     store.SimId
	DStability, DHappiness, DLegitimacy         float64
	DTrust, DPrestige                           float64
}

// DissolveFaction ends a faction (conquest, collapse, absorption), ending
// its lifetime and distributing its treasury to HeirFaction, if given and
// still alive. This is a kernel-added command beyond spec §6.1's list (the
// closed set's own prose allows further commands for a domain system's
// needs); it is the faction-scale analogue of the original's inheritance
// rule, since this kernel's FactionCore (not PersonCore) is the component
// that carries a treasury.
type DissolveFaction struct {
	marker
	Faction     store.SimId
	HeirFaction *store.SimId
}

// SetWarGoal records a faction's stated objective against target.
type SetWarGoal struct {
	marker
	Faction, Target store.SimId
	Goal            string
}

// TriggerDisaster applies an immediate one-off disaster to a settlement.
// SeverTrade is a hint the environment domain system uses to decide
// whether to ALSO enqueue a SeverTradeRoute command (see REDESIGN FLAGS:
// this command never severs a route itself).
type TriggerDisaster struct {
	marker
	Settlement      store.SimId
	DisasterType    string
	Severity        float64 // [0,1]
	PopLossFrac     float64 // [0,1]
	BuildingDamage  float64 // [0,1]
	ProsperityHit   float64
	SeverTrade      bool
	CreateFeature   *CreateGeographicFeature
}

// SeverTradeRoute ends a trade route. Emitted as its own command by the
// environment domain system, never implied by TriggerDisaster.
type SeverTradeRoute struct {
	marker
	A, B store.SimId
}

// StartPersistentDisaster attaches an ongoing ActiveDisaster to a
// settlement.
type StartPersistentDisaster struct {
	marker
	Settlement   store.SimId
	DisasterType string
	Severity     float64
	Months       uint32
}

// EndDisaster removes a settlement's ActiveDisaster attachment.
type EndDisaster struct {
	marker
	Settlement store.SimId
}

// CreateGeographicFeature spawns a new GeographicFeature entity in region.
type CreateGeographicFeature struct {
	marker
	Name         string
	Region       store.SimId
	FeatureType  string
	X, Y         float64
}

// BlendCultures spawns a new culture from two parent cultures present in a
// settlement, removing the parents' shares and inserting the blend's.
type BlendCultures struct {
	marker
	Settlement           store.SimId
	ParentA, ParentB     store.SimId
	NewName              string
	Values               []string
	NamingStyle          string
	Resistance           float64
}

// CulturalShift directly replaces a settlement's dominant culture.
type CulturalShift struct {
	marker
	Settlement, NewCulture store.SimId
}

// CulturalRebellion resolves an uprising against a settlement's ruling
// culture, on behalf of Faction.
type CulturalRebellion struct {
	marker
	Settlement, RebelCulture, Faction store.SimId
	Succeeded                        bool
	NewFactionName                   string
}

// FoundReligion spawns a new Religion (and its Deity) founded by founder.
type FoundReligion struct {
	marker
	Founder store.SimId
	Name    string
}

// ReligiousSchism spawns a breakaway religion from parent, active in
// settlement.
type ReligiousSchism struct {
	marker
	ParentReligion, Settlement store.SimId
	NewName                    string
	Tenets                     []string
}

// ConvertFaction sets a faction's primary religion.
type ConvertFaction struct {
	marker
	Faction, Religion store.SimId
}

// DeclareProphecy records a settlement's prophecy declaration year.
type DeclareProphecy struct {
	marker
	Settlement, Religion store.SimId
	Prophet              *store.SimId
}

// SpreadReligion adds share to a religion's presence in a settlement.
type SpreadReligion struct {
	marker
	Settlement, Religion store.SimId
	Share                float64
}

// SetField is the escape hatch for a domain system that wants to record a
// plain property change without a dedicated command type. The applicator
// still opens an event for it like any other command, carrying a terse
// description rather than a narrated one.
type SetField struct {
	marker
	Entity   store.SimId
	Field    string
	OldValue any
	NewValue any
}
