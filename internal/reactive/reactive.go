// Package reactive implements the double-buffered reactive event bus:
// events emitted by the command applicator during PostUpdate become
// readable during the same tick's Reactions phase, then are cleared at the
// start of the next tick's PreUpdate.
package reactive

import "github.com/talgya/chronicle-sim/internal/store"

// Event is implemented by every reactive event variant. EventID is the
// originating event's SimId in the event log; Kind is the stable
// snake_case wire name used by persistence layers.
type Event interface {
	EventID() store.SimId
	Kind() string
}

// --- Military / Conflict ---

type WarStarted struct {
	ID store.SimId
	Attacker, Defender store.SimId
}

func (e WarStarted) EventID() store.SimId { return e.ID }

func (WarStarted) Kind() string { return "war_started" }

type WarEnded struct {
	ID store.SimId
	Winner, Loser store.SimId
	Decisive      bool
}

func (e WarEnded) EventID() store.SimId { return e.ID }

func (WarEnded) Kind() string { return "war_ended" }

type SettlementCaptured struct {
	ID store.SimId
	Settlement, OldFaction, NewFaction store.SimId
}

func (e SettlementCaptured) EventID() store.SimId { return e.ID }

func (SettlementCaptured) Kind() string { return "settlement_captured" }

type SiegeStarted struct {
	ID store.SimId
	Settlement, BesiegerArmy store.SimId
}

func (e SiegeStarted) EventID() store.SimId { return e.ID }

func (SiegeStarted) Kind() string { return "siege_started" }

type SiegeEnded struct {
	ID store.SimId
	Settlement store.SimId
	Broken     bool
}

func (e SiegeEnded) EventID() store.SimId { return e.ID }

func (SiegeEnded) Kind() string { return "siege_ended" }

// --- Politics ---

type LeaderVacancy struct {
	ID store.SimId
	Faction, PreviousLeader store.SimId
}

func (e LeaderVacancy) EventID() store.SimId { return e.ID }

func (LeaderVacancy) Kind() string { return "leader_vacancy" }

type SuccessionCrisis struct {
	ID store.SimId
	Faction store.SimId
}

func (e SuccessionCrisis) EventID() store.SimId { return e.ID }

func (SuccessionCrisis) Kind() string { return "succession_crisis" }

type FactionSplit struct {
	ID store.SimId
	OldFaction, NewFaction, Settlement store.SimId
}

func (e FactionSplit) EventID() store.SimId { return e.ID }

func (FactionSplit) Kind() string { return "faction_split" }

type FailedCoup struct {
	ID store.SimId
	Faction, Instigator store.SimId
}

func (e FailedCoup) EventID() store.SimId { return e.ID }

func (FailedCoup) Kind() string { return "failed_coup" }

type AllianceBetrayed struct {
	ID store.SimId
	Betrayer, Betrayed store.SimId
}

func (e AllianceBetrayed) EventID() store.SimId { return e.ID }

func (AllianceBetrayed) Kind() string { return "alliance_betrayed" }

// --- Demographics ---

type EntityDied struct {
	ID store.SimId
	Entity store.SimId
}

func (e EntityDied) EventID() store.SimId { return e.ID }

func (EntityDied) Kind() string { return "entity_died" }

type RefugeesArrived struct {
	ID store.SimId
	Settlement store.SimId
	Count      uint32
}

func (e RefugeesArrived) EventID() store.SimId { return e.ID }

func (RefugeesArrived) Kind() string { return "refugees_arrived" }

// --- Disease ---

type PlagueStarted struct {
	ID store.SimId
	Settlement, Disease store.SimId
}

func (e PlagueStarted) EventID() store.SimId { return e.ID }

func (PlagueStarted) Kind() string { return "plague_started" }

type PlagueEnded struct {
	ID store.SimId
	Settlement, Disease store.SimId
}

func (e PlagueEnded) EventID() store.SimId { return e.ID }

func (PlagueEnded) Kind() string { return "plague_ended" }

// --- Environment ---

type DisasterStruck struct {
	ID store.SimId
	Settlement store.SimId
	DisasterType string
}

func (e DisasterStruck) EventID() store.SimId { return e.ID }

func (DisasterStruck) Kind() string { return "disaster_struck" }

type DisasterStarted struct {
	ID store.SimId
	Settlement store.SimId
	DisasterType string
}

func (e DisasterStarted) EventID() store.SimId { return e.ID }

func (DisasterStarted) Kind() string { return "disaster_started" }

type DisasterEnded struct {
	ID store.SimId
	Settlement store.SimId
}

func (e DisasterEnded) EventID() store.SimId { return e.ID }

func (DisasterEnded) Kind() string { return "disaster_ended" }

// --- Economy ---

type TradeRouteEstablished struct {
	ID store.SimId
	A, B store.SimId
}

func (e TradeRouteEstablished) EventID() store.SimId { return e.ID }

func (TradeRouteEstablished) Kind() string { return "trade_route_established" }

type TradeRouteRaided struct {
	ID store.SimId
	A, B store.SimId
}

func (e TradeRouteRaided) EventID() store.SimId { return e.ID }

func (TradeRouteRaided) Kind() string { return "trade_route_raided" }

type TreasuryDepleted struct {
	ID store.SimId
	Faction store.SimId
}

func (e TreasuryDepleted) EventID() store.SimId { return e.ID }

func (TreasuryDepleted) Kind() string { return "treasury_depleted" }

// --- Crime ---

type BanditRaid struct {
	ID store.SimId
	Settlement store.SimId
}

func (e BanditRaid) EventID() store.SimId { return e.ID }

func (BanditRaid) Kind() string { return "bandit_raid" }

type BanditGangFormed struct {
	ID store.SimId
	RegionOrSettlement store.SimId
}

func (e BanditGangFormed) EventID() store.SimId { return e.ID }

func (BanditGangFormed) Kind() string { return "bandit_gang_formed" }

// --- Buildings ---

type BuildingConstructed struct {
	ID store.SimId
	Building, Settlement store.SimId
}

func (e BuildingConstructed) EventID() store.SimId { return e.ID }

func (BuildingConstructed) Kind() string { return "building_constructed" }

type BuildingUpgraded struct {
	ID store.SimId
	Building store.SimId
}

func (e BuildingUpgraded) EventID() store.SimId { return e.ID }

func (BuildingUpgraded) Kind() string { return "building_upgraded" }

// --- Knowledge ---

type KnowledgeCreated struct {
	ID store.SimId
	Knowledge store.SimId
}

func (e KnowledgeCreated) EventID() store.SimId { return e.ID }

func (KnowledgeCreated) Kind() string { return "knowledge_created" }

type ManifestationCreated struct {
	ID store.SimId
	Manifestation, Knowledge store.SimId
}

func (e ManifestationCreated) EventID() store.SimId { return e.ID }

func (ManifestationCreated) Kind() string { return "manifestation_created" }

// --- Items ---

type ItemCrafted struct {
	ID store.SimId
	Item, Crafter store.SimId
}

func (e ItemCrafted) EventID() store.SimId { return e.ID }

func (ItemCrafted) Kind() string { return "item_crafted" }

type ItemTierPromoted struct {
	ID store.SimId
	Item store.SimId
}

func (e ItemTierPromoted) EventID() store.SimId { return e.ID }

func (ItemTierPromoted) Kind() string { return "item_tier_promoted" }

// --- Religion / Culture ---

type CulturalRebellion struct {
	ID store.SimId
	Settlement, RebelCulture store.SimId
	Succeeded                bool
}

func (e CulturalRebellion) EventID() store.SimId { return e.ID }

func (CulturalRebellion) Kind() string { return "cultural_rebellion" }

type SecretRevealed struct {
	ID store.SimId
	Holder, Revealer store.SimId
}

func (e SecretRevealed) EventID() store.SimId { return e.ID }

func (SecretRevealed) Kind() string { return "secret_revealed" }

type ReligionFounded struct {
	ID store.SimId
	Religion, Founder store.SimId
}

func (e ReligionFounded) EventID() store.SimId { return e.ID }

func (ReligionFounded) Kind() string { return "religion_founded" }

type ReligionSchism struct {
	ID store.SimId
	ParentReligion, NewReligion, Settlement store.SimId
}

func (e ReligionSchism) EventID() store.SimId { return e.ID }

func (ReligionSchism) Kind() string { return "religion_schism" }

type ProphecyDeclared struct {
	ID store.SimId
	Settlement, Religion store.SimId
	Prophet              *store.SimId
}

func (e ProphecyDeclared) EventID() store.SimId { return e.ID }

func (ProphecyDeclared) Kind() string { return "prophecy_declared" }
