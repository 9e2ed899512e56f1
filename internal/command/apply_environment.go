package command

import (
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/reactive"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func (a *Applicator) applyTriggerDisaster(c TriggerDisaster, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Settlement)
	if !ok {
		return
	}

	eventID := a.open(eventlog.CustomEventKind("trigger_disaster"), at, "disaster struck "+c.DisasterType, causedBy)

	core, hasCore := store.Get[store.SettlementCore](a.Store, h)
	if hasCore {
		oldPop := core.Population.Total()
		if oldPop > 0 && c.PopLossFrac > 0 {
			newPop := uint64(float64(oldPop) * (1 - store.Clamp01(c.PopLossFrac)))
			core.Population.ScaleTo(newPop)
			a.effect(eventID, c.Settlement, PropertyChanged{Field: "population", OldValue: oldPop, NewValue: core.Population.Total()})
		}
		if c.ProsperityHit != 0 {
			oldProsperity := core.Prosperity
			core.Prosperity = core.Prosperity - c.ProsperityHit*store.Clamp01(c.Severity)
			if core.Prosperity < 0 {
				core.Prosperity = 0
			}
			a.effect(eventID, c.Settlement, PropertyChanged{Field: "prosperity", OldValue: oldProsperity, NewValue: core.Prosperity})
		}
		store.Set(a.Store, h, core)
	}

	if c.BuildingDamage > 0 {
		a.damageBuildingsFromDisaster(h, c.DisasterType, c.BuildingDamage, eventID, at)
	}

	if c.CreateFeature != nil {
		a.applyCreateGeographicFeature(*c.CreateFeature, &eventID, at)
	}

	// c.SeverTrade is intentionally not consumed here. A faithful
	// environment domain system emits a separate SeverTradeRoute command
	// alongside this one when severing is warranted (see REDESIGN FLAGS).
	a.Bus.Emit(reactive.DisasterStruck{ID: eventID, Settlement: c.Settlement, DisasterType: c.DisasterType})
}

// disasterBuildingWhitelist mirrors the source's building-type filter: a
// disaster only damages buildings whose function plausibly exposes them to
// that disaster type.
var disasterBuildingWhitelist = map[string][]string{
	"storm":    {"port", "market"},
	"flood":    {"granary", "workshop", "mine"},
	"wildfire": {"workshop", "granary", "market"},
}

func (a *Applicator) damageBuildingsFromDisaster(settlement store.Handle, disasterType string, damageFrac float64, eventID store.SimId, at simtime.SimTime) {
	whitelist, filtered := disasterBuildingWhitelist[disasterType]
	for _, source := range a.Store.Sources(settlement, store.LocatedIn) {
		bld := a.Store.Entity(source)
		if bld.Kind != store.KindBuilding || !bld.Alive() {
			continue
		}
		state, ok := store.Get[store.BuildingState](a.Store, source)
		if !ok {
			continue
		}
		if filtered && !contains(whitelist, state.BuildingType) {
			continue
		}
		old := state.Condition
		state.Condition = store.Clamp01(state.Condition - damageFrac)
		store.Set(a.Store, source, state)
		a.effect(eventID, bld.ID, PropertyChanged{Field: "condition", OldValue: old, NewValue: state.Condition})
		if state.Condition <= 0 {
			a.Store.End(source, at)
			a.effect(eventID, bld.ID, EntityEnded{})
		}
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (a *Applicator) applySeverTradeRoute(c SeverTradeRoute, causedBy *store.SimId, at simtime.SimTime) {
	ha, aok := a.alive(c.A)
	hb, bok := a.alive(c.B)
	if !aok || !bok {
		return
	}
	eventID := a.open(eventlog.CustomEventKind("sever_trade_route"), at, "trade route severed", causedBy)
	a.Graph.EndEdge(a.Store, ha, hb, relgraph.TradeRoute, at)
	a.effect(eventID, c.A, RelationshipEnded{Target: c.B, Kind: "trade_route"})
	a.effect(eventID, c.B, RelationshipEnded{Target: c.A, Kind: "trade_route"})
	a.Bus.Emit(reactive.TradeRouteRaided{ID: eventID, A: c.A, B: c.B})
}

func (a *Applicator) applyStartPersistentDisaster(c StartPersistentDisaster, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Settlement)
	if !ok {
		return
	}
	store.Set(a.Store, h, store.ActiveDisaster{
		Kind:     c.DisasterType,
		Severity: store.Clamp01(c.Severity),
		Started:  at,
		Months:   c.Months,
	})
	eventID := a.open(eventlog.CustomEventKind("start_persistent_disaster"), at, "persistent disaster began", causedBy)
	a.effect(eventID, c.Settlement, PropertyChanged{Field: "active_disaster", OldValue: nil, NewValue: c.DisasterType})
	a.Bus.Emit(reactive.DisasterStarted{ID: eventID, Settlement: c.Settlement, DisasterType: c.DisasterType})
}

func (a *Applicator) applyEndDisaster(c EndDisaster, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Settlement)
	if !ok {
		return
	}
	store.Remove[store.ActiveDisaster](a.Store, h)
	eventID := a.open(eventlog.CustomEventKind("end_disaster"), at, "disaster ended", causedBy)
	a.effect(eventID, c.Settlement, PropertyChanged{Field: "active_disaster", OldValue: true, NewValue: nil})
	a.Bus.Emit(reactive.DisasterEnded{ID: eventID, Settlement: c.Settlement})
}

func (a *Applicator) applyCreateGeographicFeature(c CreateGeographicFeature, causedBy *store.SimId, at simtime.SimTime) {
	regionHandle, ok := a.alive(c.Region)
	if !ok {
		return
	}
	eventID := a.open(eventlog.CustomEventKind("create_geographic_feature"), at, "geographic feature created: "+c.Name, causedBy)
	id, h := a.Store.Create(store.KindGeographicFeature, c.Name, at)
	a.Store.Link(h, regionHandle, store.FlowsThrough)
	a.effect(eventID, id, EntityCreated{Kind: store.KindGeographicFeature.String(), Name: c.Name})
}
