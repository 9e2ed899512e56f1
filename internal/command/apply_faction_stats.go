package command

import (
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func (a *Applicator) applyAdjustFactionStats(c AdjustFactionStats, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Faction)
	if !ok {
		return
	}
	core, hasCore := store.Get[store.FactionCore](a.Store, h)
	if !hasCore {
		return
	}

	if c.DStability == 0 && c.DHappiness == 0 && c.DLegitimacy == 0 && c.DTrust == 0 && c.DPrestige == 0 {
		return
	}

	eventID := a.open(eventlog.CustomEventKind("adjust_faction_stats"), at, "faction stats adjusted", causedBy)

	old := core
	if c.DStability != 0 {
		core.Stability = store.Clamp01(core.Stability + c.DStability)
		a.effect(eventID, c.Faction, PropertyChanged{Field: "stability", OldValue: old.Stability, NewValue: core.Stability})
	}
	if c.DHappiness != 0 {
		core.Happiness = store.Clamp01(core.Happiness + c.DHappiness)
		a.effect(eventID, c.Faction, PropertyChanged{Field: "happiness", OldValue: old.Happiness, NewValue: core.Happiness})
	}
	if c.DLegitimacy != 0 {
		core.Legitimacy = store.Clamp01(core.Legitimacy + c.DLegitimacy)
		a.effect(eventID, c.Faction, PropertyChanged{Field: "legitimacy", OldValue: old.Legitimacy, NewValue: core.Legitimacy})
	}
	if c.DPrestige != 0 {
		core.Prestige = store.Clamp01(core.Prestige + c.DPrestige)
		a.effect(eventID, c.Faction, PropertyChanged{Field: "prestige", OldValue: old.Prestige, NewValue: core.Prestige})
	}
	store.Set(a.Store, h, core)

	if c.DTrust != 0 {
		diplo, _ := store.Get[store.FactionDiplomacy](a.Store, h)
		oldTrust := diplo.DiplomaticTrust
		diplo.DiplomaticTrust = store.Clamp01(diplo.DiplomaticTrust + c.DTrust)
		store.Set(a.Store, h, diplo)
		a.effect(eventID, c.Faction, PropertyChanged{Field: "diplomatic_trust", OldValue: oldTrust, NewValue: diplo.DiplomaticTrust})
	}
}

func (a *Applicator) applySetWarGoal(c SetWarGoal, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Faction)
	if !ok {
		return
	}
	targetHandle, targetOK := a.alive(c.Target)
	if !targetOK {
		return
	}
	targetID := a.Store.Entity(targetHandle).ID

	diplo, _ := store.Get[store.FactionDiplomacy](a.Store, h)
	if diplo.WarGoals == nil {
		diplo.WarGoals = make(map[store.SimId]store.WarGoal)
	}
	diplo.WarGoals[targetID] = store.WarGoal{Target: targetID, Goal: c.Goal}
	store.Set(a.Store, h, diplo)

	eventID := a.open(eventlog.CustomEventKind("set_war_goal"), at, "war goal set", causedBy)
	a.effect(eventID, c.Faction, PropertyChanged{
		Field:    "war_goal",
		OldValue: nil,
		NewValue: map[string]any{"target": targetID, "goal": c.Goal},
	})
}
