package command

import (
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/reactive"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func (a *Applicator) applyBlendCultures(c BlendCultures, causedBy *store.SimId, at simtime.SimTime) {
	settlement, ok := a.alive(c.Settlement)
	if !ok {
		return
	}
	makeup, hasMakeup := store.Get[store.CultureMakeup](a.Store, settlement)
	if !hasMakeup || makeup.Shares == nil {
		return
	}
	shareA, hasA := makeup.Shares[c.ParentA]
	shareB, hasB := makeup.Shares[c.ParentB]
	if !hasA && !hasB {
		return
	}

	eventID := a.open(eventlog.CustomEventKind("blend_cultures"), at, "cultures blended into "+c.NewName, causedBy)

	newID, newHandle := a.Store.Create(store.KindCulture, c.NewName, at)
	delete(makeup.Shares, c.ParentA)
	delete(makeup.Shares, c.ParentB)
	makeup.Shares[newID] = shareA + shareB
	makeup.Normalize()
	store.Set(a.Store, settlement, makeup)

	values := filterOpposingCulturalValues(c.Values)
	store.Set(a.Store, newHandle, store.CultureTraits{
		Values:      values,
		NamingStyle: c.NamingStyle,
		Resistance:  store.Clamp01(c.Resistance),
	})

	a.effect(eventID, newID, EntityCreated{Kind: store.KindCulture.String(), Name: c.NewName})
	a.effect(eventID, newID, PropertyChanged{Field: "values", OldValue: nil, NewValue: values})
	a.effect(eventID, c.Settlement, PropertyChanged{Field: "dominant_culture", OldValue: nil, NewValue: makeup.DominantCulture})
}

func (a *Applicator) applyCulturalShift(c CulturalShift, causedBy *store.SimId, at simtime.SimTime) {
	settlement, ok := a.alive(c.Settlement)
	if !ok {
		return
	}
	makeup, _ := store.Get[store.CultureMakeup](a.Store, settlement)
	old := makeup.DominantCulture
	makeup.DominantCulture = c.NewCulture
	store.Set(a.Store, settlement, makeup)

	eventID := a.open(eventlog.CustomEventKind("cultural_shift"), at, "settlement's dominant culture shifted", causedBy)
	a.effect(eventID, c.Settlement, PropertyChanged{Field: "dominant_culture", OldValue: old, NewValue: c.NewCulture})
}

func (a *Applicator) applyCulturalRebellion(c CulturalRebellion, causedBy *store.SimId, at simtime.SimTime) {
	settlement, ok := a.alive(c.Settlement)
	if !ok {
		return
	}

	eventID := a.open(eventlog.CustomEventKind("cultural_rebellion"), at, "cultural rebellion in settlement", causedBy)

	if !c.Succeeded {
		if factionHandle, factionOK := a.alive(c.Faction); factionOK {
			core, hasCore := store.Get[store.FactionCore](a.Store, factionHandle)
			if hasCore {
				old := core.Stability
				core.Stability = store.Clamp01(core.Stability - RebellionFailedStabilityPenalty)
				store.Set(a.Store, factionHandle, core)
				a.effect(eventID, c.Faction, PropertyChanged{Field: "stability", OldValue: old, NewValue: core.Stability})

				if core.PrimaryCultureID != 0 {
					makeup, hasMakeup := store.Get[store.CultureMakeup](a.Store, settlement)
					if hasMakeup && makeup.Shares != nil {
						oldShare := makeup.Shares[core.PrimaryCultureID]
						makeup.Shares[core.PrimaryCultureID] = oldShare + RebellionCrackdownCultureBoost
						makeup.Normalize()
						store.Set(a.Store, settlement, makeup)
						a.effect(eventID, c.Settlement, PropertyChanged{
							Field:    "culture_share:" + core.PrimaryCultureID.String(),
							OldValue: oldShare,
							NewValue: makeup.Shares[core.PrimaryCultureID],
						})
					}
				}
			}
		}
		// A successful rebellion only narrates the outcome: no faction
		// split is applied and NewFactionName is not used.
	}

	a.effect(eventID, c.Settlement, PropertyChanged{Field: "cultural_rebellion", OldValue: nil, NewValue: c.Succeeded})
	a.Bus.Emit(reactive.CulturalRebellion{ID: eventID, Settlement: c.Settlement, RebelCulture: c.RebelCulture, Succeeded: c.Succeeded})
}
