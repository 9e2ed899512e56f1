package command

import (
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/reactive"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func (a *Applicator) applyFoundReligion(c FoundReligion, causedBy *store.SimId, at simtime.SimTime) {
	founderHandle, ok := a.alive(c.Founder)
	if !ok {
		return
	}

	eventID := a.open(eventlog.CustomEventKind("found_religion"), at, "religion founded: "+c.Name, causedBy)

	religionID, religionHandle := a.Store.Create(store.KindReligion, c.Name, at)
	store.Set(a.Store, religionHandle, store.ReligionState{
		Fervor:          FoundedFervor,
		Proselytism:     FoundedProselytism,
		Orthodoxy:       FoundedOrthodoxy,
		WorshipStrength: FoundedWorshipStrength,
	})
	a.effect(eventID, religionID, EntityCreated{Kind: store.KindReligion.String(), Name: c.Name})

	deityID, deityHandle := a.Store.Create(store.KindDeity, c.Name+"'s deity", at)
	store.Set(a.Store, deityHandle, store.DeityState{ReligionID: religionID})
	a.effect(eventID, deityID, EntityCreated{Kind: store.KindDeity.String(), Name: c.Name + "'s deity"})

	_ = founderHandle
	a.Bus.Emit(reactive.ReligionFounded{ID: eventID, Religion: religionID, Founder: c.Founder})
}

func (a *Applicator) applyReligiousSchism(c ReligiousSchism, causedBy *store.SimId, at simtime.SimTime) {
	settlement, ok := a.alive(c.Settlement)
	if !ok {
		return
	}

	eventID := a.open(eventlog.CustomEventKind("religious_schism"), at, "religious schism: "+c.NewName, causedBy)

	var fervor, proselytism, orthodoxy float64
	parentHandle, parentOK := a.alive(c.ParentReligion)
	if parentOK {
		parentState, hasState := store.Get[store.ReligionState](a.Store, parentHandle)
		if hasState {
			fervor = store.Clamp01(parentState.Fervor + SchismFervorBoost)
			proselytism = parentState.Proselytism
			orthodoxy = parentState.Orthodoxy * SchismOrthodoxyMult
		} else {
			fervor, proselytism, orthodoxy = SchismDefaultFervor, SchismDefaultProselytism, SchismDefaultOrthodoxy
		}
	} else {
		fervor, proselytism, orthodoxy = SchismDefaultFervor, SchismDefaultProselytism, SchismDefaultOrthodoxy
	}

	newID, newHandle := a.Store.Create(store.KindReligion, c.NewName, at)
	parentID := c.ParentReligion
	store.Set(a.Store, newHandle, store.ReligionState{
		Fervor:          fervor,
		Proselytism:     proselytism,
		Orthodoxy:       orthodoxy,
		WorshipStrength: FoundedWorshipStrength,
		ParentReligion:  &parentID,
	})
	a.effect(eventID, newID, EntityCreated{Kind: store.KindReligion.String(), Name: c.NewName})

	deityID, deityHandle := a.Store.Create(store.KindDeity, c.NewName+"'s deity", at)
	store.Set(a.Store, deityHandle, store.DeityState{ReligionID: newID})
	a.effect(eventID, deityID, EntityCreated{Kind: store.KindDeity.String(), Name: c.NewName + "'s deity"})

	makeup, hasMakeup := store.Get[store.ReligionMakeup](a.Store, settlement)
	if hasMakeup && makeup.Shares != nil {
		parentShare := makeup.Shares[c.ParentReligion]
		transfer := parentShare * SchismShareTransferFrac
		makeup.Shares[c.ParentReligion] = parentShare - transfer
		makeup.Shares[newID] = transfer
		makeup.Normalize()
		store.Set(a.Store, settlement, makeup)
		a.effect(eventID, c.Settlement, PropertyChanged{Field: "dominant_religion", OldValue: nil, NewValue: makeup.DominantReligion})
		a.effect(eventID, c.Settlement, PropertyChanged{Field: "religious_tension", OldValue: nil, NewValue: makeup.Tension})
	}

	a.Bus.Emit(reactive.ReligionSchism{ID: eventID, ParentReligion: c.ParentReligion, NewReligion: newID, Settlement: c.Settlement})
}

func (a *Applicator) applyConvertFaction(c ConvertFaction, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Faction)
	if !ok {
		return
	}
	core, _ := store.Get[store.FactionCore](a.Store, h)
	old := core.PrimaryReligionID
	core.PrimaryReligionID = c.Religion
	store.Set(a.Store, h, core)

	eventID := a.open(eventlog.CustomEventKind("convert_faction"), at, "faction converted religion", causedBy)
	a.effect(eventID, c.Faction, PropertyChanged{Field: "primary_religion", OldValue: old, NewValue: c.Religion})
}

func (a *Applicator) applyDeclareProphecy(c DeclareProphecy, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Settlement)
	if !ok {
		return
	}
	core, _ := store.Get[store.SettlementCore](a.Store, h)
	year := at.Year()
	old := core.LastProphecyYear
	core.LastProphecyYear = &year
	store.Set(a.Store, h, core)

	eventID := a.open(eventlog.CustomEventKind("declare_prophecy"), at, "prophecy declared", causedBy)
	a.effect(eventID, c.Settlement, PropertyChanged{Field: "last_prophecy_year", OldValue: old, NewValue: year})
	a.Bus.Emit(reactive.ProphecyDeclared{ID: eventID, Settlement: c.Settlement, Religion: c.Religion, Prophet: c.Prophet})
}

func (a *Applicator) applySpreadReligion(c SpreadReligion, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Settlement)
	if !ok {
		return
	}
	makeup, hasMakeup := store.Get[store.ReligionMakeup](a.Store, h)
	if !hasMakeup {
		makeup = store.ReligionMakeup{Shares: map[store.SimId]float64{}}
	}
	if makeup.Shares == nil {
		makeup.Shares = map[store.SimId]float64{}
	}
	makeup.Shares[c.Religion] += c.Share
	makeup.Normalize()
	store.Set(a.Store, h, makeup)

	eventID := a.open(eventlog.CustomEventKind("spread_religion"), at, "religion spread", causedBy)
	a.effect(eventID, c.Settlement, PropertyChanged{Field: "dominant_religion", OldValue: nil, NewValue: makeup.DominantReligion})
}
