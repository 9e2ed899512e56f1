package command

import (
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

// applyDissolveFaction ends a faction and, if it still holds a treasury,
// transfers FactionInheritanceHeirShare of it to HeirFaction (when given
// and still alive). Any remainder is forfeited rather than escheated to
// some other receptacle, since a faction has no parent institution in this
// kernel's component model the way a dying agent's home settlement is one
// in the original.
func (a *Applicator) applyDissolveFaction(c DissolveFaction, causedBy *store.SimId, at simtime.SimTime) {
	h, ok := a.alive(c.Faction)
	if !ok {
		return
	}
	core, hasCore := store.Get[store.FactionCore](a.Store, h)

	eventID := a.open(eventlog.CustomEventKind("dissolve_faction"), at, "faction dissolved", causedBy)

	if hasCore && core.Treasury > 0 && c.HeirFaction != nil {
		if heirHandle, heirOK := a.alive(*c.HeirFaction); heirOK {
			heirCore, heirHasCore := store.Get[store.FactionCore](a.Store, heirHandle)
			if heirHasCore {
				heirShare := core.Treasury * FactionInheritanceHeirShare
				oldHeirTreasury := heirCore.Treasury
				heirCore.Treasury += heirShare
				store.Set(a.Store, heirHandle, heirCore)
				a.effect(eventID, *c.HeirFaction, PropertyChanged{
					Field: "treasury", OldValue: oldHeirTreasury, NewValue: heirCore.Treasury,
				})
			}
		}
	}

	a.Store.End(h, at)
	a.effect(eventID, c.Faction, EntityEnded{})
}
