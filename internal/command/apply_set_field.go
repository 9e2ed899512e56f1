package command

import (
	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/simtime"
	"github.com/talgya/chronicle-sim/internal/store"
)

func (a *Applicator) applySetField(c SetField, causedBy *store.SimId, at simtime.SimTime) {
	if _, ok := a.alive(c.Entity); !ok {
		return
	}
	eventID := a.open(eventlog.CustomEventKind("set_field"), at, "field "+c.Field+" set", causedBy)
	a.effect(eventID, c.Entity, PropertyChanged{Field: c.Field, OldValue: c.OldValue, NewValue: c.NewValue})
}
