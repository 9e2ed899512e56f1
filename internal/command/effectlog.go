package command

import "github.com/talgya/chronicle-sim/internal/store"

// EffectLog accumulates every Effect ever recorded, the authoritative
// per-entity history spec §3.4 requires tests be able to replay.
type EffectLog struct {
	effects []Effect
}

// NewEffectLog returns an empty effect log.
func NewEffectLog() *EffectLog { return &EffectLog{} }

// Record appends e.
func (l *EffectLog) Record(e Effect) {
	l.effects = append(l.effects, e)
}

// All returns every effect recorded so far, in recording order.
func (l *EffectLog) All() []Effect {
	return append([]Effect(nil), l.effects...)
}

// ForEntity returns every effect whose EntityID is id, in recording order.
func (l *EffectLog) ForEntity(id store.SimId) []Effect {
	var out []Effect
	for _, e := range l.effects {
		if e.EntityID == id {
			out = append(out, e)
		}
	}
	return out
}
