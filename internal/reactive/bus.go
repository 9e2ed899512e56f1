package reactive

// Bus is the intra-tick reactive event channel. Its lifecycle across one
// tick is:
//
//  1. PreUpdate of tick N: Clear() — drops whatever was readable during
//     tick N-1's Reactions phase.
//  2. PostUpdate of tick N: Emit() is called by the command applicator for
//     every SimReactiveEvent a command produces.
//  3. Reactions of tick N: Events() returns exactly what PostUpdate wrote
//     this tick, in applicator-insertion order. Handlers have no access to
//     the bus (TickContext carries none); they enqueue commands, which the
//     scheduler applies in tick N+1's PostUpdate, so their reactive events
//     first appear in tick N+1's Reactions (single-pass reaction, spec §4.8).
type Bus struct {
	events []Event
}

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{} }

// Emit appends ev to the current tick's write buffer.
func (b *Bus) Emit(ev Event) {
	b.events = append(b.events, ev)
}

// Events returns every event written so far this tick, in insertion order.
// During Reactions this is exactly tick N's PostUpdate output; the slice
// is a defensive copy so handlers cannot mutate the bus through it.
func (b *Bus) Events() []Event {
	return append([]Event(nil), b.events...)
}

// Clear drops every event currently buffered. Called at the start of
// PreUpdate, before the new tick's PostUpdate has written anything.
func (b *Bus) Clear() {
	b.events = nil
}
