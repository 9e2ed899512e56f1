package command

import "github.com/talgya/chronicle-sim/internal/store"

// StateChange is the closed set of attributable mutations an Effect can
// record, matching spec §3.4 exactly.
type StateChange interface {
	changeType() string
}

// EntityCreated records a new entity's kind and name.
type EntityCreated struct {
	Kind, Name string
}

func (EntityCreated) changeType() string { return "entity_created" }

// EntityEnded records an entity's death/dissolution.
type EntityEnded struct{}

func (EntityEnded) changeType() string { return "entity_ended" }

// NameChanged records a rename.
type NameChanged struct {
	Old, New string
}

func (NameChanged) changeType() string { return "name_changed" }

// RelationshipStarted records a new relationship edge.
type RelationshipStarted struct {
	Target store.SimId
	Kind   string
}

func (RelationshipStarted) changeType() string { return "relationship_started" }

// RelationshipEnded records a relationship edge ending.
type RelationshipEnded struct {
	Target store.SimId
	Kind   string
}

func (RelationshipEnded) changeType() string { return "relationship_ended" }

// PropertyChanged records a single field's old and new value.
type PropertyChanged struct {
	Field    string
	OldValue any
	NewValue any
}

func (PropertyChanged) changeType() string { return "property_changed" }

// ChangeTypeString returns the stable snake_case tag for a StateChange,
// the same string persistence layers key on (e.g. a Postgres COPY that
// never needs to parse the JSON payload to route by type).
func ChangeTypeString(c StateChange) string { return c.changeType() }

// Effect is one atomic, attributable record of a state change: exactly one
// event, exactly one entity, exactly one change.
type Effect struct {
	EventID  store.SimId
	EntityID store.SimId
	Change   StateChange
}
