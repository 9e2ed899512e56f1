// Package checkpoint defines the kernel's durable snapshot contract: four
// flat record shapes (entities, relationships, events, participants) with
// stable snake_case field names, and the Checkpoint interface any storage
// backend implements against. The kernel itself never depends on a
// particular backend — only on this interface.
package checkpoint

// EntityRecord is one row of the entity table: an entity's identity,
// lifetime, and component state as of the moment the checkpoint was taken.
// ComponentsJSON holds every attached component, keyed by its Go type name,
// serialized as a JSON object — the generic component store has no closed
// schema to map onto individual SQL columns, so components travel as a
// single JSON blob per entity, mirroring how the teacher stores an agent's
// skills/needs/soul/inventory as JSON columns alongside its scalar fields.
// OriginYear/EndYear are year-granularity, matching spec.md §6.3's literal
// field list. The kernel's internal clock tracks minutes (SimTime), but the
// checkpoint contract only ever promised calendar years across the process
// boundary — see DESIGN.md's "Open Question decisions" for why minute
// precision stops at this boundary instead of leaking into storage.
type EntityRecord struct {
	ID             int64   `db:"id"`
	Kind           string  `db:"kind"`
	Name           string  `db:"name"`
	OriginYear     uint32  `db:"origin_year"`
	EndYear        *uint32 `db:"end_year"`
	ComponentsJSON string  `db:"components_json"`
}

// RelationshipRecord is one row of the relationship table, covering both
// structural edges (Kind is one of the fixed EdgeKind names) and graph
// relationships (Kind is one of the fixed relgraph.Kind names). DataJSON
// holds edge metadata (a trade route's path/distance/resource/start) when
// present.
type RelationshipRecord struct {
	Kind      string  `db:"kind"`
	Source    int64   `db:"source_entity_id"`
	Target    int64   `db:"target_entity_id"`
	StartYear uint32  `db:"start_year"`
	EndYear   *uint32 `db:"end_year"`
	DataJSON  string  `db:"data_json"`
}

// EventRecord is one row of the chronicle: a single observable state change
// attributed to exactly one cause.
type EventRecord struct {
	ID          int64  `db:"id"`
	Kind        string `db:"kind"`
	Year        uint32 `db:"year"`
	Description string `db:"description"`
	CausedBy    *int64 `db:"caused_by"`
	DataJSON    string `db:"data_json"`
}

// ParticipantRecord links an entity to an event under a role.
type ParticipantRecord struct {
	EventID  int64  `db:"event_id"`
	EntityID int64  `db:"entity_id"`
	Role     string `db:"role"`
}

// Checkpoint is the durable-snapshot contract. Write* calls replace their
// entire table's contents (a checkpoint is a full snapshot, not an
// incremental diff) except WriteEvents and WriteParticipants, which append,
// matching the event log's own append-only nature.
type Checkpoint interface {
	WriteEntities(records []EntityRecord) error
	WriteRelationships(records []RelationshipRecord) error
	WriteEvents(records []EventRecord) error
	WriteParticipants(records []ParticipantRecord) error
	Close() error
}
