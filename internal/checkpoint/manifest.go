package checkpoint

import (
	"github.com/google/uuid"
)

// Manifest stamps one checkpoint batch with a stable external identifier
// and the record counts it carries, so a storage backend (or a caller
// comparing two runs) can tell checkpoints apart without inspecting the
// full payload. RunID is generated once per call to NewManifest, the same
// role uuid.New() plays for the teacher's run-scoped bookkeeping IDs.
type Manifest struct {
	RunID             uuid.UUID
	Year              uint32
	EntityCount       int
	RelationshipCount int
	EventCount        int
	ParticipantCount  int
}

// NewManifest stamps a fresh RunID and records the size of one export.
func NewManifest(year uint32, entities []EntityRecord, relationships []RelationshipRecord, events []EventRecord, participants []ParticipantRecord) Manifest {
	return Manifest{
		RunID:             uuid.New(),
		Year:              year,
		EntityCount:       len(entities),
		RelationshipCount: len(relationships),
		EventCount:        len(events),
		ParticipantCount:  len(participants),
	}
}
