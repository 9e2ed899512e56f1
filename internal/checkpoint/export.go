package checkpoint

import (
	"encoding/json"

	"github.com/talgya/chronicle-sim/internal/eventlog"
	"github.com/talgya/chronicle-sim/internal/relgraph"
	"github.com/talgya/chronicle-sim/internal/store"
)

// Export walks the store, relationship graph, and event log and produces
// the four flat record slices a Checkpoint backend writes. Marshaling
// failures on a single entity's component snapshot are swallowed to an
// empty object rather than aborting the whole checkpoint — a malformed
// component (e.g. one embedding a channel) should not block persisting
// every other entity.
func Export(s *store.Store, g *relgraph.Graph, log *eventlog.Log) (
	entities []EntityRecord, relationships []RelationshipRecord,
	events []EventRecord, participants []ParticipantRecord,
) {
	for _, h := range s.AllEntities() {
		e := s.Entity(h)
		snapshot := s.ComponentSnapshot(h)
		blob, err := json.Marshal(snapshot)
		if err != nil {
			blob = []byte("{}")
		}
		var endYear *uint32
		if e.End != nil {
			v := e.End.Year()
			endYear = &v
		}
		entities = append(entities, EntityRecord{
			ID:             int64(e.ID),
			Kind:           e.Kind.String(),
			Name:           e.Name,
			OriginYear:     e.Origin.Year(),
			EndYear:        endYear,
			ComponentsJSON: string(blob),
		})
	}

	for _, se := range s.AllStructuralEdges() {
		relationships = append(relationships, RelationshipRecord{
			Kind:      se.Kind.String(),
			Source:    int64(s.Entity(se.Source).ID),
			Target:    int64(s.Entity(se.Target).ID),
			StartYear: 0,
			DataJSON:  "{}",
		})
	}

	for _, edge := range g.AllEdges(s) {
		var endYear *uint32
		if edge.Meta.End != nil {
			v := edge.Meta.End.Year()
			endYear = &v
		}
		data := "{}"
		if edge.Kind == relgraph.TradeRoute {
			if td, ok := g.TradeRouteData(s, edge.Pair.A, edge.Pair.B); ok {
				if blob, err := json.Marshal(td); err == nil {
					data = string(blob)
				}
			}
		}
		relationships = append(relationships, RelationshipRecord{
			Kind:      edge.Kind.String(),
			Source:    int64(s.Entity(edge.Pair.A).ID),
			Target:    int64(s.Entity(edge.Pair.B).ID),
			StartYear: edge.Meta.Start.Year(),
			EndYear:   endYear,
			DataJSON:  data,
		})
	}

	for _, adj := range g.AllAdjacency(s) {
		relationships = append(relationships, RelationshipRecord{
			Kind:     "adjacent",
			Source:   int64(s.Entity(adj.Region).ID),
			Target:   int64(s.Entity(adj.Neighbor).ID),
			DataJSON: "{}",
		})
	}

	for _, ev := range log.All() {
		var causedBy *int64
		if ev.CausedBy != nil {
			v := int64(*ev.CausedBy)
			causedBy = &v
		}
		data := "{}"
		if ev.Data != nil {
			if blob, err := json.Marshal(ev.Data); err == nil {
				data = string(blob)
			}
		}
		events = append(events, EventRecord{
			ID:          int64(ev.ID),
			Kind:        ev.Kind.String(),
			Year:        ev.Timestamp.Year(),
			Description: ev.Description,
			CausedBy:    causedBy,
			DataJSON:    data,
		})
		for _, p := range ev.Participants {
			participants = append(participants, ParticipantRecord{
				EventID:  int64(ev.ID),
				EntityID: int64(p.Entity),
				Role:     p.Role.String(),
			})
		}
	}

	return entities, relationships, events, participants
}
