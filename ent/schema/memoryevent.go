package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryEvent holds the schema definition for the MemoryEvent entity.
// Provenance junction connecting a memory to its source events. Rows are
// immutable; both sides must belong to the same anima (validated in the
// service layer, since the FK graph alone cannot express it).
type MemoryEvent struct {
	ent.Schema
}

// Fields of the MemoryEvent.
func (MemoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_event_id").
			Unique().
			Immutable(),
		field.String("memory_id").
			Immutable(),
		field.String("event_id").
			Immutable(),
		field.Float("link_strength").
			Optional().
			Nillable().
			Immutable().
			Range(0, 1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MemoryEvent.
func (MemoryEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("memory", Memory.Type).
			Ref("event_links").
			Field("memory_id").
			Unique().
			Required().
			Immutable(),
		edge.From("event", Event.Type).
			Ref("memory_links").
			Field("event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MemoryEvent.
func (MemoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("memory_id", "event_id").
			Unique(),
		index.Fields("event_id"),
	}
}

// Annotations of the MemoryEvent.
func (MemoryEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "memory_events"},
	}
}
