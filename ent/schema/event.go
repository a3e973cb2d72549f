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

// Event holds the schema definition for the Event entity.
// Events are atomic experiences (messages in/out, tool calls) belonging to an
// anima. Content is immutable after create; soft delete preserves provenance.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("anima_id").
			Immutable(),
		field.String("type").
			Immutable().
			Comment("Closed set: message.in, message.out, tool.call, tool.result, system"),
		field.String("role").
			Optional().
			Nillable(),
		field.String("author").
			Optional().
			Nillable(),
		field.Text("content").
			Immutable(),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Time("occurred_at").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Conversation correlator, not a dream session"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("source_uri").
			Optional().
			Nillable(),
		field.String("dedupe_key").
			Optional().
			Nillable().
			Immutable().
			Comment("32 hex chars of SHA-256(anima|type|content[:100]|occurred_at|source)"),
		field.Float("importance").
			Optional().
			Nillable().
			Range(0, 1),
		field.Bool("is_deleted").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("anima", Anima.Type).
			Ref("events").
			Field("anima_id").
			Unique().
			Required().
			Immutable(),
		edge.To("memory_links", MemoryEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("anima_id", "occurred_at"),
		index.Fields("anima_id", "type"),
		index.Fields("anima_id", "is_deleted"),
		index.Fields("session_id"),
		index.Fields("anima_id", "dedupe_key").
			Unique().
			Annotations(entsql.IndexWhere("dedupe_key IS NOT NULL")),
	}
}

// Annotations of the Event.
func (Event) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "events"},
	}
}
