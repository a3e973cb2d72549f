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

// Memory holds the schema definition for the Memory entity.
// A memory is a consolidated interpretation synthesized from one or more
// events. Lifecycle: active → decaying → archived, driven by dream curation.
type Memory struct {
	ent.Schema
}

// Fields of the Memory.
func (Memory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("anima_id").
			Immutable(),
		field.Text("content"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Float("importance").
			Optional().
			Nillable().
			Range(0, 1),
		field.Float("confidence").
			Optional().
			Nillable().
			Range(0, 1),
		field.Enum("state").
			Values("active", "decaying", "archived").
			Default("active"),
		field.Float("recency_score").
			Optional().
			Nillable().
			Range(0, 1),
		field.Float("decay_score").
			Optional().
			Nillable().
			Range(0, 1),
		field.Int("access_count").
			Default(0).
			Comment("Each retrieval hit extends the decay half-life"),
		field.Time("last_accessed_at").
			Optional().
			Nillable(),
		field.Time("time_start").
			Optional().
			Nillable().
			Comment("Earliest occurred_at among source events"),
		field.Time("time_end").
			Optional().
			Nillable().
			Comment("Latest occurred_at among source events"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("May carry merged_from / split_from provenance"),
		field.JSON("embedding", []float32{}).
			Optional().
			Comment("1536-dim vector; cosine re-rank happens in-process"),
		field.String("embedding_model").
			Optional().
			Nillable(),
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

// Edges of the Memory.
func (Memory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("anima", Anima.Type).
			Ref("memories").
			Field("anima_id").
			Unique().
			Required().
			Immutable(),
		edge.To("event_links", MemoryEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Memory.
func (Memory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("anima_id", "state"),
		index.Fields("anima_id", "is_deleted"),
		index.Fields("anima_id", "created_at"),
	}
}

// Annotations of the Memory.
func (Memory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "memories"},
	}
}
