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

// MemoryPack holds the schema definition for the MemoryPack entity.
// A persisted compiled pack artefact. Hard-deleted on anima cascade and by
// the retention janitor.
type MemoryPack struct {
	ent.Schema
}

// Fields of the MemoryPack.
func (MemoryPack) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pack_id").
			Unique().
			Immutable(),
		field.String("anima_id").
			Immutable(),
		field.Text("query").
			Optional().
			Nillable(),
		field.String("preset").
			Optional().
			Nillable(),
		field.Int("session_count").
			Default(0),
		field.Int("knowledge_count").
			Default(0),
		field.Int("long_term_count").
			Default(0),
		field.Int("token_count").
			Default(0),
		field.Int("max_tokens").
			Default(0),
		field.JSON("content", map[string]interface{}{}).
			Optional().
			Comment("Serialized pack payload: identity, temporal context, layers, config echo"),
		field.Time("compiled_at").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the MemoryPack.
func (MemoryPack) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("anima", Anima.Type).
			Ref("memory_packs").
			Field("anima_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MemoryPack.
func (MemoryPack) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("anima_id", "compiled_at"),
	}
}

// Annotations of the MemoryPack.
func (MemoryPack) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "memory_packs"},
	}
}
