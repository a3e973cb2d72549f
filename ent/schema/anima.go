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

// Anima holds the schema definition for the Anima entity.
// An anima is the logical agent that owns all memory state: events, memories,
// knowledge, identity, configs, packs and dream sessions hang off it.
type Anima struct {
	ent.Schema
}

// Fields of the Anima.
func (Anima) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("anima_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Bool("is_dormant").
			Default(false),
		field.Time("last_activity_at").
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

// Edges of the Anima.
func (Anima) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("animas").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memories", Memory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("knowledge", Knowledge.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("identity", Identity.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("synthesis_config", SynthesisConfig.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("io_config", IOConfig.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memory_packs", MemoryPack.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dream_sessions", DreamSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Anima.
func (Anima) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "is_deleted"),
		index.Fields("is_dormant"),
	}
}

// Annotations of the Anima.
func (Anima) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "animas"},
	}
}
