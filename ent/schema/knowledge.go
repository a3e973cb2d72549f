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

// Knowledge holds the schema definition for the Knowledge entity.
// Durable, epistemically-typed distillations extracted from memories.
type Knowledge struct {
	ent.Schema
}

// Fields of the Knowledge.
func (Knowledge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("knowledge_id").
			Unique().
			Immutable(),
		field.String("anima_id").
			Immutable(),
		field.Enum("type").
			Values("fact", "concept", "method", "principle", "experience"),
		field.String("topic").
			Optional().
			Nillable(),
		field.Text("content"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Float("confidence").
			Optional().
			Nillable().
			Range(0, 1),
		field.Enum("source_type").
			Values("internal", "external").
			Default("internal"),
		field.String("source_memory_id").
			Optional().
			Nillable().
			Comment("Originating memory, used by the dedup policy"),
		field.JSON("embedding", []float32{}).
			Optional(),
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

// Edges of the Knowledge.
func (Knowledge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("anima", Anima.Type).
			Ref("knowledge").
			Field("anima_id").
			Unique().
			Required().
			Immutable(),
		edge.To("audit_logs", KnowledgeAuditLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Knowledge.
func (Knowledge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("anima_id", "type"),
		index.Fields("anima_id", "is_deleted"),
		index.Fields("source_memory_id"),
	}
}

// Annotations of the Knowledge.
func (Knowledge) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "knowledge_items"},
	}
}
