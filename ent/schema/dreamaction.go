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

// DreamAction holds the schema definition for the DreamAction entity.
// Immutable audit row for one curation mutation. No updated_at; rows are
// append-only children of a DreamSession.
type DreamAction struct {
	ent.Schema
}

// Fields of the DreamAction.
func (DreamAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dream_action_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("action_type").
			Values("merge", "split", "update", "archive", "delete").
			Immutable(),
		field.Enum("phase").
			Values("light_sleep", "deep_sleep").
			Immutable(),
		field.JSON("source_memory_ids", []string{}).
			Immutable().
			Comment("Non-empty; the memories the action read"),
		field.JSON("result_memory_ids", []string{}).
			Optional().
			Immutable().
			Comment("Null for delete; new/updated memories otherwise"),
		field.JSON("before_state", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("after_state", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Text("reasoning").
			Optional().
			Nillable().
			Immutable().
			Comment("LLM reasoning; null for algorithmic (light-sleep) actions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DreamAction.
func (DreamAction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", DreamSession.Type).
			Ref("actions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DreamAction.
func (DreamAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}

// Annotations of the DreamAction.
func (DreamAction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dream_actions"},
	}
}
