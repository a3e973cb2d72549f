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

// DreamSession holds the schema definition for the DreamSession entity.
// One dream curation cycle over an anima's memories. At most one running
// session per anima, enforced by a partial unique index on top of the
// engine pre-flight check.
type DreamSession struct {
	ent.Schema
}

// Fields of the DreamSession.
func (DreamSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dream_session_id").
			Unique().
			Immutable(),
		field.String("anima_id").
			Immutable(),
		field.Enum("trigger_type").
			Values("scheduled", "manual").
			Immutable(),
		field.String("triggered_by").
			Optional().
			Nillable().
			Immutable(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Int("memories_reviewed").
			Default(0),
		field.Int("memories_modified").
			Default(0),
		field.Int("memories_created").
			Default(0),
		field.Int("memories_archived").
			Default(0),
		field.Int("memories_deleted").
			Default(0),
		field.Text("summary").
			Optional().
			Nillable(),
		field.JSON("config_snapshot", map[string]interface{}{}).
			Optional().
			Comment("Curation config frozen at session start"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DreamSession.
func (DreamSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("anima", Anima.Type).
			Ref("dream_sessions").
			Field("anima_id").
			Unique().
			Required().
			Immutable(),
		edge.To("actions", DreamAction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DreamSession.
func (DreamSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("anima_id", "status"),
		index.Fields("status", "started_at"),
		index.Fields("anima_id").
			Unique().
			StorageKey("dreamsession_running_anima_id").
			Annotations(entsql.IndexWhere("status = 'running'")),
	}
}

// Annotations of the DreamSession.
func (DreamSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dream_sessions"},
	}
}
