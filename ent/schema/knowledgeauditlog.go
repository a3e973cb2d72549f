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

// KnowledgeAuditLog holds the schema definition for the KnowledgeAuditLog
// entity. Immutable append-only trail of every knowledge mutation.
type KnowledgeAuditLog struct {
	ent.Schema
}

// Fields of the KnowledgeAuditLog.
func (KnowledgeAuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_log_id").
			Unique().
			Immutable(),
		field.String("knowledge_id").
			Immutable(),
		field.Enum("action").
			Values("create", "update", "delete", "restore").
			Immutable(),
		field.String("source_type").
			Optional().
			Nillable().
			Immutable().
			Comment("e.g. 'memory' for pipeline-originated changes"),
		field.String("source_id").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("before_state", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("after_state", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Text("change_summary").
			Optional().
			Nillable().
			Immutable(),
		field.String("triggered_by").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the KnowledgeAuditLog.
func (KnowledgeAuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("knowledge", Knowledge.Type).
			Ref("audit_logs").
			Field("knowledge_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the KnowledgeAuditLog.
func (KnowledgeAuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("knowledge_id", "created_at"),
	}
}

// Annotations of the KnowledgeAuditLog.
func (KnowledgeAuditLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "knowledge_audit_logs"},
	}
}
