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

// APIKey holds the schema definition for the APIKey entity.
// Stores a bcrypt hash of the full key; the plaintext is returned exactly
// once at creation and is never retrievable afterwards.
type APIKey struct {
	ent.Schema
}

// Fields of the APIKey.
func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("api_key_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("key_hash").
			Sensitive().
			Immutable(),
		field.String("key_prefix").
			MaxLen(12).
			Immutable().
			Comment("First 12 chars of the full key, used for lookup"),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Int("request_count").
			Default(0),
		field.Bool("is_active").
			Default(true),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the APIKey.
func (APIKey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("api_keys").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the APIKey.
func (APIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key_prefix"),
		index.Fields("user_id", "is_active"),
	}
}

// Annotations of the APIKey.
func (APIKey) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "api_keys"},
	}
}
