package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Identity holds the schema definition for the Identity entity.
// Per-anima 1:1 free-form self-model consumed as prose by the pack compiler.
type Identity struct {
	ent.Schema
}

// Fields of the Identity.
func (Identity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("identity_id").
			Unique().
			Immutable(),
		field.String("anima_id").
			Unique().
			Immutable(),
		field.String("personality_type").
			Optional().
			Nillable(),
		field.String("communication_style").
			Optional().
			Nillable(),
		field.JSON("self_reflection", map[string]interface{}{}).
			Optional().
			Comment("Nested tree: being, purpose, principles, philosophy, relational, arc"),
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

// Edges of the Identity.
func (Identity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("anima", Anima.Type).
			Ref("identity").
			Field("anima_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Annotations of the Identity.
func (Identity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "identities"},
	}
}
