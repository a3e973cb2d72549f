package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// IOConfig holds the schema definition for the IOConfig entity.
// Per-anima 1:1 deep-merged JSON settings governing event capture and
// pack-compilation defaults.
type IOConfig struct {
	ent.Schema
}

// Fields of the IOConfig.
func (IOConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("io_config_id").
			Unique().
			Immutable(),
		field.String("anima_id").
			Unique().
			Immutable(),
		field.JSON("read_settings", map[string]interface{}{}).
			Optional(),
		field.JSON("write_settings", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the IOConfig.
func (IOConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("anima", Anima.Type).
			Ref("io_config").
			Field("anima_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Annotations of the IOConfig.
func (IOConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "io_configs"},
	}
}
