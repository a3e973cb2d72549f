package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// SynthesisConfig holds the schema definition for the SynthesisConfig entity.
// Per-anima 1:1 configuration for the accumulation-score threshold gate.
// Defaults are materialized on first access.
type SynthesisConfig struct {
	ent.Schema
}

// Fields of the SynthesisConfig.
func (SynthesisConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("synthesis_config_id").
			Unique().
			Immutable(),
		field.String("anima_id").
			Unique().
			Immutable(),
		field.Float("time_weight").
			Default(1.0).
			Range(0, 10),
		field.Float("event_weight").
			Default(0.5).
			Range(0, 10),
		field.Float("token_weight").
			Default(0.0003).
			Range(0, 1),
		field.Float("threshold").
			Default(10.0).
			Range(0.1, 1000),
		field.Float("temperature").
			Default(0.7).
			Range(0, 2),
		field.Int("max_tokens").
			Default(2048).
			Range(256, 32768),
		field.Int("interval_hours").
			Default(6).
			Range(1, 168),
		field.Time("last_synthesis_check_at").
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

// Edges of the SynthesisConfig.
func (SynthesisConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("anima", Anima.Type).
			Ref("synthesis_config").
			Field("anima_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Annotations of the SynthesisConfig.
func (SynthesisConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "synthesis_configs"},
	}
}
