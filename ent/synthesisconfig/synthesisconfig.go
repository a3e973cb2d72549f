// Code generated by ent, DO NOT EDIT.

package synthesisconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the synthesisconfig type in the database.
	Label = "synthesis_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "synthesis_config_id"
	// FieldAnimaID holds the string denoting the anima_id field in the database.
	FieldAnimaID = "anima_id"
	// FieldTimeWeight holds the string denoting the time_weight field in the database.
	FieldTimeWeight = "time_weight"
	// FieldEventWeight holds the string denoting the event_weight field in the database.
	FieldEventWeight = "event_weight"
	// FieldTokenWeight holds the string denoting the token_weight field in the database.
	FieldTokenWeight = "token_weight"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldMaxTokens holds the string denoting the max_tokens field in the database.
	FieldMaxTokens = "max_tokens"
	// FieldIntervalHours holds the string denoting the interval_hours field in the database.
	FieldIntervalHours = "interval_hours"
	// FieldLastSynthesisCheckAt holds the string denoting the last_synthesis_check_at field in the database.
	FieldLastSynthesisCheckAt = "last_synthesis_check_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnima holds the string denoting the anima edge name in mutations.
	EdgeAnima = "anima"
	// AnimaFieldID holds the string denoting the ID field of the Anima.
	AnimaFieldID = "anima_id"
	// Table holds the table name of the synthesisconfig in the database.
	Table = "synthesis_configs"
	// AnimaTable is the table that holds the anima relation/edge.
	AnimaTable = "synthesis_configs"
	// AnimaInverseTable is the table name for the Anima entity.
	// It exists in this package in order to avoid circular dependency with the "anima" package.
	AnimaInverseTable = "animas"
	// AnimaColumn is the table column denoting the anima relation/edge.
	AnimaColumn = "anima_id"
)

// Columns holds all SQL columns for synthesisconfig fields.
var Columns = []string{
	FieldID,
	FieldAnimaID,
	FieldTimeWeight,
	FieldEventWeight,
	FieldTokenWeight,
	FieldThreshold,
	FieldTemperature,
	FieldMaxTokens,
	FieldIntervalHours,
	FieldLastSynthesisCheckAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimeWeight holds the default value on creation for the "time_weight" field.
	DefaultTimeWeight float64
	// TimeWeightValidator is a validator for the "time_weight" field. It is called by the builders before save.
	TimeWeightValidator func(float64) error
	// DefaultEventWeight holds the default value on creation for the "event_weight" field.
	DefaultEventWeight float64
	// EventWeightValidator is a validator for the "event_weight" field. It is called by the builders before save.
	EventWeightValidator func(float64) error
	// DefaultTokenWeight holds the default value on creation for the "token_weight" field.
	DefaultTokenWeight float64
	// TokenWeightValidator is a validator for the "token_weight" field. It is called by the builders before save.
	TokenWeightValidator func(float64) error
	// DefaultThreshold holds the default value on creation for the "threshold" field.
	DefaultThreshold float64
	// ThresholdValidator is a validator for the "threshold" field. It is called by the builders before save.
	ThresholdValidator func(float64) error
	// DefaultTemperature holds the default value on creation for the "temperature" field.
	DefaultTemperature float64
	// TemperatureValidator is a validator for the "temperature" field. It is called by the builders before save.
	TemperatureValidator func(float64) error
	// DefaultMaxTokens holds the default value on creation for the "max_tokens" field.
	DefaultMaxTokens int
	// MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	MaxTokensValidator func(int) error
	// DefaultIntervalHours holds the default value on creation for the "interval_hours" field.
	DefaultIntervalHours int
	// IntervalHoursValidator is a validator for the "interval_hours" field. It is called by the builders before save.
	IntervalHoursValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SynthesisConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnimaID orders the results by the anima_id field.
func ByAnimaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimaID, opts...).ToFunc()
}

// ByTimeWeight orders the results by the time_weight field.
func ByTimeWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeWeight, opts...).ToFunc()
}

// ByEventWeight orders the results by the event_weight field.
func ByEventWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventWeight, opts...).ToFunc()
}

// ByTokenWeight orders the results by the token_weight field.
func ByTokenWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenWeight, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByMaxTokens orders the results by the max_tokens field.
func ByMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokens, opts...).ToFunc()
}

// ByIntervalHours orders the results by the interval_hours field.
func ByIntervalHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalHours, opts...).ToFunc()
}

// ByLastSynthesisCheckAt orders the results by the last_synthesis_check_at field.
func ByLastSynthesisCheckAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSynthesisCheckAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAnimaField orders the results by anima field.
func ByAnimaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnimaStep(), sql.OrderByField(field, opts...))
	}
}
func newAnimaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnimaInverseTable, AnimaFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, AnimaTable, AnimaColumn),
	)
}
