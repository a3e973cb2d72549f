// Code generated by ent, DO NOT EDIT.

package ioconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ioconfig type in the database.
	Label = "io_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "io_config_id"
	// FieldAnimaID holds the string denoting the anima_id field in the database.
	FieldAnimaID = "anima_id"
	// FieldReadSettings holds the string denoting the read_settings field in the database.
	FieldReadSettings = "read_settings"
	// FieldWriteSettings holds the string denoting the write_settings field in the database.
	FieldWriteSettings = "write_settings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnima holds the string denoting the anima edge name in mutations.
	EdgeAnima = "anima"
	// AnimaFieldID holds the string denoting the ID field of the Anima.
	AnimaFieldID = "anima_id"
	// Table holds the table name of the ioconfig in the database.
	Table = "io_configs"
	// AnimaTable is the table that holds the anima relation/edge.
	AnimaTable = "io_configs"
	// AnimaInverseTable is the table name for the Anima entity.
	// It exists in this package in order to avoid circular dependency with the "anima" package.
	AnimaInverseTable = "animas"
	// AnimaColumn is the table column denoting the anima relation/edge.
	AnimaColumn = "anima_id"
)

// Columns holds all SQL columns for ioconfig fields.
var Columns = []string{
	FieldID,
	FieldAnimaID,
	FieldReadSettings,
	FieldWriteSettings,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the IOConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnimaID orders the results by the anima_id field.
func ByAnimaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimaID, opts...).ToFunc()
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
