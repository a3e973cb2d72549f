// Code generated by ent, DO NOT EDIT.

package identity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the identity type in the database.
	Label = "identity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "identity_id"
	// FieldAnimaID holds the string denoting the anima_id field in the database.
	FieldAnimaID = "anima_id"
	// FieldPersonalityType holds the string denoting the personality_type field in the database.
	FieldPersonalityType = "personality_type"
	// FieldCommunicationStyle holds the string denoting the communication_style field in the database.
	FieldCommunicationStyle = "communication_style"
	// FieldSelfReflection holds the string denoting the self_reflection field in the database.
	FieldSelfReflection = "self_reflection"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnima holds the string denoting the anima edge name in mutations.
	EdgeAnima = "anima"
	// AnimaFieldID holds the string denoting the ID field of the Anima.
	AnimaFieldID = "anima_id"
	// Table holds the table name of the identity in the database.
	Table = "identities"
	// AnimaTable is the table that holds the anima relation/edge.
	AnimaTable = "identities"
	// AnimaInverseTable is the table name for the Anima entity.
	// It exists in this package in order to avoid circular dependency with the "anima" package.
	AnimaInverseTable = "animas"
	// AnimaColumn is the table column denoting the anima relation/edge.
	AnimaColumn = "anima_id"
)

// Columns holds all SQL columns for identity fields.
var Columns = []string{
	FieldID,
	FieldAnimaID,
	FieldPersonalityType,
	FieldCommunicationStyle,
	FieldSelfReflection,
	FieldIsDeleted,
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
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Identity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnimaID orders the results by the anima_id field.
func ByAnimaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimaID, opts...).ToFunc()
}

// ByPersonalityType orders the results by the personality_type field.
func ByPersonalityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonalityType, opts...).ToFunc()
}

// ByCommunicationStyle orders the results by the communication_style field.
func ByCommunicationStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommunicationStyle, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
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
