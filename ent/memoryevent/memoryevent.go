// Code generated by ent, DO NOT EDIT.

package memoryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the memoryevent type in the database.
	Label = "memory_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_event_id"
	// FieldMemoryID holds the string denoting the memory_id field in the database.
	FieldMemoryID = "memory_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldLinkStrength holds the string denoting the link_strength field in the database.
	FieldLinkStrength = "link_strength"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMemory holds the string denoting the memory edge name in mutations.
	EdgeMemory = "memory"
	// EdgeEvent holds the string denoting the event edge name in mutations.
	EdgeEvent = "event"
	// MemoryFieldID holds the string denoting the ID field of the Memory.
	MemoryFieldID = "memory_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// Table holds the table name of the memoryevent in the database.
	Table = "memory_events"
	// MemoryTable is the table that holds the memory relation/edge.
	MemoryTable = "memory_events"
	// MemoryInverseTable is the table name for the Memory entity.
	// It exists in this package in order to avoid circular dependency with the "memory" package.
	MemoryInverseTable = "memories"
	// MemoryColumn is the table column denoting the memory relation/edge.
	MemoryColumn = "memory_id"
	// EventTable is the table that holds the event relation/edge.
	EventTable = "memory_events"
	// EventInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventInverseTable = "events"
	// EventColumn is the table column denoting the event relation/edge.
	EventColumn = "event_id"
)

// Columns holds all SQL columns for memoryevent fields.
var Columns = []string{
	FieldID,
	FieldMemoryID,
	FieldEventID,
	FieldLinkStrength,
	FieldCreatedAt,
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
	// LinkStrengthValidator is a validator for the "link_strength" field. It is called by the builders before save.
	LinkStrengthValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the MemoryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMemoryID orders the results by the memory_id field.
func ByMemoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByLinkStrength orders the results by the link_strength field.
func ByLinkStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkStrength, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMemoryField orders the results by memory field.
func ByMemoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventField orders the results by event field.
func ByEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventStep(), sql.OrderByField(field, opts...))
	}
}
func newMemoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoryInverseTable, MemoryFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MemoryTable, MemoryColumn),
	)
}
func newEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
	)
}
