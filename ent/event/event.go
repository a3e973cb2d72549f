// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldAnimaID holds the string denoting the anima_id field in the database.
	FieldAnimaID = "anima_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldSourceURI holds the string denoting the source_uri field in the database.
	FieldSourceURI = "source_uri"
	// FieldDedupeKey holds the string denoting the dedupe_key field in the database.
	FieldDedupeKey = "dedupe_key"
	// FieldImportance holds the string denoting the importance field in the database.
	FieldImportance = "importance"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnima holds the string denoting the anima edge name in mutations.
	EdgeAnima = "anima"
	// EdgeMemoryLinks holds the string denoting the memory_links edge name in mutations.
	EdgeMemoryLinks = "memory_links"
	// AnimaFieldID holds the string denoting the ID field of the Anima.
	AnimaFieldID = "anima_id"
	// MemoryEventFieldID holds the string denoting the ID field of the MemoryEvent.
	MemoryEventFieldID = "memory_event_id"
	// Table holds the table name of the event in the database.
	Table = "events"
	// AnimaTable is the table that holds the anima relation/edge.
	AnimaTable = "events"
	// AnimaInverseTable is the table name for the Anima entity.
	// It exists in this package in order to avoid circular dependency with the "anima" package.
	AnimaInverseTable = "animas"
	// AnimaColumn is the table column denoting the anima relation/edge.
	AnimaColumn = "anima_id"
	// MemoryLinksTable is the table that holds the memory_links relation/edge.
	MemoryLinksTable = "memory_events"
	// MemoryLinksInverseTable is the table name for the MemoryEvent entity.
	// It exists in this package in order to avoid circular dependency with the "memoryevent" package.
	MemoryLinksInverseTable = "memory_events"
	// MemoryLinksColumn is the table column denoting the memory_links relation/edge.
	MemoryLinksColumn = "event_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldAnimaID,
	FieldType,
	FieldRole,
	FieldAuthor,
	FieldContent,
	FieldSummary,
	FieldOccurredAt,
	FieldSessionID,
	FieldMetadata,
	FieldSourceURI,
	FieldDedupeKey,
	FieldImportance,
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
	// ImportanceValidator is a validator for the "importance" field. It is called by the builders before save.
	ImportanceValidator func(float64) error
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnimaID orders the results by the anima_id field.
func ByAnimaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimaID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySourceURI orders the results by the source_uri field.
func BySourceURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURI, opts...).ToFunc()
}

// ByDedupeKey orders the results by the dedupe_key field.
func ByDedupeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupeKey, opts...).ToFunc()
}

// ByImportance orders the results by the importance field.
func ByImportance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportance, opts...).ToFunc()
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

// ByMemoryLinksCount orders the results by memory_links count.
func ByMemoryLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMemoryLinksStep(), opts...)
	}
}

// ByMemoryLinks orders the results by memory_links terms.
func ByMemoryLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoryLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnimaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnimaInverseTable, AnimaFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
	)
}
func newMemoryLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoryLinksInverseTable, MemoryEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MemoryLinksTable, MemoryLinksColumn),
	)
}
