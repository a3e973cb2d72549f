// Code generated by ent, DO NOT EDIT.

package memory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the memory type in the database.
	Label = "memory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldAnimaID holds the string denoting the anima_id field in the database.
	FieldAnimaID = "anima_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldImportance holds the string denoting the importance field in the database.
	FieldImportance = "importance"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldRecencyScore holds the string denoting the recency_score field in the database.
	FieldRecencyScore = "recency_score"
	// FieldDecayScore holds the string denoting the decay_score field in the database.
	FieldDecayScore = "decay_score"
	// FieldAccessCount holds the string denoting the access_count field in the database.
	FieldAccessCount = "access_count"
	// FieldLastAccessedAt holds the string denoting the last_accessed_at field in the database.
	FieldLastAccessedAt = "last_accessed_at"
	// FieldTimeStart holds the string denoting the time_start field in the database.
	FieldTimeStart = "time_start"
	// FieldTimeEnd holds the string denoting the time_end field in the database.
	FieldTimeEnd = "time_end"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldEmbeddingModel holds the string denoting the embedding_model field in the database.
	FieldEmbeddingModel = "embedding_model"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnima holds the string denoting the anima edge name in mutations.
	EdgeAnima = "anima"
	// EdgeEventLinks holds the string denoting the event_links edge name in mutations.
	EdgeEventLinks = "event_links"
	// AnimaFieldID holds the string denoting the ID field of the Anima.
	AnimaFieldID = "anima_id"
	// MemoryEventFieldID holds the string denoting the ID field of the MemoryEvent.
	MemoryEventFieldID = "memory_event_id"
	// Table holds the table name of the memory in the database.
	Table = "memories"
	// AnimaTable is the table that holds the anima relation/edge.
	AnimaTable = "memories"
	// AnimaInverseTable is the table name for the Anima entity.
	// It exists in this package in order to avoid circular dependency with the "anima" package.
	AnimaInverseTable = "animas"
	// AnimaColumn is the table column denoting the anima relation/edge.
	AnimaColumn = "anima_id"
	// EventLinksTable is the table that holds the event_links relation/edge.
	EventLinksTable = "memory_events"
	// EventLinksInverseTable is the table name for the MemoryEvent entity.
	// It exists in this package in order to avoid circular dependency with the "memoryevent" package.
	EventLinksInverseTable = "memory_events"
	// EventLinksColumn is the table column denoting the event_links relation/edge.
	EventLinksColumn = "memory_id"
)

// Columns holds all SQL columns for memory fields.
var Columns = []string{
	FieldID,
	FieldAnimaID,
	FieldContent,
	FieldSummary,
	FieldImportance,
	FieldConfidence,
	FieldState,
	FieldRecencyScore,
	FieldDecayScore,
	FieldAccessCount,
	FieldLastAccessedAt,
	FieldTimeStart,
	FieldTimeEnd,
	FieldMetadata,
	FieldEmbedding,
	FieldEmbeddingModel,
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
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// RecencyScoreValidator is a validator for the "recency_score" field. It is called by the builders before save.
	RecencyScoreValidator func(float64) error
	// DecayScoreValidator is a validator for the "decay_score" field. It is called by the builders before save.
	DecayScoreValidator func(float64) error
	// DefaultAccessCount holds the default value on creation for the "access_count" field.
	DefaultAccessCount int
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateActive is the default value of the State enum.
const DefaultState = StateActive

// State values.
const (
	StateActive   State = "active"
	StateDecaying State = "decaying"
	StateArchived State = "archived"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateActive, StateDecaying, StateArchived:
		return nil
	default:
		return fmt.Errorf("memory: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Memory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnimaID orders the results by the anima_id field.
func ByAnimaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimaID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByImportance orders the results by the importance field.
func ByImportance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportance, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByRecencyScore orders the results by the recency_score field.
func ByRecencyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecencyScore, opts...).ToFunc()
}

// ByDecayScore orders the results by the decay_score field.
func ByDecayScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecayScore, opts...).ToFunc()
}

// ByAccessCount orders the results by the access_count field.
func ByAccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessCount, opts...).ToFunc()
}

// ByLastAccessedAt orders the results by the last_accessed_at field.
func ByLastAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessedAt, opts...).ToFunc()
}

// ByTimeStart orders the results by the time_start field.
func ByTimeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeStart, opts...).ToFunc()
}

// ByTimeEnd orders the results by the time_end field.
func ByTimeEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeEnd, opts...).ToFunc()
}

// ByEmbeddingModel orders the results by the embedding_model field.
func ByEmbeddingModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbeddingModel, opts...).ToFunc()
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

// ByEventLinksCount orders the results by event_links count.
func ByEventLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventLinksStep(), opts...)
	}
}

// ByEventLinks orders the results by event_links terms.
func ByEventLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnimaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnimaInverseTable, AnimaFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
	)
}
func newEventLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventLinksInverseTable, MemoryEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventLinksTable, EventLinksColumn),
	)
}
