// Code generated by ent, DO NOT EDIT.

package memorypack

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the memorypack type in the database.
	Label = "memory_pack"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pack_id"
	// FieldAnimaID holds the string denoting the anima_id field in the database.
	FieldAnimaID = "anima_id"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldPreset holds the string denoting the preset field in the database.
	FieldPreset = "preset"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldKnowledgeCount holds the string denoting the knowledge_count field in the database.
	FieldKnowledgeCount = "knowledge_count"
	// FieldLongTermCount holds the string denoting the long_term_count field in the database.
	FieldLongTermCount = "long_term_count"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldMaxTokens holds the string denoting the max_tokens field in the database.
	FieldMaxTokens = "max_tokens"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCompiledAt holds the string denoting the compiled_at field in the database.
	FieldCompiledAt = "compiled_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnima holds the string denoting the anima edge name in mutations.
	EdgeAnima = "anima"
	// AnimaFieldID holds the string denoting the ID field of the Anima.
	AnimaFieldID = "anima_id"
	// Table holds the table name of the memorypack in the database.
	Table = "memory_packs"
	// AnimaTable is the table that holds the anima relation/edge.
	AnimaTable = "memory_packs"
	// AnimaInverseTable is the table name for the Anima entity.
	// It exists in this package in order to avoid circular dependency with the "anima" package.
	AnimaInverseTable = "animas"
	// AnimaColumn is the table column denoting the anima relation/edge.
	AnimaColumn = "anima_id"
)

// Columns holds all SQL columns for memorypack fields.
var Columns = []string{
	FieldID,
	FieldAnimaID,
	FieldQuery,
	FieldPreset,
	FieldSessionCount,
	FieldKnowledgeCount,
	FieldLongTermCount,
	FieldTokenCount,
	FieldMaxTokens,
	FieldContent,
	FieldCompiledAt,
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
	// DefaultSessionCount holds the default value on creation for the "session_count" field.
	DefaultSessionCount int
	// DefaultKnowledgeCount holds the default value on creation for the "knowledge_count" field.
	DefaultKnowledgeCount int
	// DefaultLongTermCount holds the default value on creation for the "long_term_count" field.
	DefaultLongTermCount int
	// DefaultTokenCount holds the default value on creation for the "token_count" field.
	DefaultTokenCount int
	// DefaultMaxTokens holds the default value on creation for the "max_tokens" field.
	DefaultMaxTokens int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the MemoryPack queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnimaID orders the results by the anima_id field.
func ByAnimaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimaID, opts...).ToFunc()
}

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// ByPreset orders the results by the preset field.
func ByPreset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreset, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// ByKnowledgeCount orders the results by the knowledge_count field.
func ByKnowledgeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnowledgeCount, opts...).ToFunc()
}

// ByLongTermCount orders the results by the long_term_count field.
func ByLongTermCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongTermCount, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByMaxTokens orders the results by the max_tokens field.
func ByMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokens, opts...).ToFunc()
}

// ByCompiledAt orders the results by the compiled_at field.
func ByCompiledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompiledAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
	)
}
