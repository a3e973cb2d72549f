// Code generated by ent, DO NOT EDIT.

package knowledge

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the knowledge type in the database.
	Label = "knowledge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "knowledge_id"
	// FieldAnimaID holds the string denoting the anima_id field in the database.
	FieldAnimaID = "anima_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldSourceMemoryID holds the string denoting the source_memory_id field in the database.
	FieldSourceMemoryID = "source_memory_id"
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
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// AnimaFieldID holds the string denoting the ID field of the Anima.
	AnimaFieldID = "anima_id"
	// KnowledgeAuditLogFieldID holds the string denoting the ID field of the KnowledgeAuditLog.
	KnowledgeAuditLogFieldID = "audit_log_id"
	// Table holds the table name of the knowledge in the database.
	Table = "knowledge_items"
	// AnimaTable is the table that holds the anima relation/edge.
	AnimaTable = "knowledge_items"
	// AnimaInverseTable is the table name for the Anima entity.
	// It exists in this package in order to avoid circular dependency with the "anima" package.
	AnimaInverseTable = "animas"
	// AnimaColumn is the table column denoting the anima relation/edge.
	AnimaColumn = "anima_id"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "knowledge_audit_logs"
	// AuditLogsInverseTable is the table name for the KnowledgeAuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgeauditlog" package.
	AuditLogsInverseTable = "knowledge_audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "knowledge_id"
)

// Columns holds all SQL columns for knowledge fields.
var Columns = []string{
	FieldID,
	FieldAnimaID,
	FieldType,
	FieldTopic,
	FieldContent,
	FieldSummary,
	FieldConfidence,
	FieldSourceType,
	FieldSourceMemoryID,
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
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeFact       Type = "fact"
	TypeConcept    Type = "concept"
	TypeMethod     Type = "method"
	TypePrinciple  Type = "principle"
	TypeExperience Type = "experience"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeFact, TypeConcept, TypeMethod, TypePrinciple, TypeExperience:
		return nil
	default:
		return fmt.Errorf("knowledge: invalid enum value for type field: %q", _type)
	}
}

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceTypeInternal is the default value of the SourceType enum.
const DefaultSourceType = SourceTypeInternal

// SourceType values.
const (
	SourceTypeInternal SourceType = "internal"
	SourceTypeExternal SourceType = "external"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeInternal, SourceTypeExternal:
		return nil
	default:
		return fmt.Errorf("knowledge: invalid enum value for source_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Knowledge queries.
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

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// BySourceMemoryID orders the results by the source_memory_id field.
func BySourceMemoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMemoryID, opts...).ToFunc()
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

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnimaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnimaInverseTable, AnimaFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, KnowledgeAuditLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}
