// Code generated by ent, DO NOT EDIT.

package knowledgeauditlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the knowledgeauditlog type in the database.
	Label = "knowledge_audit_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_log_id"
	// FieldKnowledgeID holds the string denoting the knowledge_id field in the database.
	FieldKnowledgeID = "knowledge_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldBeforeState holds the string denoting the before_state field in the database.
	FieldBeforeState = "before_state"
	// FieldAfterState holds the string denoting the after_state field in the database.
	FieldAfterState = "after_state"
	// FieldChangeSummary holds the string denoting the change_summary field in the database.
	FieldChangeSummary = "change_summary"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeKnowledge holds the string denoting the knowledge edge name in mutations.
	EdgeKnowledge = "knowledge"
	// KnowledgeFieldID holds the string denoting the ID field of the Knowledge.
	KnowledgeFieldID = "knowledge_id"
	// Table holds the table name of the knowledgeauditlog in the database.
	Table = "knowledge_audit_logs"
	// KnowledgeTable is the table that holds the knowledge relation/edge.
	KnowledgeTable = "knowledge_audit_logs"
	// KnowledgeInverseTable is the table name for the Knowledge entity.
	// It exists in this package in order to avoid circular dependency with the "knowledge" package.
	KnowledgeInverseTable = "knowledge_items"
	// KnowledgeColumn is the table column denoting the knowledge relation/edge.
	KnowledgeColumn = "knowledge_id"
)

// Columns holds all SQL columns for knowledgeauditlog fields.
var Columns = []string{
	FieldID,
	FieldKnowledgeID,
	FieldAction,
	FieldSourceType,
	FieldSourceID,
	FieldBeforeState,
	FieldAfterState,
	FieldChangeSummary,
	FieldTriggeredBy,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionRestore Action = "restore"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionRestore:
		return nil
	default:
		return fmt.Errorf("knowledgeauditlog: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the KnowledgeAuditLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKnowledgeID orders the results by the knowledge_id field.
func ByKnowledgeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnowledgeID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByChangeSummary orders the results by the change_summary field.
func ByChangeSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeSummary, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByKnowledgeField orders the results by knowledge field.
func ByKnowledgeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeStep(), sql.OrderByField(field, opts...))
	}
}
func newKnowledgeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeInverseTable, KnowledgeFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, KnowledgeTable, KnowledgeColumn),
	)
}
