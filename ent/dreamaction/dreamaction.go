// Code generated by ent, DO NOT EDIT.

package dreamaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dreamaction type in the database.
	Label = "dream_action"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dream_action_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldSourceMemoryIds holds the string denoting the source_memory_ids field in the database.
	FieldSourceMemoryIds = "source_memory_ids"
	// FieldResultMemoryIds holds the string denoting the result_memory_ids field in the database.
	FieldResultMemoryIds = "result_memory_ids"
	// FieldBeforeState holds the string denoting the before_state field in the database.
	FieldBeforeState = "before_state"
	// FieldAfterState holds the string denoting the after_state field in the database.
	FieldAfterState = "after_state"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// DreamSessionFieldID holds the string denoting the ID field of the DreamSession.
	DreamSessionFieldID = "dream_session_id"
	// Table holds the table name of the dreamaction in the database.
	Table = "dream_actions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "dream_actions"
	// SessionInverseTable is the table name for the DreamSession entity.
	// It exists in this package in order to avoid circular dependency with the "dreamsession" package.
	SessionInverseTable = "dream_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for dreamaction fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldActionType,
	FieldPhase,
	FieldSourceMemoryIds,
	FieldResultMemoryIds,
	FieldBeforeState,
	FieldAfterState,
	FieldReasoning,
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

// ActionType defines the type for the "action_type" enum field.
type ActionType string

// ActionType values.
const (
	ActionTypeMerge   ActionType = "merge"
	ActionTypeSplit   ActionType = "split"
	ActionTypeUpdate  ActionType = "update"
	ActionTypeArchive ActionType = "archive"
	ActionTypeDelete  ActionType = "delete"
)

func (at ActionType) String() string {
	return string(at)
}

// ActionTypeValidator is a validator for the "action_type" field enum values. It is called by the builders before save.
func ActionTypeValidator(at ActionType) error {
	switch at {
	case ActionTypeMerge, ActionTypeSplit, ActionTypeUpdate, ActionTypeArchive, ActionTypeDelete:
		return nil
	default:
		return fmt.Errorf("dreamaction: invalid enum value for action_type field: %q", at)
	}
}

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhaseLightSleep Phase = "light_sleep"
	PhaseDeepSleep  Phase = "deep_sleep"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseLightSleep, PhaseDeepSleep:
		return nil
	default:
		return fmt.Errorf("dreamaction: invalid enum value for phase field: %q", ph)
	}
}

// OrderOption defines the ordering options for the DreamAction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, DreamSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
