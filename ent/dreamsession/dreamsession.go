// Code generated by ent, DO NOT EDIT.

package dreamsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dreamsession type in the database.
	Label = "dream_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dream_session_id"
	// FieldAnimaID holds the string denoting the anima_id field in the database.
	FieldAnimaID = "anima_id"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldMemoriesReviewed holds the string denoting the memories_reviewed field in the database.
	FieldMemoriesReviewed = "memories_reviewed"
	// FieldMemoriesModified holds the string denoting the memories_modified field in the database.
	FieldMemoriesModified = "memories_modified"
	// FieldMemoriesCreated holds the string denoting the memories_created field in the database.
	FieldMemoriesCreated = "memories_created"
	// FieldMemoriesArchived holds the string denoting the memories_archived field in the database.
	FieldMemoriesArchived = "memories_archived"
	// FieldMemoriesDeleted holds the string denoting the memories_deleted field in the database.
	FieldMemoriesDeleted = "memories_deleted"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldConfigSnapshot holds the string denoting the config_snapshot field in the database.
	FieldConfigSnapshot = "config_snapshot"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnima holds the string denoting the anima edge name in mutations.
	EdgeAnima = "anima"
	// EdgeActions holds the string denoting the actions edge name in mutations.
	EdgeActions = "actions"
	// AnimaFieldID holds the string denoting the ID field of the Anima.
	AnimaFieldID = "anima_id"
	// DreamActionFieldID holds the string denoting the ID field of the DreamAction.
	DreamActionFieldID = "dream_action_id"
	// Table holds the table name of the dreamsession in the database.
	Table = "dream_sessions"
	// AnimaTable is the table that holds the anima relation/edge.
	AnimaTable = "dream_sessions"
	// AnimaInverseTable is the table name for the Anima entity.
	// It exists in this package in order to avoid circular dependency with the "anima" package.
	AnimaInverseTable = "animas"
	// AnimaColumn is the table column denoting the anima relation/edge.
	AnimaColumn = "anima_id"
	// ActionsTable is the table that holds the actions relation/edge.
	ActionsTable = "dream_actions"
	// ActionsInverseTable is the table name for the DreamAction entity.
	// It exists in this package in order to avoid circular dependency with the "dreamaction" package.
	ActionsInverseTable = "dream_actions"
	// ActionsColumn is the table column denoting the actions relation/edge.
	ActionsColumn = "session_id"
)

// Columns holds all SQL columns for dreamsession fields.
var Columns = []string{
	FieldID,
	FieldAnimaID,
	FieldTriggerType,
	FieldTriggeredBy,
	FieldStartedAt,
	FieldCompletedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldMemoriesReviewed,
	FieldMemoriesModified,
	FieldMemoriesCreated,
	FieldMemoriesArchived,
	FieldMemoriesDeleted,
	FieldSummary,
	FieldConfigSnapshot,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultMemoriesReviewed holds the default value on creation for the "memories_reviewed" field.
	DefaultMemoriesReviewed int
	// DefaultMemoriesModified holds the default value on creation for the "memories_modified" field.
	DefaultMemoriesModified int
	// DefaultMemoriesCreated holds the default value on creation for the "memories_created" field.
	DefaultMemoriesCreated int
	// DefaultMemoriesArchived holds the default value on creation for the "memories_archived" field.
	DefaultMemoriesArchived int
	// DefaultMemoriesDeleted holds the default value on creation for the "memories_deleted" field.
	DefaultMemoriesDeleted int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerType values.
const (
	TriggerTypeScheduled TriggerType = "scheduled"
	TriggerTypeManual    TriggerType = "manual"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeScheduled, TriggerTypeManual:
		return nil
	default:
		return fmt.Errorf("dreamsession: invalid enum value for trigger_type field: %q", tt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("dreamsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DreamSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnimaID orders the results by the anima_id field.
func ByAnimaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnimaID, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByMemoriesReviewed orders the results by the memories_reviewed field.
func ByMemoriesReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoriesReviewed, opts...).ToFunc()
}

// ByMemoriesModified orders the results by the memories_modified field.
func ByMemoriesModified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoriesModified, opts...).ToFunc()
}

// ByMemoriesCreated orders the results by the memories_created field.
func ByMemoriesCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoriesCreated, opts...).ToFunc()
}

// ByMemoriesArchived orders the results by the memories_archived field.
func ByMemoriesArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoriesArchived, opts...).ToFunc()
}

// ByMemoriesDeleted orders the results by the memories_deleted field.
func ByMemoriesDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoriesDeleted, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
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

// ByActionsCount orders the results by actions count.
func ByActionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActionsStep(), opts...)
	}
}

// ByActions orders the results by actions terms.
func ByActions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnimaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnimaInverseTable, AnimaFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnimaTable, AnimaColumn),
	)
}
func newActionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActionsInverseTable, DreamActionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActionsTable, ActionsColumn),
	)
}
