// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
)

// KnowledgeAuditLog is the model entity for the KnowledgeAuditLog schema.
type KnowledgeAuditLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// KnowledgeID holds the value of the "knowledge_id" field.
	KnowledgeID string `json:"knowledge_id,omitempty"`
	// Action holds the value of the "action" field.
	Action knowledgeauditlog.Action `json:"action,omitempty"`
	// e.g. 'memory' for pipeline-originated changes
	SourceType *string `json:"source_type,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID *string `json:"source_id,omitempty"`
	// BeforeState holds the value of the "before_state" field.
	BeforeState map[string]interface{} `json:"before_state,omitempty"`
	// AfterState holds the value of the "after_state" field.
	AfterState map[string]interface{} `json:"after_state,omitempty"`
	// ChangeSummary holds the value of the "change_summary" field.
	ChangeSummary *string `json:"change_summary,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy *string `json:"triggered_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeAuditLogQuery when eager-loading is set.
	Edges        KnowledgeAuditLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnowledgeAuditLogEdges holds the relations/edges for other nodes in the graph.
type KnowledgeAuditLogEdges struct {
	// Knowledge holds the value of the knowledge edge.
	Knowledge *Knowledge `json:"knowledge,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// KnowledgeOrErr returns the Knowledge value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeAuditLogEdges) KnowledgeOrErr() (*Knowledge, error) {
	if e.Knowledge != nil {
		return e.Knowledge, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: knowledge.Label}
	}
	return nil, &NotLoadedError{edge: "knowledge"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeAuditLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgeauditlog.FieldBeforeState, knowledgeauditlog.FieldAfterState:
			values[i] = new([]byte)
		case knowledgeauditlog.FieldID, knowledgeauditlog.FieldKnowledgeID, knowledgeauditlog.FieldAction, knowledgeauditlog.FieldSourceType, knowledgeauditlog.FieldSourceID, knowledgeauditlog.FieldChangeSummary, knowledgeauditlog.FieldTriggeredBy:
			values[i] = new(sql.NullString)
		case knowledgeauditlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeAuditLog fields.
func (_m *KnowledgeAuditLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgeauditlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowledgeauditlog.FieldKnowledgeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field knowledge_id", values[i])
			} else if value.Valid {
				_m.KnowledgeID = value.String
			}
		case knowledgeauditlog.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = knowledgeauditlog.Action(value.String)
			}
		case knowledgeauditlog.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = new(string)
				*_m.SourceType = value.String
			}
		case knowledgeauditlog.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = new(string)
				*_m.SourceID = value.String
			}
		case knowledgeauditlog.FieldBeforeState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field before_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BeforeState); err != nil {
					return fmt.Errorf("unmarshal field before_state: %w", err)
				}
			}
		case knowledgeauditlog.FieldAfterState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field after_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AfterState); err != nil {
					return fmt.Errorf("unmarshal field after_state: %w", err)
				}
			}
		case knowledgeauditlog.FieldChangeSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_summary", values[i])
			} else if value.Valid {
				_m.ChangeSummary = new(string)
				*_m.ChangeSummary = value.String
			}
		case knowledgeauditlog.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = new(string)
				*_m.TriggeredBy = value.String
			}
		case knowledgeauditlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeAuditLog.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeAuditLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryKnowledge queries the "knowledge" edge of the KnowledgeAuditLog entity.
func (_m *KnowledgeAuditLog) QueryKnowledge() *KnowledgeQuery {
	return NewKnowledgeAuditLogClient(_m.config).QueryKnowledge(_m)
}

// Update returns a builder for updating this KnowledgeAuditLog.
// Note that you need to call KnowledgeAuditLog.Unwrap() before calling this method if this KnowledgeAuditLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeAuditLog) Update() *KnowledgeAuditLogUpdateOne {
	return NewKnowledgeAuditLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeAuditLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeAuditLog) Unwrap() *KnowledgeAuditLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeAuditLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeAuditLog) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeAuditLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("knowledge_id=")
	builder.WriteString(_m.KnowledgeID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	if v := _m.SourceType; v != nil {
		builder.WriteString("source_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceID; v != nil {
		builder.WriteString("source_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("before_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.BeforeState))
	builder.WriteString(", ")
	builder.WriteString("after_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.AfterState))
	builder.WriteString(", ")
	if v := _m.ChangeSummary; v != nil {
		builder.WriteString("change_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TriggeredBy; v != nil {
		builder.WriteString("triggered_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeAuditLogs is a parsable slice of KnowledgeAuditLog.
type KnowledgeAuditLogs []*KnowledgeAuditLog
