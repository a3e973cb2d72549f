// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
)

// DreamAction is the model entity for the DreamAction schema.
type DreamAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType dreamaction.ActionType `json:"action_type,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase dreamaction.Phase `json:"phase,omitempty"`
	// Non-empty; the memories the action read
	SourceMemoryIds []string `json:"source_memory_ids,omitempty"`
	// Null for delete; new/updated memories otherwise
	ResultMemoryIds []string `json:"result_memory_ids,omitempty"`
	// BeforeState holds the value of the "before_state" field.
	BeforeState map[string]interface{} `json:"before_state,omitempty"`
	// AfterState holds the value of the "after_state" field.
	AfterState map[string]interface{} `json:"after_state,omitempty"`
	// LLM reasoning; null for algorithmic (light-sleep) actions
	Reasoning *string `json:"reasoning,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DreamActionQuery when eager-loading is set.
	Edges        DreamActionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DreamActionEdges holds the relations/edges for other nodes in the graph.
type DreamActionEdges struct {
	// Session holds the value of the session edge.
	Session *DreamSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DreamActionEdges) SessionOrErr() (*DreamSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dreamsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DreamAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dreamaction.FieldSourceMemoryIds, dreamaction.FieldResultMemoryIds, dreamaction.FieldBeforeState, dreamaction.FieldAfterState:
			values[i] = new([]byte)
		case dreamaction.FieldID, dreamaction.FieldSessionID, dreamaction.FieldActionType, dreamaction.FieldPhase, dreamaction.FieldReasoning:
			values[i] = new(sql.NullString)
		case dreamaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DreamAction fields.
func (_m *DreamAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dreamaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dreamaction.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case dreamaction.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = dreamaction.ActionType(value.String)
			}
		case dreamaction.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = dreamaction.Phase(value.String)
			}
		case dreamaction.FieldSourceMemoryIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_memory_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceMemoryIds); err != nil {
					return fmt.Errorf("unmarshal field source_memory_ids: %w", err)
				}
			}
		case dreamaction.FieldResultMemoryIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_memory_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultMemoryIds); err != nil {
					return fmt.Errorf("unmarshal field result_memory_ids: %w", err)
				}
			}
		case dreamaction.FieldBeforeState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field before_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BeforeState); err != nil {
					return fmt.Errorf("unmarshal field before_state: %w", err)
				}
			}
		case dreamaction.FieldAfterState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field after_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AfterState); err != nil {
					return fmt.Errorf("unmarshal field after_state: %w", err)
				}
			}
		case dreamaction.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = new(string)
				*_m.Reasoning = value.String
			}
		case dreamaction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DreamAction.
// This includes values selected through modifiers, order, etc.
func (_m *DreamAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the DreamAction entity.
func (_m *DreamAction) QuerySession() *DreamSessionQuery {
	return NewDreamActionClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this DreamAction.
// Note that you need to call DreamAction.Unwrap() before calling this method if this DreamAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DreamAction) Update() *DreamActionUpdateOne {
	return NewDreamActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DreamAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DreamAction) Unwrap() *DreamAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DreamAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DreamAction) String() string {
	var builder strings.Builder
	builder.WriteString("DreamAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionType))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("source_memory_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceMemoryIds))
	builder.WriteString(", ")
	builder.WriteString("result_memory_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultMemoryIds))
	builder.WriteString(", ")
	builder.WriteString("before_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.BeforeState))
	builder.WriteString(", ")
	builder.WriteString("after_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.AfterState))
	builder.WriteString(", ")
	if v := _m.Reasoning; v != nil {
		builder.WriteString("reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DreamActions is a parsable slice of DreamAction.
type DreamActions []*DreamAction
