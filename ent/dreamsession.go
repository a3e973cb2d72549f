// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
)

// DreamSession is the model entity for the DreamSession schema.
type DreamSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AnimaID holds the value of the "anima_id" field.
	AnimaID string `json:"anima_id,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType dreamsession.TriggerType `json:"trigger_type,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy *string `json:"triggered_by,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Status holds the value of the "status" field.
	Status dreamsession.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// MemoriesReviewed holds the value of the "memories_reviewed" field.
	MemoriesReviewed int `json:"memories_reviewed,omitempty"`
	// MemoriesModified holds the value of the "memories_modified" field.
	MemoriesModified int `json:"memories_modified,omitempty"`
	// MemoriesCreated holds the value of the "memories_created" field.
	MemoriesCreated int `json:"memories_created,omitempty"`
	// MemoriesArchived holds the value of the "memories_archived" field.
	MemoriesArchived int `json:"memories_archived,omitempty"`
	// MemoriesDeleted holds the value of the "memories_deleted" field.
	MemoriesDeleted int `json:"memories_deleted,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// Curation config frozen at session start
	ConfigSnapshot map[string]interface{} `json:"config_snapshot,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DreamSessionQuery when eager-loading is set.
	Edges        DreamSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DreamSessionEdges holds the relations/edges for other nodes in the graph.
type DreamSessionEdges struct {
	// Anima holds the value of the anima edge.
	Anima *Anima `json:"anima,omitempty"`
	// Actions holds the value of the actions edge.
	Actions []*DreamAction `json:"actions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AnimaOrErr returns the Anima value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DreamSessionEdges) AnimaOrErr() (*Anima, error) {
	if e.Anima != nil {
		return e.Anima, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: anima.Label}
	}
	return nil, &NotLoadedError{edge: "anima"}
}

// ActionsOrErr returns the Actions value or an error if the edge
// was not loaded in eager-loading.
func (e DreamSessionEdges) ActionsOrErr() ([]*DreamAction, error) {
	if e.loadedTypes[1] {
		return e.Actions, nil
	}
	return nil, &NotLoadedError{edge: "actions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DreamSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dreamsession.FieldConfigSnapshot:
			values[i] = new([]byte)
		case dreamsession.FieldMemoriesReviewed, dreamsession.FieldMemoriesModified, dreamsession.FieldMemoriesCreated, dreamsession.FieldMemoriesArchived, dreamsession.FieldMemoriesDeleted:
			values[i] = new(sql.NullInt64)
		case dreamsession.FieldID, dreamsession.FieldAnimaID, dreamsession.FieldTriggerType, dreamsession.FieldTriggeredBy, dreamsession.FieldStatus, dreamsession.FieldErrorMessage, dreamsession.FieldSummary:
			values[i] = new(sql.NullString)
		case dreamsession.FieldStartedAt, dreamsession.FieldCompletedAt, dreamsession.FieldCreatedAt, dreamsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DreamSession fields.
func (_m *DreamSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dreamsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dreamsession.FieldAnimaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anima_id", values[i])
			} else if value.Valid {
				_m.AnimaID = value.String
			}
		case dreamsession.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = dreamsession.TriggerType(value.String)
			}
		case dreamsession.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = new(string)
				*_m.TriggeredBy = value.String
			}
		case dreamsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case dreamsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case dreamsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = dreamsession.Status(value.String)
			}
		case dreamsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case dreamsession.FieldMemoriesReviewed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memories_reviewed", values[i])
			} else if value.Valid {
				_m.MemoriesReviewed = int(value.Int64)
			}
		case dreamsession.FieldMemoriesModified:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memories_modified", values[i])
			} else if value.Valid {
				_m.MemoriesModified = int(value.Int64)
			}
		case dreamsession.FieldMemoriesCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memories_created", values[i])
			} else if value.Valid {
				_m.MemoriesCreated = int(value.Int64)
			}
		case dreamsession.FieldMemoriesArchived:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memories_archived", values[i])
			} else if value.Valid {
				_m.MemoriesArchived = int(value.Int64)
			}
		case dreamsession.FieldMemoriesDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memories_deleted", values[i])
			} else if value.Valid {
				_m.MemoriesDeleted = int(value.Int64)
			}
		case dreamsession.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case dreamsession.FieldConfigSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConfigSnapshot); err != nil {
					return fmt.Errorf("unmarshal field config_snapshot: %w", err)
				}
			}
		case dreamsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dreamsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DreamSession.
// This includes values selected through modifiers, order, etc.
func (_m *DreamSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnima queries the "anima" edge of the DreamSession entity.
func (_m *DreamSession) QueryAnima() *AnimaQuery {
	return NewDreamSessionClient(_m.config).QueryAnima(_m)
}

// QueryActions queries the "actions" edge of the DreamSession entity.
func (_m *DreamSession) QueryActions() *DreamActionQuery {
	return NewDreamSessionClient(_m.config).QueryActions(_m)
}

// Update returns a builder for updating this DreamSession.
// Note that you need to call DreamSession.Unwrap() before calling this method if this DreamSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DreamSession) Update() *DreamSessionUpdateOne {
	return NewDreamSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DreamSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DreamSession) Unwrap() *DreamSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DreamSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DreamSession) String() string {
	var builder strings.Builder
	builder.WriteString("DreamSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("anima_id=")
	builder.WriteString(_m.AnimaID)
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	if v := _m.TriggeredBy; v != nil {
		builder.WriteString("triggered_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("memories_reviewed=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoriesReviewed))
	builder.WriteString(", ")
	builder.WriteString("memories_modified=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoriesModified))
	builder.WriteString(", ")
	builder.WriteString("memories_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoriesCreated))
	builder.WriteString(", ")
	builder.WriteString("memories_archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoriesArchived))
	builder.WriteString(", ")
	builder.WriteString("memories_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoriesDeleted))
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("config_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfigSnapshot))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DreamSessions is a parsable slice of DreamSession.
type DreamSessions []*DreamSession
