// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
)

// MemoryEvent is the model entity for the MemoryEvent schema.
type MemoryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MemoryID holds the value of the "memory_id" field.
	MemoryID string `json:"memory_id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// LinkStrength holds the value of the "link_strength" field.
	LinkStrength *float64 `json:"link_strength,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MemoryEventQuery when eager-loading is set.
	Edges        MemoryEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MemoryEventEdges holds the relations/edges for other nodes in the graph.
type MemoryEventEdges struct {
	// Memory holds the value of the memory edge.
	Memory *Memory `json:"memory,omitempty"`
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MemoryOrErr returns the Memory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MemoryEventEdges) MemoryOrErr() (*Memory, error) {
	if e.Memory != nil {
		return e.Memory, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: memory.Label}
	}
	return nil, &NotLoadedError{edge: "memory"}
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MemoryEventEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryevent.FieldLinkStrength:
			values[i] = new(sql.NullFloat64)
		case memoryevent.FieldID, memoryevent.FieldMemoryID, memoryevent.FieldEventID:
			values[i] = new(sql.NullString)
		case memoryevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryEvent fields.
func (_m *MemoryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case memoryevent.FieldMemoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memory_id", values[i])
			} else if value.Valid {
				_m.MemoryID = value.String
			}
		case memoryevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case memoryevent.FieldLinkStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field link_strength", values[i])
			} else if value.Valid {
				_m.LinkStrength = new(float64)
				*_m.LinkStrength = value.Float64
			}
		case memoryevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMemory queries the "memory" edge of the MemoryEvent entity.
func (_m *MemoryEvent) QueryMemory() *MemoryQuery {
	return NewMemoryEventClient(_m.config).QueryMemory(_m)
}

// QueryEvent queries the "event" edge of the MemoryEvent entity.
func (_m *MemoryEvent) QueryEvent() *EventQuery {
	return NewMemoryEventClient(_m.config).QueryEvent(_m)
}

// Update returns a builder for updating this MemoryEvent.
// Note that you need to call MemoryEvent.Unwrap() before calling this method if this MemoryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryEvent) Update() *MemoryEventUpdateOne {
	return NewMemoryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryEvent) Unwrap() *MemoryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("memory_id=")
	builder.WriteString(_m.MemoryID)
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	if v := _m.LinkStrength; v != nil {
		builder.WriteString("link_strength=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryEvents is a parsable slice of MemoryEvent.
type MemoryEvents []*MemoryEvent
