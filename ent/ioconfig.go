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
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
)

// IOConfig is the model entity for the IOConfig schema.
type IOConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AnimaID holds the value of the "anima_id" field.
	AnimaID string `json:"anima_id,omitempty"`
	// ReadSettings holds the value of the "read_settings" field.
	ReadSettings map[string]interface{} `json:"read_settings,omitempty"`
	// WriteSettings holds the value of the "write_settings" field.
	WriteSettings map[string]interface{} `json:"write_settings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IOConfigQuery when eager-loading is set.
	Edges        IOConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IOConfigEdges holds the relations/edges for other nodes in the graph.
type IOConfigEdges struct {
	// Anima holds the value of the anima edge.
	Anima *Anima `json:"anima,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnimaOrErr returns the Anima value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IOConfigEdges) AnimaOrErr() (*Anima, error) {
	if e.Anima != nil {
		return e.Anima, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: anima.Label}
	}
	return nil, &NotLoadedError{edge: "anima"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IOConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ioconfig.FieldReadSettings, ioconfig.FieldWriteSettings:
			values[i] = new([]byte)
		case ioconfig.FieldID, ioconfig.FieldAnimaID:
			values[i] = new(sql.NullString)
		case ioconfig.FieldCreatedAt, ioconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IOConfig fields.
func (_m *IOConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ioconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ioconfig.FieldAnimaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anima_id", values[i])
			} else if value.Valid {
				_m.AnimaID = value.String
			}
		case ioconfig.FieldReadSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field read_settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReadSettings); err != nil {
					return fmt.Errorf("unmarshal field read_settings: %w", err)
				}
			}
		case ioconfig.FieldWriteSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field write_settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WriteSettings); err != nil {
					return fmt.Errorf("unmarshal field write_settings: %w", err)
				}
			}
		case ioconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ioconfig.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the IOConfig.
// This includes values selected through modifiers, order, etc.
func (_m *IOConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnima queries the "anima" edge of the IOConfig entity.
func (_m *IOConfig) QueryAnima() *AnimaQuery {
	return NewIOConfigClient(_m.config).QueryAnima(_m)
}

// Update returns a builder for updating this IOConfig.
// Note that you need to call IOConfig.Unwrap() before calling this method if this IOConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IOConfig) Update() *IOConfigUpdateOne {
	return NewIOConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IOConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IOConfig) Unwrap() *IOConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IOConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IOConfig) String() string {
	var builder strings.Builder
	builder.WriteString("IOConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("anima_id=")
	builder.WriteString(_m.AnimaID)
	builder.WriteString(", ")
	builder.WriteString("read_settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadSettings))
	builder.WriteString(", ")
	builder.WriteString("write_settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.WriteSettings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IOConfigs is a parsable slice of IOConfig.
type IOConfigs []*IOConfig
