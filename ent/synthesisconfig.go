// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
)

// SynthesisConfig is the model entity for the SynthesisConfig schema.
type SynthesisConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AnimaID holds the value of the "anima_id" field.
	AnimaID string `json:"anima_id,omitempty"`
	// TimeWeight holds the value of the "time_weight" field.
	TimeWeight float64 `json:"time_weight,omitempty"`
	// EventWeight holds the value of the "event_weight" field.
	EventWeight float64 `json:"event_weight,omitempty"`
	// TokenWeight holds the value of the "token_weight" field.
	TokenWeight float64 `json:"token_weight,omitempty"`
	// Threshold holds the value of the "threshold" field.
	Threshold float64 `json:"threshold,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature float64 `json:"temperature,omitempty"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens int `json:"max_tokens,omitempty"`
	// IntervalHours holds the value of the "interval_hours" field.
	IntervalHours int `json:"interval_hours,omitempty"`
	// LastSynthesisCheckAt holds the value of the "last_synthesis_check_at" field.
	LastSynthesisCheckAt *time.Time `json:"last_synthesis_check_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SynthesisConfigQuery when eager-loading is set.
	Edges        SynthesisConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SynthesisConfigEdges holds the relations/edges for other nodes in the graph.
type SynthesisConfigEdges struct {
	// Anima holds the value of the anima edge.
	Anima *Anima `json:"anima,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnimaOrErr returns the Anima value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SynthesisConfigEdges) AnimaOrErr() (*Anima, error) {
	if e.Anima != nil {
		return e.Anima, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: anima.Label}
	}
	return nil, &NotLoadedError{edge: "anima"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SynthesisConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case synthesisconfig.FieldTimeWeight, synthesisconfig.FieldEventWeight, synthesisconfig.FieldTokenWeight, synthesisconfig.FieldThreshold, synthesisconfig.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case synthesisconfig.FieldMaxTokens, synthesisconfig.FieldIntervalHours:
			values[i] = new(sql.NullInt64)
		case synthesisconfig.FieldID, synthesisconfig.FieldAnimaID:
			values[i] = new(sql.NullString)
		case synthesisconfig.FieldLastSynthesisCheckAt, synthesisconfig.FieldCreatedAt, synthesisconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SynthesisConfig fields.
func (_m *SynthesisConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case synthesisconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case synthesisconfig.FieldAnimaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anima_id", values[i])
			} else if value.Valid {
				_m.AnimaID = value.String
			}
		case synthesisconfig.FieldTimeWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_weight", values[i])
			} else if value.Valid {
				_m.TimeWeight = value.Float64
			}
		case synthesisconfig.FieldEventWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field event_weight", values[i])
			} else if value.Valid {
				_m.EventWeight = value.Float64
			}
		case synthesisconfig.FieldTokenWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field token_weight", values[i])
			} else if value.Valid {
				_m.TokenWeight = value.Float64
			}
		case synthesisconfig.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = value.Float64
			}
		case synthesisconfig.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = value.Float64
			}
		case synthesisconfig.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = int(value.Int64)
			}
		case synthesisconfig.FieldIntervalHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_hours", values[i])
			} else if value.Valid {
				_m.IntervalHours = int(value.Int64)
			}
		case synthesisconfig.FieldLastSynthesisCheckAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_synthesis_check_at", values[i])
			} else if value.Valid {
				_m.LastSynthesisCheckAt = new(time.Time)
				*_m.LastSynthesisCheckAt = value.Time
			}
		case synthesisconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case synthesisconfig.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SynthesisConfig.
// This includes values selected through modifiers, order, etc.
func (_m *SynthesisConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnima queries the "anima" edge of the SynthesisConfig entity.
func (_m *SynthesisConfig) QueryAnima() *AnimaQuery {
	return NewSynthesisConfigClient(_m.config).QueryAnima(_m)
}

// Update returns a builder for updating this SynthesisConfig.
// Note that you need to call SynthesisConfig.Unwrap() before calling this method if this SynthesisConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SynthesisConfig) Update() *SynthesisConfigUpdateOne {
	return NewSynthesisConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SynthesisConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SynthesisConfig) Unwrap() *SynthesisConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SynthesisConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SynthesisConfig) String() string {
	var builder strings.Builder
	builder.WriteString("SynthesisConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("anima_id=")
	builder.WriteString(_m.AnimaID)
	builder.WriteString(", ")
	builder.WriteString("time_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeWeight))
	builder.WriteString(", ")
	builder.WriteString("event_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventWeight))
	builder.WriteString(", ")
	builder.WriteString("token_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenWeight))
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("temperature=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temperature))
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("interval_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalHours))
	builder.WriteString(", ")
	if v := _m.LastSynthesisCheckAt; v != nil {
		builder.WriteString("last_synthesis_check_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SynthesisConfigs is a parsable slice of SynthesisConfig.
type SynthesisConfigs []*SynthesisConfig
