// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/predicate"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
)

// SynthesisConfigUpdate is the builder for updating SynthesisConfig entities.
type SynthesisConfigUpdate struct {
	config
	hooks    []Hook
	mutation *SynthesisConfigMutation
}

// Where appends a list predicates to the SynthesisConfigUpdate builder.
func (_u *SynthesisConfigUpdate) Where(ps ...predicate.SynthesisConfig) *SynthesisConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimeWeight sets the "time_weight" field.
func (_u *SynthesisConfigUpdate) SetTimeWeight(v float64) *SynthesisConfigUpdate {
	_u.mutation.ResetTimeWeight()
	_u.mutation.SetTimeWeight(v)
	return _u
}

// SetNillableTimeWeight sets the "time_weight" field if the given value is not nil.
func (_u *SynthesisConfigUpdate) SetNillableTimeWeight(v *float64) *SynthesisConfigUpdate {
	if v != nil {
		_u.SetTimeWeight(*v)
	}
	return _u
}

// AddTimeWeight adds value to the "time_weight" field.
func (_u *SynthesisConfigUpdate) AddTimeWeight(v float64) *SynthesisConfigUpdate {
	_u.mutation.AddTimeWeight(v)
	return _u
}

// SetEventWeight sets the "event_weight" field.
func (_u *SynthesisConfigUpdate) SetEventWeight(v float64) *SynthesisConfigUpdate {
	_u.mutation.ResetEventWeight()
	_u.mutation.SetEventWeight(v)
	return _u
}

// SetNillableEventWeight sets the "event_weight" field if the given value is not nil.
func (_u *SynthesisConfigUpdate) SetNillableEventWeight(v *float64) *SynthesisConfigUpdate {
	if v != nil {
		_u.SetEventWeight(*v)
	}
	return _u
}

// AddEventWeight adds value to the "event_weight" field.
func (_u *SynthesisConfigUpdate) AddEventWeight(v float64) *SynthesisConfigUpdate {
	_u.mutation.AddEventWeight(v)
	return _u
}

// SetTokenWeight sets the "token_weight" field.
func (_u *SynthesisConfigUpdate) SetTokenWeight(v float64) *SynthesisConfigUpdate {
	_u.mutation.ResetTokenWeight()
	_u.mutation.SetTokenWeight(v)
	return _u
}

// SetNillableTokenWeight sets the "token_weight" field if the given value is not nil.
func (_u *SynthesisConfigUpdate) SetNillableTokenWeight(v *float64) *SynthesisConfigUpdate {
	if v != nil {
		_u.SetTokenWeight(*v)
	}
	return _u
}

// AddTokenWeight adds value to the "token_weight" field.
func (_u *SynthesisConfigUpdate) AddTokenWeight(v float64) *SynthesisConfigUpdate {
	_u.mutation.AddTokenWeight(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *SynthesisConfigUpdate) SetThreshold(v float64) *SynthesisConfigUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *SynthesisConfigUpdate) SetNillableThreshold(v *float64) *SynthesisConfigUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *SynthesisConfigUpdate) AddThreshold(v float64) *SynthesisConfigUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *SynthesisConfigUpdate) SetTemperature(v float64) *SynthesisConfigUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *SynthesisConfigUpdate) SetNillableTemperature(v *float64) *SynthesisConfigUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *SynthesisConfigUpdate) AddTemperature(v float64) *SynthesisConfigUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *SynthesisConfigUpdate) SetMaxTokens(v int) *SynthesisConfigUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *SynthesisConfigUpdate) SetNillableMaxTokens(v *int) *SynthesisConfigUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *SynthesisConfigUpdate) AddMaxTokens(v int) *SynthesisConfigUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetIntervalHours sets the "interval_hours" field.
func (_u *SynthesisConfigUpdate) SetIntervalHours(v int) *SynthesisConfigUpdate {
	_u.mutation.ResetIntervalHours()
	_u.mutation.SetIntervalHours(v)
	return _u
}

// SetNillableIntervalHours sets the "interval_hours" field if the given value is not nil.
func (_u *SynthesisConfigUpdate) SetNillableIntervalHours(v *int) *SynthesisConfigUpdate {
	if v != nil {
		_u.SetIntervalHours(*v)
	}
	return _u
}

// AddIntervalHours adds value to the "interval_hours" field.
func (_u *SynthesisConfigUpdate) AddIntervalHours(v int) *SynthesisConfigUpdate {
	_u.mutation.AddIntervalHours(v)
	return _u
}

// SetLastSynthesisCheckAt sets the "last_synthesis_check_at" field.
func (_u *SynthesisConfigUpdate) SetLastSynthesisCheckAt(v time.Time) *SynthesisConfigUpdate {
	_u.mutation.SetLastSynthesisCheckAt(v)
	return _u
}

// SetNillableLastSynthesisCheckAt sets the "last_synthesis_check_at" field if the given value is not nil.
func (_u *SynthesisConfigUpdate) SetNillableLastSynthesisCheckAt(v *time.Time) *SynthesisConfigUpdate {
	if v != nil {
		_u.SetLastSynthesisCheckAt(*v)
	}
	return _u
}

// ClearLastSynthesisCheckAt clears the value of the "last_synthesis_check_at" field.
func (_u *SynthesisConfigUpdate) ClearLastSynthesisCheckAt() *SynthesisConfigUpdate {
	_u.mutation.ClearLastSynthesisCheckAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SynthesisConfigUpdate) SetUpdatedAt(v time.Time) *SynthesisConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SynthesisConfigMutation object of the builder.
func (_u *SynthesisConfigUpdate) Mutation() *SynthesisConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SynthesisConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SynthesisConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SynthesisConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SynthesisConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SynthesisConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := synthesisconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SynthesisConfigUpdate) check() error {
	if v, ok := _u.mutation.TimeWeight(); ok {
		if err := synthesisconfig.TimeWeightValidator(v); err != nil {
			return &ValidationError{Name: "time_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.time_weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventWeight(); ok {
		if err := synthesisconfig.EventWeightValidator(v); err != nil {
			return &ValidationError{Name: "event_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.event_weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokenWeight(); ok {
		if err := synthesisconfig.TokenWeightValidator(v); err != nil {
			return &ValidationError{Name: "token_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.token_weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Threshold(); ok {
		if err := synthesisconfig.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.threshold": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Temperature(); ok {
		if err := synthesisconfig.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.temperature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := synthesisconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.max_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalHours(); ok {
		if err := synthesisconfig.IntervalHoursValidator(v); err != nil {
			return &ValidationError{Name: "interval_hours", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.interval_hours": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SynthesisConfig.anima"`)
	}
	return nil
}

func (_u *SynthesisConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(synthesisconfig.Table, synthesisconfig.Columns, sqlgraph.NewFieldSpec(synthesisconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TimeWeight(); ok {
		_spec.SetField(synthesisconfig.FieldTimeWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeWeight(); ok {
		_spec.AddField(synthesisconfig.FieldTimeWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EventWeight(); ok {
		_spec.SetField(synthesisconfig.FieldEventWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEventWeight(); ok {
		_spec.AddField(synthesisconfig.FieldEventWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokenWeight(); ok {
		_spec.SetField(synthesisconfig.FieldTokenWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTokenWeight(); ok {
		_spec.AddField(synthesisconfig.FieldTokenWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(synthesisconfig.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(synthesisconfig.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(synthesisconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(synthesisconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(synthesisconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(synthesisconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalHours(); ok {
		_spec.SetField(synthesisconfig.FieldIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalHours(); ok {
		_spec.AddField(synthesisconfig.FieldIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSynthesisCheckAt(); ok {
		_spec.SetField(synthesisconfig.FieldLastSynthesisCheckAt, field.TypeTime, value)
	}
	if _u.mutation.LastSynthesisCheckAtCleared() {
		_spec.ClearField(synthesisconfig.FieldLastSynthesisCheckAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(synthesisconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synthesisconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SynthesisConfigUpdateOne is the builder for updating a single SynthesisConfig entity.
type SynthesisConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SynthesisConfigMutation
}

// SetTimeWeight sets the "time_weight" field.
func (_u *SynthesisConfigUpdateOne) SetTimeWeight(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.ResetTimeWeight()
	_u.mutation.SetTimeWeight(v)
	return _u
}

// SetNillableTimeWeight sets the "time_weight" field if the given value is not nil.
func (_u *SynthesisConfigUpdateOne) SetNillableTimeWeight(v *float64) *SynthesisConfigUpdateOne {
	if v != nil {
		_u.SetTimeWeight(*v)
	}
	return _u
}

// AddTimeWeight adds value to the "time_weight" field.
func (_u *SynthesisConfigUpdateOne) AddTimeWeight(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.AddTimeWeight(v)
	return _u
}

// SetEventWeight sets the "event_weight" field.
func (_u *SynthesisConfigUpdateOne) SetEventWeight(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.ResetEventWeight()
	_u.mutation.SetEventWeight(v)
	return _u
}

// SetNillableEventWeight sets the "event_weight" field if the given value is not nil.
func (_u *SynthesisConfigUpdateOne) SetNillableEventWeight(v *float64) *SynthesisConfigUpdateOne {
	if v != nil {
		_u.SetEventWeight(*v)
	}
	return _u
}

// AddEventWeight adds value to the "event_weight" field.
func (_u *SynthesisConfigUpdateOne) AddEventWeight(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.AddEventWeight(v)
	return _u
}

// SetTokenWeight sets the "token_weight" field.
func (_u *SynthesisConfigUpdateOne) SetTokenWeight(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.ResetTokenWeight()
	_u.mutation.SetTokenWeight(v)
	return _u
}

// SetNillableTokenWeight sets the "token_weight" field if the given value is not nil.
func (_u *SynthesisConfigUpdateOne) SetNillableTokenWeight(v *float64) *SynthesisConfigUpdateOne {
	if v != nil {
		_u.SetTokenWeight(*v)
	}
	return _u
}

// AddTokenWeight adds value to the "token_weight" field.
func (_u *SynthesisConfigUpdateOne) AddTokenWeight(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.AddTokenWeight(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *SynthesisConfigUpdateOne) SetThreshold(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *SynthesisConfigUpdateOne) SetNillableThreshold(v *float64) *SynthesisConfigUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *SynthesisConfigUpdateOne) AddThreshold(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *SynthesisConfigUpdateOne) SetTemperature(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *SynthesisConfigUpdateOne) SetNillableTemperature(v *float64) *SynthesisConfigUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *SynthesisConfigUpdateOne) AddTemperature(v float64) *SynthesisConfigUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *SynthesisConfigUpdateOne) SetMaxTokens(v int) *SynthesisConfigUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *SynthesisConfigUpdateOne) SetNillableMaxTokens(v *int) *SynthesisConfigUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *SynthesisConfigUpdateOne) AddMaxTokens(v int) *SynthesisConfigUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetIntervalHours sets the "interval_hours" field.
func (_u *SynthesisConfigUpdateOne) SetIntervalHours(v int) *SynthesisConfigUpdateOne {
	_u.mutation.ResetIntervalHours()
	_u.mutation.SetIntervalHours(v)
	return _u
}

// SetNillableIntervalHours sets the "interval_hours" field if the given value is not nil.
func (_u *SynthesisConfigUpdateOne) SetNillableIntervalHours(v *int) *SynthesisConfigUpdateOne {
	if v != nil {
		_u.SetIntervalHours(*v)
	}
	return _u
}

// AddIntervalHours adds value to the "interval_hours" field.
func (_u *SynthesisConfigUpdateOne) AddIntervalHours(v int) *SynthesisConfigUpdateOne {
	_u.mutation.AddIntervalHours(v)
	return _u
}

// SetLastSynthesisCheckAt sets the "last_synthesis_check_at" field.
func (_u *SynthesisConfigUpdateOne) SetLastSynthesisCheckAt(v time.Time) *SynthesisConfigUpdateOne {
	_u.mutation.SetLastSynthesisCheckAt(v)
	return _u
}

// SetNillableLastSynthesisCheckAt sets the "last_synthesis_check_at" field if the given value is not nil.
func (_u *SynthesisConfigUpdateOne) SetNillableLastSynthesisCheckAt(v *time.Time) *SynthesisConfigUpdateOne {
	if v != nil {
		_u.SetLastSynthesisCheckAt(*v)
	}
	return _u
}

// ClearLastSynthesisCheckAt clears the value of the "last_synthesis_check_at" field.
func (_u *SynthesisConfigUpdateOne) ClearLastSynthesisCheckAt() *SynthesisConfigUpdateOne {
	_u.mutation.ClearLastSynthesisCheckAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SynthesisConfigUpdateOne) SetUpdatedAt(v time.Time) *SynthesisConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SynthesisConfigMutation object of the builder.
func (_u *SynthesisConfigUpdateOne) Mutation() *SynthesisConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the SynthesisConfigUpdate builder.
func (_u *SynthesisConfigUpdateOne) Where(ps ...predicate.SynthesisConfig) *SynthesisConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SynthesisConfigUpdateOne) Select(field string, fields ...string) *SynthesisConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SynthesisConfig entity.
func (_u *SynthesisConfigUpdateOne) Save(ctx context.Context) (*SynthesisConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SynthesisConfigUpdateOne) SaveX(ctx context.Context) *SynthesisConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SynthesisConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SynthesisConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SynthesisConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := synthesisconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SynthesisConfigUpdateOne) check() error {
	if v, ok := _u.mutation.TimeWeight(); ok {
		if err := synthesisconfig.TimeWeightValidator(v); err != nil {
			return &ValidationError{Name: "time_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.time_weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventWeight(); ok {
		if err := synthesisconfig.EventWeightValidator(v); err != nil {
			return &ValidationError{Name: "event_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.event_weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokenWeight(); ok {
		if err := synthesisconfig.TokenWeightValidator(v); err != nil {
			return &ValidationError{Name: "token_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.token_weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Threshold(); ok {
		if err := synthesisconfig.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.threshold": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Temperature(); ok {
		if err := synthesisconfig.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.temperature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := synthesisconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.max_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalHours(); ok {
		if err := synthesisconfig.IntervalHoursValidator(v); err != nil {
			return &ValidationError{Name: "interval_hours", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.interval_hours": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SynthesisConfig.anima"`)
	}
	return nil
}

func (_u *SynthesisConfigUpdateOne) sqlSave(ctx context.Context) (_node *SynthesisConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(synthesisconfig.Table, synthesisconfig.Columns, sqlgraph.NewFieldSpec(synthesisconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SynthesisConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, synthesisconfig.FieldID)
		for _, f := range fields {
			if !synthesisconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != synthesisconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TimeWeight(); ok {
		_spec.SetField(synthesisconfig.FieldTimeWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeWeight(); ok {
		_spec.AddField(synthesisconfig.FieldTimeWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EventWeight(); ok {
		_spec.SetField(synthesisconfig.FieldEventWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEventWeight(); ok {
		_spec.AddField(synthesisconfig.FieldEventWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokenWeight(); ok {
		_spec.SetField(synthesisconfig.FieldTokenWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTokenWeight(); ok {
		_spec.AddField(synthesisconfig.FieldTokenWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(synthesisconfig.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(synthesisconfig.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(synthesisconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(synthesisconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(synthesisconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(synthesisconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalHours(); ok {
		_spec.SetField(synthesisconfig.FieldIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalHours(); ok {
		_spec.AddField(synthesisconfig.FieldIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSynthesisCheckAt(); ok {
		_spec.SetField(synthesisconfig.FieldLastSynthesisCheckAt, field.TypeTime, value)
	}
	if _u.mutation.LastSynthesisCheckAtCleared() {
		_spec.ClearField(synthesisconfig.FieldLastSynthesisCheckAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(synthesisconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SynthesisConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synthesisconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
