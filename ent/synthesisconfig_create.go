// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
)

// SynthesisConfigCreate is the builder for creating a SynthesisConfig entity.
type SynthesisConfigCreate struct {
	config
	mutation *SynthesisConfigMutation
	hooks    []Hook
}

// SetAnimaID sets the "anima_id" field.
func (_c *SynthesisConfigCreate) SetAnimaID(v string) *SynthesisConfigCreate {
	_c.mutation.SetAnimaID(v)
	return _c
}

// SetTimeWeight sets the "time_weight" field.
func (_c *SynthesisConfigCreate) SetTimeWeight(v float64) *SynthesisConfigCreate {
	_c.mutation.SetTimeWeight(v)
	return _c
}

// SetNillableTimeWeight sets the "time_weight" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableTimeWeight(v *float64) *SynthesisConfigCreate {
	if v != nil {
		_c.SetTimeWeight(*v)
	}
	return _c
}

// SetEventWeight sets the "event_weight" field.
func (_c *SynthesisConfigCreate) SetEventWeight(v float64) *SynthesisConfigCreate {
	_c.mutation.SetEventWeight(v)
	return _c
}

// SetNillableEventWeight sets the "event_weight" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableEventWeight(v *float64) *SynthesisConfigCreate {
	if v != nil {
		_c.SetEventWeight(*v)
	}
	return _c
}

// SetTokenWeight sets the "token_weight" field.
func (_c *SynthesisConfigCreate) SetTokenWeight(v float64) *SynthesisConfigCreate {
	_c.mutation.SetTokenWeight(v)
	return _c
}

// SetNillableTokenWeight sets the "token_weight" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableTokenWeight(v *float64) *SynthesisConfigCreate {
	if v != nil {
		_c.SetTokenWeight(*v)
	}
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *SynthesisConfigCreate) SetThreshold(v float64) *SynthesisConfigCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableThreshold(v *float64) *SynthesisConfigCreate {
	if v != nil {
		_c.SetThreshold(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *SynthesisConfigCreate) SetTemperature(v float64) *SynthesisConfigCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableTemperature(v *float64) *SynthesisConfigCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *SynthesisConfigCreate) SetMaxTokens(v int) *SynthesisConfigCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableMaxTokens(v *int) *SynthesisConfigCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetIntervalHours sets the "interval_hours" field.
func (_c *SynthesisConfigCreate) SetIntervalHours(v int) *SynthesisConfigCreate {
	_c.mutation.SetIntervalHours(v)
	return _c
}

// SetNillableIntervalHours sets the "interval_hours" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableIntervalHours(v *int) *SynthesisConfigCreate {
	if v != nil {
		_c.SetIntervalHours(*v)
	}
	return _c
}

// SetLastSynthesisCheckAt sets the "last_synthesis_check_at" field.
func (_c *SynthesisConfigCreate) SetLastSynthesisCheckAt(v time.Time) *SynthesisConfigCreate {
	_c.mutation.SetLastSynthesisCheckAt(v)
	return _c
}

// SetNillableLastSynthesisCheckAt sets the "last_synthesis_check_at" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableLastSynthesisCheckAt(v *time.Time) *SynthesisConfigCreate {
	if v != nil {
		_c.SetLastSynthesisCheckAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SynthesisConfigCreate) SetCreatedAt(v time.Time) *SynthesisConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableCreatedAt(v *time.Time) *SynthesisConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SynthesisConfigCreate) SetUpdatedAt(v time.Time) *SynthesisConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SynthesisConfigCreate) SetNillableUpdatedAt(v *time.Time) *SynthesisConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SynthesisConfigCreate) SetID(v string) *SynthesisConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAnima sets the "anima" edge to the Anima entity.
func (_c *SynthesisConfigCreate) SetAnima(v *Anima) *SynthesisConfigCreate {
	return _c.SetAnimaID(v.ID)
}

// Mutation returns the SynthesisConfigMutation object of the builder.
func (_c *SynthesisConfigCreate) Mutation() *SynthesisConfigMutation {
	return _c.mutation
}

// Save creates the SynthesisConfig in the database.
func (_c *SynthesisConfigCreate) Save(ctx context.Context) (*SynthesisConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SynthesisConfigCreate) SaveX(ctx context.Context) *SynthesisConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SynthesisConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SynthesisConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SynthesisConfigCreate) defaults() {
	if _, ok := _c.mutation.TimeWeight(); !ok {
		v := synthesisconfig.DefaultTimeWeight
		_c.mutation.SetTimeWeight(v)
	}
	if _, ok := _c.mutation.EventWeight(); !ok {
		v := synthesisconfig.DefaultEventWeight
		_c.mutation.SetEventWeight(v)
	}
	if _, ok := _c.mutation.TokenWeight(); !ok {
		v := synthesisconfig.DefaultTokenWeight
		_c.mutation.SetTokenWeight(v)
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		v := synthesisconfig.DefaultThreshold
		_c.mutation.SetThreshold(v)
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		v := synthesisconfig.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		v := synthesisconfig.DefaultMaxTokens
		_c.mutation.SetMaxTokens(v)
	}
	if _, ok := _c.mutation.IntervalHours(); !ok {
		v := synthesisconfig.DefaultIntervalHours
		_c.mutation.SetIntervalHours(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := synthesisconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := synthesisconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SynthesisConfigCreate) check() error {
	if _, ok := _c.mutation.AnimaID(); !ok {
		return &ValidationError{Name: "anima_id", err: errors.New(`ent: missing required field "SynthesisConfig.anima_id"`)}
	}
	if _, ok := _c.mutation.TimeWeight(); !ok {
		return &ValidationError{Name: "time_weight", err: errors.New(`ent: missing required field "SynthesisConfig.time_weight"`)}
	}
	if v, ok := _c.mutation.TimeWeight(); ok {
		if err := synthesisconfig.TimeWeightValidator(v); err != nil {
			return &ValidationError{Name: "time_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.time_weight": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventWeight(); !ok {
		return &ValidationError{Name: "event_weight", err: errors.New(`ent: missing required field "SynthesisConfig.event_weight"`)}
	}
	if v, ok := _c.mutation.EventWeight(); ok {
		if err := synthesisconfig.EventWeightValidator(v); err != nil {
			return &ValidationError{Name: "event_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.event_weight": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokenWeight(); !ok {
		return &ValidationError{Name: "token_weight", err: errors.New(`ent: missing required field "SynthesisConfig.token_weight"`)}
	}
	if v, ok := _c.mutation.TokenWeight(); ok {
		if err := synthesisconfig.TokenWeightValidator(v); err != nil {
			return &ValidationError{Name: "token_weight", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.token_weight": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "SynthesisConfig.threshold"`)}
	}
	if v, ok := _c.mutation.Threshold(); ok {
		if err := synthesisconfig.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.threshold": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "SynthesisConfig.temperature"`)}
	}
	if v, ok := _c.mutation.Temperature(); ok {
		if err := synthesisconfig.TemperatureValidator(v); err != nil {
			return &ValidationError{Name: "temperature", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.temperature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "SynthesisConfig.max_tokens"`)}
	}
	if v, ok := _c.mutation.MaxTokens(); ok {
		if err := synthesisconfig.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.max_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalHours(); !ok {
		return &ValidationError{Name: "interval_hours", err: errors.New(`ent: missing required field "SynthesisConfig.interval_hours"`)}
	}
	if v, ok := _c.mutation.IntervalHours(); ok {
		if err := synthesisconfig.IntervalHoursValidator(v); err != nil {
			return &ValidationError{Name: "interval_hours", err: fmt.Errorf(`ent: validator failed for field "SynthesisConfig.interval_hours": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SynthesisConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SynthesisConfig.updated_at"`)}
	}
	if len(_c.mutation.AnimaIDs()) == 0 {
		return &ValidationError{Name: "anima", err: errors.New(`ent: missing required edge "SynthesisConfig.anima"`)}
	}
	return nil
}

func (_c *SynthesisConfigCreate) sqlSave(ctx context.Context) (*SynthesisConfig, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SynthesisConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SynthesisConfigCreate) createSpec() (*SynthesisConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &SynthesisConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(synthesisconfig.Table, sqlgraph.NewFieldSpec(synthesisconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TimeWeight(); ok {
		_spec.SetField(synthesisconfig.FieldTimeWeight, field.TypeFloat64, value)
		_node.TimeWeight = value
	}
	if value, ok := _c.mutation.EventWeight(); ok {
		_spec.SetField(synthesisconfig.FieldEventWeight, field.TypeFloat64, value)
		_node.EventWeight = value
	}
	if value, ok := _c.mutation.TokenWeight(); ok {
		_spec.SetField(synthesisconfig.FieldTokenWeight, field.TypeFloat64, value)
		_node.TokenWeight = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(synthesisconfig.FieldThreshold, field.TypeFloat64, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(synthesisconfig.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(synthesisconfig.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.IntervalHours(); ok {
		_spec.SetField(synthesisconfig.FieldIntervalHours, field.TypeInt, value)
		_node.IntervalHours = value
	}
	if value, ok := _c.mutation.LastSynthesisCheckAt(); ok {
		_spec.SetField(synthesisconfig.FieldLastSynthesisCheckAt, field.TypeTime, value)
		_node.LastSynthesisCheckAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(synthesisconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(synthesisconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AnimaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   synthesisconfig.AnimaTable,
			Columns: []string{synthesisconfig.AnimaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(anima.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnimaID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SynthesisConfigCreateBulk is the builder for creating many SynthesisConfig entities in bulk.
type SynthesisConfigCreateBulk struct {
	config
	err      error
	builders []*SynthesisConfigCreate
}

// Save creates the SynthesisConfig entities in the database.
func (_c *SynthesisConfigCreateBulk) Save(ctx context.Context) ([]*SynthesisConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SynthesisConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SynthesisConfigMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SynthesisConfigCreateBulk) SaveX(ctx context.Context) []*SynthesisConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SynthesisConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SynthesisConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
