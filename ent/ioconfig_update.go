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
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// IOConfigUpdate is the builder for updating IOConfig entities.
type IOConfigUpdate struct {
	config
	hooks    []Hook
	mutation *IOConfigMutation
}

// Where appends a list predicates to the IOConfigUpdate builder.
func (_u *IOConfigUpdate) Where(ps ...predicate.IOConfig) *IOConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReadSettings sets the "read_settings" field.
func (_u *IOConfigUpdate) SetReadSettings(v map[string]interface{}) *IOConfigUpdate {
	_u.mutation.SetReadSettings(v)
	return _u
}

// ClearReadSettings clears the value of the "read_settings" field.
func (_u *IOConfigUpdate) ClearReadSettings() *IOConfigUpdate {
	_u.mutation.ClearReadSettings()
	return _u
}

// SetWriteSettings sets the "write_settings" field.
func (_u *IOConfigUpdate) SetWriteSettings(v map[string]interface{}) *IOConfigUpdate {
	_u.mutation.SetWriteSettings(v)
	return _u
}

// ClearWriteSettings clears the value of the "write_settings" field.
func (_u *IOConfigUpdate) ClearWriteSettings() *IOConfigUpdate {
	_u.mutation.ClearWriteSettings()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IOConfigUpdate) SetUpdatedAt(v time.Time) *IOConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IOConfigMutation object of the builder.
func (_u *IOConfigUpdate) Mutation() *IOConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IOConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IOConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IOConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IOConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IOConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ioconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IOConfigUpdate) check() error {
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IOConfig.anima"`)
	}
	return nil
}

func (_u *IOConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ioconfig.Table, ioconfig.Columns, sqlgraph.NewFieldSpec(ioconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReadSettings(); ok {
		_spec.SetField(ioconfig.FieldReadSettings, field.TypeJSON, value)
	}
	if _u.mutation.ReadSettingsCleared() {
		_spec.ClearField(ioconfig.FieldReadSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.WriteSettings(); ok {
		_spec.SetField(ioconfig.FieldWriteSettings, field.TypeJSON, value)
	}
	if _u.mutation.WriteSettingsCleared() {
		_spec.ClearField(ioconfig.FieldWriteSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ioconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ioconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IOConfigUpdateOne is the builder for updating a single IOConfig entity.
type IOConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IOConfigMutation
}

// SetReadSettings sets the "read_settings" field.
func (_u *IOConfigUpdateOne) SetReadSettings(v map[string]interface{}) *IOConfigUpdateOne {
	_u.mutation.SetReadSettings(v)
	return _u
}

// ClearReadSettings clears the value of the "read_settings" field.
func (_u *IOConfigUpdateOne) ClearReadSettings() *IOConfigUpdateOne {
	_u.mutation.ClearReadSettings()
	return _u
}

// SetWriteSettings sets the "write_settings" field.
func (_u *IOConfigUpdateOne) SetWriteSettings(v map[string]interface{}) *IOConfigUpdateOne {
	_u.mutation.SetWriteSettings(v)
	return _u
}

// ClearWriteSettings clears the value of the "write_settings" field.
func (_u *IOConfigUpdateOne) ClearWriteSettings() *IOConfigUpdateOne {
	_u.mutation.ClearWriteSettings()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IOConfigUpdateOne) SetUpdatedAt(v time.Time) *IOConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IOConfigMutation object of the builder.
func (_u *IOConfigUpdateOne) Mutation() *IOConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the IOConfigUpdate builder.
func (_u *IOConfigUpdateOne) Where(ps ...predicate.IOConfig) *IOConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IOConfigUpdateOne) Select(field string, fields ...string) *IOConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IOConfig entity.
func (_u *IOConfigUpdateOne) Save(ctx context.Context) (*IOConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IOConfigUpdateOne) SaveX(ctx context.Context) *IOConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IOConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IOConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IOConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ioconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IOConfigUpdateOne) check() error {
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IOConfig.anima"`)
	}
	return nil
}

func (_u *IOConfigUpdateOne) sqlSave(ctx context.Context) (_node *IOConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ioconfig.Table, ioconfig.Columns, sqlgraph.NewFieldSpec(ioconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IOConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ioconfig.FieldID)
		for _, f := range fields {
			if !ioconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ioconfig.FieldID {
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
	if value, ok := _u.mutation.ReadSettings(); ok {
		_spec.SetField(ioconfig.FieldReadSettings, field.TypeJSON, value)
	}
	if _u.mutation.ReadSettingsCleared() {
		_spec.ClearField(ioconfig.FieldReadSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.WriteSettings(); ok {
		_spec.SetField(ioconfig.FieldWriteSettings, field.TypeJSON, value)
	}
	if _u.mutation.WriteSettingsCleared() {
		_spec.ClearField(ioconfig.FieldWriteSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ioconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &IOConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ioconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
