// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// DreamActionUpdate is the builder for updating DreamAction entities.
type DreamActionUpdate struct {
	config
	hooks    []Hook
	mutation *DreamActionMutation
}

// Where appends a list predicates to the DreamActionUpdate builder.
func (_u *DreamActionUpdate) Where(ps ...predicate.DreamAction) *DreamActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DreamActionMutation object of the builder.
func (_u *DreamActionUpdate) Mutation() *DreamActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DreamActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DreamActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DreamActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DreamActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DreamActionUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DreamAction.session"`)
	}
	return nil
}

func (_u *DreamActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dreamaction.Table, dreamaction.Columns, sqlgraph.NewFieldSpec(dreamaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ResultMemoryIdsCleared() {
		_spec.ClearField(dreamaction.FieldResultMemoryIds, field.TypeJSON)
	}
	if _u.mutation.BeforeStateCleared() {
		_spec.ClearField(dreamaction.FieldBeforeState, field.TypeJSON)
	}
	if _u.mutation.AfterStateCleared() {
		_spec.ClearField(dreamaction.FieldAfterState, field.TypeJSON)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(dreamaction.FieldReasoning, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dreamaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DreamActionUpdateOne is the builder for updating a single DreamAction entity.
type DreamActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DreamActionMutation
}

// Mutation returns the DreamActionMutation object of the builder.
func (_u *DreamActionUpdateOne) Mutation() *DreamActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DreamActionUpdate builder.
func (_u *DreamActionUpdateOne) Where(ps ...predicate.DreamAction) *DreamActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DreamActionUpdateOne) Select(field string, fields ...string) *DreamActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DreamAction entity.
func (_u *DreamActionUpdateOne) Save(ctx context.Context) (*DreamAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DreamActionUpdateOne) SaveX(ctx context.Context) *DreamAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DreamActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DreamActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DreamActionUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DreamAction.session"`)
	}
	return nil
}

func (_u *DreamActionUpdateOne) sqlSave(ctx context.Context) (_node *DreamAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dreamaction.Table, dreamaction.Columns, sqlgraph.NewFieldSpec(dreamaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DreamAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dreamaction.FieldID)
		for _, f := range fields {
			if !dreamaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dreamaction.FieldID {
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
	if _u.mutation.ResultMemoryIdsCleared() {
		_spec.ClearField(dreamaction.FieldResultMemoryIds, field.TypeJSON)
	}
	if _u.mutation.BeforeStateCleared() {
		_spec.ClearField(dreamaction.FieldBeforeState, field.TypeJSON)
	}
	if _u.mutation.AfterStateCleared() {
		_spec.ClearField(dreamaction.FieldAfterState, field.TypeJSON)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(dreamaction.FieldReasoning, field.TypeString)
	}
	_node = &DreamAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dreamaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
