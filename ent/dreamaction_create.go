// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
)

// DreamActionCreate is the builder for creating a DreamAction entity.
type DreamActionCreate struct {
	config
	mutation *DreamActionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DreamActionCreate) SetSessionID(v string) *DreamActionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *DreamActionCreate) SetActionType(v dreamaction.ActionType) *DreamActionCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *DreamActionCreate) SetPhase(v dreamaction.Phase) *DreamActionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetSourceMemoryIds sets the "source_memory_ids" field.
func (_c *DreamActionCreate) SetSourceMemoryIds(v []string) *DreamActionCreate {
	_c.mutation.SetSourceMemoryIds(v)
	return _c
}

// SetResultMemoryIds sets the "result_memory_ids" field.
func (_c *DreamActionCreate) SetResultMemoryIds(v []string) *DreamActionCreate {
	_c.mutation.SetResultMemoryIds(v)
	return _c
}

// SetBeforeState sets the "before_state" field.
func (_c *DreamActionCreate) SetBeforeState(v map[string]interface{}) *DreamActionCreate {
	_c.mutation.SetBeforeState(v)
	return _c
}

// SetAfterState sets the "after_state" field.
func (_c *DreamActionCreate) SetAfterState(v map[string]interface{}) *DreamActionCreate {
	_c.mutation.SetAfterState(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *DreamActionCreate) SetReasoning(v string) *DreamActionCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *DreamActionCreate) SetNillableReasoning(v *string) *DreamActionCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DreamActionCreate) SetCreatedAt(v time.Time) *DreamActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DreamActionCreate) SetNillableCreatedAt(v *time.Time) *DreamActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DreamActionCreate) SetID(v string) *DreamActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the DreamSession entity.
func (_c *DreamActionCreate) SetSession(v *DreamSession) *DreamActionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the DreamActionMutation object of the builder.
func (_c *DreamActionCreate) Mutation() *DreamActionMutation {
	return _c.mutation
}

// Save creates the DreamAction in the database.
func (_c *DreamActionCreate) Save(ctx context.Context) (*DreamAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DreamActionCreate) SaveX(ctx context.Context) *DreamAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DreamActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DreamActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DreamActionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dreamaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DreamActionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DreamAction.session_id"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "DreamAction.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := dreamaction.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "DreamAction.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "DreamAction.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := dreamaction.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "DreamAction.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceMemoryIds(); !ok {
		return &ValidationError{Name: "source_memory_ids", err: errors.New(`ent: missing required field "DreamAction.source_memory_ids"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DreamAction.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "DreamAction.session"`)}
	}
	return nil
}

func (_c *DreamActionCreate) sqlSave(ctx context.Context) (*DreamAction, error) {
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
			return nil, fmt.Errorf("unexpected DreamAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DreamActionCreate) createSpec() (*DreamAction, *sqlgraph.CreateSpec) {
	var (
		_node = &DreamAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dreamaction.Table, sqlgraph.NewFieldSpec(dreamaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(dreamaction.FieldActionType, field.TypeEnum, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(dreamaction.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.SourceMemoryIds(); ok {
		_spec.SetField(dreamaction.FieldSourceMemoryIds, field.TypeJSON, value)
		_node.SourceMemoryIds = value
	}
	if value, ok := _c.mutation.ResultMemoryIds(); ok {
		_spec.SetField(dreamaction.FieldResultMemoryIds, field.TypeJSON, value)
		_node.ResultMemoryIds = value
	}
	if value, ok := _c.mutation.BeforeState(); ok {
		_spec.SetField(dreamaction.FieldBeforeState, field.TypeJSON, value)
		_node.BeforeState = value
	}
	if value, ok := _c.mutation.AfterState(); ok {
		_spec.SetField(dreamaction.FieldAfterState, field.TypeJSON, value)
		_node.AfterState = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(dreamaction.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dreamaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dreamaction.SessionTable,
			Columns: []string{dreamaction.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DreamActionCreateBulk is the builder for creating many DreamAction entities in bulk.
type DreamActionCreateBulk struct {
	config
	err      error
	builders []*DreamActionCreate
}

// Save creates the DreamAction entities in the database.
func (_c *DreamActionCreateBulk) Save(ctx context.Context) ([]*DreamAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DreamAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DreamActionMutation)
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
func (_c *DreamActionCreateBulk) SaveX(ctx context.Context) []*DreamAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DreamActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DreamActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
