// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
)

// MemoryEventCreate is the builder for creating a MemoryEvent entity.
type MemoryEventCreate struct {
	config
	mutation *MemoryEventMutation
	hooks    []Hook
}

// SetMemoryID sets the "memory_id" field.
func (_c *MemoryEventCreate) SetMemoryID(v string) *MemoryEventCreate {
	_c.mutation.SetMemoryID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *MemoryEventCreate) SetEventID(v string) *MemoryEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetLinkStrength sets the "link_strength" field.
func (_c *MemoryEventCreate) SetLinkStrength(v float64) *MemoryEventCreate {
	_c.mutation.SetLinkStrength(v)
	return _c
}

// SetNillableLinkStrength sets the "link_strength" field if the given value is not nil.
func (_c *MemoryEventCreate) SetNillableLinkStrength(v *float64) *MemoryEventCreate {
	if v != nil {
		_c.SetLinkStrength(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryEventCreate) SetCreatedAt(v time.Time) *MemoryEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryEventCreate) SetNillableCreatedAt(v *time.Time) *MemoryEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryEventCreate) SetID(v string) *MemoryEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMemory sets the "memory" edge to the Memory entity.
func (_c *MemoryEventCreate) SetMemory(v *Memory) *MemoryEventCreate {
	return _c.SetMemoryID(v.ID)
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *MemoryEventCreate) SetEvent(v *Event) *MemoryEventCreate {
	return _c.SetEventID(v.ID)
}

// Mutation returns the MemoryEventMutation object of the builder.
func (_c *MemoryEventCreate) Mutation() *MemoryEventMutation {
	return _c.mutation
}

// Save creates the MemoryEvent in the database.
func (_c *MemoryEventCreate) Save(ctx context.Context) (*MemoryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryEventCreate) SaveX(ctx context.Context) *MemoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryEventCreate) check() error {
	if _, ok := _c.mutation.MemoryID(); !ok {
		return &ValidationError{Name: "memory_id", err: errors.New(`ent: missing required field "MemoryEvent.memory_id"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "MemoryEvent.event_id"`)}
	}
	if v, ok := _c.mutation.LinkStrength(); ok {
		if err := memoryevent.LinkStrengthValidator(v); err != nil {
			return &ValidationError{Name: "link_strength", err: fmt.Errorf(`ent: validator failed for field "MemoryEvent.link_strength": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryEvent.created_at"`)}
	}
	if len(_c.mutation.MemoryIDs()) == 0 {
		return &ValidationError{Name: "memory", err: errors.New(`ent: missing required edge "MemoryEvent.memory"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "MemoryEvent.event"`)}
	}
	return nil
}

func (_c *MemoryEventCreate) sqlSave(ctx context.Context) (*MemoryEvent, error) {
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
			return nil, fmt.Errorf("unexpected MemoryEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryEventCreate) createSpec() (*MemoryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryevent.Table, sqlgraph.NewFieldSpec(memoryevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LinkStrength(); ok {
		_spec.SetField(memoryevent.FieldLinkStrength, field.TypeFloat64, value)
		_node.LinkStrength = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MemoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   memoryevent.MemoryTable,
			Columns: []string{memoryevent.MemoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MemoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   memoryevent.EventTable,
			Columns: []string{memoryevent.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MemoryEventCreateBulk is the builder for creating many MemoryEvent entities in bulk.
type MemoryEventCreateBulk struct {
	config
	err      error
	builders []*MemoryEventCreate
}

// Save creates the MemoryEvent entities in the database.
func (_c *MemoryEventCreateBulk) Save(ctx context.Context) ([]*MemoryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryEventMutation)
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
func (_c *MemoryEventCreateBulk) SaveX(ctx context.Context) []*MemoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
