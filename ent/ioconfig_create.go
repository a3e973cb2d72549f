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
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
)

// IOConfigCreate is the builder for creating a IOConfig entity.
type IOConfigCreate struct {
	config
	mutation *IOConfigMutation
	hooks    []Hook
}

// SetAnimaID sets the "anima_id" field.
func (_c *IOConfigCreate) SetAnimaID(v string) *IOConfigCreate {
	_c.mutation.SetAnimaID(v)
	return _c
}

// SetReadSettings sets the "read_settings" field.
func (_c *IOConfigCreate) SetReadSettings(v map[string]interface{}) *IOConfigCreate {
	_c.mutation.SetReadSettings(v)
	return _c
}

// SetWriteSettings sets the "write_settings" field.
func (_c *IOConfigCreate) SetWriteSettings(v map[string]interface{}) *IOConfigCreate {
	_c.mutation.SetWriteSettings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IOConfigCreate) SetCreatedAt(v time.Time) *IOConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IOConfigCreate) SetNillableCreatedAt(v *time.Time) *IOConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IOConfigCreate) SetUpdatedAt(v time.Time) *IOConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IOConfigCreate) SetNillableUpdatedAt(v *time.Time) *IOConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IOConfigCreate) SetID(v string) *IOConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAnima sets the "anima" edge to the Anima entity.
func (_c *IOConfigCreate) SetAnima(v *Anima) *IOConfigCreate {
	return _c.SetAnimaID(v.ID)
}

// Mutation returns the IOConfigMutation object of the builder.
func (_c *IOConfigCreate) Mutation() *IOConfigMutation {
	return _c.mutation
}

// Save creates the IOConfig in the database.
func (_c *IOConfigCreate) Save(ctx context.Context) (*IOConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IOConfigCreate) SaveX(ctx context.Context) *IOConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IOConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IOConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IOConfigCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ioconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ioconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IOConfigCreate) check() error {
	if _, ok := _c.mutation.AnimaID(); !ok {
		return &ValidationError{Name: "anima_id", err: errors.New(`ent: missing required field "IOConfig.anima_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IOConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IOConfig.updated_at"`)}
	}
	if len(_c.mutation.AnimaIDs()) == 0 {
		return &ValidationError{Name: "anima", err: errors.New(`ent: missing required edge "IOConfig.anima"`)}
	}
	return nil
}

func (_c *IOConfigCreate) sqlSave(ctx context.Context) (*IOConfig, error) {
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
			return nil, fmt.Errorf("unexpected IOConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IOConfigCreate) createSpec() (*IOConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &IOConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ioconfig.Table, sqlgraph.NewFieldSpec(ioconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ReadSettings(); ok {
		_spec.SetField(ioconfig.FieldReadSettings, field.TypeJSON, value)
		_node.ReadSettings = value
	}
	if value, ok := _c.mutation.WriteSettings(); ok {
		_spec.SetField(ioconfig.FieldWriteSettings, field.TypeJSON, value)
		_node.WriteSettings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ioconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ioconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AnimaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   ioconfig.AnimaTable,
			Columns: []string{ioconfig.AnimaColumn},
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

// IOConfigCreateBulk is the builder for creating many IOConfig entities in bulk.
type IOConfigCreateBulk struct {
	config
	err      error
	builders []*IOConfigCreate
}

// Save creates the IOConfig entities in the database.
func (_c *IOConfigCreateBulk) Save(ctx context.Context) ([]*IOConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IOConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IOConfigMutation)
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
func (_c *IOConfigCreateBulk) SaveX(ctx context.Context) []*IOConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IOConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IOConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
