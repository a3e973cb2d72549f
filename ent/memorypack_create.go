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
	"github.com/hejijunhao/elephantasm/ent/memorypack"
)

// MemoryPackCreate is the builder for creating a MemoryPack entity.
type MemoryPackCreate struct {
	config
	mutation *MemoryPackMutation
	hooks    []Hook
}

// SetAnimaID sets the "anima_id" field.
func (_c *MemoryPackCreate) SetAnimaID(v string) *MemoryPackCreate {
	_c.mutation.SetAnimaID(v)
	return _c
}

// SetQuery sets the "query" field.
func (_c *MemoryPackCreate) SetQuery(v string) *MemoryPackCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillableQuery(v *string) *MemoryPackCreate {
	if v != nil {
		_c.SetQuery(*v)
	}
	return _c
}

// SetPreset sets the "preset" field.
func (_c *MemoryPackCreate) SetPreset(v string) *MemoryPackCreate {
	_c.mutation.SetPreset(v)
	return _c
}

// SetNillablePreset sets the "preset" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillablePreset(v *string) *MemoryPackCreate {
	if v != nil {
		_c.SetPreset(*v)
	}
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *MemoryPackCreate) SetSessionCount(v int) *MemoryPackCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillableSessionCount(v *int) *MemoryPackCreate {
	if v != nil {
		_c.SetSessionCount(*v)
	}
	return _c
}

// SetKnowledgeCount sets the "knowledge_count" field.
func (_c *MemoryPackCreate) SetKnowledgeCount(v int) *MemoryPackCreate {
	_c.mutation.SetKnowledgeCount(v)
	return _c
}

// SetNillableKnowledgeCount sets the "knowledge_count" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillableKnowledgeCount(v *int) *MemoryPackCreate {
	if v != nil {
		_c.SetKnowledgeCount(*v)
	}
	return _c
}

// SetLongTermCount sets the "long_term_count" field.
func (_c *MemoryPackCreate) SetLongTermCount(v int) *MemoryPackCreate {
	_c.mutation.SetLongTermCount(v)
	return _c
}

// SetNillableLongTermCount sets the "long_term_count" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillableLongTermCount(v *int) *MemoryPackCreate {
	if v != nil {
		_c.SetLongTermCount(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *MemoryPackCreate) SetTokenCount(v int) *MemoryPackCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillableTokenCount(v *int) *MemoryPackCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *MemoryPackCreate) SetMaxTokens(v int) *MemoryPackCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillableMaxTokens(v *int) *MemoryPackCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryPackCreate) SetContent(v map[string]interface{}) *MemoryPackCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCompiledAt sets the "compiled_at" field.
func (_c *MemoryPackCreate) SetCompiledAt(v time.Time) *MemoryPackCreate {
	_c.mutation.SetCompiledAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryPackCreate) SetCreatedAt(v time.Time) *MemoryPackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillableCreatedAt(v *time.Time) *MemoryPackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MemoryPackCreate) SetUpdatedAt(v time.Time) *MemoryPackCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MemoryPackCreate) SetNillableUpdatedAt(v *time.Time) *MemoryPackCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryPackCreate) SetID(v string) *MemoryPackCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAnima sets the "anima" edge to the Anima entity.
func (_c *MemoryPackCreate) SetAnima(v *Anima) *MemoryPackCreate {
	return _c.SetAnimaID(v.ID)
}

// Mutation returns the MemoryPackMutation object of the builder.
func (_c *MemoryPackCreate) Mutation() *MemoryPackMutation {
	return _c.mutation
}

// Save creates the MemoryPack in the database.
func (_c *MemoryPackCreate) Save(ctx context.Context) (*MemoryPack, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryPackCreate) SaveX(ctx context.Context) *MemoryPack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryPackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryPackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryPackCreate) defaults() {
	if _, ok := _c.mutation.SessionCount(); !ok {
		v := memorypack.DefaultSessionCount
		_c.mutation.SetSessionCount(v)
	}
	if _, ok := _c.mutation.KnowledgeCount(); !ok {
		v := memorypack.DefaultKnowledgeCount
		_c.mutation.SetKnowledgeCount(v)
	}
	if _, ok := _c.mutation.LongTermCount(); !ok {
		v := memorypack.DefaultLongTermCount
		_c.mutation.SetLongTermCount(v)
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := memorypack.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		v := memorypack.DefaultMaxTokens
		_c.mutation.SetMaxTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memorypack.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := memorypack.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryPackCreate) check() error {
	if _, ok := _c.mutation.AnimaID(); !ok {
		return &ValidationError{Name: "anima_id", err: errors.New(`ent: missing required field "MemoryPack.anima_id"`)}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`ent: missing required field "MemoryPack.session_count"`)}
	}
	if _, ok := _c.mutation.KnowledgeCount(); !ok {
		return &ValidationError{Name: "knowledge_count", err: errors.New(`ent: missing required field "MemoryPack.knowledge_count"`)}
	}
	if _, ok := _c.mutation.LongTermCount(); !ok {
		return &ValidationError{Name: "long_term_count", err: errors.New(`ent: missing required field "MemoryPack.long_term_count"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "MemoryPack.token_count"`)}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "MemoryPack.max_tokens"`)}
	}
	if _, ok := _c.mutation.CompiledAt(); !ok {
		return &ValidationError{Name: "compiled_at", err: errors.New(`ent: missing required field "MemoryPack.compiled_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryPack.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MemoryPack.updated_at"`)}
	}
	if len(_c.mutation.AnimaIDs()) == 0 {
		return &ValidationError{Name: "anima", err: errors.New(`ent: missing required edge "MemoryPack.anima"`)}
	}
	return nil
}

func (_c *MemoryPackCreate) sqlSave(ctx context.Context) (*MemoryPack, error) {
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
			return nil, fmt.Errorf("unexpected MemoryPack.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryPackCreate) createSpec() (*MemoryPack, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryPack{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memorypack.Table, sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(memorypack.FieldQuery, field.TypeString, value)
		_node.Query = &value
	}
	if value, ok := _c.mutation.Preset(); ok {
		_spec.SetField(memorypack.FieldPreset, field.TypeString, value)
		_node.Preset = &value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(memorypack.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.KnowledgeCount(); ok {
		_spec.SetField(memorypack.FieldKnowledgeCount, field.TypeInt, value)
		_node.KnowledgeCount = value
	}
	if value, ok := _c.mutation.LongTermCount(); ok {
		_spec.SetField(memorypack.FieldLongTermCount, field.TypeInt, value)
		_node.LongTermCount = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(memorypack.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(memorypack.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memorypack.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CompiledAt(); ok {
		_spec.SetField(memorypack.FieldCompiledAt, field.TypeTime, value)
		_node.CompiledAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memorypack.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(memorypack.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AnimaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   memorypack.AnimaTable,
			Columns: []string{memorypack.AnimaColumn},
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

// MemoryPackCreateBulk is the builder for creating many MemoryPack entities in bulk.
type MemoryPackCreateBulk struct {
	config
	err      error
	builders []*MemoryPackCreate
}

// Save creates the MemoryPack entities in the database.
func (_c *MemoryPackCreateBulk) Save(ctx context.Context) ([]*MemoryPack, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryPack, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryPackMutation)
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
func (_c *MemoryPackCreateBulk) SaveX(ctx context.Context) []*MemoryPack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryPackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryPackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
