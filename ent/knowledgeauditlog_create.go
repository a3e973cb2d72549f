// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
)

// KnowledgeAuditLogCreate is the builder for creating a KnowledgeAuditLog entity.
type KnowledgeAuditLogCreate struct {
	config
	mutation *KnowledgeAuditLogMutation
	hooks    []Hook
}

// SetKnowledgeID sets the "knowledge_id" field.
func (_c *KnowledgeAuditLogCreate) SetKnowledgeID(v string) *KnowledgeAuditLogCreate {
	_c.mutation.SetKnowledgeID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *KnowledgeAuditLogCreate) SetAction(v knowledgeauditlog.Action) *KnowledgeAuditLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *KnowledgeAuditLogCreate) SetSourceType(v string) *KnowledgeAuditLogCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *KnowledgeAuditLogCreate) SetNillableSourceType(v *string) *KnowledgeAuditLogCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *KnowledgeAuditLogCreate) SetSourceID(v string) *KnowledgeAuditLogCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *KnowledgeAuditLogCreate) SetNillableSourceID(v *string) *KnowledgeAuditLogCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetBeforeState sets the "before_state" field.
func (_c *KnowledgeAuditLogCreate) SetBeforeState(v map[string]interface{}) *KnowledgeAuditLogCreate {
	_c.mutation.SetBeforeState(v)
	return _c
}

// SetAfterState sets the "after_state" field.
func (_c *KnowledgeAuditLogCreate) SetAfterState(v map[string]interface{}) *KnowledgeAuditLogCreate {
	_c.mutation.SetAfterState(v)
	return _c
}

// SetChangeSummary sets the "change_summary" field.
func (_c *KnowledgeAuditLogCreate) SetChangeSummary(v string) *KnowledgeAuditLogCreate {
	_c.mutation.SetChangeSummary(v)
	return _c
}

// SetNillableChangeSummary sets the "change_summary" field if the given value is not nil.
func (_c *KnowledgeAuditLogCreate) SetNillableChangeSummary(v *string) *KnowledgeAuditLogCreate {
	if v != nil {
		_c.SetChangeSummary(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *KnowledgeAuditLogCreate) SetTriggeredBy(v string) *KnowledgeAuditLogCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_c *KnowledgeAuditLogCreate) SetNillableTriggeredBy(v *string) *KnowledgeAuditLogCreate {
	if v != nil {
		_c.SetTriggeredBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeAuditLogCreate) SetCreatedAt(v time.Time) *KnowledgeAuditLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeAuditLogCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeAuditLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeAuditLogCreate) SetID(v string) *KnowledgeAuditLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetKnowledge sets the "knowledge" edge to the Knowledge entity.
func (_c *KnowledgeAuditLogCreate) SetKnowledge(v *Knowledge) *KnowledgeAuditLogCreate {
	return _c.SetKnowledgeID(v.ID)
}

// Mutation returns the KnowledgeAuditLogMutation object of the builder.
func (_c *KnowledgeAuditLogCreate) Mutation() *KnowledgeAuditLogMutation {
	return _c.mutation
}

// Save creates the KnowledgeAuditLog in the database.
func (_c *KnowledgeAuditLogCreate) Save(ctx context.Context) (*KnowledgeAuditLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeAuditLogCreate) SaveX(ctx context.Context) *KnowledgeAuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeAuditLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeAuditLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeAuditLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgeauditlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeAuditLogCreate) check() error {
	if _, ok := _c.mutation.KnowledgeID(); !ok {
		return &ValidationError{Name: "knowledge_id", err: errors.New(`ent: missing required field "KnowledgeAuditLog.knowledge_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "KnowledgeAuditLog.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := knowledgeauditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "KnowledgeAuditLog.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeAuditLog.created_at"`)}
	}
	if len(_c.mutation.KnowledgeIDs()) == 0 {
		return &ValidationError{Name: "knowledge", err: errors.New(`ent: missing required edge "KnowledgeAuditLog.knowledge"`)}
	}
	return nil
}

func (_c *KnowledgeAuditLogCreate) sqlSave(ctx context.Context) (*KnowledgeAuditLog, error) {
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
			return nil, fmt.Errorf("unexpected KnowledgeAuditLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeAuditLogCreate) createSpec() (*KnowledgeAuditLog, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeAuditLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgeauditlog.Table, sqlgraph.NewFieldSpec(knowledgeauditlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(knowledgeauditlog.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(knowledgeauditlog.FieldSourceType, field.TypeString, value)
		_node.SourceType = &value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(knowledgeauditlog.FieldSourceID, field.TypeString, value)
		_node.SourceID = &value
	}
	if value, ok := _c.mutation.BeforeState(); ok {
		_spec.SetField(knowledgeauditlog.FieldBeforeState, field.TypeJSON, value)
		_node.BeforeState = value
	}
	if value, ok := _c.mutation.AfterState(); ok {
		_spec.SetField(knowledgeauditlog.FieldAfterState, field.TypeJSON, value)
		_node.AfterState = value
	}
	if value, ok := _c.mutation.ChangeSummary(); ok {
		_spec.SetField(knowledgeauditlog.FieldChangeSummary, field.TypeString, value)
		_node.ChangeSummary = &value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(knowledgeauditlog.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgeauditlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.KnowledgeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeauditlog.KnowledgeTable,
			Columns: []string{knowledgeauditlog.KnowledgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.KnowledgeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KnowledgeAuditLogCreateBulk is the builder for creating many KnowledgeAuditLog entities in bulk.
type KnowledgeAuditLogCreateBulk struct {
	config
	err      error
	builders []*KnowledgeAuditLogCreate
}

// Save creates the KnowledgeAuditLog entities in the database.
func (_c *KnowledgeAuditLogCreateBulk) Save(ctx context.Context) ([]*KnowledgeAuditLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeAuditLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeAuditLogMutation)
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
func (_c *KnowledgeAuditLogCreateBulk) SaveX(ctx context.Context) []*KnowledgeAuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeAuditLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeAuditLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
