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
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
)

// DreamSessionCreate is the builder for creating a DreamSession entity.
type DreamSessionCreate struct {
	config
	mutation *DreamSessionMutation
	hooks    []Hook
}

// SetAnimaID sets the "anima_id" field.
func (_c *DreamSessionCreate) SetAnimaID(v string) *DreamSessionCreate {
	_c.mutation.SetAnimaID(v)
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *DreamSessionCreate) SetTriggerType(v dreamsession.TriggerType) *DreamSessionCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *DreamSessionCreate) SetTriggeredBy(v string) *DreamSessionCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableTriggeredBy(v *string) *DreamSessionCreate {
	if v != nil {
		_c.SetTriggeredBy(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DreamSessionCreate) SetStartedAt(v time.Time) *DreamSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableStartedAt(v *time.Time) *DreamSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DreamSessionCreate) SetCompletedAt(v time.Time) *DreamSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableCompletedAt(v *time.Time) *DreamSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DreamSessionCreate) SetStatus(v dreamsession.Status) *DreamSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableStatus(v *dreamsession.Status) *DreamSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DreamSessionCreate) SetErrorMessage(v string) *DreamSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableErrorMessage(v *string) *DreamSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetMemoriesReviewed sets the "memories_reviewed" field.
func (_c *DreamSessionCreate) SetMemoriesReviewed(v int) *DreamSessionCreate {
	_c.mutation.SetMemoriesReviewed(v)
	return _c
}

// SetNillableMemoriesReviewed sets the "memories_reviewed" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableMemoriesReviewed(v *int) *DreamSessionCreate {
	if v != nil {
		_c.SetMemoriesReviewed(*v)
	}
	return _c
}

// SetMemoriesModified sets the "memories_modified" field.
func (_c *DreamSessionCreate) SetMemoriesModified(v int) *DreamSessionCreate {
	_c.mutation.SetMemoriesModified(v)
	return _c
}

// SetNillableMemoriesModified sets the "memories_modified" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableMemoriesModified(v *int) *DreamSessionCreate {
	if v != nil {
		_c.SetMemoriesModified(*v)
	}
	return _c
}

// SetMemoriesCreated sets the "memories_created" field.
func (_c *DreamSessionCreate) SetMemoriesCreated(v int) *DreamSessionCreate {
	_c.mutation.SetMemoriesCreated(v)
	return _c
}

// SetNillableMemoriesCreated sets the "memories_created" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableMemoriesCreated(v *int) *DreamSessionCreate {
	if v != nil {
		_c.SetMemoriesCreated(*v)
	}
	return _c
}

// SetMemoriesArchived sets the "memories_archived" field.
func (_c *DreamSessionCreate) SetMemoriesArchived(v int) *DreamSessionCreate {
	_c.mutation.SetMemoriesArchived(v)
	return _c
}

// SetNillableMemoriesArchived sets the "memories_archived" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableMemoriesArchived(v *int) *DreamSessionCreate {
	if v != nil {
		_c.SetMemoriesArchived(*v)
	}
	return _c
}

// SetMemoriesDeleted sets the "memories_deleted" field.
func (_c *DreamSessionCreate) SetMemoriesDeleted(v int) *DreamSessionCreate {
	_c.mutation.SetMemoriesDeleted(v)
	return _c
}

// SetNillableMemoriesDeleted sets the "memories_deleted" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableMemoriesDeleted(v *int) *DreamSessionCreate {
	if v != nil {
		_c.SetMemoriesDeleted(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *DreamSessionCreate) SetSummary(v string) *DreamSessionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableSummary(v *string) *DreamSessionCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_c *DreamSessionCreate) SetConfigSnapshot(v map[string]interface{}) *DreamSessionCreate {
	_c.mutation.SetConfigSnapshot(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DreamSessionCreate) SetCreatedAt(v time.Time) *DreamSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableCreatedAt(v *time.Time) *DreamSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DreamSessionCreate) SetUpdatedAt(v time.Time) *DreamSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DreamSessionCreate) SetNillableUpdatedAt(v *time.Time) *DreamSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DreamSessionCreate) SetID(v string) *DreamSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAnima sets the "anima" edge to the Anima entity.
func (_c *DreamSessionCreate) SetAnima(v *Anima) *DreamSessionCreate {
	return _c.SetAnimaID(v.ID)
}

// AddActionIDs adds the "actions" edge to the DreamAction entity by IDs.
func (_c *DreamSessionCreate) AddActionIDs(ids ...string) *DreamSessionCreate {
	_c.mutation.AddActionIDs(ids...)
	return _c
}

// AddActions adds the "actions" edges to the DreamAction entity.
func (_c *DreamSessionCreate) AddActions(v ...*DreamAction) *DreamSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActionIDs(ids...)
}

// Mutation returns the DreamSessionMutation object of the builder.
func (_c *DreamSessionCreate) Mutation() *DreamSessionMutation {
	return _c.mutation
}

// Save creates the DreamSession in the database.
func (_c *DreamSessionCreate) Save(ctx context.Context) (*DreamSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DreamSessionCreate) SaveX(ctx context.Context) *DreamSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DreamSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DreamSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DreamSessionCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := dreamsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := dreamsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MemoriesReviewed(); !ok {
		v := dreamsession.DefaultMemoriesReviewed
		_c.mutation.SetMemoriesReviewed(v)
	}
	if _, ok := _c.mutation.MemoriesModified(); !ok {
		v := dreamsession.DefaultMemoriesModified
		_c.mutation.SetMemoriesModified(v)
	}
	if _, ok := _c.mutation.MemoriesCreated(); !ok {
		v := dreamsession.DefaultMemoriesCreated
		_c.mutation.SetMemoriesCreated(v)
	}
	if _, ok := _c.mutation.MemoriesArchived(); !ok {
		v := dreamsession.DefaultMemoriesArchived
		_c.mutation.SetMemoriesArchived(v)
	}
	if _, ok := _c.mutation.MemoriesDeleted(); !ok {
		v := dreamsession.DefaultMemoriesDeleted
		_c.mutation.SetMemoriesDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dreamsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dreamsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DreamSessionCreate) check() error {
	if _, ok := _c.mutation.AnimaID(); !ok {
		return &ValidationError{Name: "anima_id", err: errors.New(`ent: missing required field "DreamSession.anima_id"`)}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "DreamSession.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := dreamsession.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "DreamSession.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "DreamSession.started_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DreamSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dreamsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DreamSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MemoriesReviewed(); !ok {
		return &ValidationError{Name: "memories_reviewed", err: errors.New(`ent: missing required field "DreamSession.memories_reviewed"`)}
	}
	if _, ok := _c.mutation.MemoriesModified(); !ok {
		return &ValidationError{Name: "memories_modified", err: errors.New(`ent: missing required field "DreamSession.memories_modified"`)}
	}
	if _, ok := _c.mutation.MemoriesCreated(); !ok {
		return &ValidationError{Name: "memories_created", err: errors.New(`ent: missing required field "DreamSession.memories_created"`)}
	}
	if _, ok := _c.mutation.MemoriesArchived(); !ok {
		return &ValidationError{Name: "memories_archived", err: errors.New(`ent: missing required field "DreamSession.memories_archived"`)}
	}
	if _, ok := _c.mutation.MemoriesDeleted(); !ok {
		return &ValidationError{Name: "memories_deleted", err: errors.New(`ent: missing required field "DreamSession.memories_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DreamSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DreamSession.updated_at"`)}
	}
	if len(_c.mutation.AnimaIDs()) == 0 {
		return &ValidationError{Name: "anima", err: errors.New(`ent: missing required edge "DreamSession.anima"`)}
	}
	return nil
}

func (_c *DreamSessionCreate) sqlSave(ctx context.Context) (*DreamSession, error) {
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
			return nil, fmt.Errorf("unexpected DreamSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DreamSessionCreate) createSpec() (*DreamSession, *sqlgraph.CreateSpec) {
	var (
		_node = &DreamSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dreamsession.Table, sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(dreamsession.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(dreamsession.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(dreamsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(dreamsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dreamsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(dreamsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.MemoriesReviewed(); ok {
		_spec.SetField(dreamsession.FieldMemoriesReviewed, field.TypeInt, value)
		_node.MemoriesReviewed = value
	}
	if value, ok := _c.mutation.MemoriesModified(); ok {
		_spec.SetField(dreamsession.FieldMemoriesModified, field.TypeInt, value)
		_node.MemoriesModified = value
	}
	if value, ok := _c.mutation.MemoriesCreated(); ok {
		_spec.SetField(dreamsession.FieldMemoriesCreated, field.TypeInt, value)
		_node.MemoriesCreated = value
	}
	if value, ok := _c.mutation.MemoriesArchived(); ok {
		_spec.SetField(dreamsession.FieldMemoriesArchived, field.TypeInt, value)
		_node.MemoriesArchived = value
	}
	if value, ok := _c.mutation.MemoriesDeleted(); ok {
		_spec.SetField(dreamsession.FieldMemoriesDeleted, field.TypeInt, value)
		_node.MemoriesDeleted = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(dreamsession.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.ConfigSnapshot(); ok {
		_spec.SetField(dreamsession.FieldConfigSnapshot, field.TypeJSON, value)
		_node.ConfigSnapshot = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dreamsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dreamsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AnimaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dreamsession.AnimaTable,
			Columns: []string{dreamsession.AnimaColumn},
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
	if nodes := _c.mutation.ActionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dreamsession.ActionsTable,
			Columns: []string{dreamsession.ActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dreamaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DreamSessionCreateBulk is the builder for creating many DreamSession entities in bulk.
type DreamSessionCreateBulk struct {
	config
	err      error
	builders []*DreamSessionCreate
}

// Save creates the DreamSession entities in the database.
func (_c *DreamSessionCreateBulk) Save(ctx context.Context) ([]*DreamSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DreamSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DreamSessionMutation)
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
func (_c *DreamSessionCreateBulk) SaveX(ctx context.Context) []*DreamSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DreamSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DreamSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
