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
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
)

// MemoryCreate is the builder for creating a Memory entity.
type MemoryCreate struct {
	config
	mutation *MemoryMutation
	hooks    []Hook
}

// SetAnimaID sets the "anima_id" field.
func (_c *MemoryCreate) SetAnimaID(v string) *MemoryCreate {
	_c.mutation.SetAnimaID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryCreate) SetContent(v string) *MemoryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *MemoryCreate) SetSummary(v string) *MemoryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableSummary(v *string) *MemoryCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetImportance sets the "importance" field.
func (_c *MemoryCreate) SetImportance(v float64) *MemoryCreate {
	_c.mutation.SetImportance(v)
	return _c
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableImportance(v *float64) *MemoryCreate {
	if v != nil {
		_c.SetImportance(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MemoryCreate) SetConfidence(v float64) *MemoryCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableConfidence(v *float64) *MemoryCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *MemoryCreate) SetState(v memory.State) *MemoryCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableState(v *memory.State) *MemoryCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetRecencyScore sets the "recency_score" field.
func (_c *MemoryCreate) SetRecencyScore(v float64) *MemoryCreate {
	_c.mutation.SetRecencyScore(v)
	return _c
}

// SetNillableRecencyScore sets the "recency_score" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableRecencyScore(v *float64) *MemoryCreate {
	if v != nil {
		_c.SetRecencyScore(*v)
	}
	return _c
}

// SetDecayScore sets the "decay_score" field.
func (_c *MemoryCreate) SetDecayScore(v float64) *MemoryCreate {
	_c.mutation.SetDecayScore(v)
	return _c
}

// SetNillableDecayScore sets the "decay_score" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableDecayScore(v *float64) *MemoryCreate {
	if v != nil {
		_c.SetDecayScore(*v)
	}
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *MemoryCreate) SetAccessCount(v int) *MemoryCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableAccessCount(v *int) *MemoryCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_c *MemoryCreate) SetLastAccessedAt(v time.Time) *MemoryCreate {
	_c.mutation.SetLastAccessedAt(v)
	return _c
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableLastAccessedAt(v *time.Time) *MemoryCreate {
	if v != nil {
		_c.SetLastAccessedAt(*v)
	}
	return _c
}

// SetTimeStart sets the "time_start" field.
func (_c *MemoryCreate) SetTimeStart(v time.Time) *MemoryCreate {
	_c.mutation.SetTimeStart(v)
	return _c
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableTimeStart(v *time.Time) *MemoryCreate {
	if v != nil {
		_c.SetTimeStart(*v)
	}
	return _c
}

// SetTimeEnd sets the "time_end" field.
func (_c *MemoryCreate) SetTimeEnd(v time.Time) *MemoryCreate {
	_c.mutation.SetTimeEnd(v)
	return _c
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableTimeEnd(v *time.Time) *MemoryCreate {
	if v != nil {
		_c.SetTimeEnd(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MemoryCreate) SetMetadata(v map[string]interface{}) *MemoryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *MemoryCreate) SetEmbedding(v []float32) *MemoryCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_c *MemoryCreate) SetEmbeddingModel(v string) *MemoryCreate {
	_c.mutation.SetEmbeddingModel(v)
	return _c
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableEmbeddingModel(v *string) *MemoryCreate {
	if v != nil {
		_c.SetEmbeddingModel(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *MemoryCreate) SetIsDeleted(v bool) *MemoryCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableIsDeleted(v *bool) *MemoryCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryCreate) SetCreatedAt(v time.Time) *MemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableCreatedAt(v *time.Time) *MemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MemoryCreate) SetUpdatedAt(v time.Time) *MemoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MemoryCreate) SetNillableUpdatedAt(v *time.Time) *MemoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryCreate) SetID(v string) *MemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAnima sets the "anima" edge to the Anima entity.
func (_c *MemoryCreate) SetAnima(v *Anima) *MemoryCreate {
	return _c.SetAnimaID(v.ID)
}

// AddEventLinkIDs adds the "event_links" edge to the MemoryEvent entity by IDs.
func (_c *MemoryCreate) AddEventLinkIDs(ids ...string) *MemoryCreate {
	_c.mutation.AddEventLinkIDs(ids...)
	return _c
}

// AddEventLinks adds the "event_links" edges to the MemoryEvent entity.
func (_c *MemoryCreate) AddEventLinks(v ...*MemoryEvent) *MemoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventLinkIDs(ids...)
}

// Mutation returns the MemoryMutation object of the builder.
func (_c *MemoryCreate) Mutation() *MemoryMutation {
	return _c.mutation
}

// Save creates the Memory in the database.
func (_c *MemoryCreate) Save(ctx context.Context) (*Memory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryCreate) SaveX(ctx context.Context) *Memory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := memory.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := memory.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := memory.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := memory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryCreate) check() error {
	if _, ok := _c.mutation.AnimaID(); !ok {
		return &ValidationError{Name: "anima_id", err: errors.New(`ent: missing required field "Memory.anima_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Memory.content"`)}
	}
	if v, ok := _c.mutation.Importance(); ok {
		if err := memory.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "Memory.importance": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := memory.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Memory.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Memory.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := memory.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Memory.state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RecencyScore(); ok {
		if err := memory.RecencyScoreValidator(v); err != nil {
			return &ValidationError{Name: "recency_score", err: fmt.Errorf(`ent: validator failed for field "Memory.recency_score": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DecayScore(); ok {
		if err := memory.DecayScoreValidator(v); err != nil {
			return &ValidationError{Name: "decay_score", err: fmt.Errorf(`ent: validator failed for field "Memory.decay_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "Memory.access_count"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Memory.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Memory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Memory.updated_at"`)}
	}
	if len(_c.mutation.AnimaIDs()) == 0 {
		return &ValidationError{Name: "anima", err: errors.New(`ent: missing required edge "Memory.anima"`)}
	}
	return nil
}

func (_c *MemoryCreate) sqlSave(ctx context.Context) (*Memory, error) {
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
			return nil, fmt.Errorf("unexpected Memory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryCreate) createSpec() (*Memory, *sqlgraph.CreateSpec) {
	var (
		_node = &Memory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memory.Table, sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memory.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(memory.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Importance(); ok {
		_spec.SetField(memory.FieldImportance, field.TypeFloat64, value)
		_node.Importance = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(memory.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(memory.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.RecencyScore(); ok {
		_spec.SetField(memory.FieldRecencyScore, field.TypeFloat64, value)
		_node.RecencyScore = &value
	}
	if value, ok := _c.mutation.DecayScore(); ok {
		_spec.SetField(memory.FieldDecayScore, field.TypeFloat64, value)
		_node.DecayScore = &value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(memory.FieldAccessCount, field.TypeInt, value)
		_node.AccessCount = value
	}
	if value, ok := _c.mutation.LastAccessedAt(); ok {
		_spec.SetField(memory.FieldLastAccessedAt, field.TypeTime, value)
		_node.LastAccessedAt = &value
	}
	if value, ok := _c.mutation.TimeStart(); ok {
		_spec.SetField(memory.FieldTimeStart, field.TypeTime, value)
		_node.TimeStart = &value
	}
	if value, ok := _c.mutation.TimeEnd(); ok {
		_spec.SetField(memory.FieldTimeEnd, field.TypeTime, value)
		_node.TimeEnd = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(memory.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(memory.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.EmbeddingModel(); ok {
		_spec.SetField(memory.FieldEmbeddingModel, field.TypeString, value)
		_node.EmbeddingModel = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(memory.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(memory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AnimaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   memory.AnimaTable,
			Columns: []string{memory.AnimaColumn},
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
	if nodes := _c.mutation.EventLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memory.EventLinksTable,
			Columns: []string{memory.EventLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MemoryCreateBulk is the builder for creating many Memory entities in bulk.
type MemoryCreateBulk struct {
	config
	err      error
	builders []*MemoryCreate
}

// Save creates the Memory entities in the database.
func (_c *MemoryCreateBulk) Save(ctx context.Context) ([]*Memory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Memory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryMutation)
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
func (_c *MemoryCreateBulk) SaveX(ctx context.Context) []*Memory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
