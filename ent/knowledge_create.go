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
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
)

// KnowledgeCreate is the builder for creating a Knowledge entity.
type KnowledgeCreate struct {
	config
	mutation *KnowledgeMutation
	hooks    []Hook
}

// SetAnimaID sets the "anima_id" field.
func (_c *KnowledgeCreate) SetAnimaID(v string) *KnowledgeCreate {
	_c.mutation.SetAnimaID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *KnowledgeCreate) SetType(v knowledge.Type) *KnowledgeCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *KnowledgeCreate) SetTopic(v string) *KnowledgeCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableTopic(v *string) *KnowledgeCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *KnowledgeCreate) SetContent(v string) *KnowledgeCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *KnowledgeCreate) SetSummary(v string) *KnowledgeCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableSummary(v *string) *KnowledgeCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *KnowledgeCreate) SetConfidence(v float64) *KnowledgeCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableConfidence(v *float64) *KnowledgeCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *KnowledgeCreate) SetSourceType(v knowledge.SourceType) *KnowledgeCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableSourceType(v *knowledge.SourceType) *KnowledgeCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetSourceMemoryID sets the "source_memory_id" field.
func (_c *KnowledgeCreate) SetSourceMemoryID(v string) *KnowledgeCreate {
	_c.mutation.SetSourceMemoryID(v)
	return _c
}

// SetNillableSourceMemoryID sets the "source_memory_id" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableSourceMemoryID(v *string) *KnowledgeCreate {
	if v != nil {
		_c.SetSourceMemoryID(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *KnowledgeCreate) SetEmbedding(v []float32) *KnowledgeCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_c *KnowledgeCreate) SetEmbeddingModel(v string) *KnowledgeCreate {
	_c.mutation.SetEmbeddingModel(v)
	return _c
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableEmbeddingModel(v *string) *KnowledgeCreate {
	if v != nil {
		_c.SetEmbeddingModel(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *KnowledgeCreate) SetIsDeleted(v bool) *KnowledgeCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableIsDeleted(v *bool) *KnowledgeCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeCreate) SetCreatedAt(v time.Time) *KnowledgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *KnowledgeCreate) SetUpdatedAt(v time.Time) *KnowledgeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *KnowledgeCreate) SetNillableUpdatedAt(v *time.Time) *KnowledgeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeCreate) SetID(v string) *KnowledgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAnima sets the "anima" edge to the Anima entity.
func (_c *KnowledgeCreate) SetAnima(v *Anima) *KnowledgeCreate {
	return _c.SetAnimaID(v.ID)
}

// AddAuditLogIDs adds the "audit_logs" edge to the KnowledgeAuditLog entity by IDs.
func (_c *KnowledgeCreate) AddAuditLogIDs(ids ...string) *KnowledgeCreate {
	_c.mutation.AddAuditLogIDs(ids...)
	return _c
}

// AddAuditLogs adds the "audit_logs" edges to the KnowledgeAuditLog entity.
func (_c *KnowledgeCreate) AddAuditLogs(v ...*KnowledgeAuditLog) *KnowledgeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditLogIDs(ids...)
}

// Mutation returns the KnowledgeMutation object of the builder.
func (_c *KnowledgeCreate) Mutation() *KnowledgeMutation {
	return _c.mutation
}

// Save creates the Knowledge in the database.
func (_c *KnowledgeCreate) Save(ctx context.Context) (*Knowledge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeCreate) SaveX(ctx context.Context) *Knowledge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeCreate) defaults() {
	if _, ok := _c.mutation.SourceType(); !ok {
		v := knowledge.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := knowledge.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := knowledge.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeCreate) check() error {
	if _, ok := _c.mutation.AnimaID(); !ok {
		return &ValidationError{Name: "anima_id", err: errors.New(`ent: missing required field "Knowledge.anima_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Knowledge.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := knowledge.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Knowledge.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Knowledge.content"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := knowledge.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Knowledge.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Knowledge.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := knowledge.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Knowledge.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Knowledge.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Knowledge.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Knowledge.updated_at"`)}
	}
	if len(_c.mutation.AnimaIDs()) == 0 {
		return &ValidationError{Name: "anima", err: errors.New(`ent: missing required edge "Knowledge.anima"`)}
	}
	return nil
}

func (_c *KnowledgeCreate) sqlSave(ctx context.Context) (*Knowledge, error) {
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
			return nil, fmt.Errorf("unexpected Knowledge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeCreate) createSpec() (*Knowledge, *sqlgraph.CreateSpec) {
	var (
		_node = &Knowledge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledge.Table, sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(knowledge.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(knowledge.FieldTopic, field.TypeString, value)
		_node.Topic = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(knowledge.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(knowledge.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(knowledge.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(knowledge.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceMemoryID(); ok {
		_spec.SetField(knowledge.FieldSourceMemoryID, field.TypeString, value)
		_node.SourceMemoryID = &value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(knowledge.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.EmbeddingModel(); ok {
		_spec.SetField(knowledge.FieldEmbeddingModel, field.TypeString, value)
		_node.EmbeddingModel = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(knowledge.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledge.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AnimaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledge.AnimaTable,
			Columns: []string{knowledge.AnimaColumn},
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
	if nodes := _c.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledge.AuditLogsTable,
			Columns: []string{knowledge.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeauditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KnowledgeCreateBulk is the builder for creating many Knowledge entities in bulk.
type KnowledgeCreateBulk struct {
	config
	err      error
	builders []*KnowledgeCreate
}

// Save creates the Knowledge entities in the database.
func (_c *KnowledgeCreateBulk) Save(ctx context.Context) ([]*Knowledge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Knowledge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeMutation)
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
func (_c *KnowledgeCreateBulk) SaveX(ctx context.Context) []*Knowledge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
