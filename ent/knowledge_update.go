// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// KnowledgeUpdate is the builder for updating Knowledge entities.
type KnowledgeUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeMutation
}

// Where appends a list predicates to the KnowledgeUpdate builder.
func (_u *KnowledgeUpdate) Where(ps ...predicate.Knowledge) *KnowledgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *KnowledgeUpdate) SetType(v knowledge.Type) *KnowledgeUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableType(v *knowledge.Type) *KnowledgeUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *KnowledgeUpdate) SetTopic(v string) *KnowledgeUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableTopic(v *string) *KnowledgeUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *KnowledgeUpdate) ClearTopic() *KnowledgeUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeUpdate) SetContent(v string) *KnowledgeUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableContent(v *string) *KnowledgeUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *KnowledgeUpdate) SetSummary(v string) *KnowledgeUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableSummary(v *string) *KnowledgeUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *KnowledgeUpdate) ClearSummary() *KnowledgeUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *KnowledgeUpdate) SetConfidence(v float64) *KnowledgeUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableConfidence(v *float64) *KnowledgeUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *KnowledgeUpdate) AddConfidence(v float64) *KnowledgeUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *KnowledgeUpdate) ClearConfidence() *KnowledgeUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *KnowledgeUpdate) SetSourceType(v knowledge.SourceType) *KnowledgeUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableSourceType(v *knowledge.SourceType) *KnowledgeUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceMemoryID sets the "source_memory_id" field.
func (_u *KnowledgeUpdate) SetSourceMemoryID(v string) *KnowledgeUpdate {
	_u.mutation.SetSourceMemoryID(v)
	return _u
}

// SetNillableSourceMemoryID sets the "source_memory_id" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableSourceMemoryID(v *string) *KnowledgeUpdate {
	if v != nil {
		_u.SetSourceMemoryID(*v)
	}
	return _u
}

// ClearSourceMemoryID clears the value of the "source_memory_id" field.
func (_u *KnowledgeUpdate) ClearSourceMemoryID() *KnowledgeUpdate {
	_u.mutation.ClearSourceMemoryID()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *KnowledgeUpdate) SetEmbedding(v []float32) *KnowledgeUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *KnowledgeUpdate) AppendEmbedding(v []float32) *KnowledgeUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *KnowledgeUpdate) ClearEmbedding() *KnowledgeUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *KnowledgeUpdate) SetEmbeddingModel(v string) *KnowledgeUpdate {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableEmbeddingModel(v *string) *KnowledgeUpdate {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// ClearEmbeddingModel clears the value of the "embedding_model" field.
func (_u *KnowledgeUpdate) ClearEmbeddingModel() *KnowledgeUpdate {
	_u.mutation.ClearEmbeddingModel()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *KnowledgeUpdate) SetIsDeleted(v bool) *KnowledgeUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *KnowledgeUpdate) SetNillableIsDeleted(v *bool) *KnowledgeUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeUpdate) SetUpdatedAt(v time.Time) *KnowledgeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAuditLogIDs adds the "audit_logs" edge to the KnowledgeAuditLog entity by IDs.
func (_u *KnowledgeUpdate) AddAuditLogIDs(ids ...string) *KnowledgeUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the KnowledgeAuditLog entity.
func (_u *KnowledgeUpdate) AddAuditLogs(v ...*KnowledgeAuditLog) *KnowledgeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the KnowledgeMutation object of the builder.
func (_u *KnowledgeUpdate) Mutation() *KnowledgeMutation {
	return _u.mutation
}

// ClearAuditLogs clears all "audit_logs" edges to the KnowledgeAuditLog entity.
func (_u *KnowledgeUpdate) ClearAuditLogs() *KnowledgeUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to KnowledgeAuditLog entities by IDs.
func (_u *KnowledgeUpdate) RemoveAuditLogIDs(ids ...string) *KnowledgeUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to KnowledgeAuditLog entities.
func (_u *KnowledgeUpdate) RemoveAuditLogs(v ...*KnowledgeAuditLog) *KnowledgeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := knowledge.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Knowledge.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := knowledge.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Knowledge.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := knowledge.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Knowledge.source_type": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Knowledge.anima"`)
	}
	return nil
}

func (_u *KnowledgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledge.Table, knowledge.Columns, sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(knowledge.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(knowledge.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(knowledge.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledge.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(knowledge.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(knowledge.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(knowledge.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(knowledge.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(knowledge.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(knowledge.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceMemoryID(); ok {
		_spec.SetField(knowledge.FieldSourceMemoryID, field.TypeString, value)
	}
	if _u.mutation.SourceMemoryIDCleared() {
		_spec.ClearField(knowledge.FieldSourceMemoryID, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(knowledge.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledge.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(knowledge.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(knowledge.FieldEmbeddingModel, field.TypeString, value)
	}
	if _u.mutation.EmbeddingModelCleared() {
		_spec.ClearField(knowledge.FieldEmbeddingModel, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(knowledge.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledge.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeUpdateOne is the builder for updating a single Knowledge entity.
type KnowledgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeMutation
}

// SetType sets the "type" field.
func (_u *KnowledgeUpdateOne) SetType(v knowledge.Type) *KnowledgeUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableType(v *knowledge.Type) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *KnowledgeUpdateOne) SetTopic(v string) *KnowledgeUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableTopic(v *string) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *KnowledgeUpdateOne) ClearTopic() *KnowledgeUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeUpdateOne) SetContent(v string) *KnowledgeUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableContent(v *string) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *KnowledgeUpdateOne) SetSummary(v string) *KnowledgeUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableSummary(v *string) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *KnowledgeUpdateOne) ClearSummary() *KnowledgeUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *KnowledgeUpdateOne) SetConfidence(v float64) *KnowledgeUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableConfidence(v *float64) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *KnowledgeUpdateOne) AddConfidence(v float64) *KnowledgeUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *KnowledgeUpdateOne) ClearConfidence() *KnowledgeUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *KnowledgeUpdateOne) SetSourceType(v knowledge.SourceType) *KnowledgeUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableSourceType(v *knowledge.SourceType) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceMemoryID sets the "source_memory_id" field.
func (_u *KnowledgeUpdateOne) SetSourceMemoryID(v string) *KnowledgeUpdateOne {
	_u.mutation.SetSourceMemoryID(v)
	return _u
}

// SetNillableSourceMemoryID sets the "source_memory_id" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableSourceMemoryID(v *string) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetSourceMemoryID(*v)
	}
	return _u
}

// ClearSourceMemoryID clears the value of the "source_memory_id" field.
func (_u *KnowledgeUpdateOne) ClearSourceMemoryID() *KnowledgeUpdateOne {
	_u.mutation.ClearSourceMemoryID()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *KnowledgeUpdateOne) SetEmbedding(v []float32) *KnowledgeUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *KnowledgeUpdateOne) AppendEmbedding(v []float32) *KnowledgeUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *KnowledgeUpdateOne) ClearEmbedding() *KnowledgeUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *KnowledgeUpdateOne) SetEmbeddingModel(v string) *KnowledgeUpdateOne {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableEmbeddingModel(v *string) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// ClearEmbeddingModel clears the value of the "embedding_model" field.
func (_u *KnowledgeUpdateOne) ClearEmbeddingModel() *KnowledgeUpdateOne {
	_u.mutation.ClearEmbeddingModel()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *KnowledgeUpdateOne) SetIsDeleted(v bool) *KnowledgeUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *KnowledgeUpdateOne) SetNillableIsDeleted(v *bool) *KnowledgeUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeUpdateOne) SetUpdatedAt(v time.Time) *KnowledgeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAuditLogIDs adds the "audit_logs" edge to the KnowledgeAuditLog entity by IDs.
func (_u *KnowledgeUpdateOne) AddAuditLogIDs(ids ...string) *KnowledgeUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the KnowledgeAuditLog entity.
func (_u *KnowledgeUpdateOne) AddAuditLogs(v ...*KnowledgeAuditLog) *KnowledgeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the KnowledgeMutation object of the builder.
func (_u *KnowledgeUpdateOne) Mutation() *KnowledgeMutation {
	return _u.mutation
}

// ClearAuditLogs clears all "audit_logs" edges to the KnowledgeAuditLog entity.
func (_u *KnowledgeUpdateOne) ClearAuditLogs() *KnowledgeUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to KnowledgeAuditLog entities by IDs.
func (_u *KnowledgeUpdateOne) RemoveAuditLogIDs(ids ...string) *KnowledgeUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to KnowledgeAuditLog entities.
func (_u *KnowledgeUpdateOne) RemoveAuditLogs(v ...*KnowledgeAuditLog) *KnowledgeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the KnowledgeUpdate builder.
func (_u *KnowledgeUpdateOne) Where(ps ...predicate.Knowledge) *KnowledgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeUpdateOne) Select(field string, fields ...string) *KnowledgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Knowledge entity.
func (_u *KnowledgeUpdateOne) Save(ctx context.Context) (*Knowledge, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeUpdateOne) SaveX(ctx context.Context) *Knowledge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := knowledge.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Knowledge.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := knowledge.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Knowledge.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := knowledge.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Knowledge.source_type": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Knowledge.anima"`)
	}
	return nil
}

func (_u *KnowledgeUpdateOne) sqlSave(ctx context.Context) (_node *Knowledge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledge.Table, knowledge.Columns, sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Knowledge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledge.FieldID)
		for _, f := range fields {
			if !knowledge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledge.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(knowledge.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(knowledge.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(knowledge.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledge.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(knowledge.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(knowledge.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(knowledge.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(knowledge.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(knowledge.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(knowledge.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceMemoryID(); ok {
		_spec.SetField(knowledge.FieldSourceMemoryID, field.TypeString, value)
	}
	if _u.mutation.SourceMemoryIDCleared() {
		_spec.ClearField(knowledge.FieldSourceMemoryID, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(knowledge.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledge.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(knowledge.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(knowledge.FieldEmbeddingModel, field.TypeString, value)
	}
	if _u.mutation.EmbeddingModelCleared() {
		_spec.ClearField(knowledge.FieldEmbeddingModel, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(knowledge.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledge.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Knowledge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
