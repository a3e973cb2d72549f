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
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// MemoryUpdate is the builder for updating Memory entities.
type MemoryUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryMutation
}

// Where appends a list predicates to the MemoryUpdate builder.
func (_u *MemoryUpdate) Where(ps ...predicate.Memory) *MemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryUpdate) SetContent(v string) *MemoryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableContent(v *string) *MemoryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MemoryUpdate) SetSummary(v string) *MemoryUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableSummary(v *string) *MemoryUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *MemoryUpdate) ClearSummary() *MemoryUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetImportance sets the "importance" field.
func (_u *MemoryUpdate) SetImportance(v float64) *MemoryUpdate {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableImportance(v *float64) *MemoryUpdate {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *MemoryUpdate) AddImportance(v float64) *MemoryUpdate {
	_u.mutation.AddImportance(v)
	return _u
}

// ClearImportance clears the value of the "importance" field.
func (_u *MemoryUpdate) ClearImportance() *MemoryUpdate {
	_u.mutation.ClearImportance()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MemoryUpdate) SetConfidence(v float64) *MemoryUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableConfidence(v *float64) *MemoryUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MemoryUpdate) AddConfidence(v float64) *MemoryUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *MemoryUpdate) ClearConfidence() *MemoryUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetState sets the "state" field.
func (_u *MemoryUpdate) SetState(v memory.State) *MemoryUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableState(v *memory.State) *MemoryUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRecencyScore sets the "recency_score" field.
func (_u *MemoryUpdate) SetRecencyScore(v float64) *MemoryUpdate {
	_u.mutation.ResetRecencyScore()
	_u.mutation.SetRecencyScore(v)
	return _u
}

// SetNillableRecencyScore sets the "recency_score" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableRecencyScore(v *float64) *MemoryUpdate {
	if v != nil {
		_u.SetRecencyScore(*v)
	}
	return _u
}

// AddRecencyScore adds value to the "recency_score" field.
func (_u *MemoryUpdate) AddRecencyScore(v float64) *MemoryUpdate {
	_u.mutation.AddRecencyScore(v)
	return _u
}

// ClearRecencyScore clears the value of the "recency_score" field.
func (_u *MemoryUpdate) ClearRecencyScore() *MemoryUpdate {
	_u.mutation.ClearRecencyScore()
	return _u
}

// SetDecayScore sets the "decay_score" field.
func (_u *MemoryUpdate) SetDecayScore(v float64) *MemoryUpdate {
	_u.mutation.ResetDecayScore()
	_u.mutation.SetDecayScore(v)
	return _u
}

// SetNillableDecayScore sets the "decay_score" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableDecayScore(v *float64) *MemoryUpdate {
	if v != nil {
		_u.SetDecayScore(*v)
	}
	return _u
}

// AddDecayScore adds value to the "decay_score" field.
func (_u *MemoryUpdate) AddDecayScore(v float64) *MemoryUpdate {
	_u.mutation.AddDecayScore(v)
	return _u
}

// ClearDecayScore clears the value of the "decay_score" field.
func (_u *MemoryUpdate) ClearDecayScore() *MemoryUpdate {
	_u.mutation.ClearDecayScore()
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryUpdate) SetAccessCount(v int) *MemoryUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableAccessCount(v *int) *MemoryUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryUpdate) AddAccessCount(v int) *MemoryUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *MemoryUpdate) SetLastAccessedAt(v time.Time) *MemoryUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableLastAccessedAt(v *time.Time) *MemoryUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *MemoryUpdate) ClearLastAccessedAt() *MemoryUpdate {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *MemoryUpdate) SetTimeStart(v time.Time) *MemoryUpdate {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableTimeStart(v *time.Time) *MemoryUpdate {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// ClearTimeStart clears the value of the "time_start" field.
func (_u *MemoryUpdate) ClearTimeStart() *MemoryUpdate {
	_u.mutation.ClearTimeStart()
	return _u
}

// SetTimeEnd sets the "time_end" field.
func (_u *MemoryUpdate) SetTimeEnd(v time.Time) *MemoryUpdate {
	_u.mutation.SetTimeEnd(v)
	return _u
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableTimeEnd(v *time.Time) *MemoryUpdate {
	if v != nil {
		_u.SetTimeEnd(*v)
	}
	return _u
}

// ClearTimeEnd clears the value of the "time_end" field.
func (_u *MemoryUpdate) ClearTimeEnd() *MemoryUpdate {
	_u.mutation.ClearTimeEnd()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MemoryUpdate) SetMetadata(v map[string]interface{}) *MemoryUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MemoryUpdate) ClearMetadata() *MemoryUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryUpdate) SetEmbedding(v []float32) *MemoryUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryUpdate) AppendEmbedding(v []float32) *MemoryUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryUpdate) ClearEmbedding() *MemoryUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *MemoryUpdate) SetEmbeddingModel(v string) *MemoryUpdate {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableEmbeddingModel(v *string) *MemoryUpdate {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// ClearEmbeddingModel clears the value of the "embedding_model" field.
func (_u *MemoryUpdate) ClearEmbeddingModel() *MemoryUpdate {
	_u.mutation.ClearEmbeddingModel()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *MemoryUpdate) SetIsDeleted(v bool) *MemoryUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableIsDeleted(v *bool) *MemoryUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryUpdate) SetUpdatedAt(v time.Time) *MemoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventLinkIDs adds the "event_links" edge to the MemoryEvent entity by IDs.
func (_u *MemoryUpdate) AddEventLinkIDs(ids ...string) *MemoryUpdate {
	_u.mutation.AddEventLinkIDs(ids...)
	return _u
}

// AddEventLinks adds the "event_links" edges to the MemoryEvent entity.
func (_u *MemoryUpdate) AddEventLinks(v ...*MemoryEvent) *MemoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLinkIDs(ids...)
}

// Mutation returns the MemoryMutation object of the builder.
func (_u *MemoryUpdate) Mutation() *MemoryMutation {
	return _u.mutation
}

// ClearEventLinks clears all "event_links" edges to the MemoryEvent entity.
func (_u *MemoryUpdate) ClearEventLinks() *MemoryUpdate {
	_u.mutation.ClearEventLinks()
	return _u
}

// RemoveEventLinkIDs removes the "event_links" edge to MemoryEvent entities by IDs.
func (_u *MemoryUpdate) RemoveEventLinkIDs(ids ...string) *MemoryUpdate {
	_u.mutation.RemoveEventLinkIDs(ids...)
	return _u
}

// RemoveEventLinks removes "event_links" edges to MemoryEvent entities.
func (_u *MemoryUpdate) RemoveEventLinks(v ...*MemoryEvent) *MemoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryUpdate) check() error {
	if v, ok := _u.mutation.Importance(); ok {
		if err := memory.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "Memory.importance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := memory.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Memory.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := memory.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Memory.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecencyScore(); ok {
		if err := memory.RecencyScoreValidator(v); err != nil {
			return &ValidationError{Name: "recency_score", err: fmt.Errorf(`ent: validator failed for field "Memory.recency_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DecayScore(); ok {
		if err := memory.DecayScoreValidator(v); err != nil {
			return &ValidationError{Name: "decay_score", err: fmt.Errorf(`ent: validator failed for field "Memory.decay_score": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Memory.anima"`)
	}
	return nil
}

func (_u *MemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memory.Table, memory.Columns, sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memory.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(memory.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(memory.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(memory.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(memory.FieldImportance, field.TypeFloat64, value)
	}
	if _u.mutation.ImportanceCleared() {
		_spec.ClearField(memory.FieldImportance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(memory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(memory.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(memory.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(memory.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecencyScore(); ok {
		_spec.SetField(memory.FieldRecencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecencyScore(); ok {
		_spec.AddField(memory.FieldRecencyScore, field.TypeFloat64, value)
	}
	if _u.mutation.RecencyScoreCleared() {
		_spec.ClearField(memory.FieldRecencyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DecayScore(); ok {
		_spec.SetField(memory.FieldDecayScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDecayScore(); ok {
		_spec.AddField(memory.FieldDecayScore, field.TypeFloat64, value)
	}
	if _u.mutation.DecayScoreCleared() {
		_spec.ClearField(memory.FieldDecayScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(memory.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(memory.FieldLastAccessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(memory.FieldTimeStart, field.TypeTime, value)
	}
	if _u.mutation.TimeStartCleared() {
		_spec.ClearField(memory.FieldTimeStart, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeEnd(); ok {
		_spec.SetField(memory.FieldTimeEnd, field.TypeTime, value)
	}
	if _u.mutation.TimeEndCleared() {
		_spec.ClearField(memory.FieldTimeEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(memory.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(memory.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memory.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memory.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memory.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(memory.FieldEmbeddingModel, field.TypeString, value)
	}
	if _u.mutation.EmbeddingModelCleared() {
		_spec.ClearField(memory.FieldEmbeddingModel, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(memory.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLinksIDs(); len(nodes) > 0 && !_u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryUpdateOne is the builder for updating a single Memory entity.
type MemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryMutation
}

// SetContent sets the "content" field.
func (_u *MemoryUpdateOne) SetContent(v string) *MemoryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableContent(v *string) *MemoryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MemoryUpdateOne) SetSummary(v string) *MemoryUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableSummary(v *string) *MemoryUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *MemoryUpdateOne) ClearSummary() *MemoryUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetImportance sets the "importance" field.
func (_u *MemoryUpdateOne) SetImportance(v float64) *MemoryUpdateOne {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableImportance(v *float64) *MemoryUpdateOne {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *MemoryUpdateOne) AddImportance(v float64) *MemoryUpdateOne {
	_u.mutation.AddImportance(v)
	return _u
}

// ClearImportance clears the value of the "importance" field.
func (_u *MemoryUpdateOne) ClearImportance() *MemoryUpdateOne {
	_u.mutation.ClearImportance()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MemoryUpdateOne) SetConfidence(v float64) *MemoryUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableConfidence(v *float64) *MemoryUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MemoryUpdateOne) AddConfidence(v float64) *MemoryUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *MemoryUpdateOne) ClearConfidence() *MemoryUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetState sets the "state" field.
func (_u *MemoryUpdateOne) SetState(v memory.State) *MemoryUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableState(v *memory.State) *MemoryUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRecencyScore sets the "recency_score" field.
func (_u *MemoryUpdateOne) SetRecencyScore(v float64) *MemoryUpdateOne {
	_u.mutation.ResetRecencyScore()
	_u.mutation.SetRecencyScore(v)
	return _u
}

// SetNillableRecencyScore sets the "recency_score" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableRecencyScore(v *float64) *MemoryUpdateOne {
	if v != nil {
		_u.SetRecencyScore(*v)
	}
	return _u
}

// AddRecencyScore adds value to the "recency_score" field.
func (_u *MemoryUpdateOne) AddRecencyScore(v float64) *MemoryUpdateOne {
	_u.mutation.AddRecencyScore(v)
	return _u
}

// ClearRecencyScore clears the value of the "recency_score" field.
func (_u *MemoryUpdateOne) ClearRecencyScore() *MemoryUpdateOne {
	_u.mutation.ClearRecencyScore()
	return _u
}

// SetDecayScore sets the "decay_score" field.
func (_u *MemoryUpdateOne) SetDecayScore(v float64) *MemoryUpdateOne {
	_u.mutation.ResetDecayScore()
	_u.mutation.SetDecayScore(v)
	return _u
}

// SetNillableDecayScore sets the "decay_score" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableDecayScore(v *float64) *MemoryUpdateOne {
	if v != nil {
		_u.SetDecayScore(*v)
	}
	return _u
}

// AddDecayScore adds value to the "decay_score" field.
func (_u *MemoryUpdateOne) AddDecayScore(v float64) *MemoryUpdateOne {
	_u.mutation.AddDecayScore(v)
	return _u
}

// ClearDecayScore clears the value of the "decay_score" field.
func (_u *MemoryUpdateOne) ClearDecayScore() *MemoryUpdateOne {
	_u.mutation.ClearDecayScore()
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryUpdateOne) SetAccessCount(v int) *MemoryUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableAccessCount(v *int) *MemoryUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryUpdateOne) AddAccessCount(v int) *MemoryUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *MemoryUpdateOne) SetLastAccessedAt(v time.Time) *MemoryUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableLastAccessedAt(v *time.Time) *MemoryUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *MemoryUpdateOne) ClearLastAccessedAt() *MemoryUpdateOne {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *MemoryUpdateOne) SetTimeStart(v time.Time) *MemoryUpdateOne {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableTimeStart(v *time.Time) *MemoryUpdateOne {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// ClearTimeStart clears the value of the "time_start" field.
func (_u *MemoryUpdateOne) ClearTimeStart() *MemoryUpdateOne {
	_u.mutation.ClearTimeStart()
	return _u
}

// SetTimeEnd sets the "time_end" field.
func (_u *MemoryUpdateOne) SetTimeEnd(v time.Time) *MemoryUpdateOne {
	_u.mutation.SetTimeEnd(v)
	return _u
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableTimeEnd(v *time.Time) *MemoryUpdateOne {
	if v != nil {
		_u.SetTimeEnd(*v)
	}
	return _u
}

// ClearTimeEnd clears the value of the "time_end" field.
func (_u *MemoryUpdateOne) ClearTimeEnd() *MemoryUpdateOne {
	_u.mutation.ClearTimeEnd()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MemoryUpdateOne) SetMetadata(v map[string]interface{}) *MemoryUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MemoryUpdateOne) ClearMetadata() *MemoryUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryUpdateOne) SetEmbedding(v []float32) *MemoryUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryUpdateOne) AppendEmbedding(v []float32) *MemoryUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryUpdateOne) ClearEmbedding() *MemoryUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *MemoryUpdateOne) SetEmbeddingModel(v string) *MemoryUpdateOne {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableEmbeddingModel(v *string) *MemoryUpdateOne {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// ClearEmbeddingModel clears the value of the "embedding_model" field.
func (_u *MemoryUpdateOne) ClearEmbeddingModel() *MemoryUpdateOne {
	_u.mutation.ClearEmbeddingModel()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *MemoryUpdateOne) SetIsDeleted(v bool) *MemoryUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableIsDeleted(v *bool) *MemoryUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryUpdateOne) SetUpdatedAt(v time.Time) *MemoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventLinkIDs adds the "event_links" edge to the MemoryEvent entity by IDs.
func (_u *MemoryUpdateOne) AddEventLinkIDs(ids ...string) *MemoryUpdateOne {
	_u.mutation.AddEventLinkIDs(ids...)
	return _u
}

// AddEventLinks adds the "event_links" edges to the MemoryEvent entity.
func (_u *MemoryUpdateOne) AddEventLinks(v ...*MemoryEvent) *MemoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLinkIDs(ids...)
}

// Mutation returns the MemoryMutation object of the builder.
func (_u *MemoryUpdateOne) Mutation() *MemoryMutation {
	return _u.mutation
}

// ClearEventLinks clears all "event_links" edges to the MemoryEvent entity.
func (_u *MemoryUpdateOne) ClearEventLinks() *MemoryUpdateOne {
	_u.mutation.ClearEventLinks()
	return _u
}

// RemoveEventLinkIDs removes the "event_links" edge to MemoryEvent entities by IDs.
func (_u *MemoryUpdateOne) RemoveEventLinkIDs(ids ...string) *MemoryUpdateOne {
	_u.mutation.RemoveEventLinkIDs(ids...)
	return _u
}

// RemoveEventLinks removes "event_links" edges to MemoryEvent entities.
func (_u *MemoryUpdateOne) RemoveEventLinks(v ...*MemoryEvent) *MemoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLinkIDs(ids...)
}

// Where appends a list predicates to the MemoryUpdate builder.
func (_u *MemoryUpdateOne) Where(ps ...predicate.Memory) *MemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryUpdateOne) Select(field string, fields ...string) *MemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Memory entity.
func (_u *MemoryUpdateOne) Save(ctx context.Context) (*Memory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryUpdateOne) SaveX(ctx context.Context) *Memory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryUpdateOne) check() error {
	if v, ok := _u.mutation.Importance(); ok {
		if err := memory.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "Memory.importance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := memory.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Memory.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := memory.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Memory.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecencyScore(); ok {
		if err := memory.RecencyScoreValidator(v); err != nil {
			return &ValidationError{Name: "recency_score", err: fmt.Errorf(`ent: validator failed for field "Memory.recency_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DecayScore(); ok {
		if err := memory.DecayScoreValidator(v); err != nil {
			return &ValidationError{Name: "decay_score", err: fmt.Errorf(`ent: validator failed for field "Memory.decay_score": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Memory.anima"`)
	}
	return nil
}

func (_u *MemoryUpdateOne) sqlSave(ctx context.Context) (_node *Memory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memory.Table, memory.Columns, sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Memory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memory.FieldID)
		for _, f := range fields {
			if !memory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memory.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memory.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(memory.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(memory.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(memory.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(memory.FieldImportance, field.TypeFloat64, value)
	}
	if _u.mutation.ImportanceCleared() {
		_spec.ClearField(memory.FieldImportance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(memory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(memory.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(memory.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(memory.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecencyScore(); ok {
		_spec.SetField(memory.FieldRecencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecencyScore(); ok {
		_spec.AddField(memory.FieldRecencyScore, field.TypeFloat64, value)
	}
	if _u.mutation.RecencyScoreCleared() {
		_spec.ClearField(memory.FieldRecencyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DecayScore(); ok {
		_spec.SetField(memory.FieldDecayScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDecayScore(); ok {
		_spec.AddField(memory.FieldDecayScore, field.TypeFloat64, value)
	}
	if _u.mutation.DecayScoreCleared() {
		_spec.ClearField(memory.FieldDecayScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(memory.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(memory.FieldLastAccessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(memory.FieldTimeStart, field.TypeTime, value)
	}
	if _u.mutation.TimeStartCleared() {
		_spec.ClearField(memory.FieldTimeStart, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeEnd(); ok {
		_spec.SetField(memory.FieldTimeEnd, field.TypeTime, value)
	}
	if _u.mutation.TimeEndCleared() {
		_spec.ClearField(memory.FieldTimeEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(memory.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(memory.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memory.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memory.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memory.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(memory.FieldEmbeddingModel, field.TypeString, value)
	}
	if _u.mutation.EmbeddingModelCleared() {
		_spec.ClearField(memory.FieldEmbeddingModel, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(memory.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLinksIDs(); len(nodes) > 0 && !_u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Memory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
