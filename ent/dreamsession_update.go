// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// DreamSessionUpdate is the builder for updating DreamSession entities.
type DreamSessionUpdate struct {
	config
	hooks    []Hook
	mutation *DreamSessionMutation
}

// Where appends a list predicates to the DreamSessionUpdate builder.
func (_u *DreamSessionUpdate) Where(ps ...predicate.DreamSession) *DreamSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DreamSessionUpdate) SetStartedAt(v time.Time) *DreamSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableStartedAt(v *time.Time) *DreamSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DreamSessionUpdate) SetCompletedAt(v time.Time) *DreamSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableCompletedAt(v *time.Time) *DreamSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DreamSessionUpdate) ClearCompletedAt() *DreamSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DreamSessionUpdate) SetStatus(v dreamsession.Status) *DreamSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableStatus(v *dreamsession.Status) *DreamSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DreamSessionUpdate) SetErrorMessage(v string) *DreamSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableErrorMessage(v *string) *DreamSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DreamSessionUpdate) ClearErrorMessage() *DreamSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMemoriesReviewed sets the "memories_reviewed" field.
func (_u *DreamSessionUpdate) SetMemoriesReviewed(v int) *DreamSessionUpdate {
	_u.mutation.ResetMemoriesReviewed()
	_u.mutation.SetMemoriesReviewed(v)
	return _u
}

// SetNillableMemoriesReviewed sets the "memories_reviewed" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableMemoriesReviewed(v *int) *DreamSessionUpdate {
	if v != nil {
		_u.SetMemoriesReviewed(*v)
	}
	return _u
}

// AddMemoriesReviewed adds value to the "memories_reviewed" field.
func (_u *DreamSessionUpdate) AddMemoriesReviewed(v int) *DreamSessionUpdate {
	_u.mutation.AddMemoriesReviewed(v)
	return _u
}

// SetMemoriesModified sets the "memories_modified" field.
func (_u *DreamSessionUpdate) SetMemoriesModified(v int) *DreamSessionUpdate {
	_u.mutation.ResetMemoriesModified()
	_u.mutation.SetMemoriesModified(v)
	return _u
}

// SetNillableMemoriesModified sets the "memories_modified" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableMemoriesModified(v *int) *DreamSessionUpdate {
	if v != nil {
		_u.SetMemoriesModified(*v)
	}
	return _u
}

// AddMemoriesModified adds value to the "memories_modified" field.
func (_u *DreamSessionUpdate) AddMemoriesModified(v int) *DreamSessionUpdate {
	_u.mutation.AddMemoriesModified(v)
	return _u
}

// SetMemoriesCreated sets the "memories_created" field.
func (_u *DreamSessionUpdate) SetMemoriesCreated(v int) *DreamSessionUpdate {
	_u.mutation.ResetMemoriesCreated()
	_u.mutation.SetMemoriesCreated(v)
	return _u
}

// SetNillableMemoriesCreated sets the "memories_created" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableMemoriesCreated(v *int) *DreamSessionUpdate {
	if v != nil {
		_u.SetMemoriesCreated(*v)
	}
	return _u
}

// AddMemoriesCreated adds value to the "memories_created" field.
func (_u *DreamSessionUpdate) AddMemoriesCreated(v int) *DreamSessionUpdate {
	_u.mutation.AddMemoriesCreated(v)
	return _u
}

// SetMemoriesArchived sets the "memories_archived" field.
func (_u *DreamSessionUpdate) SetMemoriesArchived(v int) *DreamSessionUpdate {
	_u.mutation.ResetMemoriesArchived()
	_u.mutation.SetMemoriesArchived(v)
	return _u
}

// SetNillableMemoriesArchived sets the "memories_archived" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableMemoriesArchived(v *int) *DreamSessionUpdate {
	if v != nil {
		_u.SetMemoriesArchived(*v)
	}
	return _u
}

// AddMemoriesArchived adds value to the "memories_archived" field.
func (_u *DreamSessionUpdate) AddMemoriesArchived(v int) *DreamSessionUpdate {
	_u.mutation.AddMemoriesArchived(v)
	return _u
}

// SetMemoriesDeleted sets the "memories_deleted" field.
func (_u *DreamSessionUpdate) SetMemoriesDeleted(v int) *DreamSessionUpdate {
	_u.mutation.ResetMemoriesDeleted()
	_u.mutation.SetMemoriesDeleted(v)
	return _u
}

// SetNillableMemoriesDeleted sets the "memories_deleted" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableMemoriesDeleted(v *int) *DreamSessionUpdate {
	if v != nil {
		_u.SetMemoriesDeleted(*v)
	}
	return _u
}

// AddMemoriesDeleted adds value to the "memories_deleted" field.
func (_u *DreamSessionUpdate) AddMemoriesDeleted(v int) *DreamSessionUpdate {
	_u.mutation.AddMemoriesDeleted(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DreamSessionUpdate) SetSummary(v string) *DreamSessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DreamSessionUpdate) SetNillableSummary(v *string) *DreamSessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DreamSessionUpdate) ClearSummary() *DreamSessionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *DreamSessionUpdate) SetConfigSnapshot(v map[string]interface{}) *DreamSessionUpdate {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *DreamSessionUpdate) ClearConfigSnapshot() *DreamSessionUpdate {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DreamSessionUpdate) SetUpdatedAt(v time.Time) *DreamSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddActionIDs adds the "actions" edge to the DreamAction entity by IDs.
func (_u *DreamSessionUpdate) AddActionIDs(ids ...string) *DreamSessionUpdate {
	_u.mutation.AddActionIDs(ids...)
	return _u
}

// AddActions adds the "actions" edges to the DreamAction entity.
func (_u *DreamSessionUpdate) AddActions(v ...*DreamAction) *DreamSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionIDs(ids...)
}

// Mutation returns the DreamSessionMutation object of the builder.
func (_u *DreamSessionUpdate) Mutation() *DreamSessionMutation {
	return _u.mutation
}

// ClearActions clears all "actions" edges to the DreamAction entity.
func (_u *DreamSessionUpdate) ClearActions() *DreamSessionUpdate {
	_u.mutation.ClearActions()
	return _u
}

// RemoveActionIDs removes the "actions" edge to DreamAction entities by IDs.
func (_u *DreamSessionUpdate) RemoveActionIDs(ids ...string) *DreamSessionUpdate {
	_u.mutation.RemoveActionIDs(ids...)
	return _u
}

// RemoveActions removes "actions" edges to DreamAction entities.
func (_u *DreamSessionUpdate) RemoveActions(v ...*DreamAction) *DreamSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DreamSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DreamSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DreamSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DreamSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DreamSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dreamsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DreamSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dreamsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DreamSession.status": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DreamSession.anima"`)
	}
	return nil
}

func (_u *DreamSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dreamsession.Table, dreamsession.Columns, sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(dreamsession.FieldTriggeredBy, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(dreamsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(dreamsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(dreamsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dreamsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dreamsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(dreamsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MemoriesReviewed(); ok {
		_spec.SetField(dreamsession.FieldMemoriesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesReviewed(); ok {
		_spec.AddField(dreamsession.FieldMemoriesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoriesModified(); ok {
		_spec.SetField(dreamsession.FieldMemoriesModified, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesModified(); ok {
		_spec.AddField(dreamsession.FieldMemoriesModified, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoriesCreated(); ok {
		_spec.SetField(dreamsession.FieldMemoriesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesCreated(); ok {
		_spec.AddField(dreamsession.FieldMemoriesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoriesArchived(); ok {
		_spec.SetField(dreamsession.FieldMemoriesArchived, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesArchived(); ok {
		_spec.AddField(dreamsession.FieldMemoriesArchived, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoriesDeleted(); ok {
		_spec.SetField(dreamsession.FieldMemoriesDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesDeleted(); ok {
		_spec.AddField(dreamsession.FieldMemoriesDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(dreamsession.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(dreamsession.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(dreamsession.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(dreamsession.FieldConfigSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dreamsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionsIDs(); len(nodes) > 0 && !_u.mutation.ActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dreamsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DreamSessionUpdateOne is the builder for updating a single DreamSession entity.
type DreamSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DreamSessionMutation
}

// SetStartedAt sets the "started_at" field.
func (_u *DreamSessionUpdateOne) SetStartedAt(v time.Time) *DreamSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableStartedAt(v *time.Time) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DreamSessionUpdateOne) SetCompletedAt(v time.Time) *DreamSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DreamSessionUpdateOne) ClearCompletedAt() *DreamSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DreamSessionUpdateOne) SetStatus(v dreamsession.Status) *DreamSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableStatus(v *dreamsession.Status) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DreamSessionUpdateOne) SetErrorMessage(v string) *DreamSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableErrorMessage(v *string) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DreamSessionUpdateOne) ClearErrorMessage() *DreamSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMemoriesReviewed sets the "memories_reviewed" field.
func (_u *DreamSessionUpdateOne) SetMemoriesReviewed(v int) *DreamSessionUpdateOne {
	_u.mutation.ResetMemoriesReviewed()
	_u.mutation.SetMemoriesReviewed(v)
	return _u
}

// SetNillableMemoriesReviewed sets the "memories_reviewed" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableMemoriesReviewed(v *int) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetMemoriesReviewed(*v)
	}
	return _u
}

// AddMemoriesReviewed adds value to the "memories_reviewed" field.
func (_u *DreamSessionUpdateOne) AddMemoriesReviewed(v int) *DreamSessionUpdateOne {
	_u.mutation.AddMemoriesReviewed(v)
	return _u
}

// SetMemoriesModified sets the "memories_modified" field.
func (_u *DreamSessionUpdateOne) SetMemoriesModified(v int) *DreamSessionUpdateOne {
	_u.mutation.ResetMemoriesModified()
	_u.mutation.SetMemoriesModified(v)
	return _u
}

// SetNillableMemoriesModified sets the "memories_modified" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableMemoriesModified(v *int) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetMemoriesModified(*v)
	}
	return _u
}

// AddMemoriesModified adds value to the "memories_modified" field.
func (_u *DreamSessionUpdateOne) AddMemoriesModified(v int) *DreamSessionUpdateOne {
	_u.mutation.AddMemoriesModified(v)
	return _u
}

// SetMemoriesCreated sets the "memories_created" field.
func (_u *DreamSessionUpdateOne) SetMemoriesCreated(v int) *DreamSessionUpdateOne {
	_u.mutation.ResetMemoriesCreated()
	_u.mutation.SetMemoriesCreated(v)
	return _u
}

// SetNillableMemoriesCreated sets the "memories_created" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableMemoriesCreated(v *int) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetMemoriesCreated(*v)
	}
	return _u
}

// AddMemoriesCreated adds value to the "memories_created" field.
func (_u *DreamSessionUpdateOne) AddMemoriesCreated(v int) *DreamSessionUpdateOne {
	_u.mutation.AddMemoriesCreated(v)
	return _u
}

// SetMemoriesArchived sets the "memories_archived" field.
func (_u *DreamSessionUpdateOne) SetMemoriesArchived(v int) *DreamSessionUpdateOne {
	_u.mutation.ResetMemoriesArchived()
	_u.mutation.SetMemoriesArchived(v)
	return _u
}

// SetNillableMemoriesArchived sets the "memories_archived" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableMemoriesArchived(v *int) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetMemoriesArchived(*v)
	}
	return _u
}

// AddMemoriesArchived adds value to the "memories_archived" field.
func (_u *DreamSessionUpdateOne) AddMemoriesArchived(v int) *DreamSessionUpdateOne {
	_u.mutation.AddMemoriesArchived(v)
	return _u
}

// SetMemoriesDeleted sets the "memories_deleted" field.
func (_u *DreamSessionUpdateOne) SetMemoriesDeleted(v int) *DreamSessionUpdateOne {
	_u.mutation.ResetMemoriesDeleted()
	_u.mutation.SetMemoriesDeleted(v)
	return _u
}

// SetNillableMemoriesDeleted sets the "memories_deleted" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableMemoriesDeleted(v *int) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetMemoriesDeleted(*v)
	}
	return _u
}

// AddMemoriesDeleted adds value to the "memories_deleted" field.
func (_u *DreamSessionUpdateOne) AddMemoriesDeleted(v int) *DreamSessionUpdateOne {
	_u.mutation.AddMemoriesDeleted(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DreamSessionUpdateOne) SetSummary(v string) *DreamSessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DreamSessionUpdateOne) SetNillableSummary(v *string) *DreamSessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DreamSessionUpdateOne) ClearSummary() *DreamSessionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *DreamSessionUpdateOne) SetConfigSnapshot(v map[string]interface{}) *DreamSessionUpdateOne {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *DreamSessionUpdateOne) ClearConfigSnapshot() *DreamSessionUpdateOne {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DreamSessionUpdateOne) SetUpdatedAt(v time.Time) *DreamSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddActionIDs adds the "actions" edge to the DreamAction entity by IDs.
func (_u *DreamSessionUpdateOne) AddActionIDs(ids ...string) *DreamSessionUpdateOne {
	_u.mutation.AddActionIDs(ids...)
	return _u
}

// AddActions adds the "actions" edges to the DreamAction entity.
func (_u *DreamSessionUpdateOne) AddActions(v ...*DreamAction) *DreamSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionIDs(ids...)
}

// Mutation returns the DreamSessionMutation object of the builder.
func (_u *DreamSessionUpdateOne) Mutation() *DreamSessionMutation {
	return _u.mutation
}

// ClearActions clears all "actions" edges to the DreamAction entity.
func (_u *DreamSessionUpdateOne) ClearActions() *DreamSessionUpdateOne {
	_u.mutation.ClearActions()
	return _u
}

// RemoveActionIDs removes the "actions" edge to DreamAction entities by IDs.
func (_u *DreamSessionUpdateOne) RemoveActionIDs(ids ...string) *DreamSessionUpdateOne {
	_u.mutation.RemoveActionIDs(ids...)
	return _u
}

// RemoveActions removes "actions" edges to DreamAction entities.
func (_u *DreamSessionUpdateOne) RemoveActions(v ...*DreamAction) *DreamSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionIDs(ids...)
}

// Where appends a list predicates to the DreamSessionUpdate builder.
func (_u *DreamSessionUpdateOne) Where(ps ...predicate.DreamSession) *DreamSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DreamSessionUpdateOne) Select(field string, fields ...string) *DreamSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DreamSession entity.
func (_u *DreamSessionUpdateOne) Save(ctx context.Context) (*DreamSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DreamSessionUpdateOne) SaveX(ctx context.Context) *DreamSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DreamSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DreamSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DreamSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dreamsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DreamSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dreamsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DreamSession.status": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DreamSession.anima"`)
	}
	return nil
}

func (_u *DreamSessionUpdateOne) sqlSave(ctx context.Context) (_node *DreamSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dreamsession.Table, dreamsession.Columns, sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DreamSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dreamsession.FieldID)
		for _, f := range fields {
			if !dreamsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dreamsession.FieldID {
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
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(dreamsession.FieldTriggeredBy, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(dreamsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(dreamsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(dreamsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dreamsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dreamsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(dreamsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MemoriesReviewed(); ok {
		_spec.SetField(dreamsession.FieldMemoriesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesReviewed(); ok {
		_spec.AddField(dreamsession.FieldMemoriesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoriesModified(); ok {
		_spec.SetField(dreamsession.FieldMemoriesModified, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesModified(); ok {
		_spec.AddField(dreamsession.FieldMemoriesModified, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoriesCreated(); ok {
		_spec.SetField(dreamsession.FieldMemoriesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesCreated(); ok {
		_spec.AddField(dreamsession.FieldMemoriesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoriesArchived(); ok {
		_spec.SetField(dreamsession.FieldMemoriesArchived, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesArchived(); ok {
		_spec.AddField(dreamsession.FieldMemoriesArchived, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoriesDeleted(); ok {
		_spec.SetField(dreamsession.FieldMemoriesDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoriesDeleted(); ok {
		_spec.AddField(dreamsession.FieldMemoriesDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(dreamsession.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(dreamsession.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(dreamsession.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(dreamsession.FieldConfigSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dreamsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionsIDs(); len(nodes) > 0 && !_u.mutation.ActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DreamSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dreamsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
