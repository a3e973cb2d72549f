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
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// MemoryPackUpdate is the builder for updating MemoryPack entities.
type MemoryPackUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryPackMutation
}

// Where appends a list predicates to the MemoryPackUpdate builder.
func (_u *MemoryPackUpdate) Where(ps ...predicate.MemoryPack) *MemoryPackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuery sets the "query" field.
func (_u *MemoryPackUpdate) SetQuery(v string) *MemoryPackUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *MemoryPackUpdate) SetNillableQuery(v *string) *MemoryPackUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// ClearQuery clears the value of the "query" field.
func (_u *MemoryPackUpdate) ClearQuery() *MemoryPackUpdate {
	_u.mutation.ClearQuery()
	return _u
}

// SetPreset sets the "preset" field.
func (_u *MemoryPackUpdate) SetPreset(v string) *MemoryPackUpdate {
	_u.mutation.SetPreset(v)
	return _u
}

// SetNillablePreset sets the "preset" field if the given value is not nil.
func (_u *MemoryPackUpdate) SetNillablePreset(v *string) *MemoryPackUpdate {
	if v != nil {
		_u.SetPreset(*v)
	}
	return _u
}

// ClearPreset clears the value of the "preset" field.
func (_u *MemoryPackUpdate) ClearPreset() *MemoryPackUpdate {
	_u.mutation.ClearPreset()
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *MemoryPackUpdate) SetSessionCount(v int) *MemoryPackUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *MemoryPackUpdate) SetNillableSessionCount(v *int) *MemoryPackUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *MemoryPackUpdate) AddSessionCount(v int) *MemoryPackUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetKnowledgeCount sets the "knowledge_count" field.
func (_u *MemoryPackUpdate) SetKnowledgeCount(v int) *MemoryPackUpdate {
	_u.mutation.ResetKnowledgeCount()
	_u.mutation.SetKnowledgeCount(v)
	return _u
}

// SetNillableKnowledgeCount sets the "knowledge_count" field if the given value is not nil.
func (_u *MemoryPackUpdate) SetNillableKnowledgeCount(v *int) *MemoryPackUpdate {
	if v != nil {
		_u.SetKnowledgeCount(*v)
	}
	return _u
}

// AddKnowledgeCount adds value to the "knowledge_count" field.
func (_u *MemoryPackUpdate) AddKnowledgeCount(v int) *MemoryPackUpdate {
	_u.mutation.AddKnowledgeCount(v)
	return _u
}

// SetLongTermCount sets the "long_term_count" field.
func (_u *MemoryPackUpdate) SetLongTermCount(v int) *MemoryPackUpdate {
	_u.mutation.ResetLongTermCount()
	_u.mutation.SetLongTermCount(v)
	return _u
}

// SetNillableLongTermCount sets the "long_term_count" field if the given value is not nil.
func (_u *MemoryPackUpdate) SetNillableLongTermCount(v *int) *MemoryPackUpdate {
	if v != nil {
		_u.SetLongTermCount(*v)
	}
	return _u
}

// AddLongTermCount adds value to the "long_term_count" field.
func (_u *MemoryPackUpdate) AddLongTermCount(v int) *MemoryPackUpdate {
	_u.mutation.AddLongTermCount(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *MemoryPackUpdate) SetTokenCount(v int) *MemoryPackUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *MemoryPackUpdate) SetNillableTokenCount(v *int) *MemoryPackUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *MemoryPackUpdate) AddTokenCount(v int) *MemoryPackUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *MemoryPackUpdate) SetMaxTokens(v int) *MemoryPackUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *MemoryPackUpdate) SetNillableMaxTokens(v *int) *MemoryPackUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *MemoryPackUpdate) AddMaxTokens(v int) *MemoryPackUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryPackUpdate) SetContent(v map[string]interface{}) *MemoryPackUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *MemoryPackUpdate) ClearContent() *MemoryPackUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryPackUpdate) SetUpdatedAt(v time.Time) *MemoryPackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MemoryPackMutation object of the builder.
func (_u *MemoryPackUpdate) Mutation() *MemoryPackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryPackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryPackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryPackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryPackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryPackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memorypack.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryPackUpdate) check() error {
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MemoryPack.anima"`)
	}
	return nil
}

func (_u *MemoryPackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memorypack.Table, memorypack.Columns, sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(memorypack.FieldQuery, field.TypeString, value)
	}
	if _u.mutation.QueryCleared() {
		_spec.ClearField(memorypack.FieldQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Preset(); ok {
		_spec.SetField(memorypack.FieldPreset, field.TypeString, value)
	}
	if _u.mutation.PresetCleared() {
		_spec.ClearField(memorypack.FieldPreset, field.TypeString)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(memorypack.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(memorypack.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KnowledgeCount(); ok {
		_spec.SetField(memorypack.FieldKnowledgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKnowledgeCount(); ok {
		_spec.AddField(memorypack.FieldKnowledgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongTermCount(); ok {
		_spec.SetField(memorypack.FieldLongTermCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongTermCount(); ok {
		_spec.AddField(memorypack.FieldLongTermCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(memorypack.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(memorypack.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(memorypack.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(memorypack.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memorypack.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(memorypack.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memorypack.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memorypack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryPackUpdateOne is the builder for updating a single MemoryPack entity.
type MemoryPackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryPackMutation
}

// SetQuery sets the "query" field.
func (_u *MemoryPackUpdateOne) SetQuery(v string) *MemoryPackUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *MemoryPackUpdateOne) SetNillableQuery(v *string) *MemoryPackUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// ClearQuery clears the value of the "query" field.
func (_u *MemoryPackUpdateOne) ClearQuery() *MemoryPackUpdateOne {
	_u.mutation.ClearQuery()
	return _u
}

// SetPreset sets the "preset" field.
func (_u *MemoryPackUpdateOne) SetPreset(v string) *MemoryPackUpdateOne {
	_u.mutation.SetPreset(v)
	return _u
}

// SetNillablePreset sets the "preset" field if the given value is not nil.
func (_u *MemoryPackUpdateOne) SetNillablePreset(v *string) *MemoryPackUpdateOne {
	if v != nil {
		_u.SetPreset(*v)
	}
	return _u
}

// ClearPreset clears the value of the "preset" field.
func (_u *MemoryPackUpdateOne) ClearPreset() *MemoryPackUpdateOne {
	_u.mutation.ClearPreset()
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *MemoryPackUpdateOne) SetSessionCount(v int) *MemoryPackUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *MemoryPackUpdateOne) SetNillableSessionCount(v *int) *MemoryPackUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *MemoryPackUpdateOne) AddSessionCount(v int) *MemoryPackUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetKnowledgeCount sets the "knowledge_count" field.
func (_u *MemoryPackUpdateOne) SetKnowledgeCount(v int) *MemoryPackUpdateOne {
	_u.mutation.ResetKnowledgeCount()
	_u.mutation.SetKnowledgeCount(v)
	return _u
}

// SetNillableKnowledgeCount sets the "knowledge_count" field if the given value is not nil.
func (_u *MemoryPackUpdateOne) SetNillableKnowledgeCount(v *int) *MemoryPackUpdateOne {
	if v != nil {
		_u.SetKnowledgeCount(*v)
	}
	return _u
}

// AddKnowledgeCount adds value to the "knowledge_count" field.
func (_u *MemoryPackUpdateOne) AddKnowledgeCount(v int) *MemoryPackUpdateOne {
	_u.mutation.AddKnowledgeCount(v)
	return _u
}

// SetLongTermCount sets the "long_term_count" field.
func (_u *MemoryPackUpdateOne) SetLongTermCount(v int) *MemoryPackUpdateOne {
	_u.mutation.ResetLongTermCount()
	_u.mutation.SetLongTermCount(v)
	return _u
}

// SetNillableLongTermCount sets the "long_term_count" field if the given value is not nil.
func (_u *MemoryPackUpdateOne) SetNillableLongTermCount(v *int) *MemoryPackUpdateOne {
	if v != nil {
		_u.SetLongTermCount(*v)
	}
	return _u
}

// AddLongTermCount adds value to the "long_term_count" field.
func (_u *MemoryPackUpdateOne) AddLongTermCount(v int) *MemoryPackUpdateOne {
	_u.mutation.AddLongTermCount(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *MemoryPackUpdateOne) SetTokenCount(v int) *MemoryPackUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *MemoryPackUpdateOne) SetNillableTokenCount(v *int) *MemoryPackUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *MemoryPackUpdateOne) AddTokenCount(v int) *MemoryPackUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *MemoryPackUpdateOne) SetMaxTokens(v int) *MemoryPackUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *MemoryPackUpdateOne) SetNillableMaxTokens(v *int) *MemoryPackUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *MemoryPackUpdateOne) AddMaxTokens(v int) *MemoryPackUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryPackUpdateOne) SetContent(v map[string]interface{}) *MemoryPackUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *MemoryPackUpdateOne) ClearContent() *MemoryPackUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryPackUpdateOne) SetUpdatedAt(v time.Time) *MemoryPackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MemoryPackMutation object of the builder.
func (_u *MemoryPackUpdateOne) Mutation() *MemoryPackMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryPackUpdate builder.
func (_u *MemoryPackUpdateOne) Where(ps ...predicate.MemoryPack) *MemoryPackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryPackUpdateOne) Select(field string, fields ...string) *MemoryPackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryPack entity.
func (_u *MemoryPackUpdateOne) Save(ctx context.Context) (*MemoryPack, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryPackUpdateOne) SaveX(ctx context.Context) *MemoryPack {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryPackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryPackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryPackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memorypack.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryPackUpdateOne) check() error {
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MemoryPack.anima"`)
	}
	return nil
}

func (_u *MemoryPackUpdateOne) sqlSave(ctx context.Context) (_node *MemoryPack, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memorypack.Table, memorypack.Columns, sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryPack.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memorypack.FieldID)
		for _, f := range fields {
			if !memorypack.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memorypack.FieldID {
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
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(memorypack.FieldQuery, field.TypeString, value)
	}
	if _u.mutation.QueryCleared() {
		_spec.ClearField(memorypack.FieldQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Preset(); ok {
		_spec.SetField(memorypack.FieldPreset, field.TypeString, value)
	}
	if _u.mutation.PresetCleared() {
		_spec.ClearField(memorypack.FieldPreset, field.TypeString)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(memorypack.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(memorypack.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KnowledgeCount(); ok {
		_spec.SetField(memorypack.FieldKnowledgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKnowledgeCount(); ok {
		_spec.AddField(memorypack.FieldKnowledgeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongTermCount(); ok {
		_spec.SetField(memorypack.FieldLongTermCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongTermCount(); ok {
		_spec.AddField(memorypack.FieldLongTermCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(memorypack.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(memorypack.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(memorypack.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(memorypack.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memorypack.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(memorypack.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memorypack.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MemoryPack{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memorypack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
