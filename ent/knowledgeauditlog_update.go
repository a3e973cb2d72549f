// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// KnowledgeAuditLogUpdate is the builder for updating KnowledgeAuditLog entities.
type KnowledgeAuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeAuditLogMutation
}

// Where appends a list predicates to the KnowledgeAuditLogUpdate builder.
func (_u *KnowledgeAuditLogUpdate) Where(ps ...predicate.KnowledgeAuditLog) *KnowledgeAuditLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the KnowledgeAuditLogMutation object of the builder.
func (_u *KnowledgeAuditLogUpdate) Mutation() *KnowledgeAuditLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeAuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeAuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeAuditLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeAuditLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeAuditLogUpdate) check() error {
	if _u.mutation.KnowledgeCleared() && len(_u.mutation.KnowledgeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeAuditLog.knowledge"`)
	}
	return nil
}

func (_u *KnowledgeAuditLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeauditlog.Table, knowledgeauditlog.Columns, sqlgraph.NewFieldSpec(knowledgeauditlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SourceTypeCleared() {
		_spec.ClearField(knowledgeauditlog.FieldSourceType, field.TypeString)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(knowledgeauditlog.FieldSourceID, field.TypeString)
	}
	if _u.mutation.BeforeStateCleared() {
		_spec.ClearField(knowledgeauditlog.FieldBeforeState, field.TypeJSON)
	}
	if _u.mutation.AfterStateCleared() {
		_spec.ClearField(knowledgeauditlog.FieldAfterState, field.TypeJSON)
	}
	if _u.mutation.ChangeSummaryCleared() {
		_spec.ClearField(knowledgeauditlog.FieldChangeSummary, field.TypeString)
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(knowledgeauditlog.FieldTriggeredBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeauditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeAuditLogUpdateOne is the builder for updating a single KnowledgeAuditLog entity.
type KnowledgeAuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeAuditLogMutation
}

// Mutation returns the KnowledgeAuditLogMutation object of the builder.
func (_u *KnowledgeAuditLogUpdateOne) Mutation() *KnowledgeAuditLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeAuditLogUpdate builder.
func (_u *KnowledgeAuditLogUpdateOne) Where(ps ...predicate.KnowledgeAuditLog) *KnowledgeAuditLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeAuditLogUpdateOne) Select(field string, fields ...string) *KnowledgeAuditLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeAuditLog entity.
func (_u *KnowledgeAuditLogUpdateOne) Save(ctx context.Context) (*KnowledgeAuditLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeAuditLogUpdateOne) SaveX(ctx context.Context) *KnowledgeAuditLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeAuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeAuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeAuditLogUpdateOne) check() error {
	if _u.mutation.KnowledgeCleared() && len(_u.mutation.KnowledgeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeAuditLog.knowledge"`)
	}
	return nil
}

func (_u *KnowledgeAuditLogUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeAuditLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeauditlog.Table, knowledgeauditlog.Columns, sqlgraph.NewFieldSpec(knowledgeauditlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeAuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeauditlog.FieldID)
		for _, f := range fields {
			if !knowledgeauditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeauditlog.FieldID {
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
	if _u.mutation.SourceTypeCleared() {
		_spec.ClearField(knowledgeauditlog.FieldSourceType, field.TypeString)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(knowledgeauditlog.FieldSourceID, field.TypeString)
	}
	if _u.mutation.BeforeStateCleared() {
		_spec.ClearField(knowledgeauditlog.FieldBeforeState, field.TypeJSON)
	}
	if _u.mutation.AfterStateCleared() {
		_spec.ClearField(knowledgeauditlog.FieldAfterState, field.TypeJSON)
	}
	if _u.mutation.ChangeSummaryCleared() {
		_spec.ClearField(knowledgeauditlog.FieldChangeSummary, field.TypeString)
	}
	if _u.mutation.TriggeredByCleared() {
		_spec.ClearField(knowledgeauditlog.FieldTriggeredBy, field.TypeString)
	}
	_node = &KnowledgeAuditLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeauditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
