// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// KnowledgeAuditLogDelete is the builder for deleting a KnowledgeAuditLog entity.
type KnowledgeAuditLogDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeAuditLogMutation
}

// Where appends a list predicates to the KnowledgeAuditLogDelete builder.
func (_d *KnowledgeAuditLogDelete) Where(ps ...predicate.KnowledgeAuditLog) *KnowledgeAuditLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeAuditLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeAuditLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeAuditLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgeauditlog.Table, sqlgraph.NewFieldSpec(knowledgeauditlog.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// KnowledgeAuditLogDeleteOne is the builder for deleting a single KnowledgeAuditLog entity.
type KnowledgeAuditLogDeleteOne struct {
	_d *KnowledgeAuditLogDelete
}

// Where appends a list predicates to the KnowledgeAuditLogDelete builder.
func (_d *KnowledgeAuditLogDeleteOne) Where(ps ...predicate.KnowledgeAuditLog) *KnowledgeAuditLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeAuditLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgeauditlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeAuditLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
