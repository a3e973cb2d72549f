// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/predicate"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
)

// SynthesisConfigDelete is the builder for deleting a SynthesisConfig entity.
type SynthesisConfigDelete struct {
	config
	hooks    []Hook
	mutation *SynthesisConfigMutation
}

// Where appends a list predicates to the SynthesisConfigDelete builder.
func (_d *SynthesisConfigDelete) Where(ps ...predicate.SynthesisConfig) *SynthesisConfigDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SynthesisConfigDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SynthesisConfigDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SynthesisConfigDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(synthesisconfig.Table, sqlgraph.NewFieldSpec(synthesisconfig.FieldID, field.TypeString))
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

// SynthesisConfigDeleteOne is the builder for deleting a single SynthesisConfig entity.
type SynthesisConfigDeleteOne struct {
	_d *SynthesisConfigDelete
}

// Where appends a list predicates to the SynthesisConfigDelete builder.
func (_d *SynthesisConfigDeleteOne) Where(ps ...predicate.SynthesisConfig) *SynthesisConfigDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SynthesisConfigDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{synthesisconfig.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SynthesisConfigDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
