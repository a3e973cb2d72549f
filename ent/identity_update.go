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
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// IdentityUpdate is the builder for updating Identity entities.
type IdentityUpdate struct {
	config
	hooks    []Hook
	mutation *IdentityMutation
}

// Where appends a list predicates to the IdentityUpdate builder.
func (_u *IdentityUpdate) Where(ps ...predicate.Identity) *IdentityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPersonalityType sets the "personality_type" field.
func (_u *IdentityUpdate) SetPersonalityType(v string) *IdentityUpdate {
	_u.mutation.SetPersonalityType(v)
	return _u
}

// SetNillablePersonalityType sets the "personality_type" field if the given value is not nil.
func (_u *IdentityUpdate) SetNillablePersonalityType(v *string) *IdentityUpdate {
	if v != nil {
		_u.SetPersonalityType(*v)
	}
	return _u
}

// ClearPersonalityType clears the value of the "personality_type" field.
func (_u *IdentityUpdate) ClearPersonalityType() *IdentityUpdate {
	_u.mutation.ClearPersonalityType()
	return _u
}

// SetCommunicationStyle sets the "communication_style" field.
func (_u *IdentityUpdate) SetCommunicationStyle(v string) *IdentityUpdate {
	_u.mutation.SetCommunicationStyle(v)
	return _u
}

// SetNillableCommunicationStyle sets the "communication_style" field if the given value is not nil.
func (_u *IdentityUpdate) SetNillableCommunicationStyle(v *string) *IdentityUpdate {
	if v != nil {
		_u.SetCommunicationStyle(*v)
	}
	return _u
}

// ClearCommunicationStyle clears the value of the "communication_style" field.
func (_u *IdentityUpdate) ClearCommunicationStyle() *IdentityUpdate {
	_u.mutation.ClearCommunicationStyle()
	return _u
}

// SetSelfReflection sets the "self_reflection" field.
func (_u *IdentityUpdate) SetSelfReflection(v map[string]interface{}) *IdentityUpdate {
	_u.mutation.SetSelfReflection(v)
	return _u
}

// ClearSelfReflection clears the value of the "self_reflection" field.
func (_u *IdentityUpdate) ClearSelfReflection() *IdentityUpdate {
	_u.mutation.ClearSelfReflection()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *IdentityUpdate) SetIsDeleted(v bool) *IdentityUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *IdentityUpdate) SetNillableIsDeleted(v *bool) *IdentityUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IdentityUpdate) SetUpdatedAt(v time.Time) *IdentityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IdentityMutation object of the builder.
func (_u *IdentityUpdate) Mutation() *IdentityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IdentityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdentityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IdentityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdentityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IdentityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := identity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdentityUpdate) check() error {
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Identity.anima"`)
	}
	return nil
}

func (_u *IdentityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(identity.Table, identity.Columns, sqlgraph.NewFieldSpec(identity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PersonalityType(); ok {
		_spec.SetField(identity.FieldPersonalityType, field.TypeString, value)
	}
	if _u.mutation.PersonalityTypeCleared() {
		_spec.ClearField(identity.FieldPersonalityType, field.TypeString)
	}
	if value, ok := _u.mutation.CommunicationStyle(); ok {
		_spec.SetField(identity.FieldCommunicationStyle, field.TypeString, value)
	}
	if _u.mutation.CommunicationStyleCleared() {
		_spec.ClearField(identity.FieldCommunicationStyle, field.TypeString)
	}
	if value, ok := _u.mutation.SelfReflection(); ok {
		_spec.SetField(identity.FieldSelfReflection, field.TypeJSON, value)
	}
	if _u.mutation.SelfReflectionCleared() {
		_spec.ClearField(identity.FieldSelfReflection, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(identity.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(identity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{identity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IdentityUpdateOne is the builder for updating a single Identity entity.
type IdentityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IdentityMutation
}

// SetPersonalityType sets the "personality_type" field.
func (_u *IdentityUpdateOne) SetPersonalityType(v string) *IdentityUpdateOne {
	_u.mutation.SetPersonalityType(v)
	return _u
}

// SetNillablePersonalityType sets the "personality_type" field if the given value is not nil.
func (_u *IdentityUpdateOne) SetNillablePersonalityType(v *string) *IdentityUpdateOne {
	if v != nil {
		_u.SetPersonalityType(*v)
	}
	return _u
}

// ClearPersonalityType clears the value of the "personality_type" field.
func (_u *IdentityUpdateOne) ClearPersonalityType() *IdentityUpdateOne {
	_u.mutation.ClearPersonalityType()
	return _u
}

// SetCommunicationStyle sets the "communication_style" field.
func (_u *IdentityUpdateOne) SetCommunicationStyle(v string) *IdentityUpdateOne {
	_u.mutation.SetCommunicationStyle(v)
	return _u
}

// SetNillableCommunicationStyle sets the "communication_style" field if the given value is not nil.
func (_u *IdentityUpdateOne) SetNillableCommunicationStyle(v *string) *IdentityUpdateOne {
	if v != nil {
		_u.SetCommunicationStyle(*v)
	}
	return _u
}

// ClearCommunicationStyle clears the value of the "communication_style" field.
func (_u *IdentityUpdateOne) ClearCommunicationStyle() *IdentityUpdateOne {
	_u.mutation.ClearCommunicationStyle()
	return _u
}

// SetSelfReflection sets the "self_reflection" field.
func (_u *IdentityUpdateOne) SetSelfReflection(v map[string]interface{}) *IdentityUpdateOne {
	_u.mutation.SetSelfReflection(v)
	return _u
}

// ClearSelfReflection clears the value of the "self_reflection" field.
func (_u *IdentityUpdateOne) ClearSelfReflection() *IdentityUpdateOne {
	_u.mutation.ClearSelfReflection()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *IdentityUpdateOne) SetIsDeleted(v bool) *IdentityUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *IdentityUpdateOne) SetNillableIsDeleted(v *bool) *IdentityUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IdentityUpdateOne) SetUpdatedAt(v time.Time) *IdentityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IdentityMutation object of the builder.
func (_u *IdentityUpdateOne) Mutation() *IdentityMutation {
	return _u.mutation
}

// Where appends a list predicates to the IdentityUpdate builder.
func (_u *IdentityUpdateOne) Where(ps ...predicate.Identity) *IdentityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IdentityUpdateOne) Select(field string, fields ...string) *IdentityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Identity entity.
func (_u *IdentityUpdateOne) Save(ctx context.Context) (*Identity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdentityUpdateOne) SaveX(ctx context.Context) *Identity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IdentityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdentityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IdentityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := identity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdentityUpdateOne) check() error {
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Identity.anima"`)
	}
	return nil
}

func (_u *IdentityUpdateOne) sqlSave(ctx context.Context) (_node *Identity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(identity.Table, identity.Columns, sqlgraph.NewFieldSpec(identity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Identity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, identity.FieldID)
		for _, f := range fields {
			if !identity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != identity.FieldID {
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
	if value, ok := _u.mutation.PersonalityType(); ok {
		_spec.SetField(identity.FieldPersonalityType, field.TypeString, value)
	}
	if _u.mutation.PersonalityTypeCleared() {
		_spec.ClearField(identity.FieldPersonalityType, field.TypeString)
	}
	if value, ok := _u.mutation.CommunicationStyle(); ok {
		_spec.SetField(identity.FieldCommunicationStyle, field.TypeString, value)
	}
	if _u.mutation.CommunicationStyleCleared() {
		_spec.ClearField(identity.FieldCommunicationStyle, field.TypeString)
	}
	if value, ok := _u.mutation.SelfReflection(); ok {
		_spec.SetField(identity.FieldSelfReflection, field.TypeJSON, value)
	}
	if _u.mutation.SelfReflectionCleared() {
		_spec.ClearField(identity.FieldSelfReflection, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(identity.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(identity.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Identity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{identity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
