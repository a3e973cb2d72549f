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
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *EventUpdate) SetRole(v string) *EventUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRole(v *string) *EventUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *EventUpdate) ClearRole() *EventUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *EventUpdate) SetAuthor(v string) *EventUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *EventUpdate) SetNillableAuthor(v *string) *EventUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *EventUpdate) ClearAuthor() *EventUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventUpdate) SetSummary(v string) *EventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSummary(v *string) *EventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EventUpdate) ClearSummary() *EventUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EventUpdate) SetSessionID(v string) *EventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSessionID(v *string) *EventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *EventUpdate) ClearSessionID() *EventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EventUpdate) SetMetadata(v map[string]interface{}) *EventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EventUpdate) ClearMetadata() *EventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSourceURI sets the "source_uri" field.
func (_u *EventUpdate) SetSourceURI(v string) *EventUpdate {
	_u.mutation.SetSourceURI(v)
	return _u
}

// SetNillableSourceURI sets the "source_uri" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSourceURI(v *string) *EventUpdate {
	if v != nil {
		_u.SetSourceURI(*v)
	}
	return _u
}

// ClearSourceURI clears the value of the "source_uri" field.
func (_u *EventUpdate) ClearSourceURI() *EventUpdate {
	_u.mutation.ClearSourceURI()
	return _u
}

// SetImportance sets the "importance" field.
func (_u *EventUpdate) SetImportance(v float64) *EventUpdate {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *EventUpdate) SetNillableImportance(v *float64) *EventUpdate {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *EventUpdate) AddImportance(v float64) *EventUpdate {
	_u.mutation.AddImportance(v)
	return _u
}

// ClearImportance clears the value of the "importance" field.
func (_u *EventUpdate) ClearImportance() *EventUpdate {
	_u.mutation.ClearImportance()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *EventUpdate) SetIsDeleted(v bool) *EventUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *EventUpdate) SetNillableIsDeleted(v *bool) *EventUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemoryLinkIDs adds the "memory_links" edge to the MemoryEvent entity by IDs.
func (_u *EventUpdate) AddMemoryLinkIDs(ids ...string) *EventUpdate {
	_u.mutation.AddMemoryLinkIDs(ids...)
	return _u
}

// AddMemoryLinks adds the "memory_links" edges to the MemoryEvent entity.
func (_u *EventUpdate) AddMemoryLinks(v ...*MemoryEvent) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryLinkIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearMemoryLinks clears all "memory_links" edges to the MemoryEvent entity.
func (_u *EventUpdate) ClearMemoryLinks() *EventUpdate {
	_u.mutation.ClearMemoryLinks()
	return _u
}

// RemoveMemoryLinkIDs removes the "memory_links" edge to MemoryEvent entities by IDs.
func (_u *EventUpdate) RemoveMemoryLinkIDs(ids ...string) *EventUpdate {
	_u.mutation.RemoveMemoryLinkIDs(ids...)
	return _u
}

// RemoveMemoryLinks removes "memory_links" edges to MemoryEvent entities.
func (_u *EventUpdate) RemoveMemoryLinks(v ...*MemoryEvent) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Importance(); ok {
		if err := event.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "Event.importance": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.anima"`)
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(event.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(event.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(event.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(event.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(event.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(event.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(event.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(event.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(event.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(event.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceURI(); ok {
		_spec.SetField(event.FieldSourceURI, field.TypeString, value)
	}
	if _u.mutation.SourceURICleared() {
		_spec.ClearField(event.FieldSourceURI, field.TypeString)
	}
	if _u.mutation.DedupeKeyCleared() {
		_spec.ClearField(event.FieldDedupeKey, field.TypeString)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(event.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(event.FieldImportance, field.TypeFloat64, value)
	}
	if _u.mutation.ImportanceCleared() {
		_spec.ClearField(event.FieldImportance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(event.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MemoryLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MemoryLinksTable,
			Columns: []string{event.MemoryLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoryLinksIDs(); len(nodes) > 0 && !_u.mutation.MemoryLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MemoryLinksTable,
			Columns: []string{event.MemoryLinksColumn},
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
	if nodes := _u.mutation.MemoryLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MemoryLinksTable,
			Columns: []string{event.MemoryLinksColumn},
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
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetRole sets the "role" field.
func (_u *EventUpdateOne) SetRole(v string) *EventUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRole(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *EventUpdateOne) ClearRole() *EventUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *EventUpdateOne) SetAuthor(v string) *EventUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableAuthor(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *EventUpdateOne) ClearAuthor() *EventUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventUpdateOne) SetSummary(v string) *EventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSummary(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EventUpdateOne) ClearSummary() *EventUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EventUpdateOne) SetSessionID(v string) *EventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSessionID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *EventUpdateOne) ClearSessionID() *EventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EventUpdateOne) SetMetadata(v map[string]interface{}) *EventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EventUpdateOne) ClearMetadata() *EventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSourceURI sets the "source_uri" field.
func (_u *EventUpdateOne) SetSourceURI(v string) *EventUpdateOne {
	_u.mutation.SetSourceURI(v)
	return _u
}

// SetNillableSourceURI sets the "source_uri" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSourceURI(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSourceURI(*v)
	}
	return _u
}

// ClearSourceURI clears the value of the "source_uri" field.
func (_u *EventUpdateOne) ClearSourceURI() *EventUpdateOne {
	_u.mutation.ClearSourceURI()
	return _u
}

// SetImportance sets the "importance" field.
func (_u *EventUpdateOne) SetImportance(v float64) *EventUpdateOne {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableImportance(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *EventUpdateOne) AddImportance(v float64) *EventUpdateOne {
	_u.mutation.AddImportance(v)
	return _u
}

// ClearImportance clears the value of the "importance" field.
func (_u *EventUpdateOne) ClearImportance() *EventUpdateOne {
	_u.mutation.ClearImportance()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *EventUpdateOne) SetIsDeleted(v bool) *EventUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableIsDeleted(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemoryLinkIDs adds the "memory_links" edge to the MemoryEvent entity by IDs.
func (_u *EventUpdateOne) AddMemoryLinkIDs(ids ...string) *EventUpdateOne {
	_u.mutation.AddMemoryLinkIDs(ids...)
	return _u
}

// AddMemoryLinks adds the "memory_links" edges to the MemoryEvent entity.
func (_u *EventUpdateOne) AddMemoryLinks(v ...*MemoryEvent) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryLinkIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearMemoryLinks clears all "memory_links" edges to the MemoryEvent entity.
func (_u *EventUpdateOne) ClearMemoryLinks() *EventUpdateOne {
	_u.mutation.ClearMemoryLinks()
	return _u
}

// RemoveMemoryLinkIDs removes the "memory_links" edge to MemoryEvent entities by IDs.
func (_u *EventUpdateOne) RemoveMemoryLinkIDs(ids ...string) *EventUpdateOne {
	_u.mutation.RemoveMemoryLinkIDs(ids...)
	return _u
}

// RemoveMemoryLinks removes "memory_links" edges to MemoryEvent entities.
func (_u *EventUpdateOne) RemoveMemoryLinks(v ...*MemoryEvent) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryLinkIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Importance(); ok {
		if err := event.ImportanceValidator(v); err != nil {
			return &ValidationError{Name: "importance", err: fmt.Errorf(`ent: validator failed for field "Event.importance": %w`, err)}
		}
	}
	if _u.mutation.AnimaCleared() && len(_u.mutation.AnimaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.anima"`)
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(event.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(event.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(event.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(event.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(event.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(event.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(event.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(event.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(event.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(event.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceURI(); ok {
		_spec.SetField(event.FieldSourceURI, field.TypeString, value)
	}
	if _u.mutation.SourceURICleared() {
		_spec.ClearField(event.FieldSourceURI, field.TypeString)
	}
	if _u.mutation.DedupeKeyCleared() {
		_spec.ClearField(event.FieldDedupeKey, field.TypeString)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(event.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(event.FieldImportance, field.TypeFloat64, value)
	}
	if _u.mutation.ImportanceCleared() {
		_spec.ClearField(event.FieldImportance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(event.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MemoryLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MemoryLinksTable,
			Columns: []string{event.MemoryLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memoryevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoryLinksIDs(); len(nodes) > 0 && !_u.mutation.MemoryLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MemoryLinksTable,
			Columns: []string{event.MemoryLinksColumn},
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
	if nodes := _u.mutation.MemoryLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MemoryLinksTable,
			Columns: []string{event.MemoryLinksColumn},
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
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
