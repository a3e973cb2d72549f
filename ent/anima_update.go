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
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/ent/predicate"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
)

// AnimaUpdate is the builder for updating Anima entities.
type AnimaUpdate struct {
	config
	hooks    []Hook
	mutation *AnimaMutation
}

// Where appends a list predicates to the AnimaUpdate builder.
func (_u *AnimaUpdate) Where(ps ...predicate.Anima) *AnimaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AnimaUpdate) SetName(v string) *AnimaUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnimaUpdate) SetNillableName(v *string) *AnimaUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AnimaUpdate) SetDescription(v string) *AnimaUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AnimaUpdate) SetNillableDescription(v *string) *AnimaUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AnimaUpdate) ClearDescription() *AnimaUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AnimaUpdate) SetMetadata(v map[string]interface{}) *AnimaUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AnimaUpdate) ClearMetadata() *AnimaUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsDormant sets the "is_dormant" field.
func (_u *AnimaUpdate) SetIsDormant(v bool) *AnimaUpdate {
	_u.mutation.SetIsDormant(v)
	return _u
}

// SetNillableIsDormant sets the "is_dormant" field if the given value is not nil.
func (_u *AnimaUpdate) SetNillableIsDormant(v *bool) *AnimaUpdate {
	if v != nil {
		_u.SetIsDormant(*v)
	}
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *AnimaUpdate) SetLastActivityAt(v time.Time) *AnimaUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *AnimaUpdate) SetNillableLastActivityAt(v *time.Time) *AnimaUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *AnimaUpdate) ClearLastActivityAt() *AnimaUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *AnimaUpdate) SetIsDeleted(v bool) *AnimaUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *AnimaUpdate) SetNillableIsDeleted(v *bool) *AnimaUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnimaUpdate) SetUpdatedAt(v time.Time) *AnimaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AnimaUpdate) AddEventIDs(ids ...string) *AnimaUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AnimaUpdate) AddEvents(v ...*Event) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddMemoryIDs adds the "memories" edge to the Memory entity by IDs.
func (_u *AnimaUpdate) AddMemoryIDs(ids ...string) *AnimaUpdate {
	_u.mutation.AddMemoryIDs(ids...)
	return _u
}

// AddMemories adds the "memories" edges to the Memory entity.
func (_u *AnimaUpdate) AddMemories(v ...*Memory) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryIDs(ids...)
}

// AddKnowledgeIDs adds the "knowledge" edge to the Knowledge entity by IDs.
func (_u *AnimaUpdate) AddKnowledgeIDs(ids ...string) *AnimaUpdate {
	_u.mutation.AddKnowledgeIDs(ids...)
	return _u
}

// AddKnowledge adds the "knowledge" edges to the Knowledge entity.
func (_u *AnimaUpdate) AddKnowledge(v ...*Knowledge) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeIDs(ids...)
}

// SetIdentityID sets the "identity" edge to the Identity entity by ID.
func (_u *AnimaUpdate) SetIdentityID(id string) *AnimaUpdate {
	_u.mutation.SetIdentityID(id)
	return _u
}

// SetNillableIdentityID sets the "identity" edge to the Identity entity by ID if the given value is not nil.
func (_u *AnimaUpdate) SetNillableIdentityID(id *string) *AnimaUpdate {
	if id != nil {
		_u = _u.SetIdentityID(*id)
	}
	return _u
}

// SetIdentity sets the "identity" edge to the Identity entity.
func (_u *AnimaUpdate) SetIdentity(v *Identity) *AnimaUpdate {
	return _u.SetIdentityID(v.ID)
}

// SetSynthesisConfigID sets the "synthesis_config" edge to the SynthesisConfig entity by ID.
func (_u *AnimaUpdate) SetSynthesisConfigID(id string) *AnimaUpdate {
	_u.mutation.SetSynthesisConfigID(id)
	return _u
}

// SetNillableSynthesisConfigID sets the "synthesis_config" edge to the SynthesisConfig entity by ID if the given value is not nil.
func (_u *AnimaUpdate) SetNillableSynthesisConfigID(id *string) *AnimaUpdate {
	if id != nil {
		_u = _u.SetSynthesisConfigID(*id)
	}
	return _u
}

// SetSynthesisConfig sets the "synthesis_config" edge to the SynthesisConfig entity.
func (_u *AnimaUpdate) SetSynthesisConfig(v *SynthesisConfig) *AnimaUpdate {
	return _u.SetSynthesisConfigID(v.ID)
}

// SetIoConfigID sets the "io_config" edge to the IOConfig entity by ID.
func (_u *AnimaUpdate) SetIoConfigID(id string) *AnimaUpdate {
	_u.mutation.SetIoConfigID(id)
	return _u
}

// SetNillableIoConfigID sets the "io_config" edge to the IOConfig entity by ID if the given value is not nil.
func (_u *AnimaUpdate) SetNillableIoConfigID(id *string) *AnimaUpdate {
	if id != nil {
		_u = _u.SetIoConfigID(*id)
	}
	return _u
}

// SetIoConfig sets the "io_config" edge to the IOConfig entity.
func (_u *AnimaUpdate) SetIoConfig(v *IOConfig) *AnimaUpdate {
	return _u.SetIoConfigID(v.ID)
}

// AddMemoryPackIDs adds the "memory_packs" edge to the MemoryPack entity by IDs.
func (_u *AnimaUpdate) AddMemoryPackIDs(ids ...string) *AnimaUpdate {
	_u.mutation.AddMemoryPackIDs(ids...)
	return _u
}

// AddMemoryPacks adds the "memory_packs" edges to the MemoryPack entity.
func (_u *AnimaUpdate) AddMemoryPacks(v ...*MemoryPack) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryPackIDs(ids...)
}

// AddDreamSessionIDs adds the "dream_sessions" edge to the DreamSession entity by IDs.
func (_u *AnimaUpdate) AddDreamSessionIDs(ids ...string) *AnimaUpdate {
	_u.mutation.AddDreamSessionIDs(ids...)
	return _u
}

// AddDreamSessions adds the "dream_sessions" edges to the DreamSession entity.
func (_u *AnimaUpdate) AddDreamSessions(v ...*DreamSession) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDreamSessionIDs(ids...)
}

// Mutation returns the AnimaMutation object of the builder.
func (_u *AnimaUpdate) Mutation() *AnimaMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AnimaUpdate) ClearEvents() *AnimaUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AnimaUpdate) RemoveEventIDs(ids ...string) *AnimaUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AnimaUpdate) RemoveEvents(v ...*Event) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearMemories clears all "memories" edges to the Memory entity.
func (_u *AnimaUpdate) ClearMemories() *AnimaUpdate {
	_u.mutation.ClearMemories()
	return _u
}

// RemoveMemoryIDs removes the "memories" edge to Memory entities by IDs.
func (_u *AnimaUpdate) RemoveMemoryIDs(ids ...string) *AnimaUpdate {
	_u.mutation.RemoveMemoryIDs(ids...)
	return _u
}

// RemoveMemories removes "memories" edges to Memory entities.
func (_u *AnimaUpdate) RemoveMemories(v ...*Memory) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryIDs(ids...)
}

// ClearKnowledge clears all "knowledge" edges to the Knowledge entity.
func (_u *AnimaUpdate) ClearKnowledge() *AnimaUpdate {
	_u.mutation.ClearKnowledge()
	return _u
}

// RemoveKnowledgeIDs removes the "knowledge" edge to Knowledge entities by IDs.
func (_u *AnimaUpdate) RemoveKnowledgeIDs(ids ...string) *AnimaUpdate {
	_u.mutation.RemoveKnowledgeIDs(ids...)
	return _u
}

// RemoveKnowledge removes "knowledge" edges to Knowledge entities.
func (_u *AnimaUpdate) RemoveKnowledge(v ...*Knowledge) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeIDs(ids...)
}

// ClearIdentity clears the "identity" edge to the Identity entity.
func (_u *AnimaUpdate) ClearIdentity() *AnimaUpdate {
	_u.mutation.ClearIdentity()
	return _u
}

// ClearSynthesisConfig clears the "synthesis_config" edge to the SynthesisConfig entity.
func (_u *AnimaUpdate) ClearSynthesisConfig() *AnimaUpdate {
	_u.mutation.ClearSynthesisConfig()
	return _u
}

// ClearIoConfig clears the "io_config" edge to the IOConfig entity.
func (_u *AnimaUpdate) ClearIoConfig() *AnimaUpdate {
	_u.mutation.ClearIoConfig()
	return _u
}

// ClearMemoryPacks clears all "memory_packs" edges to the MemoryPack entity.
func (_u *AnimaUpdate) ClearMemoryPacks() *AnimaUpdate {
	_u.mutation.ClearMemoryPacks()
	return _u
}

// RemoveMemoryPackIDs removes the "memory_packs" edge to MemoryPack entities by IDs.
func (_u *AnimaUpdate) RemoveMemoryPackIDs(ids ...string) *AnimaUpdate {
	_u.mutation.RemoveMemoryPackIDs(ids...)
	return _u
}

// RemoveMemoryPacks removes "memory_packs" edges to MemoryPack entities.
func (_u *AnimaUpdate) RemoveMemoryPacks(v ...*MemoryPack) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryPackIDs(ids...)
}

// ClearDreamSessions clears all "dream_sessions" edges to the DreamSession entity.
func (_u *AnimaUpdate) ClearDreamSessions() *AnimaUpdate {
	_u.mutation.ClearDreamSessions()
	return _u
}

// RemoveDreamSessionIDs removes the "dream_sessions" edge to DreamSession entities by IDs.
func (_u *AnimaUpdate) RemoveDreamSessionIDs(ids ...string) *AnimaUpdate {
	_u.mutation.RemoveDreamSessionIDs(ids...)
	return _u
}

// RemoveDreamSessions removes "dream_sessions" edges to DreamSession entities.
func (_u *AnimaUpdate) RemoveDreamSessions(v ...*DreamSession) *AnimaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDreamSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnimaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnimaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnimaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnimaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnimaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := anima.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnimaUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Anima.user"`)
	}
	return nil
}

func (_u *AnimaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anima.Table, anima.Columns, sqlgraph.NewFieldSpec(anima.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(anima.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(anima.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(anima.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(anima.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(anima.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsDormant(); ok {
		_spec.SetField(anima.FieldIsDormant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(anima.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(anima.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(anima.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(anima.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.EventsTable,
			Columns: []string{anima.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.EventsTable,
			Columns: []string{anima.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.EventsTable,
			Columns: []string{anima.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoriesTable,
			Columns: []string{anima.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoriesIDs(); len(nodes) > 0 && !_u.mutation.MemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoriesTable,
			Columns: []string{anima.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoriesTable,
			Columns: []string{anima.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.KnowledgeTable,
			Columns: []string{anima.KnowledgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.KnowledgeTable,
			Columns: []string{anima.KnowledgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.KnowledgeTable,
			Columns: []string{anima.KnowledgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IdentityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.IdentityTable,
			Columns: []string{anima.IdentityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.IdentityTable,
			Columns: []string{anima.IdentityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SynthesisConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.SynthesisConfigTable,
			Columns: []string{anima.SynthesisConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(synthesisconfig.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SynthesisConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.SynthesisConfigTable,
			Columns: []string{anima.SynthesisConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(synthesisconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IoConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.IoConfigTable,
			Columns: []string{anima.IoConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ioconfig.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IoConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.IoConfigTable,
			Columns: []string{anima.IoConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ioconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MemoryPacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoryPacksTable,
			Columns: []string{anima.MemoryPacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoryPacksIDs(); len(nodes) > 0 && !_u.mutation.MemoryPacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoryPacksTable,
			Columns: []string{anima.MemoryPacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoryPacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoryPacksTable,
			Columns: []string{anima.MemoryPacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DreamSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.DreamSessionsTable,
			Columns: []string{anima.DreamSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDreamSessionsIDs(); len(nodes) > 0 && !_u.mutation.DreamSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.DreamSessionsTable,
			Columns: []string{anima.DreamSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DreamSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.DreamSessionsTable,
			Columns: []string{anima.DreamSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anima.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnimaUpdateOne is the builder for updating a single Anima entity.
type AnimaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnimaMutation
}

// SetName sets the "name" field.
func (_u *AnimaUpdateOne) SetName(v string) *AnimaUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnimaUpdateOne) SetNillableName(v *string) *AnimaUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AnimaUpdateOne) SetDescription(v string) *AnimaUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AnimaUpdateOne) SetNillableDescription(v *string) *AnimaUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AnimaUpdateOne) ClearDescription() *AnimaUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AnimaUpdateOne) SetMetadata(v map[string]interface{}) *AnimaUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AnimaUpdateOne) ClearMetadata() *AnimaUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsDormant sets the "is_dormant" field.
func (_u *AnimaUpdateOne) SetIsDormant(v bool) *AnimaUpdateOne {
	_u.mutation.SetIsDormant(v)
	return _u
}

// SetNillableIsDormant sets the "is_dormant" field if the given value is not nil.
func (_u *AnimaUpdateOne) SetNillableIsDormant(v *bool) *AnimaUpdateOne {
	if v != nil {
		_u.SetIsDormant(*v)
	}
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *AnimaUpdateOne) SetLastActivityAt(v time.Time) *AnimaUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *AnimaUpdateOne) SetNillableLastActivityAt(v *time.Time) *AnimaUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *AnimaUpdateOne) ClearLastActivityAt() *AnimaUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *AnimaUpdateOne) SetIsDeleted(v bool) *AnimaUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *AnimaUpdateOne) SetNillableIsDeleted(v *bool) *AnimaUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnimaUpdateOne) SetUpdatedAt(v time.Time) *AnimaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AnimaUpdateOne) AddEventIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AnimaUpdateOne) AddEvents(v ...*Event) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddMemoryIDs adds the "memories" edge to the Memory entity by IDs.
func (_u *AnimaUpdateOne) AddMemoryIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.AddMemoryIDs(ids...)
	return _u
}

// AddMemories adds the "memories" edges to the Memory entity.
func (_u *AnimaUpdateOne) AddMemories(v ...*Memory) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryIDs(ids...)
}

// AddKnowledgeIDs adds the "knowledge" edge to the Knowledge entity by IDs.
func (_u *AnimaUpdateOne) AddKnowledgeIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.AddKnowledgeIDs(ids...)
	return _u
}

// AddKnowledge adds the "knowledge" edges to the Knowledge entity.
func (_u *AnimaUpdateOne) AddKnowledge(v ...*Knowledge) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeIDs(ids...)
}

// SetIdentityID sets the "identity" edge to the Identity entity by ID.
func (_u *AnimaUpdateOne) SetIdentityID(id string) *AnimaUpdateOne {
	_u.mutation.SetIdentityID(id)
	return _u
}

// SetNillableIdentityID sets the "identity" edge to the Identity entity by ID if the given value is not nil.
func (_u *AnimaUpdateOne) SetNillableIdentityID(id *string) *AnimaUpdateOne {
	if id != nil {
		_u = _u.SetIdentityID(*id)
	}
	return _u
}

// SetIdentity sets the "identity" edge to the Identity entity.
func (_u *AnimaUpdateOne) SetIdentity(v *Identity) *AnimaUpdateOne {
	return _u.SetIdentityID(v.ID)
}

// SetSynthesisConfigID sets the "synthesis_config" edge to the SynthesisConfig entity by ID.
func (_u *AnimaUpdateOne) SetSynthesisConfigID(id string) *AnimaUpdateOne {
	_u.mutation.SetSynthesisConfigID(id)
	return _u
}

// SetNillableSynthesisConfigID sets the "synthesis_config" edge to the SynthesisConfig entity by ID if the given value is not nil.
func (_u *AnimaUpdateOne) SetNillableSynthesisConfigID(id *string) *AnimaUpdateOne {
	if id != nil {
		_u = _u.SetSynthesisConfigID(*id)
	}
	return _u
}

// SetSynthesisConfig sets the "synthesis_config" edge to the SynthesisConfig entity.
func (_u *AnimaUpdateOne) SetSynthesisConfig(v *SynthesisConfig) *AnimaUpdateOne {
	return _u.SetSynthesisConfigID(v.ID)
}

// SetIoConfigID sets the "io_config" edge to the IOConfig entity by ID.
func (_u *AnimaUpdateOne) SetIoConfigID(id string) *AnimaUpdateOne {
	_u.mutation.SetIoConfigID(id)
	return _u
}

// SetNillableIoConfigID sets the "io_config" edge to the IOConfig entity by ID if the given value is not nil.
func (_u *AnimaUpdateOne) SetNillableIoConfigID(id *string) *AnimaUpdateOne {
	if id != nil {
		_u = _u.SetIoConfigID(*id)
	}
	return _u
}

// SetIoConfig sets the "io_config" edge to the IOConfig entity.
func (_u *AnimaUpdateOne) SetIoConfig(v *IOConfig) *AnimaUpdateOne {
	return _u.SetIoConfigID(v.ID)
}

// AddMemoryPackIDs adds the "memory_packs" edge to the MemoryPack entity by IDs.
func (_u *AnimaUpdateOne) AddMemoryPackIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.AddMemoryPackIDs(ids...)
	return _u
}

// AddMemoryPacks adds the "memory_packs" edges to the MemoryPack entity.
func (_u *AnimaUpdateOne) AddMemoryPacks(v ...*MemoryPack) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemoryPackIDs(ids...)
}

// AddDreamSessionIDs adds the "dream_sessions" edge to the DreamSession entity by IDs.
func (_u *AnimaUpdateOne) AddDreamSessionIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.AddDreamSessionIDs(ids...)
	return _u
}

// AddDreamSessions adds the "dream_sessions" edges to the DreamSession entity.
func (_u *AnimaUpdateOne) AddDreamSessions(v ...*DreamSession) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDreamSessionIDs(ids...)
}

// Mutation returns the AnimaMutation object of the builder.
func (_u *AnimaUpdateOne) Mutation() *AnimaMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AnimaUpdateOne) ClearEvents() *AnimaUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AnimaUpdateOne) RemoveEventIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AnimaUpdateOne) RemoveEvents(v ...*Event) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearMemories clears all "memories" edges to the Memory entity.
func (_u *AnimaUpdateOne) ClearMemories() *AnimaUpdateOne {
	_u.mutation.ClearMemories()
	return _u
}

// RemoveMemoryIDs removes the "memories" edge to Memory entities by IDs.
func (_u *AnimaUpdateOne) RemoveMemoryIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.RemoveMemoryIDs(ids...)
	return _u
}

// RemoveMemories removes "memories" edges to Memory entities.
func (_u *AnimaUpdateOne) RemoveMemories(v ...*Memory) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryIDs(ids...)
}

// ClearKnowledge clears all "knowledge" edges to the Knowledge entity.
func (_u *AnimaUpdateOne) ClearKnowledge() *AnimaUpdateOne {
	_u.mutation.ClearKnowledge()
	return _u
}

// RemoveKnowledgeIDs removes the "knowledge" edge to Knowledge entities by IDs.
func (_u *AnimaUpdateOne) RemoveKnowledgeIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.RemoveKnowledgeIDs(ids...)
	return _u
}

// RemoveKnowledge removes "knowledge" edges to Knowledge entities.
func (_u *AnimaUpdateOne) RemoveKnowledge(v ...*Knowledge) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeIDs(ids...)
}

// ClearIdentity clears the "identity" edge to the Identity entity.
func (_u *AnimaUpdateOne) ClearIdentity() *AnimaUpdateOne {
	_u.mutation.ClearIdentity()
	return _u
}

// ClearSynthesisConfig clears the "synthesis_config" edge to the SynthesisConfig entity.
func (_u *AnimaUpdateOne) ClearSynthesisConfig() *AnimaUpdateOne {
	_u.mutation.ClearSynthesisConfig()
	return _u
}

// ClearIoConfig clears the "io_config" edge to the IOConfig entity.
func (_u *AnimaUpdateOne) ClearIoConfig() *AnimaUpdateOne {
	_u.mutation.ClearIoConfig()
	return _u
}

// ClearMemoryPacks clears all "memory_packs" edges to the MemoryPack entity.
func (_u *AnimaUpdateOne) ClearMemoryPacks() *AnimaUpdateOne {
	_u.mutation.ClearMemoryPacks()
	return _u
}

// RemoveMemoryPackIDs removes the "memory_packs" edge to MemoryPack entities by IDs.
func (_u *AnimaUpdateOne) RemoveMemoryPackIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.RemoveMemoryPackIDs(ids...)
	return _u
}

// RemoveMemoryPacks removes "memory_packs" edges to MemoryPack entities.
func (_u *AnimaUpdateOne) RemoveMemoryPacks(v ...*MemoryPack) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemoryPackIDs(ids...)
}

// ClearDreamSessions clears all "dream_sessions" edges to the DreamSession entity.
func (_u *AnimaUpdateOne) ClearDreamSessions() *AnimaUpdateOne {
	_u.mutation.ClearDreamSessions()
	return _u
}

// RemoveDreamSessionIDs removes the "dream_sessions" edge to DreamSession entities by IDs.
func (_u *AnimaUpdateOne) RemoveDreamSessionIDs(ids ...string) *AnimaUpdateOne {
	_u.mutation.RemoveDreamSessionIDs(ids...)
	return _u
}

// RemoveDreamSessions removes "dream_sessions" edges to DreamSession entities.
func (_u *AnimaUpdateOne) RemoveDreamSessions(v ...*DreamSession) *AnimaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDreamSessionIDs(ids...)
}

// Where appends a list predicates to the AnimaUpdate builder.
func (_u *AnimaUpdateOne) Where(ps ...predicate.Anima) *AnimaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnimaUpdateOne) Select(field string, fields ...string) *AnimaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Anima entity.
func (_u *AnimaUpdateOne) Save(ctx context.Context) (*Anima, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnimaUpdateOne) SaveX(ctx context.Context) *Anima {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnimaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnimaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnimaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := anima.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnimaUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Anima.user"`)
	}
	return nil
}

func (_u *AnimaUpdateOne) sqlSave(ctx context.Context) (_node *Anima, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anima.Table, anima.Columns, sqlgraph.NewFieldSpec(anima.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Anima.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anima.FieldID)
		for _, f := range fields {
			if !anima.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != anima.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(anima.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(anima.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(anima.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(anima.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(anima.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsDormant(); ok {
		_spec.SetField(anima.FieldIsDormant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(anima.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(anima.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(anima.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(anima.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.EventsTable,
			Columns: []string{anima.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.EventsTable,
			Columns: []string{anima.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.EventsTable,
			Columns: []string{anima.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoriesTable,
			Columns: []string{anima.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoriesIDs(); len(nodes) > 0 && !_u.mutation.MemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoriesTable,
			Columns: []string{anima.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoriesTable,
			Columns: []string{anima.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.KnowledgeTable,
			Columns: []string{anima.KnowledgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.KnowledgeTable,
			Columns: []string{anima.KnowledgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.KnowledgeTable,
			Columns: []string{anima.KnowledgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IdentityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.IdentityTable,
			Columns: []string{anima.IdentityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.IdentityTable,
			Columns: []string{anima.IdentityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SynthesisConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.SynthesisConfigTable,
			Columns: []string{anima.SynthesisConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(synthesisconfig.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SynthesisConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.SynthesisConfigTable,
			Columns: []string{anima.SynthesisConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(synthesisconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IoConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.IoConfigTable,
			Columns: []string{anima.IoConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ioconfig.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IoConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   anima.IoConfigTable,
			Columns: []string{anima.IoConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ioconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MemoryPacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoryPacksTable,
			Columns: []string{anima.MemoryPacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMemoryPacksIDs(); len(nodes) > 0 && !_u.mutation.MemoryPacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoryPacksTable,
			Columns: []string{anima.MemoryPacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemoryPacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.MemoryPacksTable,
			Columns: []string{anima.MemoryPacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(memorypack.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DreamSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.DreamSessionsTable,
			Columns: []string{anima.DreamSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDreamSessionsIDs(); len(nodes) > 0 && !_u.mutation.DreamSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.DreamSessionsTable,
			Columns: []string{anima.DreamSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DreamSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   anima.DreamSessionsTable,
			Columns: []string{anima.DreamSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Anima{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anima.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
