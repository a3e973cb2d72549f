// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/ent/user"
)

// AnimaCreate is the builder for creating a Anima entity.
type AnimaCreate struct {
	config
	mutation *AnimaMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AnimaCreate) SetUserID(v string) *AnimaCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *AnimaCreate) SetOrganizationID(v string) *AnimaCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AnimaCreate) SetName(v string) *AnimaCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AnimaCreate) SetDescription(v string) *AnimaCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AnimaCreate) SetNillableDescription(v *string) *AnimaCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AnimaCreate) SetMetadata(v map[string]interface{}) *AnimaCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetIsDormant sets the "is_dormant" field.
func (_c *AnimaCreate) SetIsDormant(v bool) *AnimaCreate {
	_c.mutation.SetIsDormant(v)
	return _c
}

// SetNillableIsDormant sets the "is_dormant" field if the given value is not nil.
func (_c *AnimaCreate) SetNillableIsDormant(v *bool) *AnimaCreate {
	if v != nil {
		_c.SetIsDormant(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *AnimaCreate) SetLastActivityAt(v time.Time) *AnimaCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *AnimaCreate) SetNillableLastActivityAt(v *time.Time) *AnimaCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *AnimaCreate) SetIsDeleted(v bool) *AnimaCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *AnimaCreate) SetNillableIsDeleted(v *bool) *AnimaCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnimaCreate) SetCreatedAt(v time.Time) *AnimaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnimaCreate) SetNillableCreatedAt(v *time.Time) *AnimaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnimaCreate) SetUpdatedAt(v time.Time) *AnimaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnimaCreate) SetNillableUpdatedAt(v *time.Time) *AnimaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnimaCreate) SetID(v string) *AnimaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *AnimaCreate) SetUser(v *User) *AnimaCreate {
	return _c.SetUserID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *AnimaCreate) AddEventIDs(ids ...string) *AnimaCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *AnimaCreate) AddEvents(v ...*Event) *AnimaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddMemoryIDs adds the "memories" edge to the Memory entity by IDs.
func (_c *AnimaCreate) AddMemoryIDs(ids ...string) *AnimaCreate {
	_c.mutation.AddMemoryIDs(ids...)
	return _c
}

// AddMemories adds the "memories" edges to the Memory entity.
func (_c *AnimaCreate) AddMemories(v ...*Memory) *AnimaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemoryIDs(ids...)
}

// AddKnowledgeIDs adds the "knowledge" edge to the Knowledge entity by IDs.
func (_c *AnimaCreate) AddKnowledgeIDs(ids ...string) *AnimaCreate {
	_c.mutation.AddKnowledgeIDs(ids...)
	return _c
}

// AddKnowledge adds the "knowledge" edges to the Knowledge entity.
func (_c *AnimaCreate) AddKnowledge(v ...*Knowledge) *AnimaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKnowledgeIDs(ids...)
}

// SetIdentityID sets the "identity" edge to the Identity entity by ID.
func (_c *AnimaCreate) SetIdentityID(id string) *AnimaCreate {
	_c.mutation.SetIdentityID(id)
	return _c
}

// SetNillableIdentityID sets the "identity" edge to the Identity entity by ID if the given value is not nil.
func (_c *AnimaCreate) SetNillableIdentityID(id *string) *AnimaCreate {
	if id != nil {
		_c = _c.SetIdentityID(*id)
	}
	return _c
}

// SetIdentity sets the "identity" edge to the Identity entity.
func (_c *AnimaCreate) SetIdentity(v *Identity) *AnimaCreate {
	return _c.SetIdentityID(v.ID)
}

// SetSynthesisConfigID sets the "synthesis_config" edge to the SynthesisConfig entity by ID.
func (_c *AnimaCreate) SetSynthesisConfigID(id string) *AnimaCreate {
	_c.mutation.SetSynthesisConfigID(id)
	return _c
}

// SetNillableSynthesisConfigID sets the "synthesis_config" edge to the SynthesisConfig entity by ID if the given value is not nil.
func (_c *AnimaCreate) SetNillableSynthesisConfigID(id *string) *AnimaCreate {
	if id != nil {
		_c = _c.SetSynthesisConfigID(*id)
	}
	return _c
}

// SetSynthesisConfig sets the "synthesis_config" edge to the SynthesisConfig entity.
func (_c *AnimaCreate) SetSynthesisConfig(v *SynthesisConfig) *AnimaCreate {
	return _c.SetSynthesisConfigID(v.ID)
}

// SetIoConfigID sets the "io_config" edge to the IOConfig entity by ID.
func (_c *AnimaCreate) SetIoConfigID(id string) *AnimaCreate {
	_c.mutation.SetIoConfigID(id)
	return _c
}

// SetNillableIoConfigID sets the "io_config" edge to the IOConfig entity by ID if the given value is not nil.
func (_c *AnimaCreate) SetNillableIoConfigID(id *string) *AnimaCreate {
	if id != nil {
		_c = _c.SetIoConfigID(*id)
	}
	return _c
}

// SetIoConfig sets the "io_config" edge to the IOConfig entity.
func (_c *AnimaCreate) SetIoConfig(v *IOConfig) *AnimaCreate {
	return _c.SetIoConfigID(v.ID)
}

// AddMemoryPackIDs adds the "memory_packs" edge to the MemoryPack entity by IDs.
func (_c *AnimaCreate) AddMemoryPackIDs(ids ...string) *AnimaCreate {
	_c.mutation.AddMemoryPackIDs(ids...)
	return _c
}

// AddMemoryPacks adds the "memory_packs" edges to the MemoryPack entity.
func (_c *AnimaCreate) AddMemoryPacks(v ...*MemoryPack) *AnimaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemoryPackIDs(ids...)
}

// AddDreamSessionIDs adds the "dream_sessions" edge to the DreamSession entity by IDs.
func (_c *AnimaCreate) AddDreamSessionIDs(ids ...string) *AnimaCreate {
	_c.mutation.AddDreamSessionIDs(ids...)
	return _c
}

// AddDreamSessions adds the "dream_sessions" edges to the DreamSession entity.
func (_c *AnimaCreate) AddDreamSessions(v ...*DreamSession) *AnimaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDreamSessionIDs(ids...)
}

// Mutation returns the AnimaMutation object of the builder.
func (_c *AnimaCreate) Mutation() *AnimaMutation {
	return _c.mutation
}

// Save creates the Anima in the database.
func (_c *AnimaCreate) Save(ctx context.Context) (*Anima, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnimaCreate) SaveX(ctx context.Context) *Anima {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnimaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnimaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnimaCreate) defaults() {
	if _, ok := _c.mutation.IsDormant(); !ok {
		v := anima.DefaultIsDormant
		_c.mutation.SetIsDormant(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := anima.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := anima.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := anima.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnimaCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Anima.user_id"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Anima.organization_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Anima.name"`)}
	}
	if _, ok := _c.mutation.IsDormant(); !ok {
		return &ValidationError{Name: "is_dormant", err: errors.New(`ent: missing required field "Anima.is_dormant"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Anima.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Anima.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Anima.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Anima.user"`)}
	}
	return nil
}

func (_c *AnimaCreate) sqlSave(ctx context.Context) (*Anima, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Anima.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnimaCreate) createSpec() (*Anima, *sqlgraph.CreateSpec) {
	var (
		_node = &Anima{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(anima.Table, sqlgraph.NewFieldSpec(anima.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(anima.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(anima.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(anima.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(anima.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.IsDormant(); ok {
		_spec.SetField(anima.FieldIsDormant, field.TypeBool, value)
		_node.IsDormant = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(anima.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(anima.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(anima.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(anima.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   anima.UserTable,
			Columns: []string{anima.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MemoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.KnowledgeIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IdentityIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SynthesisConfigIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IoConfigIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MemoryPacksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DreamSessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnimaCreateBulk is the builder for creating many Anima entities in bulk.
type AnimaCreateBulk struct {
	config
	err      error
	builders []*AnimaCreate
}

// Save creates the Anima entities in the database.
func (_c *AnimaCreateBulk) Save(ctx context.Context) ([]*Anima, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Anima, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnimaMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnimaCreateBulk) SaveX(ctx context.Context) []*Anima {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnimaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnimaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
