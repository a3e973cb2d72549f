// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/apikey"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/ent/predicate"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPIKey            = "APIKey"
	TypeAnima             = "Anima"
	TypeDreamAction       = "DreamAction"
	TypeDreamSession      = "DreamSession"
	TypeEvent             = "Event"
	TypeIOConfig          = "IOConfig"
	TypeIdentity          = "Identity"
	TypeKnowledge         = "Knowledge"
	TypeKnowledgeAuditLog = "KnowledgeAuditLog"
	TypeMemory            = "Memory"
	TypeMemoryEvent       = "MemoryEvent"
	TypeMemoryPack        = "MemoryPack"
	TypeSynthesisConfig   = "SynthesisConfig"
	TypeUser              = "User"
)

// APIKeyMutation represents an operation that mutates the APIKey nodes in the graph.
type APIKeyMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	description      *string
	key_hash         *string
	key_prefix       *string
	last_used_at     *time.Time
	request_count    *int
	addrequest_count *int
	is_active        *bool
	expires_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	user             *string
	cleareduser      bool
	done             bool
	oldValue         func(context.Context) (*APIKey, error)
	predicates       []predicate.APIKey
}

var _ ent.Mutation = (*APIKeyMutation)(nil)

// apikeyOption allows management of the mutation configuration using functional options.
type apikeyOption func(*APIKeyMutation)

// newAPIKeyMutation creates new mutation for the APIKey entity.
func newAPIKeyMutation(c config, op Op, opts ...apikeyOption) *APIKeyMutation {
	m := &APIKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIKeyID sets the ID field of the mutation.
func withAPIKeyID(id string) apikeyOption {
	return func(m *APIKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *APIKey
		)
		m.oldValue = func(ctx context.Context) (*APIKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIKey sets the old APIKey of the mutation.
func withAPIKey(node *APIKey) apikeyOption {
	return func(m *APIKeyMutation) {
		m.oldValue = func(context.Context) (*APIKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIKey entities.
func (m *APIKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *APIKeyMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *APIKeyMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *APIKeyMutation) ResetUserID() {
	m.user = nil
}

// SetName sets the "name" field.
func (m *APIKeyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *APIKeyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *APIKeyMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *APIKeyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *APIKeyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *APIKeyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[apikey.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *APIKeyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[apikey.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *APIKeyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, apikey.FieldDescription)
}

// SetKeyHash sets the "key_hash" field.
func (m *APIKeyMutation) SetKeyHash(s string) {
	m.key_hash = &s
}

// KeyHash returns the value of the "key_hash" field in the mutation.
func (m *APIKeyMutation) KeyHash() (r string, exists bool) {
	v := m.key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHash returns the old "key_hash" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHash: %w", err)
	}
	return oldValue.KeyHash, nil
}

// ResetKeyHash resets all changes to the "key_hash" field.
func (m *APIKeyMutation) ResetKeyHash() {
	m.key_hash = nil
}

// SetKeyPrefix sets the "key_prefix" field.
func (m *APIKeyMutation) SetKeyPrefix(s string) {
	m.key_prefix = &s
}

// KeyPrefix returns the value of the "key_prefix" field in the mutation.
func (m *APIKeyMutation) KeyPrefix() (r string, exists bool) {
	v := m.key_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPrefix returns the old "key_prefix" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldKeyPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPrefix: %w", err)
	}
	return oldValue.KeyPrefix, nil
}

// ResetKeyPrefix resets all changes to the "key_prefix" field.
func (m *APIKeyMutation) ResetKeyPrefix() {
	m.key_prefix = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *APIKeyMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *APIKeyMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *APIKeyMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[apikey.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *APIKeyMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[apikey.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *APIKeyMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, apikey.FieldLastUsedAt)
}

// SetRequestCount sets the "request_count" field.
func (m *APIKeyMutation) SetRequestCount(i int) {
	m.request_count = &i
	m.addrequest_count = nil
}

// RequestCount returns the value of the "request_count" field in the mutation.
func (m *APIKeyMutation) RequestCount() (r int, exists bool) {
	v := m.request_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestCount returns the old "request_count" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldRequestCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestCount: %w", err)
	}
	return oldValue.RequestCount, nil
}

// AddRequestCount adds i to the "request_count" field.
func (m *APIKeyMutation) AddRequestCount(i int) {
	if m.addrequest_count != nil {
		*m.addrequest_count += i
	} else {
		m.addrequest_count = &i
	}
}

// AddedRequestCount returns the value that was added to the "request_count" field in this mutation.
func (m *APIKeyMutation) AddedRequestCount() (r int, exists bool) {
	v := m.addrequest_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestCount resets all changes to the "request_count" field.
func (m *APIKeyMutation) ResetRequestCount() {
	m.request_count = nil
	m.addrequest_count = nil
}

// SetIsActive sets the "is_active" field.
func (m *APIKeyMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *APIKeyMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *APIKeyMutation) ResetIsActive() {
	m.is_active = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *APIKeyMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *APIKeyMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *APIKeyMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[apikey.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *APIKeyMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[apikey.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *APIKeyMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, apikey.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *APIKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *APIKeyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *APIKeyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *APIKeyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *APIKeyMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[apikey.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *APIKeyMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *APIKeyMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *APIKeyMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the APIKeyMutation builder.
func (m *APIKeyMutation) Where(ps ...predicate.APIKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIKey).
func (m *APIKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIKeyMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user != nil {
		fields = append(fields, apikey.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, apikey.FieldName)
	}
	if m.description != nil {
		fields = append(fields, apikey.FieldDescription)
	}
	if m.key_hash != nil {
		fields = append(fields, apikey.FieldKeyHash)
	}
	if m.key_prefix != nil {
		fields = append(fields, apikey.FieldKeyPrefix)
	}
	if m.last_used_at != nil {
		fields = append(fields, apikey.FieldLastUsedAt)
	}
	if m.request_count != nil {
		fields = append(fields, apikey.FieldRequestCount)
	}
	if m.is_active != nil {
		fields = append(fields, apikey.FieldIsActive)
	}
	if m.expires_at != nil {
		fields = append(fields, apikey.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, apikey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, apikey.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldUserID:
		return m.UserID()
	case apikey.FieldName:
		return m.Name()
	case apikey.FieldDescription:
		return m.Description()
	case apikey.FieldKeyHash:
		return m.KeyHash()
	case apikey.FieldKeyPrefix:
		return m.KeyPrefix()
	case apikey.FieldLastUsedAt:
		return m.LastUsedAt()
	case apikey.FieldRequestCount:
		return m.RequestCount()
	case apikey.FieldIsActive:
		return m.IsActive()
	case apikey.FieldExpiresAt:
		return m.ExpiresAt()
	case apikey.FieldCreatedAt:
		return m.CreatedAt()
	case apikey.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apikey.FieldUserID:
		return m.OldUserID(ctx)
	case apikey.FieldName:
		return m.OldName(ctx)
	case apikey.FieldDescription:
		return m.OldDescription(ctx)
	case apikey.FieldKeyHash:
		return m.OldKeyHash(ctx)
	case apikey.FieldKeyPrefix:
		return m.OldKeyPrefix(ctx)
	case apikey.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case apikey.FieldRequestCount:
		return m.OldRequestCount(ctx)
	case apikey.FieldIsActive:
		return m.OldIsActive(ctx)
	case apikey.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case apikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case apikey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case apikey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case apikey.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case apikey.FieldKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHash(v)
		return nil
	case apikey.FieldKeyPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPrefix(v)
		return nil
	case apikey.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case apikey.FieldRequestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestCount(v)
		return nil
	case apikey.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case apikey.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case apikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case apikey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIKeyMutation) AddedFields() []string {
	var fields []string
	if m.addrequest_count != nil {
		fields = append(fields, apikey.FieldRequestCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIKeyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldRequestCount:
		return m.AddedRequestCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldRequestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestCount(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apikey.FieldDescription) {
		fields = append(fields, apikey.FieldDescription)
	}
	if m.FieldCleared(apikey.FieldLastUsedAt) {
		fields = append(fields, apikey.FieldLastUsedAt)
	}
	if m.FieldCleared(apikey.FieldExpiresAt) {
		fields = append(fields, apikey.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIKeyMutation) ClearField(name string) error {
	switch name {
	case apikey.FieldDescription:
		m.ClearDescription()
		return nil
	case apikey.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case apikey.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIKeyMutation) ResetField(name string) error {
	switch name {
	case apikey.FieldUserID:
		m.ResetUserID()
		return nil
	case apikey.FieldName:
		m.ResetName()
		return nil
	case apikey.FieldDescription:
		m.ResetDescription()
		return nil
	case apikey.FieldKeyHash:
		m.ResetKeyHash()
		return nil
	case apikey.FieldKeyPrefix:
		m.ResetKeyPrefix()
		return nil
	case apikey.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case apikey.FieldRequestCount:
		m.ResetRequestCount()
		return nil
	case apikey.FieldIsActive:
		m.ResetIsActive()
		return nil
	case apikey.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case apikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case apikey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, apikey.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIKeyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case apikey.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, apikey.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIKeyMutation) EdgeCleared(name string) bool {
	switch name {
	case apikey.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIKeyMutation) ClearEdge(name string) error {
	switch name {
	case apikey.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown APIKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIKeyMutation) ResetEdge(name string) error {
	switch name {
	case apikey.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown APIKey edge %s", name)
}

// AnimaMutation represents an operation that mutates the Anima nodes in the graph.
type AnimaMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	organization_id         *string
	name                    *string
	description             *string
	metadata                *map[string]interface{}
	is_dormant              *bool
	last_activity_at        *time.Time
	is_deleted              *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	user                    *string
	cleareduser             bool
	events                  map[string]struct{}
	removedevents           map[string]struct{}
	clearedevents           bool
	memories                map[string]struct{}
	removedmemories         map[string]struct{}
	clearedmemories         bool
	knowledge               map[string]struct{}
	removedknowledge        map[string]struct{}
	clearedknowledge        bool
	identity                *string
	clearedidentity         bool
	synthesis_config        *string
	clearedsynthesis_config bool
	io_config               *string
	clearedio_config        bool
	memory_packs            map[string]struct{}
	removedmemory_packs     map[string]struct{}
	clearedmemory_packs     bool
	dream_sessions          map[string]struct{}
	removeddream_sessions   map[string]struct{}
	cleareddream_sessions   bool
	done                    bool
	oldValue                func(context.Context) (*Anima, error)
	predicates              []predicate.Anima
}

var _ ent.Mutation = (*AnimaMutation)(nil)

// animaOption allows management of the mutation configuration using functional options.
type animaOption func(*AnimaMutation)

// newAnimaMutation creates new mutation for the Anima entity.
func newAnimaMutation(c config, op Op, opts ...animaOption) *AnimaMutation {
	m := &AnimaMutation{
		config:        c,
		op:            op,
		typ:           TypeAnima,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnimaID sets the ID field of the mutation.
func withAnimaID(id string) animaOption {
	return func(m *AnimaMutation) {
		var (
			err   error
			once  sync.Once
			value *Anima
		)
		m.oldValue = func(ctx context.Context) (*Anima, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Anima.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnima sets the old Anima of the mutation.
func withAnima(node *Anima) animaOption {
	return func(m *AnimaMutation) {
		m.oldValue = func(context.Context) (*Anima, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnimaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnimaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Anima entities.
func (m *AnimaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnimaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnimaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Anima.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AnimaMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnimaMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnimaMutation) ResetUserID() {
	m.user = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *AnimaMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *AnimaMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *AnimaMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetName sets the "name" field.
func (m *AnimaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AnimaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AnimaMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AnimaMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AnimaMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AnimaMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[anima.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AnimaMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[anima.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AnimaMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, anima.FieldDescription)
}

// SetMetadata sets the "metadata" field.
func (m *AnimaMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AnimaMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AnimaMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[anima.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AnimaMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[anima.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AnimaMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, anima.FieldMetadata)
}

// SetIsDormant sets the "is_dormant" field.
func (m *AnimaMutation) SetIsDormant(b bool) {
	m.is_dormant = &b
}

// IsDormant returns the value of the "is_dormant" field in the mutation.
func (m *AnimaMutation) IsDormant() (r bool, exists bool) {
	v := m.is_dormant
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDormant returns the old "is_dormant" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldIsDormant(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDormant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDormant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDormant: %w", err)
	}
	return oldValue.IsDormant, nil
}

// ResetIsDormant resets all changes to the "is_dormant" field.
func (m *AnimaMutation) ResetIsDormant() {
	m.is_dormant = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *AnimaMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *AnimaMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *AnimaMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[anima.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *AnimaMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[anima.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *AnimaMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, anima.FieldLastActivityAt)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *AnimaMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *AnimaMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *AnimaMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnimaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnimaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnimaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnimaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnimaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Anima entity.
// If the Anima object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnimaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnimaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AnimaMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[anima.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AnimaMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AnimaMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AnimaMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *AnimaMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *AnimaMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *AnimaMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *AnimaMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *AnimaMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *AnimaMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *AnimaMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddMemoryIDs adds the "memories" edge to the Memory entity by ids.
func (m *AnimaMutation) AddMemoryIDs(ids ...string) {
	if m.memories == nil {
		m.memories = make(map[string]struct{})
	}
	for i := range ids {
		m.memories[ids[i]] = struct{}{}
	}
}

// ClearMemories clears the "memories" edge to the Memory entity.
func (m *AnimaMutation) ClearMemories() {
	m.clearedmemories = true
}

// MemoriesCleared reports if the "memories" edge to the Memory entity was cleared.
func (m *AnimaMutation) MemoriesCleared() bool {
	return m.clearedmemories
}

// RemoveMemoryIDs removes the "memories" edge to the Memory entity by IDs.
func (m *AnimaMutation) RemoveMemoryIDs(ids ...string) {
	if m.removedmemories == nil {
		m.removedmemories = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memories, ids[i])
		m.removedmemories[ids[i]] = struct{}{}
	}
}

// RemovedMemories returns the removed IDs of the "memories" edge to the Memory entity.
func (m *AnimaMutation) RemovedMemoriesIDs() (ids []string) {
	for id := range m.removedmemories {
		ids = append(ids, id)
	}
	return
}

// MemoriesIDs returns the "memories" edge IDs in the mutation.
func (m *AnimaMutation) MemoriesIDs() (ids []string) {
	for id := range m.memories {
		ids = append(ids, id)
	}
	return
}

// ResetMemories resets all changes to the "memories" edge.
func (m *AnimaMutation) ResetMemories() {
	m.memories = nil
	m.clearedmemories = false
	m.removedmemories = nil
}

// AddKnowledgeIDs adds the "knowledge" edge to the Knowledge entity by ids.
func (m *AnimaMutation) AddKnowledgeIDs(ids ...string) {
	if m.knowledge == nil {
		m.knowledge = make(map[string]struct{})
	}
	for i := range ids {
		m.knowledge[ids[i]] = struct{}{}
	}
}

// ClearKnowledge clears the "knowledge" edge to the Knowledge entity.
func (m *AnimaMutation) ClearKnowledge() {
	m.clearedknowledge = true
}

// KnowledgeCleared reports if the "knowledge" edge to the Knowledge entity was cleared.
func (m *AnimaMutation) KnowledgeCleared() bool {
	return m.clearedknowledge
}

// RemoveKnowledgeIDs removes the "knowledge" edge to the Knowledge entity by IDs.
func (m *AnimaMutation) RemoveKnowledgeIDs(ids ...string) {
	if m.removedknowledge == nil {
		m.removedknowledge = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.knowledge, ids[i])
		m.removedknowledge[ids[i]] = struct{}{}
	}
}

// RemovedKnowledge returns the removed IDs of the "knowledge" edge to the Knowledge entity.
func (m *AnimaMutation) RemovedKnowledgeIDs() (ids []string) {
	for id := range m.removedknowledge {
		ids = append(ids, id)
	}
	return
}

// KnowledgeIDs returns the "knowledge" edge IDs in the mutation.
func (m *AnimaMutation) KnowledgeIDs() (ids []string) {
	for id := range m.knowledge {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledge resets all changes to the "knowledge" edge.
func (m *AnimaMutation) ResetKnowledge() {
	m.knowledge = nil
	m.clearedknowledge = false
	m.removedknowledge = nil
}

// SetIdentityID sets the "identity" edge to the Identity entity by id.
func (m *AnimaMutation) SetIdentityID(id string) {
	m.identity = &id
}

// ClearIdentity clears the "identity" edge to the Identity entity.
func (m *AnimaMutation) ClearIdentity() {
	m.clearedidentity = true
}

// IdentityCleared reports if the "identity" edge to the Identity entity was cleared.
func (m *AnimaMutation) IdentityCleared() bool {
	return m.clearedidentity
}

// IdentityID returns the "identity" edge ID in the mutation.
func (m *AnimaMutation) IdentityID() (id string, exists bool) {
	if m.identity != nil {
		return *m.identity, true
	}
	return
}

// IdentityIDs returns the "identity" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IdentityID instead. It exists only for internal usage by the builders.
func (m *AnimaMutation) IdentityIDs() (ids []string) {
	if id := m.identity; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIdentity resets all changes to the "identity" edge.
func (m *AnimaMutation) ResetIdentity() {
	m.identity = nil
	m.clearedidentity = false
}

// SetSynthesisConfigID sets the "synthesis_config" edge to the SynthesisConfig entity by id.
func (m *AnimaMutation) SetSynthesisConfigID(id string) {
	m.synthesis_config = &id
}

// ClearSynthesisConfig clears the "synthesis_config" edge to the SynthesisConfig entity.
func (m *AnimaMutation) ClearSynthesisConfig() {
	m.clearedsynthesis_config = true
}

// SynthesisConfigCleared reports if the "synthesis_config" edge to the SynthesisConfig entity was cleared.
func (m *AnimaMutation) SynthesisConfigCleared() bool {
	return m.clearedsynthesis_config
}

// SynthesisConfigID returns the "synthesis_config" edge ID in the mutation.
func (m *AnimaMutation) SynthesisConfigID() (id string, exists bool) {
	if m.synthesis_config != nil {
		return *m.synthesis_config, true
	}
	return
}

// SynthesisConfigIDs returns the "synthesis_config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SynthesisConfigID instead. It exists only for internal usage by the builders.
func (m *AnimaMutation) SynthesisConfigIDs() (ids []string) {
	if id := m.synthesis_config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSynthesisConfig resets all changes to the "synthesis_config" edge.
func (m *AnimaMutation) ResetSynthesisConfig() {
	m.synthesis_config = nil
	m.clearedsynthesis_config = false
}

// SetIoConfigID sets the "io_config" edge to the IOConfig entity by id.
func (m *AnimaMutation) SetIoConfigID(id string) {
	m.io_config = &id
}

// ClearIoConfig clears the "io_config" edge to the IOConfig entity.
func (m *AnimaMutation) ClearIoConfig() {
	m.clearedio_config = true
}

// IoConfigCleared reports if the "io_config" edge to the IOConfig entity was cleared.
func (m *AnimaMutation) IoConfigCleared() bool {
	return m.clearedio_config
}

// IoConfigID returns the "io_config" edge ID in the mutation.
func (m *AnimaMutation) IoConfigID() (id string, exists bool) {
	if m.io_config != nil {
		return *m.io_config, true
	}
	return
}

// IoConfigIDs returns the "io_config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IoConfigID instead. It exists only for internal usage by the builders.
func (m *AnimaMutation) IoConfigIDs() (ids []string) {
	if id := m.io_config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIoConfig resets all changes to the "io_config" edge.
func (m *AnimaMutation) ResetIoConfig() {
	m.io_config = nil
	m.clearedio_config = false
}

// AddMemoryPackIDs adds the "memory_packs" edge to the MemoryPack entity by ids.
func (m *AnimaMutation) AddMemoryPackIDs(ids ...string) {
	if m.memory_packs == nil {
		m.memory_packs = make(map[string]struct{})
	}
	for i := range ids {
		m.memory_packs[ids[i]] = struct{}{}
	}
}

// ClearMemoryPacks clears the "memory_packs" edge to the MemoryPack entity.
func (m *AnimaMutation) ClearMemoryPacks() {
	m.clearedmemory_packs = true
}

// MemoryPacksCleared reports if the "memory_packs" edge to the MemoryPack entity was cleared.
func (m *AnimaMutation) MemoryPacksCleared() bool {
	return m.clearedmemory_packs
}

// RemoveMemoryPackIDs removes the "memory_packs" edge to the MemoryPack entity by IDs.
func (m *AnimaMutation) RemoveMemoryPackIDs(ids ...string) {
	if m.removedmemory_packs == nil {
		m.removedmemory_packs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memory_packs, ids[i])
		m.removedmemory_packs[ids[i]] = struct{}{}
	}
}

// RemovedMemoryPacks returns the removed IDs of the "memory_packs" edge to the MemoryPack entity.
func (m *AnimaMutation) RemovedMemoryPacksIDs() (ids []string) {
	for id := range m.removedmemory_packs {
		ids = append(ids, id)
	}
	return
}

// MemoryPacksIDs returns the "memory_packs" edge IDs in the mutation.
func (m *AnimaMutation) MemoryPacksIDs() (ids []string) {
	for id := range m.memory_packs {
		ids = append(ids, id)
	}
	return
}

// ResetMemoryPacks resets all changes to the "memory_packs" edge.
func (m *AnimaMutation) ResetMemoryPacks() {
	m.memory_packs = nil
	m.clearedmemory_packs = false
	m.removedmemory_packs = nil
}

// AddDreamSessionIDs adds the "dream_sessions" edge to the DreamSession entity by ids.
func (m *AnimaMutation) AddDreamSessionIDs(ids ...string) {
	if m.dream_sessions == nil {
		m.dream_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.dream_sessions[ids[i]] = struct{}{}
	}
}

// ClearDreamSessions clears the "dream_sessions" edge to the DreamSession entity.
func (m *AnimaMutation) ClearDreamSessions() {
	m.cleareddream_sessions = true
}

// DreamSessionsCleared reports if the "dream_sessions" edge to the DreamSession entity was cleared.
func (m *AnimaMutation) DreamSessionsCleared() bool {
	return m.cleareddream_sessions
}

// RemoveDreamSessionIDs removes the "dream_sessions" edge to the DreamSession entity by IDs.
func (m *AnimaMutation) RemoveDreamSessionIDs(ids ...string) {
	if m.removeddream_sessions == nil {
		m.removeddream_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dream_sessions, ids[i])
		m.removeddream_sessions[ids[i]] = struct{}{}
	}
}

// RemovedDreamSessions returns the removed IDs of the "dream_sessions" edge to the DreamSession entity.
func (m *AnimaMutation) RemovedDreamSessionsIDs() (ids []string) {
	for id := range m.removeddream_sessions {
		ids = append(ids, id)
	}
	return
}

// DreamSessionsIDs returns the "dream_sessions" edge IDs in the mutation.
func (m *AnimaMutation) DreamSessionsIDs() (ids []string) {
	for id := range m.dream_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetDreamSessions resets all changes to the "dream_sessions" edge.
func (m *AnimaMutation) ResetDreamSessions() {
	m.dream_sessions = nil
	m.cleareddream_sessions = false
	m.removeddream_sessions = nil
}

// Where appends a list predicates to the AnimaMutation builder.
func (m *AnimaMutation) Where(ps ...predicate.Anima) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnimaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnimaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Anima, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnimaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnimaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Anima).
func (m *AnimaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnimaMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user != nil {
		fields = append(fields, anima.FieldUserID)
	}
	if m.organization_id != nil {
		fields = append(fields, anima.FieldOrganizationID)
	}
	if m.name != nil {
		fields = append(fields, anima.FieldName)
	}
	if m.description != nil {
		fields = append(fields, anima.FieldDescription)
	}
	if m.metadata != nil {
		fields = append(fields, anima.FieldMetadata)
	}
	if m.is_dormant != nil {
		fields = append(fields, anima.FieldIsDormant)
	}
	if m.last_activity_at != nil {
		fields = append(fields, anima.FieldLastActivityAt)
	}
	if m.is_deleted != nil {
		fields = append(fields, anima.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, anima.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, anima.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnimaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case anima.FieldUserID:
		return m.UserID()
	case anima.FieldOrganizationID:
		return m.OrganizationID()
	case anima.FieldName:
		return m.Name()
	case anima.FieldDescription:
		return m.Description()
	case anima.FieldMetadata:
		return m.Metadata()
	case anima.FieldIsDormant:
		return m.IsDormant()
	case anima.FieldLastActivityAt:
		return m.LastActivityAt()
	case anima.FieldIsDeleted:
		return m.IsDeleted()
	case anima.FieldCreatedAt:
		return m.CreatedAt()
	case anima.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnimaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case anima.FieldUserID:
		return m.OldUserID(ctx)
	case anima.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case anima.FieldName:
		return m.OldName(ctx)
	case anima.FieldDescription:
		return m.OldDescription(ctx)
	case anima.FieldMetadata:
		return m.OldMetadata(ctx)
	case anima.FieldIsDormant:
		return m.OldIsDormant(ctx)
	case anima.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case anima.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case anima.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case anima.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Anima field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnimaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case anima.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case anima.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case anima.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case anima.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case anima.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case anima.FieldIsDormant:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDormant(v)
		return nil
	case anima.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case anima.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case anima.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case anima.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Anima field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnimaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnimaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnimaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Anima numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnimaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(anima.FieldDescription) {
		fields = append(fields, anima.FieldDescription)
	}
	if m.FieldCleared(anima.FieldMetadata) {
		fields = append(fields, anima.FieldMetadata)
	}
	if m.FieldCleared(anima.FieldLastActivityAt) {
		fields = append(fields, anima.FieldLastActivityAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnimaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnimaMutation) ClearField(name string) error {
	switch name {
	case anima.FieldDescription:
		m.ClearDescription()
		return nil
	case anima.FieldMetadata:
		m.ClearMetadata()
		return nil
	case anima.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Anima nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnimaMutation) ResetField(name string) error {
	switch name {
	case anima.FieldUserID:
		m.ResetUserID()
		return nil
	case anima.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case anima.FieldName:
		m.ResetName()
		return nil
	case anima.FieldDescription:
		m.ResetDescription()
		return nil
	case anima.FieldMetadata:
		m.ResetMetadata()
		return nil
	case anima.FieldIsDormant:
		m.ResetIsDormant()
		return nil
	case anima.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case anima.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case anima.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case anima.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Anima field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnimaMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.user != nil {
		edges = append(edges, anima.EdgeUser)
	}
	if m.events != nil {
		edges = append(edges, anima.EdgeEvents)
	}
	if m.memories != nil {
		edges = append(edges, anima.EdgeMemories)
	}
	if m.knowledge != nil {
		edges = append(edges, anima.EdgeKnowledge)
	}
	if m.identity != nil {
		edges = append(edges, anima.EdgeIdentity)
	}
	if m.synthesis_config != nil {
		edges = append(edges, anima.EdgeSynthesisConfig)
	}
	if m.io_config != nil {
		edges = append(edges, anima.EdgeIoConfig)
	}
	if m.memory_packs != nil {
		edges = append(edges, anima.EdgeMemoryPacks)
	}
	if m.dream_sessions != nil {
		edges = append(edges, anima.EdgeDreamSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnimaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case anima.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case anima.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case anima.EdgeMemories:
		ids := make([]ent.Value, 0, len(m.memories))
		for id := range m.memories {
			ids = append(ids, id)
		}
		return ids
	case anima.EdgeKnowledge:
		ids := make([]ent.Value, 0, len(m.knowledge))
		for id := range m.knowledge {
			ids = append(ids, id)
		}
		return ids
	case anima.EdgeIdentity:
		if id := m.identity; id != nil {
			return []ent.Value{*id}
		}
	case anima.EdgeSynthesisConfig:
		if id := m.synthesis_config; id != nil {
			return []ent.Value{*id}
		}
	case anima.EdgeIoConfig:
		if id := m.io_config; id != nil {
			return []ent.Value{*id}
		}
	case anima.EdgeMemoryPacks:
		ids := make([]ent.Value, 0, len(m.memory_packs))
		for id := range m.memory_packs {
			ids = append(ids, id)
		}
		return ids
	case anima.EdgeDreamSessions:
		ids := make([]ent.Value, 0, len(m.dream_sessions))
		for id := range m.dream_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnimaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedevents != nil {
		edges = append(edges, anima.EdgeEvents)
	}
	if m.removedmemories != nil {
		edges = append(edges, anima.EdgeMemories)
	}
	if m.removedknowledge != nil {
		edges = append(edges, anima.EdgeKnowledge)
	}
	if m.removedmemory_packs != nil {
		edges = append(edges, anima.EdgeMemoryPacks)
	}
	if m.removeddream_sessions != nil {
		edges = append(edges, anima.EdgeDreamSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnimaMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case anima.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case anima.EdgeMemories:
		ids := make([]ent.Value, 0, len(m.removedmemories))
		for id := range m.removedmemories {
			ids = append(ids, id)
		}
		return ids
	case anima.EdgeKnowledge:
		ids := make([]ent.Value, 0, len(m.removedknowledge))
		for id := range m.removedknowledge {
			ids = append(ids, id)
		}
		return ids
	case anima.EdgeMemoryPacks:
		ids := make([]ent.Value, 0, len(m.removedmemory_packs))
		for id := range m.removedmemory_packs {
			ids = append(ids, id)
		}
		return ids
	case anima.EdgeDreamSessions:
		ids := make([]ent.Value, 0, len(m.removeddream_sessions))
		for id := range m.removeddream_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnimaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.cleareduser {
		edges = append(edges, anima.EdgeUser)
	}
	if m.clearedevents {
		edges = append(edges, anima.EdgeEvents)
	}
	if m.clearedmemories {
		edges = append(edges, anima.EdgeMemories)
	}
	if m.clearedknowledge {
		edges = append(edges, anima.EdgeKnowledge)
	}
	if m.clearedidentity {
		edges = append(edges, anima.EdgeIdentity)
	}
	if m.clearedsynthesis_config {
		edges = append(edges, anima.EdgeSynthesisConfig)
	}
	if m.clearedio_config {
		edges = append(edges, anima.EdgeIoConfig)
	}
	if m.clearedmemory_packs {
		edges = append(edges, anima.EdgeMemoryPacks)
	}
	if m.cleareddream_sessions {
		edges = append(edges, anima.EdgeDreamSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnimaMutation) EdgeCleared(name string) bool {
	switch name {
	case anima.EdgeUser:
		return m.cleareduser
	case anima.EdgeEvents:
		return m.clearedevents
	case anima.EdgeMemories:
		return m.clearedmemories
	case anima.EdgeKnowledge:
		return m.clearedknowledge
	case anima.EdgeIdentity:
		return m.clearedidentity
	case anima.EdgeSynthesisConfig:
		return m.clearedsynthesis_config
	case anima.EdgeIoConfig:
		return m.clearedio_config
	case anima.EdgeMemoryPacks:
		return m.clearedmemory_packs
	case anima.EdgeDreamSessions:
		return m.cleareddream_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnimaMutation) ClearEdge(name string) error {
	switch name {
	case anima.EdgeUser:
		m.ClearUser()
		return nil
	case anima.EdgeIdentity:
		m.ClearIdentity()
		return nil
	case anima.EdgeSynthesisConfig:
		m.ClearSynthesisConfig()
		return nil
	case anima.EdgeIoConfig:
		m.ClearIoConfig()
		return nil
	}
	return fmt.Errorf("unknown Anima unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnimaMutation) ResetEdge(name string) error {
	switch name {
	case anima.EdgeUser:
		m.ResetUser()
		return nil
	case anima.EdgeEvents:
		m.ResetEvents()
		return nil
	case anima.EdgeMemories:
		m.ResetMemories()
		return nil
	case anima.EdgeKnowledge:
		m.ResetKnowledge()
		return nil
	case anima.EdgeIdentity:
		m.ResetIdentity()
		return nil
	case anima.EdgeSynthesisConfig:
		m.ResetSynthesisConfig()
		return nil
	case anima.EdgeIoConfig:
		m.ResetIoConfig()
		return nil
	case anima.EdgeMemoryPacks:
		m.ResetMemoryPacks()
		return nil
	case anima.EdgeDreamSessions:
		m.ResetDreamSessions()
		return nil
	}
	return fmt.Errorf("unknown Anima edge %s", name)
}

// DreamActionMutation represents an operation that mutates the DreamAction nodes in the graph.
type DreamActionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	action_type             *dreamaction.ActionType
	phase                   *dreamaction.Phase
	source_memory_ids       *[]string
	appendsource_memory_ids []string
	result_memory_ids       *[]string
	appendresult_memory_ids []string
	before_state            *map[string]interface{}
	after_state             *map[string]interface{}
	reasoning               *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	session                 *string
	clearedsession          bool
	done                    bool
	oldValue                func(context.Context) (*DreamAction, error)
	predicates              []predicate.DreamAction
}

var _ ent.Mutation = (*DreamActionMutation)(nil)

// dreamactionOption allows management of the mutation configuration using functional options.
type dreamactionOption func(*DreamActionMutation)

// newDreamActionMutation creates new mutation for the DreamAction entity.
func newDreamActionMutation(c config, op Op, opts ...dreamactionOption) *DreamActionMutation {
	m := &DreamActionMutation{
		config:        c,
		op:            op,
		typ:           TypeDreamAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDreamActionID sets the ID field of the mutation.
func withDreamActionID(id string) dreamactionOption {
	return func(m *DreamActionMutation) {
		var (
			err   error
			once  sync.Once
			value *DreamAction
		)
		m.oldValue = func(ctx context.Context) (*DreamAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DreamAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDreamAction sets the old DreamAction of the mutation.
func withDreamAction(node *DreamAction) dreamactionOption {
	return func(m *DreamActionMutation) {
		m.oldValue = func(context.Context) (*DreamAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DreamActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DreamActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DreamAction entities.
func (m *DreamActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DreamActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DreamActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DreamAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *DreamActionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DreamActionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DreamActionMutation) ResetSessionID() {
	m.session = nil
}

// SetActionType sets the "action_type" field.
func (m *DreamActionMutation) SetActionType(dt dreamaction.ActionType) {
	m.action_type = &dt
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *DreamActionMutation) ActionType() (r dreamaction.ActionType, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldActionType(ctx context.Context) (v dreamaction.ActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *DreamActionMutation) ResetActionType() {
	m.action_type = nil
}

// SetPhase sets the "phase" field.
func (m *DreamActionMutation) SetPhase(d dreamaction.Phase) {
	m.phase = &d
}

// Phase returns the value of the "phase" field in the mutation.
func (m *DreamActionMutation) Phase() (r dreamaction.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldPhase(ctx context.Context) (v dreamaction.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *DreamActionMutation) ResetPhase() {
	m.phase = nil
}

// SetSourceMemoryIds sets the "source_memory_ids" field.
func (m *DreamActionMutation) SetSourceMemoryIds(s []string) {
	m.source_memory_ids = &s
	m.appendsource_memory_ids = nil
}

// SourceMemoryIds returns the value of the "source_memory_ids" field in the mutation.
func (m *DreamActionMutation) SourceMemoryIds() (r []string, exists bool) {
	v := m.source_memory_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMemoryIds returns the old "source_memory_ids" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldSourceMemoryIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMemoryIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMemoryIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMemoryIds: %w", err)
	}
	return oldValue.SourceMemoryIds, nil
}

// AppendSourceMemoryIds adds s to the "source_memory_ids" field.
func (m *DreamActionMutation) AppendSourceMemoryIds(s []string) {
	m.appendsource_memory_ids = append(m.appendsource_memory_ids, s...)
}

// AppendedSourceMemoryIds returns the list of values that were appended to the "source_memory_ids" field in this mutation.
func (m *DreamActionMutation) AppendedSourceMemoryIds() ([]string, bool) {
	if len(m.appendsource_memory_ids) == 0 {
		return nil, false
	}
	return m.appendsource_memory_ids, true
}

// ResetSourceMemoryIds resets all changes to the "source_memory_ids" field.
func (m *DreamActionMutation) ResetSourceMemoryIds() {
	m.source_memory_ids = nil
	m.appendsource_memory_ids = nil
}

// SetResultMemoryIds sets the "result_memory_ids" field.
func (m *DreamActionMutation) SetResultMemoryIds(s []string) {
	m.result_memory_ids = &s
	m.appendresult_memory_ids = nil
}

// ResultMemoryIds returns the value of the "result_memory_ids" field in the mutation.
func (m *DreamActionMutation) ResultMemoryIds() (r []string, exists bool) {
	v := m.result_memory_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldResultMemoryIds returns the old "result_memory_ids" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldResultMemoryIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultMemoryIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultMemoryIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultMemoryIds: %w", err)
	}
	return oldValue.ResultMemoryIds, nil
}

// AppendResultMemoryIds adds s to the "result_memory_ids" field.
func (m *DreamActionMutation) AppendResultMemoryIds(s []string) {
	m.appendresult_memory_ids = append(m.appendresult_memory_ids, s...)
}

// AppendedResultMemoryIds returns the list of values that were appended to the "result_memory_ids" field in this mutation.
func (m *DreamActionMutation) AppendedResultMemoryIds() ([]string, bool) {
	if len(m.appendresult_memory_ids) == 0 {
		return nil, false
	}
	return m.appendresult_memory_ids, true
}

// ClearResultMemoryIds clears the value of the "result_memory_ids" field.
func (m *DreamActionMutation) ClearResultMemoryIds() {
	m.result_memory_ids = nil
	m.appendresult_memory_ids = nil
	m.clearedFields[dreamaction.FieldResultMemoryIds] = struct{}{}
}

// ResultMemoryIdsCleared returns if the "result_memory_ids" field was cleared in this mutation.
func (m *DreamActionMutation) ResultMemoryIdsCleared() bool {
	_, ok := m.clearedFields[dreamaction.FieldResultMemoryIds]
	return ok
}

// ResetResultMemoryIds resets all changes to the "result_memory_ids" field.
func (m *DreamActionMutation) ResetResultMemoryIds() {
	m.result_memory_ids = nil
	m.appendresult_memory_ids = nil
	delete(m.clearedFields, dreamaction.FieldResultMemoryIds)
}

// SetBeforeState sets the "before_state" field.
func (m *DreamActionMutation) SetBeforeState(value map[string]interface{}) {
	m.before_state = &value
}

// BeforeState returns the value of the "before_state" field in the mutation.
func (m *DreamActionMutation) BeforeState() (r map[string]interface{}, exists bool) {
	v := m.before_state
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeState returns the old "before_state" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldBeforeState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeState: %w", err)
	}
	return oldValue.BeforeState, nil
}

// ClearBeforeState clears the value of the "before_state" field.
func (m *DreamActionMutation) ClearBeforeState() {
	m.before_state = nil
	m.clearedFields[dreamaction.FieldBeforeState] = struct{}{}
}

// BeforeStateCleared returns if the "before_state" field was cleared in this mutation.
func (m *DreamActionMutation) BeforeStateCleared() bool {
	_, ok := m.clearedFields[dreamaction.FieldBeforeState]
	return ok
}

// ResetBeforeState resets all changes to the "before_state" field.
func (m *DreamActionMutation) ResetBeforeState() {
	m.before_state = nil
	delete(m.clearedFields, dreamaction.FieldBeforeState)
}

// SetAfterState sets the "after_state" field.
func (m *DreamActionMutation) SetAfterState(value map[string]interface{}) {
	m.after_state = &value
}

// AfterState returns the value of the "after_state" field in the mutation.
func (m *DreamActionMutation) AfterState() (r map[string]interface{}, exists bool) {
	v := m.after_state
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterState returns the old "after_state" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldAfterState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterState: %w", err)
	}
	return oldValue.AfterState, nil
}

// ClearAfterState clears the value of the "after_state" field.
func (m *DreamActionMutation) ClearAfterState() {
	m.after_state = nil
	m.clearedFields[dreamaction.FieldAfterState] = struct{}{}
}

// AfterStateCleared returns if the "after_state" field was cleared in this mutation.
func (m *DreamActionMutation) AfterStateCleared() bool {
	_, ok := m.clearedFields[dreamaction.FieldAfterState]
	return ok
}

// ResetAfterState resets all changes to the "after_state" field.
func (m *DreamActionMutation) ResetAfterState() {
	m.after_state = nil
	delete(m.clearedFields, dreamaction.FieldAfterState)
}

// SetReasoning sets the "reasoning" field.
func (m *DreamActionMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *DreamActionMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *DreamActionMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[dreamaction.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *DreamActionMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[dreamaction.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *DreamActionMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, dreamaction.FieldReasoning)
}

// SetCreatedAt sets the "created_at" field.
func (m *DreamActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DreamActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DreamAction entity.
// If the DreamAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DreamActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the DreamSession entity.
func (m *DreamActionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[dreamaction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the DreamSession entity was cleared.
func (m *DreamActionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *DreamActionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *DreamActionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the DreamActionMutation builder.
func (m *DreamActionMutation) Where(ps ...predicate.DreamAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DreamActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DreamActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DreamAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DreamActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DreamActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DreamAction).
func (m *DreamActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DreamActionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, dreamaction.FieldSessionID)
	}
	if m.action_type != nil {
		fields = append(fields, dreamaction.FieldActionType)
	}
	if m.phase != nil {
		fields = append(fields, dreamaction.FieldPhase)
	}
	if m.source_memory_ids != nil {
		fields = append(fields, dreamaction.FieldSourceMemoryIds)
	}
	if m.result_memory_ids != nil {
		fields = append(fields, dreamaction.FieldResultMemoryIds)
	}
	if m.before_state != nil {
		fields = append(fields, dreamaction.FieldBeforeState)
	}
	if m.after_state != nil {
		fields = append(fields, dreamaction.FieldAfterState)
	}
	if m.reasoning != nil {
		fields = append(fields, dreamaction.FieldReasoning)
	}
	if m.created_at != nil {
		fields = append(fields, dreamaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DreamActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dreamaction.FieldSessionID:
		return m.SessionID()
	case dreamaction.FieldActionType:
		return m.ActionType()
	case dreamaction.FieldPhase:
		return m.Phase()
	case dreamaction.FieldSourceMemoryIds:
		return m.SourceMemoryIds()
	case dreamaction.FieldResultMemoryIds:
		return m.ResultMemoryIds()
	case dreamaction.FieldBeforeState:
		return m.BeforeState()
	case dreamaction.FieldAfterState:
		return m.AfterState()
	case dreamaction.FieldReasoning:
		return m.Reasoning()
	case dreamaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DreamActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dreamaction.FieldSessionID:
		return m.OldSessionID(ctx)
	case dreamaction.FieldActionType:
		return m.OldActionType(ctx)
	case dreamaction.FieldPhase:
		return m.OldPhase(ctx)
	case dreamaction.FieldSourceMemoryIds:
		return m.OldSourceMemoryIds(ctx)
	case dreamaction.FieldResultMemoryIds:
		return m.OldResultMemoryIds(ctx)
	case dreamaction.FieldBeforeState:
		return m.OldBeforeState(ctx)
	case dreamaction.FieldAfterState:
		return m.OldAfterState(ctx)
	case dreamaction.FieldReasoning:
		return m.OldReasoning(ctx)
	case dreamaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DreamAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DreamActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dreamaction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case dreamaction.FieldActionType:
		v, ok := value.(dreamaction.ActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case dreamaction.FieldPhase:
		v, ok := value.(dreamaction.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case dreamaction.FieldSourceMemoryIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMemoryIds(v)
		return nil
	case dreamaction.FieldResultMemoryIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultMemoryIds(v)
		return nil
	case dreamaction.FieldBeforeState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeState(v)
		return nil
	case dreamaction.FieldAfterState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterState(v)
		return nil
	case dreamaction.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case dreamaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DreamAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DreamActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DreamActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DreamActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DreamAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DreamActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dreamaction.FieldResultMemoryIds) {
		fields = append(fields, dreamaction.FieldResultMemoryIds)
	}
	if m.FieldCleared(dreamaction.FieldBeforeState) {
		fields = append(fields, dreamaction.FieldBeforeState)
	}
	if m.FieldCleared(dreamaction.FieldAfterState) {
		fields = append(fields, dreamaction.FieldAfterState)
	}
	if m.FieldCleared(dreamaction.FieldReasoning) {
		fields = append(fields, dreamaction.FieldReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DreamActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DreamActionMutation) ClearField(name string) error {
	switch name {
	case dreamaction.FieldResultMemoryIds:
		m.ClearResultMemoryIds()
		return nil
	case dreamaction.FieldBeforeState:
		m.ClearBeforeState()
		return nil
	case dreamaction.FieldAfterState:
		m.ClearAfterState()
		return nil
	case dreamaction.FieldReasoning:
		m.ClearReasoning()
		return nil
	}
	return fmt.Errorf("unknown DreamAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DreamActionMutation) ResetField(name string) error {
	switch name {
	case dreamaction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case dreamaction.FieldActionType:
		m.ResetActionType()
		return nil
	case dreamaction.FieldPhase:
		m.ResetPhase()
		return nil
	case dreamaction.FieldSourceMemoryIds:
		m.ResetSourceMemoryIds()
		return nil
	case dreamaction.FieldResultMemoryIds:
		m.ResetResultMemoryIds()
		return nil
	case dreamaction.FieldBeforeState:
		m.ResetBeforeState()
		return nil
	case dreamaction.FieldAfterState:
		m.ResetAfterState()
		return nil
	case dreamaction.FieldReasoning:
		m.ResetReasoning()
		return nil
	case dreamaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DreamAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DreamActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, dreamaction.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DreamActionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dreamaction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DreamActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DreamActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DreamActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, dreamaction.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DreamActionMutation) EdgeCleared(name string) bool {
	switch name {
	case dreamaction.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DreamActionMutation) ClearEdge(name string) error {
	switch name {
	case dreamaction.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown DreamAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DreamActionMutation) ResetEdge(name string) error {
	switch name {
	case dreamaction.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown DreamAction edge %s", name)
}

// DreamSessionMutation represents an operation that mutates the DreamSession nodes in the graph.
type DreamSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	trigger_type         *dreamsession.TriggerType
	triggered_by         *string
	started_at           *time.Time
	completed_at         *time.Time
	status               *dreamsession.Status
	error_message        *string
	memories_reviewed    *int
	addmemories_reviewed *int
	memories_modified    *int
	addmemories_modified *int
	memories_created     *int
	addmemories_created  *int
	memories_archived    *int
	addmemories_archived *int
	memories_deleted     *int
	addmemories_deleted  *int
	summary              *string
	config_snapshot      *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	anima                *string
	clearedanima         bool
	actions              map[string]struct{}
	removedactions       map[string]struct{}
	clearedactions       bool
	done                 bool
	oldValue             func(context.Context) (*DreamSession, error)
	predicates           []predicate.DreamSession
}

var _ ent.Mutation = (*DreamSessionMutation)(nil)

// dreamsessionOption allows management of the mutation configuration using functional options.
type dreamsessionOption func(*DreamSessionMutation)

// newDreamSessionMutation creates new mutation for the DreamSession entity.
func newDreamSessionMutation(c config, op Op, opts ...dreamsessionOption) *DreamSessionMutation {
	m := &DreamSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeDreamSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDreamSessionID sets the ID field of the mutation.
func withDreamSessionID(id string) dreamsessionOption {
	return func(m *DreamSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *DreamSession
		)
		m.oldValue = func(ctx context.Context) (*DreamSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DreamSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDreamSession sets the old DreamSession of the mutation.
func withDreamSession(node *DreamSession) dreamsessionOption {
	return func(m *DreamSessionMutation) {
		m.oldValue = func(context.Context) (*DreamSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DreamSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DreamSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DreamSession entities.
func (m *DreamSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DreamSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DreamSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DreamSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnimaID sets the "anima_id" field.
func (m *DreamSessionMutation) SetAnimaID(s string) {
	m.anima = &s
}

// AnimaID returns the value of the "anima_id" field in the mutation.
func (m *DreamSessionMutation) AnimaID() (r string, exists bool) {
	v := m.anima
	if v == nil {
		return
	}
	return *v, true
}

// OldAnimaID returns the old "anima_id" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldAnimaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnimaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnimaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnimaID: %w", err)
	}
	return oldValue.AnimaID, nil
}

// ResetAnimaID resets all changes to the "anima_id" field.
func (m *DreamSessionMutation) ResetAnimaID() {
	m.anima = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *DreamSessionMutation) SetTriggerType(dt dreamsession.TriggerType) {
	m.trigger_type = &dt
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *DreamSessionMutation) TriggerType() (r dreamsession.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldTriggerType(ctx context.Context) (v dreamsession.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *DreamSessionMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *DreamSessionMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *DreamSessionMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldTriggeredBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (m *DreamSessionMutation) ClearTriggeredBy() {
	m.triggered_by = nil
	m.clearedFields[dreamsession.FieldTriggeredBy] = struct{}{}
}

// TriggeredByCleared returns if the "triggered_by" field was cleared in this mutation.
func (m *DreamSessionMutation) TriggeredByCleared() bool {
	_, ok := m.clearedFields[dreamsession.FieldTriggeredBy]
	return ok
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *DreamSessionMutation) ResetTriggeredBy() {
	m.triggered_by = nil
	delete(m.clearedFields, dreamsession.FieldTriggeredBy)
}

// SetStartedAt sets the "started_at" field.
func (m *DreamSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DreamSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DreamSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DreamSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DreamSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DreamSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[dreamsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DreamSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[dreamsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DreamSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, dreamsession.FieldCompletedAt)
}

// SetStatus sets the "status" field.
func (m *DreamSessionMutation) SetStatus(d dreamsession.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DreamSessionMutation) Status() (r dreamsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldStatus(ctx context.Context) (v dreamsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DreamSessionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DreamSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DreamSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DreamSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[dreamsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DreamSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[dreamsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DreamSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, dreamsession.FieldErrorMessage)
}

// SetMemoriesReviewed sets the "memories_reviewed" field.
func (m *DreamSessionMutation) SetMemoriesReviewed(i int) {
	m.memories_reviewed = &i
	m.addmemories_reviewed = nil
}

// MemoriesReviewed returns the value of the "memories_reviewed" field in the mutation.
func (m *DreamSessionMutation) MemoriesReviewed() (r int, exists bool) {
	v := m.memories_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoriesReviewed returns the old "memories_reviewed" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldMemoriesReviewed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoriesReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoriesReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoriesReviewed: %w", err)
	}
	return oldValue.MemoriesReviewed, nil
}

// AddMemoriesReviewed adds i to the "memories_reviewed" field.
func (m *DreamSessionMutation) AddMemoriesReviewed(i int) {
	if m.addmemories_reviewed != nil {
		*m.addmemories_reviewed += i
	} else {
		m.addmemories_reviewed = &i
	}
}

// AddedMemoriesReviewed returns the value that was added to the "memories_reviewed" field in this mutation.
func (m *DreamSessionMutation) AddedMemoriesReviewed() (r int, exists bool) {
	v := m.addmemories_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoriesReviewed resets all changes to the "memories_reviewed" field.
func (m *DreamSessionMutation) ResetMemoriesReviewed() {
	m.memories_reviewed = nil
	m.addmemories_reviewed = nil
}

// SetMemoriesModified sets the "memories_modified" field.
func (m *DreamSessionMutation) SetMemoriesModified(i int) {
	m.memories_modified = &i
	m.addmemories_modified = nil
}

// MemoriesModified returns the value of the "memories_modified" field in the mutation.
func (m *DreamSessionMutation) MemoriesModified() (r int, exists bool) {
	v := m.memories_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoriesModified returns the old "memories_modified" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldMemoriesModified(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoriesModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoriesModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoriesModified: %w", err)
	}
	return oldValue.MemoriesModified, nil
}

// AddMemoriesModified adds i to the "memories_modified" field.
func (m *DreamSessionMutation) AddMemoriesModified(i int) {
	if m.addmemories_modified != nil {
		*m.addmemories_modified += i
	} else {
		m.addmemories_modified = &i
	}
}

// AddedMemoriesModified returns the value that was added to the "memories_modified" field in this mutation.
func (m *DreamSessionMutation) AddedMemoriesModified() (r int, exists bool) {
	v := m.addmemories_modified
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoriesModified resets all changes to the "memories_modified" field.
func (m *DreamSessionMutation) ResetMemoriesModified() {
	m.memories_modified = nil
	m.addmemories_modified = nil
}

// SetMemoriesCreated sets the "memories_created" field.
func (m *DreamSessionMutation) SetMemoriesCreated(i int) {
	m.memories_created = &i
	m.addmemories_created = nil
}

// MemoriesCreated returns the value of the "memories_created" field in the mutation.
func (m *DreamSessionMutation) MemoriesCreated() (r int, exists bool) {
	v := m.memories_created
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoriesCreated returns the old "memories_created" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldMemoriesCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoriesCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoriesCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoriesCreated: %w", err)
	}
	return oldValue.MemoriesCreated, nil
}

// AddMemoriesCreated adds i to the "memories_created" field.
func (m *DreamSessionMutation) AddMemoriesCreated(i int) {
	if m.addmemories_created != nil {
		*m.addmemories_created += i
	} else {
		m.addmemories_created = &i
	}
}

// AddedMemoriesCreated returns the value that was added to the "memories_created" field in this mutation.
func (m *DreamSessionMutation) AddedMemoriesCreated() (r int, exists bool) {
	v := m.addmemories_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoriesCreated resets all changes to the "memories_created" field.
func (m *DreamSessionMutation) ResetMemoriesCreated() {
	m.memories_created = nil
	m.addmemories_created = nil
}

// SetMemoriesArchived sets the "memories_archived" field.
func (m *DreamSessionMutation) SetMemoriesArchived(i int) {
	m.memories_archived = &i
	m.addmemories_archived = nil
}

// MemoriesArchived returns the value of the "memories_archived" field in the mutation.
func (m *DreamSessionMutation) MemoriesArchived() (r int, exists bool) {
	v := m.memories_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoriesArchived returns the old "memories_archived" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldMemoriesArchived(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoriesArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoriesArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoriesArchived: %w", err)
	}
	return oldValue.MemoriesArchived, nil
}

// AddMemoriesArchived adds i to the "memories_archived" field.
func (m *DreamSessionMutation) AddMemoriesArchived(i int) {
	if m.addmemories_archived != nil {
		*m.addmemories_archived += i
	} else {
		m.addmemories_archived = &i
	}
}

// AddedMemoriesArchived returns the value that was added to the "memories_archived" field in this mutation.
func (m *DreamSessionMutation) AddedMemoriesArchived() (r int, exists bool) {
	v := m.addmemories_archived
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoriesArchived resets all changes to the "memories_archived" field.
func (m *DreamSessionMutation) ResetMemoriesArchived() {
	m.memories_archived = nil
	m.addmemories_archived = nil
}

// SetMemoriesDeleted sets the "memories_deleted" field.
func (m *DreamSessionMutation) SetMemoriesDeleted(i int) {
	m.memories_deleted = &i
	m.addmemories_deleted = nil
}

// MemoriesDeleted returns the value of the "memories_deleted" field in the mutation.
func (m *DreamSessionMutation) MemoriesDeleted() (r int, exists bool) {
	v := m.memories_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoriesDeleted returns the old "memories_deleted" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldMemoriesDeleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoriesDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoriesDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoriesDeleted: %w", err)
	}
	return oldValue.MemoriesDeleted, nil
}

// AddMemoriesDeleted adds i to the "memories_deleted" field.
func (m *DreamSessionMutation) AddMemoriesDeleted(i int) {
	if m.addmemories_deleted != nil {
		*m.addmemories_deleted += i
	} else {
		m.addmemories_deleted = &i
	}
}

// AddedMemoriesDeleted returns the value that was added to the "memories_deleted" field in this mutation.
func (m *DreamSessionMutation) AddedMemoriesDeleted() (r int, exists bool) {
	v := m.addmemories_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoriesDeleted resets all changes to the "memories_deleted" field.
func (m *DreamSessionMutation) ResetMemoriesDeleted() {
	m.memories_deleted = nil
	m.addmemories_deleted = nil
}

// SetSummary sets the "summary" field.
func (m *DreamSessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *DreamSessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *DreamSessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[dreamsession.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *DreamSessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[dreamsession.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *DreamSessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, dreamsession.FieldSummary)
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (m *DreamSessionMutation) SetConfigSnapshot(value map[string]interface{}) {
	m.config_snapshot = &value
}

// ConfigSnapshot returns the value of the "config_snapshot" field in the mutation.
func (m *DreamSessionMutation) ConfigSnapshot() (r map[string]interface{}, exists bool) {
	v := m.config_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigSnapshot returns the old "config_snapshot" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldConfigSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigSnapshot: %w", err)
	}
	return oldValue.ConfigSnapshot, nil
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (m *DreamSessionMutation) ClearConfigSnapshot() {
	m.config_snapshot = nil
	m.clearedFields[dreamsession.FieldConfigSnapshot] = struct{}{}
}

// ConfigSnapshotCleared returns if the "config_snapshot" field was cleared in this mutation.
func (m *DreamSessionMutation) ConfigSnapshotCleared() bool {
	_, ok := m.clearedFields[dreamsession.FieldConfigSnapshot]
	return ok
}

// ResetConfigSnapshot resets all changes to the "config_snapshot" field.
func (m *DreamSessionMutation) ResetConfigSnapshot() {
	m.config_snapshot = nil
	delete(m.clearedFields, dreamsession.FieldConfigSnapshot)
}

// SetCreatedAt sets the "created_at" field.
func (m *DreamSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DreamSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DreamSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DreamSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DreamSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DreamSession entity.
// If the DreamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DreamSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DreamSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAnima clears the "anima" edge to the Anima entity.
func (m *DreamSessionMutation) ClearAnima() {
	m.clearedanima = true
	m.clearedFields[dreamsession.FieldAnimaID] = struct{}{}
}

// AnimaCleared reports if the "anima" edge to the Anima entity was cleared.
func (m *DreamSessionMutation) AnimaCleared() bool {
	return m.clearedanima
}

// AnimaIDs returns the "anima" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnimaID instead. It exists only for internal usage by the builders.
func (m *DreamSessionMutation) AnimaIDs() (ids []string) {
	if id := m.anima; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnima resets all changes to the "anima" edge.
func (m *DreamSessionMutation) ResetAnima() {
	m.anima = nil
	m.clearedanima = false
}

// AddActionIDs adds the "actions" edge to the DreamAction entity by ids.
func (m *DreamSessionMutation) AddActionIDs(ids ...string) {
	if m.actions == nil {
		m.actions = make(map[string]struct{})
	}
	for i := range ids {
		m.actions[ids[i]] = struct{}{}
	}
}

// ClearActions clears the "actions" edge to the DreamAction entity.
func (m *DreamSessionMutation) ClearActions() {
	m.clearedactions = true
}

// ActionsCleared reports if the "actions" edge to the DreamAction entity was cleared.
func (m *DreamSessionMutation) ActionsCleared() bool {
	return m.clearedactions
}

// RemoveActionIDs removes the "actions" edge to the DreamAction entity by IDs.
func (m *DreamSessionMutation) RemoveActionIDs(ids ...string) {
	if m.removedactions == nil {
		m.removedactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.actions, ids[i])
		m.removedactions[ids[i]] = struct{}{}
	}
}

// RemovedActions returns the removed IDs of the "actions" edge to the DreamAction entity.
func (m *DreamSessionMutation) RemovedActionsIDs() (ids []string) {
	for id := range m.removedactions {
		ids = append(ids, id)
	}
	return
}

// ActionsIDs returns the "actions" edge IDs in the mutation.
func (m *DreamSessionMutation) ActionsIDs() (ids []string) {
	for id := range m.actions {
		ids = append(ids, id)
	}
	return
}

// ResetActions resets all changes to the "actions" edge.
func (m *DreamSessionMutation) ResetActions() {
	m.actions = nil
	m.clearedactions = false
	m.removedactions = nil
}

// Where appends a list predicates to the DreamSessionMutation builder.
func (m *DreamSessionMutation) Where(ps ...predicate.DreamSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DreamSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DreamSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DreamSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DreamSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DreamSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DreamSession).
func (m *DreamSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DreamSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.anima != nil {
		fields = append(fields, dreamsession.FieldAnimaID)
	}
	if m.trigger_type != nil {
		fields = append(fields, dreamsession.FieldTriggerType)
	}
	if m.triggered_by != nil {
		fields = append(fields, dreamsession.FieldTriggeredBy)
	}
	if m.started_at != nil {
		fields = append(fields, dreamsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, dreamsession.FieldCompletedAt)
	}
	if m.status != nil {
		fields = append(fields, dreamsession.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, dreamsession.FieldErrorMessage)
	}
	if m.memories_reviewed != nil {
		fields = append(fields, dreamsession.FieldMemoriesReviewed)
	}
	if m.memories_modified != nil {
		fields = append(fields, dreamsession.FieldMemoriesModified)
	}
	if m.memories_created != nil {
		fields = append(fields, dreamsession.FieldMemoriesCreated)
	}
	if m.memories_archived != nil {
		fields = append(fields, dreamsession.FieldMemoriesArchived)
	}
	if m.memories_deleted != nil {
		fields = append(fields, dreamsession.FieldMemoriesDeleted)
	}
	if m.summary != nil {
		fields = append(fields, dreamsession.FieldSummary)
	}
	if m.config_snapshot != nil {
		fields = append(fields, dreamsession.FieldConfigSnapshot)
	}
	if m.created_at != nil {
		fields = append(fields, dreamsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dreamsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DreamSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dreamsession.FieldAnimaID:
		return m.AnimaID()
	case dreamsession.FieldTriggerType:
		return m.TriggerType()
	case dreamsession.FieldTriggeredBy:
		return m.TriggeredBy()
	case dreamsession.FieldStartedAt:
		return m.StartedAt()
	case dreamsession.FieldCompletedAt:
		return m.CompletedAt()
	case dreamsession.FieldStatus:
		return m.Status()
	case dreamsession.FieldErrorMessage:
		return m.ErrorMessage()
	case dreamsession.FieldMemoriesReviewed:
		return m.MemoriesReviewed()
	case dreamsession.FieldMemoriesModified:
		return m.MemoriesModified()
	case dreamsession.FieldMemoriesCreated:
		return m.MemoriesCreated()
	case dreamsession.FieldMemoriesArchived:
		return m.MemoriesArchived()
	case dreamsession.FieldMemoriesDeleted:
		return m.MemoriesDeleted()
	case dreamsession.FieldSummary:
		return m.Summary()
	case dreamsession.FieldConfigSnapshot:
		return m.ConfigSnapshot()
	case dreamsession.FieldCreatedAt:
		return m.CreatedAt()
	case dreamsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DreamSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dreamsession.FieldAnimaID:
		return m.OldAnimaID(ctx)
	case dreamsession.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case dreamsession.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case dreamsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case dreamsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case dreamsession.FieldStatus:
		return m.OldStatus(ctx)
	case dreamsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case dreamsession.FieldMemoriesReviewed:
		return m.OldMemoriesReviewed(ctx)
	case dreamsession.FieldMemoriesModified:
		return m.OldMemoriesModified(ctx)
	case dreamsession.FieldMemoriesCreated:
		return m.OldMemoriesCreated(ctx)
	case dreamsession.FieldMemoriesArchived:
		return m.OldMemoriesArchived(ctx)
	case dreamsession.FieldMemoriesDeleted:
		return m.OldMemoriesDeleted(ctx)
	case dreamsession.FieldSummary:
		return m.OldSummary(ctx)
	case dreamsession.FieldConfigSnapshot:
		return m.OldConfigSnapshot(ctx)
	case dreamsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dreamsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DreamSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DreamSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dreamsession.FieldAnimaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnimaID(v)
		return nil
	case dreamsession.FieldTriggerType:
		v, ok := value.(dreamsession.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case dreamsession.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case dreamsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case dreamsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case dreamsession.FieldStatus:
		v, ok := value.(dreamsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dreamsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case dreamsession.FieldMemoriesReviewed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoriesReviewed(v)
		return nil
	case dreamsession.FieldMemoriesModified:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoriesModified(v)
		return nil
	case dreamsession.FieldMemoriesCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoriesCreated(v)
		return nil
	case dreamsession.FieldMemoriesArchived:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoriesArchived(v)
		return nil
	case dreamsession.FieldMemoriesDeleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoriesDeleted(v)
		return nil
	case dreamsession.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case dreamsession.FieldConfigSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigSnapshot(v)
		return nil
	case dreamsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dreamsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DreamSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DreamSessionMutation) AddedFields() []string {
	var fields []string
	if m.addmemories_reviewed != nil {
		fields = append(fields, dreamsession.FieldMemoriesReviewed)
	}
	if m.addmemories_modified != nil {
		fields = append(fields, dreamsession.FieldMemoriesModified)
	}
	if m.addmemories_created != nil {
		fields = append(fields, dreamsession.FieldMemoriesCreated)
	}
	if m.addmemories_archived != nil {
		fields = append(fields, dreamsession.FieldMemoriesArchived)
	}
	if m.addmemories_deleted != nil {
		fields = append(fields, dreamsession.FieldMemoriesDeleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DreamSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dreamsession.FieldMemoriesReviewed:
		return m.AddedMemoriesReviewed()
	case dreamsession.FieldMemoriesModified:
		return m.AddedMemoriesModified()
	case dreamsession.FieldMemoriesCreated:
		return m.AddedMemoriesCreated()
	case dreamsession.FieldMemoriesArchived:
		return m.AddedMemoriesArchived()
	case dreamsession.FieldMemoriesDeleted:
		return m.AddedMemoriesDeleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DreamSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dreamsession.FieldMemoriesReviewed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoriesReviewed(v)
		return nil
	case dreamsession.FieldMemoriesModified:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoriesModified(v)
		return nil
	case dreamsession.FieldMemoriesCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoriesCreated(v)
		return nil
	case dreamsession.FieldMemoriesArchived:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoriesArchived(v)
		return nil
	case dreamsession.FieldMemoriesDeleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoriesDeleted(v)
		return nil
	}
	return fmt.Errorf("unknown DreamSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DreamSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dreamsession.FieldTriggeredBy) {
		fields = append(fields, dreamsession.FieldTriggeredBy)
	}
	if m.FieldCleared(dreamsession.FieldCompletedAt) {
		fields = append(fields, dreamsession.FieldCompletedAt)
	}
	if m.FieldCleared(dreamsession.FieldErrorMessage) {
		fields = append(fields, dreamsession.FieldErrorMessage)
	}
	if m.FieldCleared(dreamsession.FieldSummary) {
		fields = append(fields, dreamsession.FieldSummary)
	}
	if m.FieldCleared(dreamsession.FieldConfigSnapshot) {
		fields = append(fields, dreamsession.FieldConfigSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DreamSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DreamSessionMutation) ClearField(name string) error {
	switch name {
	case dreamsession.FieldTriggeredBy:
		m.ClearTriggeredBy()
		return nil
	case dreamsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case dreamsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case dreamsession.FieldSummary:
		m.ClearSummary()
		return nil
	case dreamsession.FieldConfigSnapshot:
		m.ClearConfigSnapshot()
		return nil
	}
	return fmt.Errorf("unknown DreamSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DreamSessionMutation) ResetField(name string) error {
	switch name {
	case dreamsession.FieldAnimaID:
		m.ResetAnimaID()
		return nil
	case dreamsession.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case dreamsession.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case dreamsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case dreamsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case dreamsession.FieldStatus:
		m.ResetStatus()
		return nil
	case dreamsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case dreamsession.FieldMemoriesReviewed:
		m.ResetMemoriesReviewed()
		return nil
	case dreamsession.FieldMemoriesModified:
		m.ResetMemoriesModified()
		return nil
	case dreamsession.FieldMemoriesCreated:
		m.ResetMemoriesCreated()
		return nil
	case dreamsession.FieldMemoriesArchived:
		m.ResetMemoriesArchived()
		return nil
	case dreamsession.FieldMemoriesDeleted:
		m.ResetMemoriesDeleted()
		return nil
	case dreamsession.FieldSummary:
		m.ResetSummary()
		return nil
	case dreamsession.FieldConfigSnapshot:
		m.ResetConfigSnapshot()
		return nil
	case dreamsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dreamsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DreamSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DreamSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.anima != nil {
		edges = append(edges, dreamsession.EdgeAnima)
	}
	if m.actions != nil {
		edges = append(edges, dreamsession.EdgeActions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DreamSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dreamsession.EdgeAnima:
		if id := m.anima; id != nil {
			return []ent.Value{*id}
		}
	case dreamsession.EdgeActions:
		ids := make([]ent.Value, 0, len(m.actions))
		for id := range m.actions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DreamSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedactions != nil {
		edges = append(edges, dreamsession.EdgeActions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DreamSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dreamsession.EdgeActions:
		ids := make([]ent.Value, 0, len(m.removedactions))
		for id := range m.removedactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DreamSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanima {
		edges = append(edges, dreamsession.EdgeAnima)
	}
	if m.clearedactions {
		edges = append(edges, dreamsession.EdgeActions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DreamSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case dreamsession.EdgeAnima:
		return m.clearedanima
	case dreamsession.EdgeActions:
		return m.clearedactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DreamSessionMutation) ClearEdge(name string) error {
	switch name {
	case dreamsession.EdgeAnima:
		m.ClearAnima()
		return nil
	}
	return fmt.Errorf("unknown DreamSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DreamSessionMutation) ResetEdge(name string) error {
	switch name {
	case dreamsession.EdgeAnima:
		m.ResetAnima()
		return nil
	case dreamsession.EdgeActions:
		m.ResetActions()
		return nil
	}
	return fmt.Errorf("unknown DreamSession edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	_type               *string
	role                *string
	author              *string
	content             *string
	summary             *string
	occurred_at         *time.Time
	session_id          *string
	metadata            *map[string]interface{}
	source_uri          *string
	dedupe_key          *string
	importance          *float64
	addimportance       *float64
	is_deleted          *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	anima               *string
	clearedanima        bool
	memory_links        map[string]struct{}
	removedmemory_links map[string]struct{}
	clearedmemory_links bool
	done                bool
	oldValue            func(context.Context) (*Event, error)
	predicates          []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnimaID sets the "anima_id" field.
func (m *EventMutation) SetAnimaID(s string) {
	m.anima = &s
}

// AnimaID returns the value of the "anima_id" field in the mutation.
func (m *EventMutation) AnimaID() (r string, exists bool) {
	v := m.anima
	if v == nil {
		return
	}
	return *v, true
}

// OldAnimaID returns the old "anima_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAnimaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnimaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnimaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnimaID: %w", err)
	}
	return oldValue.AnimaID, nil
}

// ResetAnimaID resets all changes to the "anima_id" field.
func (m *EventMutation) ResetAnimaID() {
	m.anima = nil
}

// SetType sets the "type" field.
func (m *EventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *EventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EventMutation) ResetType() {
	m._type = nil
}

// SetRole sets the "role" field.
func (m *EventMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *EventMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *EventMutation) ClearRole() {
	m.role = nil
	m.clearedFields[event.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *EventMutation) RoleCleared() bool {
	_, ok := m.clearedFields[event.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *EventMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, event.FieldRole)
}

// SetAuthor sets the "author" field.
func (m *EventMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *EventMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *EventMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[event.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *EventMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[event.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *EventMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, event.FieldAuthor)
}

// SetContent sets the "content" field.
func (m *EventMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EventMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *EventMutation) ResetContent() {
	m.content = nil
}

// SetSummary sets the "summary" field.
func (m *EventMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *EventMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *EventMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[event.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *EventMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[event.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *EventMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, event.FieldSummary)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *EventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *EventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *EventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *EventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *EventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, event.FieldSessionID)
}

// SetMetadata sets the "metadata" field.
func (m *EventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[event.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[event.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, event.FieldMetadata)
}

// SetSourceURI sets the "source_uri" field.
func (m *EventMutation) SetSourceURI(s string) {
	m.source_uri = &s
}

// SourceURI returns the value of the "source_uri" field in the mutation.
func (m *EventMutation) SourceURI() (r string, exists bool) {
	v := m.source_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURI returns the old "source_uri" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSourceURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURI: %w", err)
	}
	return oldValue.SourceURI, nil
}

// ClearSourceURI clears the value of the "source_uri" field.
func (m *EventMutation) ClearSourceURI() {
	m.source_uri = nil
	m.clearedFields[event.FieldSourceURI] = struct{}{}
}

// SourceURICleared returns if the "source_uri" field was cleared in this mutation.
func (m *EventMutation) SourceURICleared() bool {
	_, ok := m.clearedFields[event.FieldSourceURI]
	return ok
}

// ResetSourceURI resets all changes to the "source_uri" field.
func (m *EventMutation) ResetSourceURI() {
	m.source_uri = nil
	delete(m.clearedFields, event.FieldSourceURI)
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *EventMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *EventMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDedupeKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ClearDedupeKey clears the value of the "dedupe_key" field.
func (m *EventMutation) ClearDedupeKey() {
	m.dedupe_key = nil
	m.clearedFields[event.FieldDedupeKey] = struct{}{}
}

// DedupeKeyCleared returns if the "dedupe_key" field was cleared in this mutation.
func (m *EventMutation) DedupeKeyCleared() bool {
	_, ok := m.clearedFields[event.FieldDedupeKey]
	return ok
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *EventMutation) ResetDedupeKey() {
	m.dedupe_key = nil
	delete(m.clearedFields, event.FieldDedupeKey)
}

// SetImportance sets the "importance" field.
func (m *EventMutation) SetImportance(f float64) {
	m.importance = &f
	m.addimportance = nil
}

// Importance returns the value of the "importance" field in the mutation.
func (m *EventMutation) Importance() (r float64, exists bool) {
	v := m.importance
	if v == nil {
		return
	}
	return *v, true
}

// OldImportance returns the old "importance" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldImportance(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportance: %w", err)
	}
	return oldValue.Importance, nil
}

// AddImportance adds f to the "importance" field.
func (m *EventMutation) AddImportance(f float64) {
	if m.addimportance != nil {
		*m.addimportance += f
	} else {
		m.addimportance = &f
	}
}

// AddedImportance returns the value that was added to the "importance" field in this mutation.
func (m *EventMutation) AddedImportance() (r float64, exists bool) {
	v := m.addimportance
	if v == nil {
		return
	}
	return *v, true
}

// ClearImportance clears the value of the "importance" field.
func (m *EventMutation) ClearImportance() {
	m.importance = nil
	m.addimportance = nil
	m.clearedFields[event.FieldImportance] = struct{}{}
}

// ImportanceCleared returns if the "importance" field was cleared in this mutation.
func (m *EventMutation) ImportanceCleared() bool {
	_, ok := m.clearedFields[event.FieldImportance]
	return ok
}

// ResetImportance resets all changes to the "importance" field.
func (m *EventMutation) ResetImportance() {
	m.importance = nil
	m.addimportance = nil
	delete(m.clearedFields, event.FieldImportance)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *EventMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *EventMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *EventMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAnima clears the "anima" edge to the Anima entity.
func (m *EventMutation) ClearAnima() {
	m.clearedanima = true
	m.clearedFields[event.FieldAnimaID] = struct{}{}
}

// AnimaCleared reports if the "anima" edge to the Anima entity was cleared.
func (m *EventMutation) AnimaCleared() bool {
	return m.clearedanima
}

// AnimaIDs returns the "anima" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnimaID instead. It exists only for internal usage by the builders.
func (m *EventMutation) AnimaIDs() (ids []string) {
	if id := m.anima; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnima resets all changes to the "anima" edge.
func (m *EventMutation) ResetAnima() {
	m.anima = nil
	m.clearedanima = false
}

// AddMemoryLinkIDs adds the "memory_links" edge to the MemoryEvent entity by ids.
func (m *EventMutation) AddMemoryLinkIDs(ids ...string) {
	if m.memory_links == nil {
		m.memory_links = make(map[string]struct{})
	}
	for i := range ids {
		m.memory_links[ids[i]] = struct{}{}
	}
}

// ClearMemoryLinks clears the "memory_links" edge to the MemoryEvent entity.
func (m *EventMutation) ClearMemoryLinks() {
	m.clearedmemory_links = true
}

// MemoryLinksCleared reports if the "memory_links" edge to the MemoryEvent entity was cleared.
func (m *EventMutation) MemoryLinksCleared() bool {
	return m.clearedmemory_links
}

// RemoveMemoryLinkIDs removes the "memory_links" edge to the MemoryEvent entity by IDs.
func (m *EventMutation) RemoveMemoryLinkIDs(ids ...string) {
	if m.removedmemory_links == nil {
		m.removedmemory_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memory_links, ids[i])
		m.removedmemory_links[ids[i]] = struct{}{}
	}
}

// RemovedMemoryLinks returns the removed IDs of the "memory_links" edge to the MemoryEvent entity.
func (m *EventMutation) RemovedMemoryLinksIDs() (ids []string) {
	for id := range m.removedmemory_links {
		ids = append(ids, id)
	}
	return
}

// MemoryLinksIDs returns the "memory_links" edge IDs in the mutation.
func (m *EventMutation) MemoryLinksIDs() (ids []string) {
	for id := range m.memory_links {
		ids = append(ids, id)
	}
	return
}

// ResetMemoryLinks resets all changes to the "memory_links" edge.
func (m *EventMutation) ResetMemoryLinks() {
	m.memory_links = nil
	m.clearedmemory_links = false
	m.removedmemory_links = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.anima != nil {
		fields = append(fields, event.FieldAnimaID)
	}
	if m._type != nil {
		fields = append(fields, event.FieldType)
	}
	if m.role != nil {
		fields = append(fields, event.FieldRole)
	}
	if m.author != nil {
		fields = append(fields, event.FieldAuthor)
	}
	if m.content != nil {
		fields = append(fields, event.FieldContent)
	}
	if m.summary != nil {
		fields = append(fields, event.FieldSummary)
	}
	if m.occurred_at != nil {
		fields = append(fields, event.FieldOccurredAt)
	}
	if m.session_id != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.metadata != nil {
		fields = append(fields, event.FieldMetadata)
	}
	if m.source_uri != nil {
		fields = append(fields, event.FieldSourceURI)
	}
	if m.dedupe_key != nil {
		fields = append(fields, event.FieldDedupeKey)
	}
	if m.importance != nil {
		fields = append(fields, event.FieldImportance)
	}
	if m.is_deleted != nil {
		fields = append(fields, event.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldAnimaID:
		return m.AnimaID()
	case event.FieldType:
		return m.GetType()
	case event.FieldRole:
		return m.Role()
	case event.FieldAuthor:
		return m.Author()
	case event.FieldContent:
		return m.Content()
	case event.FieldSummary:
		return m.Summary()
	case event.FieldOccurredAt:
		return m.OccurredAt()
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldMetadata:
		return m.Metadata()
	case event.FieldSourceURI:
		return m.SourceURI()
	case event.FieldDedupeKey:
		return m.DedupeKey()
	case event.FieldImportance:
		return m.Importance()
	case event.FieldIsDeleted:
		return m.IsDeleted()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldAnimaID:
		return m.OldAnimaID(ctx)
	case event.FieldType:
		return m.OldType(ctx)
	case event.FieldRole:
		return m.OldRole(ctx)
	case event.FieldAuthor:
		return m.OldAuthor(ctx)
	case event.FieldContent:
		return m.OldContent(ctx)
	case event.FieldSummary:
		return m.OldSummary(ctx)
	case event.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldMetadata:
		return m.OldMetadata(ctx)
	case event.FieldSourceURI:
		return m.OldSourceURI(ctx)
	case event.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case event.FieldImportance:
		return m.OldImportance(ctx)
	case event.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldAnimaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnimaID(v)
		return nil
	case event.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case event.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case event.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case event.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case event.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case event.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case event.FieldSourceURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURI(v)
		return nil
	case event.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case event.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportance(v)
		return nil
	case event.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addimportance != nil {
		fields = append(fields, event.FieldImportance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldImportance:
		return m.AddedImportance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportance(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldRole) {
		fields = append(fields, event.FieldRole)
	}
	if m.FieldCleared(event.FieldAuthor) {
		fields = append(fields, event.FieldAuthor)
	}
	if m.FieldCleared(event.FieldSummary) {
		fields = append(fields, event.FieldSummary)
	}
	if m.FieldCleared(event.FieldSessionID) {
		fields = append(fields, event.FieldSessionID)
	}
	if m.FieldCleared(event.FieldMetadata) {
		fields = append(fields, event.FieldMetadata)
	}
	if m.FieldCleared(event.FieldSourceURI) {
		fields = append(fields, event.FieldSourceURI)
	}
	if m.FieldCleared(event.FieldDedupeKey) {
		fields = append(fields, event.FieldDedupeKey)
	}
	if m.FieldCleared(event.FieldImportance) {
		fields = append(fields, event.FieldImportance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldRole:
		m.ClearRole()
		return nil
	case event.FieldAuthor:
		m.ClearAuthor()
		return nil
	case event.FieldSummary:
		m.ClearSummary()
		return nil
	case event.FieldSessionID:
		m.ClearSessionID()
		return nil
	case event.FieldMetadata:
		m.ClearMetadata()
		return nil
	case event.FieldSourceURI:
		m.ClearSourceURI()
		return nil
	case event.FieldDedupeKey:
		m.ClearDedupeKey()
		return nil
	case event.FieldImportance:
		m.ClearImportance()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldAnimaID:
		m.ResetAnimaID()
		return nil
	case event.FieldType:
		m.ResetType()
		return nil
	case event.FieldRole:
		m.ResetRole()
		return nil
	case event.FieldAuthor:
		m.ResetAuthor()
		return nil
	case event.FieldContent:
		m.ResetContent()
		return nil
	case event.FieldSummary:
		m.ResetSummary()
		return nil
	case event.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldMetadata:
		m.ResetMetadata()
		return nil
	case event.FieldSourceURI:
		m.ResetSourceURI()
		return nil
	case event.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case event.FieldImportance:
		m.ResetImportance()
		return nil
	case event.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.anima != nil {
		edges = append(edges, event.EdgeAnima)
	}
	if m.memory_links != nil {
		edges = append(edges, event.EdgeMemoryLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeAnima:
		if id := m.anima; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeMemoryLinks:
		ids := make([]ent.Value, 0, len(m.memory_links))
		for id := range m.memory_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmemory_links != nil {
		edges = append(edges, event.EdgeMemoryLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeMemoryLinks:
		ids := make([]ent.Value, 0, len(m.removedmemory_links))
		for id := range m.removedmemory_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanima {
		edges = append(edges, event.EdgeAnima)
	}
	if m.clearedmemory_links {
		edges = append(edges, event.EdgeMemoryLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeAnima:
		return m.clearedanima
	case event.EdgeMemoryLinks:
		return m.clearedmemory_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeAnima:
		m.ClearAnima()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeAnima:
		m.ResetAnima()
		return nil
	case event.EdgeMemoryLinks:
		m.ResetMemoryLinks()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// IOConfigMutation represents an operation that mutates the IOConfig nodes in the graph.
type IOConfigMutation struct {
	config
	op             Op
	typ            string
	id             *string
	read_settings  *map[string]interface{}
	write_settings *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	anima          *string
	clearedanima   bool
	done           bool
	oldValue       func(context.Context) (*IOConfig, error)
	predicates     []predicate.IOConfig
}

var _ ent.Mutation = (*IOConfigMutation)(nil)

// ioconfigOption allows management of the mutation configuration using functional options.
type ioconfigOption func(*IOConfigMutation)

// newIOConfigMutation creates new mutation for the IOConfig entity.
func newIOConfigMutation(c config, op Op, opts ...ioconfigOption) *IOConfigMutation {
	m := &IOConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeIOConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIOConfigID sets the ID field of the mutation.
func withIOConfigID(id string) ioconfigOption {
	return func(m *IOConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *IOConfig
		)
		m.oldValue = func(ctx context.Context) (*IOConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IOConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIOConfig sets the old IOConfig of the mutation.
func withIOConfig(node *IOConfig) ioconfigOption {
	return func(m *IOConfigMutation) {
		m.oldValue = func(context.Context) (*IOConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IOConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IOConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IOConfig entities.
func (m *IOConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IOConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IOConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IOConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnimaID sets the "anima_id" field.
func (m *IOConfigMutation) SetAnimaID(s string) {
	m.anima = &s
}

// AnimaID returns the value of the "anima_id" field in the mutation.
func (m *IOConfigMutation) AnimaID() (r string, exists bool) {
	v := m.anima
	if v == nil {
		return
	}
	return *v, true
}

// OldAnimaID returns the old "anima_id" field's value of the IOConfig entity.
// If the IOConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IOConfigMutation) OldAnimaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnimaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnimaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnimaID: %w", err)
	}
	return oldValue.AnimaID, nil
}

// ResetAnimaID resets all changes to the "anima_id" field.
func (m *IOConfigMutation) ResetAnimaID() {
	m.anima = nil
}

// SetReadSettings sets the "read_settings" field.
func (m *IOConfigMutation) SetReadSettings(value map[string]interface{}) {
	m.read_settings = &value
}

// ReadSettings returns the value of the "read_settings" field in the mutation.
func (m *IOConfigMutation) ReadSettings() (r map[string]interface{}, exists bool) {
	v := m.read_settings
	if v == nil {
		return
	}
	return *v, true
}

// OldReadSettings returns the old "read_settings" field's value of the IOConfig entity.
// If the IOConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IOConfigMutation) OldReadSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadSettings: %w", err)
	}
	return oldValue.ReadSettings, nil
}

// ClearReadSettings clears the value of the "read_settings" field.
func (m *IOConfigMutation) ClearReadSettings() {
	m.read_settings = nil
	m.clearedFields[ioconfig.FieldReadSettings] = struct{}{}
}

// ReadSettingsCleared returns if the "read_settings" field was cleared in this mutation.
func (m *IOConfigMutation) ReadSettingsCleared() bool {
	_, ok := m.clearedFields[ioconfig.FieldReadSettings]
	return ok
}

// ResetReadSettings resets all changes to the "read_settings" field.
func (m *IOConfigMutation) ResetReadSettings() {
	m.read_settings = nil
	delete(m.clearedFields, ioconfig.FieldReadSettings)
}

// SetWriteSettings sets the "write_settings" field.
func (m *IOConfigMutation) SetWriteSettings(value map[string]interface{}) {
	m.write_settings = &value
}

// WriteSettings returns the value of the "write_settings" field in the mutation.
func (m *IOConfigMutation) WriteSettings() (r map[string]interface{}, exists bool) {
	v := m.write_settings
	if v == nil {
		return
	}
	return *v, true
}

// OldWriteSettings returns the old "write_settings" field's value of the IOConfig entity.
// If the IOConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IOConfigMutation) OldWriteSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWriteSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWriteSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWriteSettings: %w", err)
	}
	return oldValue.WriteSettings, nil
}

// ClearWriteSettings clears the value of the "write_settings" field.
func (m *IOConfigMutation) ClearWriteSettings() {
	m.write_settings = nil
	m.clearedFields[ioconfig.FieldWriteSettings] = struct{}{}
}

// WriteSettingsCleared returns if the "write_settings" field was cleared in this mutation.
func (m *IOConfigMutation) WriteSettingsCleared() bool {
	_, ok := m.clearedFields[ioconfig.FieldWriteSettings]
	return ok
}

// ResetWriteSettings resets all changes to the "write_settings" field.
func (m *IOConfigMutation) ResetWriteSettings() {
	m.write_settings = nil
	delete(m.clearedFields, ioconfig.FieldWriteSettings)
}

// SetCreatedAt sets the "created_at" field.
func (m *IOConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IOConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IOConfig entity.
// If the IOConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IOConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IOConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IOConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IOConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IOConfig entity.
// If the IOConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IOConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IOConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAnima clears the "anima" edge to the Anima entity.
func (m *IOConfigMutation) ClearAnima() {
	m.clearedanima = true
	m.clearedFields[ioconfig.FieldAnimaID] = struct{}{}
}

// AnimaCleared reports if the "anima" edge to the Anima entity was cleared.
func (m *IOConfigMutation) AnimaCleared() bool {
	return m.clearedanima
}

// AnimaIDs returns the "anima" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnimaID instead. It exists only for internal usage by the builders.
func (m *IOConfigMutation) AnimaIDs() (ids []string) {
	if id := m.anima; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnima resets all changes to the "anima" edge.
func (m *IOConfigMutation) ResetAnima() {
	m.anima = nil
	m.clearedanima = false
}

// Where appends a list predicates to the IOConfigMutation builder.
func (m *IOConfigMutation) Where(ps ...predicate.IOConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IOConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IOConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IOConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IOConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IOConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IOConfig).
func (m *IOConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IOConfigMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.anima != nil {
		fields = append(fields, ioconfig.FieldAnimaID)
	}
	if m.read_settings != nil {
		fields = append(fields, ioconfig.FieldReadSettings)
	}
	if m.write_settings != nil {
		fields = append(fields, ioconfig.FieldWriteSettings)
	}
	if m.created_at != nil {
		fields = append(fields, ioconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ioconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IOConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ioconfig.FieldAnimaID:
		return m.AnimaID()
	case ioconfig.FieldReadSettings:
		return m.ReadSettings()
	case ioconfig.FieldWriteSettings:
		return m.WriteSettings()
	case ioconfig.FieldCreatedAt:
		return m.CreatedAt()
	case ioconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IOConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ioconfig.FieldAnimaID:
		return m.OldAnimaID(ctx)
	case ioconfig.FieldReadSettings:
		return m.OldReadSettings(ctx)
	case ioconfig.FieldWriteSettings:
		return m.OldWriteSettings(ctx)
	case ioconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ioconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IOConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IOConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ioconfig.FieldAnimaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnimaID(v)
		return nil
	case ioconfig.FieldReadSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadSettings(v)
		return nil
	case ioconfig.FieldWriteSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWriteSettings(v)
		return nil
	case ioconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ioconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IOConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IOConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IOConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IOConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IOConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IOConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ioconfig.FieldReadSettings) {
		fields = append(fields, ioconfig.FieldReadSettings)
	}
	if m.FieldCleared(ioconfig.FieldWriteSettings) {
		fields = append(fields, ioconfig.FieldWriteSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IOConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IOConfigMutation) ClearField(name string) error {
	switch name {
	case ioconfig.FieldReadSettings:
		m.ClearReadSettings()
		return nil
	case ioconfig.FieldWriteSettings:
		m.ClearWriteSettings()
		return nil
	}
	return fmt.Errorf("unknown IOConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IOConfigMutation) ResetField(name string) error {
	switch name {
	case ioconfig.FieldAnimaID:
		m.ResetAnimaID()
		return nil
	case ioconfig.FieldReadSettings:
		m.ResetReadSettings()
		return nil
	case ioconfig.FieldWriteSettings:
		m.ResetWriteSettings()
		return nil
	case ioconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ioconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown IOConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IOConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.anima != nil {
		edges = append(edges, ioconfig.EdgeAnima)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IOConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ioconfig.EdgeAnima:
		if id := m.anima; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IOConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IOConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IOConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanima {
		edges = append(edges, ioconfig.EdgeAnima)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IOConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case ioconfig.EdgeAnima:
		return m.clearedanima
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IOConfigMutation) ClearEdge(name string) error {
	switch name {
	case ioconfig.EdgeAnima:
		m.ClearAnima()
		return nil
	}
	return fmt.Errorf("unknown IOConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IOConfigMutation) ResetEdge(name string) error {
	switch name {
	case ioconfig.EdgeAnima:
		m.ResetAnima()
		return nil
	}
	return fmt.Errorf("unknown IOConfig edge %s", name)
}

// IdentityMutation represents an operation that mutates the Identity nodes in the graph.
type IdentityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	personality_type    *string
	communication_style *string
	self_reflection     *map[string]interface{}
	is_deleted          *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	anima               *string
	clearedanima        bool
	done                bool
	oldValue            func(context.Context) (*Identity, error)
	predicates          []predicate.Identity
}

var _ ent.Mutation = (*IdentityMutation)(nil)

// identityOption allows management of the mutation configuration using functional options.
type identityOption func(*IdentityMutation)

// newIdentityMutation creates new mutation for the Identity entity.
func newIdentityMutation(c config, op Op, opts ...identityOption) *IdentityMutation {
	m := &IdentityMutation{
		config:        c,
		op:            op,
		typ:           TypeIdentity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdentityID sets the ID field of the mutation.
func withIdentityID(id string) identityOption {
	return func(m *IdentityMutation) {
		var (
			err   error
			once  sync.Once
			value *Identity
		)
		m.oldValue = func(ctx context.Context) (*Identity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Identity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdentity sets the old Identity of the mutation.
func withIdentity(node *Identity) identityOption {
	return func(m *IdentityMutation) {
		m.oldValue = func(context.Context) (*Identity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdentityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdentityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Identity entities.
func (m *IdentityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdentityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdentityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Identity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnimaID sets the "anima_id" field.
func (m *IdentityMutation) SetAnimaID(s string) {
	m.anima = &s
}

// AnimaID returns the value of the "anima_id" field in the mutation.
func (m *IdentityMutation) AnimaID() (r string, exists bool) {
	v := m.anima
	if v == nil {
		return
	}
	return *v, true
}

// OldAnimaID returns the old "anima_id" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldAnimaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnimaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnimaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnimaID: %w", err)
	}
	return oldValue.AnimaID, nil
}

// ResetAnimaID resets all changes to the "anima_id" field.
func (m *IdentityMutation) ResetAnimaID() {
	m.anima = nil
}

// SetPersonalityType sets the "personality_type" field.
func (m *IdentityMutation) SetPersonalityType(s string) {
	m.personality_type = &s
}

// PersonalityType returns the value of the "personality_type" field in the mutation.
func (m *IdentityMutation) PersonalityType() (r string, exists bool) {
	v := m.personality_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonalityType returns the old "personality_type" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldPersonalityType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonalityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonalityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonalityType: %w", err)
	}
	return oldValue.PersonalityType, nil
}

// ClearPersonalityType clears the value of the "personality_type" field.
func (m *IdentityMutation) ClearPersonalityType() {
	m.personality_type = nil
	m.clearedFields[identity.FieldPersonalityType] = struct{}{}
}

// PersonalityTypeCleared returns if the "personality_type" field was cleared in this mutation.
func (m *IdentityMutation) PersonalityTypeCleared() bool {
	_, ok := m.clearedFields[identity.FieldPersonalityType]
	return ok
}

// ResetPersonalityType resets all changes to the "personality_type" field.
func (m *IdentityMutation) ResetPersonalityType() {
	m.personality_type = nil
	delete(m.clearedFields, identity.FieldPersonalityType)
}

// SetCommunicationStyle sets the "communication_style" field.
func (m *IdentityMutation) SetCommunicationStyle(s string) {
	m.communication_style = &s
}

// CommunicationStyle returns the value of the "communication_style" field in the mutation.
func (m *IdentityMutation) CommunicationStyle() (r string, exists bool) {
	v := m.communication_style
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunicationStyle returns the old "communication_style" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldCommunicationStyle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunicationStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunicationStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunicationStyle: %w", err)
	}
	return oldValue.CommunicationStyle, nil
}

// ClearCommunicationStyle clears the value of the "communication_style" field.
func (m *IdentityMutation) ClearCommunicationStyle() {
	m.communication_style = nil
	m.clearedFields[identity.FieldCommunicationStyle] = struct{}{}
}

// CommunicationStyleCleared returns if the "communication_style" field was cleared in this mutation.
func (m *IdentityMutation) CommunicationStyleCleared() bool {
	_, ok := m.clearedFields[identity.FieldCommunicationStyle]
	return ok
}

// ResetCommunicationStyle resets all changes to the "communication_style" field.
func (m *IdentityMutation) ResetCommunicationStyle() {
	m.communication_style = nil
	delete(m.clearedFields, identity.FieldCommunicationStyle)
}

// SetSelfReflection sets the "self_reflection" field.
func (m *IdentityMutation) SetSelfReflection(value map[string]interface{}) {
	m.self_reflection = &value
}

// SelfReflection returns the value of the "self_reflection" field in the mutation.
func (m *IdentityMutation) SelfReflection() (r map[string]interface{}, exists bool) {
	v := m.self_reflection
	if v == nil {
		return
	}
	return *v, true
}

// OldSelfReflection returns the old "self_reflection" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldSelfReflection(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelfReflection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelfReflection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelfReflection: %w", err)
	}
	return oldValue.SelfReflection, nil
}

// ClearSelfReflection clears the value of the "self_reflection" field.
func (m *IdentityMutation) ClearSelfReflection() {
	m.self_reflection = nil
	m.clearedFields[identity.FieldSelfReflection] = struct{}{}
}

// SelfReflectionCleared returns if the "self_reflection" field was cleared in this mutation.
func (m *IdentityMutation) SelfReflectionCleared() bool {
	_, ok := m.clearedFields[identity.FieldSelfReflection]
	return ok
}

// ResetSelfReflection resets all changes to the "self_reflection" field.
func (m *IdentityMutation) ResetSelfReflection() {
	m.self_reflection = nil
	delete(m.clearedFields, identity.FieldSelfReflection)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *IdentityMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *IdentityMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *IdentityMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IdentityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdentityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdentityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IdentityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IdentityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IdentityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAnima clears the "anima" edge to the Anima entity.
func (m *IdentityMutation) ClearAnima() {
	m.clearedanima = true
	m.clearedFields[identity.FieldAnimaID] = struct{}{}
}

// AnimaCleared reports if the "anima" edge to the Anima entity was cleared.
func (m *IdentityMutation) AnimaCleared() bool {
	return m.clearedanima
}

// AnimaIDs returns the "anima" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnimaID instead. It exists only for internal usage by the builders.
func (m *IdentityMutation) AnimaIDs() (ids []string) {
	if id := m.anima; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnima resets all changes to the "anima" edge.
func (m *IdentityMutation) ResetAnima() {
	m.anima = nil
	m.clearedanima = false
}

// Where appends a list predicates to the IdentityMutation builder.
func (m *IdentityMutation) Where(ps ...predicate.Identity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdentityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdentityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Identity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdentityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdentityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Identity).
func (m *IdentityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdentityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.anima != nil {
		fields = append(fields, identity.FieldAnimaID)
	}
	if m.personality_type != nil {
		fields = append(fields, identity.FieldPersonalityType)
	}
	if m.communication_style != nil {
		fields = append(fields, identity.FieldCommunicationStyle)
	}
	if m.self_reflection != nil {
		fields = append(fields, identity.FieldSelfReflection)
	}
	if m.is_deleted != nil {
		fields = append(fields, identity.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, identity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, identity.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdentityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case identity.FieldAnimaID:
		return m.AnimaID()
	case identity.FieldPersonalityType:
		return m.PersonalityType()
	case identity.FieldCommunicationStyle:
		return m.CommunicationStyle()
	case identity.FieldSelfReflection:
		return m.SelfReflection()
	case identity.FieldIsDeleted:
		return m.IsDeleted()
	case identity.FieldCreatedAt:
		return m.CreatedAt()
	case identity.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdentityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case identity.FieldAnimaID:
		return m.OldAnimaID(ctx)
	case identity.FieldPersonalityType:
		return m.OldPersonalityType(ctx)
	case identity.FieldCommunicationStyle:
		return m.OldCommunicationStyle(ctx)
	case identity.FieldSelfReflection:
		return m.OldSelfReflection(ctx)
	case identity.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case identity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case identity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Identity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdentityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case identity.FieldAnimaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnimaID(v)
		return nil
	case identity.FieldPersonalityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonalityType(v)
		return nil
	case identity.FieldCommunicationStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunicationStyle(v)
		return nil
	case identity.FieldSelfReflection:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelfReflection(v)
		return nil
	case identity.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case identity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case identity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Identity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdentityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdentityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdentityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Identity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdentityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(identity.FieldPersonalityType) {
		fields = append(fields, identity.FieldPersonalityType)
	}
	if m.FieldCleared(identity.FieldCommunicationStyle) {
		fields = append(fields, identity.FieldCommunicationStyle)
	}
	if m.FieldCleared(identity.FieldSelfReflection) {
		fields = append(fields, identity.FieldSelfReflection)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdentityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdentityMutation) ClearField(name string) error {
	switch name {
	case identity.FieldPersonalityType:
		m.ClearPersonalityType()
		return nil
	case identity.FieldCommunicationStyle:
		m.ClearCommunicationStyle()
		return nil
	case identity.FieldSelfReflection:
		m.ClearSelfReflection()
		return nil
	}
	return fmt.Errorf("unknown Identity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdentityMutation) ResetField(name string) error {
	switch name {
	case identity.FieldAnimaID:
		m.ResetAnimaID()
		return nil
	case identity.FieldPersonalityType:
		m.ResetPersonalityType()
		return nil
	case identity.FieldCommunicationStyle:
		m.ResetCommunicationStyle()
		return nil
	case identity.FieldSelfReflection:
		m.ResetSelfReflection()
		return nil
	case identity.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case identity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case identity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Identity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdentityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.anima != nil {
		edges = append(edges, identity.EdgeAnima)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdentityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case identity.EdgeAnima:
		if id := m.anima; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdentityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdentityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdentityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanima {
		edges = append(edges, identity.EdgeAnima)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdentityMutation) EdgeCleared(name string) bool {
	switch name {
	case identity.EdgeAnima:
		return m.clearedanima
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdentityMutation) ClearEdge(name string) error {
	switch name {
	case identity.EdgeAnima:
		m.ClearAnima()
		return nil
	}
	return fmt.Errorf("unknown Identity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdentityMutation) ResetEdge(name string) error {
	switch name {
	case identity.EdgeAnima:
		m.ResetAnima()
		return nil
	}
	return fmt.Errorf("unknown Identity edge %s", name)
}

// KnowledgeMutation represents an operation that mutates the Knowledge nodes in the graph.
type KnowledgeMutation struct {
	config
	op                Op
	typ               string
	id                *string
	_type             *knowledge.Type
	topic             *string
	content           *string
	summary           *string
	confidence        *float64
	addconfidence     *float64
	source_type       *knowledge.SourceType
	source_memory_id  *string
	embedding         *[]float32
	appendembedding   []float32
	embedding_model   *string
	is_deleted        *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	anima             *string
	clearedanima      bool
	audit_logs        map[string]struct{}
	removedaudit_logs map[string]struct{}
	clearedaudit_logs bool
	done              bool
	oldValue          func(context.Context) (*Knowledge, error)
	predicates        []predicate.Knowledge
}

var _ ent.Mutation = (*KnowledgeMutation)(nil)

// knowledgeOption allows management of the mutation configuration using functional options.
type knowledgeOption func(*KnowledgeMutation)

// newKnowledgeMutation creates new mutation for the Knowledge entity.
func newKnowledgeMutation(c config, op Op, opts ...knowledgeOption) *KnowledgeMutation {
	m := &KnowledgeMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeID sets the ID field of the mutation.
func withKnowledgeID(id string) knowledgeOption {
	return func(m *KnowledgeMutation) {
		var (
			err   error
			once  sync.Once
			value *Knowledge
		)
		m.oldValue = func(ctx context.Context) (*Knowledge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Knowledge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledge sets the old Knowledge of the mutation.
func withKnowledge(node *Knowledge) knowledgeOption {
	return func(m *KnowledgeMutation) {
		m.oldValue = func(context.Context) (*Knowledge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Knowledge entities.
func (m *KnowledgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Knowledge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnimaID sets the "anima_id" field.
func (m *KnowledgeMutation) SetAnimaID(s string) {
	m.anima = &s
}

// AnimaID returns the value of the "anima_id" field in the mutation.
func (m *KnowledgeMutation) AnimaID() (r string, exists bool) {
	v := m.anima
	if v == nil {
		return
	}
	return *v, true
}

// OldAnimaID returns the old "anima_id" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldAnimaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnimaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnimaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnimaID: %w", err)
	}
	return oldValue.AnimaID, nil
}

// ResetAnimaID resets all changes to the "anima_id" field.
func (m *KnowledgeMutation) ResetAnimaID() {
	m.anima = nil
}

// SetType sets the "type" field.
func (m *KnowledgeMutation) SetType(k knowledge.Type) {
	m._type = &k
}

// GetType returns the value of the "type" field in the mutation.
func (m *KnowledgeMutation) GetType() (r knowledge.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldType(ctx context.Context) (v knowledge.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *KnowledgeMutation) ResetType() {
	m._type = nil
}

// SetTopic sets the "topic" field.
func (m *KnowledgeMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *KnowledgeMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldTopic(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *KnowledgeMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[knowledge.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *KnowledgeMutation) TopicCleared() bool {
	_, ok := m.clearedFields[knowledge.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *KnowledgeMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, knowledge.FieldTopic)
}

// SetContent sets the "content" field.
func (m *KnowledgeMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *KnowledgeMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *KnowledgeMutation) ResetContent() {
	m.content = nil
}

// SetSummary sets the "summary" field.
func (m *KnowledgeMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *KnowledgeMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *KnowledgeMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[knowledge.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *KnowledgeMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[knowledge.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *KnowledgeMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, knowledge.FieldSummary)
}

// SetConfidence sets the "confidence" field.
func (m *KnowledgeMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *KnowledgeMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *KnowledgeMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *KnowledgeMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *KnowledgeMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[knowledge.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *KnowledgeMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[knowledge.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *KnowledgeMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, knowledge.FieldConfidence)
}

// SetSourceType sets the "source_type" field.
func (m *KnowledgeMutation) SetSourceType(kt knowledge.SourceType) {
	m.source_type = &kt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *KnowledgeMutation) SourceType() (r knowledge.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldSourceType(ctx context.Context) (v knowledge.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *KnowledgeMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceMemoryID sets the "source_memory_id" field.
func (m *KnowledgeMutation) SetSourceMemoryID(s string) {
	m.source_memory_id = &s
}

// SourceMemoryID returns the value of the "source_memory_id" field in the mutation.
func (m *KnowledgeMutation) SourceMemoryID() (r string, exists bool) {
	v := m.source_memory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMemoryID returns the old "source_memory_id" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldSourceMemoryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMemoryID: %w", err)
	}
	return oldValue.SourceMemoryID, nil
}

// ClearSourceMemoryID clears the value of the "source_memory_id" field.
func (m *KnowledgeMutation) ClearSourceMemoryID() {
	m.source_memory_id = nil
	m.clearedFields[knowledge.FieldSourceMemoryID] = struct{}{}
}

// SourceMemoryIDCleared returns if the "source_memory_id" field was cleared in this mutation.
func (m *KnowledgeMutation) SourceMemoryIDCleared() bool {
	_, ok := m.clearedFields[knowledge.FieldSourceMemoryID]
	return ok
}

// ResetSourceMemoryID resets all changes to the "source_memory_id" field.
func (m *KnowledgeMutation) ResetSourceMemoryID() {
	m.source_memory_id = nil
	delete(m.clearedFields, knowledge.FieldSourceMemoryID)
}

// SetEmbedding sets the "embedding" field.
func (m *KnowledgeMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *KnowledgeMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *KnowledgeMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *KnowledgeMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *KnowledgeMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[knowledge.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *KnowledgeMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[knowledge.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *KnowledgeMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, knowledge.FieldEmbedding)
}

// SetEmbeddingModel sets the "embedding_model" field.
func (m *KnowledgeMutation) SetEmbeddingModel(s string) {
	m.embedding_model = &s
}

// EmbeddingModel returns the value of the "embedding_model" field in the mutation.
func (m *KnowledgeMutation) EmbeddingModel() (r string, exists bool) {
	v := m.embedding_model
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingModel returns the old "embedding_model" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldEmbeddingModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingModel: %w", err)
	}
	return oldValue.EmbeddingModel, nil
}

// ClearEmbeddingModel clears the value of the "embedding_model" field.
func (m *KnowledgeMutation) ClearEmbeddingModel() {
	m.embedding_model = nil
	m.clearedFields[knowledge.FieldEmbeddingModel] = struct{}{}
}

// EmbeddingModelCleared returns if the "embedding_model" field was cleared in this mutation.
func (m *KnowledgeMutation) EmbeddingModelCleared() bool {
	_, ok := m.clearedFields[knowledge.FieldEmbeddingModel]
	return ok
}

// ResetEmbeddingModel resets all changes to the "embedding_model" field.
func (m *KnowledgeMutation) ResetEmbeddingModel() {
	m.embedding_model = nil
	delete(m.clearedFields, knowledge.FieldEmbeddingModel)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *KnowledgeMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *KnowledgeMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *KnowledgeMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KnowledgeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KnowledgeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Knowledge entity.
// If the Knowledge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KnowledgeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAnima clears the "anima" edge to the Anima entity.
func (m *KnowledgeMutation) ClearAnima() {
	m.clearedanima = true
	m.clearedFields[knowledge.FieldAnimaID] = struct{}{}
}

// AnimaCleared reports if the "anima" edge to the Anima entity was cleared.
func (m *KnowledgeMutation) AnimaCleared() bool {
	return m.clearedanima
}

// AnimaIDs returns the "anima" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnimaID instead. It exists only for internal usage by the builders.
func (m *KnowledgeMutation) AnimaIDs() (ids []string) {
	if id := m.anima; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnima resets all changes to the "anima" edge.
func (m *KnowledgeMutation) ResetAnima() {
	m.anima = nil
	m.clearedanima = false
}

// AddAuditLogIDs adds the "audit_logs" edge to the KnowledgeAuditLog entity by ids.
func (m *KnowledgeMutation) AddAuditLogIDs(ids ...string) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the KnowledgeAuditLog entity.
func (m *KnowledgeMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the KnowledgeAuditLog entity was cleared.
func (m *KnowledgeMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the KnowledgeAuditLog entity by IDs.
func (m *KnowledgeMutation) RemoveAuditLogIDs(ids ...string) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the KnowledgeAuditLog entity.
func (m *KnowledgeMutation) RemovedAuditLogsIDs() (ids []string) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *KnowledgeMutation) AuditLogsIDs() (ids []string) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *KnowledgeMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// Where appends a list predicates to the KnowledgeMutation builder.
func (m *KnowledgeMutation) Where(ps ...predicate.Knowledge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Knowledge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Knowledge).
func (m *KnowledgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.anima != nil {
		fields = append(fields, knowledge.FieldAnimaID)
	}
	if m._type != nil {
		fields = append(fields, knowledge.FieldType)
	}
	if m.topic != nil {
		fields = append(fields, knowledge.FieldTopic)
	}
	if m.content != nil {
		fields = append(fields, knowledge.FieldContent)
	}
	if m.summary != nil {
		fields = append(fields, knowledge.FieldSummary)
	}
	if m.confidence != nil {
		fields = append(fields, knowledge.FieldConfidence)
	}
	if m.source_type != nil {
		fields = append(fields, knowledge.FieldSourceType)
	}
	if m.source_memory_id != nil {
		fields = append(fields, knowledge.FieldSourceMemoryID)
	}
	if m.embedding != nil {
		fields = append(fields, knowledge.FieldEmbedding)
	}
	if m.embedding_model != nil {
		fields = append(fields, knowledge.FieldEmbeddingModel)
	}
	if m.is_deleted != nil {
		fields = append(fields, knowledge.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, knowledge.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, knowledge.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledge.FieldAnimaID:
		return m.AnimaID()
	case knowledge.FieldType:
		return m.GetType()
	case knowledge.FieldTopic:
		return m.Topic()
	case knowledge.FieldContent:
		return m.Content()
	case knowledge.FieldSummary:
		return m.Summary()
	case knowledge.FieldConfidence:
		return m.Confidence()
	case knowledge.FieldSourceType:
		return m.SourceType()
	case knowledge.FieldSourceMemoryID:
		return m.SourceMemoryID()
	case knowledge.FieldEmbedding:
		return m.Embedding()
	case knowledge.FieldEmbeddingModel:
		return m.EmbeddingModel()
	case knowledge.FieldIsDeleted:
		return m.IsDeleted()
	case knowledge.FieldCreatedAt:
		return m.CreatedAt()
	case knowledge.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledge.FieldAnimaID:
		return m.OldAnimaID(ctx)
	case knowledge.FieldType:
		return m.OldType(ctx)
	case knowledge.FieldTopic:
		return m.OldTopic(ctx)
	case knowledge.FieldContent:
		return m.OldContent(ctx)
	case knowledge.FieldSummary:
		return m.OldSummary(ctx)
	case knowledge.FieldConfidence:
		return m.OldConfidence(ctx)
	case knowledge.FieldSourceType:
		return m.OldSourceType(ctx)
	case knowledge.FieldSourceMemoryID:
		return m.OldSourceMemoryID(ctx)
	case knowledge.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case knowledge.FieldEmbeddingModel:
		return m.OldEmbeddingModel(ctx)
	case knowledge.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case knowledge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case knowledge.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Knowledge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledge.FieldAnimaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnimaID(v)
		return nil
	case knowledge.FieldType:
		v, ok := value.(knowledge.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case knowledge.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case knowledge.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case knowledge.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case knowledge.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case knowledge.FieldSourceType:
		v, ok := value.(knowledge.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case knowledge.FieldSourceMemoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMemoryID(v)
		return nil
	case knowledge.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case knowledge.FieldEmbeddingModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingModel(v)
		return nil
	case knowledge.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case knowledge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case knowledge.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Knowledge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, knowledge.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowledge.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowledge.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Knowledge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledge.FieldTopic) {
		fields = append(fields, knowledge.FieldTopic)
	}
	if m.FieldCleared(knowledge.FieldSummary) {
		fields = append(fields, knowledge.FieldSummary)
	}
	if m.FieldCleared(knowledge.FieldConfidence) {
		fields = append(fields, knowledge.FieldConfidence)
	}
	if m.FieldCleared(knowledge.FieldSourceMemoryID) {
		fields = append(fields, knowledge.FieldSourceMemoryID)
	}
	if m.FieldCleared(knowledge.FieldEmbedding) {
		fields = append(fields, knowledge.FieldEmbedding)
	}
	if m.FieldCleared(knowledge.FieldEmbeddingModel) {
		fields = append(fields, knowledge.FieldEmbeddingModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeMutation) ClearField(name string) error {
	switch name {
	case knowledge.FieldTopic:
		m.ClearTopic()
		return nil
	case knowledge.FieldSummary:
		m.ClearSummary()
		return nil
	case knowledge.FieldConfidence:
		m.ClearConfidence()
		return nil
	case knowledge.FieldSourceMemoryID:
		m.ClearSourceMemoryID()
		return nil
	case knowledge.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case knowledge.FieldEmbeddingModel:
		m.ClearEmbeddingModel()
		return nil
	}
	return fmt.Errorf("unknown Knowledge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeMutation) ResetField(name string) error {
	switch name {
	case knowledge.FieldAnimaID:
		m.ResetAnimaID()
		return nil
	case knowledge.FieldType:
		m.ResetType()
		return nil
	case knowledge.FieldTopic:
		m.ResetTopic()
		return nil
	case knowledge.FieldContent:
		m.ResetContent()
		return nil
	case knowledge.FieldSummary:
		m.ResetSummary()
		return nil
	case knowledge.FieldConfidence:
		m.ResetConfidence()
		return nil
	case knowledge.FieldSourceType:
		m.ResetSourceType()
		return nil
	case knowledge.FieldSourceMemoryID:
		m.ResetSourceMemoryID()
		return nil
	case knowledge.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case knowledge.FieldEmbeddingModel:
		m.ResetEmbeddingModel()
		return nil
	case knowledge.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case knowledge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case knowledge.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Knowledge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.anima != nil {
		edges = append(edges, knowledge.EdgeAnima)
	}
	if m.audit_logs != nil {
		edges = append(edges, knowledge.EdgeAuditLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledge.EdgeAnima:
		if id := m.anima; id != nil {
			return []ent.Value{*id}
		}
	case knowledge.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedaudit_logs != nil {
		edges = append(edges, knowledge.EdgeAuditLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case knowledge.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanima {
		edges = append(edges, knowledge.EdgeAnima)
	}
	if m.clearedaudit_logs {
		edges = append(edges, knowledge.EdgeAuditLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledge.EdgeAnima:
		return m.clearedanima
	case knowledge.EdgeAuditLogs:
		return m.clearedaudit_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeMutation) ClearEdge(name string) error {
	switch name {
	case knowledge.EdgeAnima:
		m.ClearAnima()
		return nil
	}
	return fmt.Errorf("unknown Knowledge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeMutation) ResetEdge(name string) error {
	switch name {
	case knowledge.EdgeAnima:
		m.ResetAnima()
		return nil
	case knowledge.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	}
	return fmt.Errorf("unknown Knowledge edge %s", name)
}

// KnowledgeAuditLogMutation represents an operation that mutates the KnowledgeAuditLog nodes in the graph.
type KnowledgeAuditLogMutation struct {
	config
	op               Op
	typ              string
	id               *string
	action           *knowledgeauditlog.Action
	source_type      *string
	source_id        *string
	before_state     *map[string]interface{}
	after_state      *map[string]interface{}
	change_summary   *string
	triggered_by     *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	knowledge        *string
	clearedknowledge bool
	done             bool
	oldValue         func(context.Context) (*KnowledgeAuditLog, error)
	predicates       []predicate.KnowledgeAuditLog
}

var _ ent.Mutation = (*KnowledgeAuditLogMutation)(nil)

// knowledgeauditlogOption allows management of the mutation configuration using functional options.
type knowledgeauditlogOption func(*KnowledgeAuditLogMutation)

// newKnowledgeAuditLogMutation creates new mutation for the KnowledgeAuditLog entity.
func newKnowledgeAuditLogMutation(c config, op Op, opts ...knowledgeauditlogOption) *KnowledgeAuditLogMutation {
	m := &KnowledgeAuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeAuditLogID sets the ID field of the mutation.
func withKnowledgeAuditLogID(id string) knowledgeauditlogOption {
	return func(m *KnowledgeAuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeAuditLog
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeAuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeAuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeAuditLog sets the old KnowledgeAuditLog of the mutation.
func withKnowledgeAuditLog(node *KnowledgeAuditLog) knowledgeauditlogOption {
	return func(m *KnowledgeAuditLogMutation) {
		m.oldValue = func(context.Context) (*KnowledgeAuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeAuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeAuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeAuditLog entities.
func (m *KnowledgeAuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeAuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeAuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeAuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKnowledgeID sets the "knowledge_id" field.
func (m *KnowledgeAuditLogMutation) SetKnowledgeID(s string) {
	m.knowledge = &s
}

// KnowledgeID returns the value of the "knowledge_id" field in the mutation.
func (m *KnowledgeAuditLogMutation) KnowledgeID() (r string, exists bool) {
	v := m.knowledge
	if v == nil {
		return
	}
	return *v, true
}

// OldKnowledgeID returns the old "knowledge_id" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldKnowledgeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnowledgeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnowledgeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnowledgeID: %w", err)
	}
	return oldValue.KnowledgeID, nil
}

// ResetKnowledgeID resets all changes to the "knowledge_id" field.
func (m *KnowledgeAuditLogMutation) ResetKnowledgeID() {
	m.knowledge = nil
}

// SetAction sets the "action" field.
func (m *KnowledgeAuditLogMutation) SetAction(k knowledgeauditlog.Action) {
	m.action = &k
}

// Action returns the value of the "action" field in the mutation.
func (m *KnowledgeAuditLogMutation) Action() (r knowledgeauditlog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldAction(ctx context.Context) (v knowledgeauditlog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *KnowledgeAuditLogMutation) ResetAction() {
	m.action = nil
}

// SetSourceType sets the "source_type" field.
func (m *KnowledgeAuditLogMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *KnowledgeAuditLogMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldSourceType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ClearSourceType clears the value of the "source_type" field.
func (m *KnowledgeAuditLogMutation) ClearSourceType() {
	m.source_type = nil
	m.clearedFields[knowledgeauditlog.FieldSourceType] = struct{}{}
}

// SourceTypeCleared returns if the "source_type" field was cleared in this mutation.
func (m *KnowledgeAuditLogMutation) SourceTypeCleared() bool {
	_, ok := m.clearedFields[knowledgeauditlog.FieldSourceType]
	return ok
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *KnowledgeAuditLogMutation) ResetSourceType() {
	m.source_type = nil
	delete(m.clearedFields, knowledgeauditlog.FieldSourceType)
}

// SetSourceID sets the "source_id" field.
func (m *KnowledgeAuditLogMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *KnowledgeAuditLogMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldSourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ClearSourceID clears the value of the "source_id" field.
func (m *KnowledgeAuditLogMutation) ClearSourceID() {
	m.source_id = nil
	m.clearedFields[knowledgeauditlog.FieldSourceID] = struct{}{}
}

// SourceIDCleared returns if the "source_id" field was cleared in this mutation.
func (m *KnowledgeAuditLogMutation) SourceIDCleared() bool {
	_, ok := m.clearedFields[knowledgeauditlog.FieldSourceID]
	return ok
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *KnowledgeAuditLogMutation) ResetSourceID() {
	m.source_id = nil
	delete(m.clearedFields, knowledgeauditlog.FieldSourceID)
}

// SetBeforeState sets the "before_state" field.
func (m *KnowledgeAuditLogMutation) SetBeforeState(value map[string]interface{}) {
	m.before_state = &value
}

// BeforeState returns the value of the "before_state" field in the mutation.
func (m *KnowledgeAuditLogMutation) BeforeState() (r map[string]interface{}, exists bool) {
	v := m.before_state
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeState returns the old "before_state" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldBeforeState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeState: %w", err)
	}
	return oldValue.BeforeState, nil
}

// ClearBeforeState clears the value of the "before_state" field.
func (m *KnowledgeAuditLogMutation) ClearBeforeState() {
	m.before_state = nil
	m.clearedFields[knowledgeauditlog.FieldBeforeState] = struct{}{}
}

// BeforeStateCleared returns if the "before_state" field was cleared in this mutation.
func (m *KnowledgeAuditLogMutation) BeforeStateCleared() bool {
	_, ok := m.clearedFields[knowledgeauditlog.FieldBeforeState]
	return ok
}

// ResetBeforeState resets all changes to the "before_state" field.
func (m *KnowledgeAuditLogMutation) ResetBeforeState() {
	m.before_state = nil
	delete(m.clearedFields, knowledgeauditlog.FieldBeforeState)
}

// SetAfterState sets the "after_state" field.
func (m *KnowledgeAuditLogMutation) SetAfterState(value map[string]interface{}) {
	m.after_state = &value
}

// AfterState returns the value of the "after_state" field in the mutation.
func (m *KnowledgeAuditLogMutation) AfterState() (r map[string]interface{}, exists bool) {
	v := m.after_state
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterState returns the old "after_state" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldAfterState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterState: %w", err)
	}
	return oldValue.AfterState, nil
}

// ClearAfterState clears the value of the "after_state" field.
func (m *KnowledgeAuditLogMutation) ClearAfterState() {
	m.after_state = nil
	m.clearedFields[knowledgeauditlog.FieldAfterState] = struct{}{}
}

// AfterStateCleared returns if the "after_state" field was cleared in this mutation.
func (m *KnowledgeAuditLogMutation) AfterStateCleared() bool {
	_, ok := m.clearedFields[knowledgeauditlog.FieldAfterState]
	return ok
}

// ResetAfterState resets all changes to the "after_state" field.
func (m *KnowledgeAuditLogMutation) ResetAfterState() {
	m.after_state = nil
	delete(m.clearedFields, knowledgeauditlog.FieldAfterState)
}

// SetChangeSummary sets the "change_summary" field.
func (m *KnowledgeAuditLogMutation) SetChangeSummary(s string) {
	m.change_summary = &s
}

// ChangeSummary returns the value of the "change_summary" field in the mutation.
func (m *KnowledgeAuditLogMutation) ChangeSummary() (r string, exists bool) {
	v := m.change_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeSummary returns the old "change_summary" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldChangeSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeSummary: %w", err)
	}
	return oldValue.ChangeSummary, nil
}

// ClearChangeSummary clears the value of the "change_summary" field.
func (m *KnowledgeAuditLogMutation) ClearChangeSummary() {
	m.change_summary = nil
	m.clearedFields[knowledgeauditlog.FieldChangeSummary] = struct{}{}
}

// ChangeSummaryCleared returns if the "change_summary" field was cleared in this mutation.
func (m *KnowledgeAuditLogMutation) ChangeSummaryCleared() bool {
	_, ok := m.clearedFields[knowledgeauditlog.FieldChangeSummary]
	return ok
}

// ResetChangeSummary resets all changes to the "change_summary" field.
func (m *KnowledgeAuditLogMutation) ResetChangeSummary() {
	m.change_summary = nil
	delete(m.clearedFields, knowledgeauditlog.FieldChangeSummary)
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *KnowledgeAuditLogMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *KnowledgeAuditLogMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldTriggeredBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (m *KnowledgeAuditLogMutation) ClearTriggeredBy() {
	m.triggered_by = nil
	m.clearedFields[knowledgeauditlog.FieldTriggeredBy] = struct{}{}
}

// TriggeredByCleared returns if the "triggered_by" field was cleared in this mutation.
func (m *KnowledgeAuditLogMutation) TriggeredByCleared() bool {
	_, ok := m.clearedFields[knowledgeauditlog.FieldTriggeredBy]
	return ok
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *KnowledgeAuditLogMutation) ResetTriggeredBy() {
	m.triggered_by = nil
	delete(m.clearedFields, knowledgeauditlog.FieldTriggeredBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeAuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeAuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeAuditLog entity.
// If the KnowledgeAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeAuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeAuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearKnowledge clears the "knowledge" edge to the Knowledge entity.
func (m *KnowledgeAuditLogMutation) ClearKnowledge() {
	m.clearedknowledge = true
	m.clearedFields[knowledgeauditlog.FieldKnowledgeID] = struct{}{}
}

// KnowledgeCleared reports if the "knowledge" edge to the Knowledge entity was cleared.
func (m *KnowledgeAuditLogMutation) KnowledgeCleared() bool {
	return m.clearedknowledge
}

// KnowledgeIDs returns the "knowledge" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KnowledgeID instead. It exists only for internal usage by the builders.
func (m *KnowledgeAuditLogMutation) KnowledgeIDs() (ids []string) {
	if id := m.knowledge; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKnowledge resets all changes to the "knowledge" edge.
func (m *KnowledgeAuditLogMutation) ResetKnowledge() {
	m.knowledge = nil
	m.clearedknowledge = false
}

// Where appends a list predicates to the KnowledgeAuditLogMutation builder.
func (m *KnowledgeAuditLogMutation) Where(ps ...predicate.KnowledgeAuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeAuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeAuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeAuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeAuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeAuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeAuditLog).
func (m *KnowledgeAuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeAuditLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.knowledge != nil {
		fields = append(fields, knowledgeauditlog.FieldKnowledgeID)
	}
	if m.action != nil {
		fields = append(fields, knowledgeauditlog.FieldAction)
	}
	if m.source_type != nil {
		fields = append(fields, knowledgeauditlog.FieldSourceType)
	}
	if m.source_id != nil {
		fields = append(fields, knowledgeauditlog.FieldSourceID)
	}
	if m.before_state != nil {
		fields = append(fields, knowledgeauditlog.FieldBeforeState)
	}
	if m.after_state != nil {
		fields = append(fields, knowledgeauditlog.FieldAfterState)
	}
	if m.change_summary != nil {
		fields = append(fields, knowledgeauditlog.FieldChangeSummary)
	}
	if m.triggered_by != nil {
		fields = append(fields, knowledgeauditlog.FieldTriggeredBy)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgeauditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeAuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgeauditlog.FieldKnowledgeID:
		return m.KnowledgeID()
	case knowledgeauditlog.FieldAction:
		return m.Action()
	case knowledgeauditlog.FieldSourceType:
		return m.SourceType()
	case knowledgeauditlog.FieldSourceID:
		return m.SourceID()
	case knowledgeauditlog.FieldBeforeState:
		return m.BeforeState()
	case knowledgeauditlog.FieldAfterState:
		return m.AfterState()
	case knowledgeauditlog.FieldChangeSummary:
		return m.ChangeSummary()
	case knowledgeauditlog.FieldTriggeredBy:
		return m.TriggeredBy()
	case knowledgeauditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeAuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgeauditlog.FieldKnowledgeID:
		return m.OldKnowledgeID(ctx)
	case knowledgeauditlog.FieldAction:
		return m.OldAction(ctx)
	case knowledgeauditlog.FieldSourceType:
		return m.OldSourceType(ctx)
	case knowledgeauditlog.FieldSourceID:
		return m.OldSourceID(ctx)
	case knowledgeauditlog.FieldBeforeState:
		return m.OldBeforeState(ctx)
	case knowledgeauditlog.FieldAfterState:
		return m.OldAfterState(ctx)
	case knowledgeauditlog.FieldChangeSummary:
		return m.OldChangeSummary(ctx)
	case knowledgeauditlog.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case knowledgeauditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeAuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeAuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgeauditlog.FieldKnowledgeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnowledgeID(v)
		return nil
	case knowledgeauditlog.FieldAction:
		v, ok := value.(knowledgeauditlog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case knowledgeauditlog.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case knowledgeauditlog.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case knowledgeauditlog.FieldBeforeState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeState(v)
		return nil
	case knowledgeauditlog.FieldAfterState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterState(v)
		return nil
	case knowledgeauditlog.FieldChangeSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeSummary(v)
		return nil
	case knowledgeauditlog.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case knowledgeauditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeAuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeAuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeAuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeAuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeAuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeAuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgeauditlog.FieldSourceType) {
		fields = append(fields, knowledgeauditlog.FieldSourceType)
	}
	if m.FieldCleared(knowledgeauditlog.FieldSourceID) {
		fields = append(fields, knowledgeauditlog.FieldSourceID)
	}
	if m.FieldCleared(knowledgeauditlog.FieldBeforeState) {
		fields = append(fields, knowledgeauditlog.FieldBeforeState)
	}
	if m.FieldCleared(knowledgeauditlog.FieldAfterState) {
		fields = append(fields, knowledgeauditlog.FieldAfterState)
	}
	if m.FieldCleared(knowledgeauditlog.FieldChangeSummary) {
		fields = append(fields, knowledgeauditlog.FieldChangeSummary)
	}
	if m.FieldCleared(knowledgeauditlog.FieldTriggeredBy) {
		fields = append(fields, knowledgeauditlog.FieldTriggeredBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeAuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeAuditLogMutation) ClearField(name string) error {
	switch name {
	case knowledgeauditlog.FieldSourceType:
		m.ClearSourceType()
		return nil
	case knowledgeauditlog.FieldSourceID:
		m.ClearSourceID()
		return nil
	case knowledgeauditlog.FieldBeforeState:
		m.ClearBeforeState()
		return nil
	case knowledgeauditlog.FieldAfterState:
		m.ClearAfterState()
		return nil
	case knowledgeauditlog.FieldChangeSummary:
		m.ClearChangeSummary()
		return nil
	case knowledgeauditlog.FieldTriggeredBy:
		m.ClearTriggeredBy()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeAuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeAuditLogMutation) ResetField(name string) error {
	switch name {
	case knowledgeauditlog.FieldKnowledgeID:
		m.ResetKnowledgeID()
		return nil
	case knowledgeauditlog.FieldAction:
		m.ResetAction()
		return nil
	case knowledgeauditlog.FieldSourceType:
		m.ResetSourceType()
		return nil
	case knowledgeauditlog.FieldSourceID:
		m.ResetSourceID()
		return nil
	case knowledgeauditlog.FieldBeforeState:
		m.ResetBeforeState()
		return nil
	case knowledgeauditlog.FieldAfterState:
		m.ResetAfterState()
		return nil
	case knowledgeauditlog.FieldChangeSummary:
		m.ResetChangeSummary()
		return nil
	case knowledgeauditlog.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case knowledgeauditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeAuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeAuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.knowledge != nil {
		edges = append(edges, knowledgeauditlog.EdgeKnowledge)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeAuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgeauditlog.EdgeKnowledge:
		if id := m.knowledge; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeAuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeAuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeAuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedknowledge {
		edges = append(edges, knowledgeauditlog.EdgeKnowledge)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeAuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgeauditlog.EdgeKnowledge:
		return m.clearedknowledge
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeAuditLogMutation) ClearEdge(name string) error {
	switch name {
	case knowledgeauditlog.EdgeKnowledge:
		m.ClearKnowledge()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeAuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeAuditLogMutation) ResetEdge(name string) error {
	switch name {
	case knowledgeauditlog.EdgeKnowledge:
		m.ResetKnowledge()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeAuditLog edge %s", name)
}

// MemoryMutation represents an operation that mutates the Memory nodes in the graph.
type MemoryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	content            *string
	summary            *string
	importance         *float64
	addimportance      *float64
	confidence         *float64
	addconfidence      *float64
	state              *memory.State
	recency_score      *float64
	addrecency_score   *float64
	decay_score        *float64
	adddecay_score     *float64
	access_count       *int
	addaccess_count    *int
	last_accessed_at   *time.Time
	time_start         *time.Time
	time_end           *time.Time
	metadata           *map[string]interface{}
	embedding          *[]float32
	appendembedding    []float32
	embedding_model    *string
	is_deleted         *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	anima              *string
	clearedanima       bool
	event_links        map[string]struct{}
	removedevent_links map[string]struct{}
	clearedevent_links bool
	done               bool
	oldValue           func(context.Context) (*Memory, error)
	predicates         []predicate.Memory
}

var _ ent.Mutation = (*MemoryMutation)(nil)

// memoryOption allows management of the mutation configuration using functional options.
type memoryOption func(*MemoryMutation)

// newMemoryMutation creates new mutation for the Memory entity.
func newMemoryMutation(c config, op Op, opts ...memoryOption) *MemoryMutation {
	m := &MemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryID sets the ID field of the mutation.
func withMemoryID(id string) memoryOption {
	return func(m *MemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Memory
		)
		m.oldValue = func(ctx context.Context) (*Memory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Memory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemory sets the old Memory of the mutation.
func withMemory(node *Memory) memoryOption {
	return func(m *MemoryMutation) {
		m.oldValue = func(context.Context) (*Memory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Memory entities.
func (m *MemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Memory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnimaID sets the "anima_id" field.
func (m *MemoryMutation) SetAnimaID(s string) {
	m.anima = &s
}

// AnimaID returns the value of the "anima_id" field in the mutation.
func (m *MemoryMutation) AnimaID() (r string, exists bool) {
	v := m.anima
	if v == nil {
		return
	}
	return *v, true
}

// OldAnimaID returns the old "anima_id" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldAnimaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnimaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnimaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnimaID: %w", err)
	}
	return oldValue.AnimaID, nil
}

// ResetAnimaID resets all changes to the "anima_id" field.
func (m *MemoryMutation) ResetAnimaID() {
	m.anima = nil
}

// SetContent sets the "content" field.
func (m *MemoryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MemoryMutation) ResetContent() {
	m.content = nil
}

// SetSummary sets the "summary" field.
func (m *MemoryMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *MemoryMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *MemoryMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[memory.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *MemoryMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[memory.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *MemoryMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, memory.FieldSummary)
}

// SetImportance sets the "importance" field.
func (m *MemoryMutation) SetImportance(f float64) {
	m.importance = &f
	m.addimportance = nil
}

// Importance returns the value of the "importance" field in the mutation.
func (m *MemoryMutation) Importance() (r float64, exists bool) {
	v := m.importance
	if v == nil {
		return
	}
	return *v, true
}

// OldImportance returns the old "importance" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldImportance(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportance: %w", err)
	}
	return oldValue.Importance, nil
}

// AddImportance adds f to the "importance" field.
func (m *MemoryMutation) AddImportance(f float64) {
	if m.addimportance != nil {
		*m.addimportance += f
	} else {
		m.addimportance = &f
	}
}

// AddedImportance returns the value that was added to the "importance" field in this mutation.
func (m *MemoryMutation) AddedImportance() (r float64, exists bool) {
	v := m.addimportance
	if v == nil {
		return
	}
	return *v, true
}

// ClearImportance clears the value of the "importance" field.
func (m *MemoryMutation) ClearImportance() {
	m.importance = nil
	m.addimportance = nil
	m.clearedFields[memory.FieldImportance] = struct{}{}
}

// ImportanceCleared returns if the "importance" field was cleared in this mutation.
func (m *MemoryMutation) ImportanceCleared() bool {
	_, ok := m.clearedFields[memory.FieldImportance]
	return ok
}

// ResetImportance resets all changes to the "importance" field.
func (m *MemoryMutation) ResetImportance() {
	m.importance = nil
	m.addimportance = nil
	delete(m.clearedFields, memory.FieldImportance)
}

// SetConfidence sets the "confidence" field.
func (m *MemoryMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *MemoryMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *MemoryMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *MemoryMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *MemoryMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[memory.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *MemoryMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[memory.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *MemoryMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, memory.FieldConfidence)
}

// SetState sets the "state" field.
func (m *MemoryMutation) SetState(value memory.State) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *MemoryMutation) State() (r memory.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldState(ctx context.Context) (v memory.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *MemoryMutation) ResetState() {
	m.state = nil
}

// SetRecencyScore sets the "recency_score" field.
func (m *MemoryMutation) SetRecencyScore(f float64) {
	m.recency_score = &f
	m.addrecency_score = nil
}

// RecencyScore returns the value of the "recency_score" field in the mutation.
func (m *MemoryMutation) RecencyScore() (r float64, exists bool) {
	v := m.recency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRecencyScore returns the old "recency_score" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldRecencyScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecencyScore: %w", err)
	}
	return oldValue.RecencyScore, nil
}

// AddRecencyScore adds f to the "recency_score" field.
func (m *MemoryMutation) AddRecencyScore(f float64) {
	if m.addrecency_score != nil {
		*m.addrecency_score += f
	} else {
		m.addrecency_score = &f
	}
}

// AddedRecencyScore returns the value that was added to the "recency_score" field in this mutation.
func (m *MemoryMutation) AddedRecencyScore() (r float64, exists bool) {
	v := m.addrecency_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearRecencyScore clears the value of the "recency_score" field.
func (m *MemoryMutation) ClearRecencyScore() {
	m.recency_score = nil
	m.addrecency_score = nil
	m.clearedFields[memory.FieldRecencyScore] = struct{}{}
}

// RecencyScoreCleared returns if the "recency_score" field was cleared in this mutation.
func (m *MemoryMutation) RecencyScoreCleared() bool {
	_, ok := m.clearedFields[memory.FieldRecencyScore]
	return ok
}

// ResetRecencyScore resets all changes to the "recency_score" field.
func (m *MemoryMutation) ResetRecencyScore() {
	m.recency_score = nil
	m.addrecency_score = nil
	delete(m.clearedFields, memory.FieldRecencyScore)
}

// SetDecayScore sets the "decay_score" field.
func (m *MemoryMutation) SetDecayScore(f float64) {
	m.decay_score = &f
	m.adddecay_score = nil
}

// DecayScore returns the value of the "decay_score" field in the mutation.
func (m *MemoryMutation) DecayScore() (r float64, exists bool) {
	v := m.decay_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDecayScore returns the old "decay_score" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldDecayScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecayScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecayScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecayScore: %w", err)
	}
	return oldValue.DecayScore, nil
}

// AddDecayScore adds f to the "decay_score" field.
func (m *MemoryMutation) AddDecayScore(f float64) {
	if m.adddecay_score != nil {
		*m.adddecay_score += f
	} else {
		m.adddecay_score = &f
	}
}

// AddedDecayScore returns the value that was added to the "decay_score" field in this mutation.
func (m *MemoryMutation) AddedDecayScore() (r float64, exists bool) {
	v := m.adddecay_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearDecayScore clears the value of the "decay_score" field.
func (m *MemoryMutation) ClearDecayScore() {
	m.decay_score = nil
	m.adddecay_score = nil
	m.clearedFields[memory.FieldDecayScore] = struct{}{}
}

// DecayScoreCleared returns if the "decay_score" field was cleared in this mutation.
func (m *MemoryMutation) DecayScoreCleared() bool {
	_, ok := m.clearedFields[memory.FieldDecayScore]
	return ok
}

// ResetDecayScore resets all changes to the "decay_score" field.
func (m *MemoryMutation) ResetDecayScore() {
	m.decay_score = nil
	m.adddecay_score = nil
	delete(m.clearedFields, memory.FieldDecayScore)
}

// SetAccessCount sets the "access_count" field.
func (m *MemoryMutation) SetAccessCount(i int) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *MemoryMutation) AccessCount() (r int, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldAccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *MemoryMutation) AddAccessCount(i int) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *MemoryMutation) AddedAccessCount() (r int, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *MemoryMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (m *MemoryMutation) SetLastAccessedAt(t time.Time) {
	m.last_accessed_at = &t
}

// LastAccessedAt returns the value of the "last_accessed_at" field in the mutation.
func (m *MemoryMutation) LastAccessedAt() (r time.Time, exists bool) {
	v := m.last_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessedAt returns the old "last_accessed_at" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldLastAccessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessedAt: %w", err)
	}
	return oldValue.LastAccessedAt, nil
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (m *MemoryMutation) ClearLastAccessedAt() {
	m.last_accessed_at = nil
	m.clearedFields[memory.FieldLastAccessedAt] = struct{}{}
}

// LastAccessedAtCleared returns if the "last_accessed_at" field was cleared in this mutation.
func (m *MemoryMutation) LastAccessedAtCleared() bool {
	_, ok := m.clearedFields[memory.FieldLastAccessedAt]
	return ok
}

// ResetLastAccessedAt resets all changes to the "last_accessed_at" field.
func (m *MemoryMutation) ResetLastAccessedAt() {
	m.last_accessed_at = nil
	delete(m.clearedFields, memory.FieldLastAccessedAt)
}

// SetTimeStart sets the "time_start" field.
func (m *MemoryMutation) SetTimeStart(t time.Time) {
	m.time_start = &t
}

// TimeStart returns the value of the "time_start" field in the mutation.
func (m *MemoryMutation) TimeStart() (r time.Time, exists bool) {
	v := m.time_start
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeStart returns the old "time_start" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldTimeStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeStart: %w", err)
	}
	return oldValue.TimeStart, nil
}

// ClearTimeStart clears the value of the "time_start" field.
func (m *MemoryMutation) ClearTimeStart() {
	m.time_start = nil
	m.clearedFields[memory.FieldTimeStart] = struct{}{}
}

// TimeStartCleared returns if the "time_start" field was cleared in this mutation.
func (m *MemoryMutation) TimeStartCleared() bool {
	_, ok := m.clearedFields[memory.FieldTimeStart]
	return ok
}

// ResetTimeStart resets all changes to the "time_start" field.
func (m *MemoryMutation) ResetTimeStart() {
	m.time_start = nil
	delete(m.clearedFields, memory.FieldTimeStart)
}

// SetTimeEnd sets the "time_end" field.
func (m *MemoryMutation) SetTimeEnd(t time.Time) {
	m.time_end = &t
}

// TimeEnd returns the value of the "time_end" field in the mutation.
func (m *MemoryMutation) TimeEnd() (r time.Time, exists bool) {
	v := m.time_end
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeEnd returns the old "time_end" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldTimeEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeEnd: %w", err)
	}
	return oldValue.TimeEnd, nil
}

// ClearTimeEnd clears the value of the "time_end" field.
func (m *MemoryMutation) ClearTimeEnd() {
	m.time_end = nil
	m.clearedFields[memory.FieldTimeEnd] = struct{}{}
}

// TimeEndCleared returns if the "time_end" field was cleared in this mutation.
func (m *MemoryMutation) TimeEndCleared() bool {
	_, ok := m.clearedFields[memory.FieldTimeEnd]
	return ok
}

// ResetTimeEnd resets all changes to the "time_end" field.
func (m *MemoryMutation) ResetTimeEnd() {
	m.time_end = nil
	delete(m.clearedFields, memory.FieldTimeEnd)
}

// SetMetadata sets the "metadata" field.
func (m *MemoryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MemoryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MemoryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[memory.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MemoryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[memory.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MemoryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, memory.FieldMetadata)
}

// SetEmbedding sets the "embedding" field.
func (m *MemoryMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *MemoryMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *MemoryMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *MemoryMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *MemoryMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[memory.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *MemoryMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[memory.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *MemoryMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, memory.FieldEmbedding)
}

// SetEmbeddingModel sets the "embedding_model" field.
func (m *MemoryMutation) SetEmbeddingModel(s string) {
	m.embedding_model = &s
}

// EmbeddingModel returns the value of the "embedding_model" field in the mutation.
func (m *MemoryMutation) EmbeddingModel() (r string, exists bool) {
	v := m.embedding_model
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingModel returns the old "embedding_model" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldEmbeddingModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingModel: %w", err)
	}
	return oldValue.EmbeddingModel, nil
}

// ClearEmbeddingModel clears the value of the "embedding_model" field.
func (m *MemoryMutation) ClearEmbeddingModel() {
	m.embedding_model = nil
	m.clearedFields[memory.FieldEmbeddingModel] = struct{}{}
}

// EmbeddingModelCleared returns if the "embedding_model" field was cleared in this mutation.
func (m *MemoryMutation) EmbeddingModelCleared() bool {
	_, ok := m.clearedFields[memory.FieldEmbeddingModel]
	return ok
}

// ResetEmbeddingModel resets all changes to the "embedding_model" field.
func (m *MemoryMutation) ResetEmbeddingModel() {
	m.embedding_model = nil
	delete(m.clearedFields, memory.FieldEmbeddingModel)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *MemoryMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *MemoryMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *MemoryMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MemoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MemoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Memory entity.
// If the Memory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MemoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAnima clears the "anima" edge to the Anima entity.
func (m *MemoryMutation) ClearAnima() {
	m.clearedanima = true
	m.clearedFields[memory.FieldAnimaID] = struct{}{}
}

// AnimaCleared reports if the "anima" edge to the Anima entity was cleared.
func (m *MemoryMutation) AnimaCleared() bool {
	return m.clearedanima
}

// AnimaIDs returns the "anima" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnimaID instead. It exists only for internal usage by the builders.
func (m *MemoryMutation) AnimaIDs() (ids []string) {
	if id := m.anima; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnima resets all changes to the "anima" edge.
func (m *MemoryMutation) ResetAnima() {
	m.anima = nil
	m.clearedanima = false
}

// AddEventLinkIDs adds the "event_links" edge to the MemoryEvent entity by ids.
func (m *MemoryMutation) AddEventLinkIDs(ids ...string) {
	if m.event_links == nil {
		m.event_links = make(map[string]struct{})
	}
	for i := range ids {
		m.event_links[ids[i]] = struct{}{}
	}
}

// ClearEventLinks clears the "event_links" edge to the MemoryEvent entity.
func (m *MemoryMutation) ClearEventLinks() {
	m.clearedevent_links = true
}

// EventLinksCleared reports if the "event_links" edge to the MemoryEvent entity was cleared.
func (m *MemoryMutation) EventLinksCleared() bool {
	return m.clearedevent_links
}

// RemoveEventLinkIDs removes the "event_links" edge to the MemoryEvent entity by IDs.
func (m *MemoryMutation) RemoveEventLinkIDs(ids ...string) {
	if m.removedevent_links == nil {
		m.removedevent_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.event_links, ids[i])
		m.removedevent_links[ids[i]] = struct{}{}
	}
}

// RemovedEventLinks returns the removed IDs of the "event_links" edge to the MemoryEvent entity.
func (m *MemoryMutation) RemovedEventLinksIDs() (ids []string) {
	for id := range m.removedevent_links {
		ids = append(ids, id)
	}
	return
}

// EventLinksIDs returns the "event_links" edge IDs in the mutation.
func (m *MemoryMutation) EventLinksIDs() (ids []string) {
	for id := range m.event_links {
		ids = append(ids, id)
	}
	return
}

// ResetEventLinks resets all changes to the "event_links" edge.
func (m *MemoryMutation) ResetEventLinks() {
	m.event_links = nil
	m.clearedevent_links = false
	m.removedevent_links = nil
}

// Where appends a list predicates to the MemoryMutation builder.
func (m *MemoryMutation) Where(ps ...predicate.Memory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Memory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Memory).
func (m *MemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.anima != nil {
		fields = append(fields, memory.FieldAnimaID)
	}
	if m.content != nil {
		fields = append(fields, memory.FieldContent)
	}
	if m.summary != nil {
		fields = append(fields, memory.FieldSummary)
	}
	if m.importance != nil {
		fields = append(fields, memory.FieldImportance)
	}
	if m.confidence != nil {
		fields = append(fields, memory.FieldConfidence)
	}
	if m.state != nil {
		fields = append(fields, memory.FieldState)
	}
	if m.recency_score != nil {
		fields = append(fields, memory.FieldRecencyScore)
	}
	if m.decay_score != nil {
		fields = append(fields, memory.FieldDecayScore)
	}
	if m.access_count != nil {
		fields = append(fields, memory.FieldAccessCount)
	}
	if m.last_accessed_at != nil {
		fields = append(fields, memory.FieldLastAccessedAt)
	}
	if m.time_start != nil {
		fields = append(fields, memory.FieldTimeStart)
	}
	if m.time_end != nil {
		fields = append(fields, memory.FieldTimeEnd)
	}
	if m.metadata != nil {
		fields = append(fields, memory.FieldMetadata)
	}
	if m.embedding != nil {
		fields = append(fields, memory.FieldEmbedding)
	}
	if m.embedding_model != nil {
		fields = append(fields, memory.FieldEmbeddingModel)
	}
	if m.is_deleted != nil {
		fields = append(fields, memory.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, memory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, memory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memory.FieldAnimaID:
		return m.AnimaID()
	case memory.FieldContent:
		return m.Content()
	case memory.FieldSummary:
		return m.Summary()
	case memory.FieldImportance:
		return m.Importance()
	case memory.FieldConfidence:
		return m.Confidence()
	case memory.FieldState:
		return m.State()
	case memory.FieldRecencyScore:
		return m.RecencyScore()
	case memory.FieldDecayScore:
		return m.DecayScore()
	case memory.FieldAccessCount:
		return m.AccessCount()
	case memory.FieldLastAccessedAt:
		return m.LastAccessedAt()
	case memory.FieldTimeStart:
		return m.TimeStart()
	case memory.FieldTimeEnd:
		return m.TimeEnd()
	case memory.FieldMetadata:
		return m.Metadata()
	case memory.FieldEmbedding:
		return m.Embedding()
	case memory.FieldEmbeddingModel:
		return m.EmbeddingModel()
	case memory.FieldIsDeleted:
		return m.IsDeleted()
	case memory.FieldCreatedAt:
		return m.CreatedAt()
	case memory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memory.FieldAnimaID:
		return m.OldAnimaID(ctx)
	case memory.FieldContent:
		return m.OldContent(ctx)
	case memory.FieldSummary:
		return m.OldSummary(ctx)
	case memory.FieldImportance:
		return m.OldImportance(ctx)
	case memory.FieldConfidence:
		return m.OldConfidence(ctx)
	case memory.FieldState:
		return m.OldState(ctx)
	case memory.FieldRecencyScore:
		return m.OldRecencyScore(ctx)
	case memory.FieldDecayScore:
		return m.OldDecayScore(ctx)
	case memory.FieldAccessCount:
		return m.OldAccessCount(ctx)
	case memory.FieldLastAccessedAt:
		return m.OldLastAccessedAt(ctx)
	case memory.FieldTimeStart:
		return m.OldTimeStart(ctx)
	case memory.FieldTimeEnd:
		return m.OldTimeEnd(ctx)
	case memory.FieldMetadata:
		return m.OldMetadata(ctx)
	case memory.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case memory.FieldEmbeddingModel:
		return m.OldEmbeddingModel(ctx)
	case memory.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case memory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Memory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memory.FieldAnimaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnimaID(v)
		return nil
	case memory.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memory.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case memory.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportance(v)
		return nil
	case memory.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case memory.FieldState:
		v, ok := value.(memory.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case memory.FieldRecencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecencyScore(v)
		return nil
	case memory.FieldDecayScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecayScore(v)
		return nil
	case memory.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	case memory.FieldLastAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessedAt(v)
		return nil
	case memory.FieldTimeStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeStart(v)
		return nil
	case memory.FieldTimeEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeEnd(v)
		return nil
	case memory.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case memory.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case memory.FieldEmbeddingModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingModel(v)
		return nil
	case memory.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case memory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Memory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryMutation) AddedFields() []string {
	var fields []string
	if m.addimportance != nil {
		fields = append(fields, memory.FieldImportance)
	}
	if m.addconfidence != nil {
		fields = append(fields, memory.FieldConfidence)
	}
	if m.addrecency_score != nil {
		fields = append(fields, memory.FieldRecencyScore)
	}
	if m.adddecay_score != nil {
		fields = append(fields, memory.FieldDecayScore)
	}
	if m.addaccess_count != nil {
		fields = append(fields, memory.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memory.FieldImportance:
		return m.AddedImportance()
	case memory.FieldConfidence:
		return m.AddedConfidence()
	case memory.FieldRecencyScore:
		return m.AddedRecencyScore()
	case memory.FieldDecayScore:
		return m.AddedDecayScore()
	case memory.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memory.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportance(v)
		return nil
	case memory.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case memory.FieldRecencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecencyScore(v)
		return nil
	case memory.FieldDecayScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDecayScore(v)
		return nil
	case memory.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown Memory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memory.FieldSummary) {
		fields = append(fields, memory.FieldSummary)
	}
	if m.FieldCleared(memory.FieldImportance) {
		fields = append(fields, memory.FieldImportance)
	}
	if m.FieldCleared(memory.FieldConfidence) {
		fields = append(fields, memory.FieldConfidence)
	}
	if m.FieldCleared(memory.FieldRecencyScore) {
		fields = append(fields, memory.FieldRecencyScore)
	}
	if m.FieldCleared(memory.FieldDecayScore) {
		fields = append(fields, memory.FieldDecayScore)
	}
	if m.FieldCleared(memory.FieldLastAccessedAt) {
		fields = append(fields, memory.FieldLastAccessedAt)
	}
	if m.FieldCleared(memory.FieldTimeStart) {
		fields = append(fields, memory.FieldTimeStart)
	}
	if m.FieldCleared(memory.FieldTimeEnd) {
		fields = append(fields, memory.FieldTimeEnd)
	}
	if m.FieldCleared(memory.FieldMetadata) {
		fields = append(fields, memory.FieldMetadata)
	}
	if m.FieldCleared(memory.FieldEmbedding) {
		fields = append(fields, memory.FieldEmbedding)
	}
	if m.FieldCleared(memory.FieldEmbeddingModel) {
		fields = append(fields, memory.FieldEmbeddingModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryMutation) ClearField(name string) error {
	switch name {
	case memory.FieldSummary:
		m.ClearSummary()
		return nil
	case memory.FieldImportance:
		m.ClearImportance()
		return nil
	case memory.FieldConfidence:
		m.ClearConfidence()
		return nil
	case memory.FieldRecencyScore:
		m.ClearRecencyScore()
		return nil
	case memory.FieldDecayScore:
		m.ClearDecayScore()
		return nil
	case memory.FieldLastAccessedAt:
		m.ClearLastAccessedAt()
		return nil
	case memory.FieldTimeStart:
		m.ClearTimeStart()
		return nil
	case memory.FieldTimeEnd:
		m.ClearTimeEnd()
		return nil
	case memory.FieldMetadata:
		m.ClearMetadata()
		return nil
	case memory.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case memory.FieldEmbeddingModel:
		m.ClearEmbeddingModel()
		return nil
	}
	return fmt.Errorf("unknown Memory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryMutation) ResetField(name string) error {
	switch name {
	case memory.FieldAnimaID:
		m.ResetAnimaID()
		return nil
	case memory.FieldContent:
		m.ResetContent()
		return nil
	case memory.FieldSummary:
		m.ResetSummary()
		return nil
	case memory.FieldImportance:
		m.ResetImportance()
		return nil
	case memory.FieldConfidence:
		m.ResetConfidence()
		return nil
	case memory.FieldState:
		m.ResetState()
		return nil
	case memory.FieldRecencyScore:
		m.ResetRecencyScore()
		return nil
	case memory.FieldDecayScore:
		m.ResetDecayScore()
		return nil
	case memory.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	case memory.FieldLastAccessedAt:
		m.ResetLastAccessedAt()
		return nil
	case memory.FieldTimeStart:
		m.ResetTimeStart()
		return nil
	case memory.FieldTimeEnd:
		m.ResetTimeEnd()
		return nil
	case memory.FieldMetadata:
		m.ResetMetadata()
		return nil
	case memory.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case memory.FieldEmbeddingModel:
		m.ResetEmbeddingModel()
		return nil
	case memory.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case memory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Memory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.anima != nil {
		edges = append(edges, memory.EdgeAnima)
	}
	if m.event_links != nil {
		edges = append(edges, memory.EdgeEventLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case memory.EdgeAnima:
		if id := m.anima; id != nil {
			return []ent.Value{*id}
		}
	case memory.EdgeEventLinks:
		ids := make([]ent.Value, 0, len(m.event_links))
		for id := range m.event_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevent_links != nil {
		edges = append(edges, memory.EdgeEventLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case memory.EdgeEventLinks:
		ids := make([]ent.Value, 0, len(m.removedevent_links))
		for id := range m.removedevent_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanima {
		edges = append(edges, memory.EdgeAnima)
	}
	if m.clearedevent_links {
		edges = append(edges, memory.EdgeEventLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryMutation) EdgeCleared(name string) bool {
	switch name {
	case memory.EdgeAnima:
		return m.clearedanima
	case memory.EdgeEventLinks:
		return m.clearedevent_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryMutation) ClearEdge(name string) error {
	switch name {
	case memory.EdgeAnima:
		m.ClearAnima()
		return nil
	}
	return fmt.Errorf("unknown Memory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryMutation) ResetEdge(name string) error {
	switch name {
	case memory.EdgeAnima:
		m.ResetAnima()
		return nil
	case memory.EdgeEventLinks:
		m.ResetEventLinks()
		return nil
	}
	return fmt.Errorf("unknown Memory edge %s", name)
}

// MemoryEventMutation represents an operation that mutates the MemoryEvent nodes in the graph.
type MemoryEventMutation struct {
	config
	op               Op
	typ              string
	id               *string
	link_strength    *float64
	addlink_strength *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	memory           *string
	clearedmemory    bool
	event            *string
	clearedevent     bool
	done             bool
	oldValue         func(context.Context) (*MemoryEvent, error)
	predicates       []predicate.MemoryEvent
}

var _ ent.Mutation = (*MemoryEventMutation)(nil)

// memoryeventOption allows management of the mutation configuration using functional options.
type memoryeventOption func(*MemoryEventMutation)

// newMemoryEventMutation creates new mutation for the MemoryEvent entity.
func newMemoryEventMutation(c config, op Op, opts ...memoryeventOption) *MemoryEventMutation {
	m := &MemoryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryEventID sets the ID field of the mutation.
func withMemoryEventID(id string) memoryeventOption {
	return func(m *MemoryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryEvent
		)
		m.oldValue = func(ctx context.Context) (*MemoryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryEvent sets the old MemoryEvent of the mutation.
func withMemoryEvent(node *MemoryEvent) memoryeventOption {
	return func(m *MemoryEventMutation) {
		m.oldValue = func(context.Context) (*MemoryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryEvent entities.
func (m *MemoryEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMemoryID sets the "memory_id" field.
func (m *MemoryEventMutation) SetMemoryID(s string) {
	m.memory = &s
}

// MemoryID returns the value of the "memory_id" field in the mutation.
func (m *MemoryEventMutation) MemoryID() (r string, exists bool) {
	v := m.memory
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryID returns the old "memory_id" field's value of the MemoryEvent entity.
// If the MemoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEventMutation) OldMemoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryID: %w", err)
	}
	return oldValue.MemoryID, nil
}

// ResetMemoryID resets all changes to the "memory_id" field.
func (m *MemoryEventMutation) ResetMemoryID() {
	m.memory = nil
}

// SetEventID sets the "event_id" field.
func (m *MemoryEventMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *MemoryEventMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the MemoryEvent entity.
// If the MemoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *MemoryEventMutation) ResetEventID() {
	m.event = nil
}

// SetLinkStrength sets the "link_strength" field.
func (m *MemoryEventMutation) SetLinkStrength(f float64) {
	m.link_strength = &f
	m.addlink_strength = nil
}

// LinkStrength returns the value of the "link_strength" field in the mutation.
func (m *MemoryEventMutation) LinkStrength() (r float64, exists bool) {
	v := m.link_strength
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkStrength returns the old "link_strength" field's value of the MemoryEvent entity.
// If the MemoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEventMutation) OldLinkStrength(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkStrength: %w", err)
	}
	return oldValue.LinkStrength, nil
}

// AddLinkStrength adds f to the "link_strength" field.
func (m *MemoryEventMutation) AddLinkStrength(f float64) {
	if m.addlink_strength != nil {
		*m.addlink_strength += f
	} else {
		m.addlink_strength = &f
	}
}

// AddedLinkStrength returns the value that was added to the "link_strength" field in this mutation.
func (m *MemoryEventMutation) AddedLinkStrength() (r float64, exists bool) {
	v := m.addlink_strength
	if v == nil {
		return
	}
	return *v, true
}

// ClearLinkStrength clears the value of the "link_strength" field.
func (m *MemoryEventMutation) ClearLinkStrength() {
	m.link_strength = nil
	m.addlink_strength = nil
	m.clearedFields[memoryevent.FieldLinkStrength] = struct{}{}
}

// LinkStrengthCleared returns if the "link_strength" field was cleared in this mutation.
func (m *MemoryEventMutation) LinkStrengthCleared() bool {
	_, ok := m.clearedFields[memoryevent.FieldLinkStrength]
	return ok
}

// ResetLinkStrength resets all changes to the "link_strength" field.
func (m *MemoryEventMutation) ResetLinkStrength() {
	m.link_strength = nil
	m.addlink_strength = nil
	delete(m.clearedFields, memoryevent.FieldLinkStrength)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryEvent entity.
// If the MemoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMemory clears the "memory" edge to the Memory entity.
func (m *MemoryEventMutation) ClearMemory() {
	m.clearedmemory = true
	m.clearedFields[memoryevent.FieldMemoryID] = struct{}{}
}

// MemoryCleared reports if the "memory" edge to the Memory entity was cleared.
func (m *MemoryEventMutation) MemoryCleared() bool {
	return m.clearedmemory
}

// MemoryIDs returns the "memory" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemoryID instead. It exists only for internal usage by the builders.
func (m *MemoryEventMutation) MemoryIDs() (ids []string) {
	if id := m.memory; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMemory resets all changes to the "memory" edge.
func (m *MemoryEventMutation) ResetMemory() {
	m.memory = nil
	m.clearedmemory = false
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *MemoryEventMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[memoryevent.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *MemoryEventMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *MemoryEventMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *MemoryEventMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// Where appends a list predicates to the MemoryEventMutation builder.
func (m *MemoryEventMutation) Where(ps ...predicate.MemoryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryEvent).
func (m *MemoryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.memory != nil {
		fields = append(fields, memoryevent.FieldMemoryID)
	}
	if m.event != nil {
		fields = append(fields, memoryevent.FieldEventID)
	}
	if m.link_strength != nil {
		fields = append(fields, memoryevent.FieldLinkStrength)
	}
	if m.created_at != nil {
		fields = append(fields, memoryevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryevent.FieldMemoryID:
		return m.MemoryID()
	case memoryevent.FieldEventID:
		return m.EventID()
	case memoryevent.FieldLinkStrength:
		return m.LinkStrength()
	case memoryevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryevent.FieldMemoryID:
		return m.OldMemoryID(ctx)
	case memoryevent.FieldEventID:
		return m.OldEventID(ctx)
	case memoryevent.FieldLinkStrength:
		return m.OldLinkStrength(ctx)
	case memoryevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryevent.FieldMemoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryID(v)
		return nil
	case memoryevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case memoryevent.FieldLinkStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkStrength(v)
		return nil
	case memoryevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryEventMutation) AddedFields() []string {
	var fields []string
	if m.addlink_strength != nil {
		fields = append(fields, memoryevent.FieldLinkStrength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryevent.FieldLinkStrength:
		return m.AddedLinkStrength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryevent.FieldLinkStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLinkStrength(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryevent.FieldLinkStrength) {
		fields = append(fields, memoryevent.FieldLinkStrength)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryEventMutation) ClearField(name string) error {
	switch name {
	case memoryevent.FieldLinkStrength:
		m.ClearLinkStrength()
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryEventMutation) ResetField(name string) error {
	switch name {
	case memoryevent.FieldMemoryID:
		m.ResetMemoryID()
		return nil
	case memoryevent.FieldEventID:
		m.ResetEventID()
		return nil
	case memoryevent.FieldLinkStrength:
		m.ResetLinkStrength()
		return nil
	case memoryevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.memory != nil {
		edges = append(edges, memoryevent.EdgeMemory)
	}
	if m.event != nil {
		edges = append(edges, memoryevent.EdgeEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case memoryevent.EdgeMemory:
		if id := m.memory; id != nil {
			return []ent.Value{*id}
		}
	case memoryevent.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmemory {
		edges = append(edges, memoryevent.EdgeMemory)
	}
	if m.clearedevent {
		edges = append(edges, memoryevent.EdgeEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryEventMutation) EdgeCleared(name string) bool {
	switch name {
	case memoryevent.EdgeMemory:
		return m.clearedmemory
	case memoryevent.EdgeEvent:
		return m.clearedevent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryEventMutation) ClearEdge(name string) error {
	switch name {
	case memoryevent.EdgeMemory:
		m.ClearMemory()
		return nil
	case memoryevent.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryEventMutation) ResetEdge(name string) error {
	switch name {
	case memoryevent.EdgeMemory:
		m.ResetMemory()
		return nil
	case memoryevent.EdgeEvent:
		m.ResetEvent()
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent edge %s", name)
}

// MemoryPackMutation represents an operation that mutates the MemoryPack nodes in the graph.
type MemoryPackMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	query              *string
	preset             *string
	session_count      *int
	addsession_count   *int
	knowledge_count    *int
	addknowledge_count *int
	long_term_count    *int
	addlong_term_count *int
	token_count        *int
	addtoken_count     *int
	max_tokens         *int
	addmax_tokens      *int
	content            *map[string]interface{}
	compiled_at        *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	anima              *string
	clearedanima       bool
	done               bool
	oldValue           func(context.Context) (*MemoryPack, error)
	predicates         []predicate.MemoryPack
}

var _ ent.Mutation = (*MemoryPackMutation)(nil)

// memorypackOption allows management of the mutation configuration using functional options.
type memorypackOption func(*MemoryPackMutation)

// newMemoryPackMutation creates new mutation for the MemoryPack entity.
func newMemoryPackMutation(c config, op Op, opts ...memorypackOption) *MemoryPackMutation {
	m := &MemoryPackMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryPack,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryPackID sets the ID field of the mutation.
func withMemoryPackID(id string) memorypackOption {
	return func(m *MemoryPackMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryPack
		)
		m.oldValue = func(ctx context.Context) (*MemoryPack, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryPack.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryPack sets the old MemoryPack of the mutation.
func withMemoryPack(node *MemoryPack) memorypackOption {
	return func(m *MemoryPackMutation) {
		m.oldValue = func(context.Context) (*MemoryPack, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryPackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryPackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryPack entities.
func (m *MemoryPackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryPackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryPackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryPack.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnimaID sets the "anima_id" field.
func (m *MemoryPackMutation) SetAnimaID(s string) {
	m.anima = &s
}

// AnimaID returns the value of the "anima_id" field in the mutation.
func (m *MemoryPackMutation) AnimaID() (r string, exists bool) {
	v := m.anima
	if v == nil {
		return
	}
	return *v, true
}

// OldAnimaID returns the old "anima_id" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldAnimaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnimaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnimaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnimaID: %w", err)
	}
	return oldValue.AnimaID, nil
}

// ResetAnimaID resets all changes to the "anima_id" field.
func (m *MemoryPackMutation) ResetAnimaID() {
	m.anima = nil
}

// SetQuery sets the "query" field.
func (m *MemoryPackMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *MemoryPackMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldQuery(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ClearQuery clears the value of the "query" field.
func (m *MemoryPackMutation) ClearQuery() {
	m.query = nil
	m.clearedFields[memorypack.FieldQuery] = struct{}{}
}

// QueryCleared returns if the "query" field was cleared in this mutation.
func (m *MemoryPackMutation) QueryCleared() bool {
	_, ok := m.clearedFields[memorypack.FieldQuery]
	return ok
}

// ResetQuery resets all changes to the "query" field.
func (m *MemoryPackMutation) ResetQuery() {
	m.query = nil
	delete(m.clearedFields, memorypack.FieldQuery)
}

// SetPreset sets the "preset" field.
func (m *MemoryPackMutation) SetPreset(s string) {
	m.preset = &s
}

// Preset returns the value of the "preset" field in the mutation.
func (m *MemoryPackMutation) Preset() (r string, exists bool) {
	v := m.preset
	if v == nil {
		return
	}
	return *v, true
}

// OldPreset returns the old "preset" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldPreset(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreset: %w", err)
	}
	return oldValue.Preset, nil
}

// ClearPreset clears the value of the "preset" field.
func (m *MemoryPackMutation) ClearPreset() {
	m.preset = nil
	m.clearedFields[memorypack.FieldPreset] = struct{}{}
}

// PresetCleared returns if the "preset" field was cleared in this mutation.
func (m *MemoryPackMutation) PresetCleared() bool {
	_, ok := m.clearedFields[memorypack.FieldPreset]
	return ok
}

// ResetPreset resets all changes to the "preset" field.
func (m *MemoryPackMutation) ResetPreset() {
	m.preset = nil
	delete(m.clearedFields, memorypack.FieldPreset)
}

// SetSessionCount sets the "session_count" field.
func (m *MemoryPackMutation) SetSessionCount(i int) {
	m.session_count = &i
	m.addsession_count = nil
}

// SessionCount returns the value of the "session_count" field in the mutation.
func (m *MemoryPackMutation) SessionCount() (r int, exists bool) {
	v := m.session_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCount returns the old "session_count" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldSessionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCount: %w", err)
	}
	return oldValue.SessionCount, nil
}

// AddSessionCount adds i to the "session_count" field.
func (m *MemoryPackMutation) AddSessionCount(i int) {
	if m.addsession_count != nil {
		*m.addsession_count += i
	} else {
		m.addsession_count = &i
	}
}

// AddedSessionCount returns the value that was added to the "session_count" field in this mutation.
func (m *MemoryPackMutation) AddedSessionCount() (r int, exists bool) {
	v := m.addsession_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionCount resets all changes to the "session_count" field.
func (m *MemoryPackMutation) ResetSessionCount() {
	m.session_count = nil
	m.addsession_count = nil
}

// SetKnowledgeCount sets the "knowledge_count" field.
func (m *MemoryPackMutation) SetKnowledgeCount(i int) {
	m.knowledge_count = &i
	m.addknowledge_count = nil
}

// KnowledgeCount returns the value of the "knowledge_count" field in the mutation.
func (m *MemoryPackMutation) KnowledgeCount() (r int, exists bool) {
	v := m.knowledge_count
	if v == nil {
		return
	}
	return *v, true
}

// OldKnowledgeCount returns the old "knowledge_count" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldKnowledgeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnowledgeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnowledgeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnowledgeCount: %w", err)
	}
	return oldValue.KnowledgeCount, nil
}

// AddKnowledgeCount adds i to the "knowledge_count" field.
func (m *MemoryPackMutation) AddKnowledgeCount(i int) {
	if m.addknowledge_count != nil {
		*m.addknowledge_count += i
	} else {
		m.addknowledge_count = &i
	}
}

// AddedKnowledgeCount returns the value that was added to the "knowledge_count" field in this mutation.
func (m *MemoryPackMutation) AddedKnowledgeCount() (r int, exists bool) {
	v := m.addknowledge_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetKnowledgeCount resets all changes to the "knowledge_count" field.
func (m *MemoryPackMutation) ResetKnowledgeCount() {
	m.knowledge_count = nil
	m.addknowledge_count = nil
}

// SetLongTermCount sets the "long_term_count" field.
func (m *MemoryPackMutation) SetLongTermCount(i int) {
	m.long_term_count = &i
	m.addlong_term_count = nil
}

// LongTermCount returns the value of the "long_term_count" field in the mutation.
func (m *MemoryPackMutation) LongTermCount() (r int, exists bool) {
	v := m.long_term_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLongTermCount returns the old "long_term_count" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldLongTermCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongTermCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongTermCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongTermCount: %w", err)
	}
	return oldValue.LongTermCount, nil
}

// AddLongTermCount adds i to the "long_term_count" field.
func (m *MemoryPackMutation) AddLongTermCount(i int) {
	if m.addlong_term_count != nil {
		*m.addlong_term_count += i
	} else {
		m.addlong_term_count = &i
	}
}

// AddedLongTermCount returns the value that was added to the "long_term_count" field in this mutation.
func (m *MemoryPackMutation) AddedLongTermCount() (r int, exists bool) {
	v := m.addlong_term_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongTermCount resets all changes to the "long_term_count" field.
func (m *MemoryPackMutation) ResetLongTermCount() {
	m.long_term_count = nil
	m.addlong_term_count = nil
}

// SetTokenCount sets the "token_count" field.
func (m *MemoryPackMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *MemoryPackMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *MemoryPackMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *MemoryPackMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *MemoryPackMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *MemoryPackMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *MemoryPackMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *MemoryPackMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *MemoryPackMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *MemoryPackMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetContent sets the "content" field.
func (m *MemoryPackMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryPackMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *MemoryPackMutation) ClearContent() {
	m.content = nil
	m.clearedFields[memorypack.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *MemoryPackMutation) ContentCleared() bool {
	_, ok := m.clearedFields[memorypack.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *MemoryPackMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, memorypack.FieldContent)
}

// SetCompiledAt sets the "compiled_at" field.
func (m *MemoryPackMutation) SetCompiledAt(t time.Time) {
	m.compiled_at = &t
}

// CompiledAt returns the value of the "compiled_at" field in the mutation.
func (m *MemoryPackMutation) CompiledAt() (r time.Time, exists bool) {
	v := m.compiled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledAt returns the old "compiled_at" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldCompiledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledAt: %w", err)
	}
	return oldValue.CompiledAt, nil
}

// ResetCompiledAt resets all changes to the "compiled_at" field.
func (m *MemoryPackMutation) ResetCompiledAt() {
	m.compiled_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryPackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryPackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryPackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MemoryPackMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MemoryPackMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MemoryPack entity.
// If the MemoryPack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryPackMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MemoryPackMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAnima clears the "anima" edge to the Anima entity.
func (m *MemoryPackMutation) ClearAnima() {
	m.clearedanima = true
	m.clearedFields[memorypack.FieldAnimaID] = struct{}{}
}

// AnimaCleared reports if the "anima" edge to the Anima entity was cleared.
func (m *MemoryPackMutation) AnimaCleared() bool {
	return m.clearedanima
}

// AnimaIDs returns the "anima" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnimaID instead. It exists only for internal usage by the builders.
func (m *MemoryPackMutation) AnimaIDs() (ids []string) {
	if id := m.anima; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnima resets all changes to the "anima" edge.
func (m *MemoryPackMutation) ResetAnima() {
	m.anima = nil
	m.clearedanima = false
}

// Where appends a list predicates to the MemoryPackMutation builder.
func (m *MemoryPackMutation) Where(ps ...predicate.MemoryPack) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryPackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryPackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryPack, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryPackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryPackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryPack).
func (m *MemoryPackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryPackMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.anima != nil {
		fields = append(fields, memorypack.FieldAnimaID)
	}
	if m.query != nil {
		fields = append(fields, memorypack.FieldQuery)
	}
	if m.preset != nil {
		fields = append(fields, memorypack.FieldPreset)
	}
	if m.session_count != nil {
		fields = append(fields, memorypack.FieldSessionCount)
	}
	if m.knowledge_count != nil {
		fields = append(fields, memorypack.FieldKnowledgeCount)
	}
	if m.long_term_count != nil {
		fields = append(fields, memorypack.FieldLongTermCount)
	}
	if m.token_count != nil {
		fields = append(fields, memorypack.FieldTokenCount)
	}
	if m.max_tokens != nil {
		fields = append(fields, memorypack.FieldMaxTokens)
	}
	if m.content != nil {
		fields = append(fields, memorypack.FieldContent)
	}
	if m.compiled_at != nil {
		fields = append(fields, memorypack.FieldCompiledAt)
	}
	if m.created_at != nil {
		fields = append(fields, memorypack.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, memorypack.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryPackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memorypack.FieldAnimaID:
		return m.AnimaID()
	case memorypack.FieldQuery:
		return m.Query()
	case memorypack.FieldPreset:
		return m.Preset()
	case memorypack.FieldSessionCount:
		return m.SessionCount()
	case memorypack.FieldKnowledgeCount:
		return m.KnowledgeCount()
	case memorypack.FieldLongTermCount:
		return m.LongTermCount()
	case memorypack.FieldTokenCount:
		return m.TokenCount()
	case memorypack.FieldMaxTokens:
		return m.MaxTokens()
	case memorypack.FieldContent:
		return m.Content()
	case memorypack.FieldCompiledAt:
		return m.CompiledAt()
	case memorypack.FieldCreatedAt:
		return m.CreatedAt()
	case memorypack.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryPackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memorypack.FieldAnimaID:
		return m.OldAnimaID(ctx)
	case memorypack.FieldQuery:
		return m.OldQuery(ctx)
	case memorypack.FieldPreset:
		return m.OldPreset(ctx)
	case memorypack.FieldSessionCount:
		return m.OldSessionCount(ctx)
	case memorypack.FieldKnowledgeCount:
		return m.OldKnowledgeCount(ctx)
	case memorypack.FieldLongTermCount:
		return m.OldLongTermCount(ctx)
	case memorypack.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case memorypack.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case memorypack.FieldContent:
		return m.OldContent(ctx)
	case memorypack.FieldCompiledAt:
		return m.OldCompiledAt(ctx)
	case memorypack.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memorypack.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryPack field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryPackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memorypack.FieldAnimaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnimaID(v)
		return nil
	case memorypack.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case memorypack.FieldPreset:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreset(v)
		return nil
	case memorypack.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCount(v)
		return nil
	case memorypack.FieldKnowledgeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnowledgeCount(v)
		return nil
	case memorypack.FieldLongTermCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongTermCount(v)
		return nil
	case memorypack.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case memorypack.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case memorypack.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memorypack.FieldCompiledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledAt(v)
		return nil
	case memorypack.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memorypack.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryPack field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryPackMutation) AddedFields() []string {
	var fields []string
	if m.addsession_count != nil {
		fields = append(fields, memorypack.FieldSessionCount)
	}
	if m.addknowledge_count != nil {
		fields = append(fields, memorypack.FieldKnowledgeCount)
	}
	if m.addlong_term_count != nil {
		fields = append(fields, memorypack.FieldLongTermCount)
	}
	if m.addtoken_count != nil {
		fields = append(fields, memorypack.FieldTokenCount)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, memorypack.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryPackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memorypack.FieldSessionCount:
		return m.AddedSessionCount()
	case memorypack.FieldKnowledgeCount:
		return m.AddedKnowledgeCount()
	case memorypack.FieldLongTermCount:
		return m.AddedLongTermCount()
	case memorypack.FieldTokenCount:
		return m.AddedTokenCount()
	case memorypack.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryPackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memorypack.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionCount(v)
		return nil
	case memorypack.FieldKnowledgeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKnowledgeCount(v)
		return nil
	case memorypack.FieldLongTermCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongTermCount(v)
		return nil
	case memorypack.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	case memorypack.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryPack numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryPackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memorypack.FieldQuery) {
		fields = append(fields, memorypack.FieldQuery)
	}
	if m.FieldCleared(memorypack.FieldPreset) {
		fields = append(fields, memorypack.FieldPreset)
	}
	if m.FieldCleared(memorypack.FieldContent) {
		fields = append(fields, memorypack.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryPackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryPackMutation) ClearField(name string) error {
	switch name {
	case memorypack.FieldQuery:
		m.ClearQuery()
		return nil
	case memorypack.FieldPreset:
		m.ClearPreset()
		return nil
	case memorypack.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown MemoryPack nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryPackMutation) ResetField(name string) error {
	switch name {
	case memorypack.FieldAnimaID:
		m.ResetAnimaID()
		return nil
	case memorypack.FieldQuery:
		m.ResetQuery()
		return nil
	case memorypack.FieldPreset:
		m.ResetPreset()
		return nil
	case memorypack.FieldSessionCount:
		m.ResetSessionCount()
		return nil
	case memorypack.FieldKnowledgeCount:
		m.ResetKnowledgeCount()
		return nil
	case memorypack.FieldLongTermCount:
		m.ResetLongTermCount()
		return nil
	case memorypack.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case memorypack.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case memorypack.FieldContent:
		m.ResetContent()
		return nil
	case memorypack.FieldCompiledAt:
		m.ResetCompiledAt()
		return nil
	case memorypack.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memorypack.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryPack field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryPackMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.anima != nil {
		edges = append(edges, memorypack.EdgeAnima)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryPackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case memorypack.EdgeAnima:
		if id := m.anima; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryPackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryPackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryPackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanima {
		edges = append(edges, memorypack.EdgeAnima)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryPackMutation) EdgeCleared(name string) bool {
	switch name {
	case memorypack.EdgeAnima:
		return m.clearedanima
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryPackMutation) ClearEdge(name string) error {
	switch name {
	case memorypack.EdgeAnima:
		m.ClearAnima()
		return nil
	}
	return fmt.Errorf("unknown MemoryPack unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryPackMutation) ResetEdge(name string) error {
	switch name {
	case memorypack.EdgeAnima:
		m.ResetAnima()
		return nil
	}
	return fmt.Errorf("unknown MemoryPack edge %s", name)
}

// SynthesisConfigMutation represents an operation that mutates the SynthesisConfig nodes in the graph.
type SynthesisConfigMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	time_weight             *float64
	addtime_weight          *float64
	event_weight            *float64
	addevent_weight         *float64
	token_weight            *float64
	addtoken_weight         *float64
	threshold               *float64
	addthreshold            *float64
	temperature             *float64
	addtemperature          *float64
	max_tokens              *int
	addmax_tokens           *int
	interval_hours          *int
	addinterval_hours       *int
	last_synthesis_check_at *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	anima                   *string
	clearedanima            bool
	done                    bool
	oldValue                func(context.Context) (*SynthesisConfig, error)
	predicates              []predicate.SynthesisConfig
}

var _ ent.Mutation = (*SynthesisConfigMutation)(nil)

// synthesisconfigOption allows management of the mutation configuration using functional options.
type synthesisconfigOption func(*SynthesisConfigMutation)

// newSynthesisConfigMutation creates new mutation for the SynthesisConfig entity.
func newSynthesisConfigMutation(c config, op Op, opts ...synthesisconfigOption) *SynthesisConfigMutation {
	m := &SynthesisConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeSynthesisConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSynthesisConfigID sets the ID field of the mutation.
func withSynthesisConfigID(id string) synthesisconfigOption {
	return func(m *SynthesisConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *SynthesisConfig
		)
		m.oldValue = func(ctx context.Context) (*SynthesisConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SynthesisConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSynthesisConfig sets the old SynthesisConfig of the mutation.
func withSynthesisConfig(node *SynthesisConfig) synthesisconfigOption {
	return func(m *SynthesisConfigMutation) {
		m.oldValue = func(context.Context) (*SynthesisConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SynthesisConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SynthesisConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SynthesisConfig entities.
func (m *SynthesisConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SynthesisConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SynthesisConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SynthesisConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnimaID sets the "anima_id" field.
func (m *SynthesisConfigMutation) SetAnimaID(s string) {
	m.anima = &s
}

// AnimaID returns the value of the "anima_id" field in the mutation.
func (m *SynthesisConfigMutation) AnimaID() (r string, exists bool) {
	v := m.anima
	if v == nil {
		return
	}
	return *v, true
}

// OldAnimaID returns the old "anima_id" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldAnimaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnimaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnimaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnimaID: %w", err)
	}
	return oldValue.AnimaID, nil
}

// ResetAnimaID resets all changes to the "anima_id" field.
func (m *SynthesisConfigMutation) ResetAnimaID() {
	m.anima = nil
}

// SetTimeWeight sets the "time_weight" field.
func (m *SynthesisConfigMutation) SetTimeWeight(f float64) {
	m.time_weight = &f
	m.addtime_weight = nil
}

// TimeWeight returns the value of the "time_weight" field in the mutation.
func (m *SynthesisConfigMutation) TimeWeight() (r float64, exists bool) {
	v := m.time_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeWeight returns the old "time_weight" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldTimeWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeWeight: %w", err)
	}
	return oldValue.TimeWeight, nil
}

// AddTimeWeight adds f to the "time_weight" field.
func (m *SynthesisConfigMutation) AddTimeWeight(f float64) {
	if m.addtime_weight != nil {
		*m.addtime_weight += f
	} else {
		m.addtime_weight = &f
	}
}

// AddedTimeWeight returns the value that was added to the "time_weight" field in this mutation.
func (m *SynthesisConfigMutation) AddedTimeWeight() (r float64, exists bool) {
	v := m.addtime_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeWeight resets all changes to the "time_weight" field.
func (m *SynthesisConfigMutation) ResetTimeWeight() {
	m.time_weight = nil
	m.addtime_weight = nil
}

// SetEventWeight sets the "event_weight" field.
func (m *SynthesisConfigMutation) SetEventWeight(f float64) {
	m.event_weight = &f
	m.addevent_weight = nil
}

// EventWeight returns the value of the "event_weight" field in the mutation.
func (m *SynthesisConfigMutation) EventWeight() (r float64, exists bool) {
	v := m.event_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldEventWeight returns the old "event_weight" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldEventWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventWeight: %w", err)
	}
	return oldValue.EventWeight, nil
}

// AddEventWeight adds f to the "event_weight" field.
func (m *SynthesisConfigMutation) AddEventWeight(f float64) {
	if m.addevent_weight != nil {
		*m.addevent_weight += f
	} else {
		m.addevent_weight = &f
	}
}

// AddedEventWeight returns the value that was added to the "event_weight" field in this mutation.
func (m *SynthesisConfigMutation) AddedEventWeight() (r float64, exists bool) {
	v := m.addevent_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventWeight resets all changes to the "event_weight" field.
func (m *SynthesisConfigMutation) ResetEventWeight() {
	m.event_weight = nil
	m.addevent_weight = nil
}

// SetTokenWeight sets the "token_weight" field.
func (m *SynthesisConfigMutation) SetTokenWeight(f float64) {
	m.token_weight = &f
	m.addtoken_weight = nil
}

// TokenWeight returns the value of the "token_weight" field in the mutation.
func (m *SynthesisConfigMutation) TokenWeight() (r float64, exists bool) {
	v := m.token_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenWeight returns the old "token_weight" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldTokenWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenWeight: %w", err)
	}
	return oldValue.TokenWeight, nil
}

// AddTokenWeight adds f to the "token_weight" field.
func (m *SynthesisConfigMutation) AddTokenWeight(f float64) {
	if m.addtoken_weight != nil {
		*m.addtoken_weight += f
	} else {
		m.addtoken_weight = &f
	}
}

// AddedTokenWeight returns the value that was added to the "token_weight" field in this mutation.
func (m *SynthesisConfigMutation) AddedTokenWeight() (r float64, exists bool) {
	v := m.addtoken_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenWeight resets all changes to the "token_weight" field.
func (m *SynthesisConfigMutation) ResetTokenWeight() {
	m.token_weight = nil
	m.addtoken_weight = nil
}

// SetThreshold sets the "threshold" field.
func (m *SynthesisConfigMutation) SetThreshold(f float64) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *SynthesisConfigMutation) Threshold() (r float64, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *SynthesisConfigMutation) AddThreshold(f float64) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *SynthesisConfigMutation) AddedThreshold() (r float64, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *SynthesisConfigMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetTemperature sets the "temperature" field.
func (m *SynthesisConfigMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *SynthesisConfigMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *SynthesisConfigMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *SynthesisConfigMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *SynthesisConfigMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *SynthesisConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *SynthesisConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *SynthesisConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *SynthesisConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *SynthesisConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetIntervalHours sets the "interval_hours" field.
func (m *SynthesisConfigMutation) SetIntervalHours(i int) {
	m.interval_hours = &i
	m.addinterval_hours = nil
}

// IntervalHours returns the value of the "interval_hours" field in the mutation.
func (m *SynthesisConfigMutation) IntervalHours() (r int, exists bool) {
	v := m.interval_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalHours returns the old "interval_hours" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldIntervalHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalHours: %w", err)
	}
	return oldValue.IntervalHours, nil
}

// AddIntervalHours adds i to the "interval_hours" field.
func (m *SynthesisConfigMutation) AddIntervalHours(i int) {
	if m.addinterval_hours != nil {
		*m.addinterval_hours += i
	} else {
		m.addinterval_hours = &i
	}
}

// AddedIntervalHours returns the value that was added to the "interval_hours" field in this mutation.
func (m *SynthesisConfigMutation) AddedIntervalHours() (r int, exists bool) {
	v := m.addinterval_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalHours resets all changes to the "interval_hours" field.
func (m *SynthesisConfigMutation) ResetIntervalHours() {
	m.interval_hours = nil
	m.addinterval_hours = nil
}

// SetLastSynthesisCheckAt sets the "last_synthesis_check_at" field.
func (m *SynthesisConfigMutation) SetLastSynthesisCheckAt(t time.Time) {
	m.last_synthesis_check_at = &t
}

// LastSynthesisCheckAt returns the value of the "last_synthesis_check_at" field in the mutation.
func (m *SynthesisConfigMutation) LastSynthesisCheckAt() (r time.Time, exists bool) {
	v := m.last_synthesis_check_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSynthesisCheckAt returns the old "last_synthesis_check_at" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldLastSynthesisCheckAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSynthesisCheckAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSynthesisCheckAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSynthesisCheckAt: %w", err)
	}
	return oldValue.LastSynthesisCheckAt, nil
}

// ClearLastSynthesisCheckAt clears the value of the "last_synthesis_check_at" field.
func (m *SynthesisConfigMutation) ClearLastSynthesisCheckAt() {
	m.last_synthesis_check_at = nil
	m.clearedFields[synthesisconfig.FieldLastSynthesisCheckAt] = struct{}{}
}

// LastSynthesisCheckAtCleared returns if the "last_synthesis_check_at" field was cleared in this mutation.
func (m *SynthesisConfigMutation) LastSynthesisCheckAtCleared() bool {
	_, ok := m.clearedFields[synthesisconfig.FieldLastSynthesisCheckAt]
	return ok
}

// ResetLastSynthesisCheckAt resets all changes to the "last_synthesis_check_at" field.
func (m *SynthesisConfigMutation) ResetLastSynthesisCheckAt() {
	m.last_synthesis_check_at = nil
	delete(m.clearedFields, synthesisconfig.FieldLastSynthesisCheckAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SynthesisConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SynthesisConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SynthesisConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SynthesisConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SynthesisConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SynthesisConfig entity.
// If the SynthesisConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SynthesisConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SynthesisConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAnima clears the "anima" edge to the Anima entity.
func (m *SynthesisConfigMutation) ClearAnima() {
	m.clearedanima = true
	m.clearedFields[synthesisconfig.FieldAnimaID] = struct{}{}
}

// AnimaCleared reports if the "anima" edge to the Anima entity was cleared.
func (m *SynthesisConfigMutation) AnimaCleared() bool {
	return m.clearedanima
}

// AnimaIDs returns the "anima" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnimaID instead. It exists only for internal usage by the builders.
func (m *SynthesisConfigMutation) AnimaIDs() (ids []string) {
	if id := m.anima; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnima resets all changes to the "anima" edge.
func (m *SynthesisConfigMutation) ResetAnima() {
	m.anima = nil
	m.clearedanima = false
}

// Where appends a list predicates to the SynthesisConfigMutation builder.
func (m *SynthesisConfigMutation) Where(ps ...predicate.SynthesisConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SynthesisConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SynthesisConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SynthesisConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SynthesisConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SynthesisConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SynthesisConfig).
func (m *SynthesisConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SynthesisConfigMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.anima != nil {
		fields = append(fields, synthesisconfig.FieldAnimaID)
	}
	if m.time_weight != nil {
		fields = append(fields, synthesisconfig.FieldTimeWeight)
	}
	if m.event_weight != nil {
		fields = append(fields, synthesisconfig.FieldEventWeight)
	}
	if m.token_weight != nil {
		fields = append(fields, synthesisconfig.FieldTokenWeight)
	}
	if m.threshold != nil {
		fields = append(fields, synthesisconfig.FieldThreshold)
	}
	if m.temperature != nil {
		fields = append(fields, synthesisconfig.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, synthesisconfig.FieldMaxTokens)
	}
	if m.interval_hours != nil {
		fields = append(fields, synthesisconfig.FieldIntervalHours)
	}
	if m.last_synthesis_check_at != nil {
		fields = append(fields, synthesisconfig.FieldLastSynthesisCheckAt)
	}
	if m.created_at != nil {
		fields = append(fields, synthesisconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, synthesisconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SynthesisConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case synthesisconfig.FieldAnimaID:
		return m.AnimaID()
	case synthesisconfig.FieldTimeWeight:
		return m.TimeWeight()
	case synthesisconfig.FieldEventWeight:
		return m.EventWeight()
	case synthesisconfig.FieldTokenWeight:
		return m.TokenWeight()
	case synthesisconfig.FieldThreshold:
		return m.Threshold()
	case synthesisconfig.FieldTemperature:
		return m.Temperature()
	case synthesisconfig.FieldMaxTokens:
		return m.MaxTokens()
	case synthesisconfig.FieldIntervalHours:
		return m.IntervalHours()
	case synthesisconfig.FieldLastSynthesisCheckAt:
		return m.LastSynthesisCheckAt()
	case synthesisconfig.FieldCreatedAt:
		return m.CreatedAt()
	case synthesisconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SynthesisConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case synthesisconfig.FieldAnimaID:
		return m.OldAnimaID(ctx)
	case synthesisconfig.FieldTimeWeight:
		return m.OldTimeWeight(ctx)
	case synthesisconfig.FieldEventWeight:
		return m.OldEventWeight(ctx)
	case synthesisconfig.FieldTokenWeight:
		return m.OldTokenWeight(ctx)
	case synthesisconfig.FieldThreshold:
		return m.OldThreshold(ctx)
	case synthesisconfig.FieldTemperature:
		return m.OldTemperature(ctx)
	case synthesisconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case synthesisconfig.FieldIntervalHours:
		return m.OldIntervalHours(ctx)
	case synthesisconfig.FieldLastSynthesisCheckAt:
		return m.OldLastSynthesisCheckAt(ctx)
	case synthesisconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case synthesisconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SynthesisConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SynthesisConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case synthesisconfig.FieldAnimaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnimaID(v)
		return nil
	case synthesisconfig.FieldTimeWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeWeight(v)
		return nil
	case synthesisconfig.FieldEventWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventWeight(v)
		return nil
	case synthesisconfig.FieldTokenWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenWeight(v)
		return nil
	case synthesisconfig.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case synthesisconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case synthesisconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case synthesisconfig.FieldIntervalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalHours(v)
		return nil
	case synthesisconfig.FieldLastSynthesisCheckAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSynthesisCheckAt(v)
		return nil
	case synthesisconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case synthesisconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SynthesisConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SynthesisConfigMutation) AddedFields() []string {
	var fields []string
	if m.addtime_weight != nil {
		fields = append(fields, synthesisconfig.FieldTimeWeight)
	}
	if m.addevent_weight != nil {
		fields = append(fields, synthesisconfig.FieldEventWeight)
	}
	if m.addtoken_weight != nil {
		fields = append(fields, synthesisconfig.FieldTokenWeight)
	}
	if m.addthreshold != nil {
		fields = append(fields, synthesisconfig.FieldThreshold)
	}
	if m.addtemperature != nil {
		fields = append(fields, synthesisconfig.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, synthesisconfig.FieldMaxTokens)
	}
	if m.addinterval_hours != nil {
		fields = append(fields, synthesisconfig.FieldIntervalHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SynthesisConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case synthesisconfig.FieldTimeWeight:
		return m.AddedTimeWeight()
	case synthesisconfig.FieldEventWeight:
		return m.AddedEventWeight()
	case synthesisconfig.FieldTokenWeight:
		return m.AddedTokenWeight()
	case synthesisconfig.FieldThreshold:
		return m.AddedThreshold()
	case synthesisconfig.FieldTemperature:
		return m.AddedTemperature()
	case synthesisconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	case synthesisconfig.FieldIntervalHours:
		return m.AddedIntervalHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SynthesisConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case synthesisconfig.FieldTimeWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeWeight(v)
		return nil
	case synthesisconfig.FieldEventWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventWeight(v)
		return nil
	case synthesisconfig.FieldTokenWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenWeight(v)
		return nil
	case synthesisconfig.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	case synthesisconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case synthesisconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case synthesisconfig.FieldIntervalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalHours(v)
		return nil
	}
	return fmt.Errorf("unknown SynthesisConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SynthesisConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(synthesisconfig.FieldLastSynthesisCheckAt) {
		fields = append(fields, synthesisconfig.FieldLastSynthesisCheckAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SynthesisConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SynthesisConfigMutation) ClearField(name string) error {
	switch name {
	case synthesisconfig.FieldLastSynthesisCheckAt:
		m.ClearLastSynthesisCheckAt()
		return nil
	}
	return fmt.Errorf("unknown SynthesisConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SynthesisConfigMutation) ResetField(name string) error {
	switch name {
	case synthesisconfig.FieldAnimaID:
		m.ResetAnimaID()
		return nil
	case synthesisconfig.FieldTimeWeight:
		m.ResetTimeWeight()
		return nil
	case synthesisconfig.FieldEventWeight:
		m.ResetEventWeight()
		return nil
	case synthesisconfig.FieldTokenWeight:
		m.ResetTokenWeight()
		return nil
	case synthesisconfig.FieldThreshold:
		m.ResetThreshold()
		return nil
	case synthesisconfig.FieldTemperature:
		m.ResetTemperature()
		return nil
	case synthesisconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case synthesisconfig.FieldIntervalHours:
		m.ResetIntervalHours()
		return nil
	case synthesisconfig.FieldLastSynthesisCheckAt:
		m.ResetLastSynthesisCheckAt()
		return nil
	case synthesisconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case synthesisconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SynthesisConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SynthesisConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.anima != nil {
		edges = append(edges, synthesisconfig.EdgeAnima)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SynthesisConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case synthesisconfig.EdgeAnima:
		if id := m.anima; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SynthesisConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SynthesisConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SynthesisConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanima {
		edges = append(edges, synthesisconfig.EdgeAnima)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SynthesisConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case synthesisconfig.EdgeAnima:
		return m.clearedanima
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SynthesisConfigMutation) ClearEdge(name string) error {
	switch name {
	case synthesisconfig.EdgeAnima:
		m.ClearAnima()
		return nil
	}
	return fmt.Errorf("unknown SynthesisConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SynthesisConfigMutation) ResetEdge(name string) error {
	switch name {
	case synthesisconfig.EdgeAnima:
		m.ResetAnima()
		return nil
	}
	return fmt.Errorf("unknown SynthesisConfig edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op               Op
	typ              string
	id               *string
	email            *string
	display_name     *string
	external_subject *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	animas           map[string]struct{}
	removedanimas    map[string]struct{}
	clearedanimas    bool
	api_keys         map[string]struct{}
	removedapi_keys  map[string]struct{}
	clearedapi_keys  bool
	done             bool
	oldValue         func(context.Context) (*User, error)
	predicates       []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetExternalSubject sets the "external_subject" field.
func (m *UserMutation) SetExternalSubject(s string) {
	m.external_subject = &s
}

// ExternalSubject returns the value of the "external_subject" field in the mutation.
func (m *UserMutation) ExternalSubject() (r string, exists bool) {
	v := m.external_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalSubject returns the old "external_subject" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldExternalSubject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalSubject: %w", err)
	}
	return oldValue.ExternalSubject, nil
}

// ClearExternalSubject clears the value of the "external_subject" field.
func (m *UserMutation) ClearExternalSubject() {
	m.external_subject = nil
	m.clearedFields[user.FieldExternalSubject] = struct{}{}
}

// ExternalSubjectCleared returns if the "external_subject" field was cleared in this mutation.
func (m *UserMutation) ExternalSubjectCleared() bool {
	_, ok := m.clearedFields[user.FieldExternalSubject]
	return ok
}

// ResetExternalSubject resets all changes to the "external_subject" field.
func (m *UserMutation) ResetExternalSubject() {
	m.external_subject = nil
	delete(m.clearedFields, user.FieldExternalSubject)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAnimaIDs adds the "animas" edge to the Anima entity by ids.
func (m *UserMutation) AddAnimaIDs(ids ...string) {
	if m.animas == nil {
		m.animas = make(map[string]struct{})
	}
	for i := range ids {
		m.animas[ids[i]] = struct{}{}
	}
}

// ClearAnimas clears the "animas" edge to the Anima entity.
func (m *UserMutation) ClearAnimas() {
	m.clearedanimas = true
}

// AnimasCleared reports if the "animas" edge to the Anima entity was cleared.
func (m *UserMutation) AnimasCleared() bool {
	return m.clearedanimas
}

// RemoveAnimaIDs removes the "animas" edge to the Anima entity by IDs.
func (m *UserMutation) RemoveAnimaIDs(ids ...string) {
	if m.removedanimas == nil {
		m.removedanimas = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.animas, ids[i])
		m.removedanimas[ids[i]] = struct{}{}
	}
}

// RemovedAnimas returns the removed IDs of the "animas" edge to the Anima entity.
func (m *UserMutation) RemovedAnimasIDs() (ids []string) {
	for id := range m.removedanimas {
		ids = append(ids, id)
	}
	return
}

// AnimasIDs returns the "animas" edge IDs in the mutation.
func (m *UserMutation) AnimasIDs() (ids []string) {
	for id := range m.animas {
		ids = append(ids, id)
	}
	return
}

// ResetAnimas resets all changes to the "animas" edge.
func (m *UserMutation) ResetAnimas() {
	m.animas = nil
	m.clearedanimas = false
	m.removedanimas = nil
}

// AddAPIKeyIDs adds the "api_keys" edge to the APIKey entity by ids.
func (m *UserMutation) AddAPIKeyIDs(ids ...string) {
	if m.api_keys == nil {
		m.api_keys = make(map[string]struct{})
	}
	for i := range ids {
		m.api_keys[ids[i]] = struct{}{}
	}
}

// ClearAPIKeys clears the "api_keys" edge to the APIKey entity.
func (m *UserMutation) ClearAPIKeys() {
	m.clearedapi_keys = true
}

// APIKeysCleared reports if the "api_keys" edge to the APIKey entity was cleared.
func (m *UserMutation) APIKeysCleared() bool {
	return m.clearedapi_keys
}

// RemoveAPIKeyIDs removes the "api_keys" edge to the APIKey entity by IDs.
func (m *UserMutation) RemoveAPIKeyIDs(ids ...string) {
	if m.removedapi_keys == nil {
		m.removedapi_keys = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.api_keys, ids[i])
		m.removedapi_keys[ids[i]] = struct{}{}
	}
}

// RemovedAPIKeys returns the removed IDs of the "api_keys" edge to the APIKey entity.
func (m *UserMutation) RemovedAPIKeysIDs() (ids []string) {
	for id := range m.removedapi_keys {
		ids = append(ids, id)
	}
	return
}

// APIKeysIDs returns the "api_keys" edge IDs in the mutation.
func (m *UserMutation) APIKeysIDs() (ids []string) {
	for id := range m.api_keys {
		ids = append(ids, id)
	}
	return
}

// ResetAPIKeys resets all changes to the "api_keys" edge.
func (m *UserMutation) ResetAPIKeys() {
	m.api_keys = nil
	m.clearedapi_keys = false
	m.removedapi_keys = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.external_subject != nil {
		fields = append(fields, user.FieldExternalSubject)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldExternalSubject:
		return m.ExternalSubject()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldExternalSubject:
		return m.OldExternalSubject(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldExternalSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalSubject(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.FieldCleared(user.FieldExternalSubject) {
		fields = append(fields, user.FieldExternalSubject)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case user.FieldExternalSubject:
		m.ClearExternalSubject()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldExternalSubject:
		m.ResetExternalSubject()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.animas != nil {
		edges = append(edges, user.EdgeAnimas)
	}
	if m.api_keys != nil {
		edges = append(edges, user.EdgeAPIKeys)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAnimas:
		ids := make([]ent.Value, 0, len(m.animas))
		for id := range m.animas {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAPIKeys:
		ids := make([]ent.Value, 0, len(m.api_keys))
		for id := range m.api_keys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedanimas != nil {
		edges = append(edges, user.EdgeAnimas)
	}
	if m.removedapi_keys != nil {
		edges = append(edges, user.EdgeAPIKeys)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAnimas:
		ids := make([]ent.Value, 0, len(m.removedanimas))
		for id := range m.removedanimas {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAPIKeys:
		ids := make([]ent.Value, 0, len(m.removedapi_keys))
		for id := range m.removedapi_keys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanimas {
		edges = append(edges, user.EdgeAnimas)
	}
	if m.clearedapi_keys {
		edges = append(edges, user.EdgeAPIKeys)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAnimas:
		return m.clearedanimas
	case user.EdgeAPIKeys:
		return m.clearedapi_keys
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAnimas:
		m.ResetAnimas()
		return nil
	case user.EdgeAPIKeys:
		m.ResetAPIKeys()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
