// Package tenancy provides the per-tenant transactional envelope: owner
// resolution through a privileged database function, and scoped owner
// sessions whose writes commit or roll back as one atomic transaction.
//
// Row-level-security policies filter every tenant table by the
// transaction-local app.current_user_id setting. The envelope sets it with
// set_config(..., is_local=true) right after BEGIN, so the setting lives and
// dies with the transaction. The scope never commits mid-flight: a commit
// would drop the setting under a pooled connection, silently blinding every
// subsequent query in the scope.
package tenancy

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/hejijunhao/elephantasm/ent"
)

// EntityKind identifies the entity kinds the owner resolver understands.
type EntityKind string

// Supported entity kinds.
const (
	KindAnima     EntityKind = "anima"
	KindEvent     EntityKind = "event"
	KindMemory    EntityKind = "memory"
	KindKnowledge EntityKind = "knowledge"
)

var (
	// ErrOwnerNotFound is returned when the entity is missing or its
	// ownership chain is broken.
	ErrOwnerNotFound = errors.New("entity owner not found")

	// ErrInvalidKind is returned for an unsupported entity kind.
	ErrInvalidKind = errors.New("invalid entity kind")
)

// Envelope resolves owners and opens owner-scoped sessions.
type Envelope struct {
	db *stdsql.DB
}

// NewEnvelope creates a tenancy envelope over the raw database handle.
func NewEnvelope(db *stdsql.DB) *Envelope {
	return &Envelope{db: db}
}

// ResolveOwner returns the owning user id for an entity. It calls the
// SECURITY DEFINER resolve_entity_owner() function, which bypasses row-level
// filtering — the filter predicate needs the owner id, so it cannot be used
// to find it.
func (e *Envelope) ResolveOwner(ctx context.Context, kind EntityKind, id string) (string, error) {
	switch kind {
	case KindAnima, KindEvent, KindMemory, KindKnowledge:
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	var owner stdsql.NullString
	err := e.db.QueryRowContext(ctx,
		"SELECT resolve_entity_owner($1, $2)", string(kind), id).Scan(&owner)
	if err != nil {
		return "", fmt.Errorf("failed to resolve owner of %s %s: %w", kind, id, err)
	}
	if !owner.Valid || owner.String == "" {
		return "", ErrOwnerNotFound
	}
	return owner.String, nil
}

// WithOwnerSession runs fn inside one transaction bound to userID. The
// transaction-local app.current_user_id setting is installed before fn runs;
// row-level predicates consult it on every statement. Commit on nil error,
// rollback otherwise. The tx-bound Ent client must not escape fn, and a
// single session must not be shared across goroutines.
func (e *Envelope) WithOwnerSession(ctx context.Context, userID string, fn func(ctx context.Context, client *ent.Client) error) error {
	if userID == "" {
		return fmt.Errorf("owner session requires a user id")
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin owner session: %w", err)
	}

	// SET LOCAL via set_config: the third argument scopes the setting to
	// this transaction only.
	if _, err := tx.ExecContext(ctx,
		"SELECT set_config('app.current_user_id', $1, true)", userID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to set session owner: %w", err)
	}

	client := ent.NewClient(ent.Driver(entsql.NewDriver(dialect.Postgres, entsql.Conn{ExecQuerier: tx})))

	if err := fn(ctx, client); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, stdsql.ErrTxDone) {
			return fmt.Errorf("rollback failed (%v) after: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit owner session: %w", err)
	}
	return nil
}
