package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

// EventService manages raw event ingestion and retrieval.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ComputeDedupeKey derives the content-hash dedupe key for an event:
// SHA-256 over anima, type, the first 100 characters of content, the
// occurrence time and the source, truncated to 32 hex chars. Truncation
// counts runes so a multi-byte character is never split.
func ComputeDedupeKey(animaID, eventType, content string, occurredAt time.Time, sourceURI string) string {
	c := content
	if r := []rune(c); len(r) > 100 {
		c = string(r[:100])
	}
	payload := strings.Join([]string{
		animaID,
		eventType,
		c,
		occurredAt.UTC().Format(time.RFC3339),
		sourceURI,
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])[:32]
}

// Create ingests one event. With Dedupe set, a duplicate (same anima, type,
// content prefix, occurrence time and source) fails with ErrAlreadyExists.
func (s *EventService) Create(ctx context.Context, req models.CreateEventRequest) (*ent.Event, error) {
	if !models.ValidEventTypes[req.Type] {
		return nil, NewValidationError("type", fmt.Sprintf("unknown event type %q", req.Type))
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}
	if req.Importance != nil && (*req.Importance < 0 || *req.Importance > 1) {
		return nil, NewValidationError("importance", "must be in [0, 1]")
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	create := s.client.Event.Create().
		SetID(uuid.New().String()).
		SetAnimaID(req.AnimaID).
		SetType(req.Type).
		SetNillableRole(nilIfEmpty(req.Role)).
		SetNillableAuthor(nilIfEmpty(req.Author)).
		SetContent(req.Content).
		SetNillableSummary(nilIfEmpty(req.Summary)).
		SetOccurredAt(occurredAt).
		SetNillableSessionID(nilIfEmpty(req.SessionID)).
		SetMetadata(req.Metadata).
		SetNillableSourceURI(nilIfEmpty(req.SourceURI)).
		SetNillableImportance(req.Importance)
	if req.Dedupe {
		create = create.SetDedupeKey(ComputeDedupeKey(req.AnimaID, req.Type, req.Content, occurredAt, req.SourceURI))
	}

	evt, err := create.Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, fmt.Errorf("duplicate event for anima %s: %w", req.AnimaID, ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	// Ingestion is the anima's pulse; last_activity_at feeds the temporal
	// context sentence and the dormancy checks.
	err = s.client.Anima.UpdateOneID(req.AnimaID).
		SetLastActivityAt(occurredAt).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to update anima activity: %w", err)
	}

	return evt, nil
}

// Get returns an event by id. Soft-deleted events yield ErrDeleted.
func (s *EventService) Get(ctx context.Context, id string) (*ent.Event, error) {
	evt, err := s.client.Event.Query().
		Where(event.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if evt.IsDeleted {
		return nil, ErrDeleted
	}
	return evt, nil
}

// List returns events matching the filters, newest occurrence first.
func (s *EventService) List(ctx context.Context, filters models.EventFilters) ([]*ent.Event, error) {
	q := s.client.Event.Query()
	if filters.AnimaID != "" {
		q = q.Where(event.AnimaIDEQ(filters.AnimaID))
	}
	if filters.Type != "" {
		q = q.Where(event.TypeEQ(filters.Type))
	}
	if filters.SessionID != "" {
		q = q.Where(event.SessionIDEQ(filters.SessionID))
	}
	if filters.MinImportance != nil {
		q = q.Where(event.ImportanceGTE(*filters.MinImportance))
	}
	if !filters.IncludeDeleted {
		q = q.Where(event.IsDeleted(false))
	}
	events, err := q.
		Order(ent.Desc(event.FieldOccurredAt)).
		Limit(clampLimit(filters.Limit, 50, 500)).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListSince returns non-deleted events for an anima with occurred_at after
// since, in chronological order. The synthesis pipeline reads its window
// through this.
func (s *EventService) ListSince(ctx context.Context, animaID string, since time.Time) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.AnimaIDEQ(animaID),
			event.IsDeleted(false),
			event.OccurredAtGT(since),
		).
		Order(ent.Asc(event.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events since %s: %w", since.Format(time.RFC3339), err)
	}
	return events, nil
}

// Update patches mutable event fields. Content, type and occurrence time are
// immutable.
func (s *EventService) Update(ctx context.Context, id string, req models.UpdateEventRequest) (*ent.Event, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Importance != nil && (*req.Importance < 0 || *req.Importance > 1) {
		return nil, NewValidationError("importance", "must be in [0, 1]")
	}

	upd := existing.Update().
		SetNillableSummary(req.Summary).
		SetNillableImportance(req.Importance)
	if req.Metadata != nil {
		upd = upd.SetMetadata(req.Metadata)
	}
	evt, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return evt, nil
}

// SoftDelete marks an event deleted. Deleting an already-deleted event is a
// no-op.
func (s *EventService) SoftDelete(ctx context.Context, id string) error {
	evt, err := s.client.Event.Query().
		Where(event.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}
	if evt.IsDeleted {
		return nil
	}
	if err := evt.Update().SetIsDeleted(true).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
