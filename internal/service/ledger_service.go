package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/apperror"
	"treasury-engine/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultEventPageSize = 50
	maxEventPageSize     = 200
)

// LedgerServiceImpl implements ports.LedgerService. Events are validated
// at the door, appended once, and published to the bus only after the
// write succeeds, so subscribers never see an event that isn't durable.
type LedgerServiceImpl struct {
	repo ports.LedgerRepository
	bus  ports.EventBus
	log  zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(repo ports.LedgerRepository, bus ports.EventBus, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		repo: repo,
		bus:  bus,
		log:  log,
	}
}

// RecordLedgerEvent validates, persists and publishes one ledger event.
func (s *LedgerServiceImpl) RecordLedgerEvent(ctx context.Context, input ports.RecordEventInput) (*domain.LedgerEvent, error) {
	if !input.EventType.IsValid() {
		return nil, apperror.ErrUnknownEventType()
	}
	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, apperror.ErrInvalidAmount()
	}
	if input.UserID == uuid.Nil {
		return nil, apperror.ErrInvalidEvent("user_id is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		return nil, apperror.ErrInvalidEvent("currency is required")
	}
	if input.Source == "" {
		return nil, apperror.ErrInvalidEvent("source is required")
	}

	event := &domain.LedgerEvent{
		ID:               uuid.New(),
		UserID:           input.UserID,
		EventType:        input.EventType,
		Amount:           amount,
		Currency:         currency,
		RelatedInvoiceID: input.RelatedInvoiceID,
		Source:           input.Source,
		Metadata:         input.Metadata,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append event: %w", err))
	}

	metrics.EventsRecorded.WithLabelValues(string(event.EventType)).Inc()

	// Publish only after the append is durable.
	s.bus.Publish(ctx, *event)

	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("user_id", event.UserID.String()).
		Str("event_type", string(event.EventType)).
		Str("amount", event.Amount.String()).
		Str("source", event.Source).
		Msg("ledger event recorded")

	return event, nil
}

// GetEventsForUser returns a user's events newest first.
func (s *LedgerServiceImpl) GetEventsForUser(ctx context.Context, userID uuid.UUID, limit int, before *time.Time) ([]domain.LedgerEvent, error) {
	if limit <= 0 {
		limit = defaultEventPageSize
	}
	if limit > maxEventPageSize {
		limit = maxEventPageSize
	}

	events, err := s.repo.ListByUser(ctx, userID, limit, before)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list events: %w", err))
	}
	return events, nil
}
