package usecase

import (
	"context"
	"time"

	"courseadmin/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type AuditStore interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int64, error)
}

// AuditUseCase keeps the admin activity log. A nil store turns it off.
type AuditUseCase struct {
	store  AuditStore
	logger zerolog.Logger
}

func NewAuditUseCase(store AuditStore, logger zerolog.Logger) *AuditUseCase {
	return &AuditUseCase{store: store, logger: logger.With().Str("component", "audit").Logger()}
}

// Record never fails the mutation it describes.
func (uc *AuditUseCase) Record(ctx context.Context, session domain.Session, action, resource, resourceID string) {
	if uc == nil || uc.store == nil {
		return
	}
	entry := &domain.AuditEntry{
		ID:         uuid.New(),
		AdminID:    session.Admin.ID,
		AdminEmail: session.Admin.Email,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.store.Create(ctx, entry); err != nil {
		uc.logger.Error().Err(err).
			Str("resource", resource).
			Str("resource_id", resourceID).
			Str("action", action).
			Msg("Failed to write audit entry")
	}
}

func (uc *AuditUseCase) List(ctx context.Context, resource, adminID string, page, limit int) (domain.Page[domain.AuditEntry], error) {
	if uc == nil || uc.store == nil {
		return domain.Page[domain.AuditEntry]{}, domain.ErrAuditDisabled
	}
	p := domain.ListParams{Page: page, Limit: limit}.Normalize()
	entries, total, err := uc.store.List(ctx, domain.AuditFilter{
		Resource: resource,
		AdminID:  adminID,
		Limit:    p.Limit,
		Offset:   (p.Page - 1) * p.Limit,
	})
	if err != nil {
		return domain.Page[domain.AuditEntry]{}, err
	}
	return domain.NewPage(entries, total, p.Page, p.Limit), nil
}
