package repository

import (
	"context"

	"courseadmin/internal/domain"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditRepository) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	var entries []domain.AuditEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.AuditEntry{})
	if f.Resource != "" {
		query = query.Where("resource = ?", f.Resource)
	}
	if f.AdminID != "" {
		query = query.Where("admin_id = ?", f.AdminID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(f.Limit).Offset(f.Offset).Order("created_at desc").Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
