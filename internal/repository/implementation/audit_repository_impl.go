package implementation

import (
	"context"
	"encoding/json"

	"talentflow-be/internal/model"
	"talentflow-be/internal/repository/contract"

	"gorm.io/gorm"
)

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) contract.AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) Record(ctx context.Context, level, module, message string, details map[string]interface{}) error {
	entry := model.SystemLog{
		Level:   level,
		Message: message,
	}
	if module != "" {
		entry.Module = &module
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			s := string(raw)
			entry.Details = &s
		}
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *AuditRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*model.SystemLog, error) {
	var logs []*model.SystemLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
