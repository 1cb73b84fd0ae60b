package repository

import (
	"context"
	"time"

	"hotel-frontdesk-backend/internal/models"

	"github.com/google/uuid"
)

type AuditRepository struct {
	gw Gateway
}

func NewAuditRepo(gw Gateway) *AuditRepository {
	return &AuditRepository{gw: gw}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(ctx context.Context, userID *string, action string, details string) error {
	log := &models.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
	return r.gw.Insert(ctx, TableAuditLogs, log)
}
