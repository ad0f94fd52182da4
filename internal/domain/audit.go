package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStatus = "status"
)

type AuditEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AdminID    string    `gorm:"index" json:"admin_id"`
	AdminEmail string    `json:"admin_email"`
	Action     string    `gorm:"size:16" json:"action"`
	Resource   string    `gorm:"index;size:64" json:"resource"`
	ResourceID string    `json:"resource_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

type AuditFilter struct {
	Resource string
	AdminID  string
	Limit    int
	Offset   int
}
