package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
	ConnectionStatusDeclined = "declined"
)

type Connection struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserIDSender   string    `gorm:"type:uuid;index" json:"user_id_sender"`
	UserIDReceiver string    `gorm:"type:uuid;index" json:"user_id_receiver"`
	Status         string    `gorm:"type:varchar(50)" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *Connection) TableName() string {
	return "connections"
}
