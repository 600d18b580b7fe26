package model

import (
	"time"
)

// Profile mirrors the auth provider's user; the ID is issued by the
// provider, not generated locally.
type Profile struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) TableName() string {
	return "profiles"
}
