package models

import "time"

type Person struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Role    string `gorm:"size:100" json:"role"`
	Company string `gorm:"size:100" json:"company"`

	Status string `gorm:"size:20;default:'ACTIVE'" json:"status"`

	Notes     string `gorm:"type:text" json:"notes"`
	Address   string `gorm:"size:255" json:"address"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedByID *uint `json:"created_by_id"`
	CreatedBy   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	LastInteraction *time.Time `json:"last_interaction"`

	DynamicFields []DynamicField `gorm:"constraint:OnDelete:CASCADE;" json:"dynamic_fields"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
