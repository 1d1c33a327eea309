package models

import "time"

// DynamicField is a typed, user-defined attribute attached to a person.
// Exactly one value column is populated, matching FieldType: STRING, URL,
// EMAIL and PHONE use StringValue; NUMBER uses NumberValue; BOOLEAN uses
// BooleanValue; DATE uses DateValue.
type DynamicField struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	PersonID uint `gorm:"index;not null" json:"person_id"`

	FieldName string `gorm:"size:100;not null" json:"field_name"`
	FieldType string `gorm:"size:20;not null" json:"field_type"`

	StringValue  *string    `json:"string_value,omitempty"`
	NumberValue  *float64   `json:"number_value,omitempty"`
	BooleanValue *bool      `json:"boolean_value,omitempty"`
	DateValue    *time.Time `json:"date_value,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
