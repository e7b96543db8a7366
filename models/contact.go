package models

import (
	"time"

	"gorm.io/gorm"
)

type ContactStatus string

const (
	ContactPending   ContactStatus = "pending"
	ContactContacted ContactStatus = "contacted"
	ContactResolved  ContactStatus = "resolved"
	ContactArchived  ContactStatus = "archived"
)

// ValidContactStatus reports whether s is a defined contact status.
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactPending, ContactContacted, ContactResolved, ContactArchived:
		return true
	}
	return false
}

type Contact struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Company   string        `json:"company,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status" gorm:"default:pending"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = ContactPending
	}
	return nil
}
