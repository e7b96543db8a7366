package models

import (
	"time"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

type User struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name"`
	Email         string         `json:"email" gorm:"unique"`
	Password      string         `json:"password,omitempty"`
	Role          Role           `json:"role" gorm:"default:CLIENT"`
	Consultations []Consultation `json:"consultations,omitempty" gorm:"foreignKey:ClientID"`
	BlogPosts     []BlogPost     `json:"blogPosts,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
