package models

import (
	"time"
)

type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"` // icon key resolved to a glyph by the frontend
	Featured    bool      `json:"featured" gorm:"default:false"`
	Order       int       `json:"order" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
