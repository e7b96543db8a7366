package models

import (
	"time"

	"gorm.io/gorm"
)

type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Company   string    `json:"company,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating" gorm:"default:5"`
	Featured  bool      `json:"featured" gorm:"default:false"`
	Approved  bool      `json:"approved" gorm:"default:false"`
	Status    string    `json:"status" gorm:"-"` // derived from Approved, never stored
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate clamps the rating into the 1-5 range.
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.Rating < 1 {
		t.Rating = 1
	} else if t.Rating > 5 {
		t.Rating = 5
	}
	return nil
}

func (t *Testimonial) AfterFind(tx *gorm.DB) error {
	t.Status = t.DerivedStatus()
	return nil
}

// DerivedStatus projects the approval flag onto the status the API exposes.
func (t *Testimonial) DerivedStatus() string {
	if t.Approved {
		return "approved"
	}
	return "pending"
}
