package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ConsultationStatus string

const (
	StatusPending     ConsultationStatus = "pending"
	StatusScheduled   ConsultationStatus = "scheduled"
	StatusInProgress  ConsultationStatus = "in_progress"
	StatusCompleted   ConsultationStatus = "completed"
	StatusCancelled   ConsultationStatus = "cancelled"
	StatusRescheduled ConsultationStatus = "rescheduled"
	StatusFollowUp    ConsultationStatus = "follow_up"
)

type ConsultationPriority string

const (
	PriorityLow    ConsultationPriority = "low"
	PriorityMedium ConsultationPriority = "medium"
	PriorityHigh   ConsultationPriority = "high"
	PriorityUrgent ConsultationPriority = "urgent"
)

// consultationTransitions is the authoritative transition table. The admin
// dashboard mirrors it, but the server is the one that enforces it.
var consultationTransitions = map[ConsultationStatus][]ConsultationStatus{
	StatusPending:     {StatusScheduled, StatusCancelled},
	StatusScheduled:   {StatusInProgress, StatusCompleted, StatusCancelled, StatusRescheduled},
	StatusInProgress:  {StatusCompleted, StatusRescheduled},
	StatusCompleted:   {StatusFollowUp},
	StatusCancelled:   {StatusPending, StatusScheduled},
	StatusRescheduled: {StatusScheduled, StatusCancelled},
	StatusFollowUp:    {StatusCompleted, StatusScheduled},
}

// ValidStatus reports whether s is one of the defined consultation statuses.
func ValidStatus(s ConsultationStatus) bool {
	_, ok := consultationTransitions[s]
	return ok
}

// IsValidTransition reports whether a consultation may move from one status
// to another. Same-status updates are idempotent no-ops and an empty current
// status accepts anything.
func IsValidTransition(from, to ConsultationStatus) bool {
	if from == "" || from == to {
		return true
	}
	for _, next := range consultationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Consultation struct {
	ID                uint                 `json:"id" gorm:"primaryKey"`
	FirstName         string               `json:"firstName"`
	LastName          string               `json:"lastName"`
	Email             string               `json:"email"`
	Phone             string               `json:"phone,omitempty"`
	Company           string               `json:"company,omitempty"`
	Description       string               `json:"description"`
	PreferredDate     *time.Time           `json:"preferredDate,omitempty"`
	Status            ConsultationStatus   `json:"status" gorm:"default:pending"`
	Priority          ConsultationPriority `json:"priority,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	ScheduledDate     *time.Time           `json:"scheduledDate,omitempty"`
	EstimatedDuration int                  `json:"estimatedDuration,omitempty"` // minutes
	FollowUpDate      *time.Time           `json:"followUpDate,omitempty"`
	ServiceID         *uint                `json:"serviceId,omitempty"`
	Service           *Service             `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	ClientID          *uint                `json:"clientId,omitempty"`
	Client            *User                `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func (c *Consultation) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = StatusPending
	}
	return nil
}

// UpdateStatus moves the consultation to newStatus, rejecting transitions
// that are not in the table.
func (c *Consultation) UpdateStatus(tx *gorm.DB, newStatus ConsultationStatus) error {
	if !ValidStatus(newStatus) {
		return fmt.Errorf("unknown status %q", newStatus)
	}
	if !IsValidTransition(c.Status, newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", c.Status, newStatus)
	}
	if c.Status == newStatus {
		return nil
	}
	c.Status = newStatus
	return tx.Model(c).Update("status", newStatus).Error
}
