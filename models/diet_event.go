package models

import (
    "gorm.io/gorm"
)

// DietEvent is a dated observance (festival, eclipse, personal fast, ...)
// carrying a dietary restriction. Several events may share a date.
// Recurring events are materialized one row per calendar year; nothing
// expands recurrence at query time.
type DietEvent struct {
    gorm.Model
    Name        string          `gorm:"not null" json:"name"`
    Date        string          `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
    Category    EventCategory   `gorm:"type:varchar(20);not null" json:"category"`
    Restriction RestrictionType `gorm:"type:varchar(20);not null" json:"restriction"`
    Description string          `json:"description,omitempty"`
    Reason      string          `json:"reason,omitempty"`
    IsRecurring bool            `json:"is_recurring"`
    CreatedBy   string          `json:"created_by,omitempty"`
    UserID      uint            `gorm:"index;not null" json:"user_id"`
}
