package models

import (
    "gorm.io/gorm"
)

// WeeklyRule applies a restriction to one weekday every week.
// Weekday follows the 1=Monday .. 7=Sunday convention. One active rule
// per weekday per user is the intent, but the schema does not enforce
// it; the resolver takes the first active match.
type WeeklyRule struct {
    gorm.Model
    Weekday     int             `gorm:"not null" json:"weekday"`
    Restriction RestrictionType `gorm:"type:varchar(20);not null" json:"restriction"`
    Reason      string          `gorm:"not null" json:"reason"`
    IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
    UserID      uint            `gorm:"index;not null" json:"user_id"`
}
