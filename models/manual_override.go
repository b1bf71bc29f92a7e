package models

import (
    "gorm.io/gorm"
)

// ManualOverride pins a single date to a restriction, beating every
// other source. At most one row per (user, date), enforced by the
// composite unique index.
type ManualOverride struct {
    gorm.Model
    Date        string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_override_user_date" json:"date"` // YYYY-MM-DD
    Restriction RestrictionType `gorm:"type:varchar(20);not null" json:"restriction"`
    Reason      string          `gorm:"not null" json:"reason"`
    Notes       string          `json:"notes,omitempty"`
    UserID      uint            `gorm:"not null;uniqueIndex:idx_override_user_date" json:"user_id"`
}
