package models

import (
    "time"

    "gorm.io/gorm"
)

type FamilyGroup struct {
    gorm.Model
    Name        string `gorm:"not null" json:"name"`
    AdminUserID uint   `gorm:"not null" json:"admin_user_id"`
}

type FamilyMember struct {
    gorm.Model
    FamilyGroupID uint      `gorm:"index;not null" json:"family_group_id"`
    UserID        uint      `gorm:"index;not null" json:"user_id"`
    Role          string    `gorm:"not null;default:'member'" json:"role"` // "admin" | "member"
    JoinedAt      time.Time `json:"joined_at"`
}

// FamilyInvite is a pending email invitation to a group, redeemed by code.
type FamilyInvite struct {
    gorm.Model
    FamilyGroupID uint      `gorm:"index;not null" json:"family_group_id"`
    Email         string    `gorm:"not null" json:"email"`
    Code          string    `gorm:"uniqueIndex;not null" json:"-"`
    ExpiresAt     time.Time `json:"expires_at"`
    Accepted      bool      `json:"accepted"`
}
