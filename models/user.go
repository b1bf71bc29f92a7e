package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email               string `gorm:"uniqueIndex;not null"`
    Password            string `gorm:"not null"`
    FullName            string
    BirthDate           time.Time
    FamilyGroupID       *uint
    IsFamilyAdmin       bool
    EnableNotifications bool
    MorningReminderTime string // "HH:MM", consumed by the reminder collaborator
    EveningReminderTime string
    Disabled            bool
    ResetToken          string
    ResetTokenExp       time.Time
}
