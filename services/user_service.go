package services

import (
	"errors"
	"time"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"
)

type ProfileInput struct {
	FullName            string `json:"full_name"`
	BirthDate           string `json:"birth_date"` // sent as YYYY-MM-DD
	EnableNotifications *bool  `json:"enable_notifications"`
	MorningReminderTime string `json:"morning_reminder_time"`
	EveningReminderTime string `json:"evening_reminder_time"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	birthDate := ""
	if !user.BirthDate.IsZero() {
		birthDate = user.BirthDate.Format("2006-01-02")
	}

	return map[string]interface{}{
		"id":                    user.ID,
		"email":                 user.Email,
		"full_name":             user.FullName,
		"birth_date":            birthDate,
		"family_group_id":       user.FamilyGroupID,
		"is_family_admin":       user.IsFamilyAdmin,
		"enable_notifications":  user.EnableNotifications,
		"morning_reminder_time": user.MorningReminderTime,
		"evening_reminder_time": user.EveningReminderTime,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", input.BirthDate)
		if err == nil {
			user.BirthDate = birthDate
		}
	}
	if input.EnableNotifications != nil {
		user.EnableNotifications = *input.EnableNotifications
	}
	if input.MorningReminderTime != "" {
		user.MorningReminderTime = input.MorningReminderTime
	}
	if input.EveningReminderTime != "" {
		user.EveningReminderTime = input.EveningReminderTime
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
