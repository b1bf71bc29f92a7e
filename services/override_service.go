package services

import (
	"errors"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"
	"github.com/Rameshwarsp7900/non-veg/utils"

	"gorm.io/gorm"
)

type OverrideInput struct {
	Restriction models.RestrictionType `json:"restriction" binding:"required"`
	Reason      string                 `json:"reason" binding:"required"`
	Notes       string                 `json:"notes"`
}

// GetOverride is the single-row lookup the date editor uses when a
// date is opened. A missing override is not an error; it returns nil.
func GetOverride(userID uint, date string) (*models.ManualOverride, error) {
	var override models.ManualOverride
	err := config.DB.Where("user_id = ? AND date = ?", userID, date).First(&override).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &override, nil
}

// UpsertOverride creates or replaces the override for (user, date).
func UpsertOverride(userID uint, date string, input OverrideInput) (*models.ManualOverride, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}
	if input.Reason == "" {
		return nil, errors.New("reason is required")
	}

	existing, err := GetOverride(userID, date)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Restriction = input.Restriction
		existing.Reason = input.Reason
		existing.Notes = input.Notes
		if err := config.DB.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	override := models.ManualOverride{
		Date:        date,
		Restriction: input.Restriction,
		Reason:      input.Reason,
		Notes:       input.Notes,
		UserID:      userID,
	}
	if err := config.DB.Create(&override).Error; err != nil {
		return nil, err
	}
	return &override, nil
}

func DeleteOverride(userID uint, date string) error {
	result := config.DB.Where("user_id = ? AND date = ?", userID, date).Delete(&models.ManualOverride{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("override not found")
	}
	return nil
}
