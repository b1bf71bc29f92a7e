package services

import (
	"errors"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"
)

type RuleInput struct {
	Weekday     int                    `json:"weekday" binding:"required,min=1,max=7"`
	Restriction models.RestrictionType `json:"restriction" binding:"required"`
	Reason      string                 `json:"reason" binding:"required"`
	IsActive    *bool                  `json:"is_active"`
}

func ListRules(userID uint) ([]models.WeeklyRule, error) {
	var rules []models.WeeklyRule
	err := config.DB.Where("user_id = ?", userID).Order("weekday").Find(&rules).Error
	return rules, err
}

func CreateRule(userID uint, input RuleInput) (*models.WeeklyRule, error) {
	rule := models.WeeklyRule{
		Weekday:     input.Weekday,
		Restriction: input.Restriction,
		Reason:      input.Reason,
		IsActive:    true,
		UserID:      userID,
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	if err := config.DB.Create(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func UpdateRule(userID uint, ruleID uint, input RuleInput) (*models.WeeklyRule, error) {
	var rule models.WeeklyRule
	if err := config.DB.Where("id = ? AND user_id = ?", ruleID, userID).First(&rule).Error; err != nil {
		return nil, errors.New("rule not found")
	}

	rule.Weekday = input.Weekday
	rule.Restriction = input.Restriction
	rule.Reason = input.Reason
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func DeleteRule(userID uint, ruleID uint) error {
	result := config.DB.Where("id = ? AND user_id = ?", ruleID, userID).Delete(&models.WeeklyRule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("rule not found")
	}
	return nil
}
