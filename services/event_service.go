package services

import (
	"errors"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"
	"github.com/Rameshwarsp7900/non-veg/utils"
)

type EventInput struct {
	Name        string                 `json:"name" binding:"required"`
	Date        string                 `json:"date" binding:"required"`
	Category    models.EventCategory   `json:"category" binding:"required"`
	Restriction models.RestrictionType `json:"restriction" binding:"required"`
	Description string                 `json:"description"`
	Reason      string                 `json:"reason"`
	IsRecurring bool                   `json:"is_recurring"`
}

// ListEvents returns a user's events, optionally filtered to an
// inclusive [from, to] date range.
func ListEvents(userID uint, from, to string) ([]models.DietEvent, error) {
	q := config.DB.Where("user_id = ?", userID)
	if from != "" && to != "" {
		q = q.Where("date BETWEEN ? AND ?", from, to)
	}
	var events []models.DietEvent
	err := q.Order("date").Find(&events).Error
	return events, err
}

func CreateEvent(userID uint, input EventInput) (*models.DietEvent, error) {
	if _, err := utils.ParseDate(input.Date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	event := models.DietEvent{
		Name:        input.Name,
		Date:        input.Date,
		Category:    input.Category,
		Restriction: input.Restriction,
		Description: input.Description,
		Reason:      input.Reason,
		IsRecurring: input.IsRecurring,
		UserID:      userID,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func UpdateEvent(userID uint, eventID uint, input EventInput) (*models.DietEvent, error) {
	var event models.DietEvent
	if err := config.DB.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		return nil, errors.New("event not found")
	}

	if _, err := utils.ParseDate(input.Date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	event.Name = input.Name
	event.Date = input.Date
	event.Category = input.Category
	event.Restriction = input.Restriction
	event.Description = input.Description
	event.Reason = input.Reason
	event.IsRecurring = input.IsRecurring

	if err := config.DB.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func DeleteEvent(userID uint, eventID uint) error {
	result := config.DB.Where("id = ? AND user_id = ?", eventID, userID).Delete(&models.DietEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("event not found")
	}
	return nil
}
