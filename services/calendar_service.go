package services

import (
	"errors"
	"time"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"
	"github.com/Rameshwarsp7900/non-veg/utils"

	"gorm.io/gorm"
)

// MonthSnapshot is one month's worth of calendar inputs, fetched once
// per navigation and owned by a single resolution pass. Overrides are
// not part of it: the grid colors from events and rules only, and the
// selected-date detail fetches its override lazily.
type MonthSnapshot struct {
	Month  time.Time
	Events []models.DietEvent
	Rules  []models.WeeklyRule
}

// CalendarDay is one cell of the rendered month grid.
type CalendarDay struct {
	Date    string           `json:"date"` // YYYY-MM-DD
	Day     int              `json:"day"`
	InMonth bool             `json:"in_month"`
	IsToday bool             `json:"is_today"`
	Status  models.DayStatus `json:"status"`
}

// LoadMonthSnapshot runs the two per-navigation queries: events
// between the month bounds, and the user's active weekly rules
// (date-independent, so unfiltered).
func LoadMonthSnapshot(userID uint, month time.Time) (*MonthSnapshot, error) {
	start, end := utils.MonthBounds(month)

	var events []models.DietEvent
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, utils.FormatDate(start), utils.FormatDate(end)).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	var rules []models.WeeklyRule
	err = config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	return &MonthSnapshot{Month: month, Events: events, Rules: rules}, nil
}

// ComputeMonthView resolves every date of the padded Sunday-first grid
// against one month snapshot. A fetch error surfaces as an error, never
// as an all-default month.
func ComputeMonthView(userID uint, month time.Time) ([]CalendarDay, error) {
	snapshot, err := LoadMonthSnapshot(userID, month)
	if err != nil {
		return nil, err
	}

	grid := utils.CalendarDays(month)
	view := make([]CalendarDay, 0, len(grid))
	for _, date := range grid {
		status := ResolveDayStatus(date, nil, snapshot.Events, snapshot.Rules)
		view = append(view, CalendarDay{
			Date:    status.Date,
			Day:     date.Day(),
			InMonth: date.Month() == month.Month(),
			IsToday: utils.IsToday(date),
			Status:  status,
		})
	}
	return view, nil
}

// GetDayStatus resolves one selected date with all three sources,
// including the lazily-fetched manual override for that date.
func GetDayStatus(userID uint, date time.Time) (models.DayStatus, error) {
	dateStr := utils.FormatDate(date)

	var overrides []models.ManualOverride
	var override models.ManualOverride
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, dateStr).
		First(&override).Error
	if err == nil {
		overrides = append(overrides, override)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DayStatus{}, err
	}

	var events []models.DietEvent
	if err := config.DB.Where("user_id = ? AND date = ?", userID, dateStr).Find(&events).Error; err != nil {
		return models.DayStatus{}, err
	}

	var rules []models.WeeklyRule
	if err := config.DB.Where("user_id = ? AND is_active = ?", userID, true).Find(&rules).Error; err != nil {
		return models.DayStatus{}, err
	}

	return ResolveDayStatus(date, overrides, events, rules), nil
}
