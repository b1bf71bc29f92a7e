package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"
)

// namedFestival is one fixed-date observance from the default catalog.
type namedFestival struct {
	name        string
	month, day  int
	restriction models.RestrictionType
	description string
	reason      string
}

// Fixed Gregorian dates approximating the lunisolar festival calendar.
// A true panchang moves these year by year; the approximation is kept
// deliberately.
var defaultFestivals = []namedFestival{
	{"Ganesh Chaturthi", 8, 27, models.VegOnly,
		"10-day festival celebrating Lord Ganesha",
		"Ganesh Chaturthi - Sacred festival, only vegetarian offerings"},
	{"Diwali", 11, 12, models.VegOnly,
		"Festival of Lights",
		"Diwali - Most auspicious festival, vegetarian diet preferred"},
	{"Karva Chauth", 11, 1, models.VegOnly,
		"Fasting festival for married women",
		"Karva Chauth - Fasting day, vegetarian diet only"},
	{"Holi", 3, 13, models.Conditional,
		"Festival of Colors",
		"Holi - Celebration day, some families prefer vegetarian"},
	{"Janmashtami", 8, 15, models.VegOnly,
		"Birthday of Lord Krishna",
		"Janmashtami - Lord Krishna's birthday, strict vegetarian"},
	{"Ram Navami", 4, 10, models.VegOnly,
		"Birthday of Lord Rama",
		"Ram Navami - Lord Rama's birthday, vegetarian diet"},
	{"Makar Sankranti", 1, 14, models.VegOnly,
		"Harvest festival",
		"Makar Sankranti - Harvest festival, traditional vegetarian feast"},
	{"Maha Shivratri", 2, 18, models.VegOnly,
		"Great night of Lord Shiva",
		"Maha Shivratri - Fasting day for Lord Shiva, vegetarian only"},
	{"Dussehra", 10, 12, models.VegOnly,
		"Victory of good over evil",
		"Dussehra - Auspicious day, vegetarian diet preferred"},
}

// GenerateDefaultEvents produces the recurring observance catalog for
// one calendar year: 9 named festivals, the 9 Navratri days, Ekadashi /
// Purnima / Sankashti Chaturthi in every month, and 2 eclipses — 56
// rows, materialized per year. Pure: identical input yields identical
// output, and nothing here touches the store.
func GenerateDefaultEvents(year int, userID uint) []models.DietEvent {
	events := make([]models.DietEvent, 0, 56)

	for _, f := range defaultFestivals {
		events = append(events, models.DietEvent{
			Name:        f.name,
			Date:        fmt.Sprintf("%04d-%02d-%02d", year, f.month, f.day),
			Category:    models.CategoryFestival,
			Restriction: f.restriction,
			Description: f.description,
			Reason:      f.reason,
			IsRecurring: true,
			UserID:      userID,
		})
	}

	// Navratri: nine contiguous days from Oct 1.
	for i := 1; i <= 9; i++ {
		events = append(events, models.DietEvent{
			Name:        fmt.Sprintf("Navratri Day %d", i),
			Date:        fmt.Sprintf("%04d-10-%02d", year, i),
			Category:    models.CategoryFestival,
			Restriction: models.VegOnly,
			Description: "Nine nights festival dedicated to Goddess Durga",
			Reason:      "Navratri - Sacred period, strict vegetarian diet",
			IsRecurring: true,
			UserID:      userID,
		})
	}

	// Monthly observances on fixed days of every month.
	for month := 1; month <= 12; month++ {
		events = append(events,
			models.DietEvent{
				Name:        "Ekadashi",
				Date:        fmt.Sprintf("%04d-%02d-11", year, month),
				Category:    models.CategoryFestival,
				Restriction: models.VegOnly,
				Description: "Ekadashi fasting day",
				Reason:      "Ekadashi - Traditional fasting day, only sattvic food allowed",
				IsRecurring: true,
				UserID:      userID,
			},
			models.DietEvent{
				Name:        "Purnima",
				Date:        fmt.Sprintf("%04d-%02d-15", year, month),
				Category:    models.CategoryFestival,
				Restriction: models.VegOnly,
				Description: "Full Moon day",
				Reason:      "Purnima - Full moon day, vegetarian diet preferred",
				IsRecurring: true,
				UserID:      userID,
			},
			models.DietEvent{
				Name:        "Sankashti Chaturthi",
				Date:        fmt.Sprintf("%04d-%02d-19", year, month),
				Category:    models.CategoryFestival,
				Restriction: models.VegOnly,
				Description: "Monthly Ganesha fasting day",
				Reason:      "Sankashti Chaturthi - Lord Ganesha fasting day, vegetarian only",
				IsRecurring: true,
				UserID:      userID,
			},
		)
	}

	events = append(events,
		models.DietEvent{
			Name:        "Solar Eclipse",
			Date:        fmt.Sprintf("%04d-04-08", year),
			Category:    models.CategoryEclipse,
			Restriction: models.VegOnly,
			Description: "Solar eclipse - inauspicious for eating",
			Reason:      "Solar Eclipse - Traditional restriction on food consumption during eclipse",
			IsRecurring: false,
			UserID:      userID,
		},
		models.DietEvent{
			Name:        "Lunar Eclipse",
			Date:        fmt.Sprintf("%04d-10-14", year),
			Category:    models.CategoryEclipse,
			Restriction: models.VegOnly,
			Description: "Lunar eclipse - inauspicious for eating",
			Reason:      "Lunar Eclipse - Traditional restriction on food consumption during eclipse",
			IsRecurring: false,
			UserID:      userID,
		},
	)

	return events
}

// GenerateDefaultWeeklyRules returns the two standing rules every new
// account starts with: Tuesday and Saturday vegetarian-only.
func GenerateDefaultWeeklyRules(userID uint) []models.WeeklyRule {
	return []models.WeeklyRule{
		{
			Weekday:     2, // Tuesday
			Restriction: models.VegOnly,
			Reason:      "Traditional Hanuman day restriction",
			IsActive:    true,
			UserID:      userID,
		},
		{
			Weekday:     6, // Saturday
			Restriction: models.VegOnly,
			Reason:      "Hanuman's day",
			IsActive:    true,
			UserID:      userID,
		},
	}
}

// SeedDefaultData writes the default calendar for a new account: the
// recurring catalog for the current year and the next, plus the two
// weekly rules. Years that already hold recurring rows for the user are
// skipped, so re-running (new login, retried registration) inserts
// nothing twice.
func SeedDefaultData(userID uint) error {
	currentYear := time.Now().Year()
	for _, year := range []int{currentYear, currentYear + 1} {
		if err := SeedEventsForYear(userID, year); err != nil {
			return err
		}
	}

	var ruleCount int64
	if err := config.DB.Model(&models.WeeklyRule{}).Where("user_id = ?", userID).Count(&ruleCount).Error; err != nil {
		return err
	}
	if ruleCount == 0 {
		rules := GenerateDefaultWeeklyRules(userID)
		if err := config.DB.Create(&rules).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedEventsForYear inserts one year's recurring catalog for a user if
// that year has none yet. Called at signup and by the yearly scheduler.
func SeedEventsForYear(userID uint, year int) error {
	var count int64
	err := config.DB.Model(&models.DietEvent{}).
		Where("user_id = ? AND is_recurring = ? AND date BETWEEN ? AND ?",
			userID, true, fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	events := GenerateDefaultEvents(year, userID)
	if err := config.DB.Create(&events).Error; err != nil {
		return err
	}
	log.Printf("seeded %d default events for user %d year %d", len(events), userID, year)
	return nil
}
