package services

import (
	"log"
	"time"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"

	"github.com/robfig/cron/v3"
)

// StartSeedScheduler runs the yearly rollover: early on Jan 1 every
// account gets the coming year's recurring observances materialized,
// keeping calendars populated one year ahead. Returns the started cron
// so the caller can Stop it on shutdown.
func StartSeedScheduler() (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc("5 0 1 1 *", func() {
		nextYear := time.Now().Year() + 1
		if err := SeedNextYearForAllUsers(nextYear); err != nil {
			log.Printf("yearly seed failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// SeedNextYearForAllUsers materializes one year's default events for
// every enabled account that does not have them yet.
func SeedNextYearForAllUsers(year int) error {
	var users []models.User
	if err := config.DB.Where("disabled = ?", false).Find(&users).Error; err != nil {
		return err
	}

	for _, user := range users {
		if err := SeedEventsForYear(user.ID, year); err != nil {
			log.Printf("seed year %d for user %d failed: %v", year, user.ID, err)
		}
	}
	log.Printf("yearly seed complete for %d users, year %d", len(users), year)
	return nil
}
