package services

import (
	"log"
	"time"

	"github.com/Rameshwarsp7900/non-veg/models"
	"github.com/Rameshwarsp7900/non-veg/utils"
)

// DefaultDayReason is returned when no override, event or weekly rule
// applies to a date.
const DefaultDayReason = "No restrictions apply today"

// ResolveDayStatus computes the effective restriction for one date from
// the three sources, in fixed precedence order: manual override, then
// diet events, then the active weekly rule for the date's weekday, then
// the open default. The first tier that matches wins outright; tiers
// are never combined. The function is pure and total — empty inputs
// simply fall through to the default.
func ResolveDayStatus(date time.Time, overrides []models.ManualOverride, events []models.DietEvent, rules []models.WeeklyRule) models.DayStatus {
	dateStr := utils.FormatDate(date)

	// Tier 1: manual override. The store keeps at most one per
	// (user, date); if that invariant is breached, warn and use the
	// lowest-ID row so resolution stays deterministic.
	var override *models.ManualOverride
	matches := 0
	for i := range overrides {
		if overrides[i].Date != dateStr {
			continue
		}
		matches++
		if override == nil || overrides[i].ID < override.ID {
			override = &overrides[i]
		}
	}
	if matches > 1 {
		log.Printf("multiple manual overrides for user %d on %s, using id %d", override.UserID, dateStr, override.ID)
	}
	if override != nil {
		return models.DayStatus{
			Date:            dateStr,
			Restriction:     override.Restriction,
			Reason:          override.Reason,
			Events:          []models.DietEvent{},
			UserNotes:       override.Notes,
			HasUserOverride: true,
		}
	}

	// Tier 2: events on this date. The strictest restriction among
	// them decides the day; the output carries every matching event.
	var dayEvents []models.DietEvent
	for _, ev := range events {
		if ev.Date == dateStr {
			dayEvents = append(dayEvents, ev)
		}
	}
	if len(dayEvents) > 0 {
		restrictions := make([]models.RestrictionType, 0, len(dayEvents))
		for _, ev := range dayEvents {
			restrictions = append(restrictions, ev.Restriction)
		}
		winner := models.StrictestOf(restrictions)

		reason := ""
		for _, ev := range dayEvents {
			if ev.Restriction == winner {
				reason = ev.Reason
				if reason == "" {
					reason = ev.Name
				}
				break
			}
		}
		return models.DayStatus{
			Date:        dateStr,
			Restriction: winner,
			Reason:      reason,
			Events:      dayEvents,
		}
	}

	// Tier 3: weekly rule for this weekday.
	weekday := utils.ISOWeekday(date)
	for _, rule := range rules {
		if rule.IsActive && rule.Weekday == weekday {
			return models.DayStatus{
				Date:        dateStr,
				Restriction: rule.Restriction,
				Reason:      rule.Reason,
				Events:      []models.DietEvent{},
			}
		}
	}

	// Tier 4: nothing applies.
	return models.DayStatus{
		Date:        dateStr,
		Restriction: models.NonVegAllowed,
		Reason:      DefaultDayReason,
		Events:      []models.DietEvent{},
	}
}
