package services

import (
	"fmt"
	"time"

	"github.com/Rameshwarsp7900/non-veg/utils"

	ical "github.com/arran4/golang-ical"
)

// BuildICSCalendar renders a user's diet events as all-day VEVENTs so
// the diet calendar can be subscribed from any calendar client.
func BuildICSCalendar(userID uint) (string, error) {
	events, err := ListEvents(userID, "", "")
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//veg-nonveg//diet-calendar//EN")

	now := time.Now()
	for _, ev := range events {
		day, err := utils.ParseDate(ev.Date)
		if err != nil {
			continue
		}

		vevent := cal.AddEvent(fmt.Sprintf("diet-event-%d@veg-nonveg", ev.ID))
		vevent.SetDtStampTime(now)
		vevent.SetAllDayStartAt(day)
		vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))
		vevent.SetSummary(fmt.Sprintf("%s (%s)", ev.Name, ev.Restriction))
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
	}

	return cal.Serialize(), nil
}
