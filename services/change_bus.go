package services

import (
	"time"
)

type changeDeps struct {
	rt *RealtimeHub
}

var _change changeDeps

func InitChangeDeps(rt *RealtimeHub) {
	_change = changeDeps{rt: rt}
}

// EmitDayChanged re-resolves one date and pushes the fresh DayStatus to
// the user's open calendars. Safe to call anywhere; a no-op before
// InitChangeDeps or when the status cannot be resolved.
func EmitDayChanged(userID uint, date time.Time) {
	if _change.rt == nil {
		return
	}
	status, err := GetDayStatus(userID, date)
	if err != nil {
		return
	}
	_change.rt.Broadcast(userID, map[string]any{
		"kind":   "day.updated",
		"status": status,
	})
}

// EmitRulesChanged tells open calendars to refetch the month view;
// a weekly-rule edit touches every matching weekday, so no single
// DayStatus covers it.
func EmitRulesChanged(userID uint) {
	if _change.rt == nil {
		return
	}
	_change.rt.Broadcast(userID, map[string]any{
		"kind": "rules.updated",
	})
}
