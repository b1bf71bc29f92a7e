package services

import (
	"testing"
	"time"

	"github.com/Rameshwarsp7900/non-veg/models"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return date
}

func TestResolveDayStatus_DefaultTier(t *testing.T) {
	// 2024-01-14 is a Sunday (native dow 0 → weekday 7); no source applies.
	date := mustDate(t, "2024-01-14")

	status := ResolveDayStatus(date, nil, nil, nil)

	assert.Equal(t, "2024-01-14", status.Date)
	assert.Equal(t, models.NonVegAllowed, status.Restriction)
	assert.Equal(t, "No restrictions apply today", status.Reason)
	assert.Empty(t, status.Events)
	assert.False(t, status.HasUserOverride)
}

func TestResolveDayStatus_EventTier(t *testing.T) {
	date := mustDate(t, "2024-08-27")
	events := []models.DietEvent{
		{
			Name:        "Ganesh Chaturthi",
			Date:        "2024-08-27",
			Category:    models.CategoryFestival,
			Restriction: models.VegOnly,
			Reason:      "Ganesh Chaturthi - Sacred festival, only vegetarian offerings",
		},
	}

	status := ResolveDayStatus(date, nil, events, nil)

	assert.Equal(t, models.VegOnly, status.Restriction)
	assert.Contains(t, status.Reason, "Ganesh Chaturthi")
	assert.Len(t, status.Events, 1)
	assert.False(t, status.HasUserOverride)
}

func TestResolveDayStatus_EventPrecedenceAmongSameDay(t *testing.T) {
	tests := []struct {
		name         string
		restrictions []models.RestrictionType
		want         models.RestrictionType
	}{
		{"veg only beats conditional", []models.RestrictionType{models.Conditional, models.VegOnly}, models.VegOnly},
		{"veg only beats non-veg", []models.RestrictionType{models.NonVegAllowed, models.VegOnly}, models.VegOnly},
		{"conditional beats non-veg", []models.RestrictionType{models.NonVegAllowed, models.Conditional}, models.Conditional},
		{"all non-veg stays non-veg", []models.RestrictionType{models.NonVegAllowed, models.NonVegAllowed}, models.NonVegAllowed},
	}

	date := mustDate(t, "2024-05-10")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []models.DietEvent
			for i, r := range tt.restrictions {
				events = append(events, models.DietEvent{
					Name:        "Event",
					Date:        "2024-05-10",
					Restriction: r,
					Reason:      "reason",
				})
				events[i].ID = uint(i + 1)
			}

			status := ResolveDayStatus(date, nil, events, nil)
			assert.Equal(t, tt.want, status.Restriction)
			assert.Len(t, status.Events, len(tt.restrictions), "all same-day events are reported, not just the winner")
		})
	}
}

func TestResolveDayStatus_WeeklyRuleTier(t *testing.T) {
	// 2024-08-20 is a Tuesday.
	date := mustDate(t, "2024-08-20")
	rules := []models.WeeklyRule{
		{Weekday: 2, Restriction: models.VegOnly, Reason: "Traditional Hanuman day restriction", IsActive: true},
		{Weekday: 6, Restriction: models.VegOnly, Reason: "Hanuman's day", IsActive: true},
	}

	status := ResolveDayStatus(date, nil, nil, rules)

	assert.Equal(t, models.VegOnly, status.Restriction)
	assert.Equal(t, "Traditional Hanuman day restriction", status.Reason)
	assert.Empty(t, status.Events)
}

func TestResolveDayStatus_InactiveRuleIgnored(t *testing.T) {
	date := mustDate(t, "2024-08-20") // Tuesday
	rules := []models.WeeklyRule{
		{Weekday: 2, Restriction: models.VegOnly, Reason: "Traditional Hanuman day restriction", IsActive: false},
	}

	status := ResolveDayStatus(date, nil, nil, rules)

	assert.Equal(t, models.NonVegAllowed, status.Restriction)
	assert.Equal(t, DefaultDayReason, status.Reason)
}

func TestResolveDayStatus_EventBeatsWeeklyRule(t *testing.T) {
	// A Tuesday with an active veg-only Tuesday rule AND a non-veg
	// event: the event tier wins outright even though the rule is
	// stricter — precedence is by tier, not severity.
	date := mustDate(t, "2024-08-20")
	events := []models.DietEvent{
		{Name: "Family BBQ", Date: "2024-08-20", Restriction: models.NonVegAllowed, Reason: "Family BBQ day"},
	}
	rules := []models.WeeklyRule{
		{Weekday: 2, Restriction: models.VegOnly, Reason: "Traditional Hanuman day restriction", IsActive: true},
	}

	status := ResolveDayStatus(date, nil, events, rules)

	assert.Equal(t, models.NonVegAllowed, status.Restriction)
	assert.Equal(t, "Family BBQ day", status.Reason)
	assert.Len(t, status.Events, 1)
}

func TestResolveDayStatus_OverrideBeatsEverything(t *testing.T) {
	date := mustDate(t, "2024-08-27")
	overrides := []models.ManualOverride{
		{Date: "2024-08-27", Restriction: models.NonVegAllowed, Reason: "Travelling"},
	}
	events := []models.DietEvent{
		{Name: "Ganesh Chaturthi", Date: "2024-08-27", Restriction: models.VegOnly, Reason: "Sacred festival"},
	}
	rules := []models.WeeklyRule{
		{Weekday: 2, Restriction: models.VegOnly, Reason: "Traditional Hanuman day restriction", IsActive: true},
	}

	status := ResolveDayStatus(date, overrides, events, rules)

	assert.Equal(t, models.NonVegAllowed, status.Restriction)
	assert.Equal(t, "Travelling", status.Reason)
	assert.True(t, status.HasUserOverride)
	assert.Empty(t, status.Events, "override tier reports no contributing events")
}

func TestResolveDayStatus_OverrideOnOtherDateIgnored(t *testing.T) {
	date := mustDate(t, "2024-08-27")
	overrides := []models.ManualOverride{
		{Date: "2024-08-26", Restriction: models.NonVegAllowed, Reason: "Travelling"},
	}

	status := ResolveDayStatus(date, overrides, nil, nil)

	assert.False(t, status.HasUserOverride)
	assert.Equal(t, models.NonVegAllowed, status.Restriction)
	assert.Equal(t, DefaultDayReason, status.Reason)
}

func TestResolveDayStatus_DuplicateOverridesDeterministic(t *testing.T) {
	// The store should prevent this; if it happens anyway the lowest-ID
	// row wins regardless of slice order.
	date := mustDate(t, "2024-03-03")
	first := models.ManualOverride{Date: "2024-03-03", Restriction: models.VegOnly, Reason: "First"}
	first.ID = 1
	second := models.ManualOverride{Date: "2024-03-03", Restriction: models.Conditional, Reason: "Second"}
	second.ID = 2

	forward := ResolveDayStatus(date, []models.ManualOverride{first, second}, nil, nil)
	reversed := ResolveDayStatus(date, []models.ManualOverride{second, first}, nil, nil)

	assert.Equal(t, forward, reversed)
	assert.Equal(t, "First", forward.Reason)
	assert.Equal(t, models.VegOnly, forward.Restriction)
}

func TestRestrictionPrecedence(t *testing.T) {
	assert.True(t, models.VegOnly.StricterThan(models.Conditional))
	assert.True(t, models.Conditional.StricterThan(models.NonVegAllowed))
	assert.False(t, models.NonVegAllowed.StricterThan(models.VegOnly))

	assert.Equal(t, models.NonVegAllowed, models.StrictestOf(nil))
	assert.Equal(t, models.VegOnly, models.StrictestOf([]models.RestrictionType{
		models.NonVegAllowed, models.VegOnly, models.Conditional,
	}))
}
