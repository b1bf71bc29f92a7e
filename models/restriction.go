package models

// RestrictionType is the dietary restriction applied to a day.
// Values are ordered: when several sources land on the same date,
// the one with the highest precedence wins.
type RestrictionType string

const (
	VegOnly       RestrictionType = "veg_only"
	Conditional   RestrictionType = "conditional"
	NonVegAllowed RestrictionType = "non_veg_allowed"
)

// Precedence returns the rank used for same-date tie-breaks,
// higher wins. Unknown values rank below every known one.
func (r RestrictionType) Precedence() int {
	switch r {
	case VegOnly:
		return 3
	case Conditional:
		return 2
	case NonVegAllowed:
		return 1
	}
	return 0
}

func (r RestrictionType) StricterThan(other RestrictionType) bool {
	return r.Precedence() > other.Precedence()
}

// StrictestOf picks the highest-precedence restriction in the list.
// An empty list yields NonVegAllowed.
func StrictestOf(restrictions []RestrictionType) RestrictionType {
	winner := NonVegAllowed
	for _, r := range restrictions {
		if r.StricterThan(winner) {
			winner = r
		}
	}
	return winner
}

// EventCategory classifies a diet event.
type EventCategory string

const (
	CategoryFestival EventCategory = "festival"
	CategoryEclipse  EventCategory = "eclipse"
	CategoryHoliday  EventCategory = "holiday"
	CategoryPersonal EventCategory = "personal"
	CategoryWeekly   EventCategory = "weekly"
	CategoryFamily   EventCategory = "family"
)
