package models

// DayStatus is the resolved restriction for one date. It is derived,
// never persisted: the resolver recomputes it on every call.
type DayStatus struct {
    Date            string          `json:"date"` // YYYY-MM-DD
    Restriction     RestrictionType `json:"restriction"`
    Reason          string          `json:"reason"`
    Events          []DietEvent     `json:"events"`
    UserNotes       string          `json:"user_notes,omitempty"`
    HasUserOverride bool            `json:"has_user_override"`
}
