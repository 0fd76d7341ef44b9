package model

// Status is one entry of the fixed trademark status enumeration.
// The color tag is a presentation hint consumed by clients when
// rendering status badges.
type Status struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Statuses is the full, fixed status enumeration. Status IDs stored on
// trademarks must be one of these six values.
var Statuses = []Status{
	{ID: 1, Name: "Registered", Color: "green"},
	{ID: 2, Name: "Pending", Color: "blue"},
	{ID: 3, Name: "Abandoned", Color: "red"},
	{ID: 4, Name: "Cancelled", Color: "gray"},
	{ID: 5, Name: "Expired", Color: "amber"},
	{ID: 6, Name: "Opposition", Color: "orange"},
}

// StatusName maps a status ID to its display name. Unknown IDs yield
// an empty string, which never matches a status filter.
func StatusName(id int) string {
	for _, s := range Statuses {
		if s.ID == id {
			return s.Name
		}
	}
	return ""
}

// ValidStatusName reports whether name is one of the six display names.
func ValidStatusName(name string) bool {
	for _, s := range Statuses {
		if s.Name == name {
			return true
		}
	}
	return false
}
