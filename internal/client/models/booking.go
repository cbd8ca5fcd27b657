package models

// Resource is a bookable campus space (classroom, lab, court, ...).
type Resource struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
}

// Reservation is a confirmed booking returned by the booking service.
// Times are ISO-8601 strings as produced by the backend.
type Reservation struct {
	ID         string `json:"id"`
	ResourceID string `json:"resourceId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}
