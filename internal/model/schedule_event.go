package model

// ScheduleEvent is one class session, assignment, or exam extracted from a
// course schedule. Timestamps are ISO-8601 strings as produced by the
// extractor; optional fields are empty when unknown.
type ScheduleEvent struct {
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Recurrence  string `json:"recurrence,omitempty"` // FREQ=...;UNTIL=...
}
