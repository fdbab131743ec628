package calendar

import "time"

const (
	// DocumentFilename is the download name of the calendar document.
	DocumentFilename = "schedule.ics"

	// UntitledSummary replaces an empty title in the calendar document.
	UntitledSummary = "Untitled Event"

	DefaultProductID = "-//Schedule ICS Generator//EN"
	DefaultUIDDomain = "schedule-calendar"
)

// Event is one schedule entry as handed to the serializer. Optional
// fields are empty when unknown.
type Event struct {
	Title       string
	StartDate   string
	EndDate     string
	Location    string
	Description string
	Recurrence  string
}

// Options configures a Serializer. The zero value is usable.
type Options struct {
	ProductID string
	UIDDomain string

	// Location interprets timestamps that carry no offset. Nil means UTC.
	Location *time.Location

	// Now stamps DTSTAMP and seeds UIDs. Nil means time.Now.
	Now func() time.Time
}

// Result is the outcome of Serializer.Encode.
type Result struct {
	Document string
	Written  int
	Skipped  []SkippedEvent

	DroppedRecurrence []SkippedEvent
}

// SkippedEvent records an input event left out of the document.
type SkippedEvent struct {
	Index int
	Title string
	Err   error
}
