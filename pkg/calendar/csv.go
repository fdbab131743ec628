package calendar

import (
	"fmt"
	"strings"
)

// SpreadsheetHeader is the first line of every spreadsheet export.
const SpreadsheetHeader = "Subject,Start Date,End Date,Description,Location"

// SpreadsheetVariant names a spreadsheet download. Variants share the
// same body and differ only by filename.
type SpreadsheetVariant string

const (
	SpreadsheetGoogle  SpreadsheetVariant = "google"
	SpreadsheetOutlook SpreadsheetVariant = "outlook"
)

// SpreadsheetVariants lists every known variant.
var SpreadsheetVariants = []SpreadsheetVariant{SpreadsheetGoogle, SpreadsheetOutlook}

// ParseSpreadsheetVariant maps "google" or "outlook" (any case) to a variant.
func ParseSpreadsheetVariant(s string) (SpreadsheetVariant, error) {
	switch v := SpreadsheetVariant(strings.ToLower(strings.TrimSpace(s))); v {
	case SpreadsheetGoogle, SpreadsheetOutlook:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Filename is the download name of the variant.
func (v SpreadsheetVariant) Filename() string {
	return string(v) + "-calendar-events.csv"
}

// ToSpreadsheetExport renders the header plus one LF-terminated row per
// event. Fields are joined with commas as-is: embedded commas, quotes and
// newlines are NOT escaped, so such values shift or split columns on
// import. Existing importers rely on this exact layout.
func ToSpreadsheetExport(events []Event) string {
	var sb strings.Builder
	sb.WriteString(SpreadsheetHeader)
	sb.WriteByte('\n')
	for _, ev := range events {
		sb.WriteString(ev.Title)
		sb.WriteByte(',')
		sb.WriteString(ev.StartDate)
		sb.WriteByte(',')
		sb.WriteString(ev.EndDate)
		sb.WriteByte(',')
		sb.WriteString(ev.Description)
		sb.WriteByte(',')
		sb.WriteString(ev.Location)
		sb.WriteByte('\n')
	}
	return sb.String()
}
