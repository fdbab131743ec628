package calendar

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

const rrulePrefix = "RRULE:"

// Layouts accepted for startDate/endDate, tried in order. The first two
// carry an offset; the rest are read in Options.Location.
var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC3339}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// Serializer turns events into an iCalendar document. It holds no
// mutable state and is safe for concurrent use.
type Serializer struct {
	productID string
	uidDomain string
	loc       *time.Location
	now       func() time.Time
}

// NewSerializer builds a Serializer, filling defaults for empty options.
func NewSerializer(opts Options) *Serializer {
	s := &Serializer{
		productID: opts.ProductID,
		uidDomain: opts.UIDDomain,
		loc:       opts.Location,
		now:       opts.Now,
	}
	if s.productID == "" {
		s.productID = DefaultProductID
	}
	if s.uidDomain == "" {
		s.uidDomain = DefaultUIDDomain
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ToCalendarDocument serializes events with default options.
func ToCalendarDocument(events []Event) string {
	return NewSerializer(Options{}).ToCalendarDocument(events)
}

// ToCalendarDocument returns only the document of Encode.
func (s *Serializer) ToCalendarDocument(events []Event) string {
	return s.Encode(events).Document
}

// Encode writes one VEVENT per event. An event whose timestamps cannot
// be read, or whose end precedes its start, is left out and reported in
// Result.Skipped; the remaining events are still written. An invalid
// recurrence rule is dropped, reported in Result.DroppedRecurrence, and
// its event written as a one-time event.
func (s *Serializer) Encode(events []Event) Result {
	now := s.now().UTC()

	cal := ics.NewCalendarFor("Schedule ICS Generator")
	cal.SetProductId(s.productID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	var res Result
	for i, ev := range events {
		start, end, err := s.span(ev)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedEvent{Index: i, Title: ev.Title, Err: err})
			continue
		}

		vevent := cal.AddEvent(s.newUID(now))
		vevent.SetSummary(summary(ev.Title))
		vevent.SetStartAt(start)
		vevent.SetEndAt(end)
		vevent.SetDtStampTime(now)

		if loc := normalizeText(ev.Location); loc != "" {
			vevent.SetLocation(loc)
		}
		if desc := normalizeText(ev.Description); desc != "" {
			vevent.SetDescription(desc)
		}
		rule, err := NormalizeRecurrence(ev.Recurrence)
		switch {
		case err != nil:
			res.DroppedRecurrence = append(res.DroppedRecurrence, SkippedEvent{Index: i, Title: ev.Title, Err: err})
		case rule != "":
			vevent.AddRrule(rule)
		}
		res.Written++
	}

	res.Document = cal.Serialize()
	return res
}

func (s *Serializer) span(ev Event) (time.Time, time.Time, error) {
	start, err := ParseTimestamp(ev.StartDate, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate: %w", err)
	}
	end, err := ParseTimestamp(ev.EndDate, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s < %s", ErrInvalidRange, ev.EndDate, ev.StartDate)
	}
	return start.UTC(), end.UTC(), nil
}

func (s *Serializer) newUID(now time.Time) string {
	return fmt.Sprintf("%d-%s@%s", now.UnixMilli(), uuid.NewString(), s.uidDomain)
}

// ParseTimestamp reads an ISO-8601 timestamp. Values without an offset
// are interpreted in loc (UTC when nil).
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrDateParse)
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, value)
}

// NormalizeRecurrence strips an "RRULE:" prefix and checks the rule
// grammar. An empty rule yields "" and no error. Part names and the
// FREQ, BYDAY, WKST and UNTIL values are uppercased; X- extension values
// keep their case. A date-only UNTIL is widened to the end of that day
// in UTC so it matches the DATE-TIME DTSTART written by Encode.
func NormalizeRecurrence(rule string) (string, error) {
	r := strings.TrimSpace(rule)
	if len(r) >= len(rrulePrefix) && strings.EqualFold(r[:len(rrulePrefix)], rrulePrefix) {
		r = strings.TrimSpace(r[len(rrulePrefix):])
	}
	r = strings.TrimRight(r, ";")
	if r == "" {
		return "", nil
	}
	// RRULE is a RECUR value and is written unescaped.
	if strings.ContainsAny(r, "\r\n") {
		return "", fmt.Errorf("%w: contains a line break", ErrInvalidRecurrence)
	}

	parts := strings.Split(r, ";")
	known := make([]string, 0, len(parts))
	for i, part := range parts {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return "", fmt.Errorf("%w: malformed part %q", ErrInvalidRecurrence, part)
		}
		name = strings.ToUpper(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if strings.HasPrefix(name, "X-") {
			parts[i] = name + "=" + value
			continue
		}
		switch name {
		case "FREQ", "BYDAY", "WKST", "UNTIL":
			value = strings.ToUpper(value)
		}
		if name == "UNTIL" && isDateOnly(value) {
			value += "T235959Z"
		}
		parts[i] = name + "=" + value
		known = append(known, parts[i])
	}

	// rrule-go rejects extension parts it does not know.
	if _, err := rrule.StrToROption(strings.Join(known, ";")); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
	}
	return strings.Join(parts, ";"), nil
}

func isDateOnly(v string) bool {
	if len(v) != len("20060102") {
		return false
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func summary(title string) string {
	t := normalizeText(title)
	if strings.TrimSpace(t) == "" {
		return UntitledSummary
	}
	return t
}

// normalizeText folds CRLF and lone CR into LF so TEXT escaping sees one
// line-break form.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
