package usecase

import (
	"regexp"
	"strings"

	"schedule-calendar/internal/model"
	"schedule-calendar/pkg/calendar"
)

var (
	wholeFenceRe = regexp.MustCompile("(?s)^\\s*```(?:json|JSON)?\\s*(.+)\\s*```\\s*$")
	codeFenceRe  = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.+?)\\s*```")
)

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := wholeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

func toCalendarEvents(events []model.ScheduleEvent) []calendar.Event {
	out := make([]calendar.Event, len(events))
	for i, ev := range events {
		out[i] = calendar.Event{
			Title:       ev.Title,
			StartDate:   ev.StartDate,
			EndDate:     ev.EndDate,
			Location:    ev.Location,
			Description: ev.Description,
			Recurrence:  ev.Recurrence,
		}
	}
	return out
}
