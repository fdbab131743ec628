package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
)

const eventsKey = "events"

// decodeEvents parses a completion body into events. The body must be a
// JSON object; a missing or null "events" key yields no events. Every
// element must match the event shape or the whole batch is rejected.
func decodeEvents(raw string) ([]model.ScheduleEvent, error) {
	body := strings.TrimSpace(raw)
	if !json.Valid([]byte(body)) {
		// Fences and prose are stripped only when the body is not JSON as-is;
		// string values may legitimately contain backticks.
		body = sanitizeJSONResponse(body)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: empty content", schedule.ErrUpstreamFormat)
	}

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: %v", schedule.ErrUpstreamFormat, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", schedule.ErrUpstreamFormat)
	}

	root, ok := tree.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %s", schedule.ErrUpstreamFormat, jsonKind(tree))
	}

	rawEvents, present := root[eventsKey]
	if !present || rawEvents == nil {
		return []model.ScheduleEvent{}, nil
	}

	items, ok := rawEvents.([]any)
	if !ok {
		return nil, &schedule.SchemaError{Index: -1, Field: eventsKey, Reason: "must be an array, got " + jsonKind(rawEvents)}
	}

	events := make([]model.ScheduleEvent, 0, len(items))
	for i, item := range items {
		ev, err := decodeEvent(i, item)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func decodeEvent(index int, item any) (model.ScheduleEvent, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return model.ScheduleEvent{}, &schedule.SchemaError{Index: index, Reason: "must be an object, got " + jsonKind(item)}
	}

	var ev model.ScheduleEvent
	required := []struct {
		key string
		dst *string
	}{
		{"title", &ev.Title},
		{"startDate", &ev.StartDate},
		{"endDate", &ev.EndDate},
	}
	for _, f := range required {
		v, present := obj[f.key]
		if !present {
			return model.ScheduleEvent{}, &schedule.SchemaError{Index: index, Field: f.key, Reason: "is required"}
		}
		s, ok := v.(string)
		if !ok {
			return model.ScheduleEvent{}, &schedule.SchemaError{Index: index, Field: f.key, Reason: "must be a string, got " + jsonKind(v)}
		}
		*f.dst = s
	}
	if strings.TrimSpace(ev.Title) == "" {
		return model.ScheduleEvent{}, &schedule.SchemaError{Index: index, Field: "title", Reason: "must not be blank"}
	}

	optional := []struct {
		key string
		dst *string
	}{
		{"location", &ev.Location},
		{"description", &ev.Description},
		{"recurrence", &ev.Recurrence},
	}
	for _, f := range optional {
		v, present := obj[f.key]
		if !present {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return model.ScheduleEvent{}, &schedule.SchemaError{Index: index, Field: f.key, Reason: "must be a string when present, got " + jsonKind(v)}
		}
		*f.dst = s
	}

	return ev, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// compactForLog shortens a completion body for log lines.
func compactForLog(raw string, limit int) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err == nil {
		raw = buf.String()
	}
	if len(raw) <= limit {
		return raw
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut] + "..."
}
