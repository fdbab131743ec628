package http

import (
	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/calendar"
)

// --- Request DTOs ---

type extractReq struct {
	Content string `json:"content"`
}

func (r extractReq) toInput() schedule.ExtractInput {
	return schedule.ExtractInput{Content: r.Content}
}

// eventDTO mirrors model.ScheduleEvent on the wire.
type eventDTO struct {
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Recurrence  string `json:"recurrence,omitempty"`
}

func (e eventDTO) toModel() model.ScheduleEvent {
	return model.ScheduleEvent{
		Title:       e.Title,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		Description: e.Description,
		Recurrence:  e.Recurrence,
	}
}

func newEventDTO(ev model.ScheduleEvent) eventDTO {
	return eventDTO{
		Title:       ev.Title,
		StartDate:   ev.StartDate,
		EndDate:     ev.EndDate,
		Location:    ev.Location,
		Description: ev.Description,
		Recurrence:  ev.Recurrence,
	}
}

type exportReq struct {
	Events []eventDTO `json:"events"`
}

func (r exportReq) toModels() []model.ScheduleEvent {
	events := make([]model.ScheduleEvent, len(r.Events))
	for i, ev := range r.Events {
		events[i] = ev.toModel()
	}
	return events
}

func (r exportReq) toCalendarInput() schedule.ExportCalendarInput {
	return schedule.ExportCalendarInput{Events: r.toModels()}
}

func (r exportReq) toSpreadsheetInput(variant calendar.SpreadsheetVariant) schedule.ExportSpreadsheetInput {
	return schedule.ExportSpreadsheetInput{Events: r.toModels(), Variant: variant}
}

// --- Response DTOs ---

type extractResp struct {
	Events []eventDTO `json:"events"`
}

func (h *handler) newExtractResp(out schedule.ExtractOutput) extractResp {
	events := make([]eventDTO, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventDTO(ev)
	}
	return extractResp{Events: events}
}
