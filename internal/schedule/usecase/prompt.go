package usecase

import (
	"fmt"
	"time"
)

// extractionPolicy is the system instruction for schedule extraction.
// %d is replaced by the reference year.
const extractionPolicy = `You extract schedule information from text.
The text comes from a course schedule, syllabus, or other academic calendar, possibly copied out of a PDF.
Identify every schedule-related event (class sessions, assignments, quizzes, exams) and return them as JSON.
Dates without a year are in %d.

For each event provide:
1. title
   - Classes: course name or code (e.g. "Database Systems")
   - Assignments: assignment name (e.g. "Project 1 Part 1 Due")
   - Quizzes and exams: their name (e.g. "Quiz 1", "Midterm Exam")
2. startDate
   - Classes: the session date; use 00:00:00 when no time is given
   - Assignments: the due date; use 23:59:59 when no time is given
3. endDate
   - Classes: one hour after startDate when no end time is given
   - Assignments: same as startDate
4. location (optional)
   - Room or building for classes, "Online" for virtual submissions
   - Omit when not stated
5. description (optional)
   - Classes: topic or lecture content
   - Assignments: "Due: <date>" plus details, and "Assigned: <date>" when known
   - Exams: exam type and covered material
6. recurrence (optional)
   - Weekly classes: "FREQ=WEEKLY;UNTIL=<last day of term as YYYYMMDD>"
   - One-time events: omit

Rules:
- Write every date as ISO 8601 local time: YYYY-MM-DDTHH:mm:ss
- Emit a separate event for each class session, each assignment date, and each quiz or exam
- Remove PDF extraction artifacts and stray whitespace
- Ignore headers, footers, page numbers, and other non-schedule content

Respond with a single JSON object of this shape and nothing else:
{
  "events": [
    {
      "title": "string",
      "startDate": "YYYY-MM-DDTHH:mm:ss",
      "endDate": "YYYY-MM-DDTHH:mm:ss",
      "location": "string (optional)",
      "description": "string (optional)",
      "recurrence": "string (optional)"
    }
  ]
}

Example input:
"Week 1 (1/23): Introduction to Databases
Lecture 1: DBMS architectures
Project 1 Part 1 assigned"

Example output:
{
  "events": [
    {
      "title": "Introduction to Databases",
      "startDate": "2024-01-23T00:00:00",
      "endDate": "2024-01-23T01:00:00",
      "description": "Lecture 1: DBMS architectures",
      "recurrence": "FREQ=WEEKLY;UNTIL=20240531"
    },
    {
      "title": "Project 1 Part 1 Assigned",
      "startDate": "2024-01-23T00:00:00",
      "endDate": "2024-01-23T23:59:59",
      "description": "Assignment start date"
    }
  ]
}`

const userPromptPrefix = "Extract schedule information from this text: "

// buildSystemPrompt returns the policy and the "today" line as separate parts.
func buildSystemPrompt(ref time.Time) []string {
	return []string{
		fmt.Sprintf(extractionPolicy, ref.Year()),
		"Today's Date: " + ref.Format(time.RFC3339),
	}
}

func buildUserPrompt(content string) string {
	return userPromptPrefix + content
}
