package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	_ "schedule-calendar/docs"
	"schedule-calendar/internal/schedule"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type stubUseCase struct{}

func (stubUseCase) Extract(ctx context.Context, input schedule.ExtractInput) (schedule.ExtractOutput, error) {
	return schedule.ExtractOutput{}, nil
}
func (stubUseCase) ExportCalendar(ctx context.Context, input schedule.ExportCalendarInput) (schedule.ExportCalendarOutput, error) {
	return schedule.ExportCalendarOutput{Filename: "schedule.ics"}, nil
}
func (stubUseCase) ExportSpreadsheet(ctx context.Context, input schedule.ExportSpreadsheetInput) (schedule.ExportSpreadsheetOutput, error) {
	return schedule.ExportSpreadsheetOutput{Filename: "google-calendar-events.csv"}, nil
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Logger:          &mockLogger{},
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "production",
		ScheduleUseCase: stubUseCase{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestNew_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 8080, ScheduleUseCase: stubUseCase{}}},
		{"missing port", Config{Mode: gin.TestMode, ScheduleUseCase: stubUseCase{}}},
		{"missing usecase", Config{Mode: gin.TestMode, Port: 8080}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(&mockLogger{}, tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := New(nil, Config{Mode: gin.TestMode, Port: 8080, ScheduleUseCase: stubUseCase{}}); err == nil {
		t.Error("expected error for nil logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}

			var body struct {
				ErrorCode int            `json:"error_code"`
				Data      map[string]any `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Data["status"] != status || body.Data["service"] != ServiceName {
				t.Errorf("data = %v", body.Data)
			}
		})
	}
}

func TestSwaggerDoc(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("/api/v1/schedules/extract")) {
		t.Error("swagger doc should describe the extract route")
	}
}

func TestDomainRoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	routes := map[string]bool{}
	for _, r := range srv.gin.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/completion",
		"POST /api/v1/schedules/extract",
		"POST /api/v1/schedules/export/ics",
		"POST /api/v1/schedules/export/csv/:variant",
	} {
		if !routes[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}
