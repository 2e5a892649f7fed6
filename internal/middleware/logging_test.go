package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestLogging_BasicFields verifies that expected fields are logged.
func TestLogging_BasicFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	wrapped := Logger(logger)(handler)

	req := httptest.NewRequest("POST", "/api/users", nil)
	req.Header.Set("User-Agent", "TestBrowser/2.0")

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	logOutput := buf.String()

	expectedFields := []string{
		`"method":"POST"`,
		`"path":"/api/users"`,
		`"status_code":201`,
		`"user_agent":"TestBrowser/2.0"`,
	}
	for _, field := range expectedFields {
		if !strings.Contains(logOutput, field) {
			t.Errorf("log output missing field %s: %s", field, logOutput)
		}
	}
}

// TestLogging_LevelByStatus verifies log levels track the response status.
func TestLogging_LevelByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs info", http.StatusOK, `"level":"INFO"`},
		{"client error logs warn", http.StatusNotFound, `"level":"WARN"`},
		{"server error logs error", http.StatusInternalServerError, `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			wrapped := Logger(logger)(handler)

			req := httptest.NewRequest("GET", "/api/users", nil)
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			if !strings.Contains(buf.String(), tt.wantLevel) {
				t.Errorf("expected %s in log output: %s", tt.wantLevel, buf.String())
			}
		})
	}
}

// TestLogging_StatusDefaultsTo200 verifies the wrapper records 200 when a
// handler writes a body without calling WriteHeader.
func TestLogging_StatusDefaultsTo200(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	wrapped := Logger(logger)(handler)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if !strings.Contains(buf.String(), `"status_code":200`) {
		t.Errorf("expected status_code 200 in log output: %s", buf.String())
	}
}
