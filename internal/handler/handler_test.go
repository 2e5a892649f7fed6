package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_Root(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.Root(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["message"] != "Exertrack exercise log API" {
		t.Errorf("unexpected message: %s", response["message"])
	}

	if response["version"] != "0.1.0" {
		t.Errorf("unexpected version: %s", response["version"])
	}
}

func TestHandler_NotFound(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "resource not found" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	h.MethodNotAllowed(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "method not allowed" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestRequestValues_JSONBody(t *testing.T) {
	body := `{"description":"morning run","duration":30,"flagged":true,"note":null}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	values, err := requestValues(req)
	if err != nil {
		t.Fatalf("requestValues() error: %v", err)
	}

	if got := values.Get("description"); got != "morning run" {
		t.Errorf("description = %q, want %q", got, "morning run")
	}
	if got := values.Get("duration"); got != "30" {
		t.Errorf("duration = %q, want %q", got, "30")
	}
	if got := values.Get("flagged"); got != "true" {
		t.Errorf("flagged = %q, want %q", got, "true")
	}
	if values.Has("note") {
		t.Error("expected null field to be absent")
	}
}

func TestRequestValues_FormBody(t *testing.T) {
	body := "description=evening+swim&duration=45"
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	values, err := requestValues(req)
	if err != nil {
		t.Fatalf("requestValues() error: %v", err)
	}

	if got := values.Get("description"); got != "evening swim" {
		t.Errorf("description = %q, want %q", got, "evening swim")
	}
	if got := values.Get("duration"); got != "45" {
		t.Errorf("duration = %q, want %q", got, "45")
	}
}

func TestRequestValues_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	if _, err := requestValues(req); err == nil {
		t.Error("expected error for malformed JSON body")
	}
}
