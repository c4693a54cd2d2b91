package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Test helpers for handler tests

// createTestContext creates a test Gin context with recorder
func createTestContext() (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return w, c
}

// assertStatusCode checks if response status code matches expected
func assertStatusCode(t *testing.T, w *httptest.ResponseRecorder, expectedCode int) {
	t.Helper()
	if w.Code != expectedCode {
		t.Errorf("expected status %d, got %d: %s", expectedCode, w.Code, w.Body.String())
	}
}

// assertEnvelopeError checks that the response is a failure envelope with
// the expected error message
func assertEnvelopeError(t *testing.T, w *httptest.ResponseRecorder, expectedError string) {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if ok, _ := response["ok"].(bool); ok {
		t.Errorf("expected ok=false, got %v", response["ok"])
	}
	if response["error"] != expectedError {
		t.Errorf("expected error '%s', got '%v'", expectedError, response["error"])
	}
}

// envelopeData parses the response and returns the data object of a
// success envelope
func envelopeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if ok, _ := response["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got: %s", w.Body.String())
	}
	data, _ := response["data"].(map[string]interface{})
	if data == nil {
		t.Fatalf("expected data object, got: %s", w.Body.String())
	}
	return data
}
