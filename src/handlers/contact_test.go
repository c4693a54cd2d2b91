package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wse-am/realty-server/src/services"
)

// newContactHandler builds a handler with both channels unconfigured
func newContactHandler(t *testing.T) *ContactHandler {
	t.Helper()
	email := services.NewEmailService("", "", "", "", "", "")
	telegram := services.NewTelegramService("", "")
	return NewContactHandler(email, telegram, noopAnalytics(t))
}

func TestHandleEmailContact_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := newContactHandler(t)
	w, c := createTestContext()
	c.Request = jsonRequest(http.MethodPost, "/api/contact/email", "{")

	handler.HandleEmailContact(c)

	assertStatusCode(t, w, http.StatusBadRequest)
}

func TestHandleEmailContact_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := newContactHandler(t)

	for _, body := range []string{
		`{}`,
		`{"name":"Ani"}`,
		`{"name":"Ani","phone":"+374 99 123456"}`,
		`{"phone":"+374 99 123456","email":"ani@example.com"}`,
	} {
		w, c := createTestContext()
		c.Request = jsonRequest(http.MethodPost, "/api/contact/email", body)

		handler.HandleEmailContact(c)

		assertStatusCode(t, w, http.StatusBadRequest)
		assertEnvelopeError(t, w, "Name, phone and email are required")
	}
}

func TestHandleEmailContact_NotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := newContactHandler(t)
	w, c := createTestContext()
	c.Request = jsonRequest(http.MethodPost, "/api/contact/email",
		`{"name":"Ani","phone":"+374 99 123456","email":"ani@example.com","message":"Hi"}`)

	handler.HandleEmailContact(c)

	assertStatusCode(t, w, http.StatusInternalServerError)
	assertEnvelopeError(t, w, "Email forwarding is not configured")
}

func TestHandleTelegramContact_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := newContactHandler(t)

	for _, body := range []string{
		`{}`,
		`{"name":"Ani"}`,
		`{"contact":"+374 99 123456"}`,
	} {
		w, c := createTestContext()
		c.Request = jsonRequest(http.MethodPost, "/api/contact/telegram", body)

		handler.HandleTelegramContact(c)

		assertStatusCode(t, w, http.StatusBadRequest)
		assertEnvelopeError(t, w, "Name and contact are required")
	}
}

func TestHandleTelegramContact_NotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := newContactHandler(t)
	w, c := createTestContext()
	c.Request = jsonRequest(http.MethodPost, "/api/contact/telegram",
		`{"name":"Ani","contact":"@ani","message":"Hi"}`)

	handler.HandleTelegramContact(c)

	assertStatusCode(t, w, http.StatusInternalServerError)
	assertEnvelopeError(t, w, "Telegram forwarding is not configured")
}
