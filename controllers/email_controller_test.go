package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verimail/verifier"
)

func newTestApp() *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	ec := NewEmailController(verifier.New(verifier.Config{}), log)
	app.Post("/api/email/verify", ec.VerifyEmail)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestVerifyEmail_MissingEmail(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/email/verify", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email is required", body["message"])
}

func TestVerifyEmail_InvalidBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/email/verify", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVerifyEmail_InvalidFormatIsStillSuccess(t *testing.T) {
	// A malformed address needs no network access, so this exercises the
	// full handler path offline.
	app := newTestApp()
	resp := postJSON(t, app, "/api/email/verify", fiber.Map{"email": "notanemail"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Email   string `json:"email"`
			Status  string `json:"status"`
			Details struct {
				Reason string `json:"reason"`
				Score  int    `json:"score"`
			} `json:"details"`
			FormattedResult string `json:"formattedResult"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Verification complete", body.Message)
	assert.Equal(t, "notanemail", body.Data.Email)
	assert.Equal(t, "Undeliverable", body.Data.Status)
	assert.Equal(t, "INVALID_FORMAT", body.Data.Details.Reason)
	assert.Equal(t, 0, body.Data.Details.Score)
	assert.NotEmpty(t, body.Data.FormattedResult)
}
