package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dpereira/gymflow/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// newTestApp builds the full route surface over an in-memory database. All
// pacing delays are zeroed and the post-login push is parked an hour out so
// no background sync races the assertions.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenMemory()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(database, logger, Config{
		SecretKey:     []byte("test-secret"),
		Location:      time.UTC,
		PostLoginPush: time.Hour,
	})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func decodeBody(t *testing.T, response *http.Response, out any) {
	t.Helper()
	defer response.Body.Close()
	require.NoError(t, json.NewDecoder(response.Body).Decode(out))
}

func authCookie(t *testing.T, response *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie
		}
	}
	t.Fatal("auth cookie not set")
	return nil
}

// loginAs runs the login flow and returns the session cookie.
func loginAs(t *testing.T, app *fiber.App, name string, email string) *http.Cookie {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{"name": name, "email": email})
	response, err := app.Test(request)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)
	return authCookie(t, response)
}
