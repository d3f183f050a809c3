package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/dialogflow"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/lookup"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/services"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/storage"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()

	pnrPath := filepath.Join(dir, "pnr.csv")
	require.NoError(t, os.WriteFile(pnrPath, []byte(
		"PNR,TrainNumber,TrainName,FromStation,ToStation\n"+
			"PNR1234567890,12951,Mumbai Rajdhani Express,Mumbai Central,New Delhi\n"), 0o644))
	stationPath := filepath.Join(dir, "stations.csv")
	require.NoError(t, os.WriteFile(stationPath, []byte(
		"StationName,Code\nNew Delhi,NDLS\n"), 0o644))

	pnrs, err := lookup.LoadPNRStore(pnrPath)
	require.NoError(t, err)
	stations, err := lookup.LoadStationStore(stationPath)
	require.NoError(t, err)

	intentService := services.NewIntentService(storage.NewMemoryStore(), pnrs, stations)

	app := fiber.New()
	app.Post("/webhook", NewWebhookHandler(intentService).HandleWebhook)
	app.Get("/health", NewHealthHandler("test", pnrs, stations).Check)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, body string) (int, *dialogflow.WebhookResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var webhookResp dialogflow.WebhookResponse
	require.NoError(t, json.Unmarshal(raw, &webhookResp))
	return resp.StatusCode, &webhookResp
}

func TestWebhookCaptureUserQuery(t *testing.T) {
	app := newTestApp(t)

	status, resp := postWebhook(t, app, `{
		"session": "projects/railmadad/agent/sessions/abc123",
		"queryResult": {
			"queryText": "my train is late",
			"parameters": {"user_query": "train late"},
			"intent": {"displayName": "capture_user_query"}
		}
	}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, resp.FulfillmentText, "Q-1")
}

func TestWebhookProvidePNRRoundTrip(t *testing.T) {
	app := newTestApp(t)

	// The upstream sends numeric parameters as JSON numbers
	status, resp := postWebhook(t, app, `{
		"session": "projects/railmadad/agent/sessions/abc123",
		"queryResult": {
			"queryText": "1234567890",
			"parameters": {"pnr_number": 1234567890},
			"intent": {"displayName": "provide_pnr"}
		}
	}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, resp.FulfillmentText, "Train 12951")
	require.Len(t, resp.OutputContexts, 1)
	assert.Equal(t, "PNR1234567890", resp.OutputContexts[0].Parameters["pnr"])
}

func TestWebhookMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	status, resp := postWebhook(t, app, `{not json`)

	// The upstream expects 200 with a fulfillment payload even on failure
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, services.MsgInvalidRequest, resp.FulfillmentText)
}

func TestWebhookMissingIntent(t *testing.T) {
	app := newTestApp(t)

	status, resp := postWebhook(t, app, `{"session": "s", "queryResult": {}}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, services.MsgInvalidRequest, resp.FulfillmentText)
}

func TestWebhookUnrecognizedIntent(t *testing.T) {
	app := newTestApp(t)

	status, resp := postWebhook(t, app, `{
		"session": "s",
		"queryResult": {"intent": {"displayName": "order_pizza"}}
	}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, services.MsgUnrecognizedIntent, resp.FulfillmentText)
}

func TestHealthReportsDegradedWhenLookupsUnloaded(t *testing.T) {
	dir := t.TempDir()
	pnrs, _ := lookup.LoadPNRStore(filepath.Join(dir, "missing.csv"))
	stations, _ := lookup.LoadStationStore(filepath.Join(dir, "missing.csv"))

	app := fiber.New()
	app.Get("/health", NewHealthHandler("test", pnrs, stations).Check)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthHealthy(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
