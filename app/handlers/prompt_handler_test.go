package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlab/promptlab/app/dto"
	businessflow "github.com/promptlab/promptlab/business_flow"
	"github.com/promptlab/promptlab/repository"
)

// apiEnvelope mirrors dto.APIResponse with concrete types for decoding
type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    map[string]any  `json:"data"`
	Error   dto.ErrorDetail `json:"error"`
}

func newTestApp() *fiber.App {
	store := repository.NewStore()

	promptHandler := NewPromptHandler(businessflow.NewPromptFlow(store))
	tagHandler := NewTagHandler(businessflow.NewTagFlow(store))

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/prompts", promptHandler.Create)
	api.Get("/prompts/:id", promptHandler.Get)
	api.Get("/prompts/:id/variables", promptHandler.Variables)
	api.Delete("/prompts/:id", promptHandler.Delete)
	api.Post("/tags", tagHandler.Create)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope apiEnvelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope))
	}
	return resp.StatusCode, envelope
}

func TestPromptHandlerCreate(t *testing.T) {
	app := newTestApp()

	t.Run("Creates", func(t *testing.T) {
		status, envelope := doJSON(t, app, "POST", "/api/v1/prompts", fiber.Map{
			"title":   "Greeting",
			"content": "Hello {{name}}",
		})
		assert.Equal(t, fiber.StatusCreated, status)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Prompt created successfully", envelope.Message)
		assert.NotEmpty(t, envelope.Data["id"])
	})

	t.Run("MissingTitleFailsValidation", func(t *testing.T) {
		status, envelope := doJSON(t, app, "POST", "/api/v1/prompts", fiber.Map{
			"content": "Body",
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, envelope.Success)
		assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	})

	t.Run("UnknownCollectionIsBadRequest", func(t *testing.T) {
		status, envelope := doJSON(t, app, "POST", "/api/v1/prompts", fiber.Map{
			"title":         "Dangling",
			"content":       "Body",
			"collection_id": "0e3f9a94-8f3f-44c7-9d3e-111111111111",
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "COLLECTION_NOT_FOUND", envelope.Error.Code)
	})
}

func TestPromptHandlerGet(t *testing.T) {
	app := newTestApp()

	t.Run("UnknownIDIs404", func(t *testing.T) {
		status, envelope := doJSON(t, app, "GET", "/api/v1/prompts/0e3f9a94-8f3f-44c7-9d3e-222222222222", nil)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "PROMPT_NOT_FOUND", envelope.Error.Code)
	})

	t.Run("MalformedIDIs404", func(t *testing.T) {
		status, envelope := doJSON(t, app, "GET", "/api/v1/prompts/not-a-uuid", nil)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		_, created := doJSON(t, app, "POST", "/api/v1/prompts", fiber.Map{
			"title":   "Fetch me",
			"content": "Body {{x}}",
		})
		id, _ := created.Data["id"].(string)
		require.NotEmpty(t, id)

		status, envelope := doJSON(t, app, "GET", "/api/v1/prompts/"+id, nil)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Fetch me", envelope.Data["title"])

		status, envelope = doJSON(t, app, "GET", "/api/v1/prompts/"+id+"/variables", nil)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, []any{"x"}, envelope.Data["variables"])
	})
}

func TestPromptHandlerDelete(t *testing.T) {
	app := newTestApp()

	_, created := doJSON(t, app, "POST", "/api/v1/prompts", fiber.Map{
		"title":   "Ephemeral",
		"content": "Body",
	})
	id, _ := created.Data["id"].(string)
	require.NotEmpty(t, id)

	req := httptest.NewRequest("DELETE", "/api/v1/prompts/"+id, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	status, _ := doJSON(t, app, "GET", "/api/v1/prompts/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestTagHandlerConflict(t *testing.T) {
	app := newTestApp()

	status, _ := doJSON(t, app, "POST", "/api/v1/tags", fiber.Map{"name": "Email"})
	require.Equal(t, fiber.StatusCreated, status)

	status, envelope := doJSON(t, app, "POST", "/api/v1/tags", fiber.Map{"name": "email"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "TAG_NAME_CONFLICT", envelope.Error.Code)
}
