// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/promptlab/promptlab/app/dto"
	businessflow "github.com/promptlab/promptlab/business_flow"
	"github.com/promptlab/promptlab/repository"
)

// PromptHandlerInterface defines the contract for prompt handlers
type PromptHandlerInterface interface {
	Create(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Patch(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
	Variables(c fiber.Ctx) error
}

// PromptHandler handles prompt-related HTTP requests
type PromptHandler struct {
	flow      businessflow.PromptFlow
	validator *validator.Validate
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(flow businessflow.PromptFlow) *PromptHandler {
	return &PromptHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// Create Prompt
// @Description Create a new prompt, optionally inside a collection.
// @Tags Prompts
// @Accept json
// @Produce json
// @Param request body dto.CreatePromptRequest true "Prompt data"
// @Success 201 {object} dto.APIResponse{data=dto.PromptResponse} "Prompt created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or unknown collection"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts [post]
func (h *PromptHandler) Create(c fiber.Ctx) error {
	var req dto.CreatePromptRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	result, err := h.flow.CreatePrompt(c.Context(), &req)
	if err != nil {
		if repository.IsReferenceNotFound(err) {
			return errorResponse(c, fiber.StatusBadRequest, "Collection not found", "COLLECTION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create prompt", "CREATE_PROMPT_FAILED", nil)
	}

	return successResponse(c, fiber.StatusCreated, "Prompt created successfully", result)
}

// Get Prompt
// @Description Retrieve a single prompt by id.
// @Tags Prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} dto.APIResponse{data=dto.PromptResponse} "Prompt retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Prompt not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id} [get]
func (h *PromptHandler) Get(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	result, err := h.flow.GetPrompt(c.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to get prompt", "GET_PROMPT_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Prompt retrieved successfully", result)
}

// List Prompts
// @Description List prompts with optional tag, collection, and search filters. Tags are ANDed.
// @Tags Prompts
// @Produce json
// @Param tags query string false "Comma-separated tag names (AND logic)"
// @Param collection_id query string false "Collection ID to filter by"
// @Param search query string false "Case-insensitive substring over title and description"
// @Success 200 {object} dto.APIResponse{data=dto.PromptListResponse} "Prompts retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts [get]
func (h *PromptHandler) List(c fiber.Ctx) error {
	req := dto.ListPromptsRequest{}
	if tags := c.Query("tags"); tags != "" {
		for _, name := range strings.Split(tags, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				req.TagNames = append(req.TagNames, trimmed)
			}
		}
	}
	if collectionID := c.Query("collection_id"); collectionID != "" {
		req.CollectionID = &collectionID
	}
	if search := c.Query("search"); search != "" {
		req.Search = &search
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	result, err := h.flow.ListPrompts(c.Context(), &req)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list prompts", "LIST_PROMPTS_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Prompts retrieved successfully", result)
}

// Update Prompt
// @Description Replace a prompt's title, content, description, and collection.
// @Tags Prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body dto.UpdatePromptRequest true "New prompt data"
// @Success 200 {object} dto.APIResponse{data=dto.PromptResponse} "Prompt updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or unknown collection"
// @Failure 404 {object} dto.APIResponse "Prompt not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id} [put]
func (h *PromptHandler) Update(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	var req dto.UpdatePromptRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	result, err := h.flow.UpdatePrompt(c.Context(), id, &req)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		if repository.IsReferenceNotFound(err) {
			return errorResponse(c, fiber.StatusBadRequest, "Collection not found", "COLLECTION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update prompt", "UPDATE_PROMPT_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Prompt updated successfully", result)
}

// Patch Prompt
// @Description Partially update a prompt; absent fields are left unchanged.
// @Tags Prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body dto.PatchPromptRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.PromptResponse} "Prompt updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or unknown collection"
// @Failure 404 {object} dto.APIResponse "Prompt not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id} [patch]
func (h *PromptHandler) Patch(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	var req dto.PatchPromptRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	result, err := h.flow.PatchPrompt(c.Context(), id, &req)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		if repository.IsReferenceNotFound(err) {
			return errorResponse(c, fiber.StatusBadRequest, "Collection not found", "COLLECTION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update prompt", "UPDATE_PROMPT_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Prompt updated successfully", result)
}

// Delete Prompt
// @Description Delete a prompt along with its versions and tag associations.
// @Tags Prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 204 "Prompt deleted"
// @Failure 404 {object} dto.APIResponse "Prompt not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id} [delete]
func (h *PromptHandler) Delete(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	if err := h.flow.DeletePrompt(c.Context(), id); err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete prompt", "DELETE_PROMPT_FAILED", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Prompt Variables
// @Description List the {{placeholder}} variables declared in a prompt's content.
// @Tags Prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} dto.APIResponse{data=dto.PromptVariablesResponse} "Variables retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Prompt not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id}/variables [get]
func (h *PromptHandler) Variables(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	result, err := h.flow.PromptVariables(c.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to extract variables", "PROMPT_VARIABLES_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Variables retrieved successfully", result)
}
