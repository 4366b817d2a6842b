// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/promptlab/promptlab/app/dto"
	businessflow "github.com/promptlab/promptlab/business_flow"
	"github.com/promptlab/promptlab/repository"
)

// TagHandlerInterface defines the contract for tag handlers
type TagHandlerInterface interface {
	Create(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
	Attach(c fiber.Ctx) error
	Detach(c fiber.Ctx) error
	ListForPrompt(c fiber.Ctx) error
}

// TagHandler handles tag-related HTTP requests
type TagHandler struct {
	flow      businessflow.TagFlow
	validator *validator.Validate
}

// NewTagHandler creates a new tag handler
func NewTagHandler(flow businessflow.TagFlow) *TagHandler {
	return &TagHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// Create Tag
// @Description Create a new tag. Tag names are unique case-insensitively.
// @Tags Tags
// @Accept json
// @Produce json
// @Param request body dto.CreateTagRequest true "Tag data"
// @Success 201 {object} dto.APIResponse{data=dto.TagResponse} "Tag created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 409 {object} dto.APIResponse "Tag name already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/tags [post]
func (h *TagHandler) Create(c fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	result, err := h.flow.CreateTag(c.Context(), &req)
	if err != nil {
		if repository.IsConflict(err) {
			return errorResponse(c, fiber.StatusConflict, "Tag name already exists", "TAG_NAME_CONFLICT", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create tag", "CREATE_TAG_FAILED", nil)
	}

	return successResponse(c, fiber.StatusCreated, "Tag created successfully", result)
}

// Get Tag
// @Description Retrieve a single tag by id.
// @Tags Tags
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} dto.APIResponse{data=dto.TagResponse} "Tag retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Tag not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/tags/{id} [get]
func (h *TagHandler) Get(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	result, err := h.flow.GetTag(c.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Tag not found", "TAG_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to get tag", "GET_TAG_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Tag retrieved successfully", result)
}

// List Tags
// @Description List all tags ordered by name.
// @Tags Tags
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TagListResponse} "Tags retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/tags [get]
func (h *TagHandler) List(c fiber.Ctx) error {
	result, err := h.flow.ListTags(c.Context())
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list tags", "LIST_TAGS_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Tags retrieved successfully", result)
}

// Delete Tag
// @Description Delete a tag and detach it from all prompts.
// @Tags Tags
// @Produce json
// @Param id path string true "Tag ID"
// @Success 204 "Tag deleted"
// @Failure 404 {object} dto.APIResponse "Tag not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/tags/{id} [delete]
func (h *TagHandler) Delete(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	if err := h.flow.DeleteTag(c.Context(), id); err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Tag not found", "TAG_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete tag", "DELETE_TAG_FAILED", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Attach Tag
// @Description Attach a tag to a prompt. Attaching an already attached tag is a no-op.
// @Tags Tags
// @Produce json
// @Param id path string true "Prompt ID"
// @Param tagID path string true "Tag ID"
// @Success 204 "Tag attached"
// @Failure 404 {object} dto.APIResponse "Prompt or tag not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id}/tags/{tagID} [post]
func (h *TagHandler) Attach(c fiber.Ctx) error {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}
	tagID, ok := parseIDParam(c, "tagID")
	if !ok {
		return notFoundResponse(c)
	}

	if err := h.flow.AddTagToPrompt(c.Context(), promptID, tagID); err != nil {
		if repository.IsNotFoundKind(err, repository.KindPrompt) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		if repository.IsNotFoundKind(err, repository.KindTag) {
			return errorResponse(c, fiber.StatusNotFound, "Tag not found", "TAG_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to attach tag", "ATTACH_TAG_FAILED", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Detach Tag
// @Description Detach a tag from a prompt.
// @Tags Tags
// @Produce json
// @Param id path string true "Prompt ID"
// @Param tagID path string true "Tag ID"
// @Success 204 "Tag detached"
// @Failure 404 {object} dto.APIResponse "Prompt, tag, or association not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id}/tags/{tagID} [delete]
func (h *TagHandler) Detach(c fiber.Ctx) error {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}
	tagID, ok := parseIDParam(c, "tagID")
	if !ok {
		return notFoundResponse(c)
	}

	if err := h.flow.RemoveTagFromPrompt(c.Context(), promptID, tagID); err != nil {
		if repository.IsNotFoundKind(err, repository.KindPrompt) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		if repository.IsNotFoundKind(err, repository.KindTag) {
			return errorResponse(c, fiber.StatusNotFound, "Tag not found", "TAG_NOT_FOUND", nil)
		}
		if repository.IsAssociationNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Tag is not attached to this prompt", "ASSOCIATION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to detach tag", "DETACH_TAG_FAILED", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// List Prompt Tags
// @Description List the tags attached to a prompt in attachment order.
// @Tags Tags
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} dto.APIResponse{data=dto.TagListResponse} "Tags retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Prompt not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id}/tags [get]
func (h *TagHandler) ListForPrompt(c fiber.Ctx) error {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	result, err := h.flow.ListPromptTags(c.Context(), promptID)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list prompt tags", "LIST_PROMPT_TAGS_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Tags retrieved successfully", result)
}
