// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/promptlab/promptlab/app/dto"
	businessflow "github.com/promptlab/promptlab/business_flow"
	"github.com/promptlab/promptlab/repository"
)

// VersionHandlerInterface defines the contract for prompt version handlers
type VersionHandlerInterface interface {
	Create(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Revert(c fiber.Ctx) error
}

// VersionHandler handles prompt version HTTP requests
type VersionHandler struct {
	flow      businessflow.VersionFlow
	validator *validator.Validate
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(flow businessflow.VersionFlow) *VersionHandler {
	return &VersionHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// Create Version
// @Description Snapshot a prompt's content as the next version in its history.
// @Tags Versions
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body dto.CreateVersionRequest true "Version data"
// @Success 201 {object} dto.APIResponse{data=dto.VersionResponse} "Version created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Prompt not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id}/versions [post]
func (h *VersionHandler) Create(c fiber.Ctx) error {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	var req dto.CreateVersionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	result, err := h.flow.CreateVersion(c.Context(), promptID, &req)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create version", "CREATE_VERSION_FAILED", nil)
	}

	return successResponse(c, fiber.StatusCreated, "Version created successfully", result)
}

// Get Version
// @Description Retrieve a single version of a prompt.
// @Tags Versions
// @Produce json
// @Param id path string true "Prompt ID"
// @Param versionID path string true "Version ID"
// @Success 200 {object} dto.APIResponse{data=dto.VersionResponse} "Version retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Prompt or version not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id}/versions/{versionID} [get]
func (h *VersionHandler) Get(c fiber.Ctx) error {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}
	versionID, ok := parseIDParam(c, "versionID")
	if !ok {
		return notFoundResponse(c)
	}

	result, err := h.flow.GetVersion(c.Context(), promptID, versionID)
	if err != nil {
		if repository.IsNotFoundKind(err, repository.KindPrompt) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Version not found", "VERSION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to get version", "GET_VERSION_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Version retrieved successfully", result)
}

// List Versions
// @Description List a prompt's versions, newest first.
// @Tags Versions
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} dto.APIResponse{data=dto.VersionListResponse} "Versions retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Prompt not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id}/versions [get]
func (h *VersionHandler) List(c fiber.Ctx) error {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	result, err := h.flow.ListVersions(c.Context(), promptID)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list versions", "LIST_VERSIONS_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Versions retrieved successfully", result)
}

// Revert Version
// @Description Append a new version copying an earlier version's title and content.
// @Tags Versions
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param versionID path string true "Version ID"
// @Param request body dto.RevertVersionRequest false "Optional revert description"
// @Success 201 {object} dto.APIResponse{data=dto.VersionResponse} "Version created successfully"
// @Failure 404 {object} dto.APIResponse "Prompt or version not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/prompts/{id}/versions/{versionID}/revert [post]
func (h *VersionHandler) Revert(c fiber.Ctx) error {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}
	versionID, ok := parseIDParam(c, "versionID")
	if !ok {
		return notFoundResponse(c)
	}

	// The body is optional here; an empty payload reverts with the default description.
	var req dto.RevertVersionRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
		}
		if err := h.validator.Struct(&req); err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
		}
	}

	result, err := h.flow.RevertToVersion(c.Context(), promptID, versionID, &req)
	if err != nil {
		if repository.IsNotFoundKind(err, repository.KindPrompt) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found", "PROMPT_NOT_FOUND", nil)
		}
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Version not found", "VERSION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to revert prompt", "REVERT_FAILED", nil)
	}

	return successResponse(c, fiber.StatusCreated, "Version created successfully", result)
}
