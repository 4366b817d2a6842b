// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/promptlab/promptlab/app/dto"
	businessflow "github.com/promptlab/promptlab/business_flow"
	"github.com/promptlab/promptlab/repository"
)

// CollectionHandlerInterface defines the contract for collection handlers
type CollectionHandlerInterface interface {
	Create(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// CollectionHandler handles collection-related HTTP requests
type CollectionHandler struct {
	flow      businessflow.CollectionFlow
	validator *validator.Validate
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(flow businessflow.CollectionFlow) *CollectionHandler {
	return &CollectionHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// Create Collection
// @Description Create a new collection.
// @Tags Collections
// @Accept json
// @Produce json
// @Param request body dto.CreateCollectionRequest true "Collection data"
// @Success 201 {object} dto.APIResponse{data=dto.CollectionResponse} "Collection created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/collections [post]
func (h *CollectionHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCollectionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	result, err := h.flow.CreateCollection(c.Context(), &req)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create collection", "CREATE_COLLECTION_FAILED", nil)
	}

	return successResponse(c, fiber.StatusCreated, "Collection created successfully", result)
}

// Get Collection
// @Description Retrieve a single collection by id.
// @Tags Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} dto.APIResponse{data=dto.CollectionResponse} "Collection retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Collection not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/collections/{id} [get]
func (h *CollectionHandler) Get(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	result, err := h.flow.GetCollection(c.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Collection not found", "COLLECTION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to get collection", "GET_COLLECTION_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Collection retrieved successfully", result)
}

// List Collections
// @Description List all collections.
// @Tags Collections
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CollectionListResponse} "Collections retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/collections [get]
func (h *CollectionHandler) List(c fiber.Ctx) error {
	result, err := h.flow.ListCollections(c.Context())
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list collections", "LIST_COLLECTIONS_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Collections retrieved successfully", result)
}

// Update Collection
// @Description Replace a collection's name and description.
// @Tags Collections
// @Accept json
// @Produce json
// @Param id path string true "Collection ID"
// @Param request body dto.UpdateCollectionRequest true "New collection data"
// @Success 200 {object} dto.APIResponse{data=dto.CollectionResponse} "Collection updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Collection not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/collections/{id} [put]
func (h *CollectionHandler) Update(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	var req dto.UpdateCollectionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	result, err := h.flow.UpdateCollection(c.Context(), id, &req)
	if err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Collection not found", "COLLECTION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update collection", "UPDATE_COLLECTION_FAILED", nil)
	}

	return successResponse(c, fiber.StatusOK, "Collection updated successfully", result)
}

// Delete Collection
// @Description Delete a collection; prompts inside it are orphaned, not deleted.
// @Tags Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 204 "Collection deleted"
// @Failure 404 {object} dto.APIResponse "Collection not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/collections/{id} [delete]
func (h *CollectionHandler) Delete(c fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c)
	}

	if err := h.flow.DeleteCollection(c.Context(), id); err != nil {
		if repository.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Collection not found", "COLLECTION_NOT_FOUND", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete collection", "DELETE_COLLECTION_FAILED", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
