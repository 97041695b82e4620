package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/akwaabafreight/tracking-api/internal/application/dto"
	"github.com/akwaabafreight/tracking-api/internal/application/tracking"
	"github.com/akwaabafreight/tracking-api/internal/domain"
)

// TrackingHandler handles tracking-record requests (protected).
type TrackingHandler struct {
	uc *tracking.UseCase
}

// NewTrackingHandler builds the handler.
func NewTrackingHandler(uc *tracking.UseCase) *TrackingHandler {
	return &TrackingHandler{uc: uc}
}

// List godoc
// @Summary      List tracking records (employees see all, others their own)
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrackingListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/tracking [get]
func (h *TrackingHandler) List(c *fiber.Ctx) error {
	records, err := h.uc.List(GetUserID(c), GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}
	return c.JSON(dto.TrackingListResponse{Success: true, Data: records})
}

// Search godoc
// @Summary      Look a shipment up by tracking number (case-insensitive)
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Param        trackingNumber  path  string  true  "Tracking number"
// @Success      200  {object}  dto.TrackingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tracking/search/{trackingNumber} [get]
func (h *TrackingHandler) Search(c *fiber.Ctx) error {
	record, err := h.uc.Search(c.Params("trackingNumber"), GetUserID(c), GetRole(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Tracking not found"))
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Error("Unauthorized"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}
	return c.JSON(dto.TrackingResponse{Success: true, Data: *record})
}

// Upsert godoc
// @Summary      Create or update a record, keyed by tracking number
// @Tags         tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertTrackingRequest  true  "trackingNumber, status?, location?, destination?, phone?"
// @Success      200   {object}  dto.TrackingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tracking [post]
func (h *TrackingHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertTrackingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid request body"))
	}
	record, err := h.uc.Upsert(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("trackingNumber is required and status must be valid"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}
	return c.JSON(dto.TrackingResponse{Success: true, Data: *record})
}

// Delete godoc
// @Summary      Delete a record by id
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Record id"
// @Success      200  {object}  dto.DeleteResponse
// @Router       /api/tracking/{id} [delete]
func (h *TrackingHandler) Delete(c *fiber.Ctx) error {
	record, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}
	return c.JSON(dto.DeleteResponse{Success: true, Message: "Record deleted", Data: record})
}
