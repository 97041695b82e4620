package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/akwaabafreight/tracking-api/internal/application/dto"
	"github.com/akwaabafreight/tracking-api/internal/application/importer"
	"github.com/akwaabafreight/tracking-api/internal/domain"
	"github.com/akwaabafreight/tracking-api/internal/infrastructure/upload"
)

// UploadHandler handles bulk spreadsheet import (employee only).
type UploadHandler struct {
	uc    *importer.UseCase
	store *upload.Store
}

// NewUploadHandler builds the handler.
func NewUploadHandler(uc *importer.UseCase, store *upload.Store) *UploadHandler {
	return &UploadHandler{uc: uc, store: store}
}

// ImportExcel godoc
// @Summary      Bulk-import tracking records from a spreadsheet
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file    true  "Spreadsheet (.xlsx or .xls)"
// @Param        columnMapping  formData  string  true  "JSON: {tracking, userId, status, location}"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/upload/excel [post]
func (h *UploadHandler) ImportExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("No file uploaded"))
	}

	var mapping dto.ColumnMapping
	mappingJSON := c.FormValue("columnMapping")
	if mappingJSON == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("columnMapping is required"))
	}
	if err := json.Unmarshal([]byte(mappingJSON), &mapping); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid columnMapping"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}
	defer func() { _ = file.Close() }()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}

	// Retain the raw upload on disk before processing.
	if _, err := h.store.Save(fileHeader.Filename, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}

	records, err := h.uc.ImportSpreadsheet(fileHeader.Filename, data, mapping, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Could not parse spreadsheet"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}

	return c.JSON(dto.UploadResponse{
		Success: true,
		Message: fmt.Sprintf("Uploaded %d records", len(records)),
		Count:   len(records),
		Data:    records,
	})
}
