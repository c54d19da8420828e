package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"avrstore/internal/usecase"
	"avrstore/pkg/errors"
	"avrstore/pkg/logger"
	"avrstore/pkg/response"
)

type FileHandler struct {
	mediaUseCase *usecase.MediaUseCase
	maxFileSize  int64
}

func NewFileHandler(mediaUseCase *usecase.MediaUseCase, maxFileSize int64) *FileHandler {
	if maxFileSize <= 0 {
		maxFileSize = 5 * 1024 * 1024
	}
	return &FileHandler{
		mediaUseCase: mediaUseCase,
		maxFileSize:  maxFileSize,
	}
}

// UploadFile takes a multipart form with entity_type, entity_id and file.
func (h *FileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("Received file: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.Header.Get("Content-Type"))

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	url, err := h.mediaUseCase.Upload(c.Request().Context(), usecase.UploadInput{
		EntityType:  c.FormValue("entity_type"),
		EntityID:    c.FormValue("entity_id"),
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		File:        src,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"url": url})
}
