package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"avrstore/internal/domain/repository"
	"avrstore/internal/domain/service"
	"avrstore/pkg/errors"
	"avrstore/pkg/logger"
)

const (
	EntityProducts   = "products"
	EntityArtisans   = "artisans"
	EntityCategories = "categories"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImageSetter records an uploaded image URL on an admin-managed record.
type ImageSetter interface {
	SetImage(ctx context.Context, id, imageURL string) error
}

type MediaUseCase struct {
	storage     service.FileStorage
	productRepo repository.ProductRepository
	setters     map[string]ImageSetter
	maxBytes    int64
}

func NewMediaUseCase(
	storage service.FileStorage,
	productRepo repository.ProductRepository,
	artisans ImageSetter,
	categories ImageSetter,
	maxBytes int64,
) *MediaUseCase {
	return &MediaUseCase{
		storage:     storage,
		productRepo: productRepo,
		setters: map[string]ImageSetter{
			EntityArtisans:   artisans,
			EntityCategories: categories,
		},
		maxBytes: maxBytes,
	}
}

type UploadInput struct {
	EntityType  string
	EntityID    string
	Filename    string
	ContentType string
	Size        int64
	File        io.Reader
}

// Upload stores the file under {entity-type}/{entityId}/{filename} and
// attaches the resulting URL to the entity.
func (uc *MediaUseCase) Upload(ctx context.Context, input UploadInput) (string, error) {
	entityType := strings.ToLower(strings.TrimSpace(input.EntityType))
	if entityType != EntityProducts && uc.setters[entityType] == nil {
		return "", errors.BadRequest(fmt.Sprintf("Uploads are not supported for %q", input.EntityType), nil)
	}
	if strings.TrimSpace(input.EntityID) == "" {
		return "", errors.BadRequest("Entity id is required", nil)
	}
	if !allowedImageTypes[input.ContentType] {
		return "", errors.BadRequest("Only JPEG, PNG, GIF and WebP images are allowed", nil)
	}
	if uc.maxBytes > 0 && input.Size > uc.maxBytes {
		return "", errors.BadRequest(fmt.Sprintf("File exceeds the %d byte limit", uc.maxBytes), nil)
	}

	filename := path.Base(strings.ReplaceAll(input.Filename, "\\", "/"))
	if filename == "." || filename == "/" || filename == "" {
		return "", errors.BadRequest("Filename is required", nil)
	}

	objectPath := path.Join(entityType, input.EntityID, filename)
	url, err := uc.storage.Upload(ctx, input.File, objectPath, input.ContentType)
	if err != nil {
		logger.Error("Failed to upload %s: %v", objectPath, err)
		return "", errors.Unavailable("We couldn't upload the file right now. Please try again.", err)
	}

	if entityType == EntityProducts {
		err = uc.productRepo.AttachImage(ctx, input.EntityID, url)
	} else {
		err = uc.setters[entityType].SetImage(ctx, input.EntityID, url)
	}
	if err != nil {
		if delErr := uc.storage.Delete(ctx, url); delErr != nil {
			logger.Warn("Failed to remove orphaned upload %s: %v", url, delErr)
		}
		return "", err
	}

	return url, nil
}
