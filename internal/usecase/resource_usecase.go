package usecase

import (
	"context"
	stderrors "errors"
	"net/url"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"avrstore/internal/domain/repository"
	"avrstore/internal/domain/resource"
	"avrstore/pkg/errors"
	"avrstore/pkg/logger"
	"avrstore/pkg/utils"
	"avrstore/pkg/validation"
)

// ResourceUseCase is the admin list/create/edit/delete flow for one
// document type described by a resource.Schema.
type ResourceUseCase[T any, PT resource.Record[T]] struct {
	schema   resource.Schema[T]
	repo     repository.DocumentRepository[T]
	validate *validator.Validate
	now      func() time.Time
}

func NewResourceUseCase[T any, PT resource.Record[T]](schema resource.Schema[T], repo repository.DocumentRepository[T]) *ResourceUseCase[T, PT] {
	return &ResourceUseCase[T, PT]{
		schema:   schema,
		repo:     repo,
		validate: validation.New(),
		now:      time.Now,
	}
}

func (uc *ResourceUseCase[T, PT]) Schema() resource.Schema[T] {
	return uc.schema
}

// List loads the whole collection and narrows it in memory with the free-text
// search and the schema's filters before paging.
func (uc *ResourceUseCase[T, PT]) List(ctx context.Context, search string, params url.Values, page utils.PaginationParams) ([]*T, int64, error) {
	docs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]*T, 0, len(docs))
	for _, doc := range docs {
		if !PT(doc).Matches(search) {
			continue
		}
		if uc.schema.Filter != nil && !uc.schema.Filter(doc, params) {
			continue
		}
		matched = append(matched, doc)
	}

	if uc.schema.Less != nil {
		sort.SliceStable(matched, func(i, j int) bool {
			return uc.schema.Less(matched[i], matched[j])
		})
	}

	start, end := utils.Window(len(matched), page)
	return matched[start:end], int64(len(matched)), nil
}

func (uc *ResourceUseCase[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Create validates before anything is written; a rejected document never
// reaches the store.
func (uc *ResourceUseCase[T, PT]) Create(ctx context.Context, doc *T) (*T, error) {
	record := PT(doc)
	record.Normalize()
	if err := uc.check(doc); err != nil {
		return nil, err
	}

	record.SetID(uuid.New().String())
	record.Touch(uc.now())

	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	logger.Info("%s created: %s", uc.schema.Name, record.GetID())
	return doc, nil
}

// Update replaces the stored document. Editing a record that no longer
// exists reports where the caller should go back to.
func (uc *ResourceUseCase[T, PT]) Update(ctx context.Context, id string, doc *T) (*T, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, errors.CodeNotFound) {
		return nil, errors.NotFound(uc.schema.Name, err).WithDetail("redirect", uc.schema.Path)
	}
	if err != nil {
		return nil, err
	}

	record := PT(doc)
	record.Normalize()
	if err := uc.check(doc); err != nil {
		return nil, err
	}

	record.SetID(id)
	record.SetCreatedAt(PT(existing).GetCreatedAt())
	record.Touch(uc.now())

	if err := uc.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete needs an explicit confirmation from the caller.
func (uc *ResourceUseCase[T, PT]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return errors.ConfirmationRequired("Deleting this " + uc.schema.Name + " cannot be undone. Repeat the request with confirm=true.")
	}
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("%s deleted: %s", uc.schema.Name, id)
	return nil
}

// SetImage stores an uploaded image URL on the record.
func (uc *ResourceUseCase[T, PT]) SetImage(ctx context.Context, id, imageURL string) error {
	return uc.repo.SetField(ctx, id, "imageUrl", imageURL)
}

func (uc *ResourceUseCase[T, PT]) check(doc *T) error {
	err := uc.validate.Struct(doc)
	if err == nil {
		return nil
	}
	var validationErr validator.ValidationErrors
	if stderrors.As(err, &validationErr) {
		return errors.Validation(validation.FieldMessages(validationErr))
	}
	return errors.BadRequest("Invalid "+uc.schema.Name, err)
}
