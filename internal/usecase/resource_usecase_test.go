package usecase

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/resource"
	"avrstore/pkg/errors"
	"avrstore/pkg/utils"
)

func newArtisanUseCase() (*ResourceUseCase[entity.Artisan, *entity.Artisan], *fakeDocRepo[entity.Artisan]) {
	repo := newFakeDocRepo(func(a *entity.Artisan) string { return a.ID })
	return NewResourceUseCase[entity.Artisan, *entity.Artisan](resource.Artisans(), repo), repo
}

var firstPage = utils.PaginationParams{Page: 1, PageSize: 20}

func TestResourceCreate_EmptyNameIsRejectedWithoutWrite(t *testing.T) {
	uc, repo := newArtisanUseCase()

	_, err := uc.Create(context.Background(), &entity.Artisan{Name: "   ", Location: "Oaxaca", Craft: "Pottery"})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.CodeValidation, appErr.Code)
	assert.Equal(t, "name is required", appErr.Details["fields"].(map[string]string)["name"])
	assert.Zero(t, repo.writes)
}

func TestResourceCreate_AssignsIDAndTimestamps(t *testing.T) {
	uc, repo := newArtisanUseCase()

	created, err := uc.Create(context.Background(), &entity.Artisan{Name: " Rosa ", Location: "Oaxaca", Craft: "Pottery"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Rosa", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 1, repo.writes)
}

func TestResourceUpdate_MissingRecordRedirects(t *testing.T) {
	uc, repo := newArtisanUseCase()

	_, err := uc.Update(context.Background(), "ghost", &entity.Artisan{Name: "Rosa", Location: "Oaxaca", Craft: "Pottery"})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)
	assert.Equal(t, "/v1/admin/artisans", appErr.Details["redirect"])
	assert.Zero(t, repo.writes)
}

func TestResourceUpdate_KeepsCreatedAt(t *testing.T) {
	uc, _ := newArtisanUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.Artisan{Name: "Rosa", Location: "Oaxaca", Craft: "Pottery"})
	require.NoError(t, err)
	createdAt := created.CreatedAt

	uc.now = func() time.Time { return createdAt.Add(time.Hour) }
	updated, err := uc.Update(ctx, created.ID, &entity.Artisan{Name: "Rosa M.", Location: "Oaxaca", Craft: "Pottery"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, createdAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(createdAt))
}

func TestResourceDelete_RequiresConfirmation(t *testing.T) {
	uc, repo := newArtisanUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.Artisan{Name: "Rosa", Location: "Oaxaca", Craft: "Pottery"})
	require.NoError(t, err)

	err = uc.Delete(ctx, created.ID, false)
	assert.True(t, errors.Is(err, errors.CodeConfirmationRequired))
	assert.Len(t, repo.docs, 1)

	require.NoError(t, uc.Delete(ctx, created.ID, true))
	assert.Empty(t, repo.docs)

	assert.True(t, errors.Is(uc.Delete(ctx, created.ID, true), errors.CodeNotFound))
}

func TestResourceList_SearchFilterAndOrder(t *testing.T) {
	uc, _ := newArtisanUseCase()
	ctx := context.Background()

	for _, a := range []*entity.Artisan{
		{Name: "Zed", Location: "Lima", Craft: "Weaving", IsActive: true},
		{Name: "amy", Location: "Quito", Craft: "Weaving", IsActive: true, IsEcoFriendly: true},
		{Name: "Bo", Location: "Lima", Craft: "Pottery", IsActive: false},
	} {
		_, err := uc.Create(ctx, a)
		require.NoError(t, err)
	}

	all, total, err := uc.List(ctx, "", url.Values{}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, "amy", all[0].Name)

	weavers, _, err := uc.List(ctx, "weav", url.Values{"status": {"active"}}, firstPage)
	require.NoError(t, err)
	assert.Len(t, weavers, 2)

	eco, _, err := uc.List(ctx, "", url.Values{"eco": {"true"}}, firstPage)
	require.NoError(t, err)
	require.Len(t, eco, 1)
	assert.Equal(t, "amy", eco[0].Name)

	paged, total, err := uc.List(ctx, "", url.Values{}, utils.PaginationParams{Page: 2, PageSize: 2, Offset: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, paged, 1)
}

func TestCategoryCreate_DerivesSlug(t *testing.T) {
	repo := newFakeDocRepo(func(c *entity.Category) string { return c.ID })
	uc := NewResourceUseCase[entity.Category, *entity.Category](resource.Categories(), repo)

	created, err := uc.Create(context.Background(), &entity.Category{Name: "Home & Garden"})
	require.NoError(t, err)
	assert.Equal(t, "home-garden", created.Slug)
}
