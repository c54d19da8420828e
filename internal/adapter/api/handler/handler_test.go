package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avrstore/internal/adapter/api"
	"avrstore/internal/adapter/api/middleware"
	"avrstore/internal/domain/catalog"
	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/resource"
	"avrstore/internal/usecase"
	"avrstore/pkg/errors"
)

type stubProductRepo struct {
	page     []*entity.Product
	products map[string]*entity.Product
	plans    []catalog.Plan
	cursors  []string
}

func (r *stubProductRepo) Query(ctx context.Context, plan catalog.Plan, cursor string, limit int) ([]*entity.Product, string, error) {
	r.plans = append(r.plans, plan)
	r.cursors = append(r.cursors, cursor)
	return r.page, "", nil
}

func (r *stubProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *stubProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }

func (r *stubProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }

func (r *stubProductRepo) AdjustStock(ctx context.Context, id string, delta int) error {
	return nil
}

func (r *stubProductRepo) AttachImage(ctx context.Context, id, url string) error { return nil }

type stubDocRepo[T any] struct {
	docs   map[string]*T
	writes int
}

func (r *stubDocRepo[T]) Create(ctx context.Context, doc *T) error {
	r.writes++
	return nil
}

func (r *stubDocRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if d, ok := r.docs[id]; ok {
		return d, nil
	}
	return nil, errors.NotFound("Document", nil)
}

func (r *stubDocRepo[T]) List(ctx context.Context) ([]*T, error) {
	out := make([]*T, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out, nil
}

func (r *stubDocRepo[T]) Update(ctx context.Context, doc *T) error {
	r.writes++
	return nil
}

func (r *stubDocRepo[T]) Delete(ctx context.Context, id string) error {
	r.writes++
	delete(r.docs, id)
	return nil
}

func (r *stubDocRepo[T]) SetField(ctx context.Context, id, field string, value interface{}) error {
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealthCheck(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, NewHealthHandler().CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	}
}

func TestListProducts_ParsesFilterState(t *testing.T) {
	repo := &stubProductRepo{page: []*entity.Product{
		{ID: "a", Name: "A", Price: 15, Rating: 5, IsActive: true},
		{ID: "b", Name: "B", Price: 12, Rating: 2, IsActive: true},
	}}
	h := NewProductHandler(usecase.NewProductUseCase(repo), 10)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/products?category=books&minPrice=10&maxPrice=20&rating=4&cursor=xyz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, repo.plans, 1)
	assert.Equal(t, catalog.FieldPrice, repo.plans[0].SortField())
	assert.Equal(t, "xyz", repo.cursors[0])

	env := decode(t, rec)
	var result usecase.BrowseResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Items, 1)
	assert.Equal(t, "a", result.Items[0].ID)
	assert.Equal(t, 3, result.ActiveFilters)
}

func newArtisanHandler(docs map[string]*entity.Artisan) (*ResourceHandler[entity.Artisan, *entity.Artisan], *stubDocRepo[entity.Artisan]) {
	repo := &stubDocRepo[entity.Artisan]{docs: docs}
	uc := usecase.NewResourceUseCase[entity.Artisan, *entity.Artisan](resource.Artisans(), repo)
	return NewResourceHandler(uc), repo
}

func TestResourceCreate_ValidationError(t *testing.T) {
	h, repo := newArtisanHandler(map[string]*entity.Artisan{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/artisans", strings.NewReader(`{"name":"","location":"Lima","craft":"Weaving"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, errors.CodeValidation, env.Error.Code)
	fields := env.Error.Details["fields"].(map[string]interface{})
	assert.Equal(t, "name is required", fields["name"])
	assert.Zero(t, repo.writes)
}

func TestResourceUpdate_MissingRecord(t *testing.T) {
	h, _ := newArtisanHandler(map[string]*entity.Artisan{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/artisans/ghost", strings.NewReader(`{"name":"Rosa","location":"Lima","craft":"Weaving"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "/v1/admin/artisans", env.Error.Details["redirect"])
}

func TestResourceDelete_Confirmation(t *testing.T) {
	h, repo := newArtisanHandler(map[string]*entity.Artisan{"a1": {ID: "a1", Name: "Rosa"}})
	e := newEcho()

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/artisans/a1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Equal(t, errors.CodeConfirmationRequired, decode(t, rec).Error.Code)
	assert.Zero(t, repo.writes)

	req = httptest.NewRequest(http.MethodDelete, "/v1/admin/artisans/a1?confirm=true", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, repo.writes)
}

func TestResourceGetPublic_HidesInactive(t *testing.T) {
	h, _ := newArtisanHandler(map[string]*entity.Artisan{
		"on":  {ID: "on", Name: "On", IsActive: true},
		"off": {ID: "off", Name: "Off"},
	})
	e := newEcho()

	for id, want := range map[string]int{"on": http.StatusOK, "off": http.StatusNotFound} {
		req := httptest.NewRequest(http.MethodGet, "/v1/artisans/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)

		require.NoError(t, h.GetPublic(c))
		assert.Equal(t, want, rec.Code, id)
	}
}

func TestCartAddItem_RejectsZeroQuantity(t *testing.T) {
	h := NewCartHandler(usecase.NewCartUseCase(nil, nil))

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", strings.NewReader(`{"product_id":"p1","quantity":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUID, "u1")

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.CodeValidation, decode(t, rec).Error.Code)
}
