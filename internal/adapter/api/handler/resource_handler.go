package handler

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"avrstore/internal/domain/resource"
	"avrstore/internal/usecase"
	"avrstore/pkg/errors"
	"avrstore/pkg/response"
	"avrstore/pkg/utils"
)

// ResourceHandler serves the admin screens of one managed document type,
// plus read-only public listings of its active records.
type ResourceHandler[T any, PT resource.Record[T]] struct {
	useCase *usecase.ResourceUseCase[T, PT]
}

func NewResourceHandler[T any, PT resource.Record[T]](useCase *usecase.ResourceUseCase[T, PT]) *ResourceHandler[T, PT] {
	return &ResourceHandler[T, PT]{
		useCase: useCase,
	}
}

func (h *ResourceHandler[T, PT]) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	items, total, err := h.useCase.List(c.Request().Context(), c.QueryParam("search"), c.QueryParams(), params)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, params.Page, params.PageSize)
}

func (h *ResourceHandler[T, PT]) Get(c echo.Context) error {
	doc, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, doc)
}

func (h *ResourceHandler[T, PT]) Create(c echo.Context) error {
	doc := new(T)
	if err := c.Bind(doc); err != nil {
		return response.Error(c, err)
	}

	created, err := h.useCase.Create(c.Request().Context(), doc)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, created)
}

func (h *ResourceHandler[T, PT]) Update(c echo.Context) error {
	doc := new(T)
	if err := c.Bind(doc); err != nil {
		return response.Error(c, err)
	}

	updated, err := h.useCase.Update(c.Request().Context(), c.Param("id"), doc)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, updated)
}

// Delete needs ?confirm=true.
func (h *ResourceHandler[T, PT]) Delete(c echo.Context) error {
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))

	if err := h.useCase.Delete(c.Request().Context(), c.Param("id"), confirmed); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": c.Param("id")})
}

func (h *ResourceHandler[T, PT]) ListPublic(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	items, total, err := h.useCase.List(c.Request().Context(), c.QueryParam("search"), activeOnly(c.QueryParams()), params)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, params.Page, params.PageSize)
}

func (h *ResourceHandler[T, PT]) GetPublic(c echo.Context) error {
	doc, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	schema := h.useCase.Schema()
	if schema.Filter != nil && !schema.Filter(doc, activeOnly(nil)) {
		return response.Error(c, errors.NotFound(schema.Name, nil))
	}

	return response.Success(c, doc)
}

func activeOnly(query url.Values) url.Values {
	values := url.Values{}
	for k, v := range query {
		values[k] = v
	}
	values.Set("status", "active")
	return values
}
