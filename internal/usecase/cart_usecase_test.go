package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avrstore/internal/domain/entity"
	"avrstore/pkg/errors"
)

func TestGetCart_AbsentCartIsEmpty(t *testing.T) {
	uc := NewCartUseCase(newFakeCartRepo(), newFakeProductRepo())

	cart, err := uc.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", cart.UserID)
	assert.True(t, cart.IsEmpty())
}

func TestAddToCart_MergesSameProduct(t *testing.T) {
	products := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Notebook", Price: 12.5, IsActive: true, Images: []string{"img.png"}})
	carts := newFakeCartRepo()
	uc := NewCartUseCase(carts, products)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	cart, err := uc.AddToCart(ctx, "u1", "p1", 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 62.5, cart.Total)
	assert.Equal(t, "img.png", cart.Items[0].Image)
	assert.EqualValues(t, 2, cart.Version)
}

func TestAddToCart_Rejections(t *testing.T) {
	inactive := &entity.Product{ID: "gone", Price: 3}
	uc := NewCartUseCase(newFakeCartRepo(), newFakeProductRepo(inactive))
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "u1", "gone", 1)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	_, err = uc.AddToCart(ctx, "u1", "gone", 0)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	_, err = uc.AddToCart(ctx, "u1", "missing", 1)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestUpdateQuantity_ZeroRemoves(t *testing.T) {
	products := newFakeProductRepo(&entity.Product{ID: "p1", Price: 4, IsActive: true})
	uc := NewCartUseCase(newFakeCartRepo(), products)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity(ctx, "u1", "p1", 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Total)

	_, err = uc.RemoveItem(ctx, "u1", "p1")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
