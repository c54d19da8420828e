package usecase

import (
	"context"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns an empty cart for users who never added anything.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if errors.Is(err, errors.CodeNotFound) {
		return entity.NewCart(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddToCart snapshots the product's current name, price and image.
func (uc *CartUseCase) AddToCart(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, errors.BadRequest("Product is not available", nil)
	}

	item := entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Image:     product.PrimaryImage(),
	}

	return uc.cartRepo.Mutate(ctx, userID, func(cart *entity.Cart) error {
		cart.AddItem(item)
		return nil
	})
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	return uc.cartRepo.Mutate(ctx, userID, func(cart *entity.Cart) error {
		if !cart.UpdateQuantity(productID, quantity) {
			return errors.NotFound("Cart item", nil)
		}
		return nil
	})
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	return uc.cartRepo.Mutate(ctx, userID, func(cart *entity.Cart) error {
		if !cart.RemoveItem(productID) {
			return errors.NotFound("Cart item", nil)
		}
		return nil
	})
}

func (uc *CartUseCase) ClearCart(ctx context.Context, userID string) (*entity.Cart, error) {
	return uc.cartRepo.Mutate(ctx, userID, func(cart *entity.Cart) error {
		cart.Clear()
		return nil
	})
}
