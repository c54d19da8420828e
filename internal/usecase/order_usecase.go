package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
	"avrstore/pkg/logger"
)

type OrderUseCase struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	notifier      OrderNotifier
	now           func() time.Time
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	notifier OrderNotifier,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		notifier:      notifier,
		now:           time.Now,
	}
}

type CheckoutInput struct {
	Shipping      entity.ShippingInfo
	PaymentMethod string
}

// Checkout turns the user's cart into an order. The steps after the order
// document is written (order items, stock, cart) are not atomic with it and
// have no compensation: a failure leaves the order in place and is reported
// as CHECKOUT_INCOMPLETE.
func (uc *OrderUseCase) Checkout(ctx context.Context, userID string, input CheckoutInput) (*entity.Order, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if errors.Is(err, errors.CodeNotFound) || (err == nil && cart.IsEmpty()) {
		return nil, errors.BadRequest("Your cart is empty", nil)
	}
	if err != nil {
		return nil, err
	}

	method := strings.TrimSpace(input.PaymentMethod)
	if method == "" {
		return nil, errors.Validation(map[string]string{"payment_method": "payment_method is required"})
	}

	now := uc.now()
	order := entity.NewOrderFromCart(entity.NewOrderNumber(now), cart, input.Shipping, method, now)

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.orderItemRepo.CreateAll(ctx, order.Items); err != nil {
		logger.LogCheckoutStep(order.ID, "order items", err)
		return order, errors.CheckoutIncomplete(order.ID, "order items", err)
	}

	for _, item := range order.Items {
		if err := uc.productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			logger.LogCheckoutStep(order.ID, "stock", err)
			return order, errors.CheckoutIncomplete(order.ID, "stock", err)
		}
	}

	if _, err := uc.cartRepo.Mutate(ctx, userID, func(c *entity.Cart) error {
		c.Clear()
		return nil
	}); err != nil {
		logger.LogCheckoutStep(order.ID, "cart", err)
		return order, errors.CheckoutIncomplete(order.ID, "cart", err)
	}

	logger.Info("Order placed: %s", logger.Fields(map[string]interface{}{
		"order": order.ID,
		"user":  userID,
		"total": order.Total,
	}))

	return order, nil
}

// GetOrder returns the order only to its owner.
func (uc *OrderUseCase) GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (uc *OrderUseCase) ListAllOrders(ctx context.Context, status string) ([]*entity.Order, error) {
	if status != "" && !entity.OrderStatus(status).Valid() {
		return nil, errors.BadRequest("Unknown order status", nil)
	}
	orders, err := uc.orderRepo.List(ctx, entity.OrderStatus(status))
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

// CancelOrder lets the owner cancel before shipment.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.Mutate(ctx, orderID, func(o *entity.Order) error {
		if o.UserID != userID {
			return errors.NotFound("Order", nil)
		}
		if err := o.Transition(entity.OrderStatusCancelled, uc.now()); err != nil {
			return errors.BadRequest("Order can no longer be cancelled", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(order)
	return order, nil
}

// UpdateStatus is the admin status transition.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, errors.BadRequest("Unknown order status", nil)
	}

	order, err := uc.orderRepo.Mutate(ctx, orderID, func(o *entity.Order) error {
		if err := o.Transition(status, uc.now()); err != nil {
			return errors.BadRequest(err.Error(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(order)
	return order, nil
}

func (uc *OrderUseCase) notify(order *entity.Order) {
	if uc.notifier != nil {
		uc.notifier.NotifyOrderStatus(order.UserID, order)
	}
}

func sortNewestFirst(orders []*entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
