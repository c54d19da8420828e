package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/internal/domain/service"
	"avrstore/pkg/errors"
	"avrstore/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	gateway     service.PaymentGatewayService
	notifier    OrderNotifier
	now         func() time.Time
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	gateway service.PaymentGatewayService,
	notifier OrderNotifier,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		notifier:    notifier,
		now:         time.Now,
	}
}

// InitiatePayment opens a gateway session for a pending order. A payment
// that is still pending is returned as is. An empty method keeps the one
// chosen at checkout.
func (uc *PaymentUseCase) InitiatePayment(ctx context.Context, userID, orderID, method string) (*entity.Payment, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errors.NotFound("Order", nil)
	}
	if order.Status != entity.OrderStatusPending {
		return nil, errors.BadRequest("Only pending orders can be paid", nil)
	}

	existing, err := uc.paymentRepo.GetByOrderID(ctx, orderID)
	switch {
	case err == nil && existing.Status == entity.PaymentStatusPending:
		return existing, nil
	case err == nil && existing.Status == entity.PaymentStatusCompleted:
		return nil, errors.Conflict("Order is already paid")
	case err != nil && !errors.Is(err, errors.CodeNotFound):
		return nil, err
	}

	if method == "" {
		method = order.PaymentInfo.Method
	}

	items := make([]service.ItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, service.ItemDetail{
			ID:       item.ProductID,
			Price:    item.Price,
			Quantity: item.Quantity,
			Name:     item.Name,
		})
	}

	resp, err := uc.gateway.CreatePayment(ctx, service.PaymentGatewayRequest{
		OrderID:     order.ID,
		Amount:      order.Total,
		PaymentType: method,
		CustomerDetails: service.CustomerDetails{
			FullName: order.ShippingInfo.FullName,
			Email:    order.ShippingInfo.Email,
			Phone:    order.ShippingInfo.Phone,
		},
		ItemDetails: items,
	})
	if err != nil {
		logger.Error("Payment gateway rejected order %s: %v", order.ID, err)
		return nil, errors.Unavailable("We couldn't start the payment right now. Please try again.", err)
	}

	now := uc.now()
	payment := &entity.Payment{
		ID:          uuid.New().String(),
		OrderID:     order.ID,
		UserID:      userID,
		Amount:      order.Total,
		Method:      method,
		Status:      entity.PaymentStatusPending,
		RedirectURL: resp.RedirectURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if _, err := uc.orderRepo.Mutate(ctx, order.ID, func(o *entity.Order) error {
		o.PaymentInfo.PaymentID = payment.ID
		o.PaymentInfo.Method = method
		o.UpdatedAt = now
		return nil
	}); err != nil {
		logger.Warn("Failed to link payment %s to order %s: %v", payment.ID, order.ID, err)
	}

	return payment, nil
}

// HandleCallback applies a gateway notification. A successful payment moves
// the order to processing.
func (uc *PaymentUseCase) HandleCallback(ctx context.Context, notification map[string]interface{}) (*entity.Payment, error) {
	result, err := uc.gateway.HandleCallback(ctx, notification)
	if err != nil {
		return nil, errors.BadRequest("Invalid payment notification", err)
	}

	payment, err := uc.paymentRepo.GetByOrderID(ctx, result.OrderID)
	if err != nil {
		return nil, err
	}

	// Repeated notifications for a settled payment are acknowledged without changes.
	if payment.Status == entity.PaymentStatusCompleted {
		return payment, nil
	}

	now := uc.now()
	switch result.Status {
	case service.GatewayStatusSuccess:
		payment.Status = entity.PaymentStatusCompleted
		payment.PaidAt = &now
	case service.GatewayStatusFailure:
		payment.Status = entity.PaymentStatusFailed
	default:
		return payment, nil
	}
	if result.TransactionID != "" {
		payment.TransactionID = result.TransactionID
	}
	payment.UpdatedAt = now

	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.Mutate(ctx, payment.OrderID, func(o *entity.Order) error {
		o.PaymentInfo.Status = payment.Status
		o.PaymentInfo.PaymentID = payment.ID
		o.UpdatedAt = now
		if payment.Status == entity.PaymentStatusCompleted && o.Status.CanTransitionTo(entity.OrderStatusProcessing) {
			return o.Transition(entity.OrderStatusProcessing, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyOrderStatus(order.UserID, order)
	}

	logger.Info("Payment %s for order %s is %s", payment.ID, payment.OrderID, payment.Status)
	return payment, nil
}

func (uc *PaymentUseCase) GetPaymentForOrder(ctx context.Context, userID, orderID string) (*entity.Payment, error) {
	payment, err := uc.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment.UserID != userID {
		return nil, errors.NotFound("Payment", nil)
	}
	return payment, nil
}
