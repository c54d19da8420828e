package entity

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"avrstore/pkg/money"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

const OrderNumberPrefix = "AVR"

// orderTransitions lists the statuses each status may move to.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusShipped, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ShippingInfo struct {
	FullName   string `json:"full_name" firestore:"fullName" validate:"required"`
	Email      string `json:"email" firestore:"email" validate:"required,email"`
	Phone      string `json:"phone" firestore:"phone" validate:"required"`
	Address    string `json:"address" firestore:"address" validate:"required"`
	City       string `json:"city" firestore:"city" validate:"required"`
	State      string `json:"state,omitempty" firestore:"state,omitempty"`
	PostalCode string `json:"postal_code" firestore:"postalCode" validate:"required"`
	Country    string `json:"country" firestore:"country" validate:"required"`
}

type PaymentInfo struct {
	Method    string `json:"method" firestore:"method"`
	Status    string `json:"status" firestore:"status"`
	PaymentID string `json:"payment_id,omitempty" firestore:"paymentId,omitempty"`
}

type OrderItem struct {
	ID        string    `json:"id,omitempty" firestore:"id,omitempty"`
	OrderID   string    `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	ProductID string    `json:"product_id" firestore:"productId"`
	Name      string    `json:"name" firestore:"name"`
	Price     float64   `json:"price" firestore:"price"`
	Quantity  int       `json:"quantity" firestore:"quantity"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" firestore:"createdAt,omitempty"`
}

type Order struct {
	ID           string       `json:"id" firestore:"id"`
	UserID       string       `json:"user_id" firestore:"userId"`
	Status       OrderStatus  `json:"status" firestore:"status"`
	ShippingInfo ShippingInfo `json:"shipping_info" firestore:"shippingInfo"`
	PaymentInfo  PaymentInfo  `json:"payment_info" firestore:"paymentInfo"`
	Items        []OrderItem  `json:"items" firestore:"items"`
	Subtotal     float64      `json:"subtotal" firestore:"subtotal"`
	ShippingFee  float64      `json:"shipping_fee" firestore:"shippingFee"`
	Total        float64      `json:"total" firestore:"total"`
	ItemCount    int          `json:"item_count" firestore:"itemCount"`

	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty" firestore:"shippedAt,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" firestore:"cancelledAt,omitempty"`
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderNumber returns AVR + 13-digit millisecond timestamp + 6 random
// base36 characters. Uniqueness is probabilistic.
func NewOrderNumber(now time.Time) string {
	var b strings.Builder
	b.WriteString(OrderNumberPrefix)
	b.WriteString(fmt.Sprintf("%013d", now.UnixMilli()))
	for i := 0; i < 6; i++ {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}

// NewOrderFromCart snapshots the cart lines into a pending order.
func NewOrderFromCart(id string, cart *Cart, shipping ShippingInfo, paymentMethod string, now time.Time) *Order {
	order := &Order{
		ID:           id,
		UserID:       cart.UserID,
		Status:       OrderStatusPending,
		ShippingInfo: shipping,
		PaymentInfo: PaymentInfo{
			Method: paymentMethod,
			Status: PaymentStatusPending,
		},
		Items:     make([]OrderItem, 0, len(cart.Items)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	var acc money.Accumulator
	for _, item := range cart.Items {
		order.Items = append(order.Items, OrderItem{
			OrderID:   id,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			CreatedAt: now,
		})
		acc.Add(item.Price, item.Quantity)
		order.ItemCount += item.Quantity
	}
	order.Subtotal = acc.Total()
	order.Total = order.Subtotal + order.ShippingFee

	return order
}

// Transition moves the order to next and stamps the matching timestamp.
func (o *Order) Transition(next OrderStatus, now time.Time) error {
	if !next.Valid() {
		return fmt.Errorf("unknown order status %q", next)
	}
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("cannot move order from %s to %s", o.Status, next)
	}

	o.Status = next
	o.UpdatedAt = now
	switch next {
	case OrderStatusShipped:
		o.ShippedAt = &now
	case OrderStatusDelivered:
		o.DeliveredAt = &now
	case OrderStatusCancelled:
		o.CancelledAt = &now
	}
	return nil
}
