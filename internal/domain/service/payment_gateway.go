package service

import (
	"context"
	"fmt"
	"time"

	"avrstore/pkg/logger"
)

// Gateway statuses, normalized across providers.
const (
	GatewayStatusPending = "pending"
	GatewayStatusSuccess = "success"
	GatewayStatusFailure = "failure"
)

// PaymentGatewayRequest represents a payment request
type PaymentGatewayRequest struct {
	OrderID         string
	Amount          float64
	PaymentType     string // "card", "bank_transfer", "wallet", ...
	CustomerDetails CustomerDetails
	ItemDetails     []ItemDetail
}

// CustomerDetails represents customer information
type CustomerDetails struct {
	FullName string
	Email    string
	Phone    string
}

// ItemDetail represents an item in the order
type ItemDetail struct {
	ID       string
	Price    float64
	Quantity int
	Name     string
}

// PaymentGatewayResponse represents a payment response
type PaymentGatewayResponse struct {
	Token         string
	RedirectURL   string
	OrderID       string
	TransactionID string
	Status        string
	PaymentType   string
}

// PaymentGatewayService interface for payment operations
type PaymentGatewayService interface {
	CreatePayment(ctx context.Context, req PaymentGatewayRequest) (*PaymentGatewayResponse, error)
	HandleCallback(ctx context.Context, notification map[string]interface{}) (*PaymentGatewayResponse, error)
}

// SimulatedPaymentGateway issues sandbox tokens and understands the
// common hosted-checkout notification shape.
type SimulatedPaymentGateway struct {
	serverKey    string
	clientKey    string
	isProduction bool
	checkoutURL  string
}

func NewSimulatedPaymentGateway(serverKey, clientKey string, isProduction bool) *SimulatedPaymentGateway {
	checkoutURL := "https://sandbox.payments.example/checkout"
	if isProduction {
		checkoutURL = "https://payments.example/checkout"
	}
	return &SimulatedPaymentGateway{
		serverKey:    serverKey,
		clientKey:    clientKey,
		isProduction: isProduction,
		checkoutURL:  checkoutURL,
	}
}

func (g *SimulatedPaymentGateway) CreatePayment(ctx context.Context, req PaymentGatewayRequest) (*PaymentGatewayResponse, error) {
	if req.OrderID == "" {
		return nil, fmt.Errorf("order id is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %.2f", req.Amount)
	}

	logger.Info("Creating payment for order: %s, amount: %.2f", req.OrderID, req.Amount)

	token := fmt.Sprintf("tok-%s-%d", req.OrderID, time.Now().Unix())
	return &PaymentGatewayResponse{
		Token:       token,
		RedirectURL: fmt.Sprintf("%s/%s", g.checkoutURL, token),
		OrderID:     req.OrderID,
		Status:      GatewayStatusPending,
		PaymentType: req.PaymentType,
	}, nil
}

func (g *SimulatedPaymentGateway) HandleCallback(ctx context.Context, notification map[string]interface{}) (*PaymentGatewayResponse, error) {
	orderID, ok := notification["order_id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("order_id not found in notification")
	}

	transactionStatus, ok := notification["transaction_status"].(string)
	if !ok {
		transactionStatus = "pending"
	}

	paymentType, _ := notification["payment_type"].(string)
	transactionID, _ := notification["transaction_id"].(string)

	finalStatus := GatewayStatusPending
	switch transactionStatus {
	case "settlement", "capture":
		finalStatus = GatewayStatusSuccess
	case "cancel", "deny", "expire":
		finalStatus = GatewayStatusFailure
	}

	logger.Info("Callback processed: %s -> %s", orderID, finalStatus)
	return &PaymentGatewayResponse{
		OrderID:       orderID,
		TransactionID: transactionID,
		Status:        finalStatus,
		PaymentType:   paymentType,
	}, nil
}
