package handler

import (
	"github.com/labstack/echo/v4"

	"avrstore/internal/usecase"
	"avrstore/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type initiatePaymentRequest struct {
	Method string `json:"method"`
}

func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req initiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.paymentUseCase.InitiatePayment(c.Request().Context(), currentUID(c), c.Param("id"), req.Method)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, payment)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	payment, err := h.paymentUseCase.GetPaymentForOrder(c.Request().Context(), currentUID(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payment)
}

// HandleCallback receives gateway notifications. It is unauthenticated and
// rate limited separately.
func (h *PaymentHandler) HandleCallback(c echo.Context) error {
	var notification map[string]interface{}
	if err := c.Bind(&notification); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.paymentUseCase.HandleCallback(c.Request().Context(), notification)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"order_id": payment.OrderID,
		"status":   payment.Status,
	})
}
