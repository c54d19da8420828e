package entity

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment references its order by OrderID.
type Payment struct {
	ID            string     `json:"id" firestore:"id"`
	OrderID       string     `json:"order_id" firestore:"orderId"`
	UserID        string     `json:"user_id" firestore:"userId"`
	Amount        float64    `json:"amount" firestore:"amount"`
	Method        string     `json:"method" firestore:"method"`
	Status        string     `json:"status" firestore:"status"`
	TransactionID string     `json:"transaction_id,omitempty" firestore:"transactionId,omitempty"`
	RedirectURL   string     `json:"redirect_url,omitempty" firestore:"redirectUrl,omitempty"`
	CreatedAt     time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time  `json:"updated_at" firestore:"updatedAt"`
	PaidAt        *time.Time `json:"paid_at,omitempty" firestore:"paidAt,omitempty"`
}
