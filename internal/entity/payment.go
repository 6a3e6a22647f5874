package entity

import "time"

// PaymentPurpose values match the checkout metadata sent to the payment
// processor and echoed back on webhook events.
type PaymentPurpose string

const (
	PurposeWalletDeposit PaymentPurpose = "walletDeposit"
	PurposePostPurchase  PaymentPurpose = "postPurchase"
	PurposeSubscription  PaymentPurpose = "Subscription"
	PurposeTip           PaymentPurpose = "tip"
	PurposeOrder         PaymentPurpose = "order"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentDone     PaymentStatus = "DONE"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentCanceled PaymentStatus = "CANCELED"
)

type Payment struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	RecipientID    string         `json:"recipient_id,omitempty"`
	PostID         string         `json:"post_id,omitempty"`
	SubscriptionID string         `json:"subscription_id,omitempty"`
	Purpose        PaymentPurpose `json:"purpose"`
	Status         PaymentStatus  `json:"status"`
	Amount         float64        `json:"amount"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ProcessedEvent records a webhook event id that has already been
// applied. Replays of the same id are dropped.
type ProcessedEvent struct {
	ID         string    `json:"id"`
	Purpose    string    `json:"purpose"`
	ReceivedAt time.Time `json:"received_at"`
}
