package entity

import "time"

type SubscriptionTier string

const (
	TierMonthly SubscriptionTier = "MONTHLY"
	TierYearly  SubscriptionTier = "YEARLY"
)

type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "ACTIVE"
	SubscriptionExpired SubscriptionStatus = "EXPIRED"
)

type Subscription struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	CreatorID  string             `json:"creator_id"`
	Tier       SubscriptionTier   `json:"tier"`
	Status     SubscriptionStatus `json:"status"`
	StartDate  time.Time          `json:"start_date"`
	ExpiryDate time.Time          `json:"expiry_date"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Expired reports whether the edge has passed its paid-through date,
// regardless of the stored status.
func (s *Subscription) Expired(now time.Time) bool {
	return now.After(s.ExpiryDate)
}
