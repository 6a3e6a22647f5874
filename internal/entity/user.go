package entity

import "time"

type Role string

const (
	RoleFan     Role = "FAN"
	RoleCreator Role = "CREATOR"
	RoleAdmin   Role = "ADMIN"
)

type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	Avatar           string    `json:"avatar"`
	CoverImage       string    `json:"cover_image"`
	Bio              string    `json:"bio"`
	IsCreator        bool      `json:"is_creator"`
	IsFan            bool      `json:"is_fan"`
	LastActiveRole   Role      `json:"last_active_role"`
	TotalSubscribers int       `json:"total_subscribers"`
	MonthlyPrice     float64   `json:"monthly_price"`
	YearlyPrice      float64   `json:"yearly_price"`
	StripeAccountID  string    `json:"stripe_account_id,omitempty"`
	IsBlocked        bool      `json:"is_blocked"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Set when fetching a creator profile for a specific viewer.
	IsSubscribed bool `json:"is_subscribed,omitempty"`
	PostCount    int  `json:"post_count,omitempty"`
}
