package entity

import "time"

type PostType string

const (
	PostTypeText  PostType = "TEXT"
	PostTypeImage PostType = "IMAGE"
	PostTypeAudio PostType = "AUDIO"
	PostTypeVideo PostType = "VIDEO"
)

type PostStatus string

const (
	PostStatusActive   PostStatus = "ACTIVE"
	PostStatusInactive PostStatus = "INACTIVE"
)

type AccessIdentifier string

const (
	AccessSubscription AccessIdentifier = "SUBSCRIPTION"
	AccessPaid         AccessIdentifier = "PAID"
	AccessFree         AccessIdentifier = "FREE"
)

type Post struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Type             PostType         `json:"type"`
	Status           PostStatus       `json:"status"`
	AccessIdentifier AccessIdentifier `json:"access_identifier"`
	Price            float64          `json:"price"`
	Images           []string         `json:"images"`
	Likes            int              `json:"likes"`
	Comments         int              `json:"comments"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
