package entity

type FeedItemKind string

const (
	FeedItemPost    FeedItemKind = "post"
	FeedItemProduct FeedItemKind = "product"
)

// FeedFilter selects the feed ordering mode.
type FeedFilter string

const (
	FeedRecents   FeedFilter = "Recents"
	FeedPopular   FeedFilter = "Popular"
	FeedFollowing FeedFilter = "Following"
)

// FeedItem is one entry of a composed feed page with per-viewer
// engagement flags.
type FeedItem struct {
	Kind    FeedItemKind `json:"kind"`
	Post    *Post        `json:"post,omitempty"`
	Product *Product     `json:"product,omitempty"`

	IsLiked      bool `json:"is_liked"`
	IsBookmarked bool `json:"is_bookmarked"`
	IsPurchased  bool `json:"is_purchased"`
	IsSubscribed bool `json:"is_subscribed"`
}

// FeedPage is a page of feed items plus the total count for the active
// filter.
type FeedPage struct {
	Items []FeedItem `json:"items"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}
