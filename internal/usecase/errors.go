package usecase

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrAlreadySubscribed  = errors.New("already subscribed to this creator")
	ErrNotSubscribed      = errors.New("no active subscription")
	ErrAlreadyPurchased   = errors.New("post already purchased")
	ErrAlreadyBlocked     = errors.New("user already blocked")
	ErrInsufficientFunds  = errors.New("insufficient wallet balance")
	ErrInvalidOTP         = errors.New("invalid or expired code")
	ErrNoStripeAccount    = errors.New("no connected payout account")
	ErrOutOfStock         = errors.New("not enough stock")
	ErrDuplicateCategory  = errors.New("category already exists")
)
