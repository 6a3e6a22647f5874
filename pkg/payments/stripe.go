package payments

import (
	"fmt"

	"fanbase/pkg/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// CheckoutParams describes a one-off checkout session. Amount is in the
// smallest currency unit. Metadata is echoed back on the webhook event
// and drives reconciliation.
type CheckoutParams struct {
	Amount             int64
	Currency           string
	ProductName        string
	Metadata           map[string]string
	SuccessURL         string
	CancelURL          string
	DestinationAccount string
	ApplicationFee     int64
}

type CheckoutSession struct {
	ID  string
	URL string
}

type Client struct {
	api           *client.API
	webhookSecret string
}

func NewClient(cfg *config.Config) *Client {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &Client{
		api:           api,
		webhookSecret: cfg.StripeWebhookSecret,
	}
}

func (c *Client) CreateCheckoutSession(p CheckoutParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.Currency),
					UnitAmount: stripe.Int64(p.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	if p.DestinationAccount != "" {
		params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(p.DestinationAccount),
			},
		}
		if p.ApplicationFee > 0 {
			params.PaymentIntentData.ApplicationFeeAmount = stripe.Int64(p.ApplicationFee)
		}
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// VerifyWebhook checks the Stripe-Signature header against the shared
// secret and returns the parsed event.
func (c *Client) VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return event, nil
}

func (c *Client) CreateAccount(email string) (string, error) {
	account, err := c.api.Accounts.New(&stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create connected account: %w", err)
	}
	return account.ID, nil
}

func (c *Client) CreateAccountLink(accountID, refreshURL, returnURL string) (string, error) {
	link, err := c.api.AccountLinks.New(&stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create account link: %w", err)
	}
	return link.URL, nil
}

// AccountBalance is the available/pending balance of a connected
// account, in the smallest currency unit.
type AccountBalance struct {
	Available int64
	Pending   int64
}

func (c *Client) GetBalance(accountID string) (*AccountBalance, error) {
	balance, err := c.api.Balance.Get(&stripe.BalanceParams{
		Params: stripe.Params{StripeAccount: stripe.String(accountID)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}

	out := &AccountBalance{}
	for _, b := range balance.Available {
		out.Available += b.Amount
	}
	for _, b := range balance.Pending {
		out.Pending += b.Amount
	}
	return out, nil
}

type Payout struct {
	ID        string
	Amount    int64
	Currency  string
	Status    string
	CreatedAt int64
}

func (c *Client) CreatePayout(accountID string, amount int64, currency string) (*Payout, error) {
	payout, err := c.api.Payouts.New(&stripe.PayoutParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		Params:   stripe.Params{StripeAccount: stripe.String(accountID)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}
	return &Payout{
		ID:        payout.ID,
		Amount:    payout.Amount,
		Currency:  string(payout.Currency),
		Status:    string(payout.Status),
		CreatedAt: payout.Created,
	}, nil
}

func (c *Client) ListPayouts(accountID string, limit int64) ([]Payout, error) {
	params := &stripe.PayoutListParams{
		ListParams: stripe.ListParams{StripeAccount: stripe.String(accountID)},
	}
	params.Limit = stripe.Int64(limit)

	var payouts []Payout
	iter := c.api.Payouts.List(params)
	for iter.Next() {
		p := iter.Payout()
		payouts = append(payouts, Payout{
			ID:        p.ID,
			Amount:    p.Amount,
			Currency:  string(p.Currency),
			Status:    string(p.Status),
			CreatedAt: p.Created,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

func (c *Client) CancelPayout(accountID, payoutID string) error {
	_, err := c.api.Payouts.Cancel(payoutID, &stripe.PayoutParams{
		Params: stripe.Params{StripeAccount: stripe.String(accountID)},
	})
	if err != nil {
		return fmt.Errorf("failed to cancel payout: %w", err)
	}
	return nil
}

// CreateTransfer moves funds from the platform balance to a connected
// account. Used for wallet-funded purchases and tips.
func (c *Client) CreateTransfer(destinationAccount string, amount int64, currency string) (string, error) {
	transfer, err := c.api.Transfers.New(&stripe.TransferParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Destination: stripe.String(destinationAccount),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create transfer: %w", err)
	}
	return transfer.ID, nil
}
