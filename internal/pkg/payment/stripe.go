package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentCreator creates card payment intents for the booking flow
type IntentCreator interface {
	CreatePaymentIntent(amountCents int64) (clientSecret string, err error)
}

// StripeClient implements IntentCreator against the Stripe API
type StripeClient struct{}

// NewStripeClient configures the global Stripe key and returns a client
func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

// CreatePaymentIntent creates a card payment intent and returns its client secret
func (c *StripeClient) CreatePaymentIntent(amountCents int64) (string, error) {
	intent, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
