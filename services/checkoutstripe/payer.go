package checkoutstripe

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
)

//go:generate mockgen -source=payer.go -package checkoutstripe -destination payer_mock.go Payer
type Payer interface {
	RetrieveSession(c context.Context, sessionID string, expand []string) (stripe.CheckoutSession, error)
}

type stripePayer struct {
	sessions session.Client
}

// NewPayer never retries: a failed lookup is reported and the browser asks again.
func NewPayer(apiKey string, timeout time.Duration) Payer {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		MaxNetworkRetries: stripe.Int64(0),
	})

	return &stripePayer{
		sessions: session.Client{B: backend, Key: apiKey},
	}
}

func (p *stripePayer) RetrieveSession(c context.Context, sessionID string, expand []string) (stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = c
	for _, e := range expand {
		params.AddExpand(e)
	}

	checkoutSession, err := p.sessions.Get(sessionID, params)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}

	return *checkoutSession, nil
}
