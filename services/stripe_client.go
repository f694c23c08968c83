package services

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/sony/gobreaker"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/customer"
	"github.com/stripe/stripe-go/v80/webhook"
)

// SessionLineItem is one payable line on a checkout session. UnitAmount is
// in minor currency units.
type SessionLineItem struct {
	Name       string
	Image      string
	UnitAmount int64
	Quantity   int64
}

// CheckoutSessionRequest carries everything needed to start a hosted
// payment flow.
type CheckoutSessionRequest struct {
	OrderID    string
	UserID     string
	Email      string
	Currency   string
	SuccessURL string
	CancelURL  string
	LineItems  []SessionLineItem
}

// CheckoutSession is the created payment session the buyer is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionCreator abstracts the payment processor for the checkout service.
type SessionCreator interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
}

// StripeClient talks to Stripe: customer resolution, checkout sessions and
// webhook verification. Session creation runs behind a circuit breaker so a
// Stripe outage fails fast instead of piling up requests.
type StripeClient struct {
	webhookSecret string
	breaker       *gobreaker.CircuitBreaker
}

func NewStripeClient(secretKey, webhookSecret string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{
		webhookSecret: webhookSecret,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "stripe-checkout",
		}),
	}
}

// findOrCreateCustomer resolves the Stripe customer for an email, creating
// one on first purchase.
func (s *StripeClient) findOrCreateCustomer(ctx context.Context, email string) (string, error) {
	listParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	listParams.Context = ctx
	listParams.Limit = stripe.Int64(1)

	iter := customer.List(listParams)
	if iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", err
	}

	createParams := &stripe.CustomerParams{Email: stripe.String(email)}
	createParams.Context = ctx
	created, err := customer.New(createParams)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// CreateCheckoutSession resolves the customer and creates a hosted checkout
// session for the given line items.
func (s *StripeClient) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error) {
	customerID, err := s.findOrCreateCustomer(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(req.Currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(item.Name),
			},
			UnitAmount: stripe.Int64(item.UnitAmount),
		}
		if item.Image != "" {
			priceData.ProductData.Images = stripe.StringSlice([]string{item.Image})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(customerID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("order_id", req.OrderID)
	params.AddMetadata("user_id", req.UserID)

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return session.New(params)
	})
	if err != nil {
		return nil, err
	}

	sess := result.(*stripe.CheckoutSession)
	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// ParseWebhook verifies the Stripe signature and returns the event.
func (s *StripeClient) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
}
