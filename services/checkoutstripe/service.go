package checkoutstripe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"

	"github.com/MarcGrol/hoopstore/lib/myerrors"
	"github.com/MarcGrol/hoopstore/lib/mylog"
)

type service struct {
	logger mylog.Logger
	payer  Payer
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, payer Payer) *service {
	return &service{
		logger: logger,
		payer:  payer,
	}
}

// lookupSession confirms that a one-time checkout completed and returns its payment intent.
func (s *service) lookupSession(c context.Context, sessionID string) (SessionLookupResponse, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionLookupResponse{}, myerrors.NewInvalidInputErrorf("missing session id")
	}

	session, err := s.retrieve(c, sessionID, lookupExpand)
	if err != nil {
		return SessionLookupResponse{}, err
	}

	if session.Status != stripe.CheckoutSessionStatusComplete {
		s.logger.Log(c, sessionID, mylog.SeverityInfo, "Checkout session %s not complete: %s", sessionID, session.Status)
		return SessionLookupResponse{}, myerrors.NewPaymentNotCompletedError(fieldSessionStatus, string(session.Status))
	}

	paymentIntent := paymentIntentID(session)
	if paymentIntent == "" {
		return SessionLookupResponse{}, myerrors.NewMissingReferenceError(fmt.Errorf("no payment intent for checkout session %s", sessionID))
	}

	return SessionLookupResponse{
		Success:       true,
		PaymentIntent: paymentIntent,
		SessionStatus: string(session.Status),
	}, nil
}

// verifySession confirms that a checkout was paid and returns its billing details.
// Subscriptions report "paid" without ever reaching a payment intent, so none is required here.
func (s *service) verifySession(c context.Context, sessionID string) (SessionVerifyResponse, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionVerifyResponse{}, myerrors.NewInvalidInputErrorf("missing session_id")
	}

	session, err := s.retrieve(c, sessionID, verifyExpand)
	if err != nil {
		return SessionVerifyResponse{}, err
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		s.logger.Log(c, sessionID, mylog.SeverityInfo, "Checkout session %s not paid: %s", sessionID, session.PaymentStatus)
		return SessionVerifyResponse{}, myerrors.NewPaymentNotCompletedError(fieldPaymentStatus, string(session.PaymentStatus))
	}

	resp := SessionVerifyResponse{
		Success:       true,
		CustomerEmail: customerEmail(session),
		PaymentIntent: paymentIntentID(session),
		PlanID:        session.Metadata[metadataPlanID],
		BillingCycle:  session.Metadata[metadataBillingCycle],
	}
	if session.Subscription != nil {
		resp.SubscriptionID = session.Subscription.ID
	}

	s.logger.Log(c, sessionID, mylog.SeverityInfo, "Checkout session %s verified (plan %s, cycle %s)", sessionID, resp.PlanID, resp.BillingCycle)

	return resp, nil
}

func (s *service) retrieve(c context.Context, sessionID string, expand []string) (stripe.CheckoutSession, error) {
	session, err := s.payer.RetrieveSession(c, sessionID, expand)
	if err != nil {
		return stripe.CheckoutSession{}, myerrors.NewProviderError(fmt.Errorf("error retrieving checkout session %s: %s", sessionID, describeStripeError(err)))
	}
	return session, nil
}

func paymentIntentID(session stripe.CheckoutSession) string {
	if session.PaymentIntent == nil {
		return ""
	}
	return session.PaymentIntent.ID
}

func customerEmail(session stripe.CheckoutSession) string {
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		return session.CustomerDetails.Email
	}
	if session.CustomerEmail != "" {
		return session.CustomerEmail
	}
	if session.Customer != nil {
		return session.Customer.Email
	}
	return ""
}

func describeStripeError(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return fmt.Sprintf("stripe %s (http %d, code %s, request %s): %s", stripeErr.Type, stripeErr.HTTPStatusCode, stripeErr.Code, stripeErr.RequestID, stripeErr.Msg)
	}
	return err.Error()
}
