package checkoutstripe

const (
	metadataPlanID       = "plan_id"
	metadataBillingCycle = "billing_cycle"

	fieldSessionStatus = "session_status"
	fieldPaymentStatus = "payment_status"
)

var (
	lookupExpand = []string{"payment_intent"}
	verifyExpand = []string{"customer", "subscription"}
)

// SessionLookupResponse confirms a one-time checkout that reached status "complete".
type SessionLookupResponse struct {
	Success       bool   `json:"success"`
	PaymentIntent string `json:"payment_intent"`
	SessionStatus string `json:"session_status"`
}

// SessionVerifyResponse confirms a checkout whose payment status is "paid".
// Every key is present; values that do not apply to the checkout are empty strings.
type SessionVerifyResponse struct {
	Success        bool   `json:"success"`
	CustomerEmail  string `json:"customer_email"`
	PaymentIntent  string `json:"payment_intent"`
	SubscriptionID string `json:"subscription_id"`
	PlanID         string `json:"plan_id"`
	BillingCycle   string `json:"billing_cycle"`
}

type verifySessionQuery struct {
	SessionID string `form:"session_id"`
}
