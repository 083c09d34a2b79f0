package offerdto

import "time"

type SubmitOfferInput struct {
	RequestID     string
	SupplierID    string
	ProposedPrice float64
	Message       string
	DeliveryDate  *time.Time
}

type CounterOfferInput struct {
	RequestID     string
	SupplierID    string
	ProposedPrice float64
	Message       string
	DeliveryDate  *time.Time
}

// UpdateOfferInput is a partial patch applied to a supplier's own pending
// offer; nil fields are left untouched.
type UpdateOfferInput struct {
	ProposedPrice *float64
	Message       *string
	DeliveryDate  *time.Time
}

// RespondAction is a customer's decision on an offer.
type RespondAction string

const (
	ActionAccept  RespondAction = "accept"
	ActionReject  RespondAction = "reject"
	ActionCounter RespondAction = "counter"
)
