package domain

import "time"

type RequestStatus string

const (
	RequestOpen                RequestStatus = "open"
	RequestSupplierAccepted    RequestStatus = "supplier_accepted"
	RequestCounterOffered      RequestStatus = "counter_offered"
	RequestFulfilled           RequestStatus = "fulfilled"
	RequestCancelledByCustomer RequestStatus = "cancelled_by_customer"
	RequestRejectedByCustomer  RequestStatus = "rejected_by_customer"
)

// Terminal reports whether no further offer or mutation is accepted
// against a request in this status.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestFulfilled, RequestCancelledByCustomer, RequestRejectedByCustomer:
		return true
	}
	return false
}

// RequestPost is a customer's solicitation for goods or services.
type RequestPost struct {
	ID          string
	CustomerID  string
	Title       string
	Description string
	Category    string
	Quantity    int
	// OfferPrice is the customer's target price. When set, a supplier may
	// direct-accept the request at this price.
	OfferPrice *float64
	Status     RequestStatus
	ImagePath  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
