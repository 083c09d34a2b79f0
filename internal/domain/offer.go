package domain

import "time"

type OfferStatus string

const (
	OfferPending             OfferStatus = "pending"
	OfferAccepted            OfferStatus = "accepted"
	OfferRejected            OfferStatus = "rejected"
	OfferCancelledBySupplier OfferStatus = "cancelled_by_supplier"
	OfferExpired             OfferStatus = "expired"
	OfferCountered           OfferStatus = "countered"
)

// Respondable reports whether a customer may still act on the offer.
func (s OfferStatus) Respondable() bool {
	return s == OfferPending || s == OfferCountered
}

// Offer is a supplier's priced proposal against a request. A direct-accept
// synthesizes an Offer that is born in the accepted status.
type Offer struct {
	ID            string
	RequestID     string
	SupplierID    string
	ProposedPrice float64
	Message       string
	DeliveryDate  *time.Time
	Status        OfferStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
