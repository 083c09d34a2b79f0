package domain

type EventType string

const (
	EventNewOffer          EventType = "new_offer"
	EventRequestAccepted   EventType = "request_accepted_by_supplier"
	EventOfferAccepted     EventType = "offer_accepted_by_customer"
	EventOfferRejected     EventType = "offer_rejected_by_customer"
	EventOfferCountered    EventType = "offer_countered_by_customer"
	EventOfferCancelled    EventType = "offer_cancelled_by_supplier"
	EventOrderPlaced       EventType = "order_placed"
	EventOrderStatusUpdate EventType = "order_status_update"
	EventRequestCancelled  EventType = "request_cancelled_by_customer"
)

// MarketplaceEvent is the notification payload dispatched after a
// transaction commits.
type MarketplaceEvent struct {
	Type        EventType `json:"type"`
	RecipientID string    `json:"recipient_id"`
	SenderID    string    `json:"sender_id,omitempty"`
	EntityID    string    `json:"entity_id"`
	EntityType  string    `json:"entity_type"`
	Message     string    `json:"message"`
}

// EventDispatcher delivers notifications fire-and-forget. It is invoked
// strictly after commit; a dispatch failure never rolls back a transition.
type EventDispatcher interface {
	Dispatch(event MarketplaceEvent) error
}
