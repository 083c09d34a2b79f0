package domain

import "time"

type OrderStatus string

const (
	OrderPlaced              OrderStatus = "placed"
	OrderProcessing          OrderStatus = "processing"
	OrderShipped             OrderStatus = "shipped"
	OrderDelivered           OrderStatus = "delivered"
	OrderCompleted           OrderStatus = "completed"
	OrderCancelledByCustomer OrderStatus = "cancelled_by_customer"
	OrderCancelledBySupplier OrderStatus = "cancelled_by_supplier"
)

// Order is the committed transaction materialized from exactly one
// accepted offer. It references its request and offer but owns neither.
type Order struct {
	ID         string
	Number     string
	RequestID  string
	OfferID    string
	CustomerID string
	SupplierID string
	TotalPrice float64
	Quantity   int
	Status     OrderStatus

	DeliveryAddress   string
	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	DeliveredAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
