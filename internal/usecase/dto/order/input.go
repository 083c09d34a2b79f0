package orderdto

// StatusAction drives an order through its delivery lifecycle.
type StatusAction string

const (
	ActionCancel  StatusAction = "cancel"
	ActionDeliver StatusAction = "deliver"
)

type AdvanceStatusInput struct {
	OrderID  string
	CallerID string
	// Role the caller acts under for this action: "customer" or "supplier".
	// Users holding the dual role pick a side per call.
	CallerRole string
	Action     StatusAction
}
