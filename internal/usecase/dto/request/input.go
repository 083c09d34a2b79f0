package requestdto

type CreateRequestInput struct {
	CustomerID  string
	Title       string
	Description string
	Category    string
	Quantity    int
	OfferPrice  *float64
	ImagePath   string
}

// UpdateRequestInput is a partial patch; nil fields are left untouched.
type UpdateRequestInput struct {
	Title       *string
	Description *string
	Category    *string
	Quantity    *int
	OfferPrice  *float64
	ImagePath   *string
}

type ListRequestsInput struct {
	CallerID string
	Category string
	Status   string
	Limit    int
	Offset   int
}
