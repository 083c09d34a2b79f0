package productdto

type CreateProductInput struct {
	SupplierID  string
	Name        string
	Description string
	Price       float64
	Category    string
	ImagePath   string
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImagePath   *string
}
