package domain

// Product is a catalog entry. Price is in the smallest currency unit.
type Product struct {
	ID        int64
	Name      string
	Price     int64
	ImageURL  string
	Available bool
}

// Validate checks that the product is well-formed.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrValidation("product name is required")
	}
	if p.Price < 0 {
		return ErrValidation("product price cannot be negative, got %d", p.Price)
	}
	return nil
}
