package domain

import "time"

// Order is an immutable record of a placement. Lines are kept in request order.
type Order struct {
	ID         int64
	CustomerID int64
	Lines      []OrderLine
	CreatedAt  time.Time
}

// OrderLine is a snapshot of a product's display and pricing attributes at
// placement time together with the purchased quantity.
type OrderLine struct {
	Position  int
	ProductID int64
	Name      string
	Price     int64
	ImageURL  string
	Quantity  int
}

// SnapshotLine captures the current state of p as the line at position.
func SnapshotLine(position int, p *Product, quantity int) OrderLine {
	return OrderLine{
		Position:  position,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
	}
}

// OrderLineRequest selects one cart entry for an order.
type OrderLineRequest struct {
	CartEntryID int64
	Quantity    int
}

// Validate checks that the request is well-formed.
func (r OrderLineRequest) Validate() error {
	if r.Quantity <= 0 {
		return ErrValidationKind(ErrInvalidQuantity, "quantity must be positive, got %d for cart entry %d", r.Quantity, r.CartEntryID)
	}
	return nil
}

// OrderView is the read model returned to the owning customer.
type OrderView struct {
	OrderID    int64
	Lines      []OrderLineView
	TotalPrice int64
	CreatedAt  time.Time
}

// OrderLineView is one hydrated line of an OrderView.
type OrderLineView struct {
	ProductID int64
	Name      string
	Price     int64
	ImageURL  string
	Quantity  int
}

// NewOrderView builds the view of o from its stored snapshots.
func NewOrderView(o *Order) OrderView {
	v := OrderView{
		OrderID:   o.ID,
		Lines:     make([]OrderLineView, 0, len(o.Lines)),
		CreatedAt: o.CreatedAt,
	}
	for _, l := range o.Lines {
		v.Lines = append(v.Lines, OrderLineView{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
		})
		v.TotalPrice += l.Price * int64(l.Quantity)
	}
	return v
}
