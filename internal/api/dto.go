package api

import "shop-demo/internal/domain"

// OrderLineRequest is one element of the placement request body.
type OrderLineRequest struct {
	CartID   int64 `json:"cartId"`
	Quantity int   `json:"quantity"`
}

// PlaceOrderResponse is returned with 201 Created.
type PlaceOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

// Order is the JSON view of one order.
type Order struct {
	OrderID      int64         `json:"orderId"`
	TotalPrice   int64         `json:"totalPrice"`
	OrderDetails []OrderDetail `json:"orderDetails"`
}

// OrderDetail is the JSON view of one order line.
type OrderDetail struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"imageUrl"`
	Quantity  int    `json:"quantity"`
}

func orderLineRequestsToDomain(in []OrderLineRequest) []domain.OrderLineRequest {
	out := make([]domain.OrderLineRequest, len(in))
	for i, r := range in {
		out[i] = domain.OrderLineRequest{CartEntryID: r.CartID, Quantity: r.Quantity}
	}
	return out
}

func orderToAPI(v domain.OrderView) Order {
	o := Order{
		OrderID:      v.OrderID,
		TotalPrice:   v.TotalPrice,
		OrderDetails: make([]OrderDetail, len(v.Lines)),
	}
	for i, l := range v.Lines {
		o.OrderDetails[i] = OrderDetail{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
		}
	}
	return o
}
