package model

import "time"

type PlaceOrderRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	ContactNumber string `json:"contactNumber" validate:"required,max=20"`
	Hall          string `json:"hall" validate:"required,max=200"`
	Room          string `json:"room" validate:"required,max=20"`
	Quantity      int32  `json:"quantity" validate:"required,min=1"`
	Date          string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type PlacedOrder struct {
	Id           int32     `json:"id"`
	CustomerId   int32     `json:"customer_id"`
	Quantity     int32     `json:"quantity"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"customer_name"`
}

type PlaceOrderResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	OrderId int32       `json:"orderId"`
	Order   PlacedOrder `json:"order"`
}

// OrderResponse is an order flattened with the fields of its customer.
type OrderResponse struct {
	Id            int32     `json:"id"`
	CustomerId    int32     `json:"customer_id"`
	Quantity      int32     `json:"quantity"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Hall          string    `json:"hall"`
	Room          string    `json:"room"`
}

type OrderStats struct {
	TodayOrders   int   `json:"todayOrders"`
	TodayQuantity int64 `json:"todayQuantity"`
	TotalOrders   int   `json:"totalOrders"`
	TotalQuantity int64 `json:"totalQuantity"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Stats  OrderStats      `json:"stats"`
}

type GetOrderResponse struct {
	Order OrderResponse `json:"order"`
}

type UpdateOrderRequest struct {
	Quantity int32  `json:"quantity" validate:"required,min=1"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateOrderResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}
