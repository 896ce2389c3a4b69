package model

type OrderPlacedEventMessage struct {
	ID            int32  `json:"id"`
	CustomerID    int32  `json:"customer_id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Hall          string `json:"hall"`
	Room          string `json:"room"`
	Quantity      int32  `json:"quantity"`
	Date          string `json:"date"`
}

type SendEmailEventMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
