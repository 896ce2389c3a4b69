package model

type CustomerResponse struct {
	Id            int32  `json:"id"`
	ContactNumber string `json:"contact_number"`
	Name          string `json:"name"`
	Hall          string `json:"hall"`
	Room          string `json:"room"`
}

type CustomerLookupResponse struct {
	Exists   bool              `json:"exists"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}

type CreateCustomerRequest struct {
	ContactNumber string `json:"contactNumber" validate:"required,max=20"`
	Name          string `json:"name" validate:"required,max=100"`
	Hall          string `json:"hall" validate:"required,max=200"`
	Room          string `json:"room" validate:"required,max=20"`
}

type CreateCustomerResponse struct {
	Success  bool             `json:"success"`
	Customer CustomerResponse `json:"customer"`
}
