package handlers

import "time"

type createOrderRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Address1      string  `json:"address1"`
	Address2      string  `json:"address2"`
	Postcode      string  `json:"postcode"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Price         float64 `json:"price"`
	PaymentMode   string  `json:"payment_mode"`
	Product       string  `json:"product"`
	StaffID       string  `json:"staff_id"`
}

type orderDTO struct {
	ID                string     `json:"id"`
	CustomerName      string     `json:"customer_name"`
	CustomerPhone     string     `json:"customer_phone"`
	Address1          string     `json:"address1"`
	Address2          string     `json:"address2"`
	Postcode          string     `json:"postcode"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	Price             float64    `json:"price"`
	PaymentMode       string     `json:"payment_mode"`
	Product           string     `json:"product"`
	StaffID           string     `json:"staff_id"`
	TrackingNo        *string    `json:"tracking_no,omitempty"`
	DeliveryStatus    string     `json:"delivery_status"`
	RawCourierStatus  string     `json:"raw_courier_status,omitempty"`
	CourierName       string     `json:"courier_name,omitempty"`
	PaymentReceivedAt *time.Time `json:"payment_received_at,omitempty"`
	ReturnedAt        *time.Time `json:"returned_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type createProspectRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Note    string `json:"note"`
	Source  string `json:"source"`
	StaffID string `json:"staff_id"`
}

type prospectDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Note      string    `json:"note,omitempty"`
	Source    string    `json:"source,omitempty"`
	StaffID   string    `json:"staff_id"`
	CreatedAt time.Time `json:"created_at"`
}

type waybillRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// statusCallbackRequest is the courier's delivery-status webhook body.
// Unknown fields are tolerated: courier payloads grow without notice.
type statusCallbackRequest struct {
	TrackingID string `json:"tracking_id"`
	SaleID     string `json:"sale_id"`
	Status     string `json:"status"`
}

// leadRelayRequest is the chat relay's free-text message webhook body.
type leadRelayRequest struct {
	StaffID string `json:"staff_id"`
	Message string `json:"message"`
}
