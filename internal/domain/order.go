package domain

import "time"

type (
	// PaymentMode represents how the customer pays for an order.
	PaymentMode string
	// DeliveryStatus represents the delivery state of an order.
	DeliveryStatus string
)

// List of possible payment modes
const (
	PaymentCOD     PaymentMode = "cod"
	PaymentPrepaid PaymentMode = "prepaid"
)

// List of possible delivery statuses
const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryProcessing DeliveryStatus = "processing"
	DeliverySuccess    DeliveryStatus = "success"
	DeliveryReturn     DeliveryStatus = "return"
)

var allowedPaymentModes = [...]PaymentMode{PaymentCOD, PaymentPrepaid}

var allowedDeliveryStatuses = [...]DeliveryStatus{
	DeliveryPending, DeliveryProcessing, DeliverySuccess, DeliveryReturn,
}

// Valid checks if the PaymentMode is valid
func (m PaymentMode) Valid() bool {
	for _, v := range allowedPaymentModes {
		if m == v {
			return true
		}
	}
	return false
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Address is a customer delivery address.
type Address struct {
	Line1    string
	Line2    string
	Postcode string
	City     string
	State    string
}

// Order represents a customer order placed by staff.
// TrackingNo is nil until the courier accepts the shipment.
type Order struct {
	ID                string
	CustomerName      string
	CustomerPhone     string
	Address           Address
	Price             float64
	PaymentMode       PaymentMode
	Product           string
	StaffID           string
	TrackingNo        *string
	DeliveryStatus    DeliveryStatus
	RawCourierStatus  string
	CourierName       string
	PaymentReceivedAt *time.Time
	ReturnedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StatusUpdate carries one courier delivery-status callback.
// Either TrackingNo or SaleID locates the order; RawStatus is free text.
type StatusUpdate struct {
	TrackingNo string
	SaleID     string
	RawStatus  string
	ReceivedAt time.Time
}
