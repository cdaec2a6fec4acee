package domain

import "time"

// Prospect is a potential customer captured before an order exists.
type Prospect struct {
	ID        string
	Name      string
	Phone     string
	Note      string
	Source    string
	StaffID   string
	CreatedAt time.Time
}

// Device links a staff member to a connected WhatsApp-sending device.
// Phone is the staff member's own WhatsApp number, the notification target.
type Device struct {
	StaffID   string
	DeviceID  string
	Phone     string
	Connected bool
}

// CourierConfig holds the sender identity and the courier API credentials.
// Provisioned out-of-band; read-only at runtime.
type CourierConfig struct {
	SenderName     string
	SenderPhone    string
	SenderAddress  Address
	ClientID       string
	ClientSecret   string
	CourierChannel string
}
