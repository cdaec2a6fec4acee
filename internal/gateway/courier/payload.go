package courier

import (
	"math"
	"time"

	"orderdesk/internal/domain"
)

// maxAddressLine is the courier's per-line address limit.
const maxAddressLine = 100

// Fixed pickup and delivery time windows accepted by the courier.
const (
	pickupWindow   = "09:00-13:00"
	deliveryWindow = "10:00-18:00"
)

// ShipmentOptions control pickup/delivery date offsets.
type ShipmentOptions struct {
	PickupDaysAhead   int
	DeliveryDaysAhead int
}

type shipmentParty struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	Postcode string `json:"postcode"`
	City     string `json:"city"`
	State    string `json:"state"`
}

type shipmentPayload struct {
	Reference      string        `json:"reference"`
	Sender         shipmentParty `json:"sender"`
	Receiver       shipmentParty `json:"receiver"`
	Content        string        `json:"content"`
	DeclaredValue  float64       `json:"declared_value"`
	CODAmount      float64       `json:"cod_amount"`
	PickupDate     string        `json:"pickup_date"`
	PickupWindow   string        `json:"pickup_window"`
	DeliveryDate   string        `json:"delivery_date"`
	DeliveryWindow string        `json:"delivery_window"`
}

// splitAddress splits a single address line at the courier's limit. The
// second line is capped at the same limit; anything beyond is dropped.
// The limit counts runes so a multi-byte character is never cut in half.
func splitAddress(line string) (string, string) {
	runes := []rune(line)
	if len(runes) <= maxAddressLine {
		return line, ""
	}
	rest := runes[maxAddressLine:]
	if len(rest) > maxAddressLine {
		rest = rest[:maxAddressLine]
	}
	return string(runes[:maxAddressLine]), string(rest)
}

// codAmount is the rounded declared price for cash-on-delivery orders and
// zero for every other payment mode.
func codAmount(o *domain.Order) float64 {
	if o.PaymentMode == domain.PaymentCOD {
		return math.Round(o.Price)
	}
	return 0
}

// buildShipment maps an order and the sender identity onto the courier's
// order-creation payload.
func buildShipment(o *domain.Order, sender *domain.CourierConfig, now time.Time, opts ShipmentOptions) shipmentPayload {
	recvLine1, recvLine2 := splitAddress(o.Address.Line1)
	if recvLine2 == "" {
		recvLine2 = o.Address.Line2
	}

	return shipmentPayload{
		Reference: o.ID,
		Sender: shipmentParty{
			Name:     sender.SenderName,
			Phone:    sender.SenderPhone,
			Address1: sender.SenderAddress.Line1,
			Address2: sender.SenderAddress.Line2,
			Postcode: sender.SenderAddress.Postcode,
			City:     sender.SenderAddress.City,
			State:    sender.SenderAddress.State,
		},
		Receiver: shipmentParty{
			Name:     o.CustomerName,
			Phone:    o.CustomerPhone,
			Address1: recvLine1,
			Address2: recvLine2,
			Postcode: o.Address.Postcode,
			City:     o.Address.City,
			State:    o.Address.State,
		},
		Content:        o.Product,
		DeclaredValue:  o.Price,
		CODAmount:      codAmount(o),
		PickupDate:     now.AddDate(0, 0, opts.PickupDaysAhead).Format("2006-01-02"),
		PickupWindow:   pickupWindow,
		DeliveryDate:   now.AddDate(0, 0, opts.DeliveryDaysAhead).Format("2006-01-02"),
		DeliveryWindow: deliveryWindow,
	}
}
