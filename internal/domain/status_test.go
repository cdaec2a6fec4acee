package domain

import "testing"

func TestClassifyStatus_Success(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"Successful Delivery",
		"successful delivery",
		"Shipment COMPLETED",
		"Parcel Delivered to recipient",
		"DELIVERED",
	} {
		if got := ClassifyStatus(raw); got != OutcomeSuccess {
			t.Fatalf("ClassifyStatus(%q) = %q, expected success", raw, got)
		}
	}
}

func TestClassifyStatus_Return(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"Returned to Sender",
		"RETURN",
		"rts initiated",
		"Order Cancelled",
	} {
		if got := ClassifyStatus(raw); got != OutcomeReturn {
			t.Fatalf("ClassifyStatus(%q) = %q, expected return", raw, got)
		}
	}
}

func TestClassifyStatus_Other(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"In Transit",
		"Out for Delivery Attempt Scheduled",
		"picked up",
	} {
		if got := ClassifyStatus(raw); got != OutcomeOther {
			t.Fatalf("ClassifyStatus(%q) = %q, expected other", raw, got)
		}
	}
}

// A status that matches both rule sets must take the first declared rule.
func TestClassifyStatus_PriorityOrder(t *testing.T) {
	t.Parallel()

	raw := "delivered after return attempt"
	if got := ClassifyStatus(raw); got != OutcomeSuccess {
		t.Fatalf("ClassifyStatus(%q) = %q, expected success to win", raw, got)
	}
}

func TestPaymentMode_Valid(t *testing.T) {
	t.Parallel()

	if !PaymentCOD.Valid() || !PaymentPrepaid.Valid() {
		t.Fatal("known payment modes must be valid")
	}
	if PaymentMode("card").Valid() {
		t.Fatal("unknown payment mode must be invalid")
	}
}

func TestDeliveryStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []DeliveryStatus{DeliveryPending, DeliveryProcessing, DeliverySuccess, DeliveryReturn} {
		if !s.Valid() {
			t.Fatalf("status %q must be valid", s)
		}
	}
	if DeliveryStatus("lost").Valid() {
		t.Fatal("unknown status must be invalid")
	}
}

func TestRequiredOrderFields(t *testing.T) {
	t.Parallel()

	o := &Order{
		CustomerName:  "Aina",
		CustomerPhone: "0123456789",
		Address: Address{
			Line1:    "12 Jalan Besar",
			Postcode: "43000",
			City:     "Kajang",
			State:    "Selangor",
		},
		Product: "Vitamin set",
	}
	if missing := RequiredOrderFields(o); len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}

	o.Address.Postcode = " "
	o.Product = ""
	missing := RequiredOrderFields(o)
	if len(missing) != 2 || missing[0] != "postcode" || missing[1] != "product" {
		t.Fatalf("expected [postcode product], got %v", missing)
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"0123456789", "60123456789", "+60123456789"} {
		if !ValidatePhone(ok) {
			t.Fatalf("expected %q to be valid", ok)
		}
	}
	for _, bad := range []string{"", "abc", "01-2345", "1234"} {
		if ValidatePhone(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}
