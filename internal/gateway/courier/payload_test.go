package courier

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"orderdesk/internal/domain"
)

func TestSplitAddress_ShortLineKeptWhole(t *testing.T) {
	t.Parallel()

	line1, line2 := splitAddress("12 Jalan Besar")
	if line1 != "12 Jalan Besar" || line2 != "" {
		t.Fatalf("expected no split, got %q / %q", line1, line2)
	}
}

func TestSplitAddress_LongLineSplitAtLimit(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 130)
	line1, line2 := splitAddress(long)
	if line1 != strings.Repeat("a", 100) {
		t.Fatalf("expected first 100 chars, got %d chars", len(line1))
	}
	if line2 != strings.Repeat("a", 30) {
		t.Fatalf("expected remainder of 30 chars, got %d chars", len(line2))
	}
}

func TestSplitAddress_SecondLineCapped(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 250)
	line1, line2 := splitAddress(long)
	if len(line1) != 100 || len(line2) != 100 {
		t.Fatalf("expected 100/100, got %d/%d", len(line1), len(line2))
	}
}

func TestSplitAddress_MultiByteRuneAtBoundary(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 99) + "é" + strings.Repeat("b", 30)
	line1, line2 := splitAddress(long)
	if !utf8.ValidString(line1) || !utf8.ValidString(line2) {
		t.Fatalf("split produced invalid UTF-8: %q / %q", line1, line2)
	}
	if line1 != strings.Repeat("a", 99)+"é" {
		t.Fatalf("expected rune-aligned first line, got %q", line1)
	}
	if line2 != strings.Repeat("b", 30) {
		t.Fatalf("expected remainder after the accented rune, got %q", line2)
	}
}

func TestSplitAddress_RuneLimitNotByteLimit(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("ü", 130)
	line1, line2 := splitAddress(long)
	if got := utf8.RuneCountInString(line1); got != 100 {
		t.Fatalf("expected 100 runes on first line, got %d", got)
	}
	if got := utf8.RuneCountInString(line2); got != 30 {
		t.Fatalf("expected 30 runes on second line, got %d", got)
	}
}

func TestCODAmount(t *testing.T) {
	t.Parallel()

	cod := &domain.Order{Price: 129.45, PaymentMode: domain.PaymentCOD}
	if got := codAmount(cod); got != 129 {
		t.Fatalf("expected rounded 129, got %v", got)
	}

	cod.Price = 129.5
	if got := codAmount(cod); got != 130 {
		t.Fatalf("expected rounded 130, got %v", got)
	}

	prepaid := &domain.Order{Price: 129.45, PaymentMode: domain.PaymentPrepaid}
	if got := codAmount(prepaid); got != 0 {
		t.Fatalf("expected 0 for prepaid, got %v", got)
	}
}

func TestBuildShipment_Dates(t *testing.T) {
	t.Parallel()

	o := &domain.Order{
		ID:            "sale-1",
		CustomerName:  "Aina",
		CustomerPhone: "0123456789",
		Address:       domain.Address{Line1: "12 Jalan Besar", Postcode: "43000", City: "Kajang", State: "Selangor"},
		Price:         50,
		PaymentMode:   domain.PaymentCOD,
		Product:       "Vitamin set",
	}
	sender := &domain.CourierConfig{SenderName: "HQ", SenderPhone: "0198765432"}
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	p := buildShipment(o, sender, now, ShipmentOptions{PickupDaysAhead: 0, DeliveryDaysAhead: 2})

	if p.PickupDate != "2024-05-10" {
		t.Fatalf("expected pickup today, got %q", p.PickupDate)
	}
	if p.DeliveryDate != "2024-05-12" {
		t.Fatalf("expected delivery today+2d, got %q", p.DeliveryDate)
	}
	if p.PickupWindow != pickupWindow || p.DeliveryWindow != deliveryWindow {
		t.Fatal("expected fixed time windows")
	}
	if p.Reference != "sale-1" || p.CODAmount != 50 {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestBuildShipment_ExplicitSecondLineKept(t *testing.T) {
	t.Parallel()

	o := &domain.Order{
		Address: domain.Address{Line1: "12 Jalan Besar", Line2: "Taman Indah"},
	}
	p := buildShipment(o, &domain.CourierConfig{}, time.Now(), ShipmentOptions{})
	if p.Receiver.Address2 != "Taman Indah" {
		t.Fatalf("expected explicit address2 kept, got %q", p.Receiver.Address2)
	}
}
