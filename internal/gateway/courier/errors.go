package courier

import "fmt"

// AuthError is returned when the courier token exchange is rejected.
// Body carries the upstream response verbatim; no token is cached.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("courier auth rejected (status %d): %s", e.Status, e.Body)
}

// RejectedError is returned when the courier rejects an order submission or
// cancellation on a business rule. Body echoes the upstream payload so the
// caller can surface it; the caller does not retry automatically.
type RejectedError struct {
	Op     string
	Status int
	Body   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("courier rejected %s (status %d): %s", e.Op, e.Status, e.Body)
}

// WaybillError is returned when fetching a printable waybill fails. It keeps
// the tracking number so batch callers can report partial failure.
type WaybillError struct {
	TrackingNo string
	Err        error
}

func (e *WaybillError) Error() string {
	return fmt.Sprintf("fetch waybill %s: %v", e.TrackingNo, e.Err)
}

func (e *WaybillError) Unwrap() error { return e.Err }
