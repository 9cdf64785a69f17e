package payments

import "errors"

var (
	// ErrRefundFailed is returned when the processor rejects the refund
	ErrRefundFailed = errors.New("payments: refund failed")

	// ErrSessionNotFound is returned for an unknown checkout session
	ErrSessionNotFound = errors.New("payments: checkout session not found")
)
