package mailer

import "errors"

var (
	// ErrSendFailed is returned when the provider rejects or fails a send
	ErrSendFailed = errors.New("mailer: send failed")

	// ErrInvalidResponse is returned when the provider response cannot be parsed
	ErrInvalidResponse = errors.New("mailer: invalid provider response")
)
