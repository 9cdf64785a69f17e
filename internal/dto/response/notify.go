package response

// NotifyResponse echoes the mail provider's identifier back to the caller
// so frontends can correlate a dispatched email.
type NotifyResponse struct {
	Success       bool   `json:"success"`
	EmailID       string `json:"email_id,omitempty"`
	RecipientMail string `json:"recipient,omitempty"`
}
