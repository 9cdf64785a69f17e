package mailer

// SendRequest is the payload for the provider's send endpoint. The provider
// takes raw HTML, there is no server-side template system.
type SendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendResponse echoes what the provider returns for a dispatched email.
type SendResponse struct {
	ID string `json:"id"`
}
