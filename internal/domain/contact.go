package domain

// ContactInput is a contact-form payload as submitted by a client,
// before validation.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// ContactSubmission is an accepted contact-form entry. Created only by the
// store's append path; never mutated or deleted afterwards.
type ContactSubmission struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// ContactReceipt is the part of a submission echoed back to the client.
// Name, email and message are retained server-side only.
type ContactReceipt struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// FieldError is a single named-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
