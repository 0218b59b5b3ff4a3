package domain

import "context"

// ProductRepo provides read access to the loaded catalog records.
type ProductRepo interface {
	Products(ctx context.Context) ([]Record, error)
	ProductByID(ctx context.Context, id int) (*Record, error)
	Landing(ctx context.Context) (*LandingContent, error)
}

// ContactRepo accepts validated contact submissions. AppendContact assigns
// the sequential id, timestamp and status of the stored submission.
type ContactRepo interface {
	AppendContact(ctx context.Context, in ContactInput) (ContactSubmission, error)
	Contacts(ctx context.Context) ([]ContactSubmission, error)
	CountContacts(ctx context.Context) (int, error)
}
