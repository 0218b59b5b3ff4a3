package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/meridianhome/storefront/internal/domain"
)

// emailRe requires a single @ with at least one dot after it and no
// interior whitespace.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxMessageLen = 1000

type ContactUC struct {
	Contacts domain.ContactRepo
}

// Submit validates the payload and, when it passes, appends it to the
// store. Validation failures are reported as field errors, never as an
// error return; the error return is reserved for store faults.
func (uc *ContactUC) Submit(ctx context.Context, in domain.ContactInput) (*domain.ContactReceipt, []domain.FieldError, error) {
	if errs := ValidateContact(in); len(errs) > 0 {
		return nil, errs, nil
	}

	saved, err := uc.Contacts.AppendContact(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	return &domain.ContactReceipt{ID: saved.ID, Status: saved.Status}, nil, nil
}

// List returns every stored submission, oldest first.
func (uc *ContactUC) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	return uc.Contacts.Contacts(ctx)
}

// ValidateContact checks every field rule independently and returns all
// failures, not just the first. A nil-field payload is an ordinary
// validation failure, never a panic.
func ValidateContact(in domain.ContactInput) []domain.FieldError {
	var errs []domain.FieldError

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, domain.FieldError{
			Field:   "name",
			Message: "Name must be at least 2 characters long",
		})
	}

	if !emailRe.MatchString(in.Email) {
		errs = append(errs, domain.FieldError{
			Field:   "email",
			Message: "Please provide a valid email address",
		})
	}

	if len(strings.TrimSpace(in.Message)) < 10 {
		errs = append(errs, domain.FieldError{
			Field:   "message",
			Message: "Message must be at least 10 characters long",
		})
	}
	if len(in.Message) > maxMessageLen {
		errs = append(errs, domain.FieldError{
			Field:   "message",
			Message: "Message must not exceed 1000 characters",
		})
	}

	return errs
}
