// Package memory implements the record store: landing content and product
// records loaded once from the seed document, plus the append-only list of
// accepted contact submissions.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/meridianhome/storefront/internal/domain"
)

// seedDocument is the on-disk layout: landing content consumed verbatim
// and the raw product records.
type seedDocument struct {
	Landing  domain.LandingContent `json:"landing"`
	Products []domain.Record       `json:"products"`
}

type Store struct {
	mu       sync.RWMutex
	landing  domain.LandingContent
	products []domain.Record
	contacts []domain.ContactSubmission
	loaded   bool

	path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Load reads the seed document. It is idempotent; a second call is a
// no-op. On failure the store keeps its previous state and the caller
// decides whether to continue (the condition is operational, not a
// per-request fault).
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSeedUnavailable, err)
	}
	var doc seedDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSeedUnavailable, err)
	}

	s.landing = doc.Landing
	s.products = doc.Products
	s.loaded = true
	log.Info().Int("products", len(s.products)).Str("path", s.path).Msg("seed data loaded")
	return nil
}

func (s *Store) Landing(ctx context.Context) (*domain.LandingContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	landing := s.landing
	return &landing, nil
}

// Products returns a copy of the record list so callers cannot reorder or
// truncate store state.
func (s *Store) Products(ctx context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Store) ProductByID(ctx context.Context, id int) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.products {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// AppendContact stores an accepted submission, assigning the sequential
// id, timestamp and initial status. The append happens under the lock so
// ids stay gapless under concurrent requests.
func (s *Store) AppendContact(ctx context.Context, in domain.ContactInput) (domain.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source := in.Source
	if source == "" {
		source = "website"
	}
	sub := domain.ContactSubmission{
		ID:        len(s.contacts) + 1,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Source:    source,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Status:    "received",
	}
	s.contacts = append(s.contacts, sub)
	return sub, nil
}

func (s *Store) Contacts(ctx context.Context) ([]domain.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ContactSubmission, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

func (s *Store) CountContacts(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts), nil
}
