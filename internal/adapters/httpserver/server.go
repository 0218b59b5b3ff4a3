// Package httpserver exposes the catalog read API and the contact write
// path over HTTP. Status-code mapping and the JSON error envelope live
// here; the pipeline itself knows nothing about transport.
package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/meridianhome/storefront/internal/catalog"
	"github.com/meridianhome/storefront/internal/domain"
	"github.com/meridianhome/storefront/internal/usecase"
)

const apiVersion = "1.0.0"

type Server struct {
	router   chi.Router
	products *usecase.ProductUC
	contacts *usecase.ContactUC

	corsOrigin string
}

func New(products *usecase.ProductUC, contacts *usecase.ContactUC, corsOrigin string) http.Handler {
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	s := &Server{
		router:     chi.NewRouter(),
		products:   products,
		contacts:   contacts,
		corsOrigin: corsOrigin,
	}
	s.routes()
	return s.router
}

func (s *Server) routes() {
	s.router.Use(requestID)
	s.router.Use(logRequests)
	s.router.Use(s.cors)
	s.router.Use(recoverJSON)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/landing", s.apiLanding)
	s.router.Get("/api/products", s.apiProducts)
	s.router.Get("/api/products/{id}", s.apiProductByID)
	s.router.Post("/api/contact", s.apiContact)

	s.router.Get("/admin/contacts", s.handleAdminContacts)
	s.router.Get("/admin/contacts/export", s.handleAdminContactsExport)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]any{
		"message": "Storefront API Server",
		"version": apiVersion,
		"endpoints": map[string]string{
			"health":        "/api/health",
			"landing":       "/api/landing",
			"products":      "/api/products",
			"productDetail": "/api/products/:id",
			"contact":       "POST /api/contact",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) apiLanding(w http.ResponseWriter, r *http.Request) {
	landing, err := s.products.Landing(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("fetch landing")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch landing data")
		return
	}
	writeJSON(w, 200, landing)
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	criteria := catalog.Criteria{
		Featured: qv.Get("featured"),
		Query:    qv.Get("q"),
		Limit:    qv.Get("limit"),
	}
	includeTax := catalog.ParseBool(qv.Get("tax"))

	list, err := s.products.List(r.Context(), criteria, includeTax)
	if err != nil {
		log.Error().Err(err).Msg("list products")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch products")
		return
	}
	writeJSON(w, 200, list)
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}
	includeTax := catalog.ParseBool(r.URL.Query().Get("tax"))

	p, err := s.products.Get(r.Context(), id, includeTax)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Product not found")
			return
		}
		log.Error().Err(err).Int("id", id).Msg("get product")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch product")
		return
	}
	writeJSON(w, 200, p)
}

func (s *Server) apiContact(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(io.LimitReader(r.Body, 64<<10))
	var in domain.ContactInput
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Request body is required")
		return
	}
	if in == (domain.ContactInput{}) {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Request body is required")
		return
	}

	receipt, fieldErrs, err := s.contacts.Submit(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("save contact")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process contact form")
		return
	}
	if len(fieldErrs) > 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", fieldErrs...)
		return
	}
	writeJSON(w, 201, receipt)
}

func (s *Server) handleAdminContacts(w http.ResponseWriter, r *http.Request) {
	list, err := s.contacts.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list contacts")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch contacts")
		return
	}
	writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string, details ...domain.FieldError) {
	writeJSON(w, code, errorEnvelope{Error: errorBody{
		Code:    errCode,
		Message: message,
		Details: details,
	}})
}
