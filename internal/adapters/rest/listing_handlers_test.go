package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchUC struct {
	fn func(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error)
}

func (s *stubSearchUC) Execute(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
	return s.fn(ctx, filters)
}

type stubAutocompleteUC struct {
	fn func(ctx context.Context, term string) ([]string, error)
}

func (s *stubAutocompleteUC) Execute(ctx context.Context, term string) ([]string, error) {
	return s.fn(ctx, term)
}

type stubDetailsUC struct {
	fn func(ctx context.Context, listingID int64) (*domain.ListingDetails, error)
}

func (s *stubDetailsUC) Execute(ctx context.Context, listingID int64) (*domain.ListingDetails, error) {
	return s.fn(ctx, listingID)
}

type stubCreateUC struct {
	fn func(ctx context.Context, principal domain.Principal, draft domain.ListingDraft) (*domain.Listing, error)
}

func (s *stubCreateUC) Execute(ctx context.Context, principal domain.Principal, draft domain.ListingDraft) (*domain.Listing, error) {
	return s.fn(ctx, principal, draft)
}

type stubDeleteUC struct {
	fn func(ctx context.Context, principal domain.Principal, listingID int64) error
}

func (s *stubDeleteUC) Execute(ctx context.Context, principal domain.Principal, listingID int64) error {
	return s.fn(ctx, principal, listingID)
}

func withPrincipal(r *http.Request, principal domain.Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), principalKey, principal))
}

func listingRouter(h *ListingHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/listings", h.SearchListings)
	r.Get("/listings/autocomplete", h.Autocomplete)
	r.Get("/listings/{listingID}", h.GetListingDetails)
	r.Post("/listings", h.CreateListing)
	r.Delete("/listings/{listingID}", h.DeleteListing)
	return r
}

func TestSearchListingsParsesFilters(t *testing.T) {
	var gotFilters domain.ListingFilters
	search := &stubSearchUC{fn: func(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
		gotFilters = filters
		return &domain.SearchResult{Count: 0, Items: []domain.ListingSummary{}}, nil
	}}
	h := &ListingHandler{searchUC: search}

	r := httptest.NewRequest(http.MethodGet, "/listings?q=vasa&status=active&price_min=1000000&rooms_max=4&property_types=apartment,%20house&limit=20", nil)
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "vasa", gotFilters.FreeText)
	assert.Equal(t, "active", gotFilters.Status)
	require.NotNil(t, gotFilters.PriceMin)
	assert.Equal(t, 1000000.0, *gotFilters.PriceMin)
	require.NotNil(t, gotFilters.RoomsMax)
	assert.Equal(t, 4.0, *gotFilters.RoomsMax)
	assert.Equal(t, []string{"apartment", "house"}, gotFilters.PropertyTypes)
	require.NotNil(t, gotFilters.Limit)
	assert.Equal(t, 20, *gotFilters.Limit)
}

func TestSearchListingsRejectsMalformedNumbers(t *testing.T) {
	h := &ListingHandler{searchUC: &stubSearchUC{fn: func(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
		t.Fatal("use case must not be called")
		return nil, nil
	}}}

	r := httptest.NewRequest(http.MethodGet, "/listings?price_min=expensive", nil)
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAutocompleteRespondsWithSuggestions(t *testing.T) {
	h := &ListingHandler{autocompleteUC: &stubAutocompleteUC{fn: func(ctx context.Context, term string) ([]string, error) {
		assert.Equal(t, "vasa", term)
		return []string{"Vasastan 3 rok"}, nil
	}}}

	r := httptest.NewRequest(http.MethodGet, "/listings/autocomplete?q=vasa", nil)
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"suggestions": ["Vasastan 3 rok"]}`, rec.Body.String())
}

func TestGetListingDetailsNotFound(t *testing.T) {
	h := &ListingHandler{detailsUC: &stubDetailsUC{fn: func(ctx context.Context, listingID int64) (*domain.ListingDetails, error) {
		return nil, domain.NotFound("listing")
	}}}

	r := httptest.NewRequest(http.MethodGet, "/listings/404", nil)
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetListingDetailsRejectsBadID(t *testing.T) {
	h := &ListingHandler{detailsUC: &stubDetailsUC{fn: func(ctx context.Context, listingID int64) (*domain.ListingDetails, error) {
		t.Fatal("use case must not be called")
		return nil, nil
	}}}

	r := httptest.NewRequest(http.MethodGet, "/listings/abc", nil)
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateListingRequiresPrincipal(t *testing.T) {
	h := &ListingHandler{createUC: &stubCreateUC{fn: func(ctx context.Context, principal domain.Principal, draft domain.ListingDraft) (*domain.Listing, error) {
		t.Fatal("use case must not be called")
		return nil, nil
	}}}

	body := strings.NewReader(`{"title": "t", "status_id": 1, "agent_id": 2, "property_id": 3}`)
	r := httptest.NewRequest(http.MethodPost, "/listings", body)
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateListingContractRejectsUnknownFields(t *testing.T) {
	h := &ListingHandler{createUC: &stubCreateUC{fn: func(ctx context.Context, principal domain.Principal, draft domain.ListingDraft) (*domain.Listing, error) {
		t.Fatal("use case must not be called")
		return nil, nil
	}}}

	body := strings.NewReader(`{"title": "t", "status_id": 1, "agent_id": 2, "property_id": 3, "owner_id": 9}`)
	r := withPrincipal(httptest.NewRequest(http.MethodPost, "/listings", body), domain.Principal{UserID: 7})
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateListingForwardsPrincipalAndDraft(t *testing.T) {
	var gotPrincipal domain.Principal
	var gotDraft domain.ListingDraft
	h := &ListingHandler{createUC: &stubCreateUC{fn: func(ctx context.Context, principal domain.Principal, draft domain.ListingDraft) (*domain.Listing, error) {
		gotPrincipal = principal
		gotDraft = draft
		return &domain.Listing{ID: 42, Title: draft.Title}, nil
	}}}

	body := strings.NewReader(`{"title": "Sunny apartment", "status_id": 1, "agent_id": 2, "property_id": 3}`)
	r := withPrincipal(httptest.NewRequest(http.MethodPost, "/listings", body), domain.Principal{UserID: 7})
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), gotPrincipal.UserID)
	assert.Equal(t, "Sunny apartment", gotDraft.Title)
	assert.Equal(t, int64(3), gotDraft.PropertyID)
}

func TestDeleteListingRespondsWithStatus(t *testing.T) {
	h := &ListingHandler{deleteUC: &stubDeleteUC{fn: func(ctx context.Context, principal domain.Principal, listingID int64) error {
		assert.Equal(t, int64(5), listingID)
		return nil
	}}}

	r := withPrincipal(httptest.NewRequest(http.MethodDelete, "/listings/5", nil), domain.Principal{UserID: 7})
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "deleted"}`, rec.Body.String())
}

func TestDeleteListingConflictFromGuard(t *testing.T) {
	h := &ListingHandler{deleteUC: &stubDeleteUC{fn: func(ctx context.Context, principal domain.Principal, listingID int64) error {
		return domain.Conflict("listing", "listing is referenced")
	}}}

	r := withPrincipal(httptest.NewRequest(http.MethodDelete, "/listings/5", nil), domain.Principal{UserID: 7})
	rec := httptest.NewRecorder()
	listingRouter(h).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
