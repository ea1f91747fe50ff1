package usecase

import (
	"context"

	"listing-service/internal/core/domain"
)

// stubListingRepo implements ListingRepositoryPort through overridable
// function fields; unset methods fail loudly if called.
type stubListingRepo struct {
	searchFn       func(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error)
	autocompleteFn func(ctx context.Context, term string) ([]string, error)
	getDetailsFn   func(ctx context.Context, listingID int64) (*domain.ListingDetails, error)
	createFn       func(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error)
	updateFn       func(ctx context.Context, listingID int64, patch domain.ListingPatch) (*domain.Listing, error)
	deleteFn       func(ctx context.Context, listingID int64) error
}

func (s *stubListingRepo) Search(ctx context.Context, filters domain.ListingFilters) (*domain.SearchResult, error) {
	return s.searchFn(ctx, filters)
}

func (s *stubListingRepo) Autocomplete(ctx context.Context, term string) ([]string, error) {
	return s.autocompleteFn(ctx, term)
}

func (s *stubListingRepo) GetDetails(ctx context.Context, listingID int64) (*domain.ListingDetails, error) {
	return s.getDetailsFn(ctx, listingID)
}

func (s *stubListingRepo) Create(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error) {
	return s.createFn(ctx, draft)
}

func (s *stubListingRepo) Update(ctx context.Context, listingID int64, patch domain.ListingPatch) (*domain.Listing, error) {
	return s.updateFn(ctx, listingID, patch)
}

func (s *stubListingRepo) Delete(ctx context.Context, listingID int64) error {
	return s.deleteFn(ctx, listingID)
}

func (s *stubListingRepo) ListMedia(ctx context.Context, listingID int64, limit, offset *int) ([]domain.ListingMedia, error) {
	panic("ListMedia not stubbed")
}

func (s *stubListingRepo) AddMedia(ctx context.Context, listingID int64, draft domain.MediaDraft) (*domain.ListingMedia, error) {
	panic("AddMedia not stubbed")
}

func (s *stubListingRepo) DeleteMedia(ctx context.Context, mediaID int64) error {
	panic("DeleteMedia not stubbed")
}

func (s *stubListingRepo) ListOpenHouses(ctx context.Context, listingID int64, limit, offset *int) ([]domain.OpenHouse, error) {
	panic("ListOpenHouses not stubbed")
}

func (s *stubListingRepo) AddOpenHouse(ctx context.Context, listingID int64, draft domain.OpenHouseDraft) (*domain.OpenHouse, error) {
	panic("AddOpenHouse not stubbed")
}

func (s *stubListingRepo) DeleteOpenHouse(ctx context.Context, openHouseID int64) error {
	panic("DeleteOpenHouse not stubbed")
}

// stubEventPublisher records published events and can simulate failures.
type stubEventPublisher struct {
	createdIDs []int64
	deletedIDs []int64
	savedIDs   []int64
	err        error
}

func (s *stubEventPublisher) ListingCreated(ctx context.Context, listingID int64) error {
	s.createdIDs = append(s.createdIDs, listingID)
	return s.err
}

func (s *stubEventPublisher) ListingDeleted(ctx context.Context, listingID int64) error {
	s.deletedIDs = append(s.deletedIDs, listingID)
	return s.err
}

func (s *stubEventPublisher) SearchSaved(ctx context.Context, userID, searchID int64) error {
	s.savedIDs = append(s.savedIDs, searchID)
	return s.err
}

func (s *stubEventPublisher) Close() error { return nil }

// stubUserRepo implements UserRepositoryPort for saved artifact tests.
type stubUserRepo struct {
	listSavedListingsFn  func(ctx context.Context, userID int64) ([]domain.SavedListing, error)
	saveListingFn        func(ctx context.Context, userID, listingID int64) error
	removeSavedListingFn func(ctx context.Context, userID, listingID int64) error
	createSavedSearchFn  func(ctx context.Context, userID int64, draft domain.SavedSearchDraft) (*domain.SavedSearch, error)
	updateSavedSearchFn  func(ctx context.Context, userID, searchID int64, patch domain.SavedSearchPatch) (*domain.SavedSearch, error)
}

func (s *stubUserRepo) ListUsers(ctx context.Context, limit, offset *int) ([]domain.User, error) {
	return []domain.User{}, nil
}

func (s *stubUserRepo) ListSavedListings(ctx context.Context, userID int64) ([]domain.SavedListing, error) {
	return s.listSavedListingsFn(ctx, userID)
}

func (s *stubUserRepo) SaveListing(ctx context.Context, userID, listingID int64) error {
	return s.saveListingFn(ctx, userID, listingID)
}

func (s *stubUserRepo) RemoveSavedListing(ctx context.Context, userID, listingID int64) error {
	return s.removeSavedListingFn(ctx, userID, listingID)
}

func (s *stubUserRepo) ListSavedSearches(ctx context.Context, userID int64) ([]domain.SavedSearch, error) {
	return []domain.SavedSearch{}, nil
}

func (s *stubUserRepo) CreateSavedSearch(ctx context.Context, userID int64, draft domain.SavedSearchDraft) (*domain.SavedSearch, error) {
	return s.createSavedSearchFn(ctx, userID, draft)
}

func (s *stubUserRepo) UpdateSavedSearch(ctx context.Context, userID, searchID int64, patch domain.SavedSearchPatch) (*domain.SavedSearch, error) {
	return s.updateSavedSearchFn(ctx, userID, searchID, patch)
}

func (s *stubUserRepo) DeleteSavedSearch(ctx context.Context, userID, searchID int64) error {
	return nil
}
