package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// SavedSearchesService manages a user's stored search criteria.
type SavedSearchesService struct {
	userRepo port.UserRepositoryPort
	events   port.EventPublisherPort
}

func NewSavedSearchesService(userRepo port.UserRepositoryPort, events port.EventPublisherPort) *SavedSearchesService {
	return &SavedSearchesService{userRepo: userRepo, events: events}
}

func (s *SavedSearchesService) List(ctx context.Context, principal domain.Principal) ([]domain.SavedSearch, error) {
	return s.userRepo.ListSavedSearches(ctx, principal.UserID)
}

func (s *SavedSearchesService) Create(ctx context.Context, principal domain.Principal, draft domain.SavedSearchDraft) (*domain.SavedSearch, error) {
	if draft.Query == "" {
		return nil, domain.ValidationConflict("query is required", nil)
	}

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"user_id": principal.UserID,
	})

	search, err := s.userRepo.CreateSavedSearch(ctx, principal.UserID, draft)
	if err != nil {
		return nil, err
	}

	if err := s.events.SearchSaved(ctx, principal.UserID, search.ID); err != nil {
		logger.Warn("failed to publish search saved event", port.Fields{
			"search_id": search.ID,
			"error":     err.Error(),
		})
	}

	logger.Info("search saved", port.Fields{"search_id": search.ID})
	return search, nil
}

func (s *SavedSearchesService) Update(ctx context.Context, principal domain.Principal, searchID int64, patch domain.SavedSearchPatch) (*domain.SavedSearch, error) {
	if patch.Query != nil && *patch.Query == "" {
		return nil, domain.ValidationConflict("query must not be empty", nil)
	}
	return s.userRepo.UpdateSavedSearch(ctx, principal.UserID, searchID, patch)
}

func (s *SavedSearchesService) Delete(ctx context.Context, principal domain.Principal, searchID int64) error {
	return s.userRepo.DeleteSavedSearch(ctx, principal.UserID, searchID)
}
