package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSavedSearchUsesPrincipalUserID(t *testing.T) {
	var gotUserID int64
	repo := &stubUserRepo{
		createSavedSearchFn: func(ctx context.Context, userID int64, draft domain.SavedSearchDraft) (*domain.SavedSearch, error) {
			gotUserID = userID
			return &domain.SavedSearch{ID: 11, Query: draft.Query}, nil
		},
	}
	events := &stubEventPublisher{}

	svc := NewSavedSearchesService(repo, events)
	search, err := svc.Create(context.Background(), testPrincipal, domain.SavedSearchDraft{Query: "vasastan"})

	require.NoError(t, err)
	assert.Equal(t, testPrincipal.UserID, gotUserID)
	assert.Equal(t, int64(11), search.ID)
	assert.Equal(t, []int64{11}, events.savedIDs)
}

func TestCreateSavedSearchRequiresQuery(t *testing.T) {
	repo := &stubUserRepo{
		createSavedSearchFn: func(ctx context.Context, userID int64, draft domain.SavedSearchDraft) (*domain.SavedSearch, error) {
			t.Fatal("repository must not be called")
			return nil, nil
		},
	}

	svc := NewSavedSearchesService(repo, &stubEventPublisher{})
	_, err := svc.Create(context.Background(), testPrincipal, domain.SavedSearchDraft{})

	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestCreateSavedSearchEventFailureIsTolerated(t *testing.T) {
	repo := &stubUserRepo{
		createSavedSearchFn: func(ctx context.Context, userID int64, draft domain.SavedSearchDraft) (*domain.SavedSearch, error) {
			return &domain.SavedSearch{ID: 12, Query: draft.Query}, nil
		},
	}
	events := &stubEventPublisher{err: errors.New("broker down")}

	svc := NewSavedSearchesService(repo, events)
	search, err := svc.Create(context.Background(), testPrincipal, domain.SavedSearchDraft{Query: "kungsholmen"})

	require.NoError(t, err)
	assert.Equal(t, int64(12), search.ID)
}

func TestUpdateSavedSearchRejectsEmptyQuery(t *testing.T) {
	repo := &stubUserRepo{
		updateSavedSearchFn: func(ctx context.Context, userID, searchID int64, patch domain.SavedSearchPatch) (*domain.SavedSearch, error) {
			t.Fatal("repository must not be called")
			return nil, nil
		},
	}

	empty := ""
	svc := NewSavedSearchesService(repo, &stubEventPublisher{})
	_, err := svc.Update(context.Background(), testPrincipal, 1, domain.SavedSearchPatch{Query: &empty})

	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestUpdateSavedSearchScopedToPrincipal(t *testing.T) {
	var gotUserID, gotSearchID int64
	repo := &stubUserRepo{
		updateSavedSearchFn: func(ctx context.Context, userID, searchID int64, patch domain.SavedSearchPatch) (*domain.SavedSearch, error) {
			gotUserID, gotSearchID = userID, searchID
			return &domain.SavedSearch{ID: searchID}, nil
		},
	}

	query := "sodermalm"
	svc := NewSavedSearchesService(repo, &stubEventPublisher{})
	_, err := svc.Update(context.Background(), testPrincipal, 33, domain.SavedSearchPatch{Query: &query})

	require.NoError(t, err)
	assert.Equal(t, testPrincipal.UserID, gotUserID)
	assert.Equal(t, int64(33), gotSearchID)
}

func TestSaveListingUsesPrincipalUserID(t *testing.T) {
	var gotUserID, gotListingID int64
	repo := &stubUserRepo{
		saveListingFn: func(ctx context.Context, userID, listingID int64) error {
			gotUserID, gotListingID = userID, listingID
			return nil
		},
	}

	svc := NewSavedListingsService(repo)
	err := svc.Save(context.Background(), testPrincipal, 21)

	require.NoError(t, err)
	assert.Equal(t, testPrincipal.UserID, gotUserID)
	assert.Equal(t, int64(21), gotListingID)
}

func TestRemoveSavedListingNotFound(t *testing.T) {
	repo := &stubUserRepo{
		removeSavedListingFn: func(ctx context.Context, userID, listingID int64) error {
			return domain.NotFound("saved listing")
		},
	}

	svc := NewSavedListingsService(repo)
	err := svc.Remove(context.Background(), testPrincipal, 21)

	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
