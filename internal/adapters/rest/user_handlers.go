package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"listing-service/internal/contracts"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// UserHandler exposes the user read model plus the caller's saved listings
// and saved searches. Ownership always comes from the verified principal.
type UserHandler struct {
	listUsersUC     usecases_port.ListUsersUseCase
	savedListingsUC usecases_port.SavedListingsUseCase
	savedSearchesUC usecases_port.SavedSearchesUseCase
}

func NewUserHandler(
	listUsersUC usecases_port.ListUsersUseCase,
	savedListingsUC usecases_port.SavedListingsUseCase,
	savedSearchesUC usecases_port.SavedSearchesUseCase,
) *UserHandler {
	return &UserHandler{
		listUsersUC:     listUsersUC,
		savedListingsUC: savedListingsUC,
		savedSearchesUC: savedSearchesUC,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := GetOptionalInt(r, "limit")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := GetOptionalInt(r, "offset")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	users, err := h.listUsersUC.Execute(r.Context(), limit, offset)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) ListSavedListings(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	saved, err := h.savedListingsUC.List(r.Context(), principal)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, saved)
}

func (h *UserHandler) SaveListing(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req saveListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ListingID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "listing_id is required")
		return
	}

	if err := h.savedListingsUC.Save(r.Context(), principal, req.ListingID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

func (h *UserHandler) RemoveSavedListing(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	listingID, err := GetPathID(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	if err := h.savedListingsUC.Remove(r.Context(), principal, listingID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *UserHandler) ListSavedSearches(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	searches, err := h.savedSearchesUC.List(r.Context(), principal)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, searches)
}

func (h *UserHandler) CreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	if err := contracts.ValidatePayload("SavedSearchCreateRequest", "1.0.0", body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req savedSearchCreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	search, err := h.savedSearchesUC.Create(r.Context(), principal, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, search)
}

func (h *UserHandler) UpdateSavedSearch(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	searchID, err := GetPathID(chi.URLParam(r, "searchID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid search id")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	if err := contracts.ValidatePayload("SavedSearchUpdateRequest", "1.0.0", body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req savedSearchUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	search, err := h.savedSearchesUC.Update(r.Context(), principal, searchID, req.toPatch())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, search)
}

func (h *UserHandler) DeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	searchID, err := GetPathID(chi.URLParam(r, "searchID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid search id")
		return
	}

	if err := h.savedSearchesUC.Delete(r.Context(), principal, searchID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
