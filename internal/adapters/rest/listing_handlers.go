package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// ListingHandler exposes listing search and listing-scoped mutations.
type ListingHandler struct {
	searchUC       usecases_port.SearchListingsUseCase
	autocompleteUC usecases_port.AutocompleteListingsUseCase
	detailsUC      usecases_port.GetListingDetailsUseCase
	createUC       usecases_port.CreateListingUseCase
	updateUC       usecases_port.UpdateListingUseCase
	deleteUC       usecases_port.DeleteListingUseCase

	listMediaUC   usecases_port.ListListingMediaUseCase
	addMediaUC    usecases_port.AddListingMediaUseCase
	deleteMediaUC usecases_port.DeleteListingMediaUseCase

	listOpenHousesUC  usecases_port.ListOpenHousesUseCase
	addOpenHouseUC    usecases_port.AddOpenHouseUseCase
	deleteOpenHouseUC usecases_port.DeleteOpenHouseUseCase
}

func NewListingHandler(
	searchUC usecases_port.SearchListingsUseCase,
	autocompleteUC usecases_port.AutocompleteListingsUseCase,
	detailsUC usecases_port.GetListingDetailsUseCase,
	createUC usecases_port.CreateListingUseCase,
	updateUC usecases_port.UpdateListingUseCase,
	deleteUC usecases_port.DeleteListingUseCase,
	listMediaUC usecases_port.ListListingMediaUseCase,
	addMediaUC usecases_port.AddListingMediaUseCase,
	deleteMediaUC usecases_port.DeleteListingMediaUseCase,
	listOpenHousesUC usecases_port.ListOpenHousesUseCase,
	addOpenHouseUC usecases_port.AddOpenHouseUseCase,
	deleteOpenHouseUC usecases_port.DeleteOpenHouseUseCase,
) *ListingHandler {
	return &ListingHandler{
		searchUC:          searchUC,
		autocompleteUC:    autocompleteUC,
		detailsUC:         detailsUC,
		createUC:          createUC,
		updateUC:          updateUC,
		deleteUC:          deleteUC,
		listMediaUC:       listMediaUC,
		addMediaUC:        addMediaUC,
		deleteMediaUC:     deleteMediaUC,
		listOpenHousesUC:  listOpenHousesUC,
		addOpenHouseUC:    addOpenHouseUC,
		deleteOpenHouseUC: deleteOpenHouseUC,
	}
}

// parseFilters reads the optional search predicates from the query string.
func parseFilters(r *http.Request) (domain.ListingFilters, error) {
	filters := domain.ListingFilters{
		FreeText: r.URL.Query().Get("q"),
		Status:   r.URL.Query().Get("status"),
		City:     r.URL.Query().Get("city"),
	}

	var err error
	if filters.PriceMin, err = GetOptionalFloat(r, "price_min"); err != nil {
		return filters, err
	}
	if filters.PriceMax, err = GetOptionalFloat(r, "price_max"); err != nil {
		return filters, err
	}
	if filters.RoomsMin, err = GetOptionalFloat(r, "rooms_min"); err != nil {
		return filters, err
	}
	if filters.RoomsMax, err = GetOptionalFloat(r, "rooms_max"); err != nil {
		return filters, err
	}
	if filters.Limit, err = GetOptionalInt(r, "limit"); err != nil {
		return filters, err
	}
	if filters.Offset, err = GetOptionalInt(r, "offset"); err != nil {
		return filters, err
	}

	if raw := r.URL.Query().Get("property_types"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				filters.PropertyTypes = append(filters.PropertyTypes, trimmed)
			}
		}
	}

	return filters, nil
}

func (h *ListingHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid query parameter")
		return
	}

	result, err := h.searchUC.Execute(r.Context(), filters)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, result)
}

func (h *ListingHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	titles, err := h.autocompleteUC.Execute(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string][]string{"suggestions": titles})
}

func (h *ListingHandler) GetListingDetails(w http.ResponseWriter, r *http.Request) {
	listingID, err := GetPathID(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	details, err := h.detailsUC.Execute(r.Context(), listingID)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, details)
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
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
	if err := contracts.ValidatePayload("ListingCreateRequest", "1.0.0", body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req listingCreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	listing, err := h.createUC.Execute(r.Context(), principal, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, listing)
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
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

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	if err := contracts.ValidatePayload("ListingUpdateRequest", "1.0.0", body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req listingUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	listing, err := h.updateUC.Execute(r.Context(), principal, listingID, req.toPatch())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
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

	if err := h.deleteUC.Execute(r.Context(), principal, listingID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ListingHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	listingID, err := GetPathID(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

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

	media, err := h.listMediaUC.Execute(r.Context(), listingID, limit, offset)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, media)
}

func (h *ListingHandler) AddMedia(w http.ResponseWriter, r *http.Request) {
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

	var req mediaCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	media, err := h.addMediaUC.Execute(r.Context(), principal, listingID, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, media)
}

func (h *ListingHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	mediaID, err := GetPathID(chi.URLParam(r, "mediaID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid media id")
		return
	}

	if err := h.deleteMediaUC.Execute(r.Context(), principal, mediaID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ListingHandler) ListOpenHouses(w http.ResponseWriter, r *http.Request) {
	listingID, err := GetPathID(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

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

	events, err := h.listOpenHousesUC.Execute(r.Context(), listingID, limit, offset)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, events)
}

func (h *ListingHandler) AddOpenHouse(w http.ResponseWriter, r *http.Request) {
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

	var req openHouseCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	openHouse, err := h.addOpenHouseUC.Execute(r.Context(), principal, listingID, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, openHouse)
}

func (h *ListingHandler) DeleteOpenHouse(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	openHouseID, err := GetPathID(chi.URLParam(r, "openHouseID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid open house id")
		return
	}

	if err := h.deleteOpenHouseUC.Execute(r.Context(), principal, openHouseID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
