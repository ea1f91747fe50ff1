package rest

import (
	"encoding/json"
	"net/http"

	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// PropertyHandler exposes properties and locations.
type PropertyHandler struct {
	getUC    usecases_port.GetPropertyUseCase
	createUC usecases_port.CreatePropertyUseCase
	updateUC usecases_port.UpdatePropertyUseCase
	deleteUC usecases_port.DeletePropertyUseCase

	createLocationUC usecases_port.CreateLocationUseCase
	updateLocationUC usecases_port.UpdateLocationUseCase
}

func NewPropertyHandler(
	getUC usecases_port.GetPropertyUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	createLocationUC usecases_port.CreateLocationUseCase,
	updateLocationUC usecases_port.UpdateLocationUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		getUC:            getUC,
		createUC:         createUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		createLocationUC: createLocationUC,
		updateLocationUC: updateLocationUC,
	}
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := GetPathID(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.getUC.Execute(r.Context(), propertyID)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	property, err := h.createUC.Execute(r.Context(), principal, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	propertyID, err := GetPathID(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	property, err := h.updateUC.Execute(r.Context(), principal, propertyID, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	propertyID, err := GetPathID(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), principal, propertyID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *PropertyHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	location, err := h.createLocationUC.Execute(r.Context(), principal, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, location)
}

func (h *PropertyHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	locationID, err := GetPathID(chi.URLParam(r, "locationID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	location, err := h.updateLocationUC.Execute(r.Context(), principal, locationID, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, location)
}
