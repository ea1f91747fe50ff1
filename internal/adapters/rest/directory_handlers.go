package rest

import (
	"encoding/json"
	"net/http"

	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// DirectoryHandler exposes agencies and agents.
type DirectoryHandler struct {
	listAgenciesUC usecases_port.ListAgenciesUseCase
	getAgencyUC    usecases_port.GetAgencyUseCase
	mutateAgencyUC usecases_port.MutateAgencyUseCase

	listAgentsUC usecases_port.ListAgentsUseCase
	getAgentUC   usecases_port.GetAgentUseCase
	mutateAgentUC usecases_port.MutateAgentUseCase
}

func NewDirectoryHandler(
	listAgenciesUC usecases_port.ListAgenciesUseCase,
	getAgencyUC usecases_port.GetAgencyUseCase,
	mutateAgencyUC usecases_port.MutateAgencyUseCase,
	listAgentsUC usecases_port.ListAgentsUseCase,
	getAgentUC usecases_port.GetAgentUseCase,
	mutateAgentUC usecases_port.MutateAgentUseCase,
) *DirectoryHandler {
	return &DirectoryHandler{
		listAgenciesUC: listAgenciesUC,
		getAgencyUC:    getAgencyUC,
		mutateAgencyUC: mutateAgencyUC,
		listAgentsUC:   listAgentsUC,
		getAgentUC:     getAgentUC,
		mutateAgentUC:  mutateAgentUC,
	}
}

func (h *DirectoryHandler) ListAgencies(w http.ResponseWriter, r *http.Request) {
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

	agencies, err := h.listAgenciesUC.Execute(r.Context(), limit, offset)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, agencies)
}

func (h *DirectoryHandler) GetAgency(w http.ResponseWriter, r *http.Request) {
	agencyID, err := GetPathID(chi.URLParam(r, "agencyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid agency id")
		return
	}

	agency, err := h.getAgencyUC.Execute(r.Context(), agencyID)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, agency)
}

func (h *DirectoryHandler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req agencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	agency, err := h.mutateAgencyUC.Create(r.Context(), principal, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, agency)
}

func (h *DirectoryHandler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	agencyID, err := GetPathID(chi.URLParam(r, "agencyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid agency id")
		return
	}

	var req agencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	agency, err := h.mutateAgencyUC.Update(r.Context(), principal, agencyID, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, agency)
}

func (h *DirectoryHandler) DeleteAgency(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	agencyID, err := GetPathID(chi.URLParam(r, "agencyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid agency id")
		return
	}

	if err := h.mutateAgencyUC.Delete(r.Context(), principal, agencyID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *DirectoryHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
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

	agents, err := h.listAgentsUC.Execute(r.Context(), limit, offset)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, agents)
}

func (h *DirectoryHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := GetPathID(chi.URLParam(r, "agentID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	agent, err := h.getAgentUC.Execute(r.Context(), agentID)
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, agent)
}

func (h *DirectoryHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req agentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	agent, err := h.mutateAgentUC.Create(r.Context(), principal, req.toDraft())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, agent)
}

func (h *DirectoryHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	agentID, err := GetPathID(chi.URLParam(r, "agentID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	var req agentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	agent, err := h.mutateAgentUC.Update(r.Context(), principal, agentID, req.toPatch())
	if err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, agent)
}

func (h *DirectoryHandler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	agentID, err := GetPathID(chi.URLParam(r, "agentID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	if err := h.mutateAgentUC.Delete(r.Context(), principal, agentID); err != nil {
		HandleError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
