package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type ListAgenciesService struct {
	directoryRepo port.DirectoryRepositoryPort
}

func NewListAgenciesService(directoryRepo port.DirectoryRepositoryPort) *ListAgenciesService {
	return &ListAgenciesService{directoryRepo: directoryRepo}
}

func (s *ListAgenciesService) Execute(ctx context.Context, limit, offset *int) ([]domain.Agency, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	return s.directoryRepo.ListAgencies(ctx, limit, offset)
}

type GetAgencyService struct {
	directoryRepo port.DirectoryRepositoryPort
}

func NewGetAgencyService(directoryRepo port.DirectoryRepositoryPort) *GetAgencyService {
	return &GetAgencyService{directoryRepo: directoryRepo}
}

func (s *GetAgencyService) Execute(ctx context.Context, agencyID int64) (*domain.Agency, error) {
	return s.directoryRepo.GetAgency(ctx, agencyID)
}

// MutateAgencyService covers agency writes.
type MutateAgencyService struct {
	directoryRepo port.DirectoryRepositoryPort
}

func NewMutateAgencyService(directoryRepo port.DirectoryRepositoryPort) *MutateAgencyService {
	return &MutateAgencyService{directoryRepo: directoryRepo}
}

func (s *MutateAgencyService) Create(ctx context.Context, principal domain.Principal, draft domain.AgencyDraft) (*domain.Agency, error) {
	if draft.Name == nil || *draft.Name == "" {
		return nil, domain.ValidationConflict("name is required", nil)
	}

	agency, err := s.directoryRepo.CreateAgency(ctx, draft)
	if err != nil {
		return nil, err
	}

	contextkeys.LoggerFromContext(ctx).Info("agency created", port.Fields{
		"agency_id": agency.ID,
		"user_id":   principal.UserID,
	})
	return agency, nil
}

func (s *MutateAgencyService) Update(ctx context.Context, principal domain.Principal, agencyID int64, draft domain.AgencyDraft) (*domain.Agency, error) {
	if draft.Name != nil && *draft.Name == "" {
		return nil, domain.ValidationConflict("name must not be empty", nil)
	}
	return s.directoryRepo.UpdateAgency(ctx, agencyID, draft)
}

func (s *MutateAgencyService) Delete(ctx context.Context, principal domain.Principal, agencyID int64) error {
	return s.directoryRepo.DeleteAgency(ctx, agencyID)
}

type ListAgentsService struct {
	directoryRepo port.DirectoryRepositoryPort
}

func NewListAgentsService(directoryRepo port.DirectoryRepositoryPort) *ListAgentsService {
	return &ListAgentsService{directoryRepo: directoryRepo}
}

func (s *ListAgentsService) Execute(ctx context.Context, limit, offset *int) ([]domain.Agent, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	return s.directoryRepo.ListAgents(ctx, limit, offset)
}

type GetAgentService struct {
	directoryRepo port.DirectoryRepositoryPort
}

func NewGetAgentService(directoryRepo port.DirectoryRepositoryPort) *GetAgentService {
	return &GetAgentService{directoryRepo: directoryRepo}
}

func (s *GetAgentService) Execute(ctx context.Context, agentID int64) (*domain.Agent, error) {
	return s.directoryRepo.GetAgent(ctx, agentID)
}

// MutateAgentService covers agent writes.
type MutateAgentService struct {
	directoryRepo port.DirectoryRepositoryPort
}

func NewMutateAgentService(directoryRepo port.DirectoryRepositoryPort) *MutateAgentService {
	return &MutateAgentService{directoryRepo: directoryRepo}
}

func (s *MutateAgentService) Create(ctx context.Context, principal domain.Principal, draft domain.AgentDraft) (*domain.Agent, error) {
	if draft.UserID == 0 {
		return nil, domain.ValidationConflict("user_id is required", nil)
	}

	agent, err := s.directoryRepo.CreateAgent(ctx, draft)
	if err != nil {
		return nil, err
	}

	contextkeys.LoggerFromContext(ctx).Info("agent created", port.Fields{
		"agent_id": agent.ID,
		"user_id":  principal.UserID,
	})
	return agent, nil
}

func (s *MutateAgentService) Update(ctx context.Context, principal domain.Principal, agentID int64, patch domain.AgentPatch) (*domain.Agent, error) {
	return s.directoryRepo.UpdateAgent(ctx, agentID, patch)
}

func (s *MutateAgentService) Delete(ctx context.Context, principal domain.Principal, agentID int64) error {
	return s.directoryRepo.DeleteAgent(ctx, agentID)
}
