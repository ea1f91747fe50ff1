package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type ListAgenciesUseCase interface {
	Execute(ctx context.Context, limit, offset *int) ([]domain.Agency, error)
}

type GetAgencyUseCase interface {
	Execute(ctx context.Context, agencyID int64) (*domain.Agency, error)
}

type MutateAgencyUseCase interface {
	Create(ctx context.Context, principal domain.Principal, draft domain.AgencyDraft) (*domain.Agency, error)
	Update(ctx context.Context, principal domain.Principal, agencyID int64, draft domain.AgencyDraft) (*domain.Agency, error)
	Delete(ctx context.Context, principal domain.Principal, agencyID int64) error
}

type ListAgentsUseCase interface {
	Execute(ctx context.Context, limit, offset *int) ([]domain.Agent, error)
}

type GetAgentUseCase interface {
	Execute(ctx context.Context, agentID int64) (*domain.Agent, error)
}

type MutateAgentUseCase interface {
	Create(ctx context.Context, principal domain.Principal, draft domain.AgentDraft) (*domain.Agent, error)
	Update(ctx context.Context, principal domain.Principal, agentID int64, patch domain.AgentPatch) (*domain.Agent, error)
	Delete(ctx context.Context, principal domain.Principal, agentID int64) error
}
