package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// DirectoryRepositoryPort covers agencies and agents. Deletes remove link
// rows before the primary row; a missing primary row is a not-found.
type DirectoryRepositoryPort interface {
	ListAgencies(ctx context.Context, limit, offset *int) ([]domain.Agency, error)
	GetAgency(ctx context.Context, agencyID int64) (*domain.Agency, error)
	CreateAgency(ctx context.Context, draft domain.AgencyDraft) (*domain.Agency, error)
	UpdateAgency(ctx context.Context, agencyID int64, draft domain.AgencyDraft) (*domain.Agency, error)
	DeleteAgency(ctx context.Context, agencyID int64) error

	ListAgents(ctx context.Context, limit, offset *int) ([]domain.Agent, error)
	GetAgent(ctx context.Context, agentID int64) (*domain.Agent, error)
	CreateAgent(ctx context.Context, draft domain.AgentDraft) (*domain.Agent, error)
	UpdateAgent(ctx context.Context, agentID int64, patch domain.AgentPatch) (*domain.Agent, error)
	DeleteAgent(ctx context.Context, agentID int64) error
}
