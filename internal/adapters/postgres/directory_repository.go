package postgres_adapter

import (
	"context"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
)

// DirectoryRepository implements agency and agent persistence.
type DirectoryRepository struct {
	pool   DB
	logger port.LoggerPort
}

func NewDirectoryRepository(pool DB, logger port.LoggerPort) *DirectoryRepository {
	return &DirectoryRepository{
		pool:   pool,
		logger: logger.WithFields(port.Fields{"component": "directory_repository"}),
	}
}

const agencyColumns = `id, name, org_number, phone, website, created_at, updated_at`

func scanAgency(row pgx.Row) (*domain.Agency, error) {
	var a domain.Agency
	err := row.Scan(&a.ID, &a.Name, &a.OrgNumber, &a.Phone, &a.Website, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DirectoryRepository) ListAgencies(ctx context.Context, limit, offset *int) ([]domain.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies ORDER BY name, id`
	args := make([]interface{}, 0)
	args, query = appendPage(args, query, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "agency")
	}
	defer rows.Close()

	agencies := make([]domain.Agency, 0)
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			return nil, translateError(err, "agency")
		}
		agencies = append(agencies, *agency)
	}
	return agencies, rows.Err()
}

func (r *DirectoryRepository) GetAgency(ctx context.Context, agencyID int64) (*domain.Agency, error) {
	agency, err := scanAgency(r.pool.QueryRow(ctx,
		`SELECT `+agencyColumns+` FROM agencies WHERE id = $1`, agencyID))
	if err != nil {
		return nil, translateError(err, "agency")
	}
	return agency, nil
}

func (r *DirectoryRepository) CreateAgency(ctx context.Context, draft domain.AgencyDraft) (*domain.Agency, error) {
	const query = `
		INSERT INTO agencies (name, org_number, phone, website)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + agencyColumns

	agency, err := scanAgency(r.pool.QueryRow(ctx, query,
		draft.Name, draft.OrgNumber, draft.Phone, draft.Website))
	if err != nil {
		return nil, translateError(err, "agency")
	}
	return agency, nil
}

func (r *DirectoryRepository) UpdateAgency(ctx context.Context, agencyID int64, draft domain.AgencyDraft) (*domain.Agency, error) {
	const query = `
		UPDATE agencies
		SET name       = COALESCE($1, name),
		    org_number = COALESCE($2, org_number),
		    phone      = COALESCE($3, phone),
		    website    = COALESCE($4, website),
		    updated_at = NOW()
		WHERE id = $5
		RETURNING ` + agencyColumns

	agency, err := scanAgency(r.pool.QueryRow(ctx, query,
		draft.Name, draft.OrgNumber, draft.Phone, draft.Website, agencyID))
	if err != nil {
		return nil, translateError(err, "agency")
	}
	return agency, nil
}

func (r *DirectoryRepository) DeleteAgency(ctx context.Context, agencyID int64) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM agent_agencies WHERE agency_id = $1`, agencyID); err != nil {
			return err
		}
		var deletedID int64
		return tx.QueryRow(ctx,
			`DELETE FROM agencies WHERE id = $1 RETURNING id`, agencyID).Scan(&deletedID)
	})
	if err != nil {
		return translateError(err, "agency")
	}
	return nil
}

const agentSelect = `
	SELECT a.id,
	       u.first_name,
	       u.last_name,
	       u.email,
	       u.phone,
	       a.title,
	       a.license_number,
	       a.bio,
	       ag.name AS agency
	FROM agents a
	JOIN users u ON a.user_id = u.id
	LEFT JOIN agent_agencies aa ON a.id = aa.agent_id
	LEFT JOIN agencies ag ON aa.agency_id = ag.id`

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var a domain.Agent
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.Title, &a.LicenseNumber, &a.Bio, &a.Agency)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DirectoryRepository) ListAgents(ctx context.Context, limit, offset *int) ([]domain.Agent, error) {
	query := agentSelect + "\n\tORDER BY a.id"
	args := make([]interface{}, 0)
	args, query = appendPage(args, query, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "agent")
	}
	defer rows.Close()

	agents := make([]domain.Agent, 0)
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, translateError(err, "agent")
		}
		agents = append(agents, *agent)
	}
	return agents, rows.Err()
}

func (r *DirectoryRepository) GetAgent(ctx context.Context, agentID int64) (*domain.Agent, error) {
	agent, err := scanAgent(r.pool.QueryRow(ctx, agentSelect+"\n\tWHERE a.id = $1", agentID))
	if err != nil {
		return nil, translateError(err, "agent")
	}
	return agent, nil
}

func (r *DirectoryRepository) CreateAgent(ctx context.Context, draft domain.AgentDraft) (*domain.Agent, error) {
	var agentID int64

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `
			INSERT INTO agents (user_id, title, license_number, bio)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			draft.UserID, draft.Title, draft.LicenseNumber, draft.Bio,
		).Scan(&agentID); err != nil {
			return err
		}

		if draft.AgencyID != nil {
			if _, err := tx.Exec(ctx,
				`INSERT INTO agent_agencies (agent_id, agency_id) VALUES ($1, $2)`,
				agentID, *draft.AgencyID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err, "agent")
	}

	return r.GetAgent(ctx, agentID)
}

func (r *DirectoryRepository) UpdateAgent(ctx context.Context, agentID int64, patch domain.AgentPatch) (*domain.Agent, error) {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(ctx, `
			UPDATE agents
			SET user_id        = COALESCE($1, user_id),
			    title          = COALESCE($2, title),
			    license_number = COALESCE($3, license_number),
			    bio            = COALESCE($4, bio)
			WHERE id = $5
			RETURNING id`,
			patch.UserID, patch.Title, patch.LicenseNumber, patch.Bio, agentID,
		).Scan(&id); err != nil {
			return err
		}

		if patch.AgencyID != nil {
			_, err := tx.Exec(ctx, `
				INSERT INTO agent_agencies (agent_id, agency_id)
				VALUES ($1, $2)
				ON CONFLICT (agent_id) DO UPDATE SET agency_id = EXCLUDED.agency_id`,
				agentID, *patch.AgencyID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err, "agent")
	}

	return r.GetAgent(ctx, agentID)
}

func (r *DirectoryRepository) DeleteAgent(ctx context.Context, agentID int64) error {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM agent_agencies WHERE agent_id = $1`, agentID); err != nil {
			return err
		}
		var deletedID int64
		return tx.QueryRow(ctx,
			`DELETE FROM agents WHERE id = $1 RETURNING id`, agentID).Scan(&deletedID)
	})
	if err != nil {
		return translateError(err, "agent")
	}
	return nil
}
