package domain

import "time"

// Agency is a brokerage entity, referenced by zero or more agents through
// the agent_agencies link table.
type Agency struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	OrgNumber *string    `json:"org_number"`
	Phone     *string    `json:"phone"`
	Website   *string    `json:"website"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// AgencyDraft creates an agency; nil fields in patch form keep current values.
type AgencyDraft struct {
	Name      *string
	OrgNumber *string
	Phone     *string
	Website   *string
}

// Agent is the profile of a user acting as a listing agent. Agency is the
// optional association resolved through agent_agencies.
type Agent struct {
	ID            int64   `json:"id"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	Title         *string `json:"title"`
	LicenseNumber *string `json:"license_number"`
	Bio           *string `json:"bio"`
	Agency        *string `json:"agency"`
}

// AgentDraft creates an agent profile for an existing user. A non-nil
// AgencyID also creates the agency link row.
type AgentDraft struct {
	UserID        int64
	AgencyID      *int64
	Title         *string
	LicenseNumber *string
	Bio           *string
}

// AgentPatch updates agent scalars; a non-nil AgencyID re-points the link.
type AgentPatch struct {
	UserID        *int64
	AgencyID      *int64
	Title         *string
	LicenseNumber *string
	Bio           *string
}
