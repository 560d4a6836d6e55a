package sessions

// Role classifies the signed-in account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleAgent Role = "AGENT"
)

// Session is the single currently-authenticated identity. At most one exists
// at a time, persisted in its own storage slot so a restart of the consuming
// application restores it without re-validating credentials.
type Session struct {
	ID       string `json:"id"`       // "admin" for the administrator, otherwise the agent id
	Username string `json:"username"` // The agent's login code, or "admin"
	Name     string `json:"name"`     // Display name
	Role     Role   `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
