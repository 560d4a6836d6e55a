package auth

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/fieldvisit/tracker/agents"
	"github.com/fieldvisit/tracker/sessions"
	"github.com/fieldvisit/tracker/store"
)

const adminDisplayName = "Administrator"

// LoginResult carries the opaque token handed to the caller together with
// the established session. The token is a static marker, never verified
// anywhere; the session slot is the actual source of truth for "who is
// logged in". This mirrors the credential scheme this system inherited and
// is intentionally left unhardened.
type LoginResult struct {
	Token string            `json:"token"`
	User  *sessions.Session `json:"user"`
}

// AdminCredentials is the single hard-wired administrator account checked
// ahead of the agent repository.
type AdminCredentials struct {
	Username string
	Password string
}

// Service validates credentials and owns the single active session.
type Service struct {
	agents *agents.Repository
	store  *store.Store
	admin  AdminCredentials
}

func NewService(agentRepo *agents.Repository, st *store.Store, admin AdminCredentials) (*Service, error) {
	if agentRepo == nil {
		return nil, errors.New("[NewService] agent repository is required")
	}
	if st == nil {
		return nil, errors.New("[NewService] store is required")
	}
	return &Service{
		agents: agentRepo,
		store:  st,
		admin:  admin,
	}, nil
}

// Login checks the administrator credentials first, then falls back to an
// exact code/password match against the agent repository. A successful
// login persists the session, replacing any previous one. There is no
// lockout and no rate limiting.
func (s *Service) Login(username, password string) (*LoginResult, error) {
	if username == s.admin.Username && password == s.admin.Password {
		session := &sessions.Session{
			ID:       "admin",
			Username: s.admin.Username,
			Name:     adminDisplayName,
			Role:     sessions.RoleAdmin,
		}
		if err := s.store.WriteJSON(store.SlotSession, session); err != nil {
			return nil, errors.Wrap(err, "[Login] persisting admin session")
		}
		return &LoginResult{Token: "demo-token-admin", User: session}, nil
	}

	agent, err := s.agents.GetByCode(username)
	if err != nil {
		if errors.Is(err, agents.AgentNotFoundErr) {
			return nil, InvalidCredentialsErr
		}
		return nil, errors.Wrap(err, "[Login] looking up agent")
	}
	if agent.Password != password {
		return nil, InvalidCredentialsErr
	}
	if agent.Status == agents.StatusInactive {
		return nil, AccountDisabledErr
	}

	session := &sessions.Session{
		ID:       agent.ID,
		Username: agent.Code,
		Name:     agent.Name,
		Role:     sessions.RoleAgent,
	}
	if err := s.store.WriteJSON(store.SlotSession, session); err != nil {
		return nil, errors.Wrap(err, "[Login] persisting agent session")
	}

	log.Debug().Str("username", username).Str("role", string(session.Role)).Msg("login succeeded")
	return &LoginResult{Token: "demo-token-agent-" + agent.ID, User: session}, nil
}

// Logout clears the persisted session. Logging out while anonymous is not
// an error.
func (s *Service) Logout() error {
	if err := s.store.Remove(store.SlotSession); err != nil {
		return errors.Wrap(err, "[Logout] clearing session")
	}
	return nil
}

// CurrentSession reads the persisted session, if any. The session is
// trusted as read, credentials are not re-validated; this is what keeps a
// user logged in across restarts of the consuming application.
func (s *Service) CurrentSession() (*sessions.Session, error) {
	var session sessions.Session
	ok, err := s.store.ReadJSON(store.SlotSession, &session)
	if err != nil {
		return nil, errors.Wrap(err, "[CurrentSession] reading session")
	}
	if !ok {
		return nil, nil
	}
	return &session, nil
}
