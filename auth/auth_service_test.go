package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldvisit/tracker/agents"
	"github.com/fieldvisit/tracker/auth"
	"github.com/fieldvisit/tracker/sessions"
	"github.com/fieldvisit/tracker/store"
	"github.com/fieldvisit/tracker/store/mediumfake"
	"github.com/fieldvisit/tracker/visits"
)

const (
	testAgentCode     = "REP-1001"
	testAgentPassword = "password123"
)

type testFixture struct {
	store   *store.Store
	agents  *agents.Repository
	service *auth.Service
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	st := store.New(mediumfake.NewFakeMedium())
	visitRepo := visits.NewRepository(st)
	agentRepo := agents.NewRepository(st, visitRepo)

	service, err := auth.NewService(agentRepo, st, auth.AdminCredentials{
		Username: "admin",
		Password: "admin",
	})
	require.NoError(t, err)

	return &testFixture{store: st, agents: agentRepo, service: service}
}

func (f *testFixture) createTestAgent(t *testing.T, status agents.Status) *agents.Agent {
	t.Helper()

	created, err := f.agents.Create(agents.NewAgent{
		Code:     testAgentCode,
		Name:     "Dr. Ahmed Ali",
		Company:  "Pfizer",
		Phone:    "01012345678",
		Password: testAgentPassword,
		Status:   status,
	})
	require.NoError(t, err)
	return created
}

func TestLogin_Admin(t *testing.T) {
	f := setupTestFixture(t)

	result, err := f.service.Login("admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, sessions.RoleAdmin, result.User.Role)
	require.Equal(t, "admin", result.User.Username)
	require.True(t, result.User.IsAdmin())
}

func TestLogin_ActiveAgent(t *testing.T) {
	f := setupTestFixture(t)
	agent := f.createTestAgent(t, agents.StatusActive)

	result, err := f.service.Login(testAgentCode, testAgentPassword)
	require.NoError(t, err)
	require.Equal(t, sessions.RoleAgent, result.User.Role)
	require.Equal(t, agent.ID, result.User.ID)
	require.Equal(t, testAgentCode, result.User.Username)
	require.Equal(t, agent.Name, result.User.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := setupTestFixture(t)
	f.createTestAgent(t, agents.StatusActive)

	_, err := f.service.Login(testAgentCode, "wrong")
	require.ErrorIs(t, err, auth.InvalidCredentialsErr)

	// A failed login must not establish a session.
	session, err := f.service.CurrentSession()
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestLogin_UnknownUsername(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.Login("REP-9999", "whatever")
	require.ErrorIs(t, err, auth.InvalidCredentialsErr)
}

func TestLogin_InactiveAgent(t *testing.T) {
	f := setupTestFixture(t)
	f.createTestAgent(t, agents.StatusInactive)

	_, err := f.service.Login(testAgentCode, testAgentPassword)
	require.ErrorIs(t, err, auth.AccountDisabledErr)

	session, err := f.service.CurrentSession()
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestLogin_ReplacesPreviousSession(t *testing.T) {
	f := setupTestFixture(t)
	f.createTestAgent(t, agents.StatusActive)

	_, err := f.service.Login("admin", "admin")
	require.NoError(t, err)
	_, err = f.service.Login(testAgentCode, testAgentPassword)
	require.NoError(t, err)

	session, err := f.service.CurrentSession()
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, sessions.RoleAgent, session.Role)
}

func TestCurrentSession_SurvivesServiceRestart(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.Login("admin", "admin")
	require.NoError(t, err)

	// A new service over the same medium restores the session without
	// re-validating credentials.
	restarted, err := auth.NewService(f.agents, f.store, auth.AdminCredentials{
		Username: "admin",
		Password: "admin",
	})
	require.NoError(t, err)

	session, err := restarted.CurrentSession()
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, "admin", session.Username)
	require.Equal(t, sessions.RoleAdmin, session.Role)
}

func TestLogout(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.Login("admin", "admin")
	require.NoError(t, err)
	require.NoError(t, f.service.Logout())

	session, err := f.service.CurrentSession()
	require.NoError(t, err)
	require.Nil(t, session)

	// Logging out while anonymous is fine.
	require.NoError(t, f.service.Logout())
}
