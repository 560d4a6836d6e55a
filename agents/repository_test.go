package agents_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fieldvisit/tracker/agents"
	"github.com/fieldvisit/tracker/store"
	"github.com/fieldvisit/tracker/store/mediumfake"
	"github.com/fieldvisit/tracker/visits"
)

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.Local)

type testFixture struct {
	agents *agents.Repository
	visits *visits.Repository
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	st := store.New(mediumfake.NewFakeMedium())
	nowFunc := func() time.Time { return testNow }
	visitRepo := visits.NewRepository(st, visits.WithNowTime(nowFunc))
	agentRepo := agents.NewRepository(st, visitRepo, agents.WithNowTime(nowFunc))

	return &testFixture{agents: agentRepo, visits: visitRepo}
}

func defaultNewAgent() agents.NewAgent {
	return agents.NewAgent{
		Code:     "REP-2001",
		Name:     "Dr. Mona Hassan",
		Company:  "Bayer",
		Products: "Aspirin, Xarelto",
		Phone:    "01000000000",
		Password: "secret",
		Status:   agents.StatusActive,
	}
}

func (f *testFixture) createVisitFor(t *testing.T, agent *agents.Agent) *visits.Visit {
	t.Helper()

	created, err := f.visits.Create(visits.NewVisit{
		AgentID:      agent.ID,
		AgentName:    agent.Name,
		AgentCompany: agent.Company,
		AgentPhone:   agent.Phone,
		VisitDate:    testNow,
		Notes:        "routine visit",
	})
	require.NoError(t, err)
	return created
}

func TestCreate_GeneratesIDAndCreatedAt(t *testing.T) {
	f := setupTestFixture(t)

	created, err := f.agents.Create(defaultNewAgent())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.True(t, created.CreatedAt.Equal(testNow))
	require.Equal(t, "REP-2001", created.Code)

	all, err := f.agents.List()
	require.NoError(t, err)
	require.Len(t, all, 1)

	// The round-trip through the medium re-parses timestamps, so compare
	// them with Equal and the rest of the record field-wise.
	got := all[0]
	require.True(t, created.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = created.CreatedAt
	require.Equal(t, *created, got)
}

func TestCreate_RejectsDuplicateCode(t *testing.T) {
	f := setupTestFixture(t)

	first, err := f.agents.Create(defaultNewAgent())
	require.NoError(t, err)

	duplicate := defaultNewAgent()
	duplicate.Name = "Someone Else"
	_, err = f.agents.Create(duplicate)
	require.ErrorIs(t, err, agents.DuplicateCodeErr)

	// The failed creation must leave the store unchanged.
	all, err := f.agents.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, first.ID, all[0].ID)
}

func TestCreate_CodeMatchIsCaseSensitive(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.agents.Create(defaultNewAgent())
	require.NoError(t, err)

	lower := defaultNewAgent()
	lower.Code = "rep-2001"
	_, err = f.agents.Create(lower)
	require.NoError(t, err)

	all, err := f.agents.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	f := setupTestFixture(t)

	codes := []string{"REP-1", "REP-2", "REP-3"}
	for _, code := range codes {
		newAgent := defaultNewAgent()
		newAgent.Code = code
		_, err := f.agents.Create(newAgent)
		require.NoError(t, err)
	}

	all, err := f.agents.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, code := range codes {
		require.Equal(t, code, all[i].Code)
	}
}

func TestGetByCode(t *testing.T) {
	f := setupTestFixture(t)

	created, err := f.agents.Create(defaultNewAgent())
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		agent, err := f.agents.GetByCode("REP-2001")
		require.NoError(t, err)
		require.Equal(t, created.ID, agent.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := f.agents.GetByCode("REP-9999")
		require.ErrorIs(t, err, agents.AgentNotFoundErr)
	})
}

func TestDelete_CascadesIntoVisits(t *testing.T) {
	f := setupTestFixture(t)

	doomed, err := f.agents.Create(defaultNewAgent())
	require.NoError(t, err)

	surviving := defaultNewAgent()
	surviving.Code = "REP-2002"
	survivor, err := f.agents.Create(surviving)
	require.NoError(t, err)

	f.createVisitFor(t, doomed)
	f.createVisitFor(t, doomed)
	keptVisit := f.createVisitFor(t, survivor)

	require.NoError(t, f.agents.Delete(doomed.ID))

	agentList, err := f.agents.List()
	require.NoError(t, err)
	require.Len(t, agentList, 1)
	require.Equal(t, survivor.ID, agentList[0].ID)

	// No orphaned visits may remain; unrelated visits stay untouched.
	visitList, err := f.visits.List()
	require.NoError(t, err)
	require.Len(t, visitList, 1)
	require.Equal(t, keptVisit.ID, visitList[0].ID)
}

func TestDelete_IsIdempotent(t *testing.T) {
	f := setupTestFixture(t)

	created, err := f.agents.Create(defaultNewAgent())
	require.NoError(t, err)

	require.NoError(t, f.agents.Delete(created.ID))
	require.NoError(t, f.agents.Delete(created.ID))
	require.NoError(t, f.agents.Delete("no-such-id"))
}
