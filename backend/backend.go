// Package backend wires the storage medium, repositories, auth and stats
// services into the single facade consumed by user interfaces. All
// operations are synchronous request/response; nothing streams, nothing is
// cancellable. Writes are whole-collection snapshots with no cross-process
// locking, so the medium assumes one active writer (two independent
// processes racing on the same medium is last-writer-wins).
package backend

import (
	"time"

	"github.com/pkg/errors"

	"github.com/fieldvisit/tracker/agents"
	"github.com/fieldvisit/tracker/auth"
	"github.com/fieldvisit/tracker/sessions"
	"github.com/fieldvisit/tracker/stats"
	"github.com/fieldvisit/tracker/store"
	"github.com/fieldvisit/tracker/visits"
)

// Service is the boundary contract consumed by the (out of scope) UI layer.
type Service struct {
	agents  *agents.Repository
	visits  *visits.Repository
	auth    *auth.Service
	stats   *stats.Service
	latency time.Duration
}

type serviceSettings struct {
	latency time.Duration
	nowTime func() time.Time
}

// ServiceOption modifies the service configuration.
type ServiceOption func(*serviceSettings)

// WithLatency makes every data operation sleep before executing, simulating
// network delay for UI pacing; session restore stays immediate. The default
// is zero; correctness never depends on it.
func WithLatency(d time.Duration) ServiceOption {
	return func(s *serviceSettings) {
		s.latency = d
	}
}

// WithNowTime sets the clock used for createdAt stamping and "today"
// aggregation (primarily for testing).
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *serviceSettings) {
		s.nowTime = nowFunc
	}
}

// New builds the full service over the given store, seeding the demo
// dataset on a fresh medium.
func New(st *store.Store, admin auth.AdminCredentials, options ...ServiceOption) (*Service, error) {
	if st == nil {
		return nil, errors.New("[New] store is required")
	}

	settings := serviceSettings{nowTime: time.Now}
	for _, opt := range options {
		opt(&settings)
	}

	if err := seedDemoData(st, settings.nowTime); err != nil {
		return nil, err
	}

	visitRepo := visits.NewRepository(st, visits.WithNowTime(settings.nowTime))
	agentRepo := agents.NewRepository(st, visitRepo, agents.WithNowTime(settings.nowTime))
	authService, err := auth.NewService(agentRepo, st, admin)
	if err != nil {
		return nil, err
	}

	return &Service{
		agents:  agentRepo,
		visits:  visitRepo,
		auth:    authService,
		stats:   stats.NewService(agentRepo, visitRepo, stats.WithNowTime(settings.nowTime)),
		latency: settings.latency,
	}, nil
}

func (s *Service) pause() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

func (s *Service) Login(username, password string) (*auth.LoginResult, error) {
	s.pause()
	return s.auth.Login(username, password)
}

func (s *Service) Logout() error {
	s.pause()
	return s.auth.Logout()
}

// GetSession restores the persisted session, if any. Returns nil, nil when
// nobody is logged in. Called at process start, so it never pauses.
func (s *Service) GetSession() (*sessions.Session, error) {
	return s.auth.CurrentSession()
}

func (s *Service) GetAgents() ([]agents.Agent, error) {
	s.pause()
	return s.agents.List()
}

// GetAgentByCode resolves an agent from its login code. Callers creating a
// visit resolve the agent first and copy the snapshot fields from it.
func (s *Service) GetAgentByCode(code string) (*agents.Agent, error) {
	return s.agents.GetByCode(code)
}

func (s *Service) CreateAgent(newAgent agents.NewAgent) (*agents.Agent, error) {
	s.pause()
	return s.agents.Create(newAgent)
}

// DeleteAgent removes the agent and cascades into its visits.
func (s *Service) DeleteAgent(id string) error {
	s.pause()
	return s.agents.Delete(id)
}

func (s *Service) GetVisits() ([]visits.Visit, error) {
	s.pause()
	return s.visits.List()
}

// GetVisitsByAgent narrows the listing to one agent; used by the agent role
// so representatives only see their own reports.
func (s *Service) GetVisitsByAgent(agentID string) ([]visits.Visit, error) {
	s.pause()
	return s.visits.ListByAgent(agentID)
}

// SearchVisits filters by free text over the agent snapshot fields and
// optionally by calendar day.
func (s *Service) SearchVisits(term string, day time.Time) ([]visits.Visit, error) {
	s.pause()
	return s.visits.Search(term, day)
}

func (s *Service) CreateVisit(newVisit visits.NewVisit) (*visits.Visit, error) {
	s.pause()
	return s.visits.Create(newVisit)
}

func (s *Service) DeleteVisit(id string) error {
	s.pause()
	return s.visits.Delete(id)
}

func (s *Service) GetStats() (stats.Dashboard, error) {
	s.pause()
	return s.stats.Compute()
}

// GetDailySeries returns the visits-per-day chart data for the trailing
// window, today last.
func (s *Service) GetDailySeries(days int) ([]stats.DayCount, error) {
	s.pause()
	return s.stats.DailySeries(days)
}
