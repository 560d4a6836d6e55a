package stats

import (
	"time"

	"github.com/fieldvisit/tracker/agents"
	"github.com/fieldvisit/tracker/visits"
)

// Dashboard holds the derived counters shown on the dashboard. All values
// are recomputed on every call by scanning the two repositories; nothing is
// cached, recomputation is linear in a small dataset.
type Dashboard struct {
	TotalAgents  int `json:"totalAgents"`
	TotalVisits  int `json:"totalVisits"`
	VisitsToday  int `json:"visitsToday"`
	ActiveAgents int `json:"activeAgents"`
}

// DayCount is one point of the visits-per-day series.
type DayCount struct {
	Date   string `json:"date"` // MM/DD
	Visits int    `json:"visits"`
}

// Service derives dashboard aggregates from the repositories. It is
// stateless and side-effect free.
type Service struct {
	agents  *agents.Repository
	visits  *visits.Repository
	nowTime func() time.Time
}

// ServiceOption modifies a Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

func NewService(agentRepo *agents.Repository, visitRepo *visits.Repository, options ...ServiceOption) *Service {
	s := &Service{
		agents:  agentRepo,
		visits:  visitRepo,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Compute scans both repositories and returns the current counters.
// "Today" means the same calendar day as the service clock, in local time.
func (s *Service) Compute() (Dashboard, error) {
	agentList, err := s.agents.List()
	if err != nil {
		return Dashboard{}, err
	}
	visitList, err := s.visits.List()
	if err != nil {
		return Dashboard{}, err
	}

	now := s.nowTime()
	dashboard := Dashboard{
		TotalAgents: len(agentList),
		TotalVisits: len(visitList),
	}
	for _, v := range visitList {
		if sameDay(v.VisitDate, now) {
			dashboard.VisitsToday++
		}
	}
	for _, a := range agentList {
		if a.Status == agents.StatusActive {
			dashboard.ActiveAgents++
		}
	}
	return dashboard, nil
}

// DailySeries returns visit counts per calendar day for the trailing days
// window, oldest first, today last. A non-positive window yields an empty
// series.
func (s *Service) DailySeries(days int) ([]DayCount, error) {
	if days <= 0 {
		return []DayCount{}, nil
	}

	visitList, err := s.visits.List()
	if err != nil {
		return nil, err
	}

	now := s.nowTime()
	series := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := 0
		for _, v := range visitList {
			if sameDay(v.VisitDate, day) {
				count++
			}
		}
		series = append(series, DayCount{
			Date:   day.Local().Format("01/02"),
			Visits: count,
		})
	}
	return series, nil
}
