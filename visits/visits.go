package visits

import (
	"time"
)

// Location is an optional geotag captured when the visit was recorded.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Visit is a single recorded field interaction. The agent fields are a
// snapshot taken at creation time so historical reports stay stable even if
// the agent record later changes or is removed. The repository never
// re-derives them.
type Visit struct {
	ID           string    `json:"id"`
	AgentID      string    `json:"agentId"` // Reference used for cascade delete and per-agent filtering
	AgentName    string    `json:"agentName"`
	AgentCompany string    `json:"agentCompany"`
	AgentPhone   string    `json:"agentPhone"`
	VisitDate    time.Time `json:"visitDate"` // Reported event time, chosen by the creator
	Notes        string    `json:"notes"`
	PhotoURL     string    `json:"photoUrl,omitempty"` // Inline-encoded image, treated as an opaque string
	Location     *Location `json:"location,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewVisit holds the caller-supplied fields for Create. The caller is
// expected to have resolved AgentID against a real agent and copied the
// snapshot fields from it.
type NewVisit struct {
	AgentID      string
	AgentName    string
	AgentCompany string
	AgentPhone   string
	VisitDate    time.Time
	Notes        string
	PhotoURL     string
	Location     *Location
}
