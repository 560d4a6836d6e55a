package backend

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/fieldvisit/tracker/agents"
	"github.com/fieldvisit/tracker/store"
	"github.com/fieldvisit/tracker/visits"
)

// seedDemoData populates an empty storage medium with a small demo dataset
// so the system is usable out of the box. Each slot is seeded only when it
// is absent; existing data is never overwritten, so seeding happens at most
// once per fresh medium.
func seedDemoData(st *store.Store, now func() time.Time) error {
	var existingAgents []agents.Agent
	ok, err := st.ReadJSON(store.SlotAgents, &existingAgents)
	if err != nil {
		return errors.Wrap(err, "[seedDemoData] probing agents slot")
	}
	if !ok {
		demoAgents := []agents.Agent{
			{
				ID:        "1",
				Code:      "REP-1001",
				Name:      "Dr. Ahmed Ali",
				Company:   "Pfizer",
				Products:  "Lipitor, Norvasc, Xanax",
				Phone:     "01012345678",
				Password:  "password123",
				Status:    agents.StatusActive,
				CreatedAt: now(),
			},
			{
				ID:        "2",
				Code:      "REP-1002",
				Name:      "Dr. Sara Samir",
				Company:   "Novartis",
				Products:  "Voltaren, Cataflam, Diovan",
				Phone:     "01123456789",
				Password:  "password123",
				Status:    agents.StatusInactive,
				CreatedAt: now(),
			},
		}
		if err := st.WriteJSON(store.SlotAgents, demoAgents); err != nil {
			return errors.Wrap(err, "[seedDemoData] seeding agents")
		}
		log.Info().Int("agents", len(demoAgents)).Msg("seeded demo agents")
	}

	var existingVisits []visits.Visit
	ok, err = st.ReadJSON(store.SlotVisits, &existingVisits)
	if err != nil {
		return errors.Wrap(err, "[seedDemoData] probing visits slot")
	}
	if !ok {
		demoVisits := []visits.Visit{
			{
				ID:           "101",
				AgentID:      "1",
				AgentName:    "Dr. Ahmed Ali",
				AgentCompany: "Pfizer",
				AgentPhone:   "01012345678",
				VisitDate:    now(),
				Notes:        "Presented the new blood pressure range. Free samples were left and a follow-up was requested for next month.",
				Location:     &visits.Location{Lat: 30.0444, Lng: 31.2357},
				CreatedAt:    now(),
			},
		}
		if err := st.WriteJSON(store.SlotVisits, demoVisits); err != nil {
			return errors.Wrap(err, "[seedDemoData] seeding visits")
		}
		log.Info().Int("visits", len(demoVisits)).Msg("seeded demo visits")
	}

	return nil
}
