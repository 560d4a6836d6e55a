package visits

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/fieldvisit/tracker/store"
)

// Repository provides create/list/delete over the visits slot. There is no
// update operation. Each write persists the full collection snapshot.
type Repository struct {
	store   *store.Store
	nowTime func() time.Time
}

// RepositoryOption modifies a Repository instance.
type RepositoryOption func(*Repository)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) RepositoryOption {
	return func(r *Repository) {
		r.nowTime = nowFunc
	}
}

func NewRepository(st *store.Store, options ...RepositoryOption) *Repository {
	r := &Repository{
		store:   st,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// List returns all visits in storage order. Visits are prepended on
// creation, so storage order is newest-first.
func (r *Repository) List() ([]Visit, error) {
	var all []Visit
	if _, err := r.store.ReadJSON(store.SlotVisits, &all); err != nil {
		return nil, errors.Wrap(err, "[Repository List] loading visits")
	}
	return all, nil
}

// ListByAgent returns the visits recorded against one agent, preserving
// storage order.
func (r *Repository) ListByAgent(agentID string) ([]Visit, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	filtered := make([]Visit, 0, len(all))
	for _, v := range all {
		if v.AgentID == agentID {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// Search filters visits by a free-text term matched case-insensitively
// against the agent snapshot fields, and optionally by the calendar day of
// the visit date (local time). A zero day means no date filter; an empty
// term matches everything.
func (r *Repository) Search(term string, day time.Time) ([]Visit, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	matched := make([]Visit, 0, len(all))
	for _, v := range all {
		if term != "" &&
			!strings.Contains(strings.ToLower(v.AgentName), term) &&
			!strings.Contains(strings.ToLower(v.AgentCompany), term) &&
			!strings.Contains(v.AgentPhone, term) {
			continue
		}
		if !day.IsZero() {
			y1, m1, d1 := v.VisitDate.Local().Date()
			y2, m2, d2 := day.Local().Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		matched = append(matched, v)
	}
	return matched, nil
}

// Create generates the id, stamps createdAt, validates the notes and
// prepends the new visit so the stored collection stays newest-first.
func (r *Repository) Create(newVisit NewVisit) (*Visit, error) {
	if strings.TrimSpace(newVisit.Notes) == "" {
		return nil, EmptyNotesErr
	}

	all, err := r.List()
	if err != nil {
		return nil, err
	}

	visit := Visit{
		ID:           uuid.New().String(),
		AgentID:      newVisit.AgentID,
		AgentName:    newVisit.AgentName,
		AgentCompany: newVisit.AgentCompany,
		AgentPhone:   newVisit.AgentPhone,
		VisitDate:    newVisit.VisitDate,
		Notes:        newVisit.Notes,
		PhotoURL:     newVisit.PhotoURL,
		Location:     newVisit.Location,
		CreatedAt:    r.nowTime(),
	}

	all = append([]Visit{visit}, all...)
	if err := r.store.WriteJSON(store.SlotVisits, all); err != nil {
		return nil, errors.Wrap(err, "[Repository Create] persisting visits")
	}

	log.Debug().Str("visit_id", visit.ID).Str("agent_id", visit.AgentID).Msg("visit created")
	return &visit, nil
}

// Delete removes the visit with the given id. Deleting an id that is not
// present is not an error.
func (r *Repository) Delete(id string) error {
	all, err := r.List()
	if err != nil {
		return err
	}

	kept := make([]Visit, 0, len(all))
	for _, v := range all {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(all) {
		return nil
	}

	if err := r.store.WriteJSON(store.SlotVisits, kept); err != nil {
		return errors.Wrap(err, "[Repository Delete] persisting visits")
	}
	return nil
}

// DeleteByAgent removes every visit recorded against the given agent. It is
// the cascade entry point used when an agent is deleted.
func (r *Repository) DeleteByAgent(agentID string) error {
	all, err := r.List()
	if err != nil {
		return err
	}

	kept := make([]Visit, 0, len(all))
	for _, v := range all {
		if v.AgentID != agentID {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(all) {
		return nil
	}

	if err := r.store.WriteJSON(store.SlotVisits, kept); err != nil {
		return errors.Wrap(err, "[Repository DeleteByAgent] persisting visits")
	}

	log.Debug().Str("agent_id", agentID).Int("removed", len(all)-len(kept)).Msg("cascaded visit delete")
	return nil
}
