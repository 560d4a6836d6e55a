package agents

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/fieldvisit/tracker/store"
	"github.com/fieldvisit/tracker/visits"
)

// Repository provides create/list/delete over the agents slot and owns the
// unique-code invariant. Deleting an agent cascades into the visit
// repository: the agent write and the visit write are two sequential slot
// writes, so a crash between them is the only window where an orphaned visit
// is observable. That fault model is accepted; there is no transaction log.
type Repository struct {
	store   *store.Store
	visits  *visits.Repository
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

func NewRepository(st *store.Store, visitRepo *visits.Repository, options ...RepositoryOption) *Repository {
	r := &Repository{
		store:   st,
		visits:  visitRepo,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// List returns all agents in insertion order.
func (r *Repository) List() ([]Agent, error) {
	var all []Agent
	if _, err := r.store.ReadJSON(store.SlotAgents, &all); err != nil {
		return nil, errors.Wrap(err, "[Repository List] loading agents")
	}
	return all, nil
}

// GetByCode looks up an agent by its login code (case-sensitive exact
// match). Returns AgentNotFoundErr when no agent carries the code.
func (r *Repository) GetByCode(code string) (*Agent, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Code == code {
			return &all[i], nil
		}
	}
	return nil, AgentNotFoundErr
}

// Create generates the id, stamps createdAt and appends the new agent.
// Fails with DuplicateCodeErr when the code is already taken, leaving the
// store unchanged.
func (r *Repository) Create(newAgent NewAgent) (*Agent, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}

	for _, a := range all {
		if a.Code == newAgent.Code {
			return nil, DuplicateCodeErr
		}
	}

	agent := Agent{
		ID:        uuid.New().String(),
		Code:      newAgent.Code,
		Name:      newAgent.Name,
		Company:   newAgent.Company,
		Products:  newAgent.Products,
		Phone:     newAgent.Phone,
		Password:  newAgent.Password,
		Status:    newAgent.Status,
		CreatedAt: r.nowTime(),
	}

	all = append(all, agent)
	if err := r.store.WriteJSON(store.SlotAgents, all); err != nil {
		return nil, errors.Wrap(err, "[Repository Create] persisting agents")
	}

	log.Debug().Str("agent_id", agent.ID).Str("code", agent.Code).Msg("agent created")
	return &agent, nil
}

// Delete removes the agent with the given id and every visit recorded
// against it. Deleting an id that is not present is not an error, and the
// cascade still runs so a partial earlier delete can be completed by
// retrying.
func (r *Repository) Delete(id string) error {
	all, err := r.List()
	if err != nil {
		return err
	}

	kept := make([]Agent, 0, len(all))
	for _, a := range all {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) != len(all) {
		if err := r.store.WriteJSON(store.SlotAgents, kept); err != nil {
			return errors.Wrap(err, "[Repository Delete] persisting agents")
		}
		log.Debug().Str("agent_id", id).Msg("agent deleted")
	}

	if err := r.visits.DeleteByAgent(id); err != nil {
		return errors.Wrap(err, "[Repository Delete] cascading visit delete")
	}
	return nil
}
