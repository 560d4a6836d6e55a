package store

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Storage slots. Each slot holds one JSON document: an array for the two
// collections, a single object for the session.
const (
	SlotAgents  = "vts_agents"
	SlotVisits  = "vts_visits"
	SlotSession = "vts_session"
)

// Medium is a synchronous, string-keyed storage medium. Read reports
// ok=false for a slot that has never been written. Errors from a Medium are
// environment failures (disk full, corruption), never domain errors.
type Medium interface {
	Read(slot string) (data []byte, ok bool, err error)
	Write(slot string, data []byte) error
	Remove(slot string) error
}

// Store wraps a Medium with JSON encoding of slot contents.
type Store struct {
	medium Medium
}

func New(medium Medium) *Store {
	return &Store{medium: medium}
}

// ReadJSON decodes the slot into v. Returns false, nil when the slot is
// absent, leaving v untouched.
func (s *Store) ReadJSON(slot string, v any) (bool, error) {
	data, ok, err := s.medium.Read(slot)
	if err != nil {
		return false, errors.Wrapf(err, "reading slot %q", slot)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "decoding slot %q", slot)
	}
	return true, nil
}

// WriteJSON encodes v and replaces the slot's contents with it.
func (s *Store) WriteJSON(slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding slot %q", slot)
	}
	if err := s.medium.Write(slot, data); err != nil {
		return errors.Wrapf(err, "writing slot %q", slot)
	}
	return nil
}

// Remove clears the slot. Removing an absent slot is not an error.
func (s *Store) Remove(slot string) error {
	if err := s.medium.Remove(slot); err != nil {
		return errors.Wrapf(err, "removing slot %q", slot)
	}
	return nil
}
