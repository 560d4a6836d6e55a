package mediumfake

import (
	"sync"

	"github.com/fieldvisit/tracker/store"
)

var _ store.Medium = (*FakeMedium)(nil)

// FakeMedium is an in-memory Medium for tests.
type FakeMedium struct {
	slots map[string][]byte
	lock  sync.RWMutex
}

func NewFakeMedium() *FakeMedium {
	return &FakeMedium{slots: make(map[string][]byte)}
}

func (m *FakeMedium) Read(slot string) ([]byte, bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	data, ok := m.slots[slot]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (m *FakeMedium) Write(slot string, data []byte) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	m.slots[slot] = cp
	return nil
}

func (m *FakeMedium) Remove(slot string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.slots, slot)
	return nil
}
