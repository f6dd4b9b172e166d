package memory

import (
	"context"
	"sync"
)

type ContactStore struct {
	mu       sync.RWMutex
	contacts map[string][]string
}

func NewContactStore() *ContactStore {
	return &ContactStore{contacts: make(map[string][]string)}
}

// AddContact добавляет контакт пострадавшего, повтор игнорируется
func (s *ContactStore) AddContact(victimUserID, contactUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contacts[victimUserID] {
		if c == contactUserID {
			return
		}
	}
	s.contacts[victimUserID] = append(s.contacts[victimUserID], contactUserID)
}

func (s *ContactStore) ResolveContacts(_ context.Context, victimUserID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string{}, s.contacts[victimUserID]...), nil
}
