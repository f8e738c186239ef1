package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"sellerhub-service/internal/domain/principal"
)

// MemoryStore is an in-process Store for single-node development and tests.
// It keeps the same serialized representation as the Redis store so that both
// share the malformed-state semantics.
type MemoryStore struct {
	notifier

	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*principal.Principal, error) {
	s.mu.RLock()
	data, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var p principal.Principal
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, p *principal.Principal) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal principal: %w", err)
	}

	s.mu.Lock()
	s.sessions[sid] = data
	s.mu.Unlock()

	s.publish(Change{SID: sid, Principal: p})
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()

	s.publish(Change{SID: sid, Principal: nil})
	return nil
}

func (s *MemoryStore) IsAuthenticated(ctx context.Context, sid string) bool {
	p, err := s.Get(ctx, sid)
	if err != nil {
		return false
	}
	return p.Valid(time.Now())
}

func (s *MemoryStore) HasRole(ctx context.Context, sid, role string) bool {
	p, err := s.Get(ctx, sid)
	if err != nil {
		return false
	}
	return p.Valid(time.Now()) && p.Role == role
}

// SetRaw stores unparsed bytes for a session, bypassing serialization.
func (s *MemoryStore) SetRaw(sid string, data []byte) {
	s.mu.Lock()
	s.sessions[sid] = data
	s.mu.Unlock()
}
