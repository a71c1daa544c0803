// Package memory provides in-memory draft storage for tests.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

// Ensure DraftStore implements the interface.
var _ driven.DraftStore = (*DraftStore)(nil)

// DraftStore is an in-memory implementation of driven.DraftStore.
// Form state is round-tripped through JSON to mirror the serialization
// behavior of the persistent store.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[domain.DraftScope]storedDraft
}

type storedDraft struct {
	step  domain.WizardStep
	state []byte
}

// NewDraftStore creates a new in-memory draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[domain.DraftScope]storedDraft),
	}
}

// Save stores or replaces the draft for the given scope.
func (s *DraftStore) Save(_ context.Context, scope domain.DraftScope, step domain.WizardStep, state *domain.CompanyProfile) error {
	var stateJSON []byte
	if state != nil {
		var err error
		stateJSON, err = json.Marshal(state)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[scope] = storedDraft{step: step, state: stateJSON}
	return nil
}

// Load returns the draft for the scope, or domain.ErrNotFound.
func (s *DraftStore) Load(_ context.Context, scope domain.DraftScope) (*driven.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.drafts[scope]
	if !ok {
		return nil, domain.ErrNotFound
	}

	draft := &driven.Draft{Scope: scope, Step: stored.step}
	if stored.state != nil {
		var profile domain.CompanyProfile
		if err := json.Unmarshal(stored.state, &profile); err != nil {
			return nil, err
		}
		draft.State = &profile
	}
	return draft, nil
}

// Clear removes the draft for the scope.
func (s *DraftStore) Clear(_ context.Context, scope domain.DraftScope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, scope)
	return nil
}

// List returns all stored drafts.
func (s *DraftStore) List(_ context.Context) ([]driven.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]driven.Draft, 0, len(s.drafts))
	for scope, stored := range s.drafts {
		draft := driven.Draft{Scope: scope, Step: stored.step}
		if stored.state != nil {
			var profile domain.CompanyProfile
			if err := json.Unmarshal(stored.state, &profile); err != nil {
				return nil, err
			}
			draft.State = &profile
		}
		result = append(result, draft)
	}
	return result, nil
}
