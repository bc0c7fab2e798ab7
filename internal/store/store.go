// Package store holds the persistent project collection. The collection is
// read-modify-written as a whole snapshot: every mutator reloads the latest
// collection, applies one change, and writes the full collection back inside
// a single critical section, so stale siblings are never resurrected.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/invmate/stocktake/internal/domain/inventory"
	"github.com/invmate/stocktake/internal/repository"
)

// Store implements inventory.Store over a snapshot Backend.
type Store struct {
	backend repository.Backend
	logger  *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// New creates a store over the given backend.
func New(backend repository.Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, logger: logger, now: time.Now}
}

// Create allocates a fresh project with both timestamps set to the same
// instant, unlocked and with no items. Name validation is the caller's job.
func (s *Store) Create(ctx context.Context, name, description string) (*inventory.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.loadForWrite(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	proj := inventory.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsLocked:    false,
		Items:       []inventory.InventoryItem{},
	}

	if err := s.save(ctx, append(projects, proj)); err != nil {
		return nil, err
	}
	return &proj, nil
}

// Delete removes the project with that id if present. A missing id is a
// no-op success.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.loadForWrite(ctx)
	if err != nil {
		return err
	}

	remaining := projects[:0]
	for _, proj := range projects {
		if proj.ID != id {
			remaining = append(remaining, proj)
		}
	}
	if len(remaining) == len(projects) {
		return nil
	}
	return s.save(ctx, remaining)
}

// Get returns the project or repository.ErrNotFound. A backend read fault
// degrades to not-found so callers stay responsive; the fault is logged.
func (s *Store) Get(ctx context.Context, id string) (*inventory.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadDegraded(ctx)
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns all projects in storage order. A backend read fault degrades
// to an empty result; the fault is logged.
func (s *Store) List(ctx context.Context) ([]inventory.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadDegraded(ctx), nil
}

// AttachItems replaces the project's entire item collection, bumps
// updatedAt, and locks the project when the supplied collection is
// non-empty. An empty attach leaves the lock state untouched, which is how
// no-op imports are tolerated. The caller supplies the complete desired
// item set; nothing is merged.
func (s *Store) AttachItems(ctx context.Context, projectID string, items []inventory.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.loadForWrite(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range projects {
		if projects[i].ID == projectID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return repository.ErrNotFound
	}

	if items == nil {
		items = []inventory.InventoryItem{}
	}
	projects[idx].Items = items
	projects[idx].UpdatedAt = s.now()
	if len(items) > 0 {
		projects[idx].IsLocked = true
	}

	return s.save(ctx, projects)
}

// loadForWrite loads the current collection for a mutation. Unlike reads,
// a write must not proceed on top of a failed load, so the fault surfaces
// as ErrPersistence.
func (s *Store) loadForWrite(ctx context.Context) ([]inventory.Project, error) {
	projects, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading projects: %v", repository.ErrPersistence, err)
	}
	return projects, nil
}

// loadDegraded loads the collection for a read, returning an empty
// collection on any backend fault. Deliberate trade-off: reads keep the
// caller responsive while the fault is only logged.
func (s *Store) loadDegraded(ctx context.Context) []inventory.Project {
	projects, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("degrading to empty project list after load failure", "error", err)
		return nil
	}
	return projects
}

func (s *Store) load(ctx context.Context) ([]inventory.Project, error) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var projects []inventory.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return projects, nil
}

func (s *Store) save(ctx context.Context, projects []inventory.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %v", repository.ErrPersistence, err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		return fmt.Errorf("%w: saving snapshot: %v", repository.ErrPersistence, err)
	}
	return nil
}
