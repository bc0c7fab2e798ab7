package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/invmate/stocktake/internal/repository"
)

// Service is the reconciliation engine facade called by collaborators.
// Mutating operations are serialized: each one runs as an atomic
// read-modify-write against the stored project record, so two scans of the
// same project can never interleave their halves.
type Service struct {
	store  Store
	logger *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewService creates a new engine service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// CreateProject creates an empty, unlocked project.
func (s *Service) CreateProject(ctx context.Context, name, description string) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	proj, err := s.store.Create(ctx, name, description)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	s.logger.Info("project created", "project_id", proj.ID, "name", proj.Name)
	return proj, nil
}

// DeleteProject removes a project and its items as one unit. Deleting an
// absent id is a no-op success, so retries are always safe.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Info("project deleted", "project_id", id)
	return nil
}

// GetProject fetches a project by ID.
func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	proj, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// ListProjects returns all projects, most recently updated first.
func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	projects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})
	return projects, nil
}

// ImportBaseline parses raw baseline text and attaches the resulting items
// to the project. A non-empty result locks the project permanently; an
// import that parses to zero items leaves it unlocked. Re-import after
// locking is rejected with ErrProjectLocked.
func (s *Service) ImportBaseline(ctx context.Context, projectID, rawText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj, err := s.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if proj.IsLocked {
		return ErrProjectLocked
	}

	items := ParseBaseline(rawText)
	if err := s.store.AttachItems(ctx, projectID, items); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("attaching baseline items: %w", err)
	}
	s.logger.Info("baseline imported", "project_id", projectID, "items", len(items))
	return nil
}

// Scan applies one observed code to the project. A match increments that
// item's counted quantity by exactly one, stamps it, and persists the full
// item set; a miss mutates nothing and reports a not-found outcome. Matching
// is exact and case-sensitive; with duplicate codes the first item wins.
func (s *Service) Scan(ctx context.Context, projectID, code string) (ScanOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj, err := s.GetProject(ctx, projectID)
	if err != nil {
		return ScanOutcome{}, err
	}

	idx := -1
	for i := range proj.Items {
		if proj.Items[i].Code == code {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ScanOutcome{Code: code, Matched: false}, nil
	}

	scannedAt := s.now()
	proj.Items[idx].ActualQty++
	proj.Items[idx].LastScannedAt = &scannedAt

	if err := s.store.AttachItems(ctx, projectID, proj.Items); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ScanOutcome{}, ErrProjectNotFound
		}
		return ScanOutcome{}, fmt.Errorf("persisting scan: %w", err)
	}

	return ScanOutcome{
		Code:      code,
		Matched:   true,
		ItemName:  proj.Items[idx].Name,
		ActualQty: proj.Items[idx].ActualQty,
	}, nil
}

// ExportProject serializes the project's reconciled state as delimited text.
func (s *Service) ExportProject(ctx context.Context, projectID string) (string, error) {
	proj, err := s.GetProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	return ExportCSV(proj), nil
}
