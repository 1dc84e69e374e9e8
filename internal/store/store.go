// Package store holds the property-purchase projects of one user and mirrors
// them to durable storage after every change.
package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emilianohg/appart/internal/models"
)

// Persister stores the serialized state document. Load returns nil data when
// nothing has been saved yet.
type Persister interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

var validate = validator.New()

// Store owns every project. All methods are safe for concurrent use; each
// mutation, including its persistence write, runs under a single lock.
type Store struct {
	mu        sync.Mutex
	projects  []models.PropertyProject
	currentID string

	persister Persister
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// Open rehydrates a store from p. A nil persister gives a memory-only store.
func Open(p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		projects:  []models.PropertyProject{},
		persister: p,
		logger:    zap.NewNop(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	if p == nil {
		return s, nil
	}

	data, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	snap, err := decodeState(data)
	if err != nil {
		return nil, err
	}
	s.projects = snap.Projects
	if snap.CurrentProjectID != nil {
		s.currentID = *snap.CurrentProjectID
	}

	s.logger.Debug("state loaded", zap.Int("projects", len(s.projects)))
	return s, nil
}

// Projects returns a copy of every project in insertion order.
func (s *Store) Projects() []models.PropertyProject {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.PropertyProject, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) Project(id string) (models.PropertyProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.PropertyProject{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return s.projects[i].Clone(), nil
}

func (s *Store) CurrentProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// CurrentProject is derived from the selection pointer on every call, so it
// can never drift from the project list.
func (s *Store) CurrentProject() (models.PropertyProject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == "" {
		return models.PropertyProject{}, false
	}
	i := s.indexOf(s.currentID)
	if i < 0 {
		return models.PropertyProject{}, false
	}
	return s.projects[i].Clone(), true
}

// MarshalState serializes the full state in the persisted document format.
func (s *Store) MarshalState() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encodeState(s.projects, s.currentID)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.projects, func(p models.PropertyProject) bool {
		return p.ID == id
	})
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// touch bumps UpdatedAt, keeping it strictly after the previous value and
// never before CreatedAt.
func (s *Store) touch(p *models.PropertyProject) {
	now := s.timestamp()
	if !now.After(p.UpdatedAt) {
		now = p.UpdatedAt.Add(time.Nanosecond)
	}
	p.UpdatedAt = now
}

// mutateProject applies fn to a copy of the project and commits it only when
// fn succeeds, so a failed lookup leaves the state untouched.
func (s *Store) mutateProject(op, id string, fn func(p *models.PropertyProject) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("project not found", zap.String("op", op), zap.String("project_id", id))
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	p := s.projects[i].Clone()
	if err := fn(&p); err != nil {
		s.logger.Debug("mutation rejected", zap.String("op", op), zap.String("project_id", id), zap.Error(err))
		return err
	}
	s.touch(&p)
	s.projects[i] = p

	s.logger.Debug("project mutated", zap.String("op", op), zap.String("project_id", id))
	s.persistLocked()
	return nil
}

// persistLocked writes the whole state. Failures are logged and never
// reported to the caller that triggered the write.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	data, err := encodeState(s.projects, s.currentID)
	if err != nil {
		s.logger.Error("encode state", zap.Error(err))
		return
	}
	if err := s.persister.Save(data); err != nil {
		s.logger.Error("persist state", zap.Error(err))
	}
}

func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
