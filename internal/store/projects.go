package store

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/emilianohg/appart/internal/models"
)

// AddProject appends a new project with empty collections and selects it.
func (s *Store) AddProject(in models.NewProject) (models.PropertyProject, error) {
	if err := validateInput(in); err != nil {
		return models.PropertyProject{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	p := models.PropertyProject{
		ID:           s.newID(),
		Name:         in.Name,
		PropertyType: in.PropertyType,
		Address:      in.Address,
		Price:        in.Price,
		Size:         in.Size,
		Rooms:        in.Rooms,
		Stage:        in.Stage,
		Documents:    []models.Document{},
		Contacts:     []models.Contact{},
		Tasks:        []models.Task{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.Stage == "" {
		p.Stage = models.StageSearch
	}
	// detach optional fields from the caller's memory
	p = p.Clone()

	s.projects = append(s.projects, p)
	s.currentID = p.ID

	s.logger.Debug("project added", zap.String("project_id", p.ID))
	s.persistLocked()
	return p.Clone(), nil
}

// SetCurrentProject selects the project with the given id. An empty id clears
// the selection.
func (s *Store) SetCurrentProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.indexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	s.currentID = id
	s.persistLocked()
	return nil
}

func (s *Store) UpdateProject(id string, patch models.ProjectPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}
	return s.mutateProject("update_project", id, func(p *models.PropertyProject) error {
		patch.ApplyTo(p)
		return nil
	})
}

// DeleteProject removes the project and its children. Deleting the selected
// project clears the selection.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	s.projects = slices.Delete(s.projects, i, i+1)
	if s.currentID == id {
		s.currentID = ""
	}

	s.logger.Debug("project deleted", zap.String("project_id", id))
	s.persistLocked()
	return nil
}

// UpdateStage sets the stage directly. Any stage may follow any other; only
// values outside the fixed sequence are rejected.
func (s *Store) UpdateStage(id string, stage models.Stage) error {
	if !stage.IsValid() {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, stage)
	}
	return s.mutateProject("update_stage", id, func(p *models.PropertyProject) error {
		p.Stage = stage
		return nil
	})
}

// UpdateFinancing merges the patch into the project's financing record.
func (s *Store) UpdateFinancing(id string, patch models.FinancingPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}
	return s.mutateProject("update_financing", id, func(p *models.PropertyProject) error {
		patch.ApplyTo(&p.Financing)
		return nil
	})
}
