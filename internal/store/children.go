package store

import (
	"fmt"
	"slices"

	"github.com/emilianohg/appart/internal/models"
)

func (s *Store) AddDocument(projectID string, in models.NewDocument) (models.Document, error) {
	if err := validateInput(in); err != nil {
		return models.Document{}, err
	}
	if !models.IsDocumentCategory(in.Category) {
		return models.Document{}, fmt.Errorf("%w: unknown document category %q", ErrInvalidInput, in.Category)
	}

	var doc models.Document
	err := s.mutateProject("add_document", projectID, func(p *models.PropertyProject) error {
		doc = models.Document{
			ID:       s.newID(),
			Name:     in.Name,
			Category: in.Category,
			Date:     in.Date,
			FileURL:  in.FileURL,
			Notes:    in.Notes,
		}.Clone()
		p.Documents = append(p.Documents, doc)
		return nil
	})
	return doc.Clone(), err
}

func (s *Store) UpdateDocument(projectID, documentID string, patch models.DocumentPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}
	if patch.Category != nil && !models.IsDocumentCategory(*patch.Category) {
		return fmt.Errorf("%w: unknown document category %q", ErrInvalidInput, *patch.Category)
	}
	return s.mutateProject("update_document", projectID, func(p *models.PropertyProject) error {
		i := slices.IndexFunc(p.Documents, func(d models.Document) bool { return d.ID == documentID })
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrDocumentNotFound, documentID)
		}
		patch.ApplyTo(&p.Documents[i])
		return nil
	})
}

func (s *Store) DeleteDocument(projectID, documentID string) error {
	return s.mutateProject("delete_document", projectID, func(p *models.PropertyProject) error {
		i := slices.IndexFunc(p.Documents, func(d models.Document) bool { return d.ID == documentID })
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrDocumentNotFound, documentID)
		}
		p.Documents = slices.Delete(p.Documents, i, i+1)
		return nil
	})
}

func (s *Store) AddContact(projectID string, in models.NewContact) (models.Contact, error) {
	if err := validateInput(in); err != nil {
		return models.Contact{}, err
	}

	var c models.Contact
	err := s.mutateProject("add_contact", projectID, func(p *models.PropertyProject) error {
		c = models.Contact{
			ID:    s.newID(),
			Name:  in.Name,
			Role:  in.Role,
			Phone: in.Phone,
			Email: in.Email,
			Notes: in.Notes,
		}.Clone()
		p.Contacts = append(p.Contacts, c)
		return nil
	})
	return c.Clone(), err
}

func (s *Store) UpdateContact(projectID, contactID string, patch models.ContactPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}
	return s.mutateProject("update_contact", projectID, func(p *models.PropertyProject) error {
		i := slices.IndexFunc(p.Contacts, func(c models.Contact) bool { return c.ID == contactID })
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrContactNotFound, contactID)
		}
		patch.ApplyTo(&p.Contacts[i])
		return nil
	})
}

func (s *Store) DeleteContact(projectID, contactID string) error {
	return s.mutateProject("delete_contact", projectID, func(p *models.PropertyProject) error {
		i := slices.IndexFunc(p.Contacts, func(c models.Contact) bool { return c.ID == contactID })
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrContactNotFound, contactID)
		}
		p.Contacts = slices.Delete(p.Contacts, i, i+1)
		return nil
	})
}

// AddTask appends an open task. Priority defaults to medium.
func (s *Store) AddTask(projectID string, in models.NewTask) (models.Task, error) {
	if err := validateInput(in); err != nil {
		return models.Task{}, err
	}

	var t models.Task
	err := s.mutateProject("add_task", projectID, func(p *models.PropertyProject) error {
		t = models.Task{
			ID:          s.newID(),
			Title:       in.Title,
			Description: in.Description,
			DueDate:     in.DueDate,
			Stage:       in.Stage,
			Priority:    in.Priority,
		}.Clone()
		if t.Priority == "" {
			t.Priority = models.PriorityMedium
		}
		p.Tasks = append(p.Tasks, t)
		return nil
	})
	return t.Clone(), err
}

func (s *Store) UpdateTask(projectID, taskID string, patch models.TaskPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}
	return s.mutateProject("update_task", projectID, func(p *models.PropertyProject) error {
		i := slices.IndexFunc(p.Tasks, func(t models.Task) bool { return t.ID == taskID })
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
		patch.ApplyTo(&p.Tasks[i])
		return nil
	})
}

// CompleteTask marks the task done. It is not a toggle.
func (s *Store) CompleteTask(projectID, taskID string) error {
	return s.mutateProject("complete_task", projectID, func(p *models.PropertyProject) error {
		i := slices.IndexFunc(p.Tasks, func(t models.Task) bool { return t.ID == taskID })
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
		p.Tasks[i].Completed = true
		return nil
	})
}

func (s *Store) DeleteTask(projectID, taskID string) error {
	return s.mutateProject("delete_task", projectID, func(p *models.PropertyProject) error {
		i := slices.IndexFunc(p.Tasks, func(t models.Task) bool { return t.ID == taskID })
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
		p.Tasks = slices.Delete(p.Tasks, i, i+1)
		return nil
	})
}
