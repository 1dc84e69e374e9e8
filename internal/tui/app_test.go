package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/appart/internal/format"
	"github.com/emilianohg/appart/internal/models"
	"github.com/emilianohg/appart/internal/store"
	"github.com/emilianohg/appart/internal/tui/screens"
)

// drive runs cmd and feeds every resulting message back into the app.
func drive(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = a.Update(msg)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newStore(t *testing.T) *store.Store {
	s, err := store.Open(nil)
	require.NoError(t, err)
	return s
}

func TestStartsOnProjectListWithoutSelection(t *testing.T) {
	a := NewApp(newStore(t), format.Default())
	drive(t, a, a.Init())

	assert.Equal(t, ScreenProjects, a.currentScreen)
	assert.Contains(t, a.View(), "No projects yet")
}

func TestOpenProjectAndAdvanceStage(t *testing.T) {
	s := newStore(t)
	p, err := s.AddProject(models.NewProject{Name: "Nantes", PropertyType: models.Apartment})
	require.NoError(t, err)
	_, err = s.AddTask(p.ID, models.NewTask{Title: "Visiter", Stage: models.StageSearch})
	require.NoError(t, err)
	require.NoError(t, s.SetCurrentProject(""))

	a := NewApp(s, format.Default())
	drive(t, a, a.Init())

	_, cmd := a.Update(key("enter"))
	drive(t, a, cmd)
	assert.Equal(t, ScreenProject, a.currentScreen)
	assert.Equal(t, p.ID, s.CurrentProjectID())

	_, cmd = a.Update(key("n"))
	drive(t, a, cmd)
	got, err := s.Project(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageOffer, got.Stage)

	_, cmd = a.Update(key("x"))
	drive(t, a, cmd)
	got, _ = s.Project(p.ID)
	assert.True(t, got.Tasks[0].Completed)

	_, cmd = a.Update(key("q"))
	drive(t, a, cmd)
	assert.Equal(t, ScreenProjects, a.currentScreen)
}

func TestResumesCurrentProject(t *testing.T) {
	s := newStore(t)
	p, err := s.AddProject(models.NewProject{Name: "Lyon", PropertyType: models.House})
	require.NoError(t, err)

	a := NewApp(s, format.Default())
	drive(t, a, a.Init())

	assert.Equal(t, ScreenProject, a.currentScreen)
	assert.Contains(t, a.View(), "LYON")

	// deleting it elsewhere sends the detail screen back to the list
	require.NoError(t, s.DeleteProject(p.ID))
	drive(t, a, screens.Refresh())
	assert.Equal(t, ScreenProjects, a.currentScreen)
}
