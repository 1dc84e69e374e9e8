package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilianohg/appart/internal/format"
	"github.com/emilianohg/appart/internal/store"
	"github.com/emilianohg/appart/internal/tui/screens"
)

type Screen int

const (
	ScreenProjects Screen = iota
	ScreenProject
)

type App struct {
	store         *store.Store
	fmt           *format.Formatter
	currentScreen Screen
	width         int
	height        int

	// Screen models
	projects *screens.Projects
	project  *screens.ProjectDetail
}

func NewApp(s *store.Store, f *format.Formatter) *App {
	return &App{
		store:         s,
		fmt:           f,
		currentScreen: ScreenProjects,
		projects:      screens.NewProjects(s, f),
		project:       screens.NewProjectDetail(s, f),
	}
}

func (a *App) Init() tea.Cmd {
	// Reopen on the project that was active last session
	if id := a.store.CurrentProjectID(); id != "" {
		a.currentScreen = ScreenProject
		a.project.SetProject(id)
		return a.project.Init()
	}
	return a.projects.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.currentScreen == ScreenProjects && !a.inputActive() {
				return a, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.projects.SetSize(msg.Width, msg.Height)
		a.project.SetSize(msg.Width, msg.Height)

	case screens.NavigateMsg:
		return a.handleNavigation(msg)
	}

	var cmd tea.Cmd
	switch a.currentScreen {
	case ScreenProjects:
		cmd = a.projects.Update(msg)
	case ScreenProject:
		cmd = a.project.Update(msg)
	}

	return a, cmd
}

func (a *App) inputActive() bool {
	return a.projects.Editing()
}

func (a *App) handleNavigation(msg screens.NavigateMsg) (tea.Model, tea.Cmd) {
	switch msg.Screen {
	case "projects":
		a.currentScreen = ScreenProjects
		return a, a.projects.Init()
	case "project":
		a.currentScreen = ScreenProject
		a.project.SetProject(msg.ProjectID)
		return a, a.project.Init()
	}
	return a, nil
}

func (a *App) View() string {
	var content string

	switch a.currentScreen {
	case ScreenProjects:
		content = a.projects.View()
	case ScreenProject:
		content = a.project.View()
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Render(content)
}

func Run(s *store.Store, f *format.Formatter) error {
	app := NewApp(s, f)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
