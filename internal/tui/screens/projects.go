package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/appart/internal/format"
	"github.com/emilianohg/appart/internal/models"
	"github.com/emilianohg/appart/internal/store"
)

type projectsMode int

const (
	projectsModeList projectsMode = iota
	projectsModeAdd
	projectsModeDelete
)

type Projects struct {
	store  *store.Store
	fmt    *format.Formatter
	width  int
	height int

	projects  []models.PropertyProject
	currentID string
	cursor    int
	mode      projectsMode
	input     textinput.Model
	typeIdx   int
	err       error
	message   string
}

func NewProjects(s *store.Store, f *format.Formatter) *Projects {
	ti := textinput.New()
	ti.Placeholder = "Project name"
	ti.CharLimit = 100
	ti.Width = 40

	return &Projects{
		store: s,
		fmt:   f,
		input: ti,
	}
}

func (p *Projects) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Editing reports whether a text input has focus.
func (p *Projects) Editing() bool {
	return p.mode == projectsModeAdd
}

type projectsDataMsg struct {
	projects  []models.PropertyProject
	currentID string
}

func (p *Projects) Init() tea.Cmd {
	p.mode = projectsModeList
	return p.loadData
}

func (p *Projects) loadData() tea.Msg {
	return projectsDataMsg{
		projects:  p.store.Projects(),
		currentID: p.store.CurrentProjectID(),
	}
}

func (p *Projects) Update(msg tea.Msg) tea.Cmd {
	// In input mode, pass messages to text input first
	if p.mode == projectsModeAdd {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				return p.handleInputKey()
			case "tab":
				p.typeIdx = (p.typeIdx + 1) % len(models.PropertyTypes)
				return nil
			case "esc":
				p.mode = projectsModeList
				p.input.Blur()
				return nil
			}
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	switch msg := msg.(type) {
	case projectsDataMsg:
		p.projects = msg.projects
		p.currentID = msg.currentID
		if p.cursor >= len(p.projects) {
			p.cursor = max(0, len(p.projects)-1)
		}
		return nil

	case RefreshMsg:
		return p.Init()

	case tea.KeyMsg:
		switch p.mode {
		case projectsModeList:
			return p.handleListKey(msg)
		case projectsModeDelete:
			return p.handleDeleteKey(msg)
		}
	}

	return nil
}

func (p *Projects) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.projects)-1 {
			p.cursor++
		}
	case "a":
		p.mode = projectsModeAdd
		p.typeIdx = 0
		p.input.SetValue("")
		p.input.Focus()
	case "d":
		if len(p.projects) > 0 {
			p.mode = projectsModeDelete
		}
	case "enter":
		if len(p.projects) > 0 {
			id := p.projects[p.cursor].ID
			if err := p.store.SetCurrentProject(id); err != nil {
				p.err = err
				return p.loadData
			}
			return NavigateWithProject("project", id)
		}
	}
	return nil
}

func (p *Projects) handleInputKey() tea.Cmd {
	name := strings.TrimSpace(p.input.Value())
	p.mode = projectsModeList
	p.input.Blur()
	if name == "" {
		return nil
	}

	proj, err := p.store.AddProject(models.NewProject{
		Name:         name,
		PropertyType: models.PropertyTypes[p.typeIdx],
	})
	if err != nil {
		p.err = err
	} else {
		p.message = fmt.Sprintf("Created project: %s", proj.Name)
	}
	return p.loadData
}

func (p *Projects) handleDeleteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		proj := p.projects[p.cursor]
		if err := p.store.DeleteProject(proj.ID); err != nil {
			p.err = err
		} else {
			p.message = fmt.Sprintf("Deleted project: %s", proj.Name)
		}
		p.mode = projectsModeList
		return p.loadData

	case "n", "N", "esc":
		p.mode = projectsModeList
	}
	return nil
}

func (p *Projects) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("APPART"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Suivi d'achat immobilier"))
	b.WriteString("\n\n")

	if p.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", p.err)))
		b.WriteString("\n\n")
		p.err = nil
	}

	if p.message != "" {
		b.WriteString(SuccessStyle.Render(p.message))
		b.WriteString("\n\n")
	}

	if p.mode == projectsModeAdd {
		b.WriteString("New project name:\n")
		b.WriteString(p.input.View())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Type: %s\n\n", SelectedStyle.Render(models.PropertyTypes[p.typeIdx].Label())))
		b.WriteString(HelpStyle.Render("[enter] Save  [tab] Change type  [esc] Cancel"))
		return b.String()
	}

	if p.mode == projectsModeDelete && len(p.projects) > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf(
			"Delete project '%s' with all its documents, contacts and tasks? (y/n)",
			p.projects[p.cursor].Name,
		)))
		b.WriteString("\n")
		return b.String()
	}

	if len(p.projects) == 0 {
		b.WriteString(DimStyle.Render("No projects yet. Press 'a' to add one."))
		b.WriteString("\n\n")
	} else {
		for i, proj := range p.projects {
			cursor := "  "
			style := NormalStyle
			if i == p.cursor {
				cursor = "> "
				style = SelectedStyle
			}
			marker := " "
			if proj.ID == p.currentID {
				marker = "*"
			}

			line := fmt.Sprintf("%s%s %s %s - %s",
				cursor,
				marker,
				proj.Name,
				DimStyle.Render(fmt.Sprintf("(%s, %s)", proj.PropertyType.Label(), p.fmt.Currency(proj.Price))),
				proj.Stage.Label(),
			)
			b.WriteString(style.Render(line))
			b.WriteString("\n")
			b.WriteString("    ")
			b.WriteString(ProgressBar(models.StageProgress(proj.Stage), 24))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	help := "[a] Add  [d] Delete  [enter] Open  [q] Quit"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}
