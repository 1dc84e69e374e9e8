package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emilianohg/appart/internal/format"
	"github.com/emilianohg/appart/internal/models"
	"github.com/emilianohg/appart/internal/store"
)

type projectMode int

const (
	projectModeView projectMode = iota
	projectModeAddTask
	projectModeDeleteTask
)

// ProjectDetail shows one project: its stage, financing, documents, contacts
// and tasks.
type ProjectDetail struct {
	store  *store.Store
	fmt    *format.Formatter
	width  int
	height int

	projectID string
	project   models.PropertyProject
	cursor    int
	mode      projectMode
	input     textinput.Model
	err       error
	message   string
}

func NewProjectDetail(s *store.Store, f *format.Formatter) *ProjectDetail {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200
	ti.Width = 50

	return &ProjectDetail{
		store: s,
		fmt:   f,
		input: ti,
	}
}

func (d *ProjectDetail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func (d *ProjectDetail) SetProject(id string) {
	d.projectID = id
	d.cursor = 0
	d.message = ""
}

type projectDataMsg struct {
	project models.PropertyProject
	err     error
}

func (d *ProjectDetail) Init() tea.Cmd {
	d.mode = projectModeView
	return d.loadData
}

func (d *ProjectDetail) loadData() tea.Msg {
	p, err := d.store.Project(d.projectID)
	return projectDataMsg{project: p, err: err}
}

func (d *ProjectDetail) Update(msg tea.Msg) tea.Cmd {
	if d.mode == projectModeAddTask {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				return d.handleInputKey()
			case "esc":
				d.mode = projectModeView
				d.input.Blur()
				return nil
			}
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd
	}

	switch msg := msg.(type) {
	case projectDataMsg:
		if errors.Is(msg.err, store.ErrNotFound) {
			return Navigate("projects")
		}
		d.err = msg.err
		d.project = msg.project
		if d.cursor >= len(d.project.Tasks) {
			d.cursor = max(0, len(d.project.Tasks)-1)
		}
		return nil

	case RefreshMsg:
		return d.Init()

	case tea.KeyMsg:
		if d.mode == projectModeDeleteTask {
			return d.handleDeleteKey(msg)
		}
		return d.handleViewKey(msg)
	}
	return nil
}

func (d *ProjectDetail) handleViewKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.project.Tasks)-1 {
			d.cursor++
		}
	case "n":
		if next, ok := d.project.Stage.Next(); ok {
			return d.setStage(next)
		}
	case "p":
		if prev, ok := d.project.Stage.Previous(); ok {
			return d.setStage(prev)
		}
	case " ", "space", "x":
		if len(d.project.Tasks) > 0 {
			task := d.project.Tasks[d.cursor]
			d.err = d.store.CompleteTask(d.project.ID, task.ID)
			return d.loadData
		}
	case "a":
		d.mode = projectModeAddTask
		d.input.SetValue("")
		d.input.Focus()
	case "D":
		if len(d.project.Tasks) > 0 {
			d.mode = projectModeDeleteTask
		}
	case "q", "esc":
		return Navigate("projects")
	}
	return nil
}

func (d *ProjectDetail) setStage(stage models.Stage) tea.Cmd {
	if err := d.store.UpdateStage(d.project.ID, stage); err != nil {
		d.err = err
	} else {
		d.message = fmt.Sprintf("Stage: %s", stage.Label())
	}
	return d.loadData
}

func (d *ProjectDetail) handleInputKey() tea.Cmd {
	title := strings.TrimSpace(d.input.Value())
	d.mode = projectModeView
	d.input.Blur()
	if title == "" {
		return nil
	}

	// new tasks belong to the stage the project is in
	_, err := d.store.AddTask(d.project.ID, models.NewTask{
		Title: title,
		Stage: d.project.Stage,
	})
	if err != nil {
		d.err = err
	} else {
		d.message = fmt.Sprintf("Added task: %s", title)
	}
	return d.loadData
}

func (d *ProjectDetail) handleDeleteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		task := d.project.Tasks[d.cursor]
		if err := d.store.DeleteTask(d.project.ID, task.ID); err != nil {
			d.err = err
		} else {
			d.message = fmt.Sprintf("Deleted task: %s", task.Title)
		}
		d.mode = projectModeView
		return d.loadData
	case "n", "N", "esc":
		d.mode = projectModeView
	}
	return nil
}

func (d *ProjectDetail) View() string {
	var b strings.Builder
	p := d.project

	b.WriteString(TitleStyle.Render(strings.ToUpper(p.Name)))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s - %s", p.PropertyType.Label(), d.fmt.Currency(p.Price))))
	b.WriteString("\n\n")

	if d.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", d.err)))
		b.WriteString("\n\n")
		d.err = nil
	}
	if d.message != "" {
		b.WriteString(SuccessStyle.Render(d.message))
		b.WriteString("\n\n")
	}

	if d.mode == projectModeAddTask {
		b.WriteString(fmt.Sprintf("New task (%s):\n", p.Stage.Label()))
		b.WriteString(d.input.View())
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("[enter] Save  [esc] Cancel"))
		return b.String()
	}

	if d.mode == projectModeDeleteTask && len(p.Tasks) > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("Delete task '%s'? (y/n)", p.Tasks[d.cursor].Title)))
		b.WriteString("\n")
		return b.String()
	}

	stageContent := fmt.Sprintf("%s\n%s\n%s",
		SelectedStyle.Render(p.Stage.Label()),
		DimStyle.Render(p.Stage.Description()),
		ProgressBar(models.StageProgress(p.Stage), 32),
	)
	b.WriteString(BoxStyle.Render(stageContent))
	b.WriteString("\n\n")

	b.WriteString(SubtitleStyle.Render("Financement"))
	b.WriteString("\n")
	b.WriteString(d.financingView())
	b.WriteString("\n")

	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Tâches (%d/%d)", p.CompletedTasks(), len(p.Tasks))))
	b.WriteString("\n")
	if len(p.Tasks) == 0 {
		b.WriteString(DimStyle.Render("  No tasks yet."))
		b.WriteString("\n")
	}
	for i, t := range p.Tasks {
		cursor := "  "
		style := NormalStyle
		if i == d.cursor {
			cursor = "> "
			style = SelectedStyle
		}
		check := "[ ]"
		if t.Completed {
			check = SuccessStyle.Render("[x]")
		}
		due := ""
		if t.DueDate != nil {
			due = " " + d.fmt.Date(*t.DueDate)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %s", cursor, check, t.Title)))
		b.WriteString(DimStyle.Render(fmt.Sprintf(" (%s, %s%s)", t.Stage.Label(), t.Priority, due)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Documents (%d)  Contacts (%d)", len(p.Documents), len(p.Contacts))))
	b.WriteString("\n")
	for _, doc := range p.Documents {
		b.WriteString(fmt.Sprintf("  %s %s\n", doc.Name, DimStyle.Render(fmt.Sprintf("(%s, %s)", doc.Category, d.fmt.Date(doc.Date)))))
	}
	for _, c := range p.Contacts {
		b.WriteString(fmt.Sprintf("  %s %s\n", c.Name, DimStyle.Render(fmt.Sprintf("(%s)", c.Role))))
	}

	help := "[n/p] Next/prev stage  [space] Complete task  [a] Add task  [D] Delete task  [q] Back"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func (d *ProjectDetail) financingView() string {
	f := d.project.Financing
	status := DimStyle.Render("-")
	if f.ApprovalStatus != nil {
		switch *f.ApprovalStatus {
		case models.ApprovalApproved:
			status = SuccessStyle.Render(f.ApprovalStatus.Label())
		case models.ApprovalRejected:
			status = ErrorStyle.Render(f.ApprovalStatus.Label())
		default:
			status = WarningStyle.Render(f.ApprovalStatus.Label())
		}
	}
	rate := "-"
	if f.InterestRate != nil {
		rate = fmt.Sprintf("%.2f %%", *f.InterestRate)
	}
	term := "-"
	if f.LoanTerm != nil {
		term = fmt.Sprintf("%d ans", *f.LoanTerm)
	}
	return fmt.Sprintf("  Prêt: %s  Apport: %s  Taux: %s  Durée: %s\n  Mensualité: %s  Statut: %s\n",
		d.fmt.Currency(f.LoanAmount),
		d.fmt.Currency(f.DownPayment),
		rate,
		term,
		d.fmt.Currency(f.MonthlyPayment),
		status,
	)
}
