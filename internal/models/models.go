package models

import "time"

type PropertyProject struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	PropertyType PropertyType     `json:"propertyType"`
	Address      *string          `json:"address,omitempty"`
	Price        *float64         `json:"price,omitempty"`
	Size         *float64         `json:"size,omitempty"`
	Rooms        *int             `json:"rooms,omitempty"`
	Stage        Stage            `json:"stage"`
	Documents    []Document       `json:"documents"`
	Contacts     []Contact        `json:"contacts"`
	Tasks        []Task           `json:"tasks"`
	Financing    FinancingDetails `json:"financing"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type Document struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Date     string  `json:"date"` // YYYY-MM-DD or RFC 3339
	FileURL  *string `json:"fileUrl,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type Contact struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Completed   bool     `json:"completed"`
	Stage       Stage    `json:"stage"`
	Priority    Priority `json:"priority"`
}

type FinancingDetails struct {
	LoanAmount     *float64        `json:"loanAmount,omitempty"`
	DownPayment    *float64        `json:"downPayment,omitempty"`
	InterestRate   *float64        `json:"interestRate,omitempty"`
	LoanTerm       *int            `json:"loanTerm,omitempty"` // years
	MonthlyPayment *float64        `json:"monthlyPayment,omitempty"`
	ApprovalStatus *ApprovalStatus `json:"approvalStatus,omitempty"`
}

// Clone returns a deep copy of the project, including its child collections.
func (p PropertyProject) Clone() PropertyProject {
	c := p
	c.Address = clonePtr(p.Address)
	c.Price = clonePtr(p.Price)
	c.Size = clonePtr(p.Size)
	c.Rooms = clonePtr(p.Rooms)

	c.Documents = make([]Document, len(p.Documents))
	for i, d := range p.Documents {
		c.Documents[i] = d.Clone()
	}
	c.Contacts = make([]Contact, len(p.Contacts))
	for i, ct := range p.Contacts {
		c.Contacts[i] = ct.Clone()
	}
	c.Tasks = make([]Task, len(p.Tasks))
	for i, t := range p.Tasks {
		c.Tasks[i] = t.Clone()
	}
	c.Financing = p.Financing.Clone()
	return c
}

func (d Document) Clone() Document {
	d.FileURL = clonePtr(d.FileURL)
	d.Notes = clonePtr(d.Notes)
	return d
}

func (c Contact) Clone() Contact {
	c.Phone = clonePtr(c.Phone)
	c.Email = clonePtr(c.Email)
	c.Notes = clonePtr(c.Notes)
	return c
}

func (t Task) Clone() Task {
	t.Description = clonePtr(t.Description)
	t.DueDate = clonePtr(t.DueDate)
	return t
}

func (f FinancingDetails) Clone() FinancingDetails {
	return FinancingDetails{
		LoanAmount:     clonePtr(f.LoanAmount),
		DownPayment:    clonePtr(f.DownPayment),
		InterestRate:   clonePtr(f.InterestRate),
		LoanTerm:       clonePtr(f.LoanTerm),
		MonthlyPayment: clonePtr(f.MonthlyPayment),
		ApprovalStatus: clonePtr(f.ApprovalStatus),
	}
}

// CompletedTasks counts the tasks marked done.
func (p PropertyProject) CompletedTasks() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
