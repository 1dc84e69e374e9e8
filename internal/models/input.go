package models

// NewProject holds the caller-supplied fields of a project. The store fills in
// id, timestamps and the empty child collections.
type NewProject struct {
	Name         string       `validate:"required"`
	PropertyType PropertyType `validate:"required,oneof=apartment house land"`
	Address      *string
	Price        *float64 `validate:"omitnil,gte=0"`
	Size         *float64 `validate:"omitnil,gte=0"`
	Rooms        *int     `validate:"omitnil,gte=0"`
	Stage        Stage    `validate:"omitempty,oneof=search offer negotiation financing presale notary signing handover"`
}

type NewDocument struct {
	Name     string `validate:"required"`
	Category string `validate:"required"`
	Date     string
	FileURL  *string
	Notes    *string
}

type NewContact struct {
	Name  string `validate:"required"`
	Role  string `validate:"required"`
	Phone *string
	Email *string
	Notes *string
}

type NewTask struct {
	Title       string `validate:"required"`
	Description *string
	DueDate     *string
	Stage       Stage    `validate:"required,oneof=search offer negotiation financing presale notary signing handover"`
	Priority    Priority `validate:"omitempty,oneof=low medium high"`
}

// Patch types carry a shallow partial update. A nil field is left untouched.

type ProjectPatch struct {
	Name         *string       `validate:"omitnil,min=1"`
	PropertyType *PropertyType `validate:"omitnil,oneof=apartment house land"`
	Address      *string
	Price        *float64 `validate:"omitnil,gte=0"`
	Size         *float64 `validate:"omitnil,gte=0"`
	Rooms        *int     `validate:"omitnil,gte=0"`
	Stage        *Stage   `validate:"omitnil,oneof=search offer negotiation financing presale notary signing handover"`
}

type DocumentPatch struct {
	Name     *string `validate:"omitnil,min=1"`
	Category *string `validate:"omitnil,min=1"`
	Date     *string
	FileURL  *string
	Notes    *string
}

type ContactPatch struct {
	Name  *string `validate:"omitnil,min=1"`
	Role  *string `validate:"omitnil,min=1"`
	Phone *string
	Email *string
	Notes *string
}

type TaskPatch struct {
	Title       *string `validate:"omitnil,min=1"`
	Description *string
	DueDate     *string
	Completed   *bool
	Stage       *Stage    `validate:"omitnil,oneof=search offer negotiation financing presale notary signing handover"`
	Priority    *Priority `validate:"omitnil,oneof=low medium high"`
}

type FinancingPatch struct {
	LoanAmount     *float64        `validate:"omitnil,gte=0"`
	DownPayment    *float64        `validate:"omitnil,gte=0"`
	InterestRate   *float64        `validate:"omitnil,gte=0"`
	LoanTerm       *int            `validate:"omitnil,gte=0"`
	MonthlyPayment *float64        `validate:"omitnil,gte=0"`
	ApprovalStatus *ApprovalStatus `validate:"omitnil,oneof=pending approved rejected"`
}

func (p ProjectPatch) ApplyTo(proj *PropertyProject) {
	setIf(&proj.Name, p.Name)
	setIf(&proj.PropertyType, p.PropertyType)
	setPtrIf(&proj.Address, p.Address)
	setPtrIf(&proj.Price, p.Price)
	setPtrIf(&proj.Size, p.Size)
	setPtrIf(&proj.Rooms, p.Rooms)
	setIf(&proj.Stage, p.Stage)
}

func (p DocumentPatch) ApplyTo(d *Document) {
	setIf(&d.Name, p.Name)
	setIf(&d.Category, p.Category)
	setIf(&d.Date, p.Date)
	setPtrIf(&d.FileURL, p.FileURL)
	setPtrIf(&d.Notes, p.Notes)
}

func (p ContactPatch) ApplyTo(c *Contact) {
	setIf(&c.Name, p.Name)
	setIf(&c.Role, p.Role)
	setPtrIf(&c.Phone, p.Phone)
	setPtrIf(&c.Email, p.Email)
	setPtrIf(&c.Notes, p.Notes)
}

func (p TaskPatch) ApplyTo(t *Task) {
	setIf(&t.Title, p.Title)
	setPtrIf(&t.Description, p.Description)
	setPtrIf(&t.DueDate, p.DueDate)
	setIf(&t.Completed, p.Completed)
	setIf(&t.Stage, p.Stage)
	setIf(&t.Priority, p.Priority)
}

func (p FinancingPatch) ApplyTo(f *FinancingDetails) {
	setPtrIf(&f.LoanAmount, p.LoanAmount)
	setPtrIf(&f.DownPayment, p.DownPayment)
	setPtrIf(&f.InterestRate, p.InterestRate)
	setPtrIf(&f.LoanTerm, p.LoanTerm)
	setPtrIf(&f.MonthlyPayment, p.MonthlyPayment)
	setPtrIf(&f.ApprovalStatus, p.ApprovalStatus)
}

// IsEmpty reports whether the patch would change nothing.
func (p FinancingPatch) IsEmpty() bool {
	return p == FinancingPatch{}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// setPtrIf copies the value so the stored record never aliases caller memory.
func setPtrIf[T any](dst **T, v *T) {
	if v != nil {
		*dst = clonePtr(v)
	}
}
