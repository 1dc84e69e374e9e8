package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneIsDeep(t *testing.T) {
	p := PropertyProject{
		ID:        "p",
		Price:     Ptr(100.0),
		Documents: []Document{{ID: "d", Notes: Ptr("n")}},
		Tasks:     []Task{{ID: "t"}},
		Contacts:  []Contact{{ID: "c", Phone: Ptr("1")}},
		Financing: FinancingDetails{LoanTerm: Ptr(25)},
	}

	c := p.Clone()
	assert.Equal(t, p, c)

	*c.Price = 1
	*c.Documents[0].Notes = "changed"
	c.Tasks[0].Completed = true
	*c.Contacts[0].Phone = "2"
	*c.Financing.LoanTerm = 10

	assert.Equal(t, 100.0, *p.Price)
	assert.Equal(t, "n", *p.Documents[0].Notes)
	assert.False(t, p.Tasks[0].Completed)
	assert.Equal(t, "1", *p.Contacts[0].Phone)
	assert.Equal(t, 25, *p.Financing.LoanTerm)
}

func TestPatchOnlyTouchesProvidedFields(t *testing.T) {
	task := Task{ID: "t", Title: "Visite", Stage: StageSearch, Priority: PriorityMedium}
	TaskPatch{Completed: Ptr(true)}.ApplyTo(&task)

	assert.Equal(t, Task{ID: "t", Title: "Visite", Stage: StageSearch, Priority: PriorityMedium, Completed: true}, task)

	f := FinancingDetails{LoanAmount: Ptr(1.0)}
	assert.True(t, FinancingPatch{}.IsEmpty())
	FinancingPatch{DownPayment: Ptr(2.0)}.ApplyTo(&f)
	assert.Equal(t, 1.0, *f.LoanAmount)
	assert.Equal(t, 2.0, *f.DownPayment)
}

func TestEnums(t *testing.T) {
	pt, ok := ParsePropertyType("Maison")
	assert.True(t, ok)
	assert.Equal(t, House, pt)
	assert.Equal(t, "Terrain", Land.Label())
	assert.False(t, PropertyType("castle").IsValid())

	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority("urgent").IsValid())
	assert.True(t, ApprovalRejected.IsValid())

	assert.True(t, IsDocumentCategory("Offre de prêt"))
	assert.False(t, IsDocumentCategory("Recette"))
}
