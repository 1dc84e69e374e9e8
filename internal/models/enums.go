package models

import "slices"

// PropertyType is the kind of property being bought.
type PropertyType string

const (
	Apartment PropertyType = "apartment"
	House     PropertyType = "house"
	Land      PropertyType = "land"
)

// PropertyTypes is the set of allowed property types.
var PropertyTypes = []PropertyType{Apartment, House, Land}

func (t PropertyType) IsValid() bool {
	return slices.Contains(PropertyTypes, t)
}

func (t PropertyType) Label() string {
	switch t {
	case Apartment:
		return "Appartement"
	case House:
		return "Maison"
	case Land:
		return "Terrain"
	default:
		return string(t)
	}
}

// ParsePropertyType accepts either the identifier or the display label.
func ParsePropertyType(s string) (PropertyType, bool) {
	for _, t := range PropertyTypes {
		if s == string(t) || s == t.Label() {
			return t, true
		}
	}
	return "", false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) IsValid() bool {
	return slices.Contains(Priorities, p)
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

var ApprovalStatuses = []ApprovalStatus{ApprovalPending, ApprovalApproved, ApprovalRejected}

func (s ApprovalStatus) IsValid() bool {
	return slices.Contains(ApprovalStatuses, s)
}

func (s ApprovalStatus) Label() string {
	switch s {
	case ApprovalPending:
		return "En attente"
	case ApprovalApproved:
		return "Accordé"
	case ApprovalRejected:
		return "Refusé"
	default:
		return string(s)
	}
}

// DocumentCategories is the closed list of document category labels.
var DocumentCategories = []string{
	"Compromis",
	"Offre de prêt",
	"Attestation",
	"Diagnostic",
	"Plan",
	"Facture",
	"Contrat",
	"Autre",
}

// ContactRoles lists the suggested contact roles. Contacts may also carry a
// free-text role.
var ContactRoles = []string{
	"Agent immobilier",
	"Vendeur",
	"Notaire",
	"Banquier",
	"Courtier",
	"Assureur",
	"Diagnostiqueur",
	"Autre",
}

func IsDocumentCategory(s string) bool {
	return slices.Contains(DocumentCategories, s)
}
