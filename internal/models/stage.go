package models

import "math"

// Stage is one phase of a property purchase. Stages are totally ordered.
type Stage string

const (
	StageSearch      Stage = "search"
	StageOffer       Stage = "offer"
	StageNegotiation Stage = "negotiation"
	StageFinancing   Stage = "financing"
	StagePresale     Stage = "presale"
	StageNotary      Stage = "notary"
	StageSigning     Stage = "signing"
	StageHandover    Stage = "handover"
)

type StageInfo struct {
	ID          Stage
	Label       string
	Description string
}

// Stages is the fixed purchase sequence, in order.
var Stages = []StageInfo{
	{StageSearch, "Recherche", "Recherche et visite de biens immobiliers"},
	{StageOffer, "Offre", "Soumission d'une offre d'achat"},
	{StageNegotiation, "Négociation", "Négociation du prix et des conditions"},
	{StageFinancing, "Financement", "Recherche et obtention du financement"},
	{StagePresale, "Compromis", "Signature du compromis de vente"},
	{StageNotary, "Notaire", "Préparation des documents notariés"},
	{StageSigning, "Signature", "Signature de l'acte définitif"},
	{StageHandover, "Remise des clés", "Remise des clés et prise de possession"},
}

// Index returns the position of s in Stages, or -1 if s is unknown.
func (s Stage) Index() int {
	for i, info := range Stages {
		if info.ID == s {
			return i
		}
	}
	return -1
}

func (s Stage) IsValid() bool {
	return s.Index() >= 0
}

func (s Stage) Label() string {
	if i := s.Index(); i >= 0 {
		return Stages[i].Label
	}
	return string(s)
}

func (s Stage) Description() string {
	if i := s.Index(); i >= 0 {
		return Stages[i].Description
	}
	return ""
}

// Next returns the stage after s. It reports false at the last stage or when
// s is unknown.
func (s Stage) Next() (Stage, bool) {
	i := s.Index()
	if i < 0 || i == len(Stages)-1 {
		return "", false
	}
	return Stages[i+1].ID, true
}

// Previous returns the stage before s. It reports false at the first stage or
// when s is unknown.
func (s Stage) Previous() (Stage, bool) {
	i := s.Index()
	if i <= 0 {
		return "", false
	}
	return Stages[i-1].ID, true
}

// StageProgress is the completion percentage reached once stage s is active.
func StageProgress(s Stage) int {
	i := s.Index()
	if i < 0 {
		return 0
	}
	return int(math.Round(float64(i+1) / float64(len(Stages)) * 100))
}

// ParseStage accepts either the identifier or the display label.
func ParseStage(v string) (Stage, bool) {
	for _, info := range Stages {
		if v == string(info.ID) || v == info.Label {
			return info.ID, true
		}
	}
	return "", false
}
