package domain

import (
	"time"

	"github.com/google/uuid"
)

// Finding is one contributed entry for the biomedical knowledge store:
// a drug or compound with the research facts attached to it. Validation
// tags cover the fields the contribution workflow requires; everything
// else is free text.
type Finding struct {
	ID               uuid.UUID
	DrugName         string `validate:"required,max=256"`
	CompoundID       string `validate:"max=64"`
	MolecularFormula string `validate:"max=128"`
	Description      string `validate:"required,max=8192"`
	Indication       string `validate:"max=1024"`
	Mechanism        string `validate:"max=4096"`
	ClinicalPhase    string `validate:"omitempty,oneof=preclinical phase-1 phase-2 phase-3 phase-4 approved"`
	SideEffects      []string
	Interactions     []string
	Dosage           string
	Route            string
	HalfLife         string
	Bioavailability  string
	References       string
	Notes            string
	SubmittedAt      time.Time
}
