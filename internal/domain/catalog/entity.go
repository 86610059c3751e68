package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type SalaryRange struct {
	Min float64
	Max float64
}

func (r SalaryRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

type RequiredSkill struct {
	Name          string
	RequiredLevel int
}

// CompanyAttributes carry the upstream company research signals, each 0-100.
type CompanyAttributes struct {
	DiversityScore float64
	GrowthScore    float64
	CultureScore   float64
}

// Posting is one catalog entry as supplied by the ingestion pipeline. Entries
// may arrive partially malformed; Validate gates them before scoring.
type Posting struct {
	ID             uuid.UUID
	Title          string
	Company        string
	SalaryRange    SalaryRange
	RequiredSkills []RequiredSkill
	MSA            string
	Remote         bool
	CommuteMiles   float64
	Attributes     CompanyAttributes
	Description    string
	EquityOffered  bool
	BonusPotential float64
	GrowthTrend    float64
}

var (
	ErrMissingID          = errors.New("posting id missing")
	ErrInvalidSalaryRange = errors.New("invalid salary range")
	ErrNoRequiredSkills   = errors.New("required skills missing")
)

func (p Posting) Validate() error {
	if p.ID == uuid.Nil {
		return ErrMissingID
	}
	if p.SalaryRange.Min <= 0 || p.SalaryRange.Max < p.SalaryRange.Min {
		return ErrInvalidSalaryRange
	}
	if len(p.RequiredSkills) == 0 {
		return ErrNoRequiredSkills
	}
	return nil
}

// DedupeKey collapses the same role listed on multiple job boards. Company and
// title are lowercased with whitespace runs squeezed to a single space.
func (p Posting) DedupeKey() string {
	return normalizeKeyPart(p.Company) + "|" + normalizeKeyPart(p.Title)
}

func normalizeKeyPart(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
