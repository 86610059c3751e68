package profile

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

type CompanySize string

const (
	CompanyStartup    CompanySize = "startup"
	CompanyMid        CompanySize = "mid"
	CompanyEnterprise CompanySize = "enterprise"
)

type Skill struct {
	Name        string
	Proficiency int
}

// Profile is a read-only snapshot of the user's career situation, produced by
// the upstream profile service. The engine never mutates it.
type Profile struct {
	UserID                uuid.UUID
	CurrentSalary         float64
	Skills                []Skill
	Experience            ExperienceLevel
	PreferredLocations    []string
	RemotePreference      bool
	PreferredCompanySizes []CompanySize
}

var (
	ErrInvalidSalary  = errors.New("current salary must be positive")
	ErrDuplicateSkill = errors.New("duplicate skill name")
)

func (p Profile) Validate() error {
	if p.CurrentSalary <= 0 {
		return ErrInvalidSalary
	}

	seen := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		key := NormalizeSkillName(s.Name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			return ErrDuplicateSkill
		}
		seen[key] = struct{}{}
	}
	return nil
}

// SkillLevels returns proficiency keyed by normalized skill name.
func (p Profile) SkillLevels() map[string]int {
	out := make(map[string]int, len(p.Skills))
	for _, s := range p.Skills {
		key := NormalizeSkillName(s.Name)
		if key == "" {
			continue
		}
		out[key] = s.Proficiency
	}
	return out
}

func (p Profile) PrefersLocation(msa string) bool {
	msa = strings.TrimSpace(msa)
	if msa == "" {
		return false
	}
	for _, it := range p.PreferredLocations {
		if strings.EqualFold(strings.TrimSpace(it), msa) {
			return true
		}
	}
	return false
}

func NormalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
