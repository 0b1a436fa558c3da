package profile

import (
	"strconv"
	"strings"
	"time"

	"github.com/saranraj027/alliance-matrimony-backend/internal/lookup"
)

// Section discriminators for the profile editor
const (
	SectionMember        = "member"
	SectionFamily        = "family"
	SectionBirth         = "birth"
	SectionProfessional  = "professional"
	SectionResetPassword = "reset_password"
)

// Refs is the slice of the lookup catalog the section editors need.
// *lookup.Catalog satisfies it; tests use small fakes.
type Refs interface {
	HasCaste(id uint) bool
	HasKoottam(id uint) bool
	HasRasi(id uint) bool
	HasStar(id uint) bool
	HasDhosam(id uint) bool
	HasEducation(id uint) bool
	HasProfession(id uint) bool
}

// Form fields arrive as strings, exactly as submitted. Lookup references are
// ids in string form; anything unresolvable becomes "no selection".

type FamilyForm struct {
	FatherName string `json:"father_name"`
	MotherName string `json:"mother_name"`
	Siblings   string `json:"siblings"`
	KulaDeity  string `json:"kula_deity"`
	Caste      string `json:"caste"`
	Koottam    string `json:"koottam"`
}

type BirthForm struct {
	DateOfBirth  string `json:"date_of_birth"` // 2006-01-02
	TimeOfBirth  string `json:"time_of_birth"` // 15:04 or 15:04:05
	PlaceOfBirth string `json:"place_of_birth"`
	Rasi         string `json:"rasi"`
	Star         string `json:"star"`
	Dhosam       string `json:"dhosam"`
}

type ProfessionalForm struct {
	Education     string `json:"education"`
	Profession    string `json:"profession"`
	MonthlyIncome string `json:"monthly_income"`
}

// ApplyFamily overwrites the stored family section from the submitted form.
// Text fields store trimmed values or empty strings, never NULL.
func ApplyFamily(fd *FamilyDetail, in FamilyForm, refs Refs) {
	fd.FatherName = strings.TrimSpace(in.FatherName)
	fd.MotherName = strings.TrimSpace(in.MotherName)
	fd.Siblings = strings.TrimSpace(in.Siblings)
	fd.KulaDeity = strings.TrimSpace(in.KulaDeity)
	fd.CasteID = lookup.ResolveRef(in.Caste, refs.HasCaste)
	fd.KoottamID = lookup.ResolveRef(in.Koottam, refs.HasKoottam)
}

// ApplyBirth overwrites the stored birth section from the submitted form.
// Unparseable dates and times are treated as "not provided".
func ApplyBirth(bd *BirthDetail, in BirthForm, refs Refs) {
	bd.DateOfBirth = parseDate(in.DateOfBirth)
	bd.TimeOfBirth = parseTime(in.TimeOfBirth)
	bd.PlaceOfBirth = strings.TrimSpace(in.PlaceOfBirth)
	bd.RasiID = lookup.ResolveRef(in.Rasi, refs.HasRasi)
	bd.StarID = lookup.ResolveRef(in.Star, refs.HasStar)
	bd.DhosamID = lookup.ResolveRef(in.Dhosam, refs.HasDhosam)
}

// ApplyProfessional overwrites the stored professional section. Income
// outside [1000, 9999999] or non-numeric is stored as no value.
func ApplyProfessional(pd *ProfessionalDetail, in ProfessionalForm, refs Refs) {
	pd.EducationID = lookup.ResolveRef(in.Education, refs.HasEducation)
	pd.ProfessionID = lookup.ResolveRef(in.Profession, refs.HasProfession)
	pd.MonthlyIncome = parseIncome(in.MonthlyIncome)
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func parseTime(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if _, err := time.Parse(layout, raw); err == nil {
			return &raw
		}
	}
	return nil
}

func parseIncome(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinMonthlyIncome || n > MaxMonthlyIncome {
		return nil
	}
	return &n
}
