package profile

import (
	"time"
)

// Gender codes kept as single characters, matching the stored enum
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// MemberProfile is the one-to-one companion of a User. Mobile is a redundant
// copy of the username kept for display and uniqueness enforcement.
type MemberProfile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Mobile    string    `gorm:"size:15;unique;not null" json:"mobile"`
	Gender    string    `gorm:"size:1;not null;default:'O'" json:"gender"`
	CreatedAt time.Time `json:"created_at"`

	FamilyDetail       *FamilyDetail       `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"family_detail,omitempty"`
	BirthDetail        *BirthDetail        `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"birth_detail,omitempty"`
	ProfessionalDetail *ProfessionalDetail `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"professional_detail,omitempty"`
}

// FamilyDetail text columns default to empty strings, never NULL; only the
// lookup references are nullable.
type FamilyDetail struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID  uint   `gorm:"not null;uniqueIndex" json:"profile_id"`
	FatherName string `gorm:"size:200" json:"father_name"`
	MotherName string `gorm:"size:200" json:"mother_name"`
	Siblings   string `gorm:"size:200" json:"siblings"`
	KulaDeity  string `gorm:"size:200" json:"kula_deity"`
	CasteID    *uint  `gorm:"index" json:"caste_id,omitempty"`
	KoottamID  *uint  `gorm:"index" json:"koottam_id,omitempty"`
}

type BirthDetail struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID    uint       `gorm:"not null;uniqueIndex" json:"profile_id"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	TimeOfBirth  *string    `gorm:"size:8" json:"time_of_birth,omitempty"`
	PlaceOfBirth string     `gorm:"size:200" json:"place_of_birth"`
	RasiID       *uint      `gorm:"index" json:"rasi_id,omitempty"`
	StarID       *uint      `gorm:"index" json:"star_id,omitempty"`
	DhosamID     *uint      `gorm:"index" json:"dhosam_id,omitempty"`
}

type ProfessionalDetail struct {
	ID            uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID     uint  `gorm:"not null;uniqueIndex" json:"profile_id"`
	EducationID   *uint `gorm:"index" json:"education_id,omitempty"`
	ProfessionID  *uint `gorm:"index" json:"profession_id,omitempty"`
	MonthlyIncome *int  `json:"monthly_income,omitempty"`
}

// Monthly income bounds (min 4 digits, max 7 digits)
const (
	MinMonthlyIncome = 1000
	MaxMonthlyIncome = 9999999
)

// IsComplete reports whether the profile should appear in match lists: all
// three detail sections exist and each has at least one meaningful field.
func (p *MemberProfile) IsComplete() bool {
	fd := p.FamilyDetail
	bd := p.BirthDetail
	pd := p.ProfessionalDetail
	if fd == nil || bd == nil || pd == nil {
		return false
	}

	familyFilled := fd.FatherName != "" || fd.MotherName != "" || fd.Siblings != "" ||
		fd.CasteID != nil || fd.KoottamID != nil || fd.KulaDeity != ""
	birthFilled := bd.DateOfBirth != nil || bd.TimeOfBirth != nil || bd.PlaceOfBirth != "" ||
		bd.RasiID != nil || bd.StarID != nil
	profFilled := pd.EducationID != nil || pd.ProfessionID != nil || pd.MonthlyIncome != nil

	return familyFilled && birthFilled && profFilled
}

// TargetGender returns the opposite gender to match against, or "" when no
// gender filter applies (gender O sees every completed profile).
func TargetGender(gender string) string {
	switch gender {
	case GenderMale:
		return GenderFemale
	case GenderFemale:
		return GenderMale
	}
	return ""
}
