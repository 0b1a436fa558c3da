package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func completeProfile() *MemberProfile {
	dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	income := 25000
	return &MemberProfile{
		Gender:             GenderMale,
		FamilyDetail:       &FamilyDetail{FatherName: "Raman"},
		BirthDetail:        &BirthDetail{DateOfBirth: &dob},
		ProfessionalDetail: &ProfessionalDetail{MonthlyIncome: &income},
	}
}

func TestIsComplete(t *testing.T) {
	t.Run("all sections with one field each", func(t *testing.T) {
		assert.True(t, completeProfile().IsComplete())
	})

	t.Run("missing a section", func(t *testing.T) {
		p := completeProfile()
		p.ProfessionalDetail = nil
		assert.False(t, p.IsComplete())
	})

	t.Run("section present but empty", func(t *testing.T) {
		p := completeProfile()
		p.BirthDetail = &BirthDetail{}
		assert.False(t, p.IsComplete())
	})

	t.Run("father name alone fills the family section", func(t *testing.T) {
		p := completeProfile()
		p.FamilyDetail = &FamilyDetail{FatherName: "Raman"}
		assert.True(t, p.IsComplete())
	})

	t.Run("dhosam alone does not fill the birth section", func(t *testing.T) {
		p := completeProfile()
		dhosamID := uint(1)
		p.BirthDetail = &BirthDetail{DhosamID: &dhosamID}
		assert.False(t, p.IsComplete())
	})

	t.Run("place of birth alone fills the birth section", func(t *testing.T) {
		p := completeProfile()
		p.BirthDetail = &BirthDetail{PlaceOfBirth: "Madurai"}
		assert.True(t, p.IsComplete())
	})

	t.Run("bare profile", func(t *testing.T) {
		p := &MemberProfile{Gender: GenderOther}
		assert.False(t, p.IsComplete())
	})
}

func TestTargetGender(t *testing.T) {
	assert.Equal(t, GenderFemale, TargetGender(GenderMale))
	assert.Equal(t, GenderMale, TargetGender(GenderFemale))
	assert.Equal(t, "", TargetGender(GenderOther))
	assert.Equal(t, "", TargetGender(""))
	assert.Equal(t, "", TargetGender("X"))
}
