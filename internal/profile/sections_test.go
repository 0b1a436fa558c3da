package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRefs treats every id below 100 as a known lookup row
type fakeRefs struct{}

func (fakeRefs) HasCaste(id uint) bool      { return id < 100 }
func (fakeRefs) HasKoottam(id uint) bool    { return id < 100 }
func (fakeRefs) HasRasi(id uint) bool       { return id < 100 }
func (fakeRefs) HasStar(id uint) bool       { return id < 100 }
func (fakeRefs) HasDhosam(id uint) bool     { return id < 100 }
func (fakeRefs) HasEducation(id uint) bool  { return id < 100 }
func (fakeRefs) HasProfession(id uint) bool { return id < 100 }

func TestApplyFamily(t *testing.T) {
	refs := fakeRefs{}

	t.Run("resolves known lookup ids", func(t *testing.T) {
		var fd FamilyDetail
		ApplyFamily(&fd, FamilyForm{
			FatherName: "  Raman ",
			KulaDeity:  "Murugan",
			Caste:      "3",
			Koottam:    "7",
		}, refs)

		assert.Equal(t, "Raman", fd.FatherName)
		assert.Equal(t, "Murugan", fd.KulaDeity)
		require.NotNil(t, fd.CasteID)
		assert.Equal(t, uint(3), *fd.CasteID)
		require.NotNil(t, fd.KoottamID)
		assert.Equal(t, uint(7), *fd.KoottamID)
	})

	t.Run("unknown or malformed ids become no selection", func(t *testing.T) {
		var fd FamilyDetail
		ApplyFamily(&fd, FamilyForm{Caste: "500", Koottam: "abc"}, refs)
		assert.Nil(t, fd.CasteID)
		assert.Nil(t, fd.KoottamID)
	})

	t.Run("resubmission clears fields left empty", func(t *testing.T) {
		casteID := uint(3)
		fd := FamilyDetail{FatherName: "Raman", CasteID: &casteID}
		ApplyFamily(&fd, FamilyForm{MotherName: "Meena"}, refs)
		assert.Empty(t, fd.FatherName)
		assert.Equal(t, "Meena", fd.MotherName)
		assert.Nil(t, fd.CasteID)
	})
}

func TestApplyBirth(t *testing.T) {
	refs := fakeRefs{}

	t.Run("parses date and time", func(t *testing.T) {
		var bd BirthDetail
		ApplyBirth(&bd, BirthForm{
			DateOfBirth:  "1995-06-15",
			TimeOfBirth:  "04:30",
			PlaceOfBirth: "Madurai",
			Rasi:         "2",
			Star:         "5",
		}, refs)

		require.NotNil(t, bd.DateOfBirth)
		assert.Equal(t, time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), *bd.DateOfBirth)
		require.NotNil(t, bd.TimeOfBirth)
		assert.Equal(t, "04:30", *bd.TimeOfBirth)
		assert.Equal(t, "Madurai", bd.PlaceOfBirth)
	})

	t.Run("accepts seconds in time of birth", func(t *testing.T) {
		var bd BirthDetail
		ApplyBirth(&bd, BirthForm{TimeOfBirth: "04:30:15"}, refs)
		require.NotNil(t, bd.TimeOfBirth)
		assert.Equal(t, "04:30:15", *bd.TimeOfBirth)
	})

	t.Run("unparseable values become not provided", func(t *testing.T) {
		var bd BirthDetail
		ApplyBirth(&bd, BirthForm{
			DateOfBirth: "15/06/1995",
			TimeOfBirth: "half past four",
			Dhosam:      "999",
		}, refs)
		assert.Nil(t, bd.DateOfBirth)
		assert.Nil(t, bd.TimeOfBirth)
		assert.Nil(t, bd.DhosamID)
	})
}

func TestApplyProfessional(t *testing.T) {
	refs := fakeRefs{}

	tests := []struct {
		name   string
		income string
		want   *int
	}{
		{"within bounds", "25000", intPtr(25000)},
		{"minimum", "1000", intPtr(1000)},
		{"maximum", "9999999", intPtr(9999999)},
		{"below minimum", "999", nil},
		{"above maximum", "10000000", nil},
		{"non numeric", "lots", nil},
		{"empty", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var pd ProfessionalDetail
			ApplyProfessional(&pd, ProfessionalForm{MonthlyIncome: tc.income}, refs)
			assert.Equal(t, tc.want, pd.MonthlyIncome)
		})
	}
}

func intPtr(n int) *int { return &n }
