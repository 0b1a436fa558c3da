package match

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saranraj027/alliance-matrimony-backend/internal/profile"
)

type fakeProfileRepo struct {
	byUserID map[uint]*profile.MemberProfile
	all      []profile.MemberProfile
}

func (f *fakeProfileRepo) Create(p *profile.MemberProfile) error { return nil }
func (f *fakeProfileRepo) Save(p *profile.MemberProfile) error   { return nil }

func (f *fakeProfileRepo) GetByUserID(userID uint) (*profile.MemberProfile, error) {
	p, ok := f.byUserID[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByID(id uint) (*profile.MemberProfile, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) ListCandidates(excludeUserID uint, gender string) ([]profile.MemberProfile, error) {
	var out []profile.MemberProfile
	for _, p := range f.all {
		if p.UserID == excludeUserID {
			continue
		}
		if gender != "" && p.Gender != gender {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) SaveFamily(fd *profile.FamilyDetail) error             { return nil }
func (f *fakeProfileRepo) SaveBirth(bd *profile.BirthDetail) error               { return nil }
func (f *fakeProfileRepo) SaveProfessional(pd *profile.ProfessionalDetail) error { return nil }
func (f *fakeProfileRepo) GetUserName(userID uint) (profile.UserName, error) {
	return profile.UserName{}, nil
}
func (f *fakeProfileRepo) UpdateUserName(userID uint, first, last string) error { return nil }

func testMember(userID uint, gender string, complete bool) profile.MemberProfile {
	p := profile.MemberProfile{ID: userID, UserID: userID, Gender: gender}
	if complete {
		dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
		income := 25000
		p.FamilyDetail = &profile.FamilyDetail{FatherName: "Raman"}
		p.BirthDetail = &profile.BirthDetail{DateOfBirth: &dob}
		p.ProfessionalDetail = &profile.ProfessionalDetail{MonthlyIncome: &income}
	}
	return p
}

func TestMatches(t *testing.T) {
	ctx := context.Background()

	me := testMember(1, profile.GenderMale, true)
	repo := &fakeProfileRepo{
		byUserID: map[uint]*profile.MemberProfile{1: &me},
		all: []profile.MemberProfile{
			me,
			testMember(2, profile.GenderFemale, true),
			testMember(3, profile.GenderFemale, false),
			testMember(4, profile.GenderMale, true),
		},
	}
	svc := NewService(repo)

	t.Run("male sees only complete female profiles", func(t *testing.T) {
		res, err := svc.Matches(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.MeComplete)
		require.Len(t, res.Candidates, 1)
		assert.Equal(t, uint(2), res.Candidates[0].Profile.UserID)
	})

	t.Run("caller is excluded from own results", func(t *testing.T) {
		res, err := svc.Matches(ctx, 4)
		require.NoError(t, err)
		for _, c := range res.Candidates {
			assert.NotEqual(t, uint(4), c.Profile.UserID)
		}
	})

	t.Run("gender O sees all complete profiles", func(t *testing.T) {
		other := testMember(5, profile.GenderOther, true)
		repo.byUserID[5] = &other
		repo.all = append(repo.all, other)

		res, err := svc.Matches(ctx, 5)
		require.NoError(t, err)
		// users 1, 2 and 4 are complete; 3 is filtered out
		assert.Len(t, res.Candidates, 3)
	})

	t.Run("caller without profile still gets matches", func(t *testing.T) {
		res, err := svc.Matches(ctx, 99)
		require.NoError(t, err)
		assert.False(t, res.MeComplete)
		assert.NotEmpty(t, res.Candidates)
	})

	t.Run("incomplete caller is told to finish their profile", func(t *testing.T) {
		partial := testMember(6, profile.GenderFemale, false)
		repo.byUserID[6] = &partial

		res, err := svc.Matches(ctx, 6)
		require.NoError(t, err)
		assert.False(t, res.MeComplete)
	})
}

func TestShortlistedIsEmpty(t *testing.T) {
	svc := NewService(&fakeProfileRepo{})
	rows, err := svc.Shortlisted(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
