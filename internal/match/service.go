package match

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/saranraj027/alliance-matrimony-backend/internal/profile"
)

// Candidate is a match-list row
type Candidate struct {
	Profile profile.MemberProfile `json:"profile"`
}

type Result struct {
	Candidates []Candidate `json:"candidates"`
	// MeComplete tells the client whether to prompt the caller to finish
	// their own profile first.
	MeComplete bool `json:"me_complete"`
}

type Service interface {
	Matches(ctx context.Context, userID uint) (*Result, error)
	Shortlisted(ctx context.Context, userID uint) ([]Candidate, error)
}

type service struct {
	profiles profile.Repository
}

func NewService(profiles profile.Repository) Service {
	return &service{profiles: profiles}
}

// Matches lists every other member of the target gender whose profile is
// complete. Gender O applies no gender filter, so those members see all
// completed profiles. Natural retrieval order, no ranking.
func (s *service) Matches(ctx context.Context, userID uint) (*Result, error) {
	var myGender string
	meComplete := false

	me, err := s.profiles.GetByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if me != nil {
		myGender = me.Gender
		meComplete = me.IsComplete()
	}

	rows, err := s.profiles.ListCandidates(userID, profile.TargetGender(myGender))
	if err != nil {
		return nil, err
	}

	result := &Result{MeComplete: meComplete, Candidates: []Candidate{}}
	for _, p := range rows {
		if p.IsComplete() {
			result.Candidates = append(result.Candidates, Candidate{Profile: p})
		}
	}
	return result, nil
}

// Shortlisted is a placeholder; the shortlist feature has no storage yet.
func (s *service) Shortlisted(ctx context.Context, userID uint) ([]Candidate, error) {
	return []Candidate{}, nil
}
