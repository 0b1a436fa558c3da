package profile

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/saranraj027/alliance-matrimony-backend/internal/auditlog"
)

var (
	ErrKulaDeityRequired = errors.New("please fill Kula Deity before saving family details")
	ErrProfileNotFound   = errors.New("profile not found")
)

type Service interface {
	// GetOrCreate lazily creates a bare profile on first visit
	GetOrCreate(ctx context.Context, userID uint, username string) (*MemberProfile, bool, error)
	View(ctx context.Context, profileID uint) (*MemberProfile, UserName, error)

	UpdateMember(ctx context.Context, userID uint, in MemberForm, ip string) error
	UpdateFamily(ctx context.Context, userID uint, in FamilyForm, ip string) error
	UpdateBirth(ctx context.Context, userID uint, in BirthForm, ip string) error
	UpdateProfessional(ctx context.Context, userID uint, in ProfessionalForm, ip string) error
}

type service struct {
	repo     Repository
	refs     Refs
	auditSvc auditlog.Service
}

func NewService(repo Repository, refs Refs, auditSvc auditlog.Service) Service {
	return &service{repo: repo, refs: refs, auditSvc: auditSvc}
}

func (s *service) GetOrCreate(ctx context.Context, userID uint, username string) (*MemberProfile, bool, error) {
	p, err := s.repo.GetByUserID(userID)
	if err == nil {
		return p, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	created := &MemberProfile{
		UserID: userID,
		Mobile: username,
		Gender: GenderOther,
	}
	if err := s.repo.Create(created); err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func (s *service) View(ctx context.Context, profileID uint) (*MemberProfile, UserName, error) {
	p, err := s.repo.GetByID(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, UserName{}, ErrProfileNotFound
		}
		return nil, UserName{}, err
	}
	name, err := s.repo.GetUserName(p.UserID)
	if err != nil {
		return nil, UserName{}, err
	}
	return p, name, nil
}

// ========== Section: member ==========

type MemberForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mobile    string `json:"mobile"`
	Gender    string `json:"gender"`
}

func (s *service) UpdateMember(ctx context.Context, userID uint, in MemberForm, ip string) error {
	p, err := s.repo.GetByUserID(userID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateUserName(userID, strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)); err != nil {
		return err
	}

	// the stored mobile only changes when the submission normalizes to a
	// valid Indian number
	if mobile, ok := normalizeMemberMobile(in.Mobile); ok {
		p.Mobile = mobile
	}
	switch in.Gender {
	case GenderMale, GenderFemale, GenderOther:
		p.Gender = in.Gender
	}
	if err := s.repo.Save(p); err != nil {
		return err
	}

	s.audit(ctx, userID, "PROFILE_MEMBER_SAVED", ip)
	return nil
}

var nonDigits = regexp.MustCompile(`\D`)

// normalizeMemberMobile mirrors the registration rule: strip non-digits, keep
// the last 10 on longer input, require a 10-digit number starting 6-9.
func normalizeMemberMobile(raw string) (string, bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	if len(digits) != 10 || !strings.ContainsRune("6789", rune(digits[0])) {
		return "", false
	}
	return digits, true
}

// ========== Section: family ==========

func (s *service) UpdateFamily(ctx context.Context, userID uint, in FamilyForm, ip string) error {
	// mandatory field checked before any persistence
	if strings.TrimSpace(in.KulaDeity) == "" {
		return ErrKulaDeityRequired
	}

	p, err := s.repo.GetByUserID(userID)
	if err != nil {
		return err
	}

	fd := p.FamilyDetail
	if fd == nil {
		fd = &FamilyDetail{ProfileID: p.ID}
	}
	ApplyFamily(fd, in, s.refs)
	if err := s.repo.SaveFamily(fd); err != nil {
		return err
	}

	s.audit(ctx, userID, "PROFILE_FAMILY_SAVED", ip)
	return nil
}

// ========== Section: birth ==========

func (s *service) UpdateBirth(ctx context.Context, userID uint, in BirthForm, ip string) error {
	p, err := s.repo.GetByUserID(userID)
	if err != nil {
		return err
	}

	bd := p.BirthDetail
	if bd == nil {
		bd = &BirthDetail{ProfileID: p.ID}
	}
	ApplyBirth(bd, in, s.refs)
	if err := s.repo.SaveBirth(bd); err != nil {
		return err
	}

	s.audit(ctx, userID, "PROFILE_BIRTH_SAVED", ip)
	return nil
}

// ========== Section: professional ==========

func (s *service) UpdateProfessional(ctx context.Context, userID uint, in ProfessionalForm, ip string) error {
	p, err := s.repo.GetByUserID(userID)
	if err != nil {
		return err
	}

	pd := p.ProfessionalDetail
	if pd == nil {
		pd = &ProfessionalDetail{ProfileID: p.ID}
	}
	ApplyProfessional(pd, in, s.refs)
	if err := s.repo.SaveProfessional(pd); err != nil {
		return err
	}

	s.audit(ctx, userID, "PROFILE_PROFESSIONAL_SAVED", ip)
	return nil
}

func (s *service) audit(ctx context.Context, userID uint, action, ip string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(ctx, &userID, action, nil, ip, "success")
}
