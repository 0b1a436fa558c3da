package profile

import (
	"gorm.io/gorm"
)

// UserName is the display slice of the users table kept alongside a profile
type UserName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Repository interface {
	Create(p *MemberProfile) error
	Save(p *MemberProfile) error
	GetByUserID(userID uint) (*MemberProfile, error)
	GetByID(id uint) (*MemberProfile, error)
	ListCandidates(excludeUserID uint, gender string) ([]MemberProfile, error)

	SaveFamily(fd *FamilyDetail) error
	SaveBirth(bd *BirthDetail) error
	SaveProfessional(pd *ProfessionalDetail) error

	GetUserName(userID uint) (UserName, error)
	UpdateUserName(userID uint, first, last string) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(p *MemberProfile) error {
	return r.db.Create(p).Error
}

func (r *repository) Save(p *MemberProfile) error {
	return r.db.Save(p).Error
}

func (r *repository) GetByUserID(userID uint) (*MemberProfile, error) {
	var p MemberProfile
	err := r.db.
		Preload("FamilyDetail").
		Preload("BirthDetail").
		Preload("ProfessionalDetail").
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(id uint) (*MemberProfile, error) {
	var p MemberProfile
	err := r.db.
		Preload("FamilyDetail").
		Preload("BirthDetail").
		Preload("ProfessionalDetail").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCandidates returns every other member's profile with details preloaded,
// optionally narrowed to one gender. Completeness is filtered in memory by
// the caller.
func (r *repository) ListCandidates(excludeUserID uint, gender string) ([]MemberProfile, error) {
	q := r.db.
		Preload("FamilyDetail").
		Preload("BirthDetail").
		Preload("ProfessionalDetail").
		Where("user_id <> ?", excludeUserID)
	if gender != "" {
		q = q.Where("gender = ?", gender)
	}

	var profiles []MemberProfile
	err := q.Find(&profiles).Error
	return profiles, err
}

func (r *repository) SaveFamily(fd *FamilyDetail) error {
	return r.db.Save(fd).Error
}

func (r *repository) SaveBirth(bd *BirthDetail) error {
	return r.db.Save(bd).Error
}

func (r *repository) SaveProfessional(pd *ProfessionalDetail) error {
	return r.db.Save(pd).Error
}

func (r *repository) GetUserName(userID uint) (UserName, error) {
	var n UserName
	err := r.db.Table("users").
		Select("first_name, last_name").
		Where("id = ?", userID).
		Scan(&n).Error
	return n, err
}

func (r *repository) UpdateUserName(userID uint, first, last string) error {
	updates := map[string]interface{}{}
	if first != "" {
		updates["first_name"] = first
	}
	if last != "" {
		updates["last_name"] = last
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Table("users").Where("id = ?", userID).Updates(updates).Error
}
