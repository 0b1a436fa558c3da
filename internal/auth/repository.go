package auth

import (
	"gorm.io/gorm"

	"github.com/saranraj027/alliance-matrimony-backend/internal/profile"
)

type Repository interface {
	Create(user *User) error
	Update(user *User) error
	FindByUsername(username string) (*User, error)
	FindByID(userID uint) (User, error)
	FindRoleByName(name string) (*UserRole, error)
	UsernameExists(username string) (bool, error)
	CreateMemberProfile(p *profile.MemberProfile) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

func (r *repository) Update(user *User) error {
	return r.db.Save(user).Error
}

// Find user by username (the normalized mobile), used in login
func (r *repository) FindByUsername(username string) (*User, error) {
	var u User
	err := r.db.Preload("Role").Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(userID uint) (User, error) {
	var user User
	err := r.db.Preload("Role").First(&user, userID).Error
	return user, err
}

func (r *repository) FindRoleByName(name string) (*UserRole, error) {
	var role UserRole
	err := r.db.Where("role_name = ?", name).First(&role).Error
	return &role, err
}

func (r *repository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateMemberProfile(p *profile.MemberProfile) error {
	return r.db.Create(p).Error
}
