package photo

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(p *ProfilePhoto) error
	CountByProfile(profileID uint) (int64, error)
	ListByProfile(profileID uint) ([]ProfilePhoto, error)
	FindOwned(id, profileID uint) (*ProfilePhoto, error)
	SetPrimary(profileID, photoID uint) error
	Delete(p *ProfilePhoto) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(p *ProfilePhoto) error {
	return r.db.Create(p).Error
}

func (r *repository) CountByProfile(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ProfilePhoto{}).Where("profile_id = ?", profileID).Count(&count).Error
	return count, err
}

func (r *repository) ListByProfile(profileID uint) ([]ProfilePhoto, error) {
	var rows []ProfilePhoto
	err := r.db.Where("profile_id = ?", profileID).Order("uploaded_at").Find(&rows).Error
	return rows, err
}

// FindOwned scopes the lookup to the requesting profile; a photo belonging
// to someone else is indistinguishable from a missing one.
func (r *repository) FindOwned(id, profileID uint) (*ProfilePhoto, error) {
	var p ProfilePhoto
	err := r.db.Where("id = ? AND profile_id = ?", id, profileID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPrimary clears the old flag and sets the new one in a single
// transaction so concurrent requests cannot leave zero or two primaries.
func (r *repository) SetPrimary(profileID, photoID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ProfilePhoto{}).
			Where("profile_id = ? AND is_primary = ?", profileID, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&ProfilePhoto{}).
			Where("id = ? AND profile_id = ?", photoID, profileID).
			Update("is_primary", true).Error
	})
}

func (r *repository) Delete(p *ProfilePhoto) error {
	return r.db.Delete(p).Error
}
