package reports

import (
	"gorm.io/gorm"
)

type Repository interface {
	MemberList() ([]MemberReportRow, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// MemberList flattens profiles with their detail sections and lookup labels.
// Left joins keep incomplete profiles in the export.
func (r *repository) MemberList() ([]MemberReportRow, error) {
	var rows []MemberReportRow
	err := r.db.Table("member_profiles mp").
		Select(`mp.id AS profile_id,
			TRIM(u.first_name || ' ' || u.last_name) AS full_name,
			mp.mobile,
			mp.gender,
			c.caste AS caste,
			k.subcaste AS koottam,
			bd.date_of_birth,
			ra.rasi AS rasi,
			st.star AS star,
			ed.education AS education,
			pr.profession AS profession,
			mp.created_at AS registered_at`).
		Joins("JOIN users u ON u.id = mp.user_id").
		Joins("LEFT JOIN family_details fd ON fd.profile_id = mp.id").
		Joins("LEFT JOIN birth_details bd ON bd.profile_id = mp.id").
		Joins("LEFT JOIN professional_details pd ON pd.profile_id = mp.id").
		Joins("LEFT JOIN castes c ON c.id = fd.caste_id").
		Joins("LEFT JOIN koottams k ON k.id = fd.koottam_id").
		Joins("LEFT JOIN rasis ra ON ra.id = bd.rasi_id").
		Joins("LEFT JOIN stars st ON st.id = bd.star_id").
		Joins("LEFT JOIN educations ed ON ed.id = pd.education_id").
		Joins("LEFT JOIN professions pr ON pr.id = pd.profession_id").
		Order("mp.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
