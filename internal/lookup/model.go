package lookup

// Reference tables for the profile dropdowns. Each carries an English and a
// Tamil label. Koottam is scoped under a Caste, Star under a Rasi.

type Caste struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Caste   string `gorm:"size:100;unique;not null" json:"caste"`
	CasteTa string `gorm:"size:100" json:"caste_ta"`
}

type Koottam struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CasteID    uint   `gorm:"not null;index:idx_caste_subcaste,unique" json:"caste_id"`
	Subcaste   string `gorm:"size:100;not null;index:idx_caste_subcaste,unique" json:"subcaste"`
	SubcasteTa string `gorm:"size:100" json:"subcaste_ta"`
}

type Rasi struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Rasi   string `gorm:"size:50;unique;not null" json:"rasi"`
	RasiTa string `gorm:"size:50" json:"rasi_ta"`
}

type Star struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	RasiID uint   `gorm:"not null;index:idx_rasi_star,unique" json:"rasi_id"`
	Star   string `gorm:"size:50;not null;index:idx_rasi_star,unique" json:"star"`
	StarTa string `gorm:"size:50" json:"star_ta"`
}

type Dhosam struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Dhosam   string `gorm:"size:100;unique;not null" json:"dhosam"`
	DhosamTa string `gorm:"size:100" json:"dhosam_ta"`
}

type Education struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Education   string `gorm:"size:100;unique;not null" json:"education"`
	EducationTa string `gorm:"size:100" json:"education_ta"`
}

type Profession struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Profession   string `gorm:"size:100;unique;not null" json:"profession"`
	ProfessionTa string `gorm:"size:100" json:"profession_ta"`
}
