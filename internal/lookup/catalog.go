package lookup

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Catalog holds the reference tables as immutable keyed mappings, loaded once
// at startup. Profile editing resolves submitted ids against it instead of
// hitting the database per field.
type Catalog struct {
	castes      map[uint]Caste
	koottams    map[uint]Koottam
	rasis       map[uint]Rasi
	stars       map[uint]Star
	dhosams     map[uint]Dhosam
	educations  map[uint]Education
	professions map[uint]Profession

	// retrieval order preserved for the dropdown lists
	casteList      []Caste
	koottamList    []Koottam
	rasiList       []Rasi
	starList       []Star
	dhosamList     []Dhosam
	educationList  []Education
	professionList []Profession
}

// LoadCatalog reads every reference table into memory
func LoadCatalog(db *gorm.DB) (*Catalog, error) {
	c := &Catalog{
		castes:      map[uint]Caste{},
		koottams:    map[uint]Koottam{},
		rasis:       map[uint]Rasi{},
		stars:       map[uint]Star{},
		dhosams:     map[uint]Dhosam{},
		educations:  map[uint]Education{},
		professions: map[uint]Profession{},
	}

	if err := db.Order("id").Find(&c.casteList).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id").Find(&c.koottamList).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id").Find(&c.rasiList).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id").Find(&c.starList).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id").Find(&c.dhosamList).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id").Find(&c.educationList).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id").Find(&c.professionList).Error; err != nil {
		return nil, err
	}

	for _, row := range c.casteList {
		c.castes[row.ID] = row
	}
	for _, row := range c.koottamList {
		c.koottams[row.ID] = row
	}
	for _, row := range c.rasiList {
		c.rasis[row.ID] = row
	}
	for _, row := range c.starList {
		c.stars[row.ID] = row
	}
	for _, row := range c.dhosamList {
		c.dhosams[row.ID] = row
	}
	for _, row := range c.educationList {
		c.educations[row.ID] = row
	}
	for _, row := range c.professionList {
		c.professions[row.ID] = row
	}

	return c, nil
}

// NewCatalog builds a catalog directly from rows (used by tests)
func NewCatalog(castes []Caste, koottams []Koottam, rasis []Rasi, stars []Star,
	dhosams []Dhosam, educations []Education, professions []Profession) *Catalog {
	c := &Catalog{
		castes:         map[uint]Caste{},
		koottams:       map[uint]Koottam{},
		rasis:          map[uint]Rasi{},
		stars:          map[uint]Star{},
		dhosams:        map[uint]Dhosam{},
		educations:     map[uint]Education{},
		professions:    map[uint]Profession{},
		casteList:      castes,
		koottamList:    koottams,
		rasiList:       rasis,
		starList:       stars,
		dhosamList:     dhosams,
		educationList:  educations,
		professionList: professions,
	}
	for _, row := range castes {
		c.castes[row.ID] = row
	}
	for _, row := range koottams {
		c.koottams[row.ID] = row
	}
	for _, row := range rasis {
		c.rasis[row.ID] = row
	}
	for _, row := range stars {
		c.stars[row.ID] = row
	}
	for _, row := range dhosams {
		c.dhosams[row.ID] = row
	}
	for _, row := range educations {
		c.educations[row.ID] = row
	}
	for _, row := range professions {
		c.professions[row.ID] = row
	}
	return c
}

func (c *Catalog) HasCaste(id uint) bool      { _, ok := c.castes[id]; return ok }
func (c *Catalog) HasKoottam(id uint) bool    { _, ok := c.koottams[id]; return ok }
func (c *Catalog) HasRasi(id uint) bool       { _, ok := c.rasis[id]; return ok }
func (c *Catalog) HasStar(id uint) bool       { _, ok := c.stars[id]; return ok }
func (c *Catalog) HasDhosam(id uint) bool     { _, ok := c.dhosams[id]; return ok }
func (c *Catalog) HasEducation(id uint) bool  { _, ok := c.educations[id]; return ok }
func (c *Catalog) HasProfession(id uint) bool { _, ok := c.professions[id]; return ok }

// Options bundles every dropdown list for the profile editor page
type Options struct {
	Castes      []Caste      `json:"castes"`
	Koottams    []Koottam    `json:"koottams"`
	Rasis       []Rasi       `json:"rasis"`
	Stars       []Star       `json:"stars"`
	Dhosams     []Dhosam     `json:"dhosams"`
	Educations  []Education  `json:"educations"`
	Professions []Profession `json:"professions"`
}

func (c *Catalog) Options() Options {
	return Options{
		Castes:      c.casteList,
		Koottams:    c.koottamList,
		Rasis:       c.rasiList,
		Stars:       c.starList,
		Dhosams:     c.dhosamList,
		Educations:  c.educationList,
		Professions: c.professionList,
	}
}

// ResolveRef applies the reference-resolution rule for submitted form values:
// an empty value, a non-numeric value, or an id with no matching row all mean
// "no selection" (nil), never an error.
func ResolveRef(raw string, exists func(id uint) bool) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(n)
	if !exists(id) {
		return nil
	}
	return &id
}
