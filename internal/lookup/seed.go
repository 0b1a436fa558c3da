package lookup

import (
	"fmt"

	"gorm.io/gorm"
)

// Reference data is administered out of band; these seeds make a fresh
// database usable without the admin panel.

// casteSeed maps each caste to its koottams as {name, Tamil label} pairs.
var casteSeed = map[string][][2]string{
	"Kongu Vellalar": {
		{"Aadai", "ஆடை"},
		{"Kannan", "கண்ணன்"},
		{"Sellan", "செல்லன்"},
		{"Periyan", "பெரியன்"},
		{"Vellamban", "வெள்ளம்பன்"},
	},
	"Mudaliyar": {
		{"Thondaimandala", "தொண்டைமண்டலம்"},
		{"Agamudayar", "அகமுடையார்"},
	},
	"Gounder": {
		{"Vettuva", "வெட்டுவ"},
		{"Nattu", "நாட்டு"},
	},
}

var casteTamil = map[string]string{
	"Kongu Vellalar": "கொங்கு வெள்ளாளர்",
	"Mudaliyar":      "முதலியார்",
	"Gounder":        "கவுண்டர்",
}

// rasiSeed maps each rasi to its stars (simplified whole-star mapping).
var rasiSeed = []struct {
	Name   string
	Tamil  string
	Stars  []string
	Tamils []string
}{
	{"Mesham", "மேஷம்", []string{"Ashwini", "Bharani", "Krithigai"}, []string{"அசுவினி", "பரணி", "கார்த்திகை"}},
	{"Rishabam", "ரிஷபம்", []string{"Rohini", "Mirugasirisham"}, []string{"ரோகிணி", "மிருகசீரிஷம்"}},
	{"Mithunam", "மிதுனம்", []string{"Thiruvathirai", "Punarpoosam"}, []string{"திருவாதிரை", "புனர்பூசம்"}},
	{"Kadagam", "கடகம்", []string{"Poosam", "Ayilyam"}, []string{"பூசம்", "ஆயில்யம்"}},
	{"Simmam", "சிம்மம்", []string{"Magam", "Pooram", "Uthiram"}, []string{"மகம்", "பூரம்", "உத்திரம்"}},
	{"Kanni", "கன்னி", []string{"Astham", "Chithirai"}, []string{"அஸ்தம்", "சித்திரை"}},
	{"Thulam", "துலாம்", []string{"Swathi", "Visakam"}, []string{"சுவாதி", "விசாகம்"}},
	{"Viruchigam", "விருச்சிகம்", []string{"Anusham", "Kettai"}, []string{"அனுஷம்", "கேட்டை"}},
	{"Dhanusu", "தனுசு", []string{"Moolam", "Pooradam", "Uthiradam"}, []string{"மூலம்", "பூராடம்", "உத்திராடம்"}},
	{"Magaram", "மகரம்", []string{"Thiruvonam", "Avittam"}, []string{"திருவோணம்", "அவிட்டம்"}},
	{"Kumbam", "கும்பம்", []string{"Sadayam", "Poorattathi"}, []string{"சதயம்", "பூரட்டாதி"}},
	{"Meenam", "மீனம்", []string{"Uthirattathi", "Revathi"}, []string{"உத்திரட்டாதி", "ரேவதி"}},
}

var dhosamSeed = [][2]string{
	{"No Dhosam", "தோஷம் இல்லை"},
	{"Chevvai Dhosam", "செவ்வாய் தோஷம்"},
	{"Rahu-Kethu Dhosam", "ராகு-கேது தோஷம்"},
	{"Kala Sarpa Dhosam", "கால சர்ப்ப தோஷம்"},
}

var educationSeed = [][2]string{
	{"SSLC", "பத்தாம் வகுப்பு"},
	{"HSC", "மேல்நிலைக் கல்வி"},
	{"Diploma", "பட்டயம்"},
	{"Bachelors Degree", "இளங்கலை பட்டம்"},
	{"Masters Degree", "முதுகலை பட்டம்"},
	{"Doctorate", "முனைவர் பட்டம்"},
}

var professionSeed = [][2]string{
	{"Agriculture", "விவசாயம்"},
	{"Business", "வணிகம்"},
	{"Government Employee", "அரசு ஊழியர்"},
	{"Private Employee", "தனியார் ஊழியர்"},
	{"Software Engineer", "மென்பொருள் பொறியாளர்"},
	{"Teacher", "ஆசிரியர்"},
	{"Doctor", "மருத்துவர்"},
}

// Seed upserts the reference rows. Safe to run on every boot.
func Seed(db *gorm.DB) error {
	for caste, koottams := range casteSeed {
		c := Caste{Caste: caste, CasteTa: casteTamil[caste]}
		if err := db.Where(Caste{Caste: caste}).FirstOrCreate(&c).Error; err != nil {
			return fmt.Errorf("seed caste %q: %w", caste, err)
		}
		for _, sub := range koottams {
			k := Koottam{CasteID: c.ID, Subcaste: sub[0], SubcasteTa: sub[1]}
			if err := db.Where(Koottam{CasteID: c.ID, Subcaste: sub[0]}).FirstOrCreate(&k).Error; err != nil {
				return fmt.Errorf("seed koottam %q: %w", sub[0], err)
			}
		}
	}

	for _, rs := range rasiSeed {
		r := Rasi{Rasi: rs.Name, RasiTa: rs.Tamil}
		if err := db.Where(Rasi{Rasi: rs.Name}).FirstOrCreate(&r).Error; err != nil {
			return fmt.Errorf("seed rasi %q: %w", rs.Name, err)
		}
		for i, star := range rs.Stars {
			s := Star{RasiID: r.ID, Star: star, StarTa: rs.Tamils[i]}
			if err := db.Where(Star{RasiID: r.ID, Star: star}).FirstOrCreate(&s).Error; err != nil {
				return fmt.Errorf("seed star %q: %w", star, err)
			}
		}
	}

	for _, d := range dhosamSeed {
		row := Dhosam{Dhosam: d[0], DhosamTa: d[1]}
		if err := db.Where(Dhosam{Dhosam: d[0]}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed dhosam %q: %w", d[0], err)
		}
	}
	for _, e := range educationSeed {
		row := Education{Education: e[0], EducationTa: e[1]}
		if err := db.Where(Education{Education: e[0]}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed education %q: %w", e[0], err)
		}
	}
	for _, p := range professionSeed {
		row := Profession{Profession: p[0], ProfessionTa: p[1]}
		if err := db.Where(Profession{Profession: p[0]}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed profession %q: %w", p[0], err)
		}
	}

	return nil
}
