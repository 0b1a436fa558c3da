package reports

import "time"

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// MemberReportRow is one flattened line of the member list export. Lookup
// references are already resolved to their English labels.
type MemberReportRow struct {
	ProfileID    uint       `json:"profile_id"`
	FullName     string     `json:"full_name"`
	Mobile       string     `json:"mobile"`
	Gender       string     `json:"gender"`
	Caste        string     `json:"caste"`
	Koottam      string     `json:"koottam"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Rasi         string     `json:"rasi"`
	Star         string     `json:"star"`
	Education    string     `json:"education"`
	Profession   string     `json:"profession"`
	RegisteredAt time.Time  `json:"registered_at"`
}
