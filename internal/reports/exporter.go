package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders the member list in the requested download format
type Exporter interface {
	Export(format string, rows []MemberReportRow) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(format string, rows []MemberReportRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportMemberListCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("member_list_report_%s.csv", timestamp)
		return data, filename, "text/csv", nil

	case FormatExcel:
		data, err := e.exportMemberListExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("member_list_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportMemberListPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("member_list_report_%s.pdf", timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for member list: %s", format)
	}
}

var memberListHeaders = []string{"Profile ID", "Full Name", "Mobile", "Gender", "Caste", "Koottam", "Date of Birth", "Rasi", "Star", "Education", "Profession", "Registered At"}

func memberListRecord(r MemberReportRow) []string {
	dob := ""
	if r.DateOfBirth != nil {
		dob = r.DateOfBirth.Format("2006-01-02")
	}
	return []string{
		strconv.FormatUint(uint64(r.ProfileID), 10),
		r.FullName,
		r.Mobile,
		r.Gender,
		r.Caste,
		r.Koottam,
		dob,
		r.Rasi,
		r.Star,
		r.Education,
		r.Profession,
		r.RegisteredAt.Format("2006-01-02 15:04:05"),
	}
}

func (e *exporter) exportMemberListCSV(rows []MemberReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(memberListHeaders); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := writer.Write(memberListRecord(r)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportMemberListExcel(rows []MemberReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Member List"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range memberListHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		record := memberListRecord(r)
		for cIdx, v := range record {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportMemberListPDF(rows []MemberReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Member List Report")
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 8)
	widths := []float64{15, 35, 22, 12, 22, 22, 20, 18, 22, 28, 28, 30}

	for i, h := range memberListHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, r := range rows {
		record := memberListRecord(r)
		for i, v := range record {
			if len(v) > 24 {
				v = v[:21] + "..."
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
