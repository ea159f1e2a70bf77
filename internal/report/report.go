// Package report renders user data as downloadable tabular reports.
// Builders produce a Table; renderers turn a Table into XLSX or CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/tealeg/xlsx/v2"

	"github.com/dhananjayaDev/trivity/internal/model"
)

// Format selects the output encoding for a report download.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat maps a query parameter to a Format, defaulting to XLSX.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	if f == FormatCSV {
		return "csv"
	}
	return "xlsx"
}

// Table is a rendered report: one header row plus data rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// AssessmentReport builds the SRI assessment report for one user.
func AssessmentReport(user *model.User, assessment *model.Assessment) *Table {
	header := []string{
		"Company", "User Name", "Email", "Assessment Date",
		"Total Score", "General Score", "Environment Score", "Social Score", "Governance Score",
		"Trophy Level", "Status",
	}
	row := []string{
		company(user), user.FullName(), user.Email, stamp(assessment.CreatedAt),
		score(assessment.TotalScore),
		score(assessment.CategoryScores.General),
		score(assessment.CategoryScores.Environment),
		score(assessment.CategoryScores.Social),
		score(assessment.CategoryScores.Governance),
		string(assessment.TrophyLevel), assessment.Status,
	}

	// Answers in a stable column order.
	ids := make([]string, 0, len(assessment.Answers))
	for id := range assessment.Answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		header = append(header, "Q_"+id)
		row = append(row, assessment.Answers[id].String())
	}

	return &Table{
		Name:   "Assessment Report",
		Header: header,
		Rows:   [][]string{row},
	}
}

// CarbonReport builds the carbon footprint report for one user.
func CarbonReport(user *model.User, data *model.CarbonData) *Table {
	return &Table{
		Name: "Carbon Report",
		Header: []string{
			"Company", "User Name", "Email", "Report Date",
			"Total Emissions (tCO2e)", "Electricity Emissions (tCO2e)",
			"Transportation Emissions (tCO2e)", "Refrigerant Emissions (tCO2e)",
			"Mobile Emissions (tCO2e)", "Combustion Emissions (tCO2e)", "Period",
		},
		Rows: [][]string{{
			company(user), user.FullName(), user.Email, stamp(data.CreatedAt),
			emission(data.TotalEmissions), emission(data.ElectricityEmissions),
			emission(data.TransportationEmissions), emission(data.RefrigerantEmissions),
			emission(data.MobileEmissions), emission(data.CombustionEmissions), data.Period,
		}},
	}
}

// SDGReport builds the SDG recommendation report, one row per goal.
func SDGReport(user *model.User, rec *model.SDGRecommendation) *Table {
	t := &Table{
		Name: "SDG Report",
		Header: []string{
			"Company", "User Name", "Email", "Generated Date",
			"SDG Number", "SDG Title", "Description", "Priority", "Opportunities",
		},
	}
	for _, goal := range rec.Goals {
		t.Rows = append(t.Rows, []string{
			company(user), user.FullName(), user.Email, stamp(rec.GeneratedAt),
			fmt.Sprintf("%d", goal.Number), goal.Title, goal.Description, goal.Priority,
			joinList(goal.Opportunities),
		})
	}
	return t
}

// WriteXLSX renders the table as a single-sheet workbook.
func (t *Table) WriteXLSX(w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(t.Name)
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, h := range t.Header {
		headerRow.AddCell().Value = h
	}
	for _, row := range t.Rows {
		r := sheet.AddRow()
		for _, cell := range row {
			r.AddCell().Value = cell
		}
	}

	return file.Write(w)
}

// WriteCSV renders the table as RFC 4180 CSV.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write renders in the requested format.
func (t *Table) Write(w io.Writer, format Format) error {
	if format == FormatCSV {
		return t.WriteCSV(w)
	}
	return t.WriteXLSX(w)
}

func company(user *model.User) string {
	if user.Company == "" {
		return "Not specified"
	}
	return user.Company
}

func stamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func score(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func emission(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
