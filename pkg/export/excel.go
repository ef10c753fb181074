package export

import (
	"fmt"

	"github.com/nourishbox/nourishbox-data/pkg/analytics"
	"github.com/xuri/excelize/v2"
)

// WriteAnalyticsWorkbook saves the seasonality and MRR reports as a
// two-sheet Excel workbook.
func WriteAnalyticsWorkbook(path string, seasonal *analytics.SeasonalityReport, mrr []analytics.MRRPoint) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	// Seasonality sheet
	const seasonSheet = "Seasonality"
	index, err := f.NewSheet(seasonSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	seasonHeaders := []string{"Month", "Signups", "Orders", "Revenue", "Churns"}
	for i, h := range seasonHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(seasonSheet, cell, h)
		f.SetCellStyle(seasonSheet, cell, cell, headerStyle)
	}
	for i, m := range seasonal.Months {
		row := i + 2
		f.SetCellValue(seasonSheet, fmt.Sprintf("A%d", row), m.Month.String())
		f.SetCellValue(seasonSheet, fmt.Sprintf("B%d", row), m.Signups)
		f.SetCellValue(seasonSheet, fmt.Sprintf("C%d", row), m.Orders)
		f.SetCellValue(seasonSheet, fmt.Sprintf("D%d", row), m.Revenue)
		f.SetCellValue(seasonSheet, fmt.Sprintf("E%d", row), m.Churns)
	}

	// MRR sheet
	const mrrSheet = "MRR"
	if _, err := f.NewSheet(mrrSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	mrrHeaders := []string{"Month", "MRR", "Active Subscriptions", "Growth %"}
	for i, h := range mrrHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(mrrSheet, cell, h)
		f.SetCellStyle(mrrSheet, cell, cell, headerStyle)
	}
	for i, p := range mrr {
		row := i + 2
		f.SetCellValue(mrrSheet, fmt.Sprintf("A%d", row), p.Month)
		f.SetCellValue(mrrSheet, fmt.Sprintf("B%d", row), p.MRR)
		f.SetCellValue(mrrSheet, fmt.Sprintf("C%d", row), p.ActiveSubs)
		f.SetCellValue(mrrSheet, fmt.Sprintf("D%d", row), p.GrowthPercent)
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}
