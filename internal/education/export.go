package education

import (
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Education"

// BuildExportWorkbook renders one pharmacy's education records as an XLSX
// workbook, one row per record in the given (title) order.
func BuildExportWorkbook(records []DrugEducation) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return nil, err
	}

	header := []interface{}{
		excelize.Cell{Value: "gpi", StyleID: headerStyle},
		excelize.Cell{Value: "title", StyleID: headerStyle},
		excelize.Cell{Value: "summary", StyleID: headerStyle},
		excelize.Cell{Value: "video_url", StyleID: headerStyle},
		excelize.Cell{Value: "last_checked", StyleID: headerStyle},
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, r := range records {
		summary := ""
		if r.Summary != nil {
			summary = *r.Summary
		}
		videoURL := ""
		if r.VideoURL != nil {
			videoURL = *r.VideoURL
		}
		lastChecked := ""
		if r.LastChecked != nil {
			lastChecked = r.LastChecked.Format("2006-01-02 15:04:05")
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{r.GPI, r.Title, summary, videoURL, lastChecked}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
