package chart

import (
	"fmt"

	"aitrends/internal/errors"
	"aitrends/ports"

	"github.com/xuri/excelize/v2"
)

// ExcelChart persists a ranked series as a bar chart in an .xlsx workbook.
type ExcelChart struct {
	outputPath string
}

// NewExcelChart creates an Excel chart sink writing to outputPath unless a
// render call supplies its own path.
func NewExcelChart(outputPath string) *ExcelChart {
	return &ExcelChart{outputPath: outputPath}
}

// Render implements ports.ChartSink
func (c *ExcelChart) Render(series ports.Series, title, xLabel, yLabel, outputPath string) error {
	path := outputPath
	if path == "" {
		path = c.outputPath
	}
	if path == "" {
		return errors.InvalidInput("excel chart sink requires an output path")
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetCellValue(sheet, "A1", xLabel); err != nil {
		return errors.Wrap(err, "failed to write chart header")
	}
	if err := f.SetCellValue(sheet, "B1", yLabel); err != nil {
		return errors.Wrap(err, "failed to write chart header")
	}
	for i := 0; i < series.Len(); i++ {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), series.Labels[i]); err != nil {
			return errors.Wrapf(err, "failed to write chart row %d", row)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), series.Values[i]); err != nil {
			return errors.Wrapf(err, "failed to write chart row %d", row)
		}
	}

	if series.Len() > 0 {
		lastRow := series.Len() + 1
		err := f.AddChart(sheet, "D2", &excelize.Chart{
			Type:  excelize.Bar,
			Title: []excelize.RichTextRun{{Text: title}},
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$B$1", sheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, lastRow),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheet, lastRow),
			}},
		})
		if err != nil {
			return errors.Wrap(err, "failed to add chart")
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save chart workbook %s", path)
	}
	return nil
}
