package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"aitrends/domain/jobs"
	"aitrends/internal"
	"aitrends/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading CSV and Excel job posting files into a raw table
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
	logger   *internal.Logger
}

// NewDataReader creates a reader for the given file, switching on extension.
// Anything that is not .xlsx is treated as delimited text.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger,
	}
}

// ReadTable reads the source file into a raw table of trimmed string cells.
// A header row is required; a header-only file yields an empty table rather
// than an error, since an all-dropped dataset is valid downstream.
func (r *DataReader) ReadTable() (*jobs.RawTable, error) {
	if r.filePath == "" {
		return nil, errors.InvalidInput("file path must not be empty")
	}

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("file " + r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, errors.InvalidInput("unsupported file type: " + r.fileType)
	}
}

func (r *DataReader) readCSV() (*jobs.RawTable, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated, short rows leave cells missing
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}
	r.logger.Debug("[DataReader] CSV file read (%d raw rows)", len(rows))

	if len(rows) == 0 {
		return nil, errors.InvalidInput("input file must have at least a header row")
	}

	return r.processRows(rows), nil
}

func (r *DataReader) readExcel() (*jobs.RawTable, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	r.logger.Debug("[DataReader] Excel sheet %s read (%d raw rows)", sheet, len(rows))

	if len(rows) == 0 {
		return nil, errors.InvalidInput("input file must have at least a header row")
	}

	return r.processRows(rows), nil
}

// processRows converts raw string rows into a RawTable, trimming headers and
// cells. Cells beyond the header width are discarded.
func (r *DataReader) processRows(rows [][]string) *jobs.RawTable {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]jobs.RawRecord, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(jobs.RawRecord)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	r.logger.Info("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &jobs.RawTable{
		Headers: headers,
		Rows:    dataRows,
	}
}
