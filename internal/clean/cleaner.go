package clean

import (
	"fmt"
	"strings"

	"aitrends/domain/ingestion"
	"aitrends/domain/jobs"
	"aitrends/internal"
	"aitrends/internal/errors"
)

// Cleaner derives an analysis-ready dataset from a raw table. It runs field
// normalization and salary resolution, excludes rows with missing required
// fields, and validates the post-cleaning schema.
type Cleaner struct {
	cols   jobs.Columns
	logger *internal.Logger
}

// NewCleaner creates a cleaner for the given canonical column configuration
func NewCleaner(cols jobs.Columns) *Cleaner {
	return &Cleaner{
		cols:   cols,
		logger: internal.DefaultLogger,
	}
}

// Clean runs the full cleaning pipeline:
//
//  1. normalize field names (drop stray index, map legacy role column)
//  2. resolve the legacy "low-high" range column, or strictly coerce the
//     numeric salary column, marking every parse failure as missing
//  3. drop every row missing role, salary, or skills
//  4. validate that the canonical columns survived cleaning
//
// Parse failures are silent per value and surface only as excluded rows. The
// single error condition is a schema failure, raised here before any
// analysis runs.
func (c *Cleaner) Clean(table *jobs.RawTable) (*jobs.Dataset, error) {
	normalized := NormalizeFields(table, c.cols)

	headers, hasRange := resolveHeaders(normalized.Headers, c.cols)
	if err := c.validateSchema(headers); err != nil {
		return nil, err
	}

	// Phase one: mark. Every row gets a salary value, missing on failure,
	// so failures stay inspectable before they are discarded.
	salaries := make([]ingestion.Value, len(normalized.Rows))
	failures := 0
	for i, row := range normalized.Rows {
		if hasRange {
			salaries[i] = ResolveRange(row[jobs.LegacySalaryRangeColumn])
		} else {
			salaries[i] = CoerceNumeric(row[c.cols.Salary])
		}
		if salaries[i].IsMissing {
			failures++
		}
	}
	if failures > 0 {
		c.logger.Debug("[Cleaner] %d of %d rows have unresolvable salaries", failures, len(normalized.Rows))
	}

	// Phase two: filter. Rows missing any required field are excluded,
	// never defaulted.
	records := make([]jobs.Record, 0, len(normalized.Rows))
	for i, row := range normalized.Rows {
		role := row[c.cols.Role]
		skills := row[c.cols.Skills]
		if role == "" || skills == "" || !salaries[i].IsNumeric() {
			continue
		}
		records = append(records, jobs.Record{
			Role:   role,
			Salary: salaries[i].AsFloat64(),
			Skills: skills,
		})
	}

	c.logger.Info("[Cleaner] cleaned dataset ready (%d of %d rows kept)", len(records), len(normalized.Rows))

	return &jobs.Dataset{
		Columns: c.cols,
		Records: records,
	}, nil
}

// resolveHeaders returns the post-cleaning header set: the legacy range
// column, when present, is replaced by the canonical numeric salary column.
func resolveHeaders(headers []string, cols jobs.Columns) ([]string, bool) {
	hasRange := false
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		if h == jobs.LegacySalaryRangeColumn {
			hasRange = true
			out = append(out, cols.Salary)
			continue
		}
		out = append(out, h)
	}
	return out, hasRange
}

func (c *Cleaner) validateSchema(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, required := range c.cols.Names() {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return errors.SchemaInvalid(fmt.Sprintf(
			"data is missing essential columns after processing: %s; ensure the input file contains %q and either %q or %q",
			strings.Join(missing, ", "), c.cols.Role, c.cols.Salary, jobs.LegacySalaryRangeColumn))
	}
	return nil
}
