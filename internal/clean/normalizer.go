package clean

import "aitrends/domain/jobs"

// NormalizeFields maps legacy column names onto the canonical ones and drops
// a stray index column. The input table is not mutated; the result is a
// shallow copy with rewritten headers and rekeyed rows.
//
// Two fixups are applied, both skipped when the column is absent:
//   - the first column is dropped when it is a serialized row index
//     ("Unnamed: 0", an empty header, or the legacy "job_id" identifier)
//   - the legacy role column "job_title" is renamed to cols.Role
//
// Running NormalizeFields twice yields the same table as running it once.
func NormalizeFields(table *jobs.RawTable, cols jobs.Columns) *jobs.RawTable {
	headers := make([]string, len(table.Headers))
	copy(headers, table.Headers)

	dropIndex := false
	dropped := ""
	if len(headers) > 0 && isIndexHeader(headers[0]) {
		dropIndex = true
		dropped = headers[0]
		headers = headers[1:]
	}

	renameRole := false
	if cols.Role != jobs.DefaultRoleColumn {
		// nothing to rename when the configured role column is the default
		for i, h := range headers {
			if h == jobs.DefaultRoleColumn {
				renameRole = true
				headers[i] = cols.Role
			}
		}
	}

	rows := make([]jobs.RawRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		out := make(jobs.RawRecord, len(row))
		for key, val := range row {
			if dropIndex && key == dropped {
				continue
			}
			if renameRole && key == jobs.DefaultRoleColumn {
				out[cols.Role] = val
				continue
			}
			out[key] = val
		}
		rows = append(rows, out)
	}

	return &jobs.RawTable{Headers: headers, Rows: rows}
}

// isIndexHeader reports whether a first-column header is a row-index artifact
// rather than real data.
func isIndexHeader(header string) bool {
	switch header {
	case "", jobs.UnnamedIndexColumn, jobs.LegacyIndexColumn:
		return true
	}
	return false
}
