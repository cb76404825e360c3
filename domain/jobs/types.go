package jobs

// Column naming for the raw input. The analyzer standardizes whatever the
// source file calls these fields onto the canonical names below.
const (
	// DefaultRoleColumn is the canonical job role column name.
	DefaultRoleColumn = "job_title"
	// DefaultSalaryColumn is the canonical numeric salary column name.
	DefaultSalaryColumn = "salary_in_usd"
	// DefaultSkillsColumn is the canonical comma-delimited skills column name.
	DefaultSkillsColumn = "skills_required"

	// LegacySalaryRangeColumn is the fixed name of the textual "low-high"
	// salary column found in older exports. It is resolved to a numeric
	// average and removed during cleaning.
	LegacySalaryRangeColumn = "salary_range_usd"
	// LegacyIndexColumn is the artifact index column some exports carry
	// as their first column.
	LegacyIndexColumn = "job_id"
	// UnnamedIndexColumn is the header pandas-style exports emit for a
	// serialized row index.
	UnnamedIndexColumn = "Unnamed: 0"
)

// Columns holds the canonical column names for one analysis run.
type Columns struct {
	Role   string `json:"role"`
	Salary string `json:"salary"`
	Skills string `json:"skills"`
}

// DefaultColumns returns the canonical column configuration.
func DefaultColumns() Columns {
	return Columns{
		Role:   DefaultRoleColumn,
		Salary: DefaultSalaryColumn,
		Skills: DefaultSkillsColumn,
	}
}

// Names returns the configured column names in role, salary, skills order.
func (c Columns) Names() []string {
	return []string{c.Role, c.Salary, c.Skills}
}

// RawRecord is one untyped row of the source table, keyed by header name.
type RawRecord map[string]string

// RawTable is the source table as read from disk: ordered headers plus
// string-valued rows. Cleaning derives a Dataset from it without mutating
// the original.
type RawTable struct {
	Headers []string    `json:"headers"`
	Rows    []RawRecord `json:"rows"`
}

// Record is a cleaned job posting. Invariant: all three fields are populated
// and Salary is a finite number; rows that cannot satisfy this are excluded
// during cleaning, never defaulted.
type Record struct {
	Role   string  `json:"role"`
	Salary float64 `json:"salary"`
	Skills string  `json:"skills"`
}

// Dataset is an ordered collection of cleaned records, derived once from the
// raw table and owned by the analyzer for its lifetime.
type Dataset struct {
	Columns Columns  `json:"columns"`
	Records []Record `json:"records"`
}

// Len returns the number of cleaned records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Empty reports whether the dataset holds no cleaned records.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// SalaryStats is one aggregated row of per-role salary statistics.
type SalaryStats struct {
	Role          string  `json:"role"`
	AverageSalary float64 `json:"average_salary"`
	MedianSalary  float64 `json:"median_salary"`
	Count         int     `json:"count"`
}

// SkillCount is one entry of the skill frequency distribution.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}
