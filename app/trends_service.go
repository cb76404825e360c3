package app

import (
	"fmt"
	"strings"

	"aitrends/adapters/tabular"
	"aitrends/domain/jobs"
	"aitrends/internal"
	"aitrends/internal/analysis"
	"aitrends/internal/clean"
	"aitrends/ports"
)

// TrendsAnalyzer is the analysis entry point for one AI job postings dataset.
// Construction loads and cleans the file; the cleaned dataset is owned by the
// analyzer for its lifetime and every derived view is a freshly computed
// copy, never an alias into it.
type TrendsAnalyzer struct {
	filePath string
	cols     jobs.Columns
	sink     ports.ChartSink
	logger   *internal.Logger
	dataset  *jobs.Dataset
}

// Option customizes analyzer construction
type Option func(*TrendsAnalyzer)

// WithRoleColumn overrides the canonical role column name
func WithRoleColumn(name string) Option {
	return func(a *TrendsAnalyzer) { a.cols.Role = name }
}

// WithSalaryColumn overrides the canonical salary column name
func WithSalaryColumn(name string) Option {
	return func(a *TrendsAnalyzer) { a.cols.Salary = name }
}

// WithSkillsColumn overrides the canonical skills column name
func WithSkillsColumn(name string) Option {
	return func(a *TrendsAnalyzer) { a.cols.Skills = name }
}

// WithSink sets the visualization sink. Defaults to ports.NopSink.
func WithSink(sink ports.ChartSink) Option {
	return func(a *TrendsAnalyzer) { a.sink = sink }
}

// NewTrendsAnalyzer loads the dataset at filePath and runs the cleaning
// pipeline. It fails on a missing file, an empty path, or a post-cleaning
// schema violation; after it returns, every analysis call assumes a valid
// cleaned dataset.
func NewTrendsAnalyzer(filePath string, opts ...Option) (*TrendsAnalyzer, error) {
	a := &TrendsAnalyzer{
		filePath: filePath,
		cols:     jobs.DefaultColumns(),
		sink:     ports.NopSink{},
		logger:   internal.DefaultLogger,
	}
	for _, opt := range opts {
		opt(a)
	}

	table, err := tabular.NewDataReader(filePath).ReadTable()
	if err != nil {
		return nil, err
	}

	ds, err := clean.NewCleaner(a.cols).Clean(table)
	if err != nil {
		return nil, err
	}
	a.dataset = ds

	return a, nil
}

// Columns returns the canonical column configuration in use.
func (a *TrendsAnalyzer) Columns() jobs.Columns {
	return a.cols
}

// RecordCount returns the number of cleaned records.
func (a *TrendsAnalyzer) RecordCount() int {
	return a.dataset.Len()
}

// SalaryStats computes per-role salary statistics ordered by posting count
// descending. Before returning it forwards the top 10 roles by average
// salary to the visualization sink; sink failures are logged and swallowed.
func (a *TrendsAnalyzer) SalaryStats() ([]jobs.SalaryStats, error) {
	if a.dataset.Empty() {
		a.logger.Warn("[TrendsAnalyzer] dataset is empty, no salary statistics to compute")
		return []jobs.SalaryStats{}, nil
	}

	rows, err := analysis.SalaryStatsByRole(a.dataset)
	if err != nil {
		return nil, err
	}

	top := analysis.TopByAverageSalary(rows, 10)
	series := ports.Series{
		Labels: make([]string, 0, len(top)),
		Values: make([]float64, 0, len(top)),
	}
	for _, row := range top {
		series.Labels = append(series.Labels, row.Role)
		series.Values = append(series.Values, row.AverageSalary)
	}
	a.renderChart(series,
		fmt.Sprintf("Top 10 Average Salary by Job Role (%s)", a.cols.Role),
		capitalizeLabel(a.cols.Role),
		"Average Salary (USD)")

	return rows, nil
}

// TechnologyPopularity counts skill demand across the dataset and returns the
// topN entries. topN must be positive. Before returning it forwards the
// truncated distribution to the visualization sink.
func (a *TrendsAnalyzer) TechnologyPopularity(topN int) ([]jobs.SkillCount, error) {
	top, err := analysis.TopSkills(a.dataset, topN)
	if err != nil {
		return nil, err
	}

	series := ports.Series{
		Labels: make([]string, 0, len(top)),
		Values: make([]float64, 0, len(top)),
	}
	for _, entry := range top {
		series.Labels = append(series.Labels, entry.Skill)
		series.Values = append(series.Values, float64(entry.Count))
	}
	a.renderChart(series,
		fmt.Sprintf("Top %d Demanded AI Skills", topN),
		"Skill",
		"Job Count")

	return top, nil
}

// GenerateReport renders the top-N skill demand as a short text report. It
// never returns an error: a validation failure from the popularity
// computation becomes a single-line error message in the returned text.
func (a *TrendsAnalyzer) GenerateReport(topN int) string {
	top, err := a.TechnologyPopularity(topN)
	if err != nil {
		return fmt.Sprintf("Error generating report: %v", err)
	}
	return analysis.FormatSkillReport(top, topN)
}

func (a *TrendsAnalyzer) renderChart(series ports.Series, title, xLabel, yLabel string) {
	if series.Len() == 0 {
		return
	}
	if err := a.sink.Render(series, title, xLabel, yLabel, ""); err != nil {
		a.logger.Warn("[TrendsAnalyzer] chart rendering failed for %q: %v", title, err)
	}
}

func capitalizeLabel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
