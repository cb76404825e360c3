package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aitrends/domain/jobs"
	"aitrends/internal/errors"
	"aitrends/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every render call for assertions
type recordingSink struct {
	calls []sinkCall
	fail  bool
}

type sinkCall struct {
	series ports.Series
	title  string
	xLabel string
	yLabel string
}

func (s *recordingSink) Render(series ports.Series, title, xLabel, yLabel, outputPath string) error {
	s.calls = append(s.calls, sinkCall{series: series, title: title, xLabel: xLabel, yLabel: yLabel})
	if s.fail {
		return fmt.Errorf("sink is broken")
	}
	return nil
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "postings.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func scenarioCSV(t *testing.T) string {
	return writeCSV(t,
		"job_title,salary_range_usd,skills_required",
		`Data Scientist,90000-110000,"Python, SQL"`,
		`Data Scientist,80000-100000,"python, sql, python"`,
		"ML Engineer,bad-range,TensorFlow",
	)
}

func TestNewTrendsAnalyzerCleansOnConstruction(t *testing.T) {
	analyzer, err := NewTrendsAnalyzer(scenarioCSV(t))
	require.NoError(t, err)

	// the bad-range ML Engineer row is excluded during cleaning
	assert.Equal(t, 2, analyzer.RecordCount())
}

func TestNewTrendsAnalyzerConstructionErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewTrendsAnalyzer(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewTrendsAnalyzer("")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("schema violation", func(t *testing.T) {
		path := writeCSV(t,
			"job_title,salary_range_usd",
			"Data Scientist,90000-110000",
		)
		_, err := NewTrendsAnalyzer(path)
		require.Error(t, err)
		assert.Equal(t, errors.CodeSchemaInvalid, errors.GetCode(err))
		assert.Contains(t, err.Error(), "skills_required")
	})
}

func TestSalaryStatsScenario(t *testing.T) {
	sink := &recordingSink{}
	analyzer, err := NewTrendsAnalyzer(scenarioCSV(t), WithSink(sink))
	require.NoError(t, err)

	rows, err := analyzer.SalaryStats()
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Data Scientist", rows[0].Role)
	assert.Equal(t, 95000.0, rows[0].AverageSalary)
	assert.Equal(t, 95000.0, rows[0].MedianSalary)
	assert.Equal(t, 2, rows[0].Count)

	require.Len(t, sink.calls, 1)
	call := sink.calls[0]
	assert.Equal(t, "Top 10 Average Salary by Job Role (job_title)", call.title)
	assert.Equal(t, "Job_title", call.xLabel)
	assert.Equal(t, "Average Salary (USD)", call.yLabel)
	assert.Equal(t, []string{"Data Scientist"}, call.series.Labels)
	assert.Equal(t, []float64{95000}, call.series.Values)
}

func TestTechnologyPopularityScenario(t *testing.T) {
	sink := &recordingSink{}
	analyzer, err := NewTrendsAnalyzer(scenarioCSV(t), WithSink(sink))
	require.NoError(t, err)

	skills, err := analyzer.TechnologyPopularity(2)
	require.NoError(t, err)

	// every token occurrence counts: python appears once in the first row
	// and twice in the second
	require.Len(t, skills, 2)
	assert.Equal(t, jobs.SkillCount{Skill: "python", Count: 3}, skills[0])
	assert.Equal(t, jobs.SkillCount{Skill: "sql", Count: 2}, skills[1])

	require.Len(t, sink.calls, 1)
	assert.Equal(t, "Top 2 Demanded AI Skills", sink.calls[0].title)
	assert.Equal(t, "Skill", sink.calls[0].xLabel)
	assert.Equal(t, "Job Count", sink.calls[0].yLabel)
}

func TestTechnologyPopularityValidatesTopN(t *testing.T) {
	analyzer, err := NewTrendsAnalyzer(scenarioCSV(t))
	require.NoError(t, err)

	for _, topN := range []int{0, -3} {
		_, err := analyzer.TechnologyPopularity(topN)
		require.Error(t, err)
		assert.Equal(t, errors.CodeValidationError, errors.GetCode(err))
	}
}

func TestTechnologyPopularityEmptyDataset(t *testing.T) {
	path := writeCSV(t,
		"job_title,salary_range_usd,skills_required",
		"ML Engineer,bad-range,TensorFlow",
	)
	analyzer, err := NewTrendsAnalyzer(path)
	require.NoError(t, err)
	require.Equal(t, 0, analyzer.RecordCount())

	skills, err := analyzer.TechnologyPopularity(3)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestGenerateReportNeverFails(t *testing.T) {
	analyzer, err := NewTrendsAnalyzer(scenarioCSV(t))
	require.NoError(t, err)

	t.Run("top_n beyond available skills", func(t *testing.T) {
		report := analyzer.GenerateReport(5)
		assert.Contains(t, report, "*** TOP 5 DEMANDED AI SKILLS REPORT ***")
		assert.Contains(t, report, "1. **Python**: 3 vacancies.")
		assert.Contains(t, report, "2. **Sql**: 2 vacancies.")
		// fewer entries than requested is fine
		assert.NotContains(t, report, "3. ")
	})

	t.Run("invalid top_n becomes an error string", func(t *testing.T) {
		report := analyzer.GenerateReport(0)
		assert.Contains(t, report, "Error generating report:")
		assert.Contains(t, report, "top_n must be a positive integer")
	})
}

func TestSinkFailuresAreSwallowed(t *testing.T) {
	sink := &recordingSink{fail: true}
	analyzer, err := NewTrendsAnalyzer(scenarioCSV(t), WithSink(sink))
	require.NoError(t, err)

	_, err = analyzer.SalaryStats()
	assert.NoError(t, err, "a broken sink must not abort the computation")

	_, err = analyzer.TechnologyPopularity(2)
	assert.NoError(t, err)
}

func TestViewsAreCopies(t *testing.T) {
	analyzer, err := NewTrendsAnalyzer(scenarioCSV(t))
	require.NoError(t, err)

	first, err := analyzer.SalaryStats()
	require.NoError(t, err)
	first[0].AverageSalary = -1

	second, err := analyzer.SalaryStats()
	require.NoError(t, err)
	assert.Equal(t, 95000.0, second[0].AverageSalary, "mutating a returned view must not corrupt internal state")
}

func TestColumnOverrides(t *testing.T) {
	path := writeCSV(t,
		"job_title,pay,stack",
		`Data Scientist,95000,"Python, SQL"`,
	)

	analyzer, err := NewTrendsAnalyzer(path,
		WithRoleColumn("role"),
		WithSalaryColumn("pay"),
		WithSkillsColumn("stack"),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, analyzer.RecordCount())

	rows, err := analyzer.SalaryStats()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Data Scientist", rows[0].Role)
}
