package analysis

import (
	"strings"
	"testing"

	"aitrends/domain/jobs"
)

func TestFormatSkillReport(t *testing.T) {
	report := FormatSkillReport([]jobs.SkillCount{
		{Skill: "python", Count: 12},
		{Skill: "sql", Count: 7},
	}, 2)

	if !strings.HasPrefix(report, "*** TOP 2 DEMANDED AI SKILLS REPORT ***\n\n") {
		t.Errorf("unexpected header: %q", report)
	}
	if !strings.Contains(report, "1. **Python**: 12 vacancies.\n") {
		t.Errorf("missing first entry: %q", report)
	}
	if !strings.Contains(report, "2. **Sql**: 7 vacancies.\n") {
		t.Errorf("missing second entry: %q", report)
	}
}

func TestFormatSkillReportEmpty(t *testing.T) {
	report := FormatSkillReport(nil, 5)

	if !strings.Contains(report, "No skills data available for analysis.") {
		t.Errorf("empty distribution should produce a no-data notice, got %q", report)
	}
	if !strings.Contains(report, "TOP 5") {
		t.Errorf("header should still name top_n, got %q", report)
	}
}
