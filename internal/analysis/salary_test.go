package analysis

import (
	"testing"

	"aitrends/domain/jobs"
)

func dataset(records ...jobs.Record) *jobs.Dataset {
	return &jobs.Dataset{
		Columns: jobs.DefaultColumns(),
		Records: records,
	}
}

func TestSalaryStatsByRole(t *testing.T) {
	ds := dataset(
		jobs.Record{Role: "Data Scientist", Salary: 95000, Skills: "Python"},
		jobs.Record{Role: "ML Engineer", Salary: 130000, Skills: "PyTorch"},
		jobs.Record{Role: "Data Scientist", Salary: 105000, Skills: "SQL"},
		jobs.Record{Role: "Data Scientist", Salary: 100000, Skills: "Python"},
	)

	rows, err := SalaryStatsByRole(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	ds95 := rows[0]
	if ds95.Role != "Data Scientist" {
		t.Fatalf("largest group should rank first, got %q", ds95.Role)
	}
	if ds95.Count != 3 {
		t.Errorf("count = %d, want 3", ds95.Count)
	}
	if ds95.AverageSalary != 100000 {
		t.Errorf("average = %v, want 100000", ds95.AverageSalary)
	}
	if ds95.MedianSalary != 100000 {
		t.Errorf("median = %v, want 100000", ds95.MedianSalary)
	}

	if rows[1].Role != "ML Engineer" || rows[1].Count != 1 {
		t.Errorf("second row = %+v, want ML Engineer with count 1", rows[1])
	}
}

func TestSalaryStatsCountsSumToDatasetSize(t *testing.T) {
	ds := dataset(
		jobs.Record{Role: "A", Salary: 1, Skills: "x1"},
		jobs.Record{Role: "B", Salary: 2, Skills: "x2"},
		jobs.Record{Role: "A", Salary: 3, Skills: "x3"},
		jobs.Record{Role: "C", Salary: 4, Skills: "x4"},
		jobs.Record{Role: "B", Salary: 5, Skills: "x5"},
	)

	rows, err := SalaryStatsByRole(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for _, row := range rows {
		total += row.Count
	}
	if total != ds.Len() {
		t.Errorf("counts sum to %d, want %d", total, ds.Len())
	}
}

func TestSalaryStatsTiesKeepEncounterOrder(t *testing.T) {
	ds := dataset(
		jobs.Record{Role: "Zeta", Salary: 1, Skills: "x"},
		jobs.Record{Role: "Alpha", Salary: 2, Skills: "x"},
		jobs.Record{Role: "Mid", Salary: 3, Skills: "x"},
	)

	rows, err := SalaryStatsByRole(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Zeta", "Alpha", "Mid"}
	for i, role := range want {
		if rows[i].Role != role {
			t.Fatalf("row %d = %q, want %q (stable encounter order for equal counts)", i, rows[i].Role, role)
		}
	}
}

func TestSalaryStatsEmptyDataset(t *testing.T) {
	rows, err := SalaryStatsByRole(dataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestTopByAverageSalary(t *testing.T) {
	rows := []jobs.SalaryStats{
		{Role: "A", AverageSalary: 50, Count: 9},
		{Role: "B", AverageSalary: 150, Count: 5},
		{Role: "C", AverageSalary: 100, Count: 7},
	}

	top := TopByAverageSalary(rows, 2)

	if len(top) != 2 || top[0].Role != "B" || top[1].Role != "C" {
		t.Errorf("top = %+v, want B then C", top)
	}
	if rows[0].Role != "A" {
		t.Error("input slice was reordered")
	}
}
