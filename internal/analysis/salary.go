package analysis

import (
	"sort"

	"aitrends/domain/jobs"
	"aitrends/internal/errors"

	"github.com/montanaflynn/stats"
)

// SalaryStatsByRole groups cleaned records by role and computes the mean,
// median, and count of the salary field per group. Rows are ordered by count
// descending; equal counts keep the order in which the roles were first
// encountered. An empty dataset yields an empty result.
func SalaryStatsByRole(ds *jobs.Dataset) ([]jobs.SalaryStats, error) {
	if ds.Empty() {
		return []jobs.SalaryStats{}, nil
	}

	salariesByRole := make(map[string][]float64)
	var roles []string
	for _, rec := range ds.Records {
		if _, seen := salariesByRole[rec.Role]; !seen {
			roles = append(roles, rec.Role)
		}
		salariesByRole[rec.Role] = append(salariesByRole[rec.Role], rec.Salary)
	}

	rows := make([]jobs.SalaryStats, 0, len(roles))
	for _, role := range roles {
		salaries := salariesByRole[role]

		mean, err := stats.Mean(salaries)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compute mean salary for role %q", role)
		}
		median, err := stats.Median(salaries)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compute median salary for role %q", role)
		}

		rows = append(rows, jobs.SalaryStats{
			Role:          role,
			AverageSalary: mean,
			MedianSalary:  median,
			Count:         len(salaries),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})

	return rows, nil
}

// TopByAverageSalary returns the first n stats rows when re-ranked by average
// salary descending, equal averages keeping their existing relative order.
// The input slice is not reordered.
func TopByAverageSalary(rows []jobs.SalaryStats, n int) []jobs.SalaryStats {
	ranked := make([]jobs.SalaryStats, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageSalary > ranked[j].AverageSalary
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
