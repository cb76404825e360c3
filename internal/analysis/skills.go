package analysis

import (
	"sort"
	"strings"
	"unicode/utf8"

	"aitrends/domain/jobs"
	"aitrends/internal/errors"
)

// SkillFrequency tokenizes the skills field of every cleaned record and
// counts occurrences across the dataset. Tokens are split on commas, trimmed,
// and lower-cased; tokens of length <= 1 after trimming are discarded as
// stray punctuation. The result is ordered by count descending, equal counts
// keeping first-encountered token order.
func SkillFrequency(ds *jobs.Dataset) []jobs.SkillCount {
	counts := make(map[string]int)
	var order []string

	for _, rec := range ds.Records {
		for _, token := range strings.Split(rec.Skills, ",") {
			skill := strings.ToLower(strings.TrimSpace(token))
			if utf8.RuneCountInString(skill) <= 1 {
				continue
			}
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	distribution := make([]jobs.SkillCount, 0, len(order))
	for _, skill := range order {
		distribution = append(distribution, jobs.SkillCount{Skill: skill, Count: counts[skill]})
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})

	return distribution
}

// TopSkills returns the first topN entries of the skill frequency
// distribution. topN must be positive; the validation error is raised before
// any counting happens. An empty dataset yields an empty distribution, not
// an error.
func TopSkills(ds *jobs.Dataset, topN int) ([]jobs.SkillCount, error) {
	if topN <= 0 {
		return nil, errors.ValidationError("top_n must be a positive integer")
	}

	if ds.Empty() {
		return []jobs.SkillCount{}, nil
	}

	distribution := SkillFrequency(ds)
	if topN < len(distribution) {
		distribution = distribution[:topN]
	}
	return distribution, nil
}
