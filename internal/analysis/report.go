package analysis

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"aitrends/domain/jobs"
)

// FormatSkillReport renders a ranked skill distribution as a short markdown
// report. Entries are 1-indexed; an empty distribution produces a "no data"
// notice instead of an empty list.
func FormatSkillReport(top []jobs.SkillCount, topN int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*** TOP %d DEMANDED AI SKILLS REPORT ***\n\n", topN)

	if len(top) == 0 {
		b.WriteString("No skills data available for analysis.")
		return b.String()
	}

	for i, entry := range top {
		fmt.Fprintf(&b, "%d. **%s**: %d vacancies.\n", i+1, capitalize(entry.Skill), entry.Count)
	}

	return b.String()
}

// capitalize upper-cases the first rune. Tokens arrive already lower-cased
// from the tokenizer.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
