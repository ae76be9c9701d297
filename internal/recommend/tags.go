// Package recommend ranks elective courses against a set of short interest
// tags declared by the applicant. Scoring is a deliberate heuristic: each
// tag maps to a regex, a course scores one point per matching tag, ties
// break deterministically. No weighting, no stemming.
package recommend

import (
	"regexp"
	"strings"
)

// tagPatterns maps known interest tags to title match patterns. Patterns
// are matched case-insensitively against lowercased course titles.
var tagPatterns = map[string]string{
	// engineering / ML
	"ml":      "машинное обучение",
	"ds":      "data",
	"cv":      "компьютерное зрение",
	"nlp":     "язык|текст|nlp|естественного языка",
	"dl":      "глубокое обучение|deep",
	"rl":      "обучение с подкреплением",
	"stats":   "статист",
	"ab":      "a/b|эксперимент",
	"sys":     "систем|микросервис|оркестраци|контейнер",
	"python":  "python",
	"cpp":     `c\+\+`,
	"gpu":     "gpu|графическ",
	"bigdata": "больших данных|хранилищ",
	// product / management
	"product":   "продукт|менеджм|монетизац|портфел",
	"pm":        "менеджмент|продукт",
	"ba":        "бизнес-анализ|аналитик",
	"metrics":   "метрик|аналитик продукта",
	"design":    "дизайн|прототип",
	"mentoring": "ментор",
}

// compilePatterns resolves each tag through the pattern table. A tag
// without a table entry becomes a quoted literal pattern, so free-text
// tags still match at reduced precision.
func compilePatterns(tags []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(tags))
	for _, tag := range tags {
		expr, ok := tagPatterns[strings.ToLower(tag)]
		if !ok {
			expr = regexp.QuoteMeta(strings.ToLower(tag))
		}
		rx, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			// Table entries are static and known-good; this only guards
			// hand-typed tags that survived QuoteMeta somehow.
			continue
		}
		patterns = append(patterns, rx)
	}
	return patterns
}

// scoreTitle counts how many patterns match the lowercased title.
func scoreTitle(title string, patterns []*regexp.Regexp) int {
	lowered := strings.ToLower(title)
	score := 0
	for _, rx := range patterns {
		if rx.MatchString(lowered) {
			score++
		}
	}
	return score
}
