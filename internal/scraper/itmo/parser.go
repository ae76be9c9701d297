// Package itmo parses abit.itmo.ru master's program pages into the plan
// JSON documents the curriculum adapters consume. The admission site has no
// stable markup contract, so extraction is keyword-driven: headings select
// the current plan section, list items and table rows under them are parsed
// as course lines.
package itmo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Entry is one extracted course line.
type Entry struct {
	Title    string
	Credits  int
	Hours    int
	Semester int
}

// Page is the structured result of parsing one program page.
type Page struct {
	ProgramName string
	Mandatory   []Entry
	Selective   []Entry
	Practicum   []Entry
	Final       []Entry
	Facultative []Entry
}

// Course line annotations: "3 кр.", "108 ч." / "108 ак. ч", "1 семестр".
var (
	creditsPattern  = regexp.MustCompile(`(?i)(\d+)\s*(?:кр(?:едит[а-яё]*)?\.?|з\.?\s*е\.?)`)
	hoursPattern    = regexp.MustCompile(`(?i)(\d+)\s*(?:ак(?:ад)?\.?\s*)?ч(?:ас[а-яё]*|\.)?`)
	semesterPattern = regexp.MustCompile(`(?i)(\d+)\s*семестр`)
)

// Page sections, selected by heading keywords.
type section int

const (
	sectionNone section = iota
	sectionMandatory
	sectionSelective
	sectionPracticum
	sectionFinal
	sectionFacultative
)

// classify maps a heading to a section. Unrelated headings (cost, career,
// dormitories) close the current section so their lists are not swallowed.
func classify(heading string, current section) section {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "практик"):
		return sectionPracticum
	case strings.Contains(h, "гиа"),
		strings.Contains(h, "итогов") && strings.Contains(h, "аттестац"),
		strings.Contains(h, "квалификацион"):
		return sectionFinal
	case strings.Contains(h, "майнор"),
		strings.Contains(h, "факультатив"),
		strings.Contains(h, "soft skills"):
		return sectionFacultative
	case strings.Contains(h, "обязательн"):
		return sectionMandatory
	case strings.Contains(h, "выбор"):
		return sectionSelective
	case strings.Contains(h, "учебный план"), strings.Contains(h, "модул"), strings.Contains(h, "дисциплин"):
		// A plan heading without a group qualifier starts the mandatory
		// track; a "Путь выбора" subheading switches it later.
		if current == sectionMandatory || current == sectionSelective {
			return current
		}
		return sectionMandatory
	default:
		return sectionNone
	}
}

// ParsePage extracts the plan structure from a program page.
func ParsePage(doc *goquery.Document) (*Page, error) {
	page := &Page{
		ProgramName: strings.TrimSpace(doc.Find("h1").First().Text()),
	}
	if page.ProgramName == "" {
		return nil, fmt.Errorf("itmo: page has no program title")
	}

	current := sectionNone
	doc.Find("h1, h2, h3, h4, h5, li, tr").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "h1", "h2", "h3", "h4", "h5":
			current = classify(s.Text(), current)
		case "li", "tr":
			if current == sectionNone {
				return
			}
			entry, ok := parseEntry(s.Text())
			if !ok {
				return
			}
			switch current {
			case sectionMandatory:
				page.Mandatory = append(page.Mandatory, entry)
			case sectionSelective:
				page.Selective = append(page.Selective, entry)
			case sectionPracticum:
				page.Practicum = append(page.Practicum, entry)
			case sectionFinal:
				page.Final = append(page.Final, entry)
			case sectionFacultative:
				page.Facultative = append(page.Facultative, entry)
			}
		}
	})

	return page, nil
}

// parseEntry parses one list item or table row as a course line. Lines
// without a credit or hour figure are layout noise, not courses.
func parseEntry(raw string) (Entry, bool) {
	text := strings.Join(strings.Fields(raw), " ")

	var e Entry
	text, e.Credits = cut(text, creditsPattern)
	text, e.Hours = cut(text, hoursPattern)
	text, e.Semester = cut(text, semesterPattern)
	if e.Credits == 0 && e.Hours == 0 {
		return Entry{}, false
	}

	e.Title = strings.Trim(strings.TrimSpace(text), " ,;:—–-()·")
	if e.Title == "" {
		return Entry{}, false
	}
	return e, true
}

// cut removes the first pattern match from text and returns its captured
// number, 0 when the pattern is absent.
func cut(text string, pattern *regexp.Regexp) (string, int) {
	loc := pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, 0
	}
	n, err := strconv.Atoi(text[loc[2]:loc[3]])
	if err != nil {
		return text, 0
	}
	return strings.TrimSpace(text[:loc[0]] + text[loc[1]:]), n
}
