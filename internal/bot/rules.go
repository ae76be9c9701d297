package bot

import (
	"regexp"
	"strconv"
)

// Intent rules, evaluated in order against the lowercased message.
// First match wins, so broader patterns must come after narrower ones:
// program selection runs before tag parsing (a message like «программа ai»
// must never be read as free text), and the AI Product patterns run before
// the plain AI ones because every product phrasing contains "ai".
//
// Go's \b only understands ASCII word characters, so Cyrillic patterns
// rely on stems and explicit [а-яё] classes instead of word boundaries.
var rules = []rule{
	{"help", regexp.MustCompile(`помощ|что ты умеешь|\bhelp\b`), (*Dispatcher).handleHelp},
	{"programs", regexp.MustCompile(`^программы\s*[?!.]*$|какие\s+программ|список\s+программ|доступн[а-яё]*\s+программ|направлени`), (*Dispatcher).handlePrograms},
	{"pick_program", regexp.MustCompile(`ai[\s_-]*product|\bproduct\b|управлени[ея]\s+ии|ии[\s-]*продукт|ai[\s-]*продукт`), (*Dispatcher).handlePickProduct},
	{"pick_program", regexp.MustCompile(`искусственн[а-яё]*\s+интеллект|\bai\b`), (*Dispatcher).handlePickAI},
	{"set_tags", regexp.MustCompile(`(?:теги|tags|бэкграунд|background)\s*:?(.*)`), (*Dispatcher).handleSetTags},
	{"recommend", regexp.MustCompile(`рекоменд|посоветуй|что\s+взять`), (*Dispatcher).handleRecommend},
	{"compare", regexp.MustCompile(`сравн|что\s+выбрать|какая\s+программ|какую\s+программ|подходит|подойдет|подойдёт`), (*Dispatcher).handleCompare},
	{"mandatory", regexp.MustCompile(`обязательн`), (*Dispatcher).handleMandatory},
	{"selective", regexp.MustCompile(`выборн|электив|по\s+выбору`), (*Dispatcher).handleSelective},
	{"practicum", regexp.MustCompile(`практик`), (*Dispatcher).handlePracticum},
	{"final_assessment", regexp.MustCompile(`гиа|вкр|итогов[а-яё]*\s+аттестац`), (*Dispatcher).handleFinalAssessment},
	{"soft_skills", regexp.MustCompile(`soft[\s-]*skills?|софт[\s-]*скил|майнор|микромодул|факультатив`), (*Dispatcher).handleSoftSkills},
	{"search", regexp.MustCompile(`(?:найд|поиск|ищ)[а-яё]*\s+.*?(?:курс|дисциплин)[а-яё]*\s*:?\s*(.*)`), (*Dispatcher).handleSearch},
}

type rule struct {
	intent  string
	pattern *regexp.Regexp
	handle  func(d *Dispatcher, sess *Session, matches []string, text string) string
}

var semesterPattern = regexp.MustCompile(`(\d+)\s*семестр`)

// parseSemester pulls "N семестр" out of the message, 0 when absent.
func parseSemester(text string) int {
	m := semesterPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
