package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/itmo-abit/planbot/internal/curriculum"
	"github.com/itmo-abit/planbot/internal/logger"
	"github.com/itmo-abit/planbot/internal/metrics"
	"github.com/itmo-abit/planbot/internal/recommend"
)

// searchLimit caps how many search hits one reply lists.
const searchLimit = 20

// Dispatcher routes a message through the intent rules and renders the
// reply. It holds no per-conversation state; everything mutable lives in
// the Session the caller passes in.
type Dispatcher struct {
	store   *curriculum.Store
	engine  *recommend.Engine
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewDispatcher creates a dispatcher over the loaded curricula.
// metrics may be nil (tests, the scrape CLI).
func NewDispatcher(store *curriculum.Store, engine *recommend.Engine, log *logger.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		store:   store,
		engine:  engine,
		log:     log.WithModule("bot"),
		metrics: m,
	}
}

// Dispatch matches the message against the intent rules and returns the
// reply text. It never returns an empty string: unmatched input gets the
// out-of-domain refusal, empty input the intro. Dispatch mutates the
// session (program switches, tag updates) but never fails.
func (d *Dispatcher) Dispatch(sess *Session, text string) string {
	start := time.Now()

	intent, reply := d.dispatch(sess, strings.ToLower(strings.TrimSpace(text)))

	d.log.WithFields(map[string]any{
		"intent":  intent,
		"program": string(sess.Program),
	}).Debug("Dispatched message")
	if d.metrics != nil {
		d.metrics.RecordDispatch(intent, time.Since(start).Seconds())
	}
	return reply
}

func (d *Dispatcher) dispatch(sess *Session, lowered string) (intent, reply string) {
	if lowered == "" {
		return "help", introText
	}
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(lowered); m != nil {
			return r.intent, r.handle(d, sess, m, lowered)
		}
	}
	return "out_of_domain", outOfDomainText
}

func (d *Dispatcher) handleHelp(_ *Session, _ []string, _ string) string {
	return introText
}

func (d *Dispatcher) handlePrograms(_ *Session, _ []string, _ string) string {
	var b strings.Builder
	b.WriteString("Доступные программы:")
	for _, p := range d.store.ListPrograms() {
		fmt.Fprintf(&b, "\n• %s — «%s»", p.ID, p.Title)
	}
	b.WriteString("\n\nВыбрать: «программа ai» или «программа ai product».")
	return b.String()
}

func (d *Dispatcher) handlePickProduct(sess *Session, _ []string, _ string) string {
	return d.pickProgram(sess, curriculum.ProgramAIProduct)
}

func (d *Dispatcher) handlePickAI(sess *Session, _ []string, _ string) string {
	return d.pickProgram(sess, curriculum.ProgramAI)
}

// pickProgram switches the active program. Declared tags survive the
// switch so the user can compare recommendations across programs.
func (d *Dispatcher) pickProgram(sess *Session, id curriculum.ProgramID) string {
	sess.Program = id
	reply := fmt.Sprintf("Ок, работаем с программой «%s».", d.store.ProgramTitle(id))
	if len(sess.Tags) > 0 {
		reply += fmt.Sprintf("\nТеги сохранены: %s.", strings.Join(sess.Tags, ", "))
	}
	return reply
}

func (d *Dispatcher) handleSetTags(sess *Session, matches []string, _ string) string {
	raw := strings.TrimSpace(matches[1])
	if raw == "" {
		return tagsPromptText
	}
	tags := sess.SetTags(raw)
	if len(tags) == 0 {
		return tagsPromptText
	}
	return fmt.Sprintf("Теги обновлены: %s.\nТеперь можно спросить: «рекомендации 2 семестр».",
		strings.Join(tags, ", "))
}

func (d *Dispatcher) handleRecommend(sess *Session, _ []string, text string) string {
	if len(sess.Tags) == 0 {
		return tagsRequiredText
	}
	semester := parseSemester(text)
	courses := d.engine.RecommendElectives(sess.Program, sess.Tags, semester, recommend.DefaultTopK)
	if len(courses) == 0 {
		return recommendEmptyText
	}

	header := fmt.Sprintf("Рекомендации — «%s»", d.store.ProgramTitle(sess.Program))
	if semester > 0 {
		header += fmt.Sprintf(", %d семестр", semester)
	}
	header += "\nПо тегам: " + strings.Join(sess.Tags, ", ")
	return courseList(header, courses, true)
}

func (d *Dispatcher) handleCompare(sess *Session, _ []string, _ string) string {
	if len(sess.Tags) == 0 {
		return compareBlurbText + "\n\nЗадай теги («теги: ml, nlp»), и я подскажу, что ближе твоему бэкграунду."
	}
	suggested := recommend.SuggestProgram(sess.Tags, sess.Program)
	return compareBlurbText + fmt.Sprintf("\n\nПо твоим тегам (%s) ближе программа «%s».",
		strings.Join(sess.Tags, ", "), d.store.ProgramTitle(suggested))
}

func (d *Dispatcher) handleMandatory(sess *Session, _ []string, text string) string {
	semester := parseSemester(text)
	if semester == 0 {
		return semesterRequiredText
	}
	courses := d.store.Document(sess.Program).Mandatory(semester)
	title := d.store.ProgramTitle(sess.Program)
	if len(courses) == 0 {
		return fmt.Sprintf("В %d семестре программы «%s» обязательных дисциплин не нашлось.", semester, title)
	}
	header := fmt.Sprintf("Обязательные дисциплины — «%s», %d семестр:", title, semester)
	return courseList(header, courses, false)
}

func (d *Dispatcher) handleSelective(sess *Session, _ []string, text string) string {
	semester := parseSemester(text)
	if semester == 0 {
		return semesterRequiredText
	}
	courses := d.store.Document(sess.Program).Selective(semester)
	title := d.store.ProgramTitle(sess.Program)
	if len(courses) == 0 {
		return fmt.Sprintf("В %d семестре программы «%s» выборных дисциплин не нашлось.", semester, title)
	}
	header := fmt.Sprintf("Выборные дисциплины — «%s», %d семестр:", title, semester)
	return courseList(header, courses, false)
}

func (d *Dispatcher) handlePracticum(sess *Session, _ []string, _ string) string {
	courses := d.store.Document(sess.Program).Practicum()
	if len(courses) == 0 {
		return "Данных о практике не нашлось."
	}
	header := fmt.Sprintf("Практика — «%s»:", d.store.ProgramTitle(sess.Program))
	return courseList(header, courses, true)
}

func (d *Dispatcher) handleFinalAssessment(sess *Session, _ []string, _ string) string {
	courses := d.store.Document(sess.Program).FinalAssessment()
	if len(courses) == 0 {
		return "Данных по ГИА/ВКР не нашлось."
	}
	header := fmt.Sprintf("ГИА/ВКР — «%s»:", d.store.ProgramTitle(sess.Program))
	return courseList(header, courses, true)
}

func (d *Dispatcher) handleSoftSkills(sess *Session, _ []string, _ string) string {
	courses := d.store.Document(sess.Program).SoftSkills()
	if len(courses) == 0 {
		return "Данных о майнорах и факультативах не нашлось."
	}
	header := fmt.Sprintf("Майноры и факультативы — «%s»:", d.store.ProgramTitle(sess.Program))
	return courseList(header, courses, true)
}

func (d *Dispatcher) handleSearch(sess *Session, matches []string, _ string) string {
	query := strings.TrimSpace(matches[1])
	if query == "" {
		return searchPromptText
	}
	courses := d.store.Document(sess.Program).Search(query)
	title := d.store.ProgramTitle(sess.Program)
	if len(courses) == 0 {
		return fmt.Sprintf("Ничего не нашлось по запросу «%s» в программе «%s».", query, title)
	}

	extra := len(courses) - searchLimit
	if extra > 0 {
		courses = courses[:searchLimit]
	}
	header := fmt.Sprintf("Найдено по запросу «%s» — «%s»:", query, title)
	reply := courseList(header, courses, true)
	if extra > 0 {
		reply += fmt.Sprintf("\n…и ещё %d результатов", extra)
	}
	return reply
}
