package recommend

import (
	"sort"

	"github.com/itmo-abit/planbot/internal/curriculum"
)

// DefaultTopK is the number of electives returned when the caller does not
// ask for a specific amount.
const DefaultTopK = 6

// semesterUnknownRank sorts courses without a semester after every real one.
const semesterUnknownRank = 99

// Engine scores a program's elective pool against declared tags.
type Engine struct {
	store *curriculum.Store
}

// NewEngine creates a recommendation engine over the loaded curricula.
func NewEngine(store *curriculum.Store) *Engine {
	return &Engine{store: store}
}

// RecommendElectives ranks the elective pool of the given program.
// semester 0 means all semesters; topK bounds the result length.
//
// Ordering contract: score descending, then semester ascending with unknown
// semesters last, then title ascending. When no course scores above zero
// the first topK pool entries are returned in discovery order, so a
// non-empty pool never produces an empty recommendation.
func (e *Engine) RecommendElectives(id curriculum.ProgramID, tags []string, semester, topK int) []curriculum.Course {
	if topK <= 0 {
		topK = DefaultTopK
	}

	patterns := compilePatterns(tags)
	pool := e.store.Document(id).ElectivePool(semester)

	type scored struct {
		course curriculum.Course
		score  int
	}
	survivors := make([]scored, 0, len(pool))
	for _, course := range pool {
		if s := scoreTitle(course.Title, patterns); s > 0 {
			survivors = append(survivors, scored{course: course, score: s})
		}
	}

	if len(survivors) == 0 {
		if len(pool) > topK {
			pool = pool[:topK]
		}
		return pool
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].score != survivors[j].score {
			return survivors[i].score > survivors[j].score
		}
		si, sj := semesterRank(survivors[i].course.Semester), semesterRank(survivors[j].course.Semester)
		if si != sj {
			return si < sj
		}
		return survivors[i].course.Title < survivors[j].course.Title
	})

	if len(survivors) > topK {
		survivors = survivors[:topK]
	}
	out := make([]curriculum.Course, len(survivors))
	for i, s := range survivors {
		out[i] = s.course
	}
	return out
}

func semesterRank(semester int) int {
	if semester == 0 {
		return semesterUnknownRank
	}
	return semester
}
