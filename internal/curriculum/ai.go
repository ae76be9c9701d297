package curriculum

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Group type fragments in the AI schema. The plan tags each semester group
// as either mandatory ("Обязательные дисциплины") or elective track
// ("Путь выбора дисциплин").
const (
	aiGroupMandatory = "обяз"
	aiGroupSelective = "путь выбора"
)

// aiDocument adapts the "Искусственный интеллект" plan. Physical shape:
// curriculum.blocks[].modules[].semesters[].course_groups[].courses[],
// with practicum under "practices" and final assessment under "components".
type aiDocument struct {
	root gjson.Result
}

// NewAIDocument parses raw JSON in the AI plan schema.
func NewAIDocument(raw []byte) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("ai plan: invalid JSON")
	}
	root := gjson.ParseBytes(raw).Get("curriculum")
	if !root.Exists() {
		return nil, fmt.Errorf("ai plan: missing curriculum object")
	}
	if root.Get("program_name").String() == "" {
		return nil, fmt.Errorf("ai plan: missing program_name")
	}
	return &aiDocument{root: root}, nil
}

func (d *aiDocument) Title() string {
	return d.root.Get("program_name").String()
}

func (d *aiDocument) Mandatory(semester int) []Course {
	return d.taughtCourses(semester, aiGroupMandatory)
}

func (d *aiDocument) Selective(semester int) []Course {
	return d.taughtCourses(semester, aiGroupSelective)
}

// taughtCourses walks the taught-modules block and collects courses from
// groups whose type contains the given fragment, for one semester.
func (d *aiDocument) taughtCourses(semester int, groupFragment string) []Course {
	out := []Course{}
	d.eachGroup(func(semesterNumber int, group gjson.Result) {
		if semesterNumber != semester {
			return
		}
		if !containsFold(group.Get("group_type").String(), groupFragment) {
			return
		}
		group.Get("courses").ForEach(func(_, c gjson.Result) bool {
			out = append(out, courseFrom(c, semesterNumber))
			return true
		})
	})
	return out
}

func (d *aiDocument) ElectivePool(semester int) []Course {
	pool := []Course{}
	d.eachGroup(func(semesterNumber int, group gjson.Result) {
		if semester != 0 && semesterNumber != semester {
			return
		}
		if !containsFold(group.Get("group_type").String(), aiGroupSelective) {
			return
		}
		group.Get("courses").ForEach(func(_, c gjson.Result) bool {
			pool = append(pool, courseFrom(c, semesterNumber))
			return true
		})
	})
	return pool
}

// eachGroup visits every course group in the taught-modules block together
// with its semester number.
func (d *aiDocument) eachGroup(visit func(semester int, group gjson.Result)) {
	block, ok := findBlock(d.root.Get("blocks"), labelModules)
	if !ok {
		return
	}
	block.Get("modules").ForEach(func(_, module gjson.Result) bool {
		module.Get("semesters").ForEach(func(_, sem gjson.Result) bool {
			number := int(sem.Get("semester_number").Int())
			sem.Get("course_groups").ForEach(func(_, group gjson.Result) bool {
				visit(number, group)
				return true
			})
			return true
		})
		return true
	})
}

func (d *aiDocument) Practicum() []Course {
	block, ok := findBlock(d.root.Get("blocks"), labelPracticum)
	if !ok {
		return []Course{}
	}
	out := []Course{}
	block.Get("practices").ForEach(func(_, p gjson.Result) bool {
		out = append(out, Course{
			Title:    titleField(p, "title", "name"),
			Credits:  intField(p, "credits", "total_credits"),
			Hours:    intField(p, "hours", "total_hours"),
			Semester: intField(p, "semester"),
		})
		return true
	})
	return out
}

func (d *aiDocument) FinalAssessment() []Course {
	block, ok := findBlock(d.root.Get("blocks"), labelFinal)
	if !ok {
		return []Course{}
	}
	out := []Course{}
	block.Get("components").ForEach(func(_, c gjson.Result) bool {
		out = append(out, courseFrom(c, intField(c, "semester")))
		return true
	})
	return out
}

func (d *aiDocument) SoftSkills() []Course {
	block, ok := findBlock(d.root.Get("blocks"), labelMinor)
	if !ok {
		return []Course{}
	}
	out := []Course{}
	block.Get("courses").ForEach(func(_, c gjson.Result) bool {
		out = append(out, courseFrom(c, intField(c, "semester")))
		return true
	})
	return out
}

func (d *aiDocument) Search(query string) []Course {
	query = strings.ToLower(query)
	out := []Course{}
	add := func(c gjson.Result, semester int) {
		course := courseFrom(c, semester)
		if course.Title == "" {
			return
		}
		if strings.Contains(strings.ToLower(course.Title), query) {
			out = append(out, course)
		}
	}
	d.root.Get("blocks").ForEach(func(_, block gjson.Result) bool {
		if containsFold(block.Get("block_name").String(), labelModules) {
			block.Get("modules").ForEach(func(_, module gjson.Result) bool {
				module.Get("semesters").ForEach(func(_, sem gjson.Result) bool {
					number := int(sem.Get("semester_number").Int())
					sem.Get("course_groups").ForEach(func(_, group gjson.Result) bool {
						group.Get("courses").ForEach(func(_, c gjson.Result) bool {
							add(c, number)
							return true
						})
						return true
					})
					return true
				})
				module.Get("sub_modules").ForEach(func(_, sub gjson.Result) bool {
					sub.Get("courses").ForEach(func(_, c gjson.Result) bool {
						add(c, 0)
						return true
					})
					return true
				})
				return true
			})
			return true
		}
		// Flat blocks (minor faculty etc.) keep courses at the top level.
		block.Get("courses").ForEach(func(_, c gjson.Result) bool {
			add(c, 0)
			return true
		})
		return true
	})
	return out
}

// courseFrom builds a Course from an entry in either schema, tolerating the
// title/name field drift.
func courseFrom(entry gjson.Result, semester int) Course {
	if s := intField(entry, "semester"); s != 0 {
		semester = s
	}
	return Course{
		Title:    titleField(entry, "title", "name"),
		Credits:  intField(entry, "credits"),
		Hours:    intField(entry, "hours"),
		Semester: semester,
	}
}
