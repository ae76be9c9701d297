package curriculum

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Section name fragments in the AI Product schema. Sections are named like
// "Обязательные дисциплины. 1 семестр" and "Из выборочных дисциплин. 2 семестр".
const (
	productSectionMandatory = "обязательн"
	productSectionSelective = "выбор"
)

// productDocument adapts the "Управление ИИ-продуктами" plan. Physical
// shape: top-level curriculum_name and blocks[].modules[], where taught
// modules nest "sections" with per-course semester numbers and the
// practicum/final blocks reuse "modules" for their entries.
type productDocument struct {
	root gjson.Result
}

// NewProductDocument parses raw JSON in the AI Product plan schema.
func NewProductDocument(raw []byte) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("ai product plan: invalid JSON")
	}
	root := gjson.ParseBytes(raw)
	if root.Get("curriculum_name").String() == "" {
		return nil, fmt.Errorf("ai product plan: missing curriculum_name")
	}
	return &productDocument{root: root}, nil
}

func (d *productDocument) Title() string {
	return d.root.Get("curriculum_name").String()
}

func (d *productDocument) Mandatory(semester int) []Course {
	return d.sectionCourses(semester, productSectionMandatory)
}

func (d *productDocument) Selective(semester int) []Course {
	return d.sectionCourses(semester, productSectionSelective)
}

// sectionCourses collects courses from taught-module sections whose name
// contains the given fragment, filtered to one semester. Courses carry
// their own semester numbers in this schema.
func (d *productDocument) sectionCourses(semester int, sectionFragment string) []Course {
	out := []Course{}
	d.eachTaughtModule(func(module gjson.Result) {
		module.Get("sections").ForEach(func(_, section gjson.Result) bool {
			if !containsFold(section.Get("section_name").String(), sectionFragment) {
				return true
			}
			section.Get("courses").ForEach(func(_, c gjson.Result) bool {
				course := courseFrom(c, 0)
				if course.Semester == semester {
					out = append(out, course)
				}
				return true
			})
			return true
		})
	})
	return out
}

// ElectivePool returns every course reachable from the taught modules,
// sections and module-level lists alike. The AI Product plan does not split
// a dedicated elective track per semester the way the AI plan does, so the
// whole taught pool is the candidate set.
func (d *productDocument) ElectivePool(semester int) []Course {
	pool := []Course{}
	keep := func(c Course) {
		if c.Title == "" {
			return
		}
		if semester != 0 && c.Semester != semester {
			return
		}
		pool = append(pool, c)
	}
	d.eachTaughtModule(func(module gjson.Result) {
		module.Get("sections").ForEach(func(_, section gjson.Result) bool {
			section.Get("courses").ForEach(func(_, c gjson.Result) bool {
				keep(courseFrom(c, 0))
				return true
			})
			return true
		})
		module.Get("courses").ForEach(func(_, c gjson.Result) bool {
			keep(courseFrom(c, 0))
			return true
		})
	})
	return pool
}

// eachTaughtModule visits modules of the taught-modules block only; the
// practicum and final blocks reuse the "modules" key for unrelated shapes.
func (d *productDocument) eachTaughtModule(visit func(module gjson.Result)) {
	block, ok := findBlock(d.root.Get("blocks"), labelModules)
	if !ok {
		return
	}
	block.Get("modules").ForEach(func(_, module gjson.Result) bool {
		visit(module)
		return true
	})
}

// Practicum flattens practicum modules to their courses; a module without a
// course list is emitted as a single entry under its own name.
func (d *productDocument) Practicum() []Course {
	block, ok := findBlock(d.root.Get("blocks"), labelPracticum)
	if !ok {
		return []Course{}
	}
	out := []Course{}
	block.Get("modules").ForEach(func(_, module gjson.Result) bool {
		courses := module.Get("courses")
		if !courses.Exists() || len(courses.Array()) == 0 {
			out = append(out, Course{
				Title:    titleField(module, "title", "name", "module_name"),
				Credits:  intField(module, "credits", "total_credits"),
				Hours:    intField(module, "hours", "total_hours"),
				Semester: intField(module, "semester"),
			})
			return true
		}
		courses.ForEach(func(_, c gjson.Result) bool {
			out = append(out, courseFrom(c, 0))
			return true
		})
		return true
	})
	return out
}

func (d *productDocument) FinalAssessment() []Course {
	block, ok := findBlock(d.root.Get("blocks"), labelFinal)
	if !ok {
		return []Course{}
	}
	out := []Course{}
	block.Get("modules").ForEach(func(_, m gjson.Result) bool {
		out = append(out, Course{
			Title:    titleField(m, "title", "name", "module_name"),
			Credits:  intField(m, "credits", "total_credits"),
			Hours:    intField(m, "hours", "total_hours"),
			Semester: intField(m, "semester"),
		})
		return true
	})
	return out
}

// SoftSkills reads the facultative block, flattening module→courses.
func (d *productDocument) SoftSkills() []Course {
	block, ok := findBlock(d.root.Get("blocks"), labelFacultativ)
	if !ok {
		return []Course{}
	}
	out := []Course{}
	block.Get("modules").ForEach(func(_, module gjson.Result) bool {
		module.Get("courses").ForEach(func(_, c gjson.Result) bool {
			out = append(out, courseFrom(c, 0))
			return true
		})
		return true
	})
	return out
}

func (d *productDocument) Search(query string) []Course {
	query = strings.ToLower(query)
	out := []Course{}
	add := func(c gjson.Result) {
		course := courseFrom(c, 0)
		if course.Title == "" {
			return
		}
		if strings.Contains(strings.ToLower(course.Title), query) {
			out = append(out, course)
		}
	}
	d.root.Get("blocks").ForEach(func(_, block gjson.Result) bool {
		block.Get("modules").ForEach(func(_, module gjson.Result) bool {
			module.Get("sections").ForEach(func(_, section gjson.Result) bool {
				section.Get("courses").ForEach(func(_, c gjson.Result) bool {
					add(c)
					return true
				})
				return true
			})
			module.Get("courses").ForEach(func(_, c gjson.Result) bool {
				add(c)
				return true
			})
			return true
		})
		return true
	})
	return out
}
