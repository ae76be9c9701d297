package itmo

import (
	"encoding/json"
	"sort"
	"strconv"
)

// AI plan schema. Matches the shape published for «Искусственный интеллект»:
// curriculum.blocks[].modules[].semesters[].course_groups[].courses[].

type aiPlan struct {
	Curriculum aiCurriculum `json:"curriculum"`
}

type aiCurriculum struct {
	ProgramName string    `json:"program_name"`
	Blocks      []aiBlock `json:"blocks"`
}

type aiBlock struct {
	BlockName  string       `json:"block_name"`
	Modules    []aiModule   `json:"modules,omitempty"`
	Practices  []planCourse `json:"practices,omitempty"`
	Components []planCourse `json:"components,omitempty"`
	Courses    []planCourse `json:"courses,omitempty"`
}

type aiModule struct {
	ModuleName string       `json:"module_name"`
	Semesters  []aiSemester `json:"semesters"`
}

type aiSemester struct {
	SemesterNumber int       `json:"semester_number"`
	CourseGroups   []aiGroup `json:"course_groups"`
}

type aiGroup struct {
	GroupType string       `json:"group_type"`
	Courses   []planCourse `json:"courses"`
}

// AI Product plan schema: curriculum_name at the root, taught modules split
// into named sections, practicum and final assessment as module-level totals.

type productPlan struct {
	CurriculumName string         `json:"curriculum_name"`
	Blocks         []productBlock `json:"blocks"`
}

type productBlock struct {
	BlockName string          `json:"block_name"`
	Modules   []productModule `json:"modules"`
}

type productModule struct {
	ModuleName   string           `json:"module_name"`
	TotalCredits int              `json:"total_credits,omitempty"`
	TotalHours   int              `json:"total_hours,omitempty"`
	Semester     int              `json:"semester,omitempty"`
	Sections     []productSection `json:"sections,omitempty"`
	Courses      []planCourse     `json:"courses,omitempty"`
}

type productSection struct {
	SectionName string       `json:"section_name"`
	Courses     []planCourse `json:"courses"`
}

type planCourse struct {
	Title    string `json:"title"`
	Credits  int    `json:"credits,omitempty"`
	Hours    int    `json:"hours,omitempty"`
	Semester int    `json:"semester,omitempty"`
}

// AIPlanJSON renders the page in the AI plan schema.
func (p *Page) AIPlanJSON() ([]byte, error) {
	var semesters []aiSemester
	for _, number := range semesterNumbers(p.Mandatory, p.Selective) {
		sem := aiSemester{SemesterNumber: number}
		if courses := coursesOf(p.Mandatory, number, false); len(courses) > 0 {
			sem.CourseGroups = append(sem.CourseGroups, aiGroup{
				GroupType: "Обязательные дисциплины",
				Courses:   courses,
			})
		}
		if courses := coursesOf(p.Selective, number, false); len(courses) > 0 {
			sem.CourseGroups = append(sem.CourseGroups, aiGroup{
				GroupType: "Путь выбора дисциплин",
				Courses:   courses,
			})
		}
		semesters = append(semesters, sem)
	}

	plan := aiPlan{Curriculum: aiCurriculum{
		ProgramName: p.ProgramName,
		Blocks: []aiBlock{
			{
				BlockName: "Блок 1. Модули (дисциплины)",
				Modules: []aiModule{{
					ModuleName: "Обучение по программе",
					Semesters:  semesters,
				}},
			},
			{BlockName: "Блок 2. Практика", Practices: allCourses(p.Practicum)},
			{BlockName: "Блок 3. ГИА", Components: allCourses(p.Final)},
			{BlockName: "Майнорский факультет", Courses: allCourses(p.Facultative)},
		},
	}}
	return json.MarshalIndent(plan, "", "  ")
}

// ProductPlanJSON renders the page in the AI Product plan schema.
func (p *Page) ProductPlanJSON() ([]byte, error) {
	var sections []productSection
	for _, number := range semesterNumbers(p.Mandatory, nil) {
		sections = append(sections, productSection{
			SectionName: sectionName("Обязательные дисциплины", number),
			Courses:     coursesOf(p.Mandatory, number, true),
		})
	}
	for _, number := range semesterNumbers(p.Selective, nil) {
		sections = append(sections, productSection{
			SectionName: sectionName("Из выборочных дисциплин", number),
			Courses:     coursesOf(p.Selective, number, true),
		})
	}

	plan := productPlan{
		CurriculumName: p.ProgramName,
		Blocks: []productBlock{
			{
				BlockName: "Блок 1. Модули (дисциплины)",
				Modules: []productModule{{
					ModuleName: "Обучение по программе",
					Sections:   sections,
				}},
			},
			{BlockName: "Блок 2. Практика", Modules: totalModules(p.Practicum)},
			{BlockName: "Блок 3. ГИА", Modules: totalModules(p.Final)},
			{
				BlockName: "Факультативные модули",
				Modules: []productModule{{
					ModuleName: "Факультативы",
					Courses:    allCourses(p.Facultative),
				}},
			},
		},
	}
	return json.MarshalIndent(plan, "", "  ")
}

func sectionName(base string, semester int) string {
	if semester == 0 {
		return base
	}
	return base + ". " + strconv.Itoa(semester) + " семестр"
}

// semesterNumbers returns the distinct semester numbers present in the given
// entry lists, ascending. Entries without a semester group under 0.
func semesterNumbers(lists ...[]Entry) []int {
	seen := map[int]bool{}
	for _, list := range lists {
		for _, e := range list {
			seen[e.Semester] = true
		}
	}
	numbers := make([]int, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// coursesOf converts the entries of one semester. The AI schema keeps the
// semester on the enclosing group, the product schema on each course.
func coursesOf(entries []Entry, semester int, withSemester bool) []planCourse {
	var out []planCourse
	for _, e := range entries {
		if e.Semester != semester {
			continue
		}
		c := planCourse{Title: e.Title, Credits: e.Credits, Hours: e.Hours}
		if withSemester {
			c.Semester = e.Semester
		}
		out = append(out, c)
	}
	return out
}

func allCourses(entries []Entry) []planCourse {
	var out []planCourse
	for _, e := range entries {
		out = append(out, planCourse{
			Title:    e.Title,
			Credits:  e.Credits,
			Hours:    e.Hours,
			Semester: e.Semester,
		})
	}
	return out
}

// totalModules renders entries as module-level totals, the shape the product
// plan uses for practicum and final assessment.
func totalModules(entries []Entry) []productModule {
	var out []productModule
	for _, e := range entries {
		out = append(out, productModule{
			ModuleName:   e.Title,
			TotalCredits: e.Credits,
			TotalHours:   e.Hours,
			Semester:     e.Semester,
		})
	}
	return out
}
