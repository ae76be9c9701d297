package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/itmo-abit/planbot/internal/curriculum"
)

// Unknown numeric fields are rendered as placeholders instead of zeros:
// "?" for credits and hours, "—" for the semester.

func fmtNum(n int) string {
	if n == 0 {
		return "?"
	}
	return strconv.Itoa(n)
}

func fmtSemester(n int) string {
	if n == 0 {
		return "—"
	}
	return strconv.Itoa(n)
}

// courseLine renders one course as a bullet line. withSemester adds the
// semester suffix, used for lists that mix semesters (recommendations,
// search, practicum).
func courseLine(c curriculum.Course, withSemester bool) string {
	if withSemester {
		return fmt.Sprintf("• %s — %s кр., %s ч. (семестр: %s)",
			c.Title, fmtNum(c.Credits), fmtNum(c.Hours), fmtSemester(c.Semester))
	}
	return fmt.Sprintf("• %s — %s кр., %s ч.", c.Title, fmtNum(c.Credits), fmtNum(c.Hours))
}

func courseList(header string, courses []curriculum.Course, withSemester bool) string {
	var b strings.Builder
	b.WriteString(header)
	for _, c := range courses {
		b.WriteString("\n")
		b.WriteString(courseLine(c, withSemester))
	}
	return b.String()
}
