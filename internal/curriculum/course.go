// Package curriculum normalizes the two ITMO master's plan documents behind
// a single query interface. The two source schemas differ in nesting depth
// and field naming, so each program gets its own Document adapter; everything
// above this package only ever sees Course values.
package curriculum

// ProgramID identifies one of the two supported master's programs.
type ProgramID string

// Supported program identifiers.
const (
	ProgramAI        ProgramID = "ai"
	ProgramAIProduct ProgramID = "ai_product"
)

// SemesterMax is the highest semester number observed in the plan documents.
const SemesterMax = 4

// Course is the semantic unit shared by every curriculum block.
// A zero Credits, Hours or Semester means the source document does not
// carry that field for the entry.
type Course struct {
	Title    string `json:"title"`
	Credits  int    `json:"credits,omitempty"`
	Hours    int    `json:"hours,omitempty"`
	Semester int    `json:"semester,omitempty"`
}

// ProgramInfo pairs a program id with its human-readable title.
type ProgramInfo struct {
	ID    ProgramID
	Title string
}

// Document is the normalized view over one curriculum plan. Implementations
// absorb the physical schema of their program; every operation returns an
// empty slice when the requested block or semester is absent.
type Document interface {
	// Title returns the human-readable program name from the document.
	Title() string

	// Mandatory returns mandatory courses taught in the given semester.
	Mandatory(semester int) []Course

	// Selective returns elective-track courses taught in the given semester.
	Selective(semester int) []Course

	// ElectivePool returns the full elective candidate set used by the
	// recommendation engine. semester 0 means all semesters.
	ElectivePool(semester int) []Course

	// Practicum returns practicum entries across all semesters.
	Practicum() []Course

	// FinalAssessment returns the final state examination components.
	FinalAssessment() []Course

	// SoftSkills returns soft-skill and minor courses, flattening any
	// nested module structure.
	SoftSkills() []Course

	// Search matches query as a case-insensitive substring against every
	// course title reachable from the document.
	Search(query string) []Course
}
