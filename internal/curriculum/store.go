package curriculum

import (
	"fmt"
	"os"
	"path/filepath"
)

// Plan file names inside the data directory, as written by cmd/scrape.
const (
	AIPlanFile        = "ai_plan.json"
	AIProductPlanFile = "ai_product_plan.json"
)

// Store holds the loaded plan documents for both programs. It is populated
// once at startup and read-only afterwards, so concurrent reads from many
// sessions need no synchronization.
type Store struct {
	docs map[ProgramID]Document
}

// NewStore builds a Store from the raw plan documents. Either document
// failing to parse means the process must not start; callers treat the
// error as fatal.
func NewStore(aiRaw, productRaw []byte) (*Store, error) {
	ai, err := NewAIDocument(aiRaw)
	if err != nil {
		return nil, fmt.Errorf("load %s plan: %w", ProgramAI, err)
	}
	product, err := NewProductDocument(productRaw)
	if err != nil {
		return nil, fmt.Errorf("load %s plan: %w", ProgramAIProduct, err)
	}
	return &Store{docs: map[ProgramID]Document{
		ProgramAI:        ai,
		ProgramAIProduct: product,
	}}, nil
}

// LoadDir reads both plan files from dir and builds a Store.
func LoadDir(dir string) (*Store, error) {
	aiRaw, err := os.ReadFile(filepath.Join(dir, AIPlanFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", AIPlanFile, err)
	}
	productRaw, err := os.ReadFile(filepath.Join(dir, AIProductPlanFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", AIProductPlanFile, err)
	}
	return NewStore(aiRaw, productRaw)
}

// Document returns the plan document for the given program. The program id
// set is closed; an unknown id is a bug in the caller, not runtime input.
func (s *Store) Document(id ProgramID) Document {
	doc, ok := s.docs[id]
	if !ok {
		panic(fmt.Sprintf("curriculum: unknown program id %q", id))
	}
	return doc
}

// ProgramTitle returns the human-readable program name from the document.
func (s *Store) ProgramTitle(id ProgramID) string {
	return s.Document(id).Title()
}

// ListPrograms returns both programs in a fixed, stable order.
func (s *Store) ListPrograms() []ProgramInfo {
	return []ProgramInfo{
		{ID: ProgramAI, Title: s.docs[ProgramAI].Title()},
		{ID: ProgramAIProduct, Title: s.docs[ProgramAIProduct].Title()},
	}
}
