package curriculum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadProductDocument(t *testing.T) Document {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "ai_product_plan.json"))
	require.NoError(t, err)
	doc, err := NewProductDocument(raw)
	require.NoError(t, err)
	return doc
}

func TestProductDocumentTitle(t *testing.T) {
	t.Parallel()
	doc := loadProductDocument(t)
	assert.Equal(t, "Учебный план ОП Управление ИИ-продуктами/AI Product", doc.Title())
}

func TestProductDocumentMandatorySelective(t *testing.T) {
	t.Parallel()
	doc := loadProductDocument(t)

	mandatory := doc.Mandatory(1)
	require.Len(t, mandatory, 2)
	assert.Equal(t, Course{Title: "Продуктовая аналитика", Credits: 3, Hours: 108, Semester: 1}, mandatory[0])

	// Sections are typed by name; the mandatory section holds no semester-2 courses.
	assert.Empty(t, doc.Mandatory(2))

	selective := doc.Selective(2)
	require.Len(t, selective, 2)
	assert.Equal(t, "Метрики продукта и A/B-эксперименты", selective[0].Title)

	assert.Empty(t, doc.Selective(4))
}

func TestProductDocumentElectivePool(t *testing.T) {
	t.Parallel()
	doc := loadProductDocument(t)

	// The whole taught pool counts: both sections plus module-level courses.
	all := doc.ElectivePool(0)
	assert.Len(t, all, 5)

	sem2 := doc.ElectivePool(2)
	require.Len(t, sem2, 2)
	assert.Equal(t, "Метрики продукта и A/B-эксперименты", sem2[0].Title)
}

func TestProductDocumentPracticum(t *testing.T) {
	t.Parallel()
	doc := loadProductDocument(t)

	got := doc.Practicum()
	require.Len(t, got, 2)
	assert.Equal(t, Course{Title: "Продуктовая практика", Credits: 9, Hours: 324, Semester: 3}, got[0])

	// A module without nested courses is emitted under its own name, with
	// total_credits/total_hours folded into the normal fields.
	assert.Equal(t, Course{Title: "Преддипломная практика", Credits: 12, Hours: 432}, got[1])
}

func TestProductDocumentFinalAssessment(t *testing.T) {
	t.Parallel()
	doc := loadProductDocument(t)

	got := doc.FinalAssessment()
	require.Len(t, got, 1)
	assert.Equal(t, Course{Title: "Защита ВКР", Credits: 9, Hours: 324}, got[0])
}

func TestProductDocumentSoftSkills(t *testing.T) {
	t.Parallel()
	doc := loadProductDocument(t)

	got := doc.SoftSkills()
	require.Len(t, got, 1)
	assert.Equal(t, "Менторство и коммуникация", got[0].Title)
}

func TestProductDocumentSearch(t *testing.T) {
	t.Parallel()
	doc := loadProductDocument(t)

	got := doc.Search("продукт")
	titles := make([]string, 0, len(got))
	for _, c := range got {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{
		"Продуктовая аналитика",
		"Метрики продукта и A/B-эксперименты",
		"Монетизация ИИ-продуктов",
		"Продуктовая практика",
	}, titles)

	assert.Empty(t, doc.Search("теория категорий"))
}

func TestNewProductDocumentRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := NewProductDocument([]byte("][")) // invalid JSON
	assert.Error(t, err)

	_, err = NewProductDocument([]byte(`{"blocks": []}`)) // no curriculum_name
	assert.Error(t, err)
}

func TestProductDocumentMissingBlocks(t *testing.T) {
	t.Parallel()
	doc, err := NewProductDocument([]byte(`{"curriculum_name": "AI Product"}`))
	require.NoError(t, err)

	assert.Empty(t, doc.Mandatory(1))
	assert.Empty(t, doc.ElectivePool(0))
	assert.Empty(t, doc.Practicum())
	assert.Empty(t, doc.FinalAssessment())
	assert.Empty(t, doc.SoftSkills())
	assert.Empty(t, doc.Search("аналитика"))
}
