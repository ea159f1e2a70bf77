package sri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhananjayaDev/trivity/internal/model"
)

func TestCatalog_Composition(t *testing.T) {
	counts := map[model.Category]int{}
	seen := map[string]bool{}

	for _, q := range Catalog() {
		counts[q.Category]++
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
		assert.NotEmpty(t, q.Text)
		assert.Greater(t, q.Weight, 0.0)
		require.NotEmpty(t, q.Options, "question %s has no options", q.ID)
	}

	assert.Equal(t, 4, counts[model.CategoryGeneral])
	assert.Equal(t, 5, counts[model.CategoryEnvironment])
	assert.Equal(t, 8, counts[model.CategorySocial])
	assert.Equal(t, 10, counts[model.CategoryGovernance])
	assert.Len(t, Catalog(), 27)
}

func TestCatalog_OptionScoresInRange(t *testing.T) {
	for _, q := range Catalog() {
		for _, opt := range q.Options {
			assert.GreaterOrEqual(t, opt.Score, 0.0)
			assert.LessOrEqual(t, opt.Score, 100.0)
			assert.NotEmpty(t, opt.Value)
		}
	}
}

func TestQuestions_FilterByCategory(t *testing.T) {
	questions := Questions(model.CategoryEnvironment)

	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.Equal(t, model.CategoryEnvironment, q.Category)
	}
	// Catalog order is preserved.
	assert.Equal(t, "environment_1", questions[0].ID)
	assert.Equal(t, "environment_5", questions[4].ID)
}

func TestQuestions_EmptyCategoryReturnsAll(t *testing.T) {
	assert.Len(t, Questions(""), 27)
}

func TestQuestions_UnknownCategoryReturnsNothing(t *testing.T) {
	assert.Empty(t, Questions(model.Category("finance")))
}
