package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

func TestIndustryKeywords_FrequencyRanked(t *testing.T) {
	lex := lexicon.Default()
	text := `We build payment infrastructure. Our payment infrastructure handles
millions of daily transactions. Fraud detection protects every transaction.`

	keywords := IndustryKeywords(text, nil, lex, 15)

	assert.NotEmpty(t, keywords)
	assert.Equal(t, "payment infrastructure", keywords[0])
	assert.Contains(t, keywords, "fraud detection")
}

func TestIndustryKeywords_ExcludesCapturedSkills(t *testing.T) {
	lex := lexicon.Default()
	text := "machine learning pipelines everywhere. machine learning at scale. machine learning daily."
	captured := []types.Skill{{Name: "Machine Learning", SurfaceForms: []string{"machine learning"}}}

	keywords := IndustryKeywords(text, captured, lex, 10)

	assert.NotContains(t, keywords, "machine learning")
}

func TestIndustryKeywords_TopNCap(t *testing.T) {
	lex := lexicon.Default()
	text := `alpha beta gamma delta epsilon zeta. alpha beta again here.
gamma delta once more. micro services platform engineering culture.`

	keywords := IndustryKeywords(text, nil, lex, 3)

	assert.LessOrEqual(t, len(keywords), 3)
}

func TestCultureSignals_FirstOccurrenceOrder(t *testing.T) {
	lex := lexicon.Default()
	text := "We value collaboration above all. Innovation drives us. We expect ownership."

	signals := CultureSignals(text, lex)

	assert.Equal(t, []string{"collaboration", "innovation", "ownership"}, signals)
}

func TestCultureSignals_NoTerms(t *testing.T) {
	lex := lexicon.Default()

	assert.Empty(t, CultureSignals("strictly factual job text", lex))
}
