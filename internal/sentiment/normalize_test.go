package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	cases := map[string]string{
		"positivo":   LABEL_POSITIVE,
		"positive":   LABEL_POSITIVE,
		"POSITIVE":   LABEL_POSITIVE,
		" Positivo ": LABEL_POSITIVE,
		"negativo":   LABEL_NEGATIVE,
		"negative":   LABEL_NEGATIVE,
		"neutral":    LABEL_NEUTRAL,
		"neutro":     LABEL_NEUTRAL,
		"NEUTRO":     LABEL_NEUTRAL,
	}

	for input, want := range cases {
		assert.Equal(t, want, NormalizeLabel(input), "input %q", input)
	}
}

func TestNormalizeLabelPassesUnknownThrough(t *testing.T) {
	assert.Equal(t, "mixed", NormalizeLabel("mixed"))
	assert.Equal(t, "", NormalizeLabel(""))
}

func TestLabelColor(t *testing.T) {
	assert.Equal(t, COLOR_POSITIVE, LabelColor("positivo"))
	assert.Equal(t, COLOR_NEGATIVE, LabelColor("negativo"))
	assert.Equal(t, COLOR_NEUTRAL, LabelColor("neutral"))
}

func TestLabelColorFallback(t *testing.T) {
	assert.Equal(t, COLOR_UNKNOWN, LabelColor("mixed"))
	assert.Equal(t, COLOR_UNKNOWN, LabelColor(""))
	// English spellings are normalized before coloring; raw ones fall back.
	assert.Equal(t, COLOR_UNKNOWN, LabelColor("positive"))
}
