package sentiment

import "strings"

// Canonical labels. Every backend spelling is folded into one of these
// three before anything downstream colors or counts it.
const (
	LABEL_POSITIVE = "positivo"
	LABEL_NEGATIVE = "negativo"
	LABEL_NEUTRAL  = "neutral"
)

const (
	COLOR_POSITIVE = "#10b981"
	COLOR_NEGATIVE = "#ef4444"
	COLOR_NEUTRAL  = "#f59e0b"
	COLOR_UNKNOWN  = "#8b5cf6"
)

// NormalizeLabel maps the backend's label spellings (Spanish and English)
// onto the canonical set. Unrecognized labels pass through unchanged.
func NormalizeLabel(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positivo", "positive":
		return LABEL_POSITIVE
	case "negativo", "negative":
		return LABEL_NEGATIVE
	case "neutral", "neutro":
		return LABEL_NEUTRAL
	default:
		return label
	}
}

// LabelColor returns the display color for a label, falling back to the
// unknown color rather than rejecting unrecognized labels.
func LabelColor(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case LABEL_POSITIVE:
		return COLOR_POSITIVE
	case LABEL_NEGATIVE:
		return COLOR_NEGATIVE
	case LABEL_NEUTRAL:
		return COLOR_NEUTRAL
	default:
		return COLOR_UNKNOWN
	}
}
