package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTexts(t *testing.T) {
	data := []byte("id,texto,fecha\n1,me encanta,2024-01-01\n2,muy malo,2024-01-02\n")

	res, err := ExtractTexts(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"me encanta", "muy malo"}, res.Texts)
	assert.False(t, res.Truncated)
	assert.False(t, res.DecodeFallback)
}

func TestExtractTextsHeaderCaseInsensitive(t *testing.T) {
	res, err := ExtractTexts([]byte("ID,Texto\n1,hola\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hola"}, res.Texts)
}

func TestExtractTextsQuotedComma(t *testing.T) {
	data := []byte("texto,nota\n\"hello, world\",x\n\"she said \"\"hi\"\"\",y\n")

	res, err := ExtractTexts(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello, world", `she said "hi"`}, res.Texts)
}

func TestExtractTextsMissingColumn(t *testing.T) {
	_, err := ExtractTexts([]byte("id,comentario\n1,hola\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestExtractTextsEmptyFile(t *testing.T) {
	_, err := ExtractTexts([]byte(""))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ExtractTexts([]byte("\n\n  \n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestExtractTextsNoValidRows(t *testing.T) {
	_, err := ExtractTexts([]byte("texto\n  \n,\n"))
	assert.ErrorIs(t, err, ErrNoTexts)
}

func TestExtractTextsTruncatesAtMaxRows(t *testing.T) {
	var b strings.Builder
	b.WriteString("texto\n")
	for i := 0; i < MAX_ROWS+1; i++ {
		fmt.Fprintf(&b, "fila %d\n", i)
	}

	res, err := ExtractTexts([]byte(b.String()))
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Len(t, res.Texts, MAX_ROWS)
	assert.Equal(t, "fila 0", res.Texts[0])
	assert.Equal(t, fmt.Sprintf("fila %d", MAX_ROWS-1), res.Texts[MAX_ROWS-1])
}

func TestExtractTextsLatin1Fallback(t *testing.T) {
	// "está bien" with a Latin-1 encoded á (0xE1), invalid as UTF-8.
	data := []byte("texto\nest\xe1 bien\n")

	res, err := ExtractTexts(data)
	require.NoError(t, err)
	assert.True(t, res.DecodeFallback)
	assert.Equal(t, []string{"está bien"}, res.Texts)
}

func TestExtractTextsCRLineEndings(t *testing.T) {
	res, err := ExtractTexts([]byte("texto\r\nuno\rdos\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"uno", "dos"}, res.Texts)
}

func TestExtractTextsSkipsShortRows(t *testing.T) {
	res, err := ExtractTexts([]byte("id,texto\n1,hola\n2\n3,adios\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hola", "adios"}, res.Texts)
}
