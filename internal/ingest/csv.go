package ingest

import (
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// MAX_ROWS caps how many data rows one upload may contribute.
const MAX_ROWS = 500

// User-visible ingestion failures, surfaced in the same inline banner as
// network errors but produced entirely client-side.
var (
	ErrEmptyFile     = errors.New("El archivo está vacío")
	ErrMissingColumn = errors.New("El archivo no contiene una columna 'texto'")
	ErrNoTexts       = errors.New("No se encontraron textos válidos en el archivo")
)

type Result struct {
	Texts []string
	// Truncated reports that rows beyond MAX_ROWS were dropped.
	Truncated bool
	// DecodeFallback reports that the bytes were not valid UTF-8 and were
	// reinterpreted as Latin-1; the caller should show the ambiguity
	// rather than trust the text blindly.
	DecodeFallback bool
}

// ExtractTexts pulls the "texto" column out of an uploaded CSV file.
// Decoding prefers strict UTF-8 with a Latin-1 fallback for
// spreadsheet-exported files.
func ExtractTexts(data []byte) (Result, error) {
	var res Result

	content, fallback, err := decode(data)
	if err != nil {
		return res, err
	}
	res.DecodeFallback = fallback

	lines := splitLines(content)
	if len(lines) == 0 {
		return res, ErrEmptyFile
	}

	header := splitFields(lines[0])
	textCol := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "texto") {
			textCol = i
			break
		}
	}
	if textCol < 0 {
		return res, ErrMissingColumn
	}

	rows := lines[1:]
	if len(rows) > MAX_ROWS {
		res.Truncated = true
		rows = rows[:MAX_ROWS]
		slog.Warn("[Ingest] CSV truncated",
			slog.Int("max_rows", MAX_ROWS))
	}

	for _, row := range rows {
		fields := splitFields(row)
		if textCol >= len(fields) {
			continue
		}
		if text := strings.TrimSpace(fields[textCol]); text != "" {
			res.Texts = append(res.Texts, text)
		}
	}

	if len(res.Texts) == 0 {
		return res, ErrNoTexts
	}

	return res, nil
}

func decode(data []byte) (string, bool, error) {
	if utf8.Valid(data) {
		return string(data), false, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", false, err
	}
	slog.Warn("[Ingest] File was not valid UTF-8, decoded as Latin-1")
	return string(decoded), true, nil
}

// splitLines breaks on CR, LF, or CRLF and drops empty lines.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitFields splits on commas outside quoted spans, stripping the
// surrounding quotes and un-escaping doubled quotes.
func splitFields(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				b.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(ch)
		}
	}
	fields = append(fields, b.String())

	return fields
}
