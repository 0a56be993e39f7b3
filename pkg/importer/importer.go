// Package importer turns externally produced files into normalized
// journal-entry candidates. One parser per recognized schema, selected
// by structural inspection, all funneling into types.ImportCandidate.
package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/innerguide/guide-api/pkg/types"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// DetectFormat picks the parser variant from the file name and the
// first structural byte of the content.
func DetectFormat(fileName string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	case ".txt", ".md", ".markdown":
		return FormatText
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatText
}

// Parse extracts candidates from a raw file. Per-record failures only
// increment the returned error count, a non-nil error means the file as
// a whole was unusable. Candidates with empty content are dropped.
func Parse(fileName string, content []byte) ([]types.ImportCandidate, int, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, 0, fmt.Errorf("empty file")
	}

	var (
		cands []types.ImportCandidate
		errs  int
		err   error
	)

	switch DetectFormat(fileName, content) {
	case FormatJSON:
		cands, errs, err = parseJSON(content)
	case FormatCSV:
		cands, errs, err = parseCSV(content)
	default:
		cands, errs, err = parseText(content)
	}
	if err != nil {
		return nil, 0, err
	}

	out := make([]types.ImportCandidate, 0, len(cands))
	for _, c := range cands {
		c.Content = strings.TrimSpace(c.Content)
		if c.Content == "" {
			continue
		}
		if c.Date == "" {
			c.Date = time.Now().Format("2006-01-02")
		}
		if c.Mood < types.MoodMin || c.Mood > types.MoodMax {
			c.Mood = types.MoodFallback
		}
		if c.Title == "" {
			c.Title = synthesizeTitle(fileName, c.Date)
		}
		out = append(out, c)
	}

	return out, errs, nil
}

func synthesizeTitle(fileName, date string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(base))
	if base != "" && base != "." {
		return base
	}
	return "Imported " + date
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// normalizeDate coerces the external date spelling to 2006-01-02. The
// second return reports whether anything was recognized.
func normalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
