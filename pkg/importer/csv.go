package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/innerguide/guide-api/pkg/types"
)

// parseCSV expects a header row, column names are matched against the
// same aliases the json parser uses. Records that fail to parse are
// counted, the rest of the file still imports.
func parseCSV(content []byte) ([]types.ImportCandidate, int, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	contentIdx, ok := findColumn(cols, contentKeys)
	if !ok {
		return nil, 0, fmt.Errorf("csv has no content column")
	}
	dateIdx, hasDate := findColumn(cols, dateKeys)
	timeIdx, hasTime := findColumn(cols, timeKeys)
	titleIdx, hasTitle := findColumn(cols, titleKeys)
	moodIdx, hasMood := findColumn(cols, []string{"mood", "rating", "score"})
	tagsIdx, hasTags := findColumn(cols, []string{"tags", "labels"})

	var (
		cands []types.ImportCandidate
		errs  int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs++
			continue
		}

		var cand types.ImportCandidate
		cand.Content = field(record, contentIdx)
		if cand.Content == "" {
			errs++
			continue
		}
		if hasDate {
			if date, ok := normalizeDate(field(record, dateIdx)); ok {
				cand.Date = date
			}
		}
		if hasTime {
			cand.Time = field(record, timeIdx)
		}
		if hasTitle {
			cand.Title = field(record, titleIdx)
		}
		if hasMood {
			cand.Mood = moodFromAny(field(record, moodIdx))
		}
		if hasTags {
			cand.Tags = tagsFromAny(field(record, tagsIdx))
		}

		cands = append(cands, cand)
	}

	return cands, errs, nil
}

func findColumn(cols map[string]int, aliases []string) (int, bool) {
	for _, alias := range aliases {
		if idx, ok := cols[alias]; ok {
			return idx, true
		}
	}
	return 0, false
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
