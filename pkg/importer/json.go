package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/innerguide/guide-api/pkg/types"
)

// parseJSON accepts three shapes: an array of objects, an object
// wrapping an entry array (entries / data / journalEntries), and a
// single object.
func parseJSON(content []byte) ([]types.ImportCandidate, int, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("invalid json: %w", err)
	}

	switch v := doc.(type) {
	case []any:
		return candidatesFromArray(v)
	case map[string]any:
		for _, key := range []string{"entries", "data", "journalEntries"} {
			if arr, ok := v[key].([]any); ok {
				return candidatesFromArray(arr)
			}
		}
		cand, ok := candidateFromObject(v)
		if !ok {
			return nil, 1, nil
		}
		return []types.ImportCandidate{cand}, 0, nil
	default:
		return nil, 0, fmt.Errorf("unsupported json root %T", doc)
	}
}

func candidatesFromArray(items []any) ([]types.ImportCandidate, int, error) {
	var (
		cands []types.ImportCandidate
		errs  int
	)
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			errs++
			continue
		}
		cand, ok := candidateFromObject(obj)
		if !ok {
			errs++
			continue
		}
		cands = append(cands, cand)
	}
	return cands, errs, nil
}

var (
	contentKeys = []string{"content", "text", "body", "entry", "note", "notes"}
	titleKeys   = []string{"title", "name", "subject"}
	dateKeys    = []string{"date", "day", "created_at", "createdAt", "timestamp"}
	timeKeys    = []string{"time", "created_time"}
)

func candidateFromObject(obj map[string]any) (types.ImportCandidate, bool) {
	var cand types.ImportCandidate

	for _, key := range contentKeys {
		if s := stringField(obj, key); s != "" {
			cand.Content = s
			break
		}
	}
	if strings.TrimSpace(cand.Content) == "" {
		return cand, false
	}

	for _, key := range titleKeys {
		if s := stringField(obj, key); s != "" {
			cand.Title = s
			break
		}
	}
	for _, key := range dateKeys {
		if s := stringField(obj, key); s != "" {
			if date, ok := normalizeDate(s); ok {
				cand.Date = date
				break
			}
		}
	}
	for _, key := range timeKeys {
		if s := stringField(obj, key); s != "" {
			cand.Time = s
			break
		}
	}

	cand.Mood = moodFromAny(obj["mood"])
	cand.Tags = tagsFromAny(obj["tags"])

	return cand, true
}

func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// moodFromAny understands numbers, numeric strings and the "4/5"
// spelling. Anything else returns 0 and falls back to the midpoint
// later.
func moodFromAny(v any) int {
	switch m := v.(type) {
	case json.Number:
		if n, err := m.Int64(); err == nil {
			return int(n)
		}
		if f, err := m.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(m)
	case string:
		s := strings.TrimSpace(m)
		if left, _, ok := strings.Cut(s, "/"); ok {
			s = strings.TrimSpace(left)
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return 0
}

func tagsFromAny(v any) []string {
	var tags []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					tags = append(tags, s)
				}
			}
		}
	case string:
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				tags = append(tags, part)
			}
		}
	}
	return dedupeTags(tags)
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
