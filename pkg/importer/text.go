package importer

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/innerguide/guide-api/pkg/types"
)

var (
	moodLineRe   = regexp.MustCompile(`(?i)^mood\s*[:=]\s*(\d+)\s*(?:/\s*\d+)?$`)
	tagsLineRe   = regexp.MustCompile(`(?i)^tags?\s*[:=]\s*(.+)$`)
	inlineTagRe  = regexp.MustCompile(`#([\p{L}\d_-]+)`)
	headingRe    = regexp.MustCompile(`^#{1,6}\s+(.+)$`)
	decoratorsRe = regexp.MustCompile(`^[*_\s]+|[*_\s]+$`)
)

// parseText handles plain text and Markdown journals. A line holding
// just a date starts a new entry, heading/mood/tag lines annotate the
// current one, everything else is content. A file without any date line
// becomes a single candidate.
func parseText(content []byte) ([]types.ImportCandidate, int, error) {
	var (
		cands   []types.ImportCandidate
		current types.ImportCandidate
		body    []string
		started bool
	)

	flush := func() {
		current.Content = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Content != "" {
			for _, m := range inlineTagRe.FindAllStringSubmatch(current.Content, -1) {
				current.Tags = append(current.Tags, m[1])
			}
			current.Tags = dedupeTags(current.Tags)
			cands = append(cands, current)
		}
		current = types.ImportCandidate{}
		body = body[:0]
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		bare := decoratorsRe.ReplaceAllString(line, "")

		if date, ok := normalizeDate(bare); ok {
			if started {
				flush()
			}
			started = true
			current.Date = date
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			title := strings.TrimSpace(m[1])
			if date, ok := normalizeDate(title); ok {
				if started {
					flush()
				}
				started = true
				current.Date = date
			} else if current.Title == "" {
				current.Title = title
			}
			continue
		}

		if m := moodLineRe.FindStringSubmatch(bare); m != nil {
			current.Mood = moodFromAny(m[1])
			continue
		}

		if m := tagsLineRe.FindStringSubmatch(bare); m != nil {
			current.Tags = append(current.Tags, tagsFromAny(m[1])...)
			continue
		}

		body = append(body, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	flush()

	return cands, 0, nil
}
