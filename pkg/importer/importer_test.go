package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innerguide/guide-api/pkg/types"
)

func TestChecksumDeterministic(t *testing.T) {
	content := []byte("Had a great walk today")

	assert.Equal(t, Checksum(content), Checksum(content))
	assert.NotEqual(t, Checksum(content), Checksum([]byte("Had a great walk today.")))
}

func TestParseJSONArray(t *testing.T) {
	raw := []byte(`[{"content":"Had a great walk","date":"2024-01-05","mood":4}]`)

	cands, errs, err := Parse("walks.json", raw)
	require.NoError(t, err)
	assert.Zero(t, errs)
	require.Len(t, cands, 1)

	assert.Equal(t, "Had a great walk", cands[0].Content)
	assert.Equal(t, "2024-01-05", cands[0].Date)
	assert.Equal(t, 4, cands[0].Mood)
}

func TestParseJSONEntriesObject(t *testing.T) {
	raw := []byte(`{"entries":[{"text":"Quiet evening","date":"2024/02/10","tags":["calm","home"]},{"text":"","date":"2024-02-11"}]}`)

	cands, _, err := Parse("export.json", raw)
	require.NoError(t, err)
	require.Len(t, cands, 1) // empty-content candidate dropped

	assert.Equal(t, "2024-02-10", cands[0].Date)
	assert.Equal(t, []string{"calm", "home"}, cands[0].Tags)
}

func TestParseJSONSingleObject(t *testing.T) {
	raw := []byte(`{"content":"One off note","mood":"4/5"}`)

	cands, _, err := Parse("note.json", raw)
	require.NoError(t, err)
	require.Len(t, cands, 1)

	assert.Equal(t, 4, cands[0].Mood)
	// missing date falls back to today
	assert.Equal(t, time.Now().Format("2006-01-02"), cands[0].Date)
}

func TestParseJSONFallbacks(t *testing.T) {
	raw := []byte(`[{"content":"Mood missing"},{"content":"Mood out of range","mood":9}]`)

	cands, _, err := Parse("moods.json", raw)
	require.NoError(t, err)
	require.Len(t, cands, 2)

	assert.Equal(t, types.MoodFallback, cands[0].Mood)
	assert.Equal(t, types.MoodFallback, cands[1].Mood)
	// title synthesized from file name
	assert.Equal(t, "moods", cands[0].Title)
}

func TestParseJSONBadRecordsCounted(t *testing.T) {
	raw := []byte(`[{"content":"fine","date":"2024-01-05"},"not an object",{"no_content_field":true}]`)

	cands, errs, err := Parse("mixed.json", raw)
	require.NoError(t, err)
	assert.Len(t, cands, 1)
	assert.Equal(t, 2, errs)
}

func TestParseCSV(t *testing.T) {
	raw := []byte("date,content,mood,tags\n2024-03-01,\"Rainy day, stayed in\",2,\"cozy, reading\"\n2024-03-02,Sun came back,5,\n")

	cands, errs, err := Parse("diary.csv", raw)
	require.NoError(t, err)
	assert.Zero(t, errs)
	require.Len(t, cands, 2)

	assert.Equal(t, "Rainy day, stayed in", cands[0].Content)
	assert.Equal(t, 2, cands[0].Mood)
	assert.Equal(t, []string{"cozy", "reading"}, cands[0].Tags)
	assert.Equal(t, "2024-03-02", cands[1].Date)
}

func TestParseCSVNoContentColumn(t *testing.T) {
	raw := []byte("a,b\n1,2\n")

	_, _, err := Parse("bad.csv", raw)
	assert.Error(t, err)
}

func TestParseMarkdown(t *testing.T) {
	raw := []byte(`# 2024-01-05

Went for a long walk in the hills.
Mood: 4/5
Tags: outdoors, walking

## 2024-01-06

Slow morning with #coffee and a book.
`)

	cands, _, err := Parse("january.md", raw)
	require.NoError(t, err)
	require.Len(t, cands, 2)

	assert.Equal(t, "2024-01-05", cands[0].Date)
	assert.Equal(t, 4, cands[0].Mood)
	assert.Contains(t, cands[0].Tags, "outdoors")
	assert.Equal(t, "2024-01-06", cands[1].Date)
	assert.Contains(t, cands[1].Tags, "coffee")
}

func TestParsePlainTextSingleEntry(t *testing.T) {
	raw := []byte("Just a loose thought without any structure.")

	cands, _, err := Parse("thought.txt", raw)
	require.NoError(t, err)
	require.Len(t, cands, 1)

	assert.Equal(t, "Just a loose thought without any structure.", cands[0].Content)
	assert.Equal(t, time.Now().Format("2006-01-02"), cands[0].Date)
	assert.Equal(t, "thought", cands[0].Title)
}

func TestParseEmptyFile(t *testing.T) {
	_, _, err := Parse("empty.txt", []byte("   \n  "))
	assert.Error(t, err)
}

func TestDetectFormatBySniffing(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("noext", []byte(`  {"content":"x"}`)))
	assert.Equal(t, FormatText, DetectFormat("noext", []byte("hello")))
	assert.Equal(t, FormatCSV, DetectFormat("x.csv", []byte("a,b")))
}

func TestTagDeduplication(t *testing.T) {
	raw := []byte(`[{"content":"walk","tags":["Walk","walk","park"]}]`)

	cands, _, err := Parse("tags.json", raw)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, []string{"Walk", "park"}, cands[0].Tags)
}
