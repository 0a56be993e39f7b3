package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsightReply(t *testing.T) {
	reply := `{"sentiment":"positive","score":0.7,"emotions":["joy","calm"],"themes":["nature"],"suggestions":["take more walks"],"reflection":"A bright day."}`

	res, err := ParseInsightReply(reply)
	require.NoError(t, err)

	assert.True(t, res.Available)
	assert.Equal(t, "positive", res.Sentiment)
	assert.Equal(t, 0.7, res.Score)
	assert.Equal(t, []string{"joy", "calm"}, res.Emotions)
	assert.Equal(t, "A bright day.", res.Reflection)
}

func TestParseInsightReplyFenced(t *testing.T) {
	reply := "```json\n{\"sentiment\":\"negative\",\"score\":-0.4}\n```"

	res, err := ParseInsightReply(reply)
	require.NoError(t, err)

	assert.Equal(t, "negative", res.Sentiment)
	assert.Equal(t, -0.4, res.Score)
	// missing fields coerce to empty slices, never nil
	assert.NotNil(t, res.Emotions)
	assert.Empty(t, res.Emotions)
	assert.NotNil(t, res.Suggestions)
}

func TestParseInsightReplyDefensiveCoercion(t *testing.T) {
	res, err := ParseInsightReply(`{"sentiment":"ecstatic","score":4.2}`)
	require.NoError(t, err)

	assert.Equal(t, "neutral", res.Sentiment) // unknown label
	assert.Equal(t, 1.0, res.Score)           // clamped
}

func TestParseInsightReplyGarbage(t *testing.T) {
	res, err := ParseInsightReply("the model rambled instead of answering")
	assert.Error(t, err)
	assert.False(t, res.Available)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence(`{"a":1}`))
}

func TestBuildInsightPrompt(t *testing.T) {
	p := BuildInsightPrompt(InsightRequest{
		Content:   "Walked along the river.",
		Date:      "2024-01-05",
		City:      "Porto",
		Country:   "Portugal",
		MoonPhase: "Waxing Crescent",
	})

	assert.Contains(t, p, "Date: 2024-01-05")
	assert.Contains(t, p, "Location: Porto, Portugal")
	assert.Contains(t, p, "Moon phase: Waxing Crescent")
	assert.Contains(t, p, "Walked along the river.")
}

func TestUnavailableResultShape(t *testing.T) {
	res := UnavailableResult()

	assert.False(t, res.Available)
	assert.Equal(t, "neutral", res.Sentiment)
	assert.NotNil(t, res.Emotions)
	assert.NotNil(t, res.Themes)
	assert.NotNil(t, res.Suggestions)
}
