package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

type rawInsight struct {
	Sentiment   string   `json:"sentiment"`
	Score       *float64 `json:"score"`
	Emotions    []string `json:"emotions"`
	Themes      []string `json:"themes"`
	Suggestions []string `json:"suggestions"`
	Reflection  string   `json:"reflection"`
}

// ParseInsightReply coerces a model reply into InsightResult. Markdown
// code fences are stripped first, missing fields default to neutral
// values instead of failing.
func ParseInsightReply(reply string) (InsightResult, error) {
	cleaned := StripCodeFence(reply)
	if cleaned == "" {
		return UnavailableResult(), fmt.Errorf("empty reply")
	}

	var raw rawInsight
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return UnavailableResult(), fmt.Errorf("unparseable insight reply: %w", err)
	}

	res := UnavailableResult()
	res.Available = true
	res.Sentiment = normalizeSentiment(raw.Sentiment)
	if raw.Score != nil {
		res.Score = clampScore(*raw.Score)
	}
	if raw.Emotions != nil {
		res.Emotions = raw.Emotions
	}
	if raw.Themes != nil {
		res.Themes = raw.Themes
	}
	if raw.Suggestions != nil {
		res.Suggestions = raw.Suggestions
	}
	res.Reflection = strings.TrimSpace(raw.Reflection)

	return res, nil
}

// StripCodeFence unwraps ```json ... ``` style fencing some models put
// around the JSON they were asked for.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line (```json)
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func normalizeSentiment(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive", "good", "happy":
		return "positive"
	case "negative", "bad", "sad":
		return "negative"
	default:
		return "neutral"
	}
}

func clampScore(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
