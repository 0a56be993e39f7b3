package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/innerguide/guide-api/pkg/utils"
)

// Analyzer is one outbound chat-completion call per entry. A driver
// without credentials must return UnavailableResult, not an error.
type Analyzer interface {
	Name() string
	Available() bool
	Analyze(ctx context.Context, req InsightRequest) (InsightResult, error)
}

type InsightRequest struct {
	Content   string
	Date      string
	City      string
	Country   string
	MoonPhase string
}

type InsightResult struct {
	// Available distinguishes "intentionally disabled" from a produced
	// insight. Transient failures also surface as unavailable.
	Available bool `json:"available"`

	Sentiment   string   `json:"sentiment"`
	Score       float64  `json:"score"`
	Emotions    []string `json:"emotions"`
	Themes      []string `json:"themes"`
	Suggestions []string `json:"suggestions"`
	Reflection  string   `json:"reflection"`
	Model       string   `json:"model"`
}

// UnavailableResult is what every degraded path returns: neutral values,
// empty slices, never nil.
func UnavailableResult() InsightResult {
	return InsightResult{
		Available:   false,
		Sentiment:   "neutral",
		Score:       0,
		Emotions:    []string{},
		Themes:      []string{},
		Suggestions: []string{},
	}
}

const INSIGHT_SYSTEM_PROMPT = `You are a gentle, thoughtful journaling companion.
You read one journal entry and reply with a single JSON object, no prose around it, shaped exactly like:
{"sentiment":"positive|neutral|negative","score":-1.0,"emotions":["..."],"themes":["..."],"suggestions":["..."],"reflection":"..."}
score is the overall emotional tone from -1 (hard day) to 1 (great day).
emotions: up to 5 single words. themes: up to 5 short phrases. suggestions: up to 3 kind, practical ideas.
reflection: one or two warm sentences mirroring the writer back to themselves.
Reply in {lang}.`

// BuildInsightPrompt renders the user message carrying the entry plus
// the contextual metadata the richer analysis variant uses.
func BuildInsightPrompt(req InsightRequest) string {
	var b strings.Builder
	if req.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n", req.Date)
	}
	var loc []string
	if req.City != "" {
		loc = append(loc, req.City)
	}
	if req.Country != "" {
		loc = append(loc, req.Country)
	}
	if len(loc) > 0 {
		fmt.Fprintf(&b, "Location: %s\n", strings.Join(loc, ", "))
	}
	if req.MoonPhase != "" {
		fmt.Fprintf(&b, "Moon phase: %s\n", req.MoonPhase)
	}
	b.WriteString("\nJournal entry:\n")
	b.WriteString(req.Content)
	return b.String()
}

// SystemPrompt resolves the reply language from the entry text itself.
func SystemPrompt(content string) string {
	return strings.ReplaceAll(INSIGHT_SYSTEM_PROMPT, "{lang}", utils.WhatLang(content))
}
