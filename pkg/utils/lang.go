package utils

import (
	"sort"
	"strconv"
	"strings"

	"github.com/abadojack/whatlanggo"
)

type AcceptLanguage struct {
	Tag    string
	Weight float64
}

// ParseAcceptLanguage returns the header's language tags ordered by
// their q weight, highest first.
func ParseAcceptLanguage(header string) []AcceptLanguage {
	var res []AcceptLanguage
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		item := AcceptLanguage{Weight: 1}
		if tag, q, ok := strings.Cut(part, ";q="); ok {
			item.Tag = strings.TrimSpace(tag)
			if w, err := strconv.ParseFloat(strings.TrimSpace(q), 64); err == nil {
				item.Weight = w
			}
		} else {
			item.Tag = part
		}
		if item.Tag == "" || item.Tag == "*" {
			continue
		}
		res = append(res, item)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Weight > res[j].Weight
	})
	return res
}

// WhatLang guesses the language of content so AI replies can match the
// writer's language.
func WhatLang(content string) string {
	info := whatlanggo.Detect(content)
	switch info.Lang {
	case whatlanggo.Cmn:
		return "Chinese"
	default:
		return info.Lang.String()
	}
}
