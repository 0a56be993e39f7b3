package ai

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// maxEntryTokens caps how much entry text goes into one analysis call.
const maxEntryTokens = 6000

func NumTokens(content, model string) (int, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return 0, fmt.Errorf("encoding for model %s: %w", model, err)
	}
	return len(tkm.Encode(content, nil, nil)), nil
}

// ContentIsOverLimit reports whether an entry is too long to analyze in
// a single request. On tokenizer failure it errs on the side of
// sending.
func ContentIsOverLimit(content, model string) bool {
	n, err := NumTokens(content, model)
	if err != nil {
		return false
	}
	return n > maxEntryTokens
}
