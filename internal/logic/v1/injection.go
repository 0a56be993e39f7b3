package v1

import (
	"context"
)

const (
	LANGUAGE_KEY = "__guide.accept_language"
)

func InjectLanguage(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(LANGUAGE_KEY).(string)
	return val, ok
}
