package unavailable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innerguide/guide-api/pkg/ai"
)

func TestAlwaysUnavailable(t *testing.T) {
	driver := New()

	inputs := []ai.InsightRequest{
		{},
		{Content: "a lovely day"},
		{Content: "a terrible day", Date: "2024-01-05", City: "Oslo"},
	}

	for _, req := range inputs {
		res, err := driver.Analyze(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Equal(t, "neutral", res.Sentiment)
	}

	assert.False(t, driver.Available())
}
