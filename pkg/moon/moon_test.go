package moon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtDeterministic(t *testing.T) {
	date := time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

	first := At(date)
	second := At(date)

	assert.Equal(t, first.Label, second.Label)
	assert.Equal(t, first.Illumination, second.Illumination)
	assert.Equal(t, first.Age, second.Age)
}

func TestKnownPhases(t *testing.T) {
	cases := []struct {
		date  time.Time
		label string
	}{
		// reference new moon itself
		{time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC), "New Moon"},
		// well documented full moons
		{time.Date(2024, 1, 25, 18, 0, 0, 0, time.UTC), "Full Moon"},
		{time.Date(2023, 8, 31, 1, 35, 0, 0, time.UTC), "Full Moon"},
	}

	for _, c := range cases {
		got := At(c.date)
		assert.Equal(t, c.label, got.Label, "date %s", c.date)
	}
}

func TestIlluminationBounds(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		p := At(start.AddDate(0, 0, i))
		assert.GreaterOrEqual(t, p.Illumination, 0.0)
		assert.LessOrEqual(t, p.Illumination, 1.0)
		assert.GreaterOrEqual(t, p.Age, 0.0)
		assert.Less(t, p.Age, synodicMonth)
	}
}

func TestFullMoonIsBright(t *testing.T) {
	p := At(time.Date(2024, 1, 25, 18, 0, 0, 0, time.UTC))
	assert.Greater(t, p.Illumination, 0.95)

	n := At(time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)) // new moon 2024-01-11
	assert.Less(t, n.Illumination, 0.05)
}
