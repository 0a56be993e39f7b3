package moon

import (
	"math"
	"time"
)

// Synodic month length in days and the Julian day of a reference new
// moon (2000-01-06 18:14 UTC).
const (
	synodicMonth = 29.53058867
	newMoonJD    = 2451550.26
)

type Phase struct {
	Label        string  `json:"label"`
	Emoji        string  `json:"emoji"`
	Age          float64 `json:"age"`          // days since new moon
	Illumination float64 `json:"illumination"` // 0..1
}

var labels = []struct {
	name  string
	emoji string
}{
	{"New Moon", "🌑"},
	{"Waxing Crescent", "🌒"},
	{"First Quarter", "🌓"},
	{"Waxing Gibbous", "🌔"},
	{"Full Moon", "🌕"},
	{"Waning Gibbous", "🌖"},
	{"Last Quarter", "🌗"},
	{"Waning Crescent", "🌘"},
}

// At computes the moon phase for t using the Julian-day synodic-month
// fraction. Same instant always yields the same result.
func At(t time.Time) Phase {
	jd := julianDay(t.UTC())

	age := math.Mod(jd-newMoonJD, synodicMonth)
	if age < 0 {
		age += synodicMonth
	}

	fraction := age / synodicMonth
	idx := int(math.Floor(fraction*8+0.5)) % 8

	return Phase{
		Label:        labels[idx].name,
		Emoji:        labels[idx].emoji,
		Age:          age,
		Illumination: (1 - math.Cos(2*math.Pi*fraction)) / 2,
	}
}

// julianDay converts a civil instant to a Julian day number, Fliegel &
// Van Flandern style integer arithmetic plus the day fraction.
func julianDay(t time.Time) float64 {
	y, m, d := t.Date()
	year := int64(y)
	month := int64(m)

	a := (14 - month) / 12
	yy := year + 4800 - a
	mm := month + 12*a - 3

	jdn := int64(d) + (153*mm+2)/5 + 365*yy + yy/4 - yy/100 + yy/400 - 32045

	dayFraction := (float64(t.Hour())-12)/24 +
		float64(t.Minute())/1440 +
		float64(t.Second())/86400

	return float64(jdn) + dayFraction
}
