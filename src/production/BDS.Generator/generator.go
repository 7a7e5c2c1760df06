package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	bdsmodels "github.com/faryal1907/bio-d-scan/src/production/BDS.Models"
)

// SampleCount is 30 days of hourly readings.
const SampleCount = 30 * 24

var hiveIDs = []string{"hive-001", "hive-002", "hive-003", "hive-004", "hive-005"}

var locations = []string{
	"North Meadow",
	"South Orchard",
	"East Garden",
	"West Field",
	"Central Apiary",
}

// Generator produces synthetic bee data series. Its output is for
// development exploration only and never reaches the validator or the
// store.
type Generator struct {
	rng *rand.Rand
}

// New creates a time-seeded generator.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a generator over the given random source, so tests
// can pin the seed.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// GenerateSeries returns SampleCount hourly readings covering the last 30
// days. The shape is deterministic (diurnal temperature cycle, inverse
// humidity, daytime pollinator activity); the noise is drawn fresh on every
// call.
func (g *Generator) GenerateSeries() []bdsmodels.BeeData {
	start := time.Now().UTC().Add(-SampleCount * time.Hour).Truncate(time.Hour)

	series := make([]bdsmodels.BeeData, 0, SampleCount)
	for i := 0; i < SampleCount; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		series = append(series, g.sample(ts))
	}
	return series
}

func (g *Generator) sample(ts time.Time) bdsmodels.BeeData {
	hour := ts.Hour()

	// Diurnal cycle: trough near 06:00, peak near 18:00.
	temperature := 20 + 8*math.Sin(float64(hour-6)*math.Pi/12) + g.uniform(-2, 2)

	// Humidity moves inversely with the temperature deviation from 20C.
	humidity := clamp(70-(temperature-20)*2+g.uniform(-5, 5), 30, 90)

	activity := activityFactor(hour, temperature)

	hiveID := hiveIDs[g.rng.Intn(len(hiveIDs))]

	return bdsmodels.BeeData{
		HiveID:         hiveID,
		Temperature:    round1(temperature),
		Humidity:       round1(humidity),
		HoneyBeeCount:  g.count(15, activity, 4),
		BumbleBeeCount: g.count(6, activity, 2),
		LadyBugCount:   g.count(2, activity, 1),
		Location:       locations[g.rng.Intn(len(locations))],
		Notes:          fmt.Sprintf("Automated reading from %s, activity level: %s", hiveID, activityLabel(activity)),
		Timestamp:      ts,
	}
}

// activityFactor combines time of day with temperature suitability.
// Pollinators are active 08:00-18:00 and between 10C and 25C.
func activityFactor(hour int, temperature float64) float64 {
	timeOfDay := 0.3
	if hour >= 8 && hour <= 18 {
		timeOfDay = 1.0
	}
	suitability := clamp((temperature-10)/15, 0, 1)
	return timeOfDay * suitability
}

func activityLabel(activity float64) string {
	switch {
	case activity > 0.7:
		return "High"
	case activity > 0.3:
		return "Medium"
	default:
		return "Low"
	}
}

func (g *Generator) count(base float64, activity float64, jitter float64) int {
	n := int(math.Round(base*activity + g.uniform(-jitter, jitter)))
	if n < 0 {
		return 0
	}
	return n
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
