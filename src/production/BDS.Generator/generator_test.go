package generator

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestGenerateSeriesLength(t *testing.T) {
	series := NewWithSource(rand.NewSource(1)).GenerateSeries()
	if len(series) != SampleCount {
		t.Fatalf("len(series) = %d; want %d", len(series), SampleCount)
	}
}

func TestGenerateSeriesBounds(t *testing.T) {
	series := NewWithSource(rand.NewSource(42)).GenerateSeries()

	for i, sample := range series {
		// base 20, amplitude 8, jitter 2
		if sample.Temperature < 9.9 || sample.Temperature > 30.1 {
			t.Errorf("sample %d: temperature = %v; want within [10, 30]", i, sample.Temperature)
		}
		if sample.Humidity < 30 || sample.Humidity > 90 {
			t.Errorf("sample %d: humidity = %v; want within [30, 90]", i, sample.Humidity)
		}
		if sample.BumbleBeeCount < 0 || sample.HoneyBeeCount < 0 || sample.LadyBugCount < 0 {
			t.Errorf("sample %d: negative count: %+v", i, sample)
		}
	}
}

func TestGenerateSeriesTimestamps(t *testing.T) {
	series := NewWithSource(rand.NewSource(7)).GenerateSeries()

	for i := 1; i < len(series); i++ {
		if got := series[i].Timestamp.Sub(series[i-1].Timestamp); got != time.Hour {
			t.Fatalf("sample %d: interval = %v; want 1h", i, got)
		}
	}

	age := time.Since(series[0].Timestamp)
	if age < 29*24*time.Hour || age > 31*24*time.Hour {
		t.Errorf("series start is %v old; want about 30 days", age)
	}
}

func TestGenerateSeriesCatalogs(t *testing.T) {
	series := NewWithSource(rand.NewSource(3)).GenerateSeries()

	hives := make(map[string]bool)
	locs := make(map[string]bool)
	for _, sample := range series {
		hives[sample.HiveID] = true
		locs[sample.Location] = true

		if !strings.Contains(sample.Notes, sample.HiveID) {
			t.Fatalf("notes %q does not mention hive %q", sample.Notes, sample.HiveID)
		}
		if !strings.Contains(sample.Notes, "High") &&
			!strings.Contains(sample.Notes, "Medium") &&
			!strings.Contains(sample.Notes, "Low") {
			t.Fatalf("notes %q has no activity label", sample.Notes)
		}
	}

	// 720 draws over 5-entry catalogs should touch every entry
	if len(hives) != 5 {
		t.Errorf("distinct hives = %d; want 5", len(hives))
	}
	if len(locs) != 5 {
		t.Errorf("distinct locations = %d; want 5", len(locs))
	}
}

func TestGenerateSeriesSeeded(t *testing.T) {
	a := NewWithSource(rand.NewSource(99)).GenerateSeries()
	b := NewWithSource(rand.NewSource(99)).GenerateSeries()

	for i := range a {
		if a[i].Temperature != b[i].Temperature || a[i].HoneyBeeCount != b[i].HoneyBeeCount {
			t.Fatalf("sample %d differs across same-seed generators", i)
		}
	}
}

func TestActivityLabelThresholds(t *testing.T) {
	tests := []struct {
		activity float64
		want     string
	}{
		{0.9, "High"},
		{0.71, "High"},
		{0.7, "Medium"},
		{0.31, "Medium"},
		{0.3, "Low"},
		{0.0, "Low"},
	}
	for _, tt := range tests {
		if got := activityLabel(tt.activity); got != tt.want {
			t.Errorf("activityLabel(%v) = %q; want %q", tt.activity, got, tt.want)
		}
	}
}

func TestActivityFactor(t *testing.T) {
	if got := activityFactor(12, 25); got != 1.0 {
		t.Errorf("midday at 25C = %v; want 1.0", got)
	}
	if got := activityFactor(2, 25); got != 0.3 {
		t.Errorf("night at 25C = %v; want 0.3", got)
	}
	if got := activityFactor(12, 10); got != 0 {
		t.Errorf("midday at 10C = %v; want 0", got)
	}
	if got := activityFactor(12, 40); got != 1.0 {
		t.Errorf("suitability above 25C = %v; want clamped to 1.0", got)
	}
}
