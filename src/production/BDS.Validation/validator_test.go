package validation

import (
	"errors"
	"testing"

	bdsmodels "github.com/faryal1907/bio-d-scan/src/production/BDS.Models"
)

func validReading() bdsmodels.BeeData {
	return bdsmodels.BeeData{
		HiveID:         "hive-001",
		Temperature:    21.5,
		Humidity:       65,
		BumbleBeeCount: 3,
		HoneyBeeCount:  12,
		LadyBugCount:   1,
	}
}

func TestValidateBeeData(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*bdsmodels.BeeData)
		wantField string
	}{
		{"valid reading", func(d *bdsmodels.BeeData) {}, ""},
		{"temperature at lower bound", func(d *bdsmodels.BeeData) { d.Temperature = -50 }, ""},
		{"temperature at upper bound", func(d *bdsmodels.BeeData) { d.Temperature = 100 }, ""},
		{"humidity at bounds", func(d *bdsmodels.BeeData) { d.Humidity = 0 }, ""},
		{"zero counts", func(d *bdsmodels.BeeData) {
			d.BumbleBeeCount, d.HoneyBeeCount, d.LadyBugCount = 0, 0, 0
		}, ""},
		{"missing hive id", func(d *bdsmodels.BeeData) { d.HiveID = "" }, "hive_id"},
		{"temperature too high", func(d *bdsmodels.BeeData) { d.Temperature = 150 }, "temperature"},
		{"temperature too low", func(d *bdsmodels.BeeData) { d.Temperature = -50.1 }, "temperature"},
		{"humidity too high", func(d *bdsmodels.BeeData) { d.Humidity = 100.5 }, "humidity"},
		{"humidity negative", func(d *bdsmodels.BeeData) { d.Humidity = -1 }, "humidity"},
		{"negative bumble bee count", func(d *bdsmodels.BeeData) { d.BumbleBeeCount = -1 }, "bumble_bee_count"},
		{"negative honey bee count", func(d *bdsmodels.BeeData) { d.HoneyBeeCount = -3 }, "honey_bee_count"},
		{"negative lady bug count", func(d *bdsmodels.BeeData) { d.LadyBugCount = -1 }, "lady_bug_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validReading()
			tt.mutate(&data)

			err := ValidateBeeData(data)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateBeeData() = %v; want nil", err)
				}
				return
			}

			var ve *bdsmodels.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ValidateBeeData() = %v; want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("field = %q; want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidateBeeDataIsPure(t *testing.T) {
	data := validReading()
	before := data

	_ = ValidateBeeData(data)

	if data != before {
		t.Errorf("ValidateBeeData mutated its input: %+v != %+v", data, before)
	}
}
