package validation

import (
	bdsmodels "github.com/faryal1907/bio-d-scan/src/production/BDS.Models"
)

// Temperature and humidity bounds for incoming readings.
const (
	MinTemperature = -50.0
	MaxTemperature = 100.0
	MinHumidity    = 0.0
	MaxHumidity    = 100.0
)

// ValidateBeeData checks field-level constraints on a candidate reading.
// It is pure: no normalization happens in place and nothing is persisted.
// Returns a *bdsmodels.ValidationError naming the offending field.
func ValidateBeeData(data bdsmodels.BeeData) error {
	if data.HiveID == "" {
		return &bdsmodels.ValidationError{Field: "hive_id", Message: "hive_id is required"}
	}
	if data.Temperature < MinTemperature || data.Temperature > MaxTemperature {
		return &bdsmodels.ValidationError{Field: "temperature", Message: "temperature must be between -50 and 100"}
	}
	if data.Humidity < MinHumidity || data.Humidity > MaxHumidity {
		return &bdsmodels.ValidationError{Field: "humidity", Message: "humidity must be between 0 and 100"}
	}
	if data.BumbleBeeCount < 0 {
		return &bdsmodels.ValidationError{Field: "bumble_bee_count", Message: "bumble_bee_count must not be negative"}
	}
	if data.HoneyBeeCount < 0 {
		return &bdsmodels.ValidationError{Field: "honey_bee_count", Message: "honey_bee_count must not be negative"}
	}
	if data.LadyBugCount < 0 {
		return &bdsmodels.ValidationError{Field: "lady_bug_count", Message: "lady_bug_count must not be negative"}
	}
	return nil
}
