package interfaces

import (
	"context"

	bdsmodels "github.com/faryal1907/bio-d-scan/src/production/BDS.Models"
)

// StatsAverages holds the aggregated numeric fields over the collection.
type StatsAverages struct {
	AvgTemperature float64 `bson:"avg_temperature" json:"avg_temperature"`
	AvgHumidity    float64 `bson:"avg_humidity" json:"avg_humidity"`
	MinTemperature float64 `bson:"min_temperature" json:"min_temperature"`
	MaxTemperature float64 `bson:"max_temperature" json:"max_temperature"`
}

// SummaryStats represents aggregate statistics over all stored readings.
// Averages is nil when the collection is empty.
type SummaryStats struct {
	TotalRecords int64          `json:"total_records"`
	Averages     *StatsAverages `json:"averages,omitempty"`
}

type BeeDataRepository interface {
	// CreateBeeData stamps the timestamp, persists the reading and returns
	// the stored record including its assigned id.
	CreateBeeData(ctx context.Context, data bdsmodels.BeeData) (*bdsmodels.BeeData, error)

	// GetBeeData returns up to limit readings, most recent first.
	// A non-positive limit yields an empty result.
	GetBeeData(ctx context.Context, limit int64) ([]bdsmodels.BeeData, error)

	// GetBeeDataByHive returns all readings for a hive, most recent first.
	// An unknown hive yields an empty result, not an error.
	GetBeeDataByHive(ctx context.Context, hiveID string) ([]bdsmodels.BeeData, error)

	// DeleteBeeData removes exactly one record by id. Returns
	// bdsmodels.ErrNotFound when no record with that id exists.
	DeleteBeeData(ctx context.Context, id string) error

	// GetSummaryStats computes count, mean temperature/humidity and
	// min/max temperature over the whole collection in a single pass.
	GetSummaryStats(ctx context.Context) (*SummaryStats, error)
}
