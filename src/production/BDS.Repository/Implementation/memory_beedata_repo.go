package implementation

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	bdsmodels "github.com/faryal1907/bio-d-scan/src/production/BDS.Models"
	interfaces "github.com/faryal1907/bio-d-scan/src/production/BDS.Repository/Interfaces"
)

// MemoryBeeDataRepository keeps readings in process memory. It mirrors the
// Mongo repository's semantics and is used by tests and store-less
// development runs.
type MemoryBeeDataRepository struct {
	mu       sync.RWMutex
	readings []bdsmodels.BeeData
}

func NewMemoryBeeDataRepository() *MemoryBeeDataRepository {
	return &MemoryBeeDataRepository{}
}

func (r *MemoryBeeDataRepository) CreateBeeData(ctx context.Context, data bdsmodels.BeeData) (*bdsmodels.BeeData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data.ID = primitive.NewObjectID()
	data.Timestamp = time.Now().UTC()
	r.readings = append(r.readings, data)
	return &data, nil
}

func (r *MemoryBeeDataRepository) GetBeeData(ctx context.Context, limit int64) ([]bdsmodels.BeeData, error) {
	if limit <= 0 {
		return []bdsmodels.BeeData{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := r.sortedByTimestampDesc()
	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *MemoryBeeDataRepository) GetBeeDataByHive(ctx context.Context, hiveID string) ([]bdsmodels.BeeData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]bdsmodels.BeeData, 0)
	for _, reading := range r.sortedByTimestampDesc() {
		if reading.HiveID == hiveID {
			matched = append(matched, reading)
		}
	}
	return matched, nil
}

func (r *MemoryBeeDataRepository) DeleteBeeData(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bdsmodels.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, reading := range r.readings {
		if reading.ID == oid {
			r.readings = append(r.readings[:i], r.readings[i+1:]...)
			return nil
		}
	}
	return bdsmodels.ErrNotFound
}

func (r *MemoryBeeDataRepository) GetSummaryStats(ctx context.Context) (*interfaces.SummaryStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &interfaces.SummaryStats{TotalRecords: int64(len(r.readings))}
	if len(r.readings) == 0 {
		return stats, nil
	}

	avg := interfaces.StatsAverages{
		MinTemperature: r.readings[0].Temperature,
		MaxTemperature: r.readings[0].Temperature,
	}
	var sumTemp, sumHumidity float64
	for _, reading := range r.readings {
		sumTemp += reading.Temperature
		sumHumidity += reading.Humidity
		if reading.Temperature < avg.MinTemperature {
			avg.MinTemperature = reading.Temperature
		}
		if reading.Temperature > avg.MaxTemperature {
			avg.MaxTemperature = reading.Temperature
		}
	}
	avg.AvgTemperature = sumTemp / float64(len(r.readings))
	avg.AvgHumidity = sumHumidity / float64(len(r.readings))
	stats.Averages = &avg
	return stats, nil
}

// sortedByTimestampDesc copies the backing slice and sorts it most recent
// first. The sort is stable so equal timestamps keep insertion order.
func (r *MemoryBeeDataRepository) sortedByTimestampDesc() []bdsmodels.BeeData {
	sorted := make([]bdsmodels.BeeData, len(r.readings))
	copy(sorted, r.readings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}
