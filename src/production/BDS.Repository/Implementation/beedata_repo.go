package implementation

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bdsmodels "github.com/faryal1907/bio-d-scan/src/production/BDS.Models"
	interfaces "github.com/faryal1907/bio-d-scan/src/production/BDS.Repository/Interfaces"
)

// descending timestamp with _id as tie-break, so equal timestamps keep a
// deterministic relative order between calls.
var readingSort = bson.D{
	{Key: "timestamp", Value: -1},
	{Key: "_id", Value: -1},
}

type MongoBeeDataRepository struct {
	coll *mongo.Collection
}

func NewMongoBeeDataRepository(coll *mongo.Collection) *MongoBeeDataRepository {
	return &MongoBeeDataRepository{coll: coll}
}

func (r *MongoBeeDataRepository) CreateBeeData(ctx context.Context, data bdsmodels.BeeData) (*bdsmodels.BeeData, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	data.ID = primitive.NilObjectID
	data.Timestamp = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, data)
	if err != nil {
		return nil, &bdsmodels.StoreError{Op: "insert bee data", Err: err}
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		data.ID = oid
	}
	return &data, nil
}

func (r *MongoBeeDataRepository) GetBeeData(ctx context.Context, limit int64) ([]bdsmodels.BeeData, error) {
	if limit <= 0 {
		return []bdsmodels.BeeData{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(readingSort).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &bdsmodels.StoreError{Op: "find bee data", Err: err}
	}
	return decodeReadings(ctx, cur)
}

func (r *MongoBeeDataRepository) GetBeeDataByHive(ctx context.Context, hiveID string) ([]bdsmodels.BeeData, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(readingSort)
	cur, err := r.coll.Find(ctx, bson.M{"hive_id": hiveID}, opts)
	if err != nil {
		return nil, &bdsmodels.StoreError{Op: "find bee data by hive", Err: err}
	}
	return decodeReadings(ctx, cur)
}

func (r *MongoBeeDataRepository) DeleteBeeData(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never name a stored record.
		return bdsmodels.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return &bdsmodels.StoreError{Op: "delete bee data", Err: err}
	}
	if res.DeletedCount == 0 {
		return bdsmodels.ErrNotFound
	}
	return nil
}

func (r *MongoBeeDataRepository) GetSummaryStats(ctx context.Context) (*interfaces.SummaryStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, &bdsmodels.StoreError{Op: "count bee data", Err: err}
	}

	stats := &interfaces.SummaryStats{TotalRecords: total}
	if total == 0 {
		return stats, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avg_temperature", Value: bson.D{{Key: "$avg", Value: "$temperature"}}},
			{Key: "avg_humidity", Value: bson.D{{Key: "$avg", Value: "$humidity"}}},
			{Key: "min_temperature", Value: bson.D{{Key: "$min", Value: "$temperature"}}},
			{Key: "max_temperature", Value: bson.D{{Key: "$max", Value: "$temperature"}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &bdsmodels.StoreError{Op: "aggregate bee data", Err: err}
	}
	defer cur.Close(ctx)

	var results []interfaces.StatsAverages
	if err := cur.All(ctx, &results); err != nil {
		return nil, &bdsmodels.StoreError{Op: "decode bee data stats", Err: err}
	}
	if len(results) > 0 {
		stats.Averages = &results[0]
	}
	return stats, nil
}

func decodeReadings(ctx context.Context, cur *mongo.Cursor) ([]bdsmodels.BeeData, error) {
	defer cur.Close(ctx)

	readings := make([]bdsmodels.BeeData, 0)
	if err := cur.All(ctx, &readings); err != nil {
		return nil, &bdsmodels.StoreError{Op: "decode bee data", Err: err}
	}
	return readings, nil
}
