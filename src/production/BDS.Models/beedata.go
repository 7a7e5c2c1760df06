package bdsmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BeeData is a single apiary sensor reading. The id and timestamp are
// assigned at write time and never accepted from clients.
type BeeData struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HiveID         string             `bson:"hive_id" json:"hive_id"`
	Temperature    float64            `bson:"temperature" json:"temperature"`
	Humidity       float64            `bson:"humidity" json:"humidity"`
	BumbleBeeCount int                `bson:"bumble_bee_count" json:"bumble_bee_count"`
	HoneyBeeCount  int                `bson:"honey_bee_count" json:"honey_bee_count"`
	LadyBugCount   int                `bson:"lady_bug_count" json:"lady_bug_count"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
}
