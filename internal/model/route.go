package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RouteStatus is the lifecycle state of a declared route
type RouteStatus string

const (
	RouteStatusActive RouteStatus = "active"
	RouteStatusEnded  RouteStatus = "ended"
)

// GeoPoint is a coordinate pair with a human-readable description
type GeoPoint struct {
	Lat         float64 `json:"lat" bson:"lat"`
	Lng         float64 `json:"lng" bson:"lng"`
	Description string  `json:"description" bson:"description"`
}

// RouteRecord is one declared trip between an origin and a destination.
// Identity and the origin/destination/trackerId/condId fields are immutable
// after creation; only status and endedAt change, exactly once.
type RouteRecord struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CondID      string             `json:"condId" bson:"condId"`
	TrackerID   string             `json:"trackerId" bson:"trackerId"`
	Origin      GeoPoint           `json:"origin" bson:"origin"`
	Destination GeoPoint           `json:"destination" bson:"destination"`
	Status      RouteStatus        `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	EndedAt     *time.Time         `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
}
