package route

import (
	"context"
	"sync"
	"time"

	"condotrack/internal/model"
	"condotrack/internal/mongo"
)

// RouteStore is the record store surface the service needs. The Mongo
// implementation lives in internal/mongo; tests supply an in-memory fake.
type RouteStore interface {
	Insert(ctx context.Context, record *model.RouteRecord) (string, error)
	FindByCondID(ctx context.Context, condID string) ([]*model.RouteRecord, error)
	End(ctx context.Context, id string, endedAt time.Time) (bool, error)
}

// DeclareRoutePayload carries the fields of a route declaration request
type DeclareRoutePayload struct {
	CondID      string
	TrackerID   string
	Origin      *model.GeoPoint
	Destination *model.GeoPoint
	Status      model.RouteStatus
}

// RouteService owns route record validation and the one-way lifecycle
// transition active -> ended.
type RouteService struct {
	store RouteStore
}

var (
	routeServiceInstance *RouteService
	routeServiceOnce     sync.Once
)

// GetRouteService returns the singleton instance backed by the live Mongo store.
func GetRouteService() *RouteService {
	routeServiceOnce.Do(func() {
		routeServiceInstance = NewRouteService(mongo.NewRouteStore(mongo.GetDatabase()))
	})
	return routeServiceInstance
}

// NewRouteService creates a service over the given store
func NewRouteService(store RouteStore) *RouteService {
	return &RouteService{store: store}
}

// DeclareRoute validates and persists a new route record and returns its id.
// Status defaults to active when the caller does not supply one.
func (s *RouteService) DeclareRoute(ctx context.Context, payload DeclareRoutePayload) (string, error) {
	if payload.CondID == "" {
		return "", &model.ValidationError{Field: "condId"}
	}
	if payload.TrackerID == "" {
		return "", &model.ValidationError{Field: "trackerId"}
	}
	if payload.Origin == nil || payload.Origin.Description == "" {
		return "", &model.ValidationError{Field: "origin"}
	}
	if payload.Destination == nil || payload.Destination.Description == "" {
		return "", &model.ValidationError{Field: "destination"}
	}

	status := payload.Status
	if status == "" {
		status = model.RouteStatusActive
	}

	record := &model.RouteRecord{
		CondID:      payload.CondID,
		TrackerID:   payload.TrackerID,
		Origin:      *payload.Origin,
		Destination: *payload.Destination,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.store.Insert(ctx, record)
	if err != nil {
		return "", &model.StorageError{Op: "insert route", Err: err}
	}
	return id, nil
}

// ListRoutesForGroup returns all routes of a group, most recent first.
// An unknown group yields an empty slice.
func (s *RouteService) ListRoutesForGroup(ctx context.Context, condID string) ([]*model.RouteRecord, error) {
	records, err := s.store.FindByCondID(ctx, condID)
	if err != nil {
		return nil, &model.StorageError{Op: "find routes", Err: err}
	}
	return records, nil
}

// EndRoute marks the route ended and stamps endedAt. Ending an already ended
// route re-applies the update and re-stamps endedAt rather than failing.
func (s *RouteService) EndRoute(ctx context.Context, routeID string) error {
	if routeID == "" {
		return &model.ValidationError{Field: "routeId"}
	}

	matched, err := s.store.End(ctx, routeID, time.Now().UTC())
	if err != nil {
		return &model.StorageError{Op: "end route", Err: err}
	}
	if !matched {
		return &model.NotFoundError{ID: routeID}
	}
	return nil
}
