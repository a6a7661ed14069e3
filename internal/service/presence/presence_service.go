package presence

import (
	"fmt"
	"sync"

	"condotrack/internal/config"
	"condotrack/internal/redis"
)

// PresenceService keeps a TTL'd liveness flag per tracker in Redis. Only the
// fact that a ping was relayed recently is stored, never the coordinates.
type PresenceService struct{}

var (
	presenceServiceInstance *PresenceService
	presenceServiceOnce     sync.Once
)

// GetPresenceService returns the singleton instance of PresenceService.
func GetPresenceService() *PresenceService {
	presenceServiceOnce.Do(func() {
		presenceServiceInstance = &PresenceService{}
	})
	return presenceServiceInstance
}

func presenceKey(trackerID string) string {
	return fmt.Sprintf("presence:%s", trackerID)
}

// Touch marks the tracker as online for the configured TTL
func (s *PresenceService) Touch(trackerID string) error {
	return redis.Set(presenceKey(trackerID), 1, config.PresenceTTL)
}

// IsOnline reports whether the tracker pinged within the TTL window
func (s *PresenceService) IsOnline(trackerID string) (bool, error) {
	return redis.Exists(presenceKey(trackerID))
}
