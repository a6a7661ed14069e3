package config

import "time"

// Relay and presence tuning
const (
	// PresenceTTL defines how long a tracker counts as online after its last ping
	PresenceTTL = 30 * time.Second

	// RelayStatsInterval defines how often the stats worker logs room membership counts
	RelayStatsInterval = 60 * time.Second

	// WriteWait is the deadline for writing a single frame to a relay client
	WriteWait = 10 * time.Second

	// PongWait is how long a relay connection may stay silent before it is dropped
	PongWait = 60 * time.Second

	// PingPeriod is how often the relay pings idle connections (must be < PongWait)
	PingPeriod = 54 * time.Second

	// SendBufferSize is the per-client outbound queue; a full queue drops the message
	SendBufferSize = 64

	// MaxMessageSize caps a single inbound relay frame
	MaxMessageSize = 4096

	// StoreTimeout bounds a single record store round trip
	StoreTimeout = 5 * time.Second
)
