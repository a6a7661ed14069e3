package worker

import (
	"log"
	"time"

	"condotrack/internal/config"
	"condotrack/internal/relay"
)

// StartRelayStatsWorker starts the worker that periodically logs relay load
func StartRelayStatsWorker(hub *relay.Hub) {
	ticker := time.NewTicker(config.RelayStatsInterval)
	go func() {
		for range ticker.C {
			rooms, connections := hub.Stats()
			log.Printf("Relay stats: %d room(s), %d connection(s)", rooms, connections)
		}
	}()

	log.Println("Relay stats worker started with interval:", config.RelayStatsInterval)
}
