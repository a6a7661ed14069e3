package worker

import (
	"log"

	"condotrack/internal/relay"
)

// StartAllWorkers initializes and starts all background workers
func StartAllWorkers(hub *relay.Hub) {
	log.Println("Starting all workers...")

	StartRelayStatsWorker(hub)

	log.Println("All workers started")
}
