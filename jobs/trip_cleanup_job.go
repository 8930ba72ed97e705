// File: /jobs/trip_cleanup_job.go
package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"safarplan-api/repositories"
)

// Optimized trips the owner never saved are purged after this long.
const staleTripRetention = 30 * 24 * time.Hour

// TripCleanupJob periodically removes optimized trips that were never saved.
type TripCleanupJob struct {
	tripRepo *repositories.TripRepository
	ticker   *time.Ticker
	done     chan bool
}

// NewTripCleanupJob creates a new trip cleanup job
func NewTripCleanupJob(db *gorm.DB, interval time.Duration) *TripCleanupJob {
	return &TripCleanupJob{
		tripRepo: repositories.NewTripRepository(db),
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the cleanup job
func (j *TripCleanupJob) Start() {
	fmt.Println("Trip cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Trip cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *TripCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *TripCleanupJob) cleanup() {
	removed, err := j.tripRepo.DeleteStaleOptimizedTrips(staleTripRetention)
	if err != nil {
		fmt.Printf("Error during trip cleanup: %v\n", err)
		return
	}

	if removed > 0 {
		fmt.Printf("Trip cleanup removed %d stale trips\n", removed)
	}
}
