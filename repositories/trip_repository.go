// File: /repositories/trip_repository.go
package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"safarplan-api/models"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip persists a freshly optimized trip, assigning its id and
// creation timestamp. The optimizer never calls this; the controller does,
// and only after a successful optimization.
func (r *TripRepository) CreateTrip(ownerID string, trip *models.Trip) (*models.Trip, error) {
	trip.ID = uuid.New().String()
	trip.UserID = ownerID
	trip.CreatedAt = time.Now()

	if err := r.db.Create(trip).Error; err != nil {
		return nil, err
	}
	return trip, nil
}

// GetTrip fetches a trip by id.
func (r *TripRepository) GetTrip(id string) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.Where("id = ?", id).First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListTripsByOwner returns all of a user's trips, newest first.
func (r *TripRepository) ListTripsByOwner(ownerID string) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&trips).Error
	return trips, err
}

// UpdateTripStatus moves a trip through its lifecycle (e.g. optimized -> saved).
func (r *TripRepository) UpdateTripStatus(id, status string) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.Where("id = ?", id).First(&trip).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&trip).Update("status", status).Error; err != nil {
		return nil, err
	}
	trip.Status = status
	return &trip, nil
}

// DeleteTrip removes a trip.
func (r *TripRepository) DeleteTrip(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Trip{}).Error
}

// DeleteStaleOptimizedTrips removes optimized trips the owner never saved
// within the retention window. Returns the number of rows removed.
func (r *TripRepository) DeleteStaleOptimizedTrips(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result := r.db.Where("status = ? AND created_at < ?", models.TripStatusOptimized, cutoff).
		Delete(&models.Trip{})
	return result.RowsAffected, result.Error
}
