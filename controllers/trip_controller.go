// File: /controllers/trip_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"safarplan-api/catalog"
	"safarplan-api/models"
	"safarplan-api/planner"
	"safarplan-api/repositories"
	"safarplan-api/services"
	"safarplan-api/utils"
)

type TripController struct {
	db        *gorm.DB
	tripRepo  *repositories.TripRepository
	optimizer *planner.Optimizer
	catalog   *catalog.Catalog
}

func NewTripController(db *gorm.DB, cat *catalog.Catalog) *TripController {
	return &TripController{
		db:        db,
		tripRepo:  repositories.NewTripRepository(db),
		optimizer: planner.NewOptimizer(cat),
		catalog:   cat,
	}
}

type OptimizeTripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Budget      int      `json:"budget" binding:"required,min=5000"`
	TripType    string   `json:"trip_type" binding:"required,oneof=leisure family religious adventure"`
	Preferences []string `json:"preferences" binding:"required,min=1,dive,oneof=low-cost sightseeing food cultural nature"`
}

// OptimizeTrip runs the budget optimizer and, when it succeeds, persists the
// resulting trip for the caller. Optimizer failures are a normal 200 response
// carrying suggestions, not an error.
func (tc *TripController) OptimizeTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req OptimizeTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidDateRange(req.StartDate, req.EndDate) {
		utils.SendValidationError(c, "start_date and end_date must be YYYY-MM-DD and end_date must not precede start_date")
		return
	}

	result, err := tc.optimizer.Optimize(planner.TripRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		TripType:    req.TripType,
		Preferences: req.Preferences,
	}, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !result.Success {
		c.JSON(http.StatusOK, result)
		return
	}

	trip, err := tc.tripRepo.CreateTrip(userID, result.Trip)
	if err != nil {
		fmt.Printf("Failed to persist optimized trip: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Trip optimization failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"trip":    trip,
		"savings": result.Savings,
	})
}

// GetHistory returns the caller's trips, newest first.
func (tc *TripController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	trips, err := tc.tripRepo.ListTripsByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trip history"})
		return
	}

	c.JSON(http.StatusOK, trips)
}

// GetTrip fetches one trip, owner-checked.
func (tc *TripController) GetTrip(c *gin.Context) {
	trip, ok := tc.ownedTrip(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, trip)
}

// SaveTrip transitions an optimized trip to saved.
func (tc *TripController) SaveTrip(c *gin.Context) {
	trip, ok := tc.ownedTrip(c)
	if !ok {
		return
	}

	updated, err := tc.tripRepo.UpdateTripStatus(trip.ID, models.TripStatusSaved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save trip"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTrip removes a trip, owner-checked.
func (tc *TripController) DeleteTrip(c *gin.Context) {
	trip, ok := tc.ownedTrip(c)
	if !ok {
		return
	}

	if err := tc.tripRepo.DeleteTrip(trip.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DownloadTripPDF streams the itinerary as a PDF document.
func (tc *TripController) DownloadTripPDF(c *gin.Context) {
	trip, ok := tc.ownedTrip(c)
	if !ok {
		return
	}

	destinationName := trip.Destination
	if d := tc.catalog.FindDestination(trip.Destination); d != nil {
		destinationName = d.Name
	}

	var user models.User
	travelerName := ""
	if err := tc.db.Where("id = ?", trip.UserID).First(&user).Error; err == nil {
		travelerName = user.Name
	}

	pdfBytes, err := services.GenerateTripPDF(trip, destinationName, travelerName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=safarplan-%s.pdf", trip.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ownedTrip loads the :id trip and enforces ownership, writing the error
// response itself when the lookup fails.
func (tc *TripController) ownedTrip(c *gin.Context) (*models.Trip, bool) {
	userID := c.GetString("user_id")

	trip, err := tc.tripRepo.GetTrip(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return nil, false
	}

	if trip.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}

	return trip, true
}
