// File: /controllers/catalog_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safarplan-api/catalog"
)

type CatalogController struct {
	catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{catalog: cat}
}

// GetDestinations lists every supported destination.
func (cc *CatalogController) GetDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, cc.catalog.Destinations())
}

// GetDestinationOptions returns the transport, lodging and activity options
// the optimizer would consider for one destination.
func (cc *CatalogController) GetDestinationOptions(c *gin.Context) {
	id := c.Param("id")

	destination := cc.catalog.FindDestination(id)
	if destination == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"destination": destination,
		"transports":  cc.catalog.TransportsFor(id),
		"hotels":      cc.catalog.HotelsFor(id),
		"activities":  cc.catalog.ActivitiesFor(id),
	})
}
