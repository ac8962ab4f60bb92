package httpserver

import (
	"errors"
	"net/http"

	"dairyportal/internal/domain"
	"github.com/gin-gonic/gin"
)

func shipmentsHandler(svc ShipmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := currentFarmer(c)
		shipments, err := svc.ListForFarmer(c.Request.Context(), f.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "tracking unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"shipments": shipments})
	}
}

func shipmentHandler(svc ShipmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := currentFarmer(c)
		s, err := svc.Get(c.Request.Context(), f.ID, c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "shipment not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "tracking unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"shipment": s})
	}
}
