package httpserver

import (
	"net/http"

	"dairyportal/internal/dataset"
	"dairyportal/internal/stats"
	"github.com/gin-gonic/gin"
)

// marketOverviewHandler serves the aggregated market view. When the
// dataset load failed the response is a degraded empty overview with the
// error flag set, never a 5xx.
func marketOverviewHandler(snapshot func() dataset.Snapshot) gin.HandlerFunc {
	return func(c *gin.Context) {
		if snapshot == nil {
			c.JSON(http.StatusOK, gin.H{"error": "reference data not configured"})
			return
		}
		snap := snapshot()
		if snap.Err != nil {
			c.JSON(http.StatusOK, gin.H{"error": "failed to load dairy data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"topStates":      stats.TopStates(snap.StateRanking, 10),
			"demandForecast": snap.DemandForecast,
			"brandPrices":    stats.BrandPrices(snap.Products),
			"regionDemand":   stats.DemandByRegion(snap.Products),
		})
	}
}
