package httpserver

import (
	"errors"
	"net/http"

	"dairyportal/internal/domain"
	"dairyportal/internal/history"
	authsvc "dairyportal/internal/service/auth"
	"dairyportal/internal/stats"
	"github.com/gin-gonic/gin"
)

func meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"farmer": currentFarmer(c)})
}

func updateProfileHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := currentFarmer(c)
		var in authsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		updated, err := svc.UpdateProfile(c.Request.Context(), f.ID, in)
		if err != nil {
			switch {
			case errors.Is(err, authsvc.ErrUnknownDairy):
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dairy company"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "farmer not found"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"farmer": updated})
	}
}

// farmerCollections reads stored history, falling back to the generated
// demo records when the farmer has no imports yet.
func farmerCollections(c *gin.Context, deps Deps) ([]domain.MilkCollection, error) {
	f := currentFarmer(c)
	if deps.Collections != nil {
		records, err := deps.Collections.ListByFarmer(c.Request.Context(), f.ID)
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			return records, nil
		}
	}
	return history.Generate(f.ID, f.CattleType, deps.Now()), nil
}

func historyHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := farmerCollections(c, deps)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
			return
		}
		status := c.Query("status")
		if status != "" {
			filtered := make([]domain.MilkCollection, 0, len(records))
			for _, r := range records {
				if r.Status == status {
					filtered = append(filtered, r)
				}
			}
			records = filtered
		}
		c.JSON(http.StatusOK, gin.H{
			"collections": records,
			"dailyTotals": stats.DailyTotals(records, 14),
		})
	}
}

func historySummaryHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := farmerCollections(c, deps)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
			return
		}
		c.JSON(http.StatusOK, stats.Summarize(records))
	}
}
