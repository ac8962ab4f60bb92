package httpserver

import (
	"net/http"

	"dairyportal/internal/catalog"
	"github.com/gin-gonic/gin"
)

func statesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": catalog.States()})
}

// dairiesHandler lists the directory; with ?state= it partitions into
// companies available in that state and the rest.
func dairiesHandler(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusOK, gin.H{"dairies": catalog.Companies()})
		return
	}
	available, other := catalog.CompaniesForState(state)
	c.JSON(http.StatusOK, gin.H{"available": available, "other": other})
}
