package httpserver

import (
	"net/http"

	"dairyportal/internal/chatbot"
	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Query string `json:"query" binding:"required"`
}

func chatbotHandler(responder *chatbot.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if responder == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chatbot not configured"})
			return
		}
		var in chatRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": responder.Reply(in.Query)})
	}
}
