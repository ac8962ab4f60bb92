package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"dairyportal/internal/domain"
	authsvc "dairyportal/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const farmerCtxKey = "farmer"

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	Farmer       *domain.Farmer `json:"farmer"`
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	ExpiresIn    int            `json:"expiresIn"`
}

func registerHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in authsvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		f, access, refresh, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, authsvc.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, sessionResponse{
			Farmer:       f,
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    svc.AccessTTLSeconds(),
		})
	}
}

func loginHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		f, access, refresh, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		c.JSON(http.StatusOK, sessionResponse{
			Farmer:       f,
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    svc.AccessTTLSeconds(),
		})
	}
}

func logoutHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if err := svc.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// authMiddleware resolves the bearer token to a farmer and aborts with
// 401 when it cannot.
func authMiddleware(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		f, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth lookup failed"})
			return
		}
		c.Set(farmerCtxKey, f)
		c.Next()
	}
}

func currentFarmer(c *gin.Context) *domain.Farmer {
	v, ok := c.Get(farmerCtxKey)
	if !ok {
		return nil
	}
	f, _ := v.(*domain.Farmer)
	return f
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
