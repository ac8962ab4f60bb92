package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"dairyportal/internal/chatbot"
	"dairyportal/internal/dataset"
	"dairyportal/internal/domain"
	authsvc "dairyportal/internal/service/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthService is the authenticated-identity contract the router depends
// on.
type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.Farmer, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.Farmer, string, string, error)
	Logout(ctx context.Context, token string) error
	UpdateProfile(ctx context.Context, farmerID string, in authsvc.UpdateInput) (*domain.Farmer, error)
	LookupByToken(ctx context.Context, token string) (*domain.Farmer, error)
	AccessTTLSeconds() int
}

// ShipmentService answers transport-tracking queries.
type ShipmentService interface {
	ListForFarmer(ctx context.Context, farmerID string) ([]domain.Shipment, error)
	Get(ctx context.Context, farmerID, id string) (*domain.Shipment, error)
}

// CollectionLister reads a farmer's stored supply history.
type CollectionLister interface {
	ListByFarmer(ctx context.Context, farmerID string) ([]domain.MilkCollection, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	AuthSvc     AuthService
	ShipmentSvc ShipmentService
	Collections CollectionLister
	Datasets    func() dataset.Snapshot
	Chatbot     *chatbot.Responder
	Now         func() time.Time
}

// buildRouter wires routes for the portal API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.AuthSvc == nil {
		return nil, errors.New("auth service required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/register", registerHandler(deps.AuthSvc))
	router.POST("/auth/login", loginHandler(deps.AuthSvc))
	router.GET("/states", statesHandler)
	router.GET("/dairies", dairiesHandler)

	authed := router.Group("/", authMiddleware(deps.AuthSvc))
	authed.POST("/auth/logout", logoutHandler(deps.AuthSvc))
	authed.GET("/me", meHandler)
	authed.PATCH("/me", updateProfileHandler(deps.AuthSvc))
	authed.GET("/me/history", historyHandler(deps))
	authed.GET("/me/history/summary", historySummaryHandler(deps))
	authed.GET("/me/shipments", shipmentsHandler(deps.ShipmentSvc))
	authed.GET("/me/shipments/:id", shipmentHandler(deps.ShipmentSvc))
	authed.GET("/market/overview", marketOverviewHandler(deps.Datasets))
	authed.POST("/chatbot/query", chatbotHandler(deps.Chatbot))

	return router, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
