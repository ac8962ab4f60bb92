package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dairyportal/internal/chatbot"
	"dairyportal/internal/config"
	"dairyportal/internal/dataset"
	"dairyportal/internal/db"
	"dairyportal/internal/httpserver"
	collectionrepo "dairyportal/internal/repository/collection"
	farmerrepo "dairyportal/internal/repository/farmer"
	tokenrepo "dairyportal/internal/repository/token"
	authsvc "dairyportal/internal/service/auth"
	"dairyportal/internal/shipment"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	farmerRepo := farmerrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	collectionRepo := collectionrepo.NewPostgres(dbpool, logger)
	authService := authsvc.New(farmerRepo, tokenRepo)
	shipmentService := shipment.NewService(nil)

	loader := dataset.NewLoader(cfg.DatasetBaseURL, cfg.DatasetTimeout, logger)
	if cfg.DatasetBaseURL != "" {
		// Fire-and-forget: a failed load leaves a sticky error on the
		// snapshot and the market views degrade.
		go loader.Load(ctx)
	}

	responder := chatbot.New(loader.Snapshot, nil)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:     authService,
		ShipmentSvc: shipmentService,
		Collections: collectionRepo,
		Datasets:    loader.Snapshot,
		Chatbot:     responder,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
