// Command sandbox runs a local stand-in for the vendor's OAuth2 token
// endpoint and medication APIs, for development and manual testing without
// vendor connectivity. It checks request shape, not signatures.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/drivers/logger"
	"medbridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	router := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	handler := newSandboxHandler(zapLogger)
	router.Post("/oauth2/token", handler.handleToken)
	router.Post("/"+constvars.EMRPathCurrentMedications, handler.handleCurrentMedications)
	router.Post("/"+constvars.EMRPathMedicationAdministrations, handler.handleMedicationAdministrations)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: router,
	}

	go func() {
		bootLog.Infof("sandbox vendor stub listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server shutdown failed: %v", err)
	}
	bootLog.Info("Sandbox stopped")
}
