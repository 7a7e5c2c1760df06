package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/faryal1907/bio-d-scan/src/production/BDS.ApiService/controllers"
	"github.com/faryal1907/bio-d-scan/src/production/BDS.ApiService/health"
	container "github.com/faryal1907/bio-d-scan/src/production/BDS.Container"
	generator "github.com/faryal1907/bio-d-scan/src/production/BDS.Generator"
	implementation "github.com/faryal1907/bio-d-scan/src/production/BDS.Repository/Implementation"
)

func main() {
	ctr, err := container.NewContainer()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize container: %v", err))
	}
	defer ctr.Shutdown(context.Background())

	logger := ctr.GetLogger()
	logger.Info("Starting Bio D Scan API")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// A dead store is not fatal: the synthetic data endpoint keeps serving
	// and store-backed endpoints answer 500 until it comes back.
	if err := ctr.InitializeDatabase(ctx); err != nil {
		logger.WarnWithError(err, "MongoDB not reachable, store endpoints will fail until it is")
	}

	coll, err := ctr.GetCollection()
	if err != nil {
		logger.FatalWithError(err, "Failed to open bee data collection")
	}
	beeDataRepo := implementation.NewMongoBeeDataRepository(coll)

	config := ctr.GetConfig()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORS.AllowedOrigins,
		AllowMethods:     config.CORS.AllowedMethods,
		AllowHeaders:     config.CORS.AllowedHeaders,
		ExposeHeaders:    config.CORS.ExposedHeaders,
		AllowCredentials: config.CORS.AllowCredentials,
		MaxAge:           time.Duration(config.CORS.MaxAge) * time.Second,
	}))

	beeDataController := controllers.NewBeeDataController(beeDataRepo, generator.New(), logger)
	healthController := controllers.NewHealthController(health.NewHealthChecker(ctr.GetClient()), logger)

	beeDataController.RegisterRoutes(router)
	healthController.RegisterRoutes(router)

	port := config.Server.Port

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
		IdleTimeout:  config.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server starting on port " + port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalWithError(err, "Failed to start HTTP server")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithError(err, "Server forced to shutdown")
	}
}
