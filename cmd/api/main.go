package main

import (
	"fmt"
	"log"
	"os"

	"sales-insights/internal/api/handlers"
	"sales-insights/internal/api/middleware"
	"sales-insights/internal/config"
	"sales-insights/internal/data"
	"sales-insights/internal/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("load config %s: %v", path, err)
		}
		cfg = loaded
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	store := data.NewStoreFromEnv()
	datasetHandler := handlers.NewDatasetHandler(store)
	summaryHandler := handlers.NewSummaryHandler(store)
	simulateHandler := handlers.NewSimulateHandler(store, cfg.Simulation)
	rankHandler := handlers.NewRankHandler(store, cfg.Simulation)
	parametersHandler := handlers.NewParametersHandler(cfg.Simulation)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/datasets", datasetHandler.ListDatasets)
		api.POST("/datasets/load", datasetHandler.LoadDataset)

		api.POST("/summary", summaryHandler.GetSummary)

		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/compare", simulateHandler.CompareSimulations)

		api.GET("/rank", rankHandler.RankSegments)
		api.GET("/parameters", parametersHandler.ListParameters)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
