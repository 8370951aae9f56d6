package main

import (
	"log"
	"os"
	"time"

	"github.com/YarKhan02/Workshop-sub003/remote"
	"github.com/YarKhan02/Workshop-sub003/router"
	"github.com/YarKhan02/Workshop-sub003/services"
	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := store.New()
	s.SeedDefaults()

	backendURL := os.Getenv("BACKEND_API_URL")
	if backendURL == "" {
		backendURL = "http://localhost:9000"
	}
	client := remote.NewClient(backendURL)
	client.Cache.StartJanitor(1 * time.Minute)
	defer client.Cache.Stop()

	scheduler := services.NewSlotScheduler(s)
	if err := scheduler.Start(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to start slot scheduler: %v", err)
	}
	defer scheduler.Stop()

	stockMonitor := services.NewStockMonitor(s)
	stockMonitor.Start()
	defer stockMonitor.Stop()

	r := router.SetupRouter(s, client)

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
