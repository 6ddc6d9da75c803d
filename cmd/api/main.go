package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер

	"github.com/samylovma/travel-agent/internal/config"
	"github.com/samylovma/travel-agent/internal/handler"
	"github.com/samylovma/travel-agent/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка чтения конфигурации: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}

	travelRepo := repository.NewTravelRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	h := handler.NewHandler(travelRepo, locationRepo)
	router := gin.Default()
	api := router.Group("/api")
	{
		api.GET("/travels/:id", h.GetTravel)
		api.GET("/travels/:id/locations", h.GetTravelLocations)
	}
	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if err := router.Run(":" + cfg.APIPort); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
