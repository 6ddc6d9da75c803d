package main

import (
	"log"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/samylovma/travel-agent/internal/bot"
	"github.com/samylovma/travel-agent/internal/config"
	"github.com/samylovma/travel-agent/internal/geo"
	"github.com/samylovma/travel-agent/internal/repository"
	"github.com/samylovma/travel-agent/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка чтения конфигурации: %v", err)
	}
	if cfg.BotToken == "" {
		log.Fatal("Не указан токен бота (BOT_TOKEN)")
	}

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}

	applyMigrations(db)

	kv, err := badger.Open(badger.DefaultOptions(cfg.KVPath))
	if err != nil {
		log.Fatalf("Не удалось открыть key-value хранилище: %v", err)
	}
	defer kv.Close()

	// Инициализация репозиториев и сервисов
	userRepo := repository.NewUserRepository(db)
	travelRepo := repository.NewTravelRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	tokenRepo := repository.NewInviteTokenRepository(kv)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	travelService := service.NewTravelService(travelRepo, tokenRepo)
	locationService := service.NewLocationService(locationRepo)
	noteService := service.NewNoteService(noteRepo)

	geocoder := geo.NewGeocoder(cfg.GeocoderURL)
	router := geo.NewRouter(cfg.RouterURL)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal("Ошибка инициализации бота:", err)
	}

	b := bot.New(api, authService, userService, travelService, locationService, noteService, geocoder, router)
	b.Run()
}

// applyMigrations применяет SQL-миграции из каталога migrations (если есть).
func applyMigrations(db *sqlx.DB) {
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		return
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Printf("Не удалось прочитать миграцию %s: %v", file, err)
			continue
		}
		if _, err := db.Exec(string(content)); err != nil {
			log.Printf("Миграция %s завершилась ошибкой: %v", file, err)
			continue
		}
		log.Printf("Миграция %s применена.", file)
	}
}
