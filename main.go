package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/KJ-77/samihaproj/cli"
	"github.com/KJ-77/samihaproj/config"
	"github.com/KJ-77/samihaproj/store"
)

func main() {
	// Загружаем переменные окружения из .env файла
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Загружаем конфигурацию
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Открываем локальное хранилище состояния
	state, err := store.Open(cfg.StatePath)
	if err != nil {
		log.Fatalf("Failed to open state store: %v", err)
	}

	app := cli.NewApp(cfg, state)
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
