package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"kbbq/internal/app"
	"kbbq/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := a.StartKitchenFeed(); err != nil {
		log.Printf("Failed to start kitchen feed: %v", err)
	}

	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := a.Server.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := a.Server.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if err := a.Close(); err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server gracefully stopped")
}
