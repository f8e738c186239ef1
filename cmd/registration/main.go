package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sellerhub-service/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}
	srv := app.NewRegistrationServer()

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("❌ Registration service failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down registration service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	_ = ctx
	defer cancel()

	log.Println("✅ Registration service stopped gracefully")
}
