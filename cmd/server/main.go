package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"library-service/internal/config"
	"library-service/internal/db"
	"library-service/internal/delivery/handler"
	"library-service/internal/infrastructure"
	"library-service/internal/messaging"
	"library-service/internal/repository"
	"library-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()

	client, database, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer client.Disconnect(ctx)

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	events, err := messaging.Connect(cfg.NATS.URL)
	if err != nil {
		log.Fatal("Failed to connect to NATS:", err)
	}
	defer events.Close()

	jwtService := infrastructure.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authUC := usecase.NewAuthUsecase(repository.NewUserRepo(database), jwtService)
	libraryUC := usecase.NewLibraryUsecase(
		repository.NewBookRepo(database),
		repository.NewLoanRepo(database),
		events,
	)

	h := handler.NewHandler(authUC, libraryUC, jwtService)

	log.Printf("Server running on :%s", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, h.Router()))
}
