package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"playsift/internal/adapter/api"
	"playsift/internal/adapter/api/handler"
	apimiddleware "playsift/internal/adapter/api/middleware"
	"playsift/internal/adapter/api/router"
	"playsift/internal/adapter/repository"
	"playsift/internal/infrastructure/firebase"
	"playsift/internal/usecase"
	"playsift/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	opt, err := credentialsOption(cfg)
	if err != nil {
		log.Fatalf("Failed to resolve Firebase credentials: %v", err)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	gameRepo := repository.NewFirestoreGameRepository(firestoreClient)
	swipeRepo := repository.NewFirestoreSwipeRepository(firestoreClient)
	sessionRepo := repository.NewFirestoreSessionRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient)

	swipeUseCase := usecase.NewSwipeUseCase(swipeRepo, gameRepo)
	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, swipeRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(sessionRepo, swipeRepo)

	handler.Setup(swipeUseCase, sessionUseCase, dashboardUseCase)
	handler.SetupDevTokenHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)

	router.Setup(e, authMiddleware)
	router.SetupDevRouter(e, cfg.Environment)

	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// credentialsOption prefers inline service account JSON (production) and
// falls back to a credentials file path (local development).
func credentialsOption(cfg *config.Config) (option.ClientOption, error) {
	if cfg.ServiceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), nil
	}

	path := cfg.ServiceAccountPath
	if path == "" {
		path = "./service-account.json"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("service account file does not exist: %s", path)
	}

	log.Printf("Using Firebase service account from file: %s", path)
	return option.WithCredentialsFile(path), nil
}
