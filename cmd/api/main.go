package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jezdibolt/backend-go/internal/config"
	appHTTP "github.com/jezdibolt/backend-go/internal/handler/http"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
	"github.com/jezdibolt/backend-go/internal/pkg/events"
	"github.com/jezdibolt/backend-go/internal/pkg/jwt"
	"github.com/jezdibolt/backend-go/internal/repository/postgresql"
	authService "github.com/jezdibolt/backend-go/internal/service/auth"
	earningsService "github.com/jezdibolt/backend-go/internal/service/earnings"
	importerService "github.com/jezdibolt/backend-go/internal/service/importer"
	payconfigService "github.com/jezdibolt/backend-go/internal/service/payconfig"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	rentalRepo := postgresql.NewRentalRepository(db)
	payConfigRepo := postgresql.NewPayConfigRepository(db)
	batchRepo := postgresql.NewBatchRepository(db)
	earningsRepo := postgresql.NewEarningsRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)

	if err := payConfigRepo.SeedDefaults(context.Background()); err != nil {
		log.Fatal("Failed to seed pay configuration:", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := events.NewHub()

	authSvc := authService.NewAuthService(userRepo, JWTService)
	payConfigSvc := payconfigService.NewPayConfigService(payConfigRepo)
	importSvc := importerService.NewImportService(db, batchRepo, earningsRepo, userRepo, companyRepo, payConfigSvc, hub)
	earningsSvc := earningsService.NewEarningsService(db, earningsRepo, adjustmentRepo, userRepo, rentalRepo, batchRepo, hub)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	importHandler := appHTTP.NewImportHandler(importSvc)
	earningsHandler := appHTTP.NewEarningsHandler(earningsSvc)
	payConfigHandler := appHTTP.NewPayConfigHandler(payConfigSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		importHandler,
		earningsHandler,
		payConfigHandler,
		eventsHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
