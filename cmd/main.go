package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/rahmam-mok/Development/config"
	"github.com/rahmam-mok/Development/db"
	"github.com/rahmam-mok/Development/internal/auth/handler"
	repo "github.com/rahmam-mok/Development/internal/auth/repository/mongo"
	"github.com/rahmam-mok/Development/internal/auth/service"
	"github.com/rahmam-mok/Development/pkg/constant"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	mongoClient, err := db.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatalf("aws config: %v", err)
	}

	sessions := repo.NewMongoSessionRepository(
		mongoClient.Database(cfg.MongoDatabase).Collection(constant.SessionCollection))
	cognito := service.NewCognitoService(
		cognitoidentityprovider.NewFromConfig(awsCfg),
		cfg.CognitoUserPoolID, cfg.CognitoClientID, cfg.CognitoClientSecret)
	tokenService := service.NewTokenService()
	authService := service.NewAuthService(sessions, cognito, tokenService, cfg)
	authHandler := handler.NewAuthHandler(authService, cfg)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	handler.RegisterRoutes(app, authHandler)

	go func() {
		log.Printf("auth service listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown: %v", err)
	}

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(disconnectCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
	log.Println("stopped")
}
