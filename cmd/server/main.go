package main

import (
	"log"
	"net/http"

	_ "cinereserve/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cinereserve/internal/auth"
	"cinereserve/internal/config"
	"cinereserve/internal/db"
	"cinereserve/internal/handler"
	"cinereserve/internal/model"
	"cinereserve/internal/repository"
	"cinereserve/internal/router"
	"cinereserve/internal/service"
)

// @title Movie Reservation API
// @version 1.0
// @description Cinema reservation API with user registration, login and JWT-protected reservations.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Reservation{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	reservationRepo := repository.NewReservationRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService)
	reservationService := service.NewReservationService(reservationRepo)

	authHandler := handler.NewAuthHandler(authService)
	reservationHandler := handler.NewReservationHandler(reservationService)

	router.Register(e, jwtService, authHandler, reservationHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
