package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"cinereserve/internal/auth"
	"cinereserve/internal/config"
	"cinereserve/internal/db"
	"cinereserve/internal/model"
	"cinereserve/internal/repository"
)

const (
	demoEmail    = "demo@cinema.test"
	demoPassword = "123456"
)

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Reservation{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	reservations := repository.NewReservationRepository(gormDB)

	user, err := users.FindByEmail(ctx, demoEmail)
	if err == gorm.ErrRecordNotFound {
		hash, hashErr := auth.HashPassword(demoPassword)
		if hashErr != nil {
			log.Fatalf("Failed to hash demo password: %v", hashErr)
		}
		user = &model.User{Email: demoEmail, PasswordHash: hash}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s (id=%d)", user.Email, user.ID)
	} else if err != nil {
		log.Fatalf("Failed to look up demo user: %v", err)
	} else {
		log.Printf("Demo user %s already exists (id=%d)", user.Email, user.ID)
	}

	existing, err := reservations.FindByUser(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list reservations: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d reservations, nothing to do", len(existing))
		return
	}

	samples := []model.Reservation{
		{Movie: "The Matrix", Date: date(2025, time.April, 1), Showtime: "19:30:00", Room: 5, UserID: user.ID},
		{Movie: "Blade Runner 2049", Date: date(2025, time.April, 2), Showtime: "21:00:00", Room: 2, UserID: user.ID},
		{Movie: "Dune: Part Two", Date: date(2025, time.April, 5), Showtime: "17:15:00", Room: 1, UserID: user.ID},
	}
	for i := range samples {
		if err := reservations.Create(ctx, &samples[i]); err != nil {
			log.Fatalf("Failed to create reservation %q: %v", samples[i].Movie, err)
		}
	}
	log.Printf("Seeded %d reservations for %s", len(samples), user.Email)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
