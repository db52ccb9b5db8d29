package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"venture-link.backend/internal/config"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/infrastructure/repositories"
	"venture-link.backend/pkg/crypto"
)

var openSeedDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
	})
}

func main() {
	email := flag.String("email", "", "admin email (required)")
	name := flag.String("name", "Platform Admin", "admin display name")
	password := flag.String("password", "", "admin password (required, min 8 chars)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("both -email and -password are required")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := openSeedDB(cfg.Database.URL())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get generic database object: %v", err)
	}
	defer sqlDB.Close()

	if err := seedAdmin(context.Background(), repositories.NewProfileRepository(db), *email, *name, *password); err != nil {
		log.Fatal(err)
	}
}

func seedAdmin(ctx context.Context, repo interface {
	GetByEmail(ctx context.Context, email string) (*entities.Profile, error)
	Create(ctx context.Context, profile *entities.Profile) error
}, email, name, password string) error {
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return fmt.Errorf("a profile with email %s already exists", email)
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return fmt.Errorf("failed to check existing profile: %w", err)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entities.Profile{
		Email:        email,
		FullName:     name,
		PasswordHash: hash,
		Role:         entities.ProfileRoleAdmin,
		Status:       entities.ProfileStatusActive,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	log.Printf("✅ Admin profile created: %s (%s)", admin.Email, admin.ID)
	return nil
}
