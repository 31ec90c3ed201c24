package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/yourusername/school-api/internal/config"
	"github.com/yourusername/school-api/internal/domain/entity"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	pgRepo "github.com/yourusername/school-api/internal/repository/postgres"
	"github.com/yourusername/school-api/pkg/database"
)

// Creates or updates the admin account. Flags override the
// ADMIN_USERNAME, ADMIN_PASSWORD and ADMIN_EMAIL env vars.
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	email := flag.String("email", "", "admin email")
	force := flag.Bool("force", false, "update password/email even if the user exists")
	flag.Parse()

	if *username == "" {
		*username = os.Getenv("ADMIN_USERNAME")
	}
	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}
	if *email == "" {
		*email = os.Getenv("ADMIN_EMAIL")
	}

	if *username == "" || *password == "" {
		log.Fatal("Username and password are required (pass -username/-password or set ADMIN_USERNAME/ADMIN_PASSWORD)")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := pgRepo.NewUserRepo(db)

	user, err := userRepo.GetByUsername(*username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Fatalf("Failed to look up user: %v", err)
		}

		user = &entity.User{
			Username: *username,
			Email:    *email,
			Password: *password,
			Role:     entity.RoleAdmin,
		}
		if err := userRepo.Create(user); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Admin '%s' created.", *username)
		return
	}

	if !*force {
		log.Printf("User '%s' already exists. Use -force to update password/email and ensure the admin role.", *username)
		return
	}

	if *email != "" {
		user.Email = *email
	}
	user.Role = entity.RoleAdmin
	if err := userRepo.Update(user); err != nil {
		log.Fatalf("Failed to update admin: %v", err)
	}
	if err := userRepo.UpdatePassword(user.ID, *password); err != nil {
		log.Fatalf("Failed to set password: %v", err)
	}
	log.Printf("Admin '%s' updated (password/email set).", *username)
}
