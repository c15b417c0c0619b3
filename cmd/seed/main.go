package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rakafirdaus/go-blog-api/config"
	"github.com/rakafirdaus/go-blog-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, profile_image)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET profile_image = EXCLUDED.profile_image
		RETURNING id
	`, email, hash, "/uploads/demo-avatar.png").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var blogID string
	err = db.QueryRow(`
		INSERT INTO blogs (title, description, content, image, author_id, comments)
		VALUES ($1, $2, $3, $4, $5, '[]'::jsonb)
		RETURNING id
	`, "Hello world", "A seeded demo post", "Welcome to the demo blog.", "/uploads/demo-cover.png", userID).Scan(&blogID)
	if err != nil {
		log.Fatalf("failed to seed blog: %v", err)
	}
	fmt.Printf("seeded blog: id=%s author=%s\n", blogID, userID)
}
