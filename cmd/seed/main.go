package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/edulab/elearning-api/config"
	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	adminID := seedUser(db, "admin", "admin@example.com", "admin12345", entity.RoleAdmin)
	instructorID := seedUser(db, "demoInstructor", "instructor@example.com", "teach12345", entity.RoleInstructor)
	fmt.Printf("seeded users: admin=%s instructor=%s\n", adminID, instructorID)

	var courseID string
	err = db.QueryRow(`
		INSERT INTO courses (title, description, formateur, content, price)
		VALUES ($1, $2, $3, '{}', $4)
		RETURNING id
	`, "Introduction à Go", "Premiers pas avec le langage Go", instructorID, 49.0).Scan(&courseID)
	if err != nil {
		log.Fatalf("failed to seed course: %v", err)
	}
	fmt.Printf("seeded course: id=%s\n", courseID)
}

func seedUser(db *sql.DB, username, email, password string, role entity.Role) string {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET updated_at = now()
		RETURNING id
	`, username, email, hash, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", username, err)
	}
	return id
}
