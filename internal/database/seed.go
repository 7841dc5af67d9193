package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed creates the admin account if none exists. The admin will be
// prompted to set up 2FA on first login (totp_enabled = false).
func Seed(db *sql.DB, email, password string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admin_account").Scan(&count); err != nil {
		return fmt.Errorf("seed check admin: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admin_account (email, password_hash, totp_enabled)
		VALUES ($1, $2, $3)
	`, email, string(hash), false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with admin account", "email", email)
	return nil
}

// SeedDemo inserts a small starter catalog when no document exists yet.
// Development only; in production an empty table is simply an empty
// catalog waiting for the first admin save.
func SeedDemo(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM gallery_documents").Scan(&count); err != nil {
		return fmt.Errorf("seed check documents: %w", err)
	}

	if count > 0 {
		return nil
	}

	const demo = `{
		"updatedAt": "2026/01/01",
		"groups": [
			{
				"category": "rings",
				"description": "rings collection",
				"updatedAt": "2026/01/01",
				"images": [
					{"id": "demo-ring", "name": "Demo Ring", "uploadedAt": "2026/01/01", "status": "on"}
				]
			}
		]
	}`

	if _, err := db.Exec(`INSERT INTO gallery_documents (payload) VALUES ($1)`, demo); err != nil {
		return fmt.Errorf("seed insert demo document: %w", err)
	}

	slog.Info("database seeded with demo catalog")
	return nil
}
