package store

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"luckshop/internal/models"
)

// AdminStore handles the single administrator account.
type AdminStore struct {
	db *sql.DB
}

// NewAdminStore creates a new AdminStore with the given database connection.
func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

// Get retrieves the admin account. Returns nil if the database was never
// seeded.
func (s *AdminStore) Get() (*models.Admin, error) {
	a := &models.Admin{}
	err := s.db.QueryRow(`
		SELECT email, password_hash, totp_secret, totp_enabled, created_at, updated_at
		FROM admin_account WHERE id = 1
	`).Scan(
		&a.Email, &a.PasswordHash, &a.TOTPSecret, &a.TOTPEnabled,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return a, nil
}

// SetPassword replaces the admin password with a bcrypt hash of the given
// plaintext.
func (s *AdminStore) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.db.Exec(`
		UPDATE admin_account SET password_hash = $1, updated_at = NOW() WHERE id = 1
	`, string(hash))
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return nil
}

// SetTOTPSecret saves the TOTP secret (during 2FA setup).
func (s *AdminStore) SetTOTPSecret(secret string) error {
	_, err := s.db.Exec(`
		UPDATE admin_account SET totp_secret = $1, updated_at = NOW() WHERE id = 1
	`, secret)
	if err != nil {
		return fmt.Errorf("set totp secret: %w", err)
	}
	return nil
}

// EnableTOTP marks 2FA as active (after successful code verification).
func (s *AdminStore) EnableTOTP() error {
	_, err := s.db.Exec(`
		UPDATE admin_account SET totp_enabled = TRUE, updated_at = NOW() WHERE id = 1
	`)
	if err != nil {
		return fmt.Errorf("enable totp: %w", err)
	}
	return nil
}

// ResetTOTP clears the TOTP secret and disables 2FA. The admin will be
// forced to set up 2FA again on the next login.
func (s *AdminStore) ResetTOTP() error {
	_, err := s.db.Exec(`
		UPDATE admin_account SET totp_secret = '', totp_enabled = FALSE, updated_at = NOW() WHERE id = 1
	`)
	if err != nil {
		return fmt.Errorf("reset totp: %w", err)
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (s *AdminStore) CheckPassword(admin *models.Admin, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
}
