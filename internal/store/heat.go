package store

import (
	"database/sql"
	"fmt"

	"luckshop/internal/models"
)

// HeatStore keeps the per-product popularity counters. Counters live
// outside the catalog document so an increment never rewrites the catalog,
// and a counter with no row counts as zero.
type HeatStore struct {
	db *sql.DB
}

// NewHeatStore creates a new HeatStore with the given database connection.
func NewHeatStore(db *sql.DB) *HeatStore {
	return &HeatStore{db: db}
}

// GetAll returns every counter as a product-id to heat map.
func (s *HeatStore) GetAll() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT product_id, heat FROM product_heat`)
	if err != nil {
		return nil, fmt.Errorf("list heat: %w", err)
	}
	defer rows.Close()

	heat := make(map[string]int)
	for rows.Next() {
		var r models.HeatRecord
		if err := rows.Scan(&r.ProductID, &r.Heat); err != nil {
			return nil, fmt.Errorf("scan heat: %w", err)
		}
		heat[r.ProductID] = r.Heat
	}
	return heat, rows.Err()
}

// Get returns a single product's counter, zero when no row exists.
func (s *HeatStore) Get(productID string) (int, error) {
	var heat int
	err := s.db.QueryRow(`
		SELECT heat FROM product_heat WHERE product_id = $1
	`, productID).Scan(&heat)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get heat: %w", err)
	}
	return heat, nil
}

// Increment bumps a product's counter by one, creating the row on first
// increment, and returns the new value.
func (s *HeatStore) Increment(productID string) (int, error) {
	var heat int
	err := s.db.QueryRow(`
		INSERT INTO product_heat (product_id, heat) VALUES ($1, 1)
		ON CONFLICT (product_id)
		DO UPDATE SET heat = product_heat.heat + 1, updated_at = NOW()
		RETURNING heat
	`, productID).Scan(&heat)
	if err != nil {
		return 0, fmt.Errorf("increment heat: %w", err)
	}
	return heat, nil
}

// Set writes an exact counter value, creating the row if needed. Used when
// an admin edit carries an explicit heat.
func (s *HeatStore) Set(productID string, heat int) error {
	_, err := s.db.Exec(`
		INSERT INTO product_heat (product_id, heat) VALUES ($1, $2)
		ON CONFLICT (product_id)
		DO UPDATE SET heat = $2, updated_at = NOW()
	`, productID, heat)
	if err != nil {
		return fmt.Errorf("set heat: %w", err)
	}
	return nil
}

// Delete removes a product's counter. Safe to call for absent rows.
func (s *HeatStore) Delete(productID string) error {
	_, err := s.db.Exec(`DELETE FROM product_heat WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete heat: %w", err)
	}
	return nil
}
