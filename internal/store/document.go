// Package store provides database access methods for the gallery's
// persistent state. Each store struct wraps a *sql.DB and exposes typed
// query methods.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"luckshop/internal/models"
)

// DocumentStore persists catalog documents. Saves are append-only: every
// save inserts a new row and the newest row is the current document, so
// older revisions remain available for recovery.
type DocumentStore struct {
	db *sql.DB
}

// NewDocumentStore creates a new DocumentStore with the given database connection.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Load returns the current catalog document. An empty table yields an
// empty document, not an error.
func (s *DocumentStore) Load() (models.Document, error) {
	var payload []byte
	err := s.db.QueryRow(`
		SELECT payload FROM gallery_documents ORDER BY id DESC LIMIT 1
	`).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.EmptyDocument(), nil
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// Save appends a new revision of the document and returns its row id.
func (s *DocumentStore) Save(doc models.Document) (int64, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("encode document: %w", err)
	}

	var id int64
	err = s.db.QueryRow(`
		INSERT INTO gallery_documents (payload) VALUES ($1) RETURNING id
	`, payload).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save document: %w", err)
	}
	return id, nil
}

// Revision is a historical save of the catalog document.
type Revision struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// History lists the most recent saves, newest first.
func (s *DocumentStore) History(limit int) ([]Revision, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at FROM gallery_documents ORDER BY id DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("document history: %w", err)
	}
	defer rows.Close()

	var revisions []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, r)
	}
	return revisions, rows.Err()
}

// LoadRevision returns the document saved under a specific revision id.
// Returns sql.ErrNoRows wrapped when the revision does not exist.
func (s *DocumentStore) LoadRevision(id int64) (models.Document, error) {
	var payload []byte
	err := s.db.QueryRow(`
		SELECT payload FROM gallery_documents WHERE id = $1
	`, id).Scan(&payload)
	if err != nil {
		return models.Document{}, fmt.Errorf("load revision %d: %w", id, err)
	}

	var doc models.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode revision %d: %w", id, err)
	}
	return doc, nil
}
