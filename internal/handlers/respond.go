// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP API: the public storefront endpoints
// and the authenticated admin endpoints for catalog editing, asset management
// and account security. All responses are JSON.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"luckshop/internal/gallery"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeEditorError maps a catalog editor error to an HTTP response.
// Validation problems are the client's fault, duplicates are conflicts,
// and anything unrecognized is a server error.
func writeEditorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gallery.ErrValidation):
		writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, gallery.ErrNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, gallery.ErrDuplicateID), errors.Is(err, gallery.ErrDuplicateCategory):
		writeError(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("catalog edit failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}

// marshalForCache serializes a response body destined for the Valkey
// cache. On failure it logs and returns nil so the caller can fall back
// to encoding straight into the response.
func marshalForCache(v any) []byte {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("cache marshal failed", "error", err)
		return nil
	}
	return body
}

// decodeBody parses a JSON request body into dst. Unknown fields are
// rejected so typos in the admin frontend surface as 400s instead of
// silently dropped data.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
