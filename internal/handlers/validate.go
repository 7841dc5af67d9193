// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"

	"luckshop/internal/models"
)

// Field length limits for admin input. Required-field and uniqueness
// checks live in the catalog editors; these guard against oversized
// payloads before they reach the document.
const (
	maxIDLen          = 64
	maxNameLen        = 200
	maxCategoryLen    = 100
	maxDescriptionLen = 10000
	maxURLLen         = 2048
	maxShots          = 30
)

// validateProductInput checks size limits on a submitted product.
// Returns an empty string when the input is acceptable.
func validateProductInput(p models.Product) string {
	if len(p.ID) > maxIDLen {
		return fmt.Sprintf("id exceeds %d characters", maxIDLen)
	}
	if len(p.Name) > maxNameLen {
		return fmt.Sprintf("name exceeds %d characters", maxNameLen)
	}
	if len(p.Description) > maxDescriptionLen {
		return fmt.Sprintf("description exceeds %d characters", maxDescriptionLen)
	}
	if len(p.CoverURL) > maxURLLen || len(p.URL) > maxURLLen {
		return fmt.Sprintf("image URL exceeds %d characters", maxURLLen)
	}
	if len(p.Shots) > maxShots {
		return fmt.Sprintf("more than %d shots", maxShots)
	}
	for _, shot := range p.Shots {
		if len(shot) > maxURLLen {
			return fmt.Sprintf("shot URL exceeds %d characters", maxURLLen)
		}
	}
	return ""
}

// validateCategoryInput checks size limits on a category name and
// description. Returns an empty string when the input is acceptable.
func validateCategoryInput(name, description string) string {
	if strings.TrimSpace(name) == "" {
		return "category name is required"
	}
	if len(name) > maxCategoryLen {
		return fmt.Sprintf("category name exceeds %d characters", maxCategoryLen)
	}
	if len(description) > maxDescriptionLen {
		return fmt.Sprintf("description exceeds %d characters", maxDescriptionLen)
	}
	return ""
}
