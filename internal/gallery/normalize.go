// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import (
	"strings"

	"luckshop/internal/models"
)

// Normalize canonicalizes a raw document into the invariant-respecting
// shape. It is total and idempotent: malformed fields degrade to safe
// defaults instead of failing the whole document, and normalizing an
// already-normalized document yields the same document.
//
// Rules:
//   - all date fields become canonical "YYYY/MM/DD" where parseable;
//   - a product without its own date inherits the group's date, then the
//     document's date;
//   - unknown statuses become "on", negative or malformed heat becomes 0.
//
// Text fields (id, name, category, description) pass through untouched;
// trimming raw user input is the editors' job, keeping this a pure
// structural pass.
func Normalize(doc models.Document) models.Document {
	out := models.Document{
		UpdatedAt: NormalizeDate(doc.UpdatedAt),
		Groups:    make([]models.Group, len(doc.Groups)),
	}

	for i, group := range doc.Groups {
		g := group
		g.UpdatedAt = NormalizeDate(group.UpdatedAt)
		g.Images = make([]models.Product, len(group.Images))

		for j, product := range group.Images {
			p := product
			date := p.UploadedAt
			if strings.TrimSpace(date) == "" {
				date = group.UpdatedAt
			}
			if strings.TrimSpace(date) == "" {
				date = doc.UpdatedAt
			}
			p.UploadedAt = NormalizeDate(date)
			p.Status = NormalizeStatus(string(p.Status))
			p.Heat = NormalizeHeat(p.Heat)
			g.Images[j] = p
		}
		out.Groups[i] = g
	}

	return out
}

// NormalizeStatus coerces a raw status value to a valid ProductStatus.
// Unrecognized or missing values default to "on".
func NormalizeStatus(status string) models.ProductStatus {
	switch models.ProductStatus(status) {
	case models.ProductStatusOff, models.ProductStatusSoldOut:
		return models.ProductStatus(status)
	default:
		return models.ProductStatusOn
	}
}

// NormalizeHeat clamps a heat counter to a non-negative integer.
func NormalizeHeat(heat int) int {
	if heat < 0 {
		return 0
	}
	return heat
}
