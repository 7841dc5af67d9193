// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import (
	"strings"

	"luckshop/internal/models"
)

// Flatten projects the document into a flat list of display items, one per
// product, in document order (group order, then product order within each
// group). That order is the stable base order before any sort mode applies.
//
// heat maps product id to an externally stored counter; when a product has
// an entry there it overrides the heat stored on the product itself. A nil
// map means "use stored heat only". No product is dropped regardless of
// status; status filtering belongs to Query.
func Flatten(doc models.Document, heat map[string]int) []models.Item {
	items := make([]models.Item, 0, countProducts(doc))

	for _, group := range doc.Groups {
		for _, product := range group.Images {
			shots := mergedShots(product)

			resolved := NormalizeHeat(product.Heat)
			if h, ok := heat[product.ID]; ok {
				resolved = h
			}

			cover := product.CoverURL
			if cover == "" {
				cover = product.URL
			}
			if cover == "" && len(shots) > 0 {
				cover = shots[0]
			}

			date := product.UploadedAt
			if strings.TrimSpace(date) == "" {
				date = group.UpdatedAt
			}
			if strings.TrimSpace(date) == "" {
				date = doc.UpdatedAt
			}

			items = append(items, models.Item{
				ID:               product.ID,
				Name:             product.Name,
				Category:         group.Category,
				UploadedAt:       NormalizeDate(date),
				Heat:             resolved,
				CoverURL:         cover,
				Shots:            shots,
				Description:      product.Description,
				GroupDescription: group.Description,
				GroupUpdatedAt:   NormalizeDate(group.UpdatedAt),
				Status:           NormalizeStatus(string(product.Status)),
			})
		}
	}

	return items
}

// FindItem locates a single projected item by product id.
func FindItem(doc models.Document, id string) (models.Item, bool) {
	for _, item := range Flatten(doc, nil) {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

// Categories returns the category names in document order, de-duplicated.
func Categories(doc models.Document) []string {
	seen := make(map[string]bool, len(doc.Groups))
	names := make([]string, 0, len(doc.Groups))
	for _, group := range doc.Groups {
		if seen[group.Category] {
			continue
		}
		seen[group.Category] = true
		names = append(names, group.Category)
	}
	return names
}

// mergedShots recomputes a product's shot list as the de-duplicated union
// of the cover (or legacy url) and the stored shots, preserving first-seen
// order and dropping blank entries. The cover conceptually sits first.
func mergedShots(p models.Product) []string {
	merged := make([]string, 0, len(p.Shots)+1)
	seen := make(map[string]bool, len(p.Shots)+1)

	add := func(raw string) {
		url := strings.TrimSpace(raw)
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		merged = append(merged, url)
	}

	if p.CoverURL != "" {
		add(p.CoverURL)
	} else {
		add(p.URL)
	}
	for _, shot := range p.Shots {
		add(shot)
	}
	return merged
}

func countProducts(doc models.Document) int {
	n := 0
	for _, group := range doc.Groups {
		n += len(group.Images)
	}
	return n
}
