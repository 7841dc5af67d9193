// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gallery

import (
	"strings"
	"time"

	"luckshop/internal/models"
)

// UpsertProduct is the central write operation: it creates or updates a
// product and places it at the front of the target category's products.
//
// sourceID identifies the product being edited, if any. It supports
// in-place edits that keep the same id (sourceID == product.ID),
// id changes (sourceID != product.ID) and moves between categories
// (the source is removed from wherever it currently lives). An empty
// sourceID means a brand-new product.
//
// The prior product's heat survives the edit unless the incoming product
// explicitly carries a non-zero heat of its own. If the target category
// does not exist it is created (appended) with an auto-generated
// description.
func UpsertProduct(doc models.Document, product models.Product, targetCategory, sourceID string, now time.Time) (models.Document, error) {
	product = trimProduct(product)
	targetCategory = strings.TrimSpace(targetCategory)
	sourceID = strings.TrimSpace(sourceID)

	switch {
	case product.ID == "":
		return doc, validationErr("product id")
	case product.Name == "":
		return doc, validationErr("product name")
	case targetCategory == "":
		return doc, validationErr("category")
	}

	// Cross-group uniqueness: the new id may only collide with the product
	// being edited.
	for _, group := range doc.Groups {
		for _, existing := range group.Images {
			if existing.ID == product.ID && existing.ID != sourceID {
				return doc, duplicateIDErr(product.ID)
			}
		}
	}

	// Carry the prior heat across the edit; an explicit non-zero incoming
	// heat wins.
	if product.Heat == 0 {
		if prior, ok := findProduct(doc, sourceID); ok {
			product.Heat = prior.Heat
		}
	}
	product.Status = NormalizeStatus(string(product.Status))
	product.Heat = NormalizeHeat(product.Heat)

	today := FormatDate(now)

	// Remove the source product from every group, then insert the updated
	// product at the front of the target group.
	groups := make([]models.Group, 0, len(doc.Groups)+1)
	for _, group := range doc.Groups {
		g := group
		g.Images = withoutProduct(group.Images, sourceID)
		groups = append(groups, g)
	}

	target := findGroupIn(groups, targetCategory)
	if target >= 0 {
		g := groups[target]
		images := make([]models.Product, 0, len(g.Images)+1)
		images = append(images, product)
		for _, existing := range g.Images {
			if existing.ID != product.ID {
				images = append(images, existing)
			}
		}
		g.Images = images
		g.UpdatedAt = today
		groups[target] = g
	} else {
		groups = append(groups, models.Group{
			Category:    targetCategory,
			Description: DefaultGroupDescription(targetCategory),
			UpdatedAt:   today,
			Images:      []models.Product{product},
		})
	}

	return models.Document{UpdatedAt: today, Groups: groups}, nil
}

// SetProductStatus locates a product anywhere in the document and replaces
// only its status.
func SetProductStatus(doc models.Document, productID string, status models.ProductStatus, now time.Time) (models.Document, error) {
	switch status {
	case models.ProductStatusOn, models.ProductStatusOff, models.ProductStatusSoldOut:
	default:
		return doc, validationErr("status")
	}

	found := false
	groups := cloneGroups(doc.Groups)
	for i, group := range groups {
		for j, product := range group.Images {
			if product.ID != productID {
				continue
			}
			images := make([]models.Product, len(group.Images))
			copy(images, group.Images)
			images[j].Status = status

			g := group
			g.Images = images
			groups[i] = g
			found = true
		}
	}

	if !found {
		return doc, notFoundErr("product", productID)
	}
	return models.Document{UpdatedAt: FormatDate(now), Groups: groups}, nil
}

// FindProduct locates a product by id across all groups, returning it with
// its owning category name.
func FindProduct(doc models.Document, id string) (models.Product, string, bool) {
	for _, group := range doc.Groups {
		for _, product := range group.Images {
			if product.ID == id {
				return product, group.Category, true
			}
		}
	}
	return models.Product{}, "", false
}

func findProduct(doc models.Document, id string) (models.Product, bool) {
	if id == "" {
		return models.Product{}, false
	}
	p, _, ok := FindProduct(doc, id)
	return p, ok
}

// trimProduct trims the raw user text an editor accepts: identifiers,
// names, URLs and shot entries. Blank shots are dropped and the cover
// falls back to the first shot.
func trimProduct(p models.Product) models.Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.UploadedAt = NormalizeDate(p.UploadedAt)
	p.Description = strings.TrimSpace(p.Description)
	p.CoverURL = strings.TrimSpace(p.CoverURL)
	p.URL = strings.TrimSpace(p.URL)

	shots := make([]string, 0, len(p.Shots))
	for _, shot := range p.Shots {
		if s := strings.TrimSpace(shot); s != "" {
			shots = append(shots, s)
		}
	}
	p.Shots = shots

	if p.CoverURL == "" && len(shots) > 0 {
		p.CoverURL = shots[0]
	}
	return p
}

func withoutProduct(images []models.Product, id string) []models.Product {
	if id == "" {
		return images
	}
	out := make([]models.Product, 0, len(images))
	for _, p := range images {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func findGroupIn(groups []models.Group, name string) int {
	for i, group := range groups {
		if group.Category == name {
			return i
		}
	}
	return -1
}
